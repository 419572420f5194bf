package platform

// TimeStamp is an opaque reading of the platform's monotonic
// high-resolution counter, in counter-native units. Timestamps are plain
// values; they are created by CaptureTimestamp and consumed by the
// interpolate/diff operations of the adapter that produced them.
type TimeStamp int64

// TimeUnit selects the unit for Diff results.
type TimeUnit int

const (
	// UnitSeconds reports diffs in seconds.
	UnitSeconds TimeUnit = iota
	// UnitMilliseconds reports diffs in milliseconds.
	UnitMilliseconds
	// UnitMicroseconds reports diffs in microseconds.
	UnitMicroseconds
)

// String returns a human-readable name for the time unit.
func (u TimeUnit) String() string {
	switch u {
	case UnitSeconds:
		return "s"
	case UnitMilliseconds:
		return "ms"
	case UnitMicroseconds:
		return "us"
	default:
		return "unknown"
	}
}

// interpolateTimestamp computes a + (b-a)*fraction in counter units using
// floating-point intermediate arithmetic so fractional positions resolve
// to the nearest counter tick. The fraction is intentionally not clamped:
// callers use values outside [0,1] for prediction.
func interpolateTimestamp(a, b TimeStamp, fraction float64) TimeStamp {
	return a + TimeStamp(float64(b-a)*fraction)
}

// exactDiffNanoseconds converts a counter delta into nanoseconds for a
// counter running at frequency ticks per second. The whole computation
// stays in float64 so large deltas are not truncated before scaling.
func exactDiffNanoseconds(before, after TimeStamp, frequency int64) int64 {
	return int64(float64(after-before) * (1e9 / float64(frequency)))
}

// diffInUnit converts a counter delta into the requested unit.
func diffInUnit(before, after TimeStamp, frequency int64, unit TimeUnit) float64 {
	ns := float64(after-before) * (1e9 / float64(frequency))
	switch unit {
	case UnitSeconds:
		return ns / 1e9
	case UnitMilliseconds:
		return ns / 1e6
	case UnitMicroseconds:
		return ns / 1e3
	default:
		return ns
	}
}
