package platform

import (
	"math"
	"testing"
)

// TestInterpolateEndpoints verifies the interpolation identities at
// fraction 0, 1, and the midpoint.
func TestInterpolateEndpoints(t *testing.T) {
	tests := []struct {
		name     string
		a, b     TimeStamp
		fraction float64
		want     TimeStamp
	}{
		{"zero fraction returns a", 100, 200, 0, 100},
		{"unit fraction returns b", 100, 200, 1, 200},
		{"midpoint", 100, 200, 0.5, 150},
		{"midpoint negative range", 200, 100, 0.5, 150},
		{"identical endpoints", 42, 42, 0.7, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := interpolateTimestamp(tt.a, tt.b, tt.fraction)
			if got != tt.want {
				t.Errorf("interpolateTimestamp(%d, %d, %v) = %d, want %d",
					tt.a, tt.b, tt.fraction, got, tt.want)
			}
		})
	}
}

// TestInterpolateExtrapolates verifies that fractions outside [0,1]
// extrapolate linearly instead of clamping.
func TestInterpolateExtrapolates(t *testing.T) {
	if got := interpolateTimestamp(100, 200, 2); got != 300 {
		t.Errorf("fraction 2 should extrapolate to 300, got %d", got)
	}
	if got := interpolateTimestamp(100, 200, -1); got != 0 {
		t.Errorf("fraction -1 should extrapolate to 0, got %d", got)
	}
}

// TestExactDiffScaling checks the delta-to-nanoseconds conversion across
// a range of frequencies and deltas.
func TestExactDiffScaling(t *testing.T) {
	tests := []struct {
		name      string
		frequency int64
		delta     int64
	}{
		{"nanosecond counter", 1e9, 123456789},
		{"typical QPC frequency", 10000000, 10000000},
		{"low frequency", 1000, 5},
		{"single tick", 3579545, 1},
		{"large delta", 1e9, 3600 * 1e9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := TimeStamp(1000)
			after := before + TimeStamp(tt.delta)
			got := exactDiffNanoseconds(before, after, tt.frequency)
			want := float64(tt.delta) * 1e9 / float64(tt.frequency)
			if math.Abs(float64(got)-want) > 1 {
				t.Errorf("exactDiffNanoseconds(delta=%d, freq=%d) = %d, want ~%v",
					tt.delta, tt.frequency, got, want)
			}
		})
	}
}

// TestExactDiffNegative verifies that reversed arguments yield a negative
// result rather than an error.
func TestExactDiffNegative(t *testing.T) {
	got := exactDiffNanoseconds(2000, 1000, 1e9)
	if got != -1000 {
		t.Errorf("expected -1000 for reversed timestamps, got %d", got)
	}
}

// TestDiffInUnit checks unit scaling against the nanosecond baseline.
func TestDiffInUnit(t *testing.T) {
	const freq = int64(1e9)
	before, after := TimeStamp(0), TimeStamp(2500000000) // 2.5s in ns

	tests := []struct {
		unit TimeUnit
		want float64
	}{
		{UnitSeconds, 2.5},
		{UnitMilliseconds, 2500},
		{UnitMicroseconds, 2500000},
	}

	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			got := diffInUnit(before, after, freq, tt.unit)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("diffInUnit(%v) = %v, want %v", tt.unit, got, tt.want)
			}
		})
	}
}

// TestTimeUnitString covers the unit names, including unknown values.
func TestTimeUnitString(t *testing.T) {
	if UnitSeconds.String() != "s" || UnitMilliseconds.String() != "ms" || UnitMicroseconds.String() != "us" {
		t.Error("unexpected unit names")
	}
	if TimeUnit(99).String() != "unknown" {
		t.Errorf("unknown unit should stringify as 'unknown', got %q", TimeUnit(99).String())
	}
}
