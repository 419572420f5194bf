// Package profiling provides CPU and memory profiling support for the
// sysutil command line. It wraps runtime/pprof so timing runs can be
// profiled without extra plumbing in the caller.
package profiling

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Profiler writes CPU and heap profiles for one run. It is not safe for
// concurrent use; the CLI drives it from a single goroutine.
type Profiler struct {
	cpuPath string
	memPath string
	cpuFile *os.File
	running bool
}

// New creates a Profiler. Empty paths disable the corresponding profile.
func New(cpuPath, memPath string) *Profiler {
	return &Profiler{cpuPath: cpuPath, memPath: memPath}
}

// Enabled reports whether any profile output is configured.
func (p *Profiler) Enabled() bool {
	return p.cpuPath != "" || p.memPath != ""
}

// Start begins CPU profiling when configured.
func (p *Profiler) Start() error {
	if p.running {
		return errors.New("profiler already running")
	}
	p.running = true

	if p.cpuPath == "" {
		return nil
	}
	f, err := os.Create(p.cpuPath)
	if err != nil {
		return fmt.Errorf("creating cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return fmt.Errorf("starting cpu profile: %w", err)
	}
	p.cpuFile = f
	return nil
}

// Stop ends CPU profiling and writes the heap profile when configured.
func (p *Profiler) Stop() error {
	if !p.running {
		return errors.New("profiler not running")
	}
	p.running = false

	var errs []error
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		if err := p.cpuFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing cpu profile: %w", err))
		}
		p.cpuFile = nil
	}

	if p.memPath != "" {
		// Collect garbage first so the heap profile reflects live data.
		runtime.GC()
		f, err := os.Create(p.memPath)
		if err != nil {
			errs = append(errs, fmt.Errorf("creating mem profile: %w", err))
		} else {
			if err := pprof.WriteHeapProfile(f); err != nil {
				errs = append(errs, fmt.Errorf("writing mem profile: %w", err))
			}
			if err := f.Close(); err != nil {
				errs = append(errs, fmt.Errorf("closing mem profile: %w", err))
			}
		}
	}

	return errors.Join(errs...)
}
