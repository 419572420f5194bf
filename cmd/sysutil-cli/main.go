// Package main provides a diagnostic command line for the go-sysutil OS
// services adapter. Each flag exercises one adapter operation, which
// makes the tool useful for verifying platform behavior on a new target.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/opd-ai/go-sysutil/internal/profiling"
	"github.com/opd-ai/go-sysutil/pkg/sysutil"
)

func main() {
	os.Exit(run())
}

func run() int {
	dialog := flag.String("dialog", "", "Show a dialog of the given kind (info|warning|error|yesno|okcancel)")
	title := flag.String("title", "go-sysutil", "Dialog title")
	message := flag.String("message", "", "Dialog message")
	openPath := flag.String("open", "", "Open a filesystem path in the file manager")
	website := flag.String("website", "", "Open a URL in the default browser")
	envName := flag.String("env", "", "Print the value of an environment variable")
	savedir := flag.Bool("savedir", false, "Print the resolved save directory")
	sleepUsec := flag.Int("sleep", 0, "Sleep for the given number of microseconds")
	timer := flag.Bool("timer", false, "Measure a 100ms sleep with the high-resolution timer")
	watch := flag.Bool("watch", false, "Watch the save directory for changes until interrupted")
	trace := flag.Bool("trace", false, "Enable trace logging")
	cpuProfile := flag.String("cpuprofile", "", "Write CPU profile to file")
	memProfile := flag.String("memprofile", "", "Write memory profile to file")
	version := flag.Bool("v", false, "Print version and exit")
	flag.Parse()

	if *version {
		fmt.Printf("sysutil-cli version %s\n", sysutil.Version)
		return 0
	}

	profiler := profiling.New(*cpuProfile, *memProfile)
	if profiler.Enabled() {
		if err := profiler.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to start profiling: %v\n", err)
			return 1
		}
		defer func() {
			if err := profiler.Stop(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to stop profiling: %v\n", err)
			}
		}()
	}

	opts := sysutil.DefaultOptions()
	if *trace {
		opts.Logger = sysutil.TraceLogger(os.Stderr)
	}

	sys, err := sysutil.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize platform adapter: %v\n", err)
		return 1
	}

	switch {
	case *dialog != "":
		kind, ok := parseDialogKind(*dialog)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown dialog kind: %s\n", *dialog)
			return 1
		}
		result := sys.ShowDialog(kind, *title, *message)
		fmt.Printf("result: %s\n", result)

	case *openPath != "":
		if !sys.OpenPath(*openPath) {
			return 1
		}

	case *website != "":
		if !sys.OpenWebsite(*website) {
			return 1
		}

	case *envName != "":
		fmt.Println(sys.GetEnvironmentVariable(*envName))

	case *savedir:
		fmt.Println(sys.SaveDirectory())

	case *sleepUsec > 0:
		before := sys.CaptureTimestamp()
		sys.Sleep(*sleepUsec)
		after := sys.CaptureTimestamp()
		fmt.Printf("slept %.3f ms\n", sys.Diff(before, after, sysutil.UnitMilliseconds))

	case *timer:
		before := sys.CaptureTimestamp()
		sys.Sleep(100000)
		after := sys.CaptureTimestamp()
		fmt.Printf("platform: %s\n", sys.Name())
		fmt.Printf("exact: %d ns\n", sys.ExactDiff(before, after))
		fmt.Printf("midpoint at +%.3f ms\n",
			sys.Diff(before, sys.Interpolate(before, after, 0.5), sysutil.UnitMilliseconds))

	case *watch:
		return runWatch(sys)

	default:
		flag.Usage()
		return 1
	}

	return 0
}

// runWatch blocks printing save-directory changes until SIGINT/SIGTERM.
func runWatch(sys *sysutil.System) int {
	w, err := sys.WatchSaveDirectory(func(path string) {
		fmt.Printf("changed: %s\n", path)
	}, func(err error) {
		fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to watch save directory: %v\n", err)
		return 1
	}
	defer w.Stop()

	fmt.Printf("watching %s\n", w.Dir())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	<-sigCh

	fmt.Println("Shutting down...")
	return 0
}

// parseDialogKind maps a flag value to a dialog kind.
func parseDialogKind(s string) (sysutil.DialogKind, bool) {
	switch s {
	case "info":
		return sysutil.DialogInfo, true
	case "warning":
		return sysutil.DialogWarning, true
	case "error":
		return sysutil.DialogError, true
	case "yesno":
		return sysutil.DialogYesNo, true
	case "okcancel":
		return sysutil.DialogOkCancel, true
	}
	return sysutil.DialogInfo, false
}
