package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/andareed/astrodash/moon"
)

const (
	defaultLocation  = "New York"
	defaultLoadDelay = time.Second
	defaultTick      = time.Second
)

type options struct {
	debugFile   string
	showVersion bool
	location    string
	loadDelay   time.Duration // simulated fetch before the records appear
	tick        time.Duration // clock refresh cadence
	phase       phaseFlag     // initial phase selector position
}

// phaseFlag is an optional moon.Phase; "All" leaves it unset.
type phaseFlag struct {
	phase moon.Phase
	set   bool
}

func (f phaseFlag) MarshalText() ([]byte, error) {
	if !f.set {
		return []byte(moon.BucketAll), nil
	}
	return f.phase.MarshalText()
}

func (f *phaseFlag) UnmarshalText(b []byte) error {
	if strings.EqualFold(strings.TrimSpace(string(b)), moon.BucketAll) {
		*f = phaseFlag{}
		return nil
	}
	if err := f.phase.UnmarshalText(b); err != nil {
		return err
	}
	f.set = true
	return nil
}

// bucket is the phase selector label the flag asks for.
func (f phaseFlag) bucket() string {
	if !f.set {
		return moon.BucketAll
	}
	return f.phase.String()
}

func defaultOptions() options {
	return options{
		location:  defaultLocation,
		loadDelay: defaultLoadDelay,
		tick:      defaultTick,
	}
}

func parseOptions(args []string, output io.Writer) (options, error) {
	opts := defaultOptions()

	fs := flag.NewFlagSet("astrodash", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.debugFile, "debug", "", "Write Debug Logs to file")
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	fs.StringVar(&opts.location, "location", opts.location, "location shown on the dashboard")
	fs.DurationVar(&opts.loadDelay, "load-delay", opts.loadDelay, "simulated data load delay")
	fs.DurationVar(&opts.tick, "tick", opts.tick, "clock refresh interval")
	fs.TextVar(&opts.phase, "phase", opts.phase, "initial moon phase filter, e.g. \"full moon\"")
	fs.Usage = func() {
		fmt.Fprintln(output, "Usage: astrodash [--debug debug.log] [--location city] [--load-delay 1s] [--tick 1s] [--phase name]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	opts.location = strings.TrimSpace(opts.location)
	if opts.location == "" {
		return options{}, fmt.Errorf("--location must not be empty")
	}
	if opts.loadDelay < 0 {
		return options{}, fmt.Errorf("--load-delay must not be negative, got %s", opts.loadDelay)
	}
	if opts.tick <= 0 {
		return options{}, fmt.Errorf("--tick must be positive, got %s", opts.tick)
	}
	return opts, nil
}
