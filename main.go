package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/andareed/astrodash/logging"
	"github.com/andareed/astrodash/scheduler"
)

func main() {
	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	// --- EARLY EXIT ---
	if opts.showVersion {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cleanup, err := logging.SetupLogging(opts.debugFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	logging.Infof("astrodash: Started (version %s, location %q)", Version, opts.location)

	clock := clockwork.NewRealClock()
	m := newModel(opts, clock)
	p := tea.NewProgram(m, tea.WithAltScreen())

	scope := scheduler.New(context.Background(), clock)
	startBackground(scope, p, opts)

	_, err = p.Run()
	if cerr := scope.Close(); cerr != nil {
		logging.Warnf("background tasks: %v", cerr)
	}
	if err != nil {
		logging.Errorf("Tea program error: %v", err)
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
