package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

var debugMode bool

// SetupLogging configures logging.
// If filename is empty, logging is disabled (except log.Fatal/panic).
// If filename is set, logs go to that file and Bubble Tea logs are enabled too.
func SetupLogging(filename string) (cleanup func(), err error) {
	if filename == "" {
		debugMode = false
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	tf, err := tea.LogToFile(filename, "debug")
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("bubbletea log: %w", err)
	}
	debugMode = true

	cleanup = func() {
		debugMode = false
		tf.Close()
		f.Close()
	}
	return cleanup, nil
}

// IsDebugMode reports whether a debug log file is active.
func IsDebugMode() bool { return debugMode }

func Debug(msg string) { output("DEBUG", msg) }

func Debugf(format string, args ...any) { output("DEBUG", fmt.Sprintf(format, args...)) }

func Infof(format string, args ...any) { output("INFO", fmt.Sprintf(format, args...)) }

func Warnf(format string, args ...any) { output("WARN", fmt.Sprintf(format, args...)) }

func Errorf(format string, args ...any) { output("ERROR", fmt.Sprintf(format, args...)) }

func output(level, msg string) {
	// depth 3 reports the caller of Debugf/Infof/etc.
	_ = log.Output(3, level+" "+msg)
}
