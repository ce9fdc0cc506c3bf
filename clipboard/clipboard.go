// Package clipboard copies text to the system clipboard, falling back to
// the terminal's OSC52 escape when no native clipboard tool is available.
package clipboard

import (
	"fmt"
	"os"

	nativeclip "github.com/atotto/clipboard"

	"github.com/andareed/astrodash/logging"
)

// Method names the mechanism that performed a copy.
type Method string

const (
	MethodNative Method = "native"
	MethodOSC52  Method = "osc52"
)

// writeNative is swapped in tests.
var writeNative = nativeclip.WriteAll

// Copy places text on the clipboard and reports how it got there.
func Copy(text string) (Method, error) {
	if !nativeclip.Unsupported {
		err := writeNative(text)
		if err == nil {
			logging.Infof("Clipboard: copied %d bytes natively", len(text))
			return MethodNative, nil
		}
		logging.Warnf("Clipboard: native copy failed, trying OSC52: %v", err)
	}

	if !osc52Supported(os.Getenv("TERM"), os.Stdout) {
		logging.Warnf("Clipboard: OSC52 unavailable (stdout not TTY or TERM=dumb)")
		return "", errOSC52Unsupported
	}
	if err := copyOSC52(os.Stdout, text); err != nil {
		return "", fmt.Errorf("osc52 copy: %w", err)
	}
	return MethodOSC52, nil
}
