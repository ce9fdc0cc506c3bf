package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"os"
	"testing"

	nativeclip "github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyOSC52WritesEscapeSequence(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, copyOSC52(&buf, "2025-01-21\t81"))

	out := buf.String()
	assert.Contains(t, out, "]52;c;")
	assert.Contains(t, out, base64.StdEncoding.EncodeToString([]byte("2025-01-21\t81")))
}

func TestOSC52SupportedRejectsDumbTerminals(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, osc52Supported("", f))
	assert.False(t, osc52Supported("DUMB", f))
	assert.False(t, osc52Supported("xterm-256color", f), "a regular file is not a terminal")
}

func TestCopyUsesNativeClipboardFirst(t *testing.T) {
	if nativeclip.Unsupported {
		t.Skip("no native clipboard on this platform")
	}
	var got string
	orig := writeNative
	writeNative = func(s string) error { got = s; return nil }
	defer func() { writeNative = orig }()

	method, err := Copy("row")
	require.NoError(t, err)
	assert.Equal(t, MethodNative, method)
	assert.Equal(t, "row", got)
}

func TestCopyFallsBackWhenNativeFails(t *testing.T) {
	orig := writeNative
	writeNative = func(string) error { return errors.New("no xclip") }
	defer func() { writeNative = orig }()

	t.Setenv("TERM", "dumb")
	_, err := Copy("row")
	require.ErrorIs(t, err, errOSC52Unsupported)
}
