package message

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withCapturedOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetNoColor(true)
	t.Cleanup(func() {
		SetOutput(os.Stdout)
		SetQuiet(false)
		SetSilent(false)
	})
	return &buf
}

func TestInfoPassesValuesVerbatim(t *testing.T) {
	buf := withCapturedOutput(t)

	// Values containing % must not be reinterpreted as verbs
	Info("%s", "Kustodian dev, build 100%done")
	assert.Equal(t, "[*] Kustodian dev, build 100%done\n", buf.String())
}

func TestQuietSuppressesInfoButNotError(t *testing.T) {
	buf := withCapturedOutput(t)
	SetQuiet(true)

	Info("hidden")
	assert.Empty(t, buf.String())

	Error("shown")
	assert.Equal(t, "[-] shown\n", buf.String())
}

func TestSilentSuppressesAllButCritical(t *testing.T) {
	buf := withCapturedOutput(t)
	SetSilent(true)

	Info("hidden")
	Error("hidden")
	assert.Empty(t, buf.String())

	Critical("shown")
	assert.Equal(t, "[!!] shown\n", buf.String())
}
