package pkg

import (
	"bytes"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNickname(t *testing.T) {
	assert.Equal(t, "player_1", Nickname("player_1"))
	assert.Equal(t, "nospaces", Nickname("no spaces"))
	assert.Equal(t, "abcdefghijklmnop", Nickname("abcdefghijklmnopqrstuvwxyz"))

	generated := Nickname("   ")
	assert.NotEmpty(t, generated)
	assert.Contains(t, generated, "-")
}

func TestLogf(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		SetLogLevel(LogStandard)
	})

	SetLogLevel(LogStandard)
	Logf(LogDebug, "hidden")
	assert.Empty(t, buf.String())

	SetLogLevel(LogVerbose)
	Logf(LogDebug, "shown %d", 1)
	assert.Contains(t, buf.String(), "shown 1")
}

func TestInitLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log")
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetPrefix("")
	})

	require.NoError(t, InitLog(path, "TEST: "))
	log.Println("hello")

	b, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "TEST: ")
	assert.Contains(t, string(b), "hello")

	assert.Error(t, InitLog(filepath.Join(t.TempDir(), "missing", "log"), ""))
}
