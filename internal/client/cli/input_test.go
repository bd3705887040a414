package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer

	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("  a@x.com \nrest\n")), "Enter email", &out)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got)
	assert.Equal(t, "Enter email\n> ", out.String())
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("tail")), "p", &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "tail", got)
}

func TestGetSimpleText_EOF(t *testing.T) {
	_, err := GetSimpleText(bufio.NewReader(strings.NewReader("")), "p", &bytes.Buffer{})
	require.Error(t, err)
}

func stubTerminal(t *testing.T, terminal bool, pw []byte, pwErr error) {
	t.Helper()
	origRP, origIT := readPassword, isTerminal
	t.Cleanup(func() { readPassword, isTerminal = origRP, origIT })
	isTerminal = func(int) bool { return terminal }
	readPassword = func(int) ([]byte, error) { return pw, pwErr }
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, []byte("s3cret"), nil)
	var out bytes.Buffer

	pw, err := GetPassword(bufio.NewReader(strings.NewReader("ignored\n")), &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Equal(t, "Enter password: \n", out.String())
}

func TestGetPassword_TerminalError(t *testing.T) {
	stubTerminal(t, true, nil, errors.New("tty gone"))

	_, err := GetPassword(bufio.NewReader(strings.NewReader("")), &bytes.Buffer{})
	require.Error(t, err)
}

func TestGetPassword_PipedInput(t *testing.T) {
	stubTerminal(t, false, nil, errors.New("must not be called"))

	pw, err := GetPassword(bufio.NewReader(strings.NewReader("piped\n")), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, []byte("piped"), pw)
}
