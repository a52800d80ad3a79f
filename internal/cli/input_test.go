package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	t.Run("reads a line and trims it", func(t *testing.T) {
		out := &bytes.Buffer{}
		reader := bufio.NewReader(strings.NewReader("  hello  \n"))

		got, err := GetSimpleText(reader, "Say something", out)
		require.NoError(t, err)
		require.Equal(t, "hello", got)
		require.Contains(t, out.String(), "Say something")
	})

	t.Run("returns partial line on EOF", func(t *testing.T) {
		out := &bytes.Buffer{}
		reader := bufio.NewReader(strings.NewReader("no newline"))

		got, err := GetSimpleText(reader, "Prompt", out)
		require.NoError(t, err)
		require.Equal(t, "no newline", got)
	})

	t.Run("empty input returns the EOF error", func(t *testing.T) {
		out := &bytes.Buffer{}
		reader := bufio.NewReader(strings.NewReader(""))

		_, err := GetSimpleText(reader, "Prompt", out)
		require.Error(t, err)
	})
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(fd int) ([]byte, error) { return []byte("hunter22"), nil }

	out := &bytes.Buffer{}
	got, err := GetPassword("Enter password", out)
	require.NoError(t, err)
	require.Equal(t, "hunter22", got)
	require.Contains(t, out.String(), "Enter password")
}
