package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(reader("  hello  \n"), "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Contains(t, out.String(), "Say something")
}

func TestGetSimpleTextEOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(reader("partial"), "x", &out)
	require.NoError(t, err)
	assert.Equal(t, "partial", got)
}

func TestGetSimpleTextEOFEmpty(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(reader(""), "x", &out)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetTextDefault(t *testing.T) {
	var out bytes.Buffer

	got, err := GetTextDefault(reader("\n"), "Name", "Bike", &out)
	require.NoError(t, err)
	assert.Equal(t, "Bike", got, "empty input keeps the current value")
	assert.Contains(t, out.String(), "[Bike]")

	got, err = GetTextDefault(reader("Lamp\n"), "Name", "Bike", &out)
	require.NoError(t, err)
	assert.Equal(t, "Lamp", got)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"sure\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got, err := Confirm(reader(tt.input), "Proceed?", &out)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}
