package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadUntilDone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"sentinel trims newline", "one\ntwo\n.done\n", "one\ntwo"},
		{"sentinel only", ".done\n", ""},
		{"eof keeps newline", "one\ntwo\n", "one\ntwo\n"},
		{"empty", "", ""},
		{"sentinel mid-line is payload", "a .done b\n.done\n", "a .done b"},
		{"after sentinel ignored", "one\n.done\nafter\n", "one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readUntilDone(strings.NewReader(tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTranslateSeparator(t *testing.T) {
	require.Equal(t, "\n", translateSeparator(`\n`))
	require.Equal(t, " | ", translateSeparator(" | "))
	require.Equal(t, "\n\n", translateSeparator(`\n\n`))
}
