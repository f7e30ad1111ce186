package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode_Args(t *testing.T) {
	out := runCmd(t, nil, "encode", "-e=false", "-s", ", ", "A")
	require.Equal(t, "*ANYWaY*\n", out)
}

func TestEncode_Escaped(t *testing.T) {
	out := runCmd(t, nil, "encode", "-e", "A")
	require.Equal(t, `\**ANYWaY*\*`+"\n", out)

	// Explicitly switching the flag back off again must win over it.
	out = runCmd(t, nil, "encode", "-e=false", "A")
	require.Equal(t, "*ANYWaY*\n", out)
}

func TestEncode_Stdin(t *testing.T) {
	in := strings.NewReader("A\n.done\nignored")
	out := runCmd(t, in, "encode", "-e=false")
	require.Equal(t, "*ANYWaY*\n", out)
}

func TestEncode_SeparatorFlag(t *testing.T) {
	out := runCmd(t, nil, "encode", "-e=false", "-s", " | ", "Hi")
	require.Equal(t, "AnYWaY | *AnYwaY*\n", out)
}

func TestEncode_SeparatorNewlineTranslation(t *testing.T) {
	out := runCmd(t, nil, "encode", "-e=false", "-s", `\n`, "Hi")
	require.Equal(t, "AnYWaY\n*AnYwaY*\n", out)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	encoded := runCmd(t, nil, "encode", "-e=false", "-s", ", ", "Hello, world!")
	decoded := runCmd(t, strings.NewReader(encoded), "decode", "--raw=false", "--json=false")
	require.Equal(t, "Hello, world!\n", decoded)
}
