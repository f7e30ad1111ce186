package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, in io.Reader, args ...string) string {
	t.Helper()

	b := bytes.NewBufferString("")

	rootCmd.SetArgs(args)
	rootCmd.SetOut(b)
	rootCmd.SetErr(b)
	rootCmd.SetIn(in)

	err := rootCmd.Execute()
	if err != nil {
		bs, _ := io.ReadAll(b)
		t.Logf("Command failed: %v\nArgs: %v\nOutput: %s", err, args, string(bs))
		t.FailNow()
	}

	bs, err := io.ReadAll(b)
	require.NoError(t, err)

	return string(bs)
}

// runCmdAllowFail runs a command and allows it to fail, returning the output
// and error
func runCmdAllowFail(t *testing.T, in io.Reader, args ...string) (string, error) {
	t.Helper()

	b := bytes.NewBufferString("")

	rootCmd.SetArgs(args)
	rootCmd.SetOut(b)
	rootCmd.SetErr(b)
	rootCmd.SetIn(in)

	err := rootCmd.Execute()
	bs, _ := io.ReadAll(b)

	return string(bs), err
}
