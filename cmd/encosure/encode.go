package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TadaHrd/encosure/pkg/anyway"
)

var (
	separatorFlag string
	escapedFlag   bool
)

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringVarP(&separatorFlag, "separator", "s", "", "Separator between encoded words. Literal \\n becomes a newline. Invalid separators fall back to \", \"")
	encodeCmd.Flags().BoolVarP(&escapedFlag, "escaped", "e", false, "Use the escaped variant (EAES), safe to paste into markdown")
}

var encodeCmd = &cobra.Command{
	Use:   "encode [TEXT...]",
	Short: "Encode text to AES or EAES",
	Long: `Encode text to the Anyway Encosure Scheme. With arguments, the arguments
are joined with spaces and encoded. Without arguments, lines are read from
stdin until a line containing only ` + inputSentinel + ` or EOF.`,
	Run: func(cmd *cobra.Command, args []string) {
		input, err := collectInput(args)
		if err != nil {
			errorExit("Unable to read input: %v", err)
		}

		escape := currentProfile.Escaped()
		if cmd.Flags().Changed("escaped") {
			escape = escapedFlag
		}

		codec := anyway.Codec{Escaped: escape, Separator: activeSeparator(cmd)}
		encoded, err := codec.Encode([]byte(input))
		if err != nil {
			errorExit("Unable to encode: %v", err)
		}
		fmt.Fprintln(outWriter, string(encoded))
	},
}

// collectInput joins arguments when present, otherwise gathers
// sentinel-terminated lines from stdin.
func collectInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return readUntilDone(inReader)
}

// activeSeparator resolves the separator for this invocation: the flag when
// set, the active profile's otherwise.
func activeSeparator(cmd *cobra.Command) string {
	if cmd.Flags().Changed("separator") {
		return translateSeparator(separatorFlag)
	}
	if currentProfile != nil && currentProfile.Separator != "" {
		return currentProfile.Separator
	}
	return anyway.DefaultSeparator
}
