package main

import (
	"errors"
	"fmt"

	prettyjson "github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"

	"github.com/TadaHrd/encosure/pkg/anyway"
	"github.com/TadaHrd/encosure/pkg/encoding"
)

var (
	rawFlag  bool
	jsonFlag bool
)

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().BoolVar(&rawFlag, "raw", false, "Print the decoded bytes instead of interpreting them as text")
	decodeCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print a JSON document with the decoded text, bytes and any validation error")
}

// decodeResult is the --json output shape. Bytes are plain numbers rather
// than base64 so the document stays readable.
type decodeResult struct {
	Text  string `json:"text,omitempty"`
	Bytes []int  `json:"bytes"`
	Error string `json:"error,omitempty"`
}

var decodeCmd = &cobra.Command{
	Use:   "decode [TEXT...]",
	Short: "Decode AES or EAES back to text",
	Long: `Decode Anyway Encosure Scheme data. Both variants are accepted; anything
outside the scheme's alphabet is ignored. If the decoded bytes are not valid
UTF-8 the raw byte form is printed instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		input, err := collectInput(args)
		if err != nil {
			errorExit("Unable to read input: %v", err)
		}

		if rawFlag {
			var decoder encoding.Decoder = anyway.Codec{}
			raw, err := decoder.Decode([]byte(input))
			if err != nil {
				errorExit("Unable to decode: %v", err)
			}
			fmt.Fprintln(outWriter, raw)
			return
		}

		text, err := anyway.DecodeString(input)

		if jsonFlag {
			printDecodeJSON(text, err)
			return
		}

		if err != nil {
			var invalidErr *anyway.InvalidTextError
			if errors.As(err, &invalidErr) {
				// Fall back to the byte debug form, the data is
				// still intact.
				fmt.Fprintln(outWriter, invalidErr.Bytes)
				return
			}
			errorExit("Unable to decode: %v", err)
		}

		fmt.Fprintln(outWriter, text)
	},
}

func printDecodeJSON(text string, err error) {
	result := decodeResult{Text: text}

	var invalidErr *anyway.InvalidTextError
	if errors.As(err, &invalidErr) {
		result.Error = err.Error()
		result.Bytes = toInts(invalidErr.Bytes)
	} else {
		result.Bytes = toInts([]byte(text))
	}

	out, jsonErr := prettyjson.Marshal(result)
	if jsonErr != nil {
		errorExit("Unable to marshal result: %v", jsonErr)
	}
	fmt.Fprintln(colorableOut, string(out))
}

func toInts(b []byte) []int {
	out := make([]int, len(b))
	for i, v := range b {
		out[i] = int(v)
	}
	return out
}
