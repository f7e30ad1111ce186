package main

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/TadaHrd/encosure/pkg/anyway"
)

// runInteractive mirrors the original encosure binary: pick a scheme, pick a
// direction, type the payload terminated by the sentinel line, then (when
// encoding) type the separator.
func runInteractive() error {
	schemePrompt := promptui.Select{
		Label: "Select encosure scheme",
		Items: []string{"Anyway (AES)", "Escaped Anyway (EAES)"},
	}
	schemeIdx, _, err := schemePrompt.Run()
	if err != nil {
		// User cancelled (e.g. Ctrl-C). Not an error.
		return nil
	}
	escape := schemeIdx == 1

	directionPrompt := promptui.Select{
		Label: "Select direction",
		Items: []string{"Encode", "Decode"},
	}
	directionIdx, _, err := directionPrompt.Run()
	if err != nil {
		return nil
	}
	encode := directionIdx == 0

	if encode {
		fmt.Fprintf(outWriter, "\nType %s on an empty line to encode.\nEnter text to encode:\n\n", inputSentinel)
	} else {
		fmt.Fprintf(outWriter, "\nType %s on an empty line to decode.\nEnter data to decode:\n\n", inputSentinel)
	}

	input, err := readUntilDone(inReader)
	if err != nil {
		return fmt.Errorf("unable to read input: %w", err)
	}

	if !encode {
		fmt.Fprintf(outWriter, "\nDecoded text:\n%s\n", decodeForDisplay(input))
		return nil
	}

	separator, err := promptSeparator()
	if err != nil {
		return nil
	}

	encoded := anyway.EncodeEscape(anyway.String(input), separator, escape)
	fmt.Fprintf(outWriter, "\nEncoded data:\n%s\n", encoded)
	return nil
}

func promptSeparator() (string, error) {
	prompt := promptui.Prompt{
		Label: `Enter separator ('\n' for newline)`,
	}
	separator, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return translateSeparator(separator), nil
}

// decodeForDisplay decodes to text, falling back to the byte debug form when
// the result is not valid UTF-8.
func decodeForDisplay(input string) string {
	text, err := anyway.DecodeString(input)
	if err != nil {
		var invalidErr *anyway.InvalidTextError
		if errors.As(err, &invalidErr) {
			return fmt.Sprintf("%v", invalidErr.Bytes)
		}
		return err.Error()
	}
	return text
}
