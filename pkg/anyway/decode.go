package anyway

import (
	"fmt"
	"unicode/utf8"
)

// InvalidTextError is returned by DecodeString when the decoded bytes are
// not valid UTF-8. It carries the raw bytes so callers can still inspect or
// display them.
type InvalidTextError struct {
	Bytes []byte
}

func (e *InvalidTextError) Error() string {
	return fmt.Sprintf("decoded %d byte(s) are not valid UTF-8", len(e.Bytes))
}

// isAlphabet reports whether c belongs to the scheme's alphabet: the word's
// letters in either case, the star marker or the escape backslash.
func isAlphabet(c byte) bool {
	switch c {
	case 'a', 'n', 'y', 'w', 'A', 'N', 'Y', 'W', '*', '\\':
		return true
	}
	return false
}

// Decode decodes AES or EAES text back into bytes. It never fails: anything
// outside the scheme's alphabet is skipped, backslash-escaped pairs are
// ignored, and letters are classified by case alone, so noisy or reformatted
// input decodes to whatever the scan recovers.
func Decode(text string) []byte {
	data := []byte(text)

	var (
		bodyIdx byte
		body    byte
		stars   byte
	)

	out := []byte{}

	i := 0
	for i < len(data) {
		for i < len(data) && !isAlphabet(data[i]) {
			i++
		}
		if i == len(data) {
			break
		}

		switch c := data[i]; {
		case c == '\\':
			// Skip the escape pair wholesale so escaped markers
			// never reach the star tally.
			i += 2
			continue
		case c == '*':
			stars++
		case c >= 96: // lowercase letter
			body += 1 << bodyIdx
			bodyIdx++
		default: // uppercase letter
			bodyIdx++
		}

		if bodyIdx == 6 {
			bodyIdx = 0
			stars %= 4 // clamp over-counted markers to the 2-bit tail

			out = append(out, body<<2+stars)

			// Consume the trailing marker/escape run adjacent to
			// the completed word so it is not misread as the start
			// of the next unit.
			for i < len(data) && isAlphabet(data[i]) {
				i++
			}

			body = 0
			stars = 0
			continue
		}

		i++
	}

	return out
}

// DecodeString decodes AES or EAES text and reinterprets the result as
// UTF-8 text. On invalid UTF-8 it returns an *InvalidTextError carrying the
// raw decoded bytes.
func DecodeString(text string) (string, error) {
	raw := Decode(text)
	if !utf8.Valid(raw) {
		return "", &InvalidTextError{Bytes: raw}
	}
	return string(raw), nil
}
