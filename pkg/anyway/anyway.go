package anyway

import "strings"

// DefaultSeparator is used whenever a caller-provided separator fails
// CheckSeparator.
const DefaultSeparator = ", "

// reserved holds every character a separator must not contain: the word's
// letters in both cases, the star marker and the escape backslash.
const reserved = `anywANYW*\`

// markers and escapedMarkers are indexed by the tail value of a byte.
var (
	markers        = [4]string{"", "*", "**", "***"}
	escapedMarkers = [4]string{"", `\*`, `\*\*`, `\*\*\*`}
)

// CheckSeparator reports whether s is usable as an AES separator: non-empty
// and free of the scheme's reserved characters.
func CheckSeparator(s string) bool {
	if s == "" {
		return false
	}
	return !strings.ContainsAny(s, reserved)
}

// Encode encodes src to plain AES, joining the per-byte words with
// separator.
func Encode(src Source, separator string) string {
	return EncodeEscape(src, separator, false)
}

// EncodeEscaped encodes src to EAES, the markdown-safe escaped variant.
func EncodeEscaped(src Source, separator string) string {
	return EncodeEscape(src, separator, true)
}

// EncodeEscape encodes src to AES, or to EAES if escape is true. It is a
// total function: any byte sequence and any separator produce output, with
// invalid separators replaced by DefaultSeparator.
func EncodeEscape(src Source, separator string, escape bool) string {
	if !CheckSeparator(separator) {
		separator = DefaultSeparator
	}

	data := src.Bytes()

	var sb strings.Builder
	sb.Grow(len(data) * (6 + len(separator)))

	for i, v := range data {
		if i > 0 {
			sb.WriteString(separator)
		}

		tail := v & 0b11
		body := v >> 2

		word := [6]byte{
			'A' + 32*(body&1),
			'N' + 32*(body>>1&1),
			'Y' + 32*(body>>2&1),
			'W' + 32*(body>>3&1),
			'A' + 32*(body>>4&1),
			'Y' + 32*(body>>5&1),
		}

		if escape {
			sb.WriteString(escapedMarkers[tail])
		}
		sb.WriteString(markers[tail])
		sb.Write(word[:])
		sb.WriteString(markers[tail])
		if escape {
			sb.WriteString(escapedMarkers[tail])
		}
	}

	return sb.String()
}
