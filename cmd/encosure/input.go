package main

import (
	"bufio"
	"io"
	"strings"
)

// inputSentinel terminates multi-line input collection.
const inputSentinel = ".done"

// readUntilDone collects lines from r until the sentinel line or EOF. When
// the sentinel is seen, the newline preceding it is trimmed; on plain EOF
// the collected text is returned as-is.
func readUntilDone(r io.Reader) (string, error) {
	var sb strings.Builder

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == inputSentinel {
			return strings.TrimSuffix(sb.String(), "\n"), nil
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// translateSeparator turns the literal two-character sequence \n into an
// actual newline, so separators spanning lines can be typed on one.
func translateSeparator(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
