package source

import (
	"bufio"
	"io"
)

// TextSource handles plain text files. Each physical line is one
// paragraph line; blank lines are carried through as-is so the
// extraction passes see the document exactly as written.
type TextSource struct{}

func (s *TextSource) Lines(r io.Reader, filename string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
