// File: tokenize.go
// Role: Byte-level tokenizer over io.Reader, string and file inputs.

package text

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxTokenSize bounds a single word held by the scanner. Longer letter runs
// fail with bufio.ErrTooLong instead of growing without limit.
const maxTokenSize = 1 << 20

// Tokenize reads r to EOF and returns its words in order.
//
// Implementation:
//   - Stage 1: Scan with splitWords, which skips separators and yields letter runs.
//   - Stage 2: Lower-case each run (ASCII only, so bytes.ToLower is not needed).
//
// Errors:
//   - Any read error from r, or bufio.ErrTooLong for a word over maxTokenSize.
//
// Complexity:
//   - Time O(n) over input bytes, Space O(n) for the result.
func Tokenize(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxTokenSize)
	sc.Split(splitWords)

	var out []string
	for sc.Scan() {
		out = append(out, strings.ToLower(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("text: scan: %w", err)
	}

	return out, nil
}

// TokenizeString is Tokenize over an in-memory string. It cannot fail.
func TokenizeString(s string) []string {
	out, _ := Tokenize(strings.NewReader(s))

	return out
}

// TokenizeFile opens path and tokenizes its full contents.
//
// Errors:
//   - The *os.PathError from os.Open, wrapped with the path.
func TokenizeFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("text: open %q: %w", path, err)
	}
	defer f.Close()

	return Tokenize(f)
}

// IsLetter reports whether b is kept by the tokenizer.
func IsLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// splitWords is a bufio.SplitFunc yielding maximal runs of ASCII letters.
func splitWords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && !IsLetter(data[start]) {
		start++
	}
	for i := start; i < len(data); i++ {
		if !IsLetter(data[i]) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	// Request more data, discarding the separators already skipped.
	return start, nil, nil
}
