package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// DefaultWrapWidth is the label width in characters.
const DefaultWrapWidth = 10

// Wrap breaks s into lines of at most width characters. Lines break at
// whitespace and after hyphens inside words; a word longer than width is
// split to fill the rest of the current line. Width counts runes, so wide
// scripts get as many characters per line as Latin ones. Escape sequences
// are removed before wrapping.
func Wrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	chunks := splitChunks(ansi.Strip(s))

	var lines []string
	for len(chunks) > 0 {
		if isBlank(chunks[0]) {
			chunks = chunks[1:]
			continue
		}

		var line []rune
		for len(chunks) > 0 && len(line)+len(chunks[0]) <= width {
			line = append(line, chunks[0]...)
			chunks = chunks[1:]
		}
		if len(chunks) > 0 && len(chunks[0]) > width {
			n := width - len(line)
			line = append(line, chunks[0][:n]...)
			chunks[0] = chunks[0][n:]
		}
		if l := strings.TrimRight(string(line), " "); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// splitChunks cuts s into words and whitespace runs. Whitespace becomes
// plain spaces and words are also cut after a hyphen joining two letters.
func splitChunks(s string) [][]rune {
	rs := []rune(s)
	var chunks [][]rune
	start := 0
	for i := 0; i < len(rs); i++ {
		if unicode.IsSpace(rs[i]) {
			rs[i] = ' '
		}
		end := i+1 == len(rs)
		if !end {
			next := rs[i+1]
			switch {
			case (rs[i] == ' ') != unicode.IsSpace(next):
				end = true
			case rs[i] == '-' && i > start && unicode.IsLetter(rs[i-1]) && unicode.IsLetter(next):
				end = true
			}
		}
		if end {
			chunks = append(chunks, rs[start:i+1])
			start = i + 1
		}
	}
	return chunks
}

func isBlank(chunk []rune) bool {
	return strings.TrimSpace(string(chunk)) == ""
}
