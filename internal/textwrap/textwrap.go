// Package textwrap pre-wraps paragraphs to a fixed number of display
// columns before they reach the renderer.
package textwrap

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Fill wraps text to width columns and joins the lines with newlines.
func Fill(text string, width int) string {
	return strings.Join(Wrap(text, width), "\n")
}

// Wrap packs text into lines no wider than width display columns.
//
// Every whitespace character becomes a single space, but runs of spaces
// between words are kept. Words split after a hyphen that joins two words.
// Whitespace is dropped at the end of every line and at the start of every
// line but the first. Chunks wider than width are cut, filling whatever room
// is left on the current line first. A width below 1 disables wrapping.
func Wrap(text string, width int) []string {
	text = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, text)
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if width < 1 {
		return []string{strings.TrimRight(text, " ")}
	}

	chunks := split(text)
	var lines []string
	for len(chunks) > 0 {
		if len(lines) > 0 && isBlank(chunks[0]) {
			chunks = chunks[1:]
			continue
		}

		var line []string
		used := 0
		for len(chunks) > 0 {
			w := runewidth.StringWidth(chunks[0])
			if used+w > width {
				break
			}
			line = append(line, chunks[0])
			used += w
			chunks = chunks[1:]
		}

		if len(chunks) > 0 && runewidth.StringWidth(chunks[0]) > width {
			if head := cut(chunks[0], width-used, used == 0); head != "" {
				line = append(line, head)
				chunks[0] = chunks[0][len(head):]
			}
		}

		if n := len(line); n > 0 && isBlank(line[n-1]) {
			line = line[:n-1]
		}
		if len(line) > 0 {
			lines = append(lines, strings.Join(line, ""))
		}
	}

	return lines
}

// split breaks text into alternating runs of spaces and words, cutting words
// after any hyphen that sits between a letter or digit and a letter.
func split(text string) []string {
	var (
		chunks []string
		start  int
	)
	runes := []rune(text)
	offsets := make([]int, len(runes)+1)
	pos := 0
	for i, r := range runes {
		offsets[i] = pos
		pos += len(string(r))
	}
	offsets[len(runes)] = pos

	for i := 1; i <= len(runes); i++ {
		if i == len(runes) {
			chunks = append(chunks, text[offsets[start]:])
			break
		}
		prev, cur := runes[i-1], runes[i]
		boundary := (prev == ' ') != (cur == ' ')
		hyphen := prev == '-' && i >= 2 &&
			(unicode.IsLetter(runes[i-2]) || unicode.IsDigit(runes[i-2])) &&
			unicode.IsLetter(cur)
		if boundary || hyphen {
			chunks = append(chunks, text[offsets[start]:offsets[i]])
			start = i
		}
	}
	return chunks
}

func isBlank(chunk string) bool {
	return strings.Trim(chunk, " ") == ""
}

// cut returns the longest prefix of s that fits in cols columns. On an empty
// line it returns at least one rune so wide runes still make progress.
func cut(s string, cols int, emptyLine bool) string {
	if cols < 1 {
		cols = 0
	}
	head := runewidth.Truncate(s, cols, "")
	if head == "" && emptyLine {
		for i := range s {
			if i > 0 {
				return s[:i]
			}
		}
		return s
	}
	return head
}
