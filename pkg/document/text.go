package document

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"study-planner-be/pkg/planner"
)

// linesPerPage approximates a printed page for plain-text material.
const linesPerPage = 45

// TextLoader paginates plain-text (and Markdown) files into fixed-size
// pages. Markdown headings up to "##" double as an outline, so well-formed
// notes get real section boundaries instead of page chunks.
type TextLoader struct{}

func (l *TextLoader) Load(r io.ReadSeeker, filename string) (*Content, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}

	content := &Content{Filename: filename}

	for start := 0; start < len(lines) || start == 0; start += linesPerPage {
		end := start + linesPerPage
		if end > len(lines) {
			end = len(lines)
		}
		content.pages = append(content.pages, strings.Join(lines[start:end], "\n"))
	}

	content.outline = markdownOutline(lines)
	return content, nil
}

// markdownOutline maps "#" and "##" headings to outline entries. The page
// is derived from the heading's line position.
func markdownOutline(lines []string) []planner.OutlineEntry {
	var entries []planner.OutlineEntry
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		level := 0
		switch {
		case strings.HasPrefix(trimmed, "## "):
			level = 2
		case strings.HasPrefix(trimmed, "# "):
			level = 1
		default:
			continue
		}
		entries = append(entries, planner.OutlineEntry{
			Level: level,
			Title: strings.TrimSpace(strings.TrimLeft(trimmed, "# ")),
			Page:  i/linesPerPage + 1,
		})
	}
	return entries
}
