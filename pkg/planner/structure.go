package planner

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// OutlineEntry is one entry of a document's hierarchical outline (TOC).
type OutlineEntry struct {
	Level int
	Title string
	Page  int // 1-indexed
}

// PageSource is the minimal view of a loaded document the segmenter needs.
// Implemented by pkg/document; kept as an interface so the engine stays
// independent of any concrete file format.
type PageSource interface {
	TotalPages() int
	// PageText returns the text of the given 1-indexed page. Unreadable
	// pages return "".
	PageText(page int) string
	// Outline returns the document outline, or nil when none exists.
	Outline() []OutlineEntry
}

// SectionMarker is one detected section boundary.
type SectionMarker struct {
	Title string
	Page  int // 1-indexed start page
}

// Section titles that are navigation or back-matter rather than study
// content. Matched exactly and as substrings, lowercased.
var skipTitles = []string{
	"contents", "index", "bibliography", "references", "glossary",
	"acknowledgment", "preface", "foreword", "dedication", "about the author",
	"table of contents", "list of figures", "list of tables", "credits",
	"back cover", "front cover", "cover", "title page", "copyright",
	"copyright page", "appendix", "answers", "data sets", "websites",
	"odd-numbered", "even-numbered",
}

var headingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^Chapter\s+\d+`),
	regexp.MustCompile(`(?i)^Unit\s+\d+`),
	regexp.MustCompile(`(?i)^Module\s+\d+`),
	regexp.MustCompile(`^\d+\.\s+[A-Z][a-z]`),
}

func isSkippedTitle(lower string) bool {
	for _, skip := range skipTitles {
		if strings.Contains(lower, skip) {
			return true
		}
	}
	return false
}

// ExtractStructure derives the ordered section boundaries of a document.
// Three tiers, each a fallback for the previous one:
//  1. outline entries at depth <= 2, filtered against the skip list;
//  2. heading-pattern scan over the first lines of every page;
//  3. fixed page chunks.
//
// The filtering is heuristic: a legitimate chapter named "Appendix: Worked
// Examples" is suppressed. That precision/recall tradeoff is accepted.
func ExtractStructure(src PageSource) []SectionMarker {
	totalPages := src.TotalPages()
	structure := make([]SectionMarker, 0)

	// Tier 1: outline, levels 1-2 (parts + chapters).
	for _, entry := range src.Outline() {
		title := strings.TrimSpace(entry.Title)
		if entry.Level > 2 || len(title) <= 2 {
			continue
		}
		if !isSkippedTitle(strings.ToLower(title)) {
			structure = append(structure, SectionMarker{Title: title, Page: entry.Page})
		}
	}

	// Tier 2: scan page headings when the outline gave too little.
	if len(structure) < 3 {
		seen := make(map[string]bool)
		for pageNum := 1; pageNum <= totalPages; pageNum++ {
			lines := strings.Split(src.PageText(pageNum), "\n")
			if len(lines) > 10 {
				lines = lines[:10]
			}
			for _, line := range lines {
				line = strings.TrimSpace(line)
				if len(line) <= 5 || len(line) >= 80 {
					continue
				}
				lower := strings.ToLower(line)
				if exactSkip(lower) {
					continue
				}
				for _, p := range headingPatterns {
					if p.MatchString(line) {
						// A running header repeats on every page; keep the
						// first occurrence only.
						if !seen[line] {
							seen[line] = true
							structure = append(structure, SectionMarker{Title: line, Page: pageNum})
						}
						break
					}
				}
			}
		}
	}

	// Tier 3: fixed page chunks. Always yields at least one section, even
	// for an empty or single-page document.
	if len(structure) < 2 {
		pagesPerChunk := totalPages / 10
		if pagesPerChunk < 20 {
			pagesPerChunk = 20
		}
		for i := 0; i < totalPages || i == 0; i += pagesPerChunk {
			last := i + pagesPerChunk
			if last > totalPages {
				last = totalPages
			}
			if last < i+1 {
				last = i + 1
			}
			structure = append(structure, SectionMarker{
				Title: fmt.Sprintf("Section %d (Pages %d-%d)", i/pagesPerChunk+1, i+1, last),
				Page:  i + 1,
			})
		}
	}

	sort.SliceStable(structure, func(a, b int) bool {
		return structure[a].Page < structure[b].Page
	})

	return dedupeMarkers(structure)
}

func exactSkip(lower string) bool {
	for _, skip := range skipTitles {
		if lower == skip {
			return true
		}
	}
	return false
}

func dedupeMarkers(markers []SectionMarker) []SectionMarker {
	out := markers[:0]
	var prev SectionMarker
	for i, m := range markers {
		if i > 0 && m == prev {
			continue
		}
		out = append(out, m)
		prev = m
	}
	return out
}
