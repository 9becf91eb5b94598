package planner

import (
	"crypto/md5"
	"fmt"
	"math"

	"study-planner-be/pkg/store"
)

// sampleLength is how much of a section's first page feeds the complexity
// estimate.
const sampleLength = 1500

// DocumentID fingerprints a source file. Stable across re-processing of the
// identical file; two different files collide only when both filename and
// page count match (accepted limitation).
func DocumentID(filename string, totalPages int) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%s_%d", filename, totalPages)))
	return fmt.Sprintf("%x", sum)[:8]
}

// BuildTopics converts detected sections into Topic records with estimated
// study hours. Section i spans from its start page up to the page before
// section i+1 (the final section runs through the last page).
func BuildTopics(src PageSource, structure []SectionMarker, subject, filename string) []store.Topic {
	totalPages := src.TotalPages()
	docID := DocumentID(filename, totalPages)
	topics := make([]store.Topic, 0, len(structure))

	for i, section := range structure {
		startPage := section.Page
		endPage := totalPages
		if i+1 < len(structure) {
			endPage = structure[i+1].Page - 1
		}
		pages := endPage - startPage + 1
		if pages < 1 {
			pages = 1
		}

		complexity := EstimateComplexity(sampleSection(src, section), subject)

		// Hours = pages x 0.4 (25 min/page) x complexity factor (0.8-1.4).
		estimatedHours := round1(float64(pages) * 0.4 * (0.5 + complexity))
		if estimatedHours < 0.5 {
			estimatedHours = 0.5
		}
		if estimatedHours > 8.0 {
			estimatedHours = 8.0
		}

		topics = append(topics, store.Topic{
			ID:             fmt.Sprintf("%s_%02d", docID, i),
			Subject:        subject,
			Title:          truncate(section.Title, 60),
			PageRange:      [2]int{startPage, endPage},
			EstimatedHours: estimatedHours,
			Complexity:     round2(complexity),
		})
	}

	return topics
}

// sampleSection reads the start of a section's first page. Out-of-range or
// unreadable pages degrade to an empty sample rather than failing the
// document.
func sampleSection(src PageSource, section SectionMarker) string {
	if section.Page < 1 || section.Page > src.TotalPages() {
		return ""
	}
	text := []rune(src.PageText(section.Page))
	if len(text) > sampleLength {
		text = text[:sampleLength]
	}
	return string(text)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
