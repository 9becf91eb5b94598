package planner

import (
	"regexp"
	"strings"
)

// Heuristic signals for content difficulty.
var (
	mathSymbolPattern = regexp.MustCompile(`[∑∫∂∇≤≥≠±×÷√∞∈∀∃=]`)
	formulaPattern    = regexp.MustCompile(`\b[a-z]\s*=\s*[^,\n]{3,}`)
	definitionPattern = regexp.MustCompile(`\b(defined?|means?|refers?\s+to|is\s+called)\b`)
)

var quantitativeSubjects = []string{"physics", "math", "calculus", "chem"}

// EstimateComplexity scores a text sample in [0.3, 0.9]. Harder material is
// scheduled with inflated time estimates and is meant for peak-focus hours.
// An empty sample scores a neutral 0.5.
func EstimateComplexity(sample, subject string) float64 {
	if sample == "" {
		return 0.5
	}

	lower := strings.ToLower(sample)
	mathSymbols := len(mathSymbolPattern.FindAllString(sample, -1))
	formulas := len(formulaPattern.FindAllString(lower, -1))
	definitions := len(definitionPattern.FindAllString(lower, -1))

	complexity := 0.4
	if mathSymbols > 3 {
		complexity += 0.15
	}
	if formulas > 2 {
		complexity += 0.15
	}
	if definitions > 3 {
		complexity += 0.1
	}

	subjectLower := strings.ToLower(subject)
	for _, s := range quantitativeSubjects {
		if strings.Contains(subjectLower, s) {
			complexity += 0.1
			break
		}
	}

	if complexity > 0.9 {
		complexity = 0.9
	}
	if complexity < 0.3 {
		complexity = 0.3
	}
	return complexity
}
