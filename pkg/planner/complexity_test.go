package planner

import (
	"math"
	"testing"
)

func TestEstimateComplexity(t *testing.T) {
	tests := []struct {
		name    string
		sample  string
		subject string
		want    float64
	}{
		{
			name:    "empty sample is neutral",
			sample:  "",
			subject: "Physics",
			want:    0.5,
		},
		{
			name:    "plain prose",
			sample:  "The French Revolution began in 1789 and reshaped Europe.",
			subject: "History",
			want:    0.4,
		},
		{
			name:    "math symbols",
			sample:  "x ≤ y ≥ z ± w × v",
			subject: "History",
			want:    0.55,
		},
		{
			name:    "formula lines",
			sample:  "e = mc squared\nf = ma in newtons\np = mv momentum",
			subject: "History",
			want:    0.55,
		},
		{
			name:    "definition heavy",
			sample:  "Velocity is defined as rate. Mass refers to quantity. Force means push. This is called inertia.",
			subject: "History",
			want:    0.5,
		},
		{
			name:    "quantitative subject bonus",
			sample:  "Chapter overview and motivation.",
			subject: "Physics",
			want:    0.5,
		},
		{
			name:    "everything clamps at ceiling",
			sample:  "∑ ∫ ∂ ∇ symbols everywhere. e = mc squared\nf = ma force\np = mv momentum\nDensity is defined as mass per volume, which refers to compactness, and means heaviness, and is called rho.",
			subject: "Calculus II",
			want:    0.9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateComplexity(tt.sample, tt.subject)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EstimateComplexity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEstimateComplexityBounds(t *testing.T) {
	samples := []string{
		"",
		"short",
		"∑∫∂∇≤≥≠±×÷√∞∈∀∃ a = bcd, e = fgh, i = jkl, m = nop is defined as and refers to and is called and means something",
	}
	for _, sample := range samples {
		got := EstimateComplexity(sample, "Quantum Chemistry")
		if got < 0.3 || got > 0.9 {
			t.Errorf("EstimateComplexity(%q) = %v, outside [0.3, 0.9]", sample, got)
		}
	}
}
