// Package survey holds the learner-profiling questionnaire. Only questions
// that actually change the generated schedule are asked.
package survey

import (
	"fmt"

	"study-planner-be/pkg/store"
)

// Option is one selectable answer.
type Option struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// Question is one survey question with its answer options.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"question"`
	Options []Option `json:"options"`
}

const (
	questionFocus = "focus_duration"
	questionPeak  = "peak_time"
)

// Questions returns the survey in asking order.
func Questions() []Question {
	return []Question{
		{
			ID:   questionFocus,
			Text: "How long can you typically maintain deep focus before needing a break?",
			Options: []Option{
				{Key: "a", Text: "Less than 30 minutes"},
				{Key: "b", Text: "30-60 minutes"},
				{Key: "c", Text: "1-2 hours"},
				{Key: "d", Text: "More than 2 hours"},
			},
		},
		{
			ID:   questionPeak,
			Text: "When do you feel most mentally sharp?",
			Options: []Option{
				{Key: "a", Text: "Early morning (6am-10am)"},
				{Key: "b", Text: "Late morning to afternoon (10am-3pm)"},
				{Key: "c", Text: "Evening (5pm-9pm)"},
				{Key: "d", Text: "Night (after 9pm)"},
			},
		},
	}
}

var focusHours = map[string]float64{"a": 4, "b": 5, "c": 6, "d": 8}
var peakWindows = map[string]string{"a": "06:00", "b": "10:00", "c": "17:00", "d": "21:00"}

// Validate checks one answer against its question.
func Validate(questionID, answer string) error {
	for _, q := range Questions() {
		if q.ID != questionID {
			continue
		}
		for _, opt := range q.Options {
			if opt.Key == answer {
				return nil
			}
		}
		return fmt.Errorf("survey: invalid answer %q for question %s", answer, questionID)
	}
	return fmt.Errorf("survey: unknown question %q", questionID)
}

// Score maps collected answers onto a LearnerProfile. Unanswered questions
// keep their defaults.
func Score(responses map[string]string) *store.LearnerProfile {
	profile := store.DefaultProfile()
	if hours, ok := focusHours[responses[questionFocus]]; ok {
		profile.MaxDailyDeepHours = hours
	}
	if window, ok := peakWindows[responses[questionPeak]]; ok {
		profile.PeakWindows = []string{window}
	}
	return profile
}
