package planner

import "study-planner-be/pkg/store"

// Summarize aggregates a finished allocation run: hours per subject, total
// hours, and how many topics received any session at all. A shortfall
// (topics scheduled < total topics) is reported here, never as an error.
func Summarize(days []store.ScheduleDay, working []*workingTopic) store.ScheduleSummary {
	hoursPerSubject := make(map[string]float64)
	total := 0.0
	for _, day := range days {
		total += day.TotalHours
		for _, s := range day.Sessions {
			hoursPerSubject[s.Subject] += s.DurationHours
		}
	}
	for subject, hours := range hoursPerSubject {
		hoursPerSubject[subject] = round1(hours)
	}

	scheduled := 0
	for _, w := range working {
		if w.Remaining < w.TotalHours-0.1 {
			scheduled++
		}
	}

	return store.ScheduleSummary{
		TotalStudyHours: round1(total),
		StudyDays:       len(days),
		HoursPerSubject: hoursPerSubject,
		TopicsScheduled: scheduled,
		TotalTopics:     len(working),
	}
}
