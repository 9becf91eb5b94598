package export

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"study-planner-be/pkg/store"
)

// Markdown renders the schedule as a human-readable study plan: summary,
// per-subject hours table, then one table per scheduled day.
func Markdown(schedule *store.Schedule) string {
	summary := schedule.Summary
	lines := []string{
		"# Study Schedule",
		"",
		fmt.Sprintf("**Period:** %s to %s", schedule.StartDate, schedule.EndDate),
		fmt.Sprintf("**Total Time:** %v hours across %d days", summary.TotalStudyHours, summary.StudyDays),
		fmt.Sprintf("**Topics:** %d/%d", summary.TopicsScheduled, summary.TotalTopics),
		"",
		"## Hours by Subject",
		"",
		"| Subject | Hours |",
		"|---------|------:|",
	}

	subjects := make([]string, 0, len(summary.HoursPerSubject))
	for subject := range summary.HoursPerSubject {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)
	for _, subject := range subjects {
		lines = append(lines, fmt.Sprintf("| %s | %v |", subject, summary.HoursPerSubject[subject]))
	}

	lines = append(lines, "", "## Daily Plan", "")

	for _, day := range schedule.Days {
		lines = append(lines,
			fmt.Sprintf("### %s, %s (%vh)", day.DayOfWeek, day.Date, day.TotalHours),
			"",
			"| Time | Subject | Topic | Duration |",
			"|------|---------|-------|----------|",
		)
		for _, s := range day.Sessions {
			lines = append(lines, fmt.Sprintf("| %s | %s | %s | %s |",
				s.StartTime, s.Subject, mdTitle(s.Title), formatDuration(s.DurationHours)))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func mdTitle(title string) string {
	runes := []rune(title)
	if len(runes) > 40 {
		return string(runes[:40]) + "..."
	}
	return title
}

// formatDuration renders hours with one decimal for sessions of an hour or
// more, and minutes below that.
func formatDuration(hours float64) string {
	if hours >= 1 {
		return fmt.Sprintf("%vh", hours)
	}
	return fmt.Sprintf("%dm", int(math.Round(hours*60)))
}
