// Package export serializes a generated schedule into the formats learners
// download. Every exporter is a pure function of the schedule.
package export

import (
	"fmt"
	"math"
	"strings"

	"study-planner-be/pkg/store"
)

// Fixed CSV header. Durations are integer minutes; end times are start plus
// duration (wrap past midnight is out of scope).
const csvHeader = "Date,Day,Start,End,Subject,Topic,Minutes"

// CSV renders the schedule as comma-separated rows, one per session.
func CSV(schedule *store.Schedule) string {
	lines := []string{csvHeader}
	for _, day := range schedule.Days {
		for _, s := range day.Sessions {
			minutes := int(math.Round(s.DurationHours * 60))
			lines = append(lines, fmt.Sprintf("%s,%s,%s,%s,%s,%s,%d",
				day.Date, day.DayOfWeek, s.StartTime, endTime(s.StartTime, minutes),
				s.Subject, csvSafeTitle(s.Title), minutes))
		}
	}
	return strings.Join(lines, "\n")
}

// csvSafeTitle keeps titles inside a single unquoted CSV cell.
func csvSafeTitle(title string) string {
	runes := []rune(title)
	if len(runes) > 50 {
		runes = runes[:50]
	}
	return strings.ReplaceAll(string(runes), ",", ";")
}

func endTime(start string, durationMinutes int) string {
	var h, m int
	fmt.Sscanf(start, "%d:%d", &h, &m)
	total := h*60 + m + durationMinutes
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
