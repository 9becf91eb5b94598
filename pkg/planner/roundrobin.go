package planner

import (
	"math"

	"study-planner-be/pkg/store"
)

// roundRobinAllocator cycles one flat queue of topics in document order,
// giving each a session per pass until the day is full. Simpler than the
// proportional policy but weaker fairness: a subject with many small topics
// can crowd out one with few large topics on a given day.
type roundRobinAllocator struct {
	cfg Config
}

func (a *roundRobinAllocator) Name() string { return PolicyRoundRobinQueue }

func (a *roundRobinAllocator) Allocate(topics []store.Topic, profile *store.LearnerProfile, startDate, endDate string) (*store.Schedule, error) {
	start, end, scale, err := a.cfg.prepare(topics, profile, startDate, endDate)
	if err != nil {
		return nil, err
	}

	queue := buildWorking(topics, scale)
	maxDaily := profile.MaxDailyDeepHours
	maxSession := profile.MaxSessionTime
	passCap := a.cfg.passCap(len(queue))

	days := make([]store.ScheduleDay, 0)

	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		if remainingTotal(queue) < minSlot {
			break
		}

		clock := newDayClock()
		sessions := make([]store.StudySession, 0)
		dayHours := 0.0

		for pass := 0; pass < passCap && dayHours < maxDaily; pass++ {
			progressed := false
			for _, topic := range queue {
				if dayHours >= maxDaily {
					break
				}
				if topic.Remaining < minSlot {
					continue
				}

				sessionHours := math.Min(math.Min(maxSession, topic.Remaining), maxDaily-dayHours)
				if sessionHours < minSlot {
					continue
				}

				sessions = append(sessions, store.StudySession{
					TopicID:       topic.ID,
					Subject:       topic.Subject,
					Title:         topic.Title,
					StartTime:     formatClock(clock.place(sessionHours)),
					DurationHours: round1(sessionHours),
					Complexity:    topic.Complexity,
				})

				topic.Remaining -= sessionHours
				dayHours += sessionHours
				progressed = true
			}
			if !progressed {
				break
			}
		}

		if len(sessions) > 0 {
			days = append(days, store.ScheduleDay{
				Date:       current.Format(dateLayout),
				DayOfWeek:  current.Weekday().String(),
				Sessions:   sessions,
				TotalHours: round1(dayHours),
			})
		}
	}

	return &store.Schedule{
		ID:        scheduleID(startDate, endDate),
		StartDate: startDate,
		EndDate:   endDate,
		Days:      days,
		Summary:   Summarize(days, queue),
	}, nil
}

func remainingTotal(queue []*workingTopic) float64 {
	total := 0.0
	for _, t := range queue {
		total += t.Remaining
	}
	return total
}
