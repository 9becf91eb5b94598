package planner

import (
	"math"
	"sort"

	"study-planner-be/pkg/store"
)

// proportionalAllocator splits every day's capacity between subjects in
// proportion to their outstanding hours, so no subject stalls near the
// deadline. Within a subject, topics are consumed strictly in document
// order: earlier material is always scheduled first.
type proportionalAllocator struct {
	cfg Config
}

func (a *proportionalAllocator) Name() string { return PolicyProportionalBudget }

func (a *proportionalAllocator) Allocate(topics []store.Topic, profile *store.LearnerProfile, startDate, endDate string) (*store.Schedule, error) {
	start, end, scale, err := a.cfg.prepare(topics, profile, startDate, endDate)
	if err != nil {
		return nil, err
	}

	working := buildWorking(topics, scale)

	// Group by subject, preserving first-appearance order.
	bySubject := make(map[string][]*workingTopic)
	subjects := make([]string, 0)
	for _, w := range working {
		if _, ok := bySubject[w.Subject]; !ok {
			subjects = append(subjects, w.Subject)
		}
		bySubject[w.Subject] = append(bySubject[w.Subject], w)
	}

	// Cursor into each subject's ordered topic list.
	cursor := make(map[string]int, len(subjects))

	maxDaily := profile.MaxDailyDeepHours
	maxSession := profile.MaxSessionTime
	passCap := a.cfg.passCap(len(working))

	days := make([]store.ScheduleDay, 0)

	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		// Outstanding hours per subject; subjects below the minimum slot
		// are done and sit out the day.
		outstanding := make(map[string]float64)
		active := make([]string, 0, len(subjects))
		total := 0.0
		for _, s := range subjects {
			rem := 0.0
			for _, w := range bySubject[s] {
				rem += w.Remaining
			}
			if rem >= minSlot {
				outstanding[s] = rem
				active = append(active, s)
				total += rem
			}
		}
		if len(active) == 0 {
			break // everything is scheduled
		}

		// Daily budget per subject, proportional to outstanding work.
		budget := make(map[string]float64, len(active))
		for _, s := range active {
			budget[s] = round2(outstanding[s] / total * maxDaily)
		}

		// Heaviest subject first; stable for ties.
		sort.SliceStable(active, func(i, j int) bool {
			return outstanding[active[i]] > outstanding[active[j]]
		})

		clock := newDayClock()
		sessions := make([]store.StudySession, 0)
		dayHours := 0.0
		used := make(map[string]float64, len(active))

		// Sweep the active subjects until a full pass adds nothing, the
		// day is full, or the safety cap trips.
		for pass := 0; pass < passCap; pass++ {
			progressed := false
			for _, s := range active {
				if dayHours >= maxDaily {
					break
				}
				budgetLeft := budget[s] - used[s]
				if budgetLeft < minSlot {
					continue
				}

				topic := nextTopic(bySubject[s], cursor, s)
				if topic == nil {
					continue
				}

				sessionHours := math.Min(math.Min(maxSession, topic.Remaining), math.Min(budgetLeft, maxDaily-dayHours))
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
				used[s] += sessionHours
				if topic.Remaining < minSlot {
					cursor[s]++
				}
				progressed = true
			}
			if !progressed || dayHours >= maxDaily {
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
		Summary:   Summarize(days, working),
	}, nil
}

// nextTopic returns the subject's cursor topic, advancing past finished ones.
func nextTopic(list []*workingTopic, cursor map[string]int, subject string) *workingTopic {
	for cursor[subject] < len(list) {
		candidate := list[cursor[subject]]
		if candidate.Remaining >= minSlot {
			return candidate
		}
		cursor[subject]++
	}
	return nil
}
