package planner

import (
	"crypto/md5"
	"fmt"
	"math"
	"time"

	"study-planner-be/pkg/store"
)

const (
	// minSlot is the smallest schedulable block of time, in hours.
	minSlot = 0.25
	// sessionBuffer is the rest gap inserted after every session.
	sessionBuffer = 0.25
	// dayStart is the first session slot of a day (08:00).
	dayStart = 8.0
	// Lunch window; sessions never start inside it or span across it.
	lunchStart = 12.0
	lunchEnd   = 13.0

	dateLayout = "2006-01-02"
)

// Allocation policy names accepted by New.
const (
	PolicyProportionalBudget = "proportional"
	PolicyRoundRobinQueue    = "round_robin"
)

// Config bounds an allocation run. Zero values fall back to defaults.
type Config struct {
	// MaxTopics caps the topic collection size; beyond it allocation fails
	// with ErrTooManyTopics. Zero means 500.
	MaxTopics int
	// PassCapFactor bounds the per-day packing loop at factor x topic count
	// sweeps, guaranteeing termination on pathological input. Zero means 3.
	PassCapFactor int
}

func (c Config) maxTopics() int {
	if c.MaxTopics <= 0 {
		return 500
	}
	return c.MaxTopics
}

func (c Config) passCap(topicCount int) int {
	factor := c.PassCapFactor
	if factor <= 0 {
		factor = 3
	}
	cap := factor * topicCount
	if cap < 1 {
		cap = 1
	}
	return cap
}

// Allocator distributes the topic collection across a date range under the
// learner's daily-capacity and session-length constraints.
type Allocator interface {
	Name() string
	Allocate(topics []store.Topic, profile *store.LearnerProfile, startDate, endDate string) (*store.Schedule, error)
}

// New returns the allocator for the given policy name. An empty policy
// selects the proportional-budget allocator.
func New(policy string, cfg Config) (Allocator, error) {
	switch policy {
	case "", PolicyProportionalBudget:
		return &proportionalAllocator{cfg: cfg}, nil
	case PolicyRoundRobinQueue:
		return &roundRobinAllocator{cfg: cfg}, nil
	default:
		return nil, fmt.Errorf("planner: unknown allocation policy %q", policy)
	}
}

// workingTopic is the mutable per-run copy of a stored topic. Its hours are
// scaled to the available capacity; the stored record is never touched.
type workingTopic struct {
	ID         string
	Subject    string
	Title      string
	Complexity float64
	TotalHours float64
	Remaining  float64
}

func parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, startDate)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, endDate)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end %s before start %s", ErrInvalidDate, endDate, startDate)
	}
	return start, end, nil
}

// prepare validates the collection and computes the demand/capacity scale:
// min(1.5, available/needed). Excess capacity stretches sessions into review
// buffer; excess demand compresses every topic proportionally so the tail of
// the collection is never truncated.
func (c Config) prepare(topics []store.Topic, profile *store.LearnerProfile, startDate, endDate string) (start, end time.Time, scale float64, err error) {
	if len(topics) == 0 {
		return time.Time{}, time.Time{}, 0, ErrNoTopics
	}
	if len(topics) > c.maxTopics() {
		return time.Time{}, time.Time{}, 0, fmt.Errorf("%w: %d > %d", ErrTooManyTopics, len(topics), c.maxTopics())
	}

	start, end, err = parseRange(startDate, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, 0, err
	}

	totalDays := int(end.Sub(start).Hours()/24) + 1
	totalAvail := float64(totalDays) * profile.MaxDailyDeepHours
	totalNeeded := 0.0
	for _, t := range topics {
		totalNeeded += t.EstimatedHours
	}

	scale = 1.0
	if totalNeeded > 0 {
		scale = totalAvail / totalNeeded
		if scale > 1.5 {
			scale = 1.5
		}
	}
	return start, end, scale, nil
}

func buildWorking(topics []store.Topic, scale float64) []*workingTopic {
	working := make([]*workingTopic, 0, len(topics))
	for _, t := range topics {
		scaled := round1(t.EstimatedHours * scale)
		working = append(working, &workingTopic{
			ID:         t.ID,
			Subject:    t.Subject,
			Title:      t.Title,
			Complexity: t.Complexity,
			TotalHours: scaled,
			Remaining:  scaled,
		})
	}
	return working
}

// dayClock tracks the wall-clock position while packing one day.
type dayClock struct {
	now float64
}

func newDayClock() *dayClock {
	return &dayClock{now: dayStart}
}

// place reserves a slot of the given length and returns its start time.
// A session that would start inside, or run across, the lunch window is
// pushed to its end.
func (c *dayClock) place(duration float64) float64 {
	start := c.now
	if start < lunchEnd && start+duration > lunchStart {
		start = lunchEnd
	}
	c.now = start + duration + sessionBuffer
	return start
}

func formatClock(t float64) string {
	totalMinutes := int(math.Round(t * 60))
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}

func scheduleID(startDate, endDate string) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%s_%s", startDate, endDate)))
	return fmt.Sprintf("%x", sum)[:8]
}
