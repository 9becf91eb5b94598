package planner

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"study-planner-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() *store.LearnerProfile {
	return &store.LearnerProfile{
		MaxDailyDeepHours: 6.0,
		MaxSessionTime:    1.5,
		PeakWindows:       []string{"17:00"},
	}
}

func mathTopics() []store.Topic {
	return []store.Topic{
		{ID: "doc1_00", Subject: "Math", Title: "Limits", EstimatedHours: 3.0, Complexity: 0.6},
		{ID: "doc1_01", Subject: "Math", Title: "Derivatives", EstimatedHours: 2.0, Complexity: 0.6},
		{ID: "doc1_02", Subject: "Math", Title: "Integrals", EstimatedHours: 1.0, Complexity: 0.6},
	}
}

// clockMinutes converts "HH:MM" to minutes since midnight.
func clockMinutes(t *testing.T, clock string) int {
	t.Helper()
	parts := strings.SplitN(clock, ":", 2)
	require.Len(t, parts, 2, "bad clock %q", clock)
	h, err := strconv.Atoi(parts[0])
	require.NoError(t, err)
	m, err := strconv.Atoi(parts[1])
	require.NoError(t, err)
	return h*60 + m
}

func TestProportionalSingleDayPacking(t *testing.T) {
	alloc, err := New(PolicyProportionalBudget, Config{})
	require.NoError(t, err)

	schedule, err := alloc.Allocate(mathTopics(), testProfile(), "2026-09-07", "2026-09-07")
	require.NoError(t, err)
	require.Len(t, schedule.Days, 1)

	day := schedule.Days[0]
	assert.Equal(t, "2026-09-07", day.Date)
	assert.Equal(t, "Monday", day.DayOfWeek)
	assert.Equal(t, 6.0, day.TotalHours)

	// Topics are consumed in document order, split at the session cap,
	// and the post-lunch session is pushed to 13:00.
	wantSessions := []struct {
		topicID  string
		start    string
		duration float64
	}{
		{"doc1_00", "08:00", 1.5},
		{"doc1_00", "09:45", 1.5},
		{"doc1_01", "13:00", 1.5},
		{"doc1_01", "14:45", 0.5},
		{"doc1_02", "15:30", 1.0},
	}
	require.Len(t, day.Sessions, len(wantSessions))
	for i, want := range wantSessions {
		got := day.Sessions[i]
		assert.Equal(t, want.topicID, got.TopicID, "session %d topic", i)
		assert.Equal(t, want.start, got.StartTime, "session %d start", i)
		assert.Equal(t, want.duration, got.DurationHours, "session %d duration", i)
	}

	assert.Equal(t, 6.0, schedule.Summary.TotalStudyHours)
	assert.Equal(t, 3, schedule.Summary.TopicsScheduled)
	assert.Equal(t, 3, schedule.Summary.TotalTopics)
	assert.Equal(t, 6.0, schedule.Summary.HoursPerSubject["Math"])
}

func TestProportionalTwoSubjectSplit(t *testing.T) {
	topics := []store.Topic{
		{ID: "m_00", Subject: "Math", Title: "Algebra", EstimatedHours: 4.0, Complexity: 0.7},
		{ID: "h_00", Subject: "History", Title: "Rome", EstimatedHours: 4.0, Complexity: 0.4},
	}

	alloc, err := New(PolicyProportionalBudget, Config{})
	require.NoError(t, err)

	// Two days of 6h against 8h of demand: scale caps at 1.5, so both
	// topics stretch to 6h and fill the range exactly.
	schedule, err := alloc.Allocate(topics, testProfile(), "2026-09-07", "2026-09-08")
	require.NoError(t, err)
	require.Len(t, schedule.Days, 2)

	for _, day := range schedule.Days {
		assert.Equal(t, 6.0, day.TotalHours)
		perSubject := map[string]float64{}
		for _, s := range day.Sessions {
			perSubject[s.Subject] += s.DurationHours
		}
		// Equal outstanding hours means an equal split every day.
		assert.Equal(t, 3.0, perSubject["Math"], "day %s", day.Date)
		assert.Equal(t, 3.0, perSubject["History"], "day %s", day.Date)
	}

	assert.Equal(t, 12.0, schedule.Summary.TotalStudyHours)
	assert.Equal(t, 6.0, schedule.Summary.HoursPerSubject["Math"])
	assert.Equal(t, 6.0, schedule.Summary.HoursPerSubject["History"])
	assert.Equal(t, 2, schedule.Summary.TopicsScheduled)
}

func TestAllocatorsRespectLunchWindow(t *testing.T) {
	for _, policy := range []string{PolicyProportionalBudget, PolicyRoundRobinQueue} {
		t.Run(policy, func(t *testing.T) {
			alloc, err := New(policy, Config{})
			require.NoError(t, err)

			schedule, err := alloc.Allocate(mathTopics(), testProfile(), "2026-09-07", "2026-09-09")
			require.NoError(t, err)

			for _, day := range schedule.Days {
				for _, s := range day.Sessions {
					start := clockMinutes(t, s.StartTime)
					end := start + int(s.DurationHours*60)
					overlaps := start < 13*60 && end > 12*60
					assert.False(t, overlaps, "session %s+%.2fh on %s overlaps lunch", s.StartTime, s.DurationHours, day.Date)
				}
			}
		})
	}
}

func TestAllocatorsRespectDailyAndSessionCaps(t *testing.T) {
	topics := make([]store.Topic, 0, 8)
	for i := 0; i < 8; i++ {
		topics = append(topics, store.Topic{
			ID:             "t_" + strconv.Itoa(i),
			Subject:        []string{"Math", "Physics", "Biology"}[i%3],
			Title:          "Topic " + strconv.Itoa(i),
			EstimatedHours: 2.5,
			Complexity:     0.5,
		})
	}
	profile := testProfile()

	for _, policy := range []string{PolicyProportionalBudget, PolicyRoundRobinQueue} {
		t.Run(policy, func(t *testing.T) {
			alloc, err := New(policy, Config{})
			require.NoError(t, err)

			schedule, err := alloc.Allocate(topics, profile, "2026-09-01", "2026-09-05")
			require.NoError(t, err)
			require.NotEmpty(t, schedule.Days)

			for _, day := range schedule.Days {
				assert.LessOrEqual(t, day.TotalHours, profile.MaxDailyDeepHours+1e-9, "day %s over budget", day.Date)
				assert.NotEmpty(t, day.Sessions)
				for _, s := range day.Sessions {
					assert.LessOrEqual(t, s.DurationHours, profile.MaxSessionTime+1e-9)
					assert.GreaterOrEqual(t, s.DurationHours, 0.25)
				}
			}
		})
	}
}

func TestAllocateScalesDownOversizedDemand(t *testing.T) {
	topics := []store.Topic{
		{ID: "a", Subject: "Math", Title: "A", EstimatedHours: 8.0, Complexity: 0.8},
		{ID: "b", Subject: "Math", Title: "B", EstimatedHours: 8.0, Complexity: 0.8},
	}

	alloc, err := New(PolicyProportionalBudget, Config{})
	require.NoError(t, err)

	// 16h of demand into a single 6h day: both topics are compressed
	// proportionally instead of the second being dropped.
	schedule, err := alloc.Allocate(topics, testProfile(), "2026-09-07", "2026-09-07")
	require.NoError(t, err)
	require.Len(t, schedule.Days, 1)

	seen := map[string]float64{}
	for _, s := range schedule.Days[0].Sessions {
		seen[s.TopicID] += s.DurationHours
	}
	assert.InDelta(t, 3.0, seen["a"], 0.26)
	assert.InDelta(t, 3.0, seen["b"], 0.26)
	assert.Equal(t, 2, schedule.Summary.TopicsScheduled)
}

func TestAllocateStopsWhenWorkRunsOut(t *testing.T) {
	topics := []store.Topic{
		{ID: "a", Subject: "Math", Title: "A", EstimatedHours: 1.0, Complexity: 0.5},
	}

	for _, policy := range []string{PolicyProportionalBudget, PolicyRoundRobinQueue} {
		t.Run(policy, func(t *testing.T) {
			alloc, err := New(policy, Config{})
			require.NoError(t, err)

			// Thirty days for 1.5h of (stretched) work: only the first day
			// appears, empty days are never emitted.
			schedule, err := alloc.Allocate(topics, testProfile(), "2026-09-01", "2026-09-30")
			require.NoError(t, err)
			assert.Len(t, schedule.Days, 1)
			assert.Equal(t, 1, schedule.Summary.StudyDays)
		})
	}
}

func TestAllocateInputValidation(t *testing.T) {
	alloc, err := New(PolicyProportionalBudget, Config{MaxTopics: 2})
	require.NoError(t, err)

	_, err = alloc.Allocate(nil, testProfile(), "2026-09-01", "2026-09-02")
	assert.ErrorIs(t, err, ErrNoTopics)

	_, err = alloc.Allocate(mathTopics(), testProfile(), "2026-09-01", "2026-09-02")
	assert.ErrorIs(t, err, ErrTooManyTopics)

	wide, err := New(PolicyProportionalBudget, Config{})
	require.NoError(t, err)

	_, err = wide.Allocate(mathTopics(), testProfile(), "09/01/2026", "2026-09-02")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = wide.Allocate(mathTopics(), testProfile(), "2026-09-05", "2026-09-01")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestNewRejectsUnknownPolicy(t *testing.T) {
	_, err := New("fifo", Config{})
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoTopics))
}

func TestRoundRobinInterleavesQueue(t *testing.T) {
	topics := []store.Topic{
		{ID: "m_00", Subject: "Math", Title: "Algebra", EstimatedHours: 1.0, Complexity: 0.5},
		{ID: "h_00", Subject: "History", Title: "Rome", EstimatedHours: 1.0, Complexity: 0.5},
		{ID: "m_01", Subject: "Math", Title: "Geometry", EstimatedHours: 1.0, Complexity: 0.5},
	}

	alloc, err := New(PolicyRoundRobinQueue, Config{})
	require.NoError(t, err)

	// 3h of demand, 6h available: scale 1.5 stretches each topic to 1.5h,
	// exactly one session each, in queue order.
	schedule, err := alloc.Allocate(topics, testProfile(), "2026-09-07", "2026-09-07")
	require.NoError(t, err)
	require.Len(t, schedule.Days, 1)

	sessions := schedule.Days[0].Sessions
	require.Len(t, sessions, 3)
	assert.Equal(t, "m_00", sessions[0].TopicID)
	assert.Equal(t, "h_00", sessions[1].TopicID)
	assert.Equal(t, "m_01", sessions[2].TopicID)
	assert.Equal(t, "08:00", sessions[0].StartTime)
	assert.Equal(t, "09:45", sessions[1].StartTime)
	assert.Equal(t, "13:00", sessions[2].StartTime)
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{8.0, "08:00"},
		{9.75, "09:45"},
		{13.0, "13:00"},
		{15.5, "15:30"},
		{9.55, "09:33"},
	}
	for _, tt := range tests {
		if got := formatClock(tt.in); got != tt.want {
			t.Errorf("formatClock(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
