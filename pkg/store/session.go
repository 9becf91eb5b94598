package store

import "time"

// Topic is one schedulable unit of study material extracted from a document.
// Immutable after creation; the allocator works on scaled copies, never on
// the stored record.
type Topic struct {
	ID             string  `json:"topic_id"`
	Subject        string  `json:"subject"`
	Title          string  `json:"title"`
	PageRange      [2]int  `json:"page_range"`
	EstimatedHours float64 `json:"estimated_hours"`
	Complexity     float64 `json:"complexity"` // 0.3 - 0.9, biases time estimates
}

// Document records one processed source file. Keyed by a fingerprint of
// filename + page count, so re-processing the identical file yields the
// identical id.
type Document struct {
	ID         string   `json:"doc_id"`
	Filename   string   `json:"filename"`
	Subject    string   `json:"subject"`
	TotalPages int      `json:"total_pages"`
	TopicIDs   []string `json:"topics"`
}

// LearnerProfile holds the scheduling-relevant answers from the survey flow.
type LearnerProfile struct {
	MaxDailyDeepHours float64            `json:"max_daily_deep_hours"`
	MaxSessionTime    float64            `json:"max_session_time"`
	PeakWindows       []string           `json:"peak_windows"`
	SubjectConfidence map[string]float64 `json:"subject_confidence,omitempty"`
}

// DefaultProfile is used whenever a session has not completed the survey.
func DefaultProfile() *LearnerProfile {
	return &LearnerProfile{
		MaxDailyDeepHours: 6,
		MaxSessionTime:    1.5,
		PeakWindows:       []string{"17:00"},
	}
}

// Exam tracks an upcoming exam date per subject. Recorded for future use;
// the allocator does not consume it yet.
type Exam struct {
	Subject  string `json:"subject"`
	ExamDate string `json:"exam_date"` // YYYY-MM-DD
}

// StudySession is one contiguous block of time assigned to a single topic
// within a day.
type StudySession struct {
	TopicID       string  `json:"topic_id"`
	Subject       string  `json:"subject"`
	Title         string  `json:"title"`
	StartTime     string  `json:"start_time"` // HH:MM
	DurationHours float64 `json:"duration_hours"`
	Complexity    float64 `json:"complexity"`
}

// ScheduleDay is one calendar day of the plan. Days without sessions are
// never stored.
type ScheduleDay struct {
	Date       string         `json:"date"` // YYYY-MM-DD
	DayOfWeek  string         `json:"day_of_week"`
	Sessions   []StudySession `json:"sessions"`
	TotalHours float64        `json:"total_hours"`
}

// ScheduleSummary aggregates a schedule for quick display.
type ScheduleSummary struct {
	TotalStudyHours float64            `json:"total_study_hours"`
	StudyDays       int                `json:"study_days"`
	HoursPerSubject map[string]float64 `json:"hours_per_subject"`
	TopicsScheduled int                `json:"topics_scheduled"`
	TotalTopics     int                `json:"total_topics"`
}

// Schedule is the full output of one allocation run. A new run replaces the
// previous schedule wholesale.
type Schedule struct {
	ID        string          `json:"schedule_id"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Days      []ScheduleDay   `json:"days"`
	Summary   ScheduleSummary `json:"summary"`
}

// Session is the per-learner planning state. Every operation reads the
// relevant fields, computes, and writes the session back; there is no other
// shared state in the system.
type Session struct {
	ID string `json:"id"`

	// Insertion order = document order, then in-document section order.
	Topics []Topic `json:"topics"`

	// Documents keyed by fingerprint id; DocumentOrder preserves processing order.
	Documents     map[string]Document `json:"documents"`
	DocumentOrder []string            `json:"document_order"`

	Profile  *LearnerProfile `json:"learner_profile,omitempty"`
	Exams    []Exam          `json:"exams,omitempty"`
	Schedule *Schedule       `json:"current_schedule,omitempty"`

	// Survey answers collected so far, keyed by question id.
	SurveyResponses map[string]string `json:"survey_responses,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession returns an empty session with initialized collections.
func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		Topics:    make([]Topic, 0),
		Documents: make(map[string]Document),
		UpdatedAt: time.Now(),
	}
}

// EffectiveProfile returns the stored profile, or the defaults when the
// survey was never completed.
func (s *Session) EffectiveProfile() *LearnerProfile {
	if s.Profile != nil {
		return s.Profile
	}
	return DefaultProfile()
}
