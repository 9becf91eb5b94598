// Package events defines the planner's domain events. They are published on
// an in-process bus and consumed for audit logging; the engines themselves
// stay synchronous.
package events

import "time"

// Topic is the single pub/sub topic all planner events flow through.
const Topic = "PLANNER_EVENTS"

// Event types.
const (
	TypeDocumentProcessed = "DOCUMENT_PROCESSED"
	TypeScheduleGenerated = "SCHEDULE_GENERATED"
	TypeTopicsReset       = "TOPICS_RESET"
)

// Event is the envelope carried on the bus.
type Event struct {
	Type       string                 `json:"type"`
	SessionID  string                 `json:"session_id"`
	Data       map[string]interface{} `json:"data,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func newEvent(eventType, sessionID string, data map[string]interface{}) Event {
	return Event{
		Type:       eventType,
		SessionID:  sessionID,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

// DocumentProcessed is emitted after segmentation adds topics to a session.
func DocumentProcessed(sessionID, docID string, topicsCreated int) Event {
	return newEvent(TypeDocumentProcessed, sessionID, map[string]interface{}{
		"doc_id":         docID,
		"topics_created": topicsCreated,
	})
}

// ScheduleGenerated is emitted after a successful allocation run.
func ScheduleGenerated(sessionID, scheduleID string, studyDays int) Event {
	return newEvent(TypeScheduleGenerated, sessionID, map[string]interface{}{
		"schedule_id": scheduleID,
		"study_days":  studyDays,
	})
}

// TopicsReset is emitted when a session clears its topic collection.
func TopicsReset(sessionID string, topicsCleared int) Event {
	return newEvent(TypeTopicsReset, sessionID, map[string]interface{}{
		"topics_cleared": topicsCleared,
	})
}
