package dto

// TopicPreview is the short per-topic line returned after segmentation.
type TopicPreview struct {
	Title          string  `json:"title"`
	EstimatedHours float64 `json:"estimated_hours"`
}

type ProcessDocumentResponse struct {
	DocId         string         `json:"doc_id"`
	Filename      string         `json:"filename"`
	Subject       string         `json:"subject"`
	Pages         int            `json:"pages"`
	TopicsCreated int            `json:"topics_created"`
	TotalHours    float64        `json:"total_hours"`
	Topics        []TopicPreview `json:"topics"`
}

type SubjectTopics struct {
	Topics     []TopicPreview `json:"topics"`
	TotalHours float64        `json:"total_hours"`
}

type ListTopicsResponse struct {
	TotalTopics int                      `json:"total_topics"`
	TotalHours  float64                  `json:"total_hours"`
	BySubject   map[string]SubjectTopics `json:"by_subject"`
}

type GenerateScheduleRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	// Policy selects the allocation strategy; empty means the configured
	// default ("proportional" or "round_robin").
	Policy string `json:"policy" validate:"omitempty,oneof=proportional round_robin"`
}

type GenerateScheduleResponse struct {
	ScheduleId      string             `json:"schedule_id"`
	Days            int                `json:"days"`
	TotalHours      float64            `json:"total_hours"`
	HoursBySubject  map[string]float64 `json:"hours_by_subject"`
	TopicsScheduled int                `json:"topics_scheduled"`
	TotalTopics     int                `json:"total_topics"`
}

type AddExamRequest struct {
	Subject  string `json:"subject" validate:"required"`
	ExamDate string `json:"exam_date" validate:"required"`
}

// ExportResult carries a rendered schedule document.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
}
