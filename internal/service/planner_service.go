package service

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"study-planner-be/internal/config"
	"study-planner-be/internal/dto"
	"study-planner-be/internal/pkg/logger"
	"study-planner-be/internal/repository/contract"
	"study-planner-be/pkg/document"
	"study-planner-be/pkg/events"
	"study-planner-be/pkg/export"
	"study-planner-be/pkg/planner"
	"study-planner-be/pkg/store"
)

type IPlannerService interface {
	ProcessDocument(ctx context.Context, sessionID, subject, filename string, file io.ReadSeeker) (*dto.ProcessDocumentResponse, error)
	ListTopics(ctx context.Context, sessionID string) (*dto.ListTopicsResponse, error)
	ResetTopics(ctx context.Context, sessionID string) error
	GenerateSchedule(ctx context.Context, sessionID string, req *dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error)
	Export(ctx context.Context, sessionID, format string) (*dto.ExportResult, error)
	AddExam(ctx context.Context, sessionID string, req *dto.AddExamRequest) error
	ListExams(ctx context.Context, sessionID string) ([]store.Exam, error)
}

type plannerService struct {
	cfg       config.PlannerConfig
	sessions  contract.SessionRepository
	locker    *SessionLocker
	publisher IPublisherService
	log       logger.ILogger
}

func NewPlannerService(
	cfg config.PlannerConfig,
	sessions contract.SessionRepository,
	locker *SessionLocker,
	publisher IPublisherService,
	log logger.ILogger,
) IPlannerService {
	return &plannerService{
		cfg:       cfg,
		sessions:  sessions,
		locker:    locker,
		publisher: publisher,
		log:       log,
	}
}

// loadSession fetches the session state, starting fresh when the store has
// expired it. The caller must hold the session lock.
func (s *plannerService) loadSession(ctx context.Context, sessionID string) (*store.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		session = store.NewSession(sessionID)
	}
	return session, nil
}

func (s *plannerService) ProcessDocument(ctx context.Context, sessionID, subject, filename string, file io.ReadSeeker) (*dto.ProcessDocumentResponse, error) {
	loader, err := document.ForFilename(filename)
	if err != nil {
		return nil, err
	}

	content, err := loader.Load(file, filename)
	if err != nil {
		return nil, err
	}

	structure := planner.ExtractStructure(content)
	topics := planner.BuildTopics(content, structure, subject, filename)
	docID := planner.DocumentID(filename, content.TotalPages())

	unlock := s.locker.Lock(sessionID)
	defer unlock()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Additive: re-processing the same file without a reset duplicates its
	// topics. Callers are expected to reset first.
	topicIDs := make([]string, 0, len(topics))
	totalHours := 0.0
	for _, t := range topics {
		session.Topics = append(session.Topics, t)
		topicIDs = append(topicIDs, t.ID)
		totalHours += t.EstimatedHours
	}
	if _, known := session.Documents[docID]; !known {
		session.DocumentOrder = append(session.DocumentOrder, docID)
	}
	session.Documents[docID] = store.Document{
		ID:         docID,
		Filename:   filename,
		Subject:    subject,
		TotalPages: content.TotalPages(),
		TopicIDs:   topicIDs,
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, events.DocumentProcessed(sessionID, docID, len(topics))); err != nil {
		s.log.Warn("planner", "Failed to publish document event", map[string]interface{}{"error": err.Error()})
	}

	preview := make([]dto.TopicPreview, 0, len(topics))
	for i, t := range topics {
		if i == 15 {
			break
		}
		preview = append(preview, dto.TopicPreview{Title: t.Title, EstimatedHours: t.EstimatedHours})
	}

	s.log.Info("planner", "Document segmented", map[string]interface{}{
		"session_id": sessionID,
		"doc_id":     docID,
		"pages":      content.TotalPages(),
		"topics":     len(topics),
	})

	return &dto.ProcessDocumentResponse{
		DocId:         docID,
		Filename:      filename,
		Subject:       subject,
		Pages:         content.TotalPages(),
		TopicsCreated: len(topics),
		TotalHours:    round1(totalHours),
		Topics:        preview,
	}, nil
}

func (s *plannerService) ListTopics(ctx context.Context, sessionID string) (*dto.ListTopicsResponse, error) {
	unlock := s.locker.Lock(sessionID)
	defer unlock()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	bySubject := make(map[string]dto.SubjectTopics)
	totalHours := 0.0
	for _, t := range session.Topics {
		group := bySubject[t.Subject]
		group.Topics = append(group.Topics, dto.TopicPreview{Title: t.Title, EstimatedHours: t.EstimatedHours})
		group.TotalHours = round1(group.TotalHours + t.EstimatedHours)
		bySubject[t.Subject] = group
		totalHours += t.EstimatedHours
	}

	return &dto.ListTopicsResponse{
		TotalTopics: len(session.Topics),
		TotalHours:  round1(totalHours),
		BySubject:   bySubject,
	}, nil
}

func (s *plannerService) ResetTopics(ctx context.Context, sessionID string) error {
	unlock := s.locker.Lock(sessionID)
	defer unlock()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return err
	}

	cleared := len(session.Topics)
	session.Topics = make([]store.Topic, 0)
	session.Documents = make(map[string]store.Document)
	session.DocumentOrder = nil

	if err := s.sessions.Save(ctx, session); err != nil {
		return err
	}

	if err := s.publisher.Publish(ctx, events.TopicsReset(sessionID, cleared)); err != nil {
		s.log.Warn("planner", "Failed to publish reset event", map[string]interface{}{"error": err.Error()})
	}
	return nil
}

func (s *plannerService) GenerateSchedule(ctx context.Context, sessionID string, req *dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error) {
	policy := req.Policy
	if policy == "" {
		policy = s.cfg.DefaultPolicy
	}
	alloc, err := planner.New(policy, planner.Config{
		MaxTopics:     s.cfg.MaxTopics,
		PassCapFactor: s.cfg.PassCapFactor,
	})
	if err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(sessionID)
	defer unlock()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	schedule, err := alloc.Allocate(session.Topics, session.EffectiveProfile(), req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	// A new run replaces the stored schedule wholesale.
	session.Schedule = schedule
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, events.ScheduleGenerated(sessionID, schedule.ID, schedule.Summary.StudyDays)); err != nil {
		s.log.Warn("planner", "Failed to publish schedule event", map[string]interface{}{"error": err.Error()})
	}

	s.log.Info("planner", "Schedule generated", map[string]interface{}{
		"session_id": sessionID,
		"policy":     alloc.Name(),
		"days":       schedule.Summary.StudyDays,
		"hours":      schedule.Summary.TotalStudyHours,
	})

	return &dto.GenerateScheduleResponse{
		ScheduleId:      schedule.ID,
		Days:            schedule.Summary.StudyDays,
		TotalHours:      schedule.Summary.TotalStudyHours,
		HoursBySubject:  schedule.Summary.HoursPerSubject,
		TopicsScheduled: schedule.Summary.TopicsScheduled,
		TotalTopics:     schedule.Summary.TotalTopics,
	}, nil
}

func (s *plannerService) Export(ctx context.Context, sessionID, format string) (*dto.ExportResult, error) {
	unlock := s.locker.Lock(sessionID)
	defer unlock()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Schedule == nil {
		return nil, planner.ErrNoSchedule
	}

	switch format {
	case "csv":
		return &dto.ExportResult{
			Filename:    "study_schedule.csv",
			ContentType: "text/csv",
			Body:        []byte(export.CSV(session.Schedule)),
		}, nil
	case "markdown":
		return &dto.ExportResult{
			Filename:    "study_schedule.md",
			ContentType: "text/markdown",
			Body:        []byte(export.Markdown(session.Schedule)),
		}, nil
	case "xlsx":
		body, err := export.XLSX(session.Schedule)
		if err != nil {
			return nil, err
		}
		return &dto.ExportResult{
			Filename:    "study_schedule.xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Body:        body,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

func (s *plannerService) AddExam(ctx context.Context, sessionID string, req *dto.AddExamRequest) error {
	if _, err := time.Parse("2006-01-02", req.ExamDate); err != nil {
		return fmt.Errorf("%w: %q (use YYYY-MM-DD)", planner.ErrInvalidDate, req.ExamDate)
	}

	unlock := s.locker.Lock(sessionID)
	defer unlock()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return err
	}

	// Upsert by subject.
	updated := false
	for i := range session.Exams {
		if session.Exams[i].Subject == req.Subject {
			session.Exams[i].ExamDate = req.ExamDate
			updated = true
			break
		}
	}
	if !updated {
		session.Exams = append(session.Exams, store.Exam{Subject: req.Subject, ExamDate: req.ExamDate})
	}

	return s.sessions.Save(ctx, session)
}

func (s *plannerService) ListExams(ctx context.Context, sessionID string) ([]store.Exam, error) {
	unlock := s.locker.Lock(sessionID)
	defer unlock()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Exams == nil {
		return []store.Exam{}, nil
	}
	return session.Exams, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
