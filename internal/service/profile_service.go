package service

import (
	"context"
	"fmt"

	"study-planner-be/internal/dto"
	"study-planner-be/internal/repository/contract"
	"study-planner-be/pkg/store"
	"study-planner-be/pkg/survey"
)

type IProfileService interface {
	SurveyQuestions() []survey.Question
	SubmitSurvey(ctx context.Context, sessionID string, req *dto.SubmitSurveyRequest) (*store.LearnerProfile, error)
	UpdateConfidence(ctx context.Context, sessionID string, req *dto.UpdateConfidenceRequest) error
	GetProfile(ctx context.Context, sessionID string) (*store.LearnerProfile, error)
}

type profileService struct {
	sessions contract.SessionRepository
	locker   *SessionLocker
}

func NewProfileService(sessions contract.SessionRepository, locker *SessionLocker) IProfileService {
	return &profileService{sessions: sessions, locker: locker}
}

func (s *profileService) SurveyQuestions() []survey.Question {
	return survey.Questions()
}

func (s *profileService) SubmitSurvey(ctx context.Context, sessionID string, req *dto.SubmitSurveyRequest) (*store.LearnerProfile, error) {
	for questionID, answer := range req.Responses {
		if err := survey.Validate(questionID, answer); err != nil {
			return nil, err
		}
	}

	unlock := s.locker.Lock(sessionID)
	defer unlock()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.SurveyResponses == nil {
		session.SurveyResponses = make(map[string]string)
	}
	for questionID, answer := range req.Responses {
		session.SurveyResponses[questionID] = answer
	}

	profile := survey.Score(session.SurveyResponses)
	// Confidence values survive re-taking the survey.
	if session.Profile != nil {
		profile.SubjectConfidence = session.Profile.SubjectConfidence
	}
	session.Profile = profile

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) UpdateConfidence(ctx context.Context, sessionID string, req *dto.UpdateConfidenceRequest) error {
	unlock := s.locker.Lock(sessionID)
	defer unlock()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.Profile == nil {
		return fmt.Errorf("complete the survey first")
	}

	confidence := req.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	if session.Profile.SubjectConfidence == nil {
		session.Profile.SubjectConfidence = make(map[string]float64)
	}
	session.Profile.SubjectConfidence[req.Subject] = confidence

	return s.sessions.Save(ctx, session)
}

func (s *profileService) GetProfile(ctx context.Context, sessionID string) (*store.LearnerProfile, error) {
	unlock := s.locker.Lock(sessionID)
	defer unlock()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.EffectiveProfile(), nil
}

// loadSession on profileService mirrors plannerService's helper.
func (s *profileService) loadSession(ctx context.Context, sessionID string) (*store.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		session = store.NewSession(sessionID)
	}
	return session, nil
}
