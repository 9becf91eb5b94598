package service

import (
	"context"

	"github.com/google/uuid"

	"study-planner-be/internal/dto"
	"study-planner-be/internal/pkg/serverutils"
	"study-planner-be/internal/repository/contract"
	"study-planner-be/pkg/store"
)

type ISessionService interface {
	Create(ctx context.Context) (*dto.SessionCreateResponse, error)
}

type sessionService struct {
	sessions contract.SessionRepository
}

func NewSessionService(sessions contract.SessionRepository) ISessionService {
	return &sessionService{sessions: sessions}
}

func (s *sessionService) Create(ctx context.Context) (*dto.SessionCreateResponse, error) {
	id := uuid.NewString()
	if err := s.sessions.Save(ctx, store.NewSession(id)); err != nil {
		return nil, err
	}

	token, err := serverutils.SignSessionToken(id)
	if err != nil {
		return nil, err
	}

	return &dto.SessionCreateResponse{SessionId: id, Token: token}, nil
}
