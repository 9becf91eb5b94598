package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"study-planner-be/internal/model"
	"study-planner-be/pkg/store"
)

// SessionRepository persists sessions to postgres via GORM, one row per
// session with the state as a jsonb column.
type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) (*SessionRepository, error) {
	if err := db.AutoMigrate(&model.StudySession{}); err != nil {
		return nil, fmt.Errorf("migrate study_sessions: %w", err)
	}
	return &SessionRepository{db: db}, nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*store.Session, error) {
	var row model.StudySession
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session store.Session
	if err := json.Unmarshal(row.State, &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &session, nil
}

func (r *SessionRepository) Save(ctx context.Context, session *store.Session) error {
	session.UpdatedAt = time.Now()
	state, err := json.Marshal(session)
	if err != nil {
		return err
	}

	row := model.StudySession{Id: session.ID, State: state}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"state", "updated_at"}),
		}).
		Create(&row).Error
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.StudySession{}, "id = ?", id).Error
}
