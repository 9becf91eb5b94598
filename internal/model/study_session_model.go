package model

import (
	"time"

	"gorm.io/datatypes"
)

// StudySession is the durable form of a planning session: the whole state
// as one JSON document. The planner always works on the full session, so a
// single-row read-modify-write fits the access pattern.
type StudySession struct {
	Id        string         `gorm:"type:varchar(64);primaryKey"`
	State     datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (StudySession) TableName() string {
	return "study_sessions"
}
