package planner

import "errors"

// Sentinel errors for the planner package.
// Check with errors.Is; the HTTP layer maps them to client-facing statuses.
var (
	ErrNoTopics        = errors.New("planner: no topics found, process documents first")
	ErrInvalidDate     = errors.New("planner: invalid date")
	ErrTooManyTopics   = errors.New("planner: topic collection exceeds the configured cap")
	ErrNoSchedule      = errors.New("planner: no schedule found, generate one first")
	ErrUnsupportedFile = errors.New("planner: unsupported file type")
)
