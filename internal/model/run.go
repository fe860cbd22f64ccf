package model

import "time"

// RunStatus is the lifecycle state of a processing run.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// Run records one execution of a region pipeline, with the join accounting
// captured at completion.
type Run struct {
	ID             string
	Region         Region
	Status         RunStatus
	InputRows      int
	Matched        int
	Fallback       int
	Unpriced       int
	UnmappedRegion int
	OutputPath     string
	Error          string
	StartedAt      time.Time
	CompletedAt    *time.Time
}
