package model

import "time"

const (
	SessionInProgress = "IN_PROGRESS"
	SessionCompleted  = "COMPLETED"
)

// InterviewSession is one mock-interview attempt, from start to completion.
// It is owned by the session store while IN_PROGRESS and archived by the
// backend once COMPLETED.
type InterviewSession struct {
	ID        uint              `json:"id"`
	StartTime time.Time         `json:"start_time"`
	EndTime   *time.Time        `json:"end_time,omitempty"`
	Status    string            `json:"status"` // "IN_PROGRESS" or "COMPLETED"
	Answers   []InterviewAnswer `json:"answers,omitempty"`
}
