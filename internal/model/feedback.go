package model

import "time"

// FeedbackSubmission is the end-of-session satisfaction survey (free text
// plus a 1-5 star rating), submitted at most once per completed session.
// Distinct from the per-answer AI feedback.
type FeedbackSubmission struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// PastInterview is a completed session as it appears in history, with the
// survey attached when the user submitted one.
type PastInterview struct {
	ID        uint                `json:"id"`
	StartTime time.Time           `json:"start_time"`
	EndTime   *time.Time          `json:"end_time,omitempty"`
	Status    string              `json:"status"`
	Answers   []InterviewAnswer   `json:"answers,omitempty"`
	Feedback  *FeedbackSubmission `json:"feedback,omitempty"`
}
