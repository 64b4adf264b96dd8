package model

import "time"

// InterviewAnswer is one answered (or skipped) question inside a session:
// the question text, the user's response and the AI feedback it earned.
// Immutable after creation except for an attached rating.
type InterviewAnswer struct {
	ID             uint            `json:"id"`
	QuestionID     *uint           `json:"question_id,omitempty"`
	QuestionText   string          `json:"question_text"`
	UserResponse   string          `json:"user_response"`
	AIFeedback     string          `json:"ai_feedback"`
	CreatedAt      time.Time       `json:"created_at"`
	QuestionNumber int             `json:"question_number"`
	Rating         *QuestionRating `json:"rating,omitempty"`
}
