package model

// InterviewQuestion is the single question the client currently holds.
// Questions are supplied by the backend one at a time and are immutable
// once fetched.
type InterviewQuestion struct {
	ID             uint   `json:"id"`
	Question       string `json:"question"`
	QuestionNumber *int   `json:"question_number,omitempty"`
}
