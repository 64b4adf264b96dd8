package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type AuthResponseDTO struct {
	Token string `json:"token"`
}

type SessionDTO struct {
	ID        uint       `json:"id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Status    string     `json:"status"`
}

type QuestionDTO struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
}

type RatingDTO struct {
	ID        uint      `json:"id"`
	Rating    string    `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// AnswerDTO is one question/response/feedback entry of a session.
type AnswerDTO struct {
	ID             uint       `json:"id"`
	QuestionID     *uint      `json:"question_id,omitempty"`
	QuestionText   string     `json:"question_text"`
	UserResponse   string     `json:"user_response"`
	AIFeedback     string     `json:"ai_feedback"`
	CreatedAt      time.Time  `json:"created_at"`
	QuestionNumber int        `json:"question_number"`
	Rating         *RatingDTO `json:"rating,omitempty"`
}

type FeedbackSubmissionDTO struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

type PastInterviewDTO struct {
	ID        uint                   `json:"id"`
	StartTime time.Time              `json:"start_time"`
	EndTime   *time.Time             `json:"end_time,omitempty"`
	Status    string                 `json:"status"`
	Answers   []AnswerDTO            `json:"answers,omitempty"`
	Feedback  *FeedbackSubmissionDTO `json:"feedback,omitempty"`
}

type HistoryResponseDTO struct {
	Results    []PastInterviewDTO `json:"results"`
	Count      int                `json:"count"`
	Page       int                `json:"page"`
	TotalPages int                `json:"total_pages"`
}

// InterviewViewDTO is the full render state of the active-interview view.
type InterviewViewDTO struct {
	State              string       `json:"state"`
	Session            *SessionDTO  `json:"session,omitempty"`
	Question           *QuestionDTO `json:"question,omitempty"`
	QuestionNumber     int          `json:"question_number"`
	TotalQuestions     int          `json:"total_questions"`
	Phase              string       `json:"phase"`
	Draft              string       `json:"draft"`
	Feedback           string       `json:"feedback,omitempty"`
	Rating             *string      `json:"rating,omitempty"`
	IsLastQuestion     bool         `json:"is_last_question"`
	Listening          bool         `json:"listening"`
	SpeechSupported    bool         `json:"speech_supported"`
	SpeechNotice       string       `json:"speech_notice,omitempty"`
	CompletedSessionID *uint        `json:"completed_session_id,omitempty"`
	Error              string       `json:"error,omitempty"`
}

// CompletionDTO reports which session was just completed, so the client can
// chain into the satisfaction survey.
type CompletionDTO struct {
	CompletedSessionID uint `json:"completed_session_id"`
}

type TranscriptDTO struct {
	Draft     string `json:"draft"`
	Listening bool   `json:"listening"`
}

type ProfileDTO struct {
	Username               string   `json:"username"`
	Email                  string   `json:"email"`
	FullName               string   `json:"full_name"`
	Major                  string   `json:"major"`
	EducationLevel         string   `json:"education_level"`
	ExperienceLevel        string   `json:"experience_level"`
	PreferredInterviewType []string `json:"preferred_interview_type"`
	PreferredLanguage      string   `json:"preferred_language"`
	ResumeURL              *string  `json:"resume_url,omitempty"`
	TargetJobTitle         *string  `json:"target_job_title,omitempty"`
}

type CareerInfoDTO struct {
	Description string   `json:"description"`
	Tasks       []string `json:"tasks"`
}

// DashboardDTO backs the landing page: profile plus the first page of
// interview history.
type DashboardDTO struct {
	Profile          ProfileDTO         `json:"profile"`
	RecentInterviews []PastInterviewDTO `json:"recent_interviews"`
	TotalInterviews  int                `json:"total_interviews"`
}
