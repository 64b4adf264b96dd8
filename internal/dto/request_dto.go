package dto

// SignUpRequest registers a new account through the backend.
type SignUpRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type SignInRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// OpenInterviewRequest starts a session and opens the active-interview view.
// SpeechSupported declares whether the capturing client has a speech
// recognizer; without one the view runs in text-only mode.
type OpenInterviewRequest struct {
	SpeechSupported bool `json:"speech_supported"`
}

// SubmitResponseRequest carries the typed response text. An empty Text means
// "submit whatever the dictation draft holds".
type SubmitResponseRequest struct {
	Text string `json:"text"`
}

// RateQuestionRequest votes on the question currently shown in the view.
type RateQuestionRequest struct {
	Rating string `json:"rating" binding:"required,oneof=LIKE DISLIKE"`
}

// SubmitFeedbackRequest is the end-of-session satisfaction survey.
type SubmitFeedbackRequest struct {
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

// UpdateProfileRequest updates profile fields wholesale; username and email
// are not editable. Nil fields are left untouched.
type UpdateProfileRequest struct {
	FullName               *string  `json:"full_name"`
	Major                  *string  `json:"major"`
	EducationLevel         *string  `json:"education_level"`
	ExperienceLevel        *string  `json:"experience_level"`
	PreferredInterviewType []string `json:"preferred_interview_type"`
	PreferredLanguage      *string  `json:"preferred_language"`
	ResumeURL              *string  `json:"resume_url"`
	TargetJobTitle         *string  `json:"target_job_title"`
}

// UpdateJobTitleRequest tweaks only the target job title, used right before
// starting an interview.
type UpdateJobTitleRequest struct {
	TargetJobTitle string `json:"target_job_title" binding:"required"`
}

// RecognitionResultDTO is one alternative from the client-side recognizer.
type RecognitionResultDTO struct {
	Transcript string `json:"transcript"`
	IsFinal    bool   `json:"is_final"`
}

// RecognitionEventRequest is a live speech-recognition event. Results carry
// the recognizer's full result list so the transcript can be rebuilt from
// scratch; Error reports a recognizer failure, which stops listening.
type RecognitionEventRequest struct {
	Error   string                 `json:"error,omitempty"`
	Results []RecognitionResultDTO `json:"results"`
}
