package model

// UserProfile is fetched from the backend on demand and cached for the
// lifetime of a credential; updates replace it wholesale.
type UserProfile struct {
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
