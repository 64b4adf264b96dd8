package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/careercracker/webclient/config"
	"github.com/careercracker/webclient/internal/dto"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// View phases of one question's lifecycle.
const (
	PhaseAnswering  = "answering"
	PhaseSubmitting = "submitting"
	PhaseSubmitted  = "submitted"
)

const speechUnsupportedNotice = "Speech recognition is not supported by this client. Type your response instead."

var (
	ErrViewNotOpen   = errors.New("no interview view is open")
	ErrEmptyResponse = errors.New("response text cannot be empty")

	// ErrResponseNotSubmitted and ErrAlreadySubmitted guard the per-question
	// phase order: answer first, then advance or rate.
	ErrResponseNotSubmitted = errors.New("submit a response before this action")
	ErrAlreadySubmitted     = errors.New("a response was already submitted for this question")

	ErrNotLastQuestion     = errors.New("the interview can only be finished after the last question")
	ErrNoFeedbackAvailable = errors.New("no feedback available for the current question")
)

// viewState is the render state of one credential's active-interview view.
type viewState struct {
	open            bool
	phase           string
	questionNumber  int
	draft           string
	feedback        string
	rating          *string
	speechSupported bool
	completedID     *uint
}

// ActiveInterviewService drives the active-interview view: the per-question
// answer/feedback loop on top of the session store, plus dictation via the
// transcript adapter. All methods key off the caller's credential.
type ActiveInterviewService interface {
	// Open starts a new interview session and opens the view on its first
	// question. speechSupported declares the client's recognizer capability.
	Open(ctx context.Context, cred string, speechSupported bool) (*dto.InterviewViewDTO, error)
	View(cred string) (*dto.InterviewViewDTO, error)
	// Submit sends the response text, or the dictation draft when text is
	// empty. A whitespace-only response fails locally without a backend call.
	Submit(ctx context.Context, cred, text string) (*dto.InterviewViewDTO, error)
	// Next advances to the following question after a submitted response and
	// increments the question counter. When the backend runs out of questions
	// the interview completes transparently instead.
	Next(ctx context.Context, cred string) (*dto.InterviewViewDTO, error)
	// Skip advances without submitting; the question counter is unchanged.
	Skip(ctx context.Context, cred string) (*dto.InterviewViewDTO, error)
	// Rate records LIKE or DISLIKE for the answered question. Repeating the
	// current selection is a no-op; a backend failure clears the selection.
	Rate(ctx context.Context, cred, rating string) (*dto.InterviewViewDTO, error)
	// Complete finishes the interview after the last answered question and
	// returns the completed session id for the satisfaction survey.
	Complete(ctx context.Context, cred string) (uint, error)
	// Close abandons the view, stopping any live transcription.
	Close(cred string)
	StartListening(cred string) (*dto.TranscriptDTO, error)
	StopListening(cred string) *dto.TranscriptDTO
	ApplyRecognition(cred string, event dto.RecognitionEventRequest) (*dto.TranscriptDTO, error)
	// FeedbackText returns the stored feedback for streaming.
	FeedbackText(cred string) (string, error)
}

type activeInterviewService struct {
	sessions    InterviewSessionService
	transcripts TranscriptService
	cfg         *config.Config

	mu    sync.Mutex
	views map[string]*viewState
}

func NewActiveInterviewService(sessions InterviewSessionService, transcripts TranscriptService, cfg *config.Config) ActiveInterviewService {
	return &activeInterviewService{
		sessions:    sessions,
		transcripts: transcripts,
		cfg:         cfg,
		views:       make(map[string]*viewState),
	}
}

func (s *activeInterviewService) view(cred string) *viewState {
	v, ok := s.views[cred]
	if !ok {
		v = &viewState{}
		s.views[cred] = v
	}
	return v
}

func (s *activeInterviewService) Open(ctx context.Context, cred string, speechSupported bool) (*dto.InterviewViewDTO, error) {
	if _, _, err := s.sessions.Start(ctx, cred); err != nil {
		return nil, err
	}

	s.transcripts.Configure(cred, speechSupported)

	s.mu.Lock()
	s.views[cred] = &viewState{
		open:            true,
		phase:           PhaseAnswering,
		questionNumber:  1,
		speechSupported: speechSupported,
	}
	s.mu.Unlock()

	return s.render(cred), nil
}

func (s *activeInterviewService) View(cred string) (*dto.InterviewViewDTO, error) {
	s.mu.Lock()
	open := s.view(cred).open
	s.mu.Unlock()
	if !open {
		return nil, ErrViewNotOpen
	}
	return s.render(cred), nil
}

func (s *activeInterviewService) Submit(ctx context.Context, cred, text string) (*dto.InterviewViewDTO, error) {
	s.mu.Lock()
	v := s.view(cred)
	if !v.open {
		s.mu.Unlock()
		return nil, ErrViewNotOpen
	}
	switch v.phase {
	case PhaseSubmitting:
		s.mu.Unlock()
		return nil, ErrOperationInFlight
	case PhaseSubmitted:
		s.mu.Unlock()
		return nil, ErrAlreadySubmitted
	}
	if text == "" {
		text = v.draft
	}
	if strings.TrimSpace(text) == "" {
		// Local validation only. The draft stays as-is so dictation is not
		// lost to a premature submit.
		s.mu.Unlock()
		return nil, ErrEmptyResponse
	}
	v.phase = PhaseSubmitting
	v.draft = text
	s.mu.Unlock()

	answer, err := s.sessions.SubmitResponse(ctx, cred, text)
	if err != nil {
		s.mu.Lock()
		v.phase = PhaseAnswering
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	v.phase = PhaseSubmitted
	v.feedback = answer.AIFeedback
	v.rating = nil
	s.mu.Unlock()

	// Best-effort lookup of an earlier vote so the rating control renders
	// the existing selection.
	if snap := s.sessions.Snapshot(cred); snap.Session != nil && snap.Question != nil {
		if existing := s.sessions.QuestionRating(ctx, cred, snap.Question.ID, snap.Session.ID); existing != nil {
			s.mu.Lock()
			rating := existing.Rating
			v.rating = &rating
			s.mu.Unlock()
		}
	}

	return s.render(cred), nil
}

func (s *activeInterviewService) Next(ctx context.Context, cred string) (*dto.InterviewViewDTO, error) {
	return s.advance(ctx, cred, true)
}

func (s *activeInterviewService) Skip(ctx context.Context, cred string) (*dto.InterviewViewDTO, error) {
	return s.advance(ctx, cred, false)
}

func (s *activeInterviewService) advance(ctx context.Context, cred string, counted bool) (*dto.InterviewViewDTO, error) {
	s.mu.Lock()
	v := s.view(cred)
	if !v.open {
		s.mu.Unlock()
		return nil, ErrViewNotOpen
	}
	if counted && v.phase != PhaseSubmitted {
		s.mu.Unlock()
		return nil, ErrResponseNotSubmitted
	}
	if !counted && v.phase != PhaseAnswering {
		s.mu.Unlock()
		return nil, ErrAlreadySubmitted
	}
	s.mu.Unlock()

	snap := s.sessions.Snapshot(cred)

	question, completed, err := s.sessions.Advance(ctx, cred)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	v.phase = PhaseAnswering
	v.draft = ""
	v.feedback = ""
	v.rating = nil
	if completed {
		if snap.Session != nil {
			id := snap.Session.ID
			v.completedID = &id
		}
		v.open = false
		log.Info().Str("reason", "exhausted").Msg("Interview view closed after completion")
	} else {
		if counted && v.questionNumber < s.cfg.Interview.QuestionsPerInterview {
			v.questionNumber++
		}
		log.Debug().Int("questionNumber", v.questionNumber).Uint("questionID", question.ID).Msg("Advanced to next question")
	}
	s.mu.Unlock()

	if completed {
		s.transcripts.Stop(cred)
	}
	return s.render(cred), nil
}

func (s *activeInterviewService) Rate(ctx context.Context, cred, rating string) (*dto.InterviewViewDTO, error) {
	s.mu.Lock()
	v := s.view(cred)
	if !v.open {
		s.mu.Unlock()
		return nil, ErrViewNotOpen
	}
	if v.phase != PhaseSubmitted {
		s.mu.Unlock()
		return nil, ErrResponseNotSubmitted
	}
	if v.rating != nil && *v.rating == rating {
		// Re-clicking the selected vote changes nothing.
		s.mu.Unlock()
		return s.render(cred), nil
	}
	v.rating = &rating
	s.mu.Unlock()

	snap := s.sessions.Snapshot(cred)
	if snap.Session == nil || snap.Question == nil {
		s.mu.Lock()
		v.rating = nil
		s.mu.Unlock()
		return nil, ErrNoActiveSession
	}

	if _, err := s.sessions.RateQuestion(ctx, cred, snap.Question.ID, snap.Session.ID, rating); err != nil {
		s.mu.Lock()
		v.rating = nil
		s.mu.Unlock()
		return nil, err
	}
	return s.render(cred), nil
}

func (s *activeInterviewService) Complete(ctx context.Context, cred string) (uint, error) {
	s.mu.Lock()
	v := s.view(cred)
	if !v.open {
		s.mu.Unlock()
		return 0, ErrViewNotOpen
	}
	if v.phase != PhaseSubmitted {
		s.mu.Unlock()
		return 0, ErrResponseNotSubmitted
	}
	if v.questionNumber < s.cfg.Interview.QuestionsPerInterview {
		s.mu.Unlock()
		return 0, ErrNotLastQuestion
	}
	s.mu.Unlock()

	snap := s.sessions.Snapshot(cred)
	if snap.Session == nil {
		return 0, ErrNoActiveSession
	}
	sessionID := snap.Session.ID

	s.transcripts.Stop(cred)
	if err := s.sessions.Complete(ctx, cred); err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.views[cred] = &viewState{completedID: &sessionID, speechSupported: v.speechSupported}
	s.mu.Unlock()
	return sessionID, nil
}

func (s *activeInterviewService) Close(cred string) {
	s.transcripts.Release(cred)
	s.sessions.Reset(cred)
	s.mu.Lock()
	delete(s.views, cred)
	s.mu.Unlock()
}

func (s *activeInterviewService) StartListening(cred string) (*dto.TranscriptDTO, error) {
	s.mu.Lock()
	v := s.view(cred)
	if !v.open {
		s.mu.Unlock()
		return nil, ErrViewNotOpen
	}
	if v.phase != PhaseAnswering {
		s.mu.Unlock()
		return nil, ErrAlreadySubmitted
	}
	s.mu.Unlock()

	if err := s.transcripts.Start(cred); err != nil {
		return nil, err
	}
	return s.transcript(cred), nil
}

func (s *activeInterviewService) StopListening(cred string) *dto.TranscriptDTO {
	s.transcripts.Stop(cred)
	return s.transcript(cred)
}

func (s *activeInterviewService) ApplyRecognition(cred string, event dto.RecognitionEventRequest) (*dto.TranscriptDTO, error) {
	s.mu.Lock()
	v := s.view(cred)
	if !v.open {
		s.mu.Unlock()
		return nil, ErrViewNotOpen
	}
	if v.phase != PhaseAnswering {
		s.mu.Unlock()
		return nil, ErrAlreadySubmitted
	}
	s.mu.Unlock()

	draft, err := s.transcripts.Apply(cred, event)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	v.draft = draft
	s.mu.Unlock()
	return s.transcript(cred), nil
}

func (s *activeInterviewService) FeedbackText(cred string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.view(cred)
	if !v.open {
		return "", ErrViewNotOpen
	}
	if v.phase != PhaseSubmitted || v.feedback == "" {
		return "", ErrNoFeedbackAvailable
	}
	return v.feedback, nil
}

func (s *activeInterviewService) transcript(cred string) *dto.TranscriptDTO {
	return &dto.TranscriptDTO{
		Draft:     s.transcripts.Transcript(cred),
		Listening: s.transcripts.Listening(cred),
	}
}

// render assembles the full view DTO from the view state and the session
// store snapshot.
func (s *activeInterviewService) render(cred string) *dto.InterviewViewDTO {
	snap := s.sessions.Snapshot(cred)

	s.mu.Lock()
	v := s.view(cred)
	out := &dto.InterviewViewDTO{
		State:              string(snap.State),
		QuestionNumber:     v.questionNumber,
		TotalQuestions:     s.cfg.Interview.QuestionsPerInterview,
		Phase:              v.phase,
		Draft:              v.draft,
		Feedback:           v.feedback,
		IsLastQuestion:     v.questionNumber >= s.cfg.Interview.QuestionsPerInterview,
		Listening:          s.transcripts.Listening(cred),
		SpeechSupported:    v.speechSupported,
		CompletedSessionID: v.completedID,
		Error:              snap.LastError,
	}
	if v.rating != nil {
		rating := *v.rating
		out.Rating = &rating
	}
	if v.open && !v.speechSupported {
		out.SpeechNotice = speechUnsupportedNotice
	}
	s.mu.Unlock()

	if snap.Session != nil {
		var session dto.SessionDTO
		if err := copier.Copy(&session, snap.Session); err != nil {
			log.Error().Err(err).Msg("Failed to map session to DTO")
		}
		out.Session = &session
	}
	if snap.Question != nil {
		var question dto.QuestionDTO
		if err := copier.Copy(&question, snap.Question); err != nil {
			log.Error().Err(err).Msg("Failed to map question to DTO")
		}
		out.Question = &question
	}
	return out
}
