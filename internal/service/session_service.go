package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/careercracker/webclient/config"
	"github.com/careercracker/webclient/internal/backend"
	"github.com/careercracker/webclient/internal/model"
	"github.com/rs/zerolog/log"
)

// SessionState is the lifecycle position of one user's interview session.
type SessionState string

const (
	StateIdle       SessionState = "IDLE"
	StateStarting   SessionState = "STARTING"
	StateActive     SessionState = "ACTIVE"
	StateCompleting SessionState = "COMPLETING"
)

var (
	// ErrNoActiveSession and ErrNoCurrentQuestion guard operations that are
	// only legal mid-interview. Hitting them means the caller violated the
	// view invariant, not that the user did something recoverable.
	ErrNoActiveSession   = errors.New("no active interview session")
	ErrNoCurrentQuestion = errors.New("no current question")

	// ErrOperationInFlight rejects a second session-mutating call while one
	// is pending. Controls stay disabled client-side while loading; this is
	// the server-side enforcement of the same mutual exclusion.
	ErrOperationInFlight = errors.New("another interview operation is in flight")

	ErrInvalidRating   = errors.New("rating must be LIKE or DISLIKE")
	ErrInvalidFeedback = errors.New("feedback requires non-empty content and a rating between 1 and 5")
)

// InterviewBackend is the slice of the backend client the session store
// depends on.
type InterviewBackend interface {
	StartInterview(ctx context.Context, cred string) (*model.InterviewSession, error)
	NextQuestion(ctx context.Context, cred string) (*model.InterviewQuestion, error)
	SubmitResponse(ctx context.Context, cred string, sessionID, questionID uint, text string) (*model.InterviewAnswer, error)
	CompleteInterview(ctx context.Context, cred string, sessionID uint) error
	PastInterviews(ctx context.Context, cred string, page, limit int) (*backend.HistoryPage, error)
	RateQuestion(ctx context.Context, cred string, questionID, sessionID uint, rating string) (*model.QuestionRating, error)
	QuestionRating(ctx context.Context, cred string, questionID, sessionID uint) *model.QuestionRating
	SubmitFeedback(ctx context.Context, cred string, sessionID uint, content string, rating int) (*model.FeedbackSubmission, error)
}

// SessionSnapshot is a copy of a store's observable state for rendering.
type SessionSnapshot struct {
	State          SessionState
	Session        *model.InterviewSession
	Question       *model.InterviewQuestion
	Feedbacks      []model.InterviewAnswer
	PastInterviews []model.PastInterview
	HistoryCount   int
	LastError      string
}

// InterviewSessionService owns one interview-session store per credential
// and drives the session state machine against the backend.
type InterviewSessionService interface {
	Start(ctx context.Context, cred string) (*model.InterviewSession, *model.InterviewQuestion, error)
	// Advance replaces the current question. When the backend signals
	// exhaustion it completes the interview instead (history refreshed
	// before returning) and reports completed=true with no error.
	Advance(ctx context.Context, cred string) (question *model.InterviewQuestion, completed bool, err error)
	SubmitResponse(ctx context.Context, cred, text string) (*model.InterviewAnswer, error)
	Complete(ctx context.Context, cred string) error
	RateQuestion(ctx context.Context, cred string, questionID, sessionID uint, rating string) (*model.QuestionRating, error)
	QuestionRating(ctx context.Context, cred string, questionID, sessionID uint) *model.QuestionRating
	SubmitFeedback(ctx context.Context, cred string, sessionID uint, content string, rating int) (*model.FeedbackSubmission, error)
	PastInterviews(ctx context.Context, cred string, page, limit int) (*backend.HistoryPage, error)
	Snapshot(cred string) SessionSnapshot
	Reset(cred string)
	ClearError(cred string)
}

// sessionStore holds the client-side interview state for one credential.
type sessionStore struct {
	mu           sync.Mutex
	busy         bool
	state        SessionState
	session      *model.InterviewSession
	question     *model.InterviewQuestion
	feedbacks    []model.InterviewAnswer
	past         []model.PastInterview
	historyCount int
	lastError    string
}

type interviewSessionService struct {
	backend InterviewBackend
	cfg     *config.Config

	mu     sync.RWMutex
	stores map[string]*sessionStore
}

func NewInterviewSessionService(client InterviewBackend, cfg *config.Config) InterviewSessionService {
	return &interviewSessionService{
		backend: client,
		cfg:     cfg,
		stores:  make(map[string]*sessionStore),
	}
}

func (s *interviewSessionService) store(cred string) *sessionStore {
	s.mu.RLock()
	st, ok := s.stores[cred]
	s.mu.RUnlock()
	if ok {
		return st
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok = s.stores[cred]; !ok {
		st = &sessionStore{state: StateIdle}
		s.stores[cred] = st
	}
	return st
}

// acquire claims the store for one mutating operation.
func (st *sessionStore) acquire() error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.busy {
		return ErrOperationInFlight
	}
	st.busy = true
	return nil
}

func (st *sessionStore) release() {
	st.mu.Lock()
	st.busy = false
	st.mu.Unlock()
}

func (st *sessionStore) fail(err error) {
	st.mu.Lock()
	st.lastError = err.Error()
	st.mu.Unlock()
}

func (s *interviewSessionService) Start(ctx context.Context, cred string) (*model.InterviewSession, *model.InterviewQuestion, error) {
	st := s.store(cred)
	if err := st.acquire(); err != nil {
		return nil, nil, err
	}
	defer st.release()

	st.mu.Lock()
	st.state = StateStarting
	st.mu.Unlock()

	session, err := s.backend.StartInterview(ctx, cred)
	if err != nil {
		log.Error().Err(err).Msg("Failed to start interview")
		st.mu.Lock()
		st.state = StateIdle
		st.lastError = err.Error()
		st.mu.Unlock()
		return nil, nil, fmt.Errorf("failed to start interview: %w", err)
	}

	question, err := s.backend.NextQuestion(ctx, cred)
	if err != nil {
		// A session with zero questions is a backend misconfiguration;
		// either way the session cannot proceed.
		log.Error().Err(err).Uint("sessionID", session.ID).Msg("Failed to fetch first question")
		st.mu.Lock()
		st.state = StateIdle
		st.lastError = err.Error()
		st.mu.Unlock()
		return nil, nil, fmt.Errorf("failed to fetch first question: %w", err)
	}

	st.mu.Lock()
	st.state = StateActive
	st.session = session
	st.question = question
	st.feedbacks = nil
	st.lastError = ""
	st.mu.Unlock()

	log.Info().Uint("sessionID", session.ID).Msg("Interview session started")
	return session, question, nil
}

func (s *interviewSessionService) Advance(ctx context.Context, cred string) (*model.InterviewQuestion, bool, error) {
	st := s.store(cred)
	if err := st.acquire(); err != nil {
		return nil, false, err
	}
	defer st.release()

	st.mu.Lock()
	session := st.session
	st.mu.Unlock()
	if session == nil {
		return nil, false, ErrNoActiveSession
	}

	question, err := s.backend.NextQuestion(ctx, cred)
	if errors.Is(err, backend.ErrQuestionsExhausted) {
		// Exhaustion is the loop's termination signal, never a user-facing
		// error: complete the interview transparently. The session is
		// cleared and history refreshed before this call returns.
		log.Info().Uint("sessionID", session.ID).Msg("Question supply exhausted, completing interview")
		if err := s.complete(ctx, cred, st); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}
	if err != nil {
		st.fail(err)
		return nil, false, fmt.Errorf("failed to fetch next question: %w", err)
	}

	st.mu.Lock()
	st.question = question
	st.mu.Unlock()
	return question, false, nil
}

func (s *interviewSessionService) SubmitResponse(ctx context.Context, cred, text string) (*model.InterviewAnswer, error) {
	st := s.store(cred)
	if err := st.acquire(); err != nil {
		return nil, err
	}
	defer st.release()

	st.mu.Lock()
	session, question := st.session, st.question
	st.mu.Unlock()
	if session == nil {
		return nil, ErrNoActiveSession
	}
	if question == nil {
		return nil, ErrNoCurrentQuestion
	}

	answer, err := s.backend.SubmitResponse(ctx, cred, session.ID, question.ID, text)
	if err != nil {
		st.fail(err)
		return nil, fmt.Errorf("failed to submit response: %w", err)
	}

	st.mu.Lock()
	if answer.QuestionID == nil {
		id := question.ID
		answer.QuestionID = &id
	}
	if answer.QuestionNumber == 0 {
		answer.QuestionNumber = len(st.feedbacks) + 1
	}
	st.feedbacks = append(st.feedbacks, *answer)
	st.mu.Unlock()

	return answer, nil
}

func (s *interviewSessionService) Complete(ctx context.Context, cred string) error {
	st := s.store(cred)
	if err := st.acquire(); err != nil {
		return err
	}
	defer st.release()
	return s.complete(ctx, cred, st)
}

// complete runs the completion flow while the caller holds the busy claim:
// backend complete, clear local session, refresh history so the finished
// session is immediately visible (read-your-writes for the local view).
func (s *interviewSessionService) complete(ctx context.Context, cred string, st *sessionStore) error {
	st.mu.Lock()
	session := st.session
	st.state = StateCompleting
	st.mu.Unlock()
	if session == nil {
		st.mu.Lock()
		st.state = StateIdle
		st.mu.Unlock()
		return ErrNoActiveSession
	}

	if err := s.backend.CompleteInterview(ctx, cred, session.ID); err != nil {
		st.mu.Lock()
		st.state = StateActive
		st.lastError = err.Error()
		st.mu.Unlock()
		return fmt.Errorf("failed to complete interview: %w", err)
	}

	st.mu.Lock()
	st.state = StateIdle
	st.session = nil
	st.question = nil
	st.feedbacks = nil
	st.mu.Unlock()
	log.Info().Uint("sessionID", session.ID).Msg("Interview session completed")

	if err := s.refreshHistory(ctx, cred, st); err != nil {
		st.fail(err)
		return fmt.Errorf("interview completed but history refresh failed: %w", err)
	}
	return nil
}

func (s *interviewSessionService) refreshHistory(ctx context.Context, cred string, st *sessionStore) error {
	history, err := s.backend.PastInterviews(ctx, cred, 1, s.cfg.Interview.HistoryPageLimit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to refresh past interviews")
		return err
	}
	st.mu.Lock()
	st.past = history.Results
	st.historyCount = history.Count
	st.mu.Unlock()
	return nil
}

func (s *interviewSessionService) RateQuestion(ctx context.Context, cred string, questionID, sessionID uint, rating string) (*model.QuestionRating, error) {
	if rating != model.RatingLike && rating != model.RatingDislike {
		return nil, ErrInvalidRating
	}

	result, err := s.backend.RateQuestion(ctx, cred, questionID, sessionID, rating)
	if err != nil {
		st := s.store(cred)
		st.fail(err)
		return nil, fmt.Errorf("failed to rate question: %w", err)
	}

	// Attach the vote to the matching feedback entry so re-renders of the
	// current session show it without another lookup.
	st := s.store(cred)
	st.mu.Lock()
	for i := range st.feedbacks {
		if st.feedbacks[i].QuestionID != nil && *st.feedbacks[i].QuestionID == questionID {
			st.feedbacks[i].Rating = result
		}
	}
	st.mu.Unlock()
	return result, nil
}

func (s *interviewSessionService) QuestionRating(ctx context.Context, cred string, questionID, sessionID uint) *model.QuestionRating {
	return s.backend.QuestionRating(ctx, cred, questionID, sessionID)
}

func (s *interviewSessionService) SubmitFeedback(ctx context.Context, cred string, sessionID uint, content string, rating int) (*model.FeedbackSubmission, error) {
	if content == "" || rating < 1 || rating > 5 {
		return nil, ErrInvalidFeedback
	}

	st := s.store(cred)
	submission, err := s.backend.SubmitFeedback(ctx, cred, sessionID, content, rating)
	if err != nil {
		st.fail(err)
		return nil, fmt.Errorf("failed to submit feedback: %w", err)
	}

	if err := s.refreshHistory(ctx, cred, st); err != nil {
		log.Warn().Err(err).Uint("sessionID", sessionID).Msg("Feedback submitted but history refresh failed")
	}
	return submission, nil
}

func (s *interviewSessionService) PastInterviews(ctx context.Context, cred string, page, limit int) (*backend.HistoryPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = s.cfg.Interview.HistoryPageLimit
	}

	st := s.store(cred)
	history, err := s.backend.PastInterviews(ctx, cred, page, limit)
	if err != nil {
		st.fail(err)
		return nil, fmt.Errorf("failed to fetch past interviews: %w", err)
	}

	st.mu.Lock()
	st.past = history.Results
	st.historyCount = history.Count
	st.mu.Unlock()
	return history, nil
}

func (s *interviewSessionService) Snapshot(cred string) SessionSnapshot {
	st := s.store(cred)
	st.mu.Lock()
	defer st.mu.Unlock()

	snap := SessionSnapshot{
		State:        st.state,
		Session:      st.session,
		Question:     st.question,
		HistoryCount: st.historyCount,
		LastError:    st.lastError,
	}
	snap.Feedbacks = append(snap.Feedbacks, st.feedbacks...)
	snap.PastInterviews = append(snap.PastInterviews, st.past...)
	return snap
}

// Reset abandons any in-progress session locally, e.g. when the user closes
// the interview mid-way. The backend session is left as-is.
func (s *interviewSessionService) Reset(cred string) {
	st := s.store(cred)
	st.mu.Lock()
	st.state = StateIdle
	st.session = nil
	st.question = nil
	st.feedbacks = nil
	st.lastError = ""
	st.mu.Unlock()
}

func (s *interviewSessionService) ClearError(cred string) {
	st := s.store(cred)
	st.mu.Lock()
	st.lastError = ""
	st.mu.Unlock()
}
