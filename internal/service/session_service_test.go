package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/careercracker/webclient/config"
	"github.com/careercracker/webclient/internal/backend"
	"github.com/careercracker/webclient/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend scripts the backend client for service tests. Question and
// error queues are consumed in order; call counts are recorded.
type fakeBackend struct {
	mu sync.Mutex

	session      *model.InterviewSession
	startErr     error
	questions    []*model.InterviewQuestion
	questionErrs []error
	answer       *model.InterviewAnswer
	submitErr    error
	completeErr  error
	history      *backend.HistoryPage
	historyErr   error
	rating       *model.QuestionRating
	rateErr      error
	lookup       *model.QuestionRating
	submission   *model.FeedbackSubmission
	feedbackErr  error

	startCalls    int
	nextCalls     int
	submitCalls   int
	completeCalls int
	historyCalls  int
	rateCalls     int
	blockNext     chan struct{}
	nextEntered   chan struct{}
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		session: &model.InterviewSession{ID: 1, StartTime: time.Now(), Status: model.SessionInProgress},
		answer:  &model.InterviewAnswer{ID: 10, AIFeedback: "Solid answer."},
		history: &backend.HistoryPage{Results: []model.PastInterview{{ID: 1, Status: model.SessionCompleted}}, Count: 1, Page: 1, TotalPages: 1},
	}
}

func (f *fakeBackend) StartInterview(ctx context.Context, cred string) (*model.InterviewSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.startCalls++
	if f.startErr != nil {
		return nil, f.startErr
	}
	return f.session, nil
}

func (f *fakeBackend) NextQuestion(ctx context.Context, cred string) (*model.InterviewQuestion, error) {
	f.mu.Lock()
	f.nextCalls++
	entered := f.nextEntered
	block := f.blockNext
	f.mu.Unlock()
	if entered != nil {
		close(entered)
		f.mu.Lock()
		f.nextEntered = nil
		f.mu.Unlock()
	}
	if block != nil {
		<-block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.questionErrs) > 0 {
		err := f.questionErrs[0]
		f.questionErrs = f.questionErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	if len(f.questions) == 0 {
		return nil, backend.ErrQuestionsExhausted
	}
	q := f.questions[0]
	f.questions = f.questions[1:]
	return q, nil
}

func (f *fakeBackend) SubmitResponse(ctx context.Context, cred string, sessionID, questionID uint, text string) (*model.InterviewAnswer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitCalls++
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	answer := *f.answer
	answer.UserResponse = text
	return &answer, nil
}

func (f *fakeBackend) CompleteInterview(ctx context.Context, cred string, sessionID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completeCalls++
	return f.completeErr
}

func (f *fakeBackend) PastInterviews(ctx context.Context, cred string, page, limit int) (*backend.HistoryPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.historyCalls++
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	return f.history, nil
}

func (f *fakeBackend) RateQuestion(ctx context.Context, cred string, questionID, sessionID uint, rating string) (*model.QuestionRating, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rateCalls++
	if f.rateErr != nil {
		return nil, f.rateErr
	}
	if f.rating != nil {
		return f.rating, nil
	}
	return &model.QuestionRating{ID: 1, Rating: rating}, nil
}

func (f *fakeBackend) QuestionRating(ctx context.Context, cred string, questionID, sessionID uint) *model.QuestionRating {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lookup
}

func (f *fakeBackend) SubmitFeedback(ctx context.Context, cred string, sessionID uint, content string, rating int) (*model.FeedbackSubmission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.feedbackErr != nil {
		return nil, f.feedbackErr
	}
	if f.submission != nil {
		return f.submission, nil
	}
	return &model.FeedbackSubmission{ID: 1, Content: content, Rating: rating}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Interview: config.Interview{
			QuestionsPerInterview: 5,
			TypingInterval:        time.Millisecond,
			HistoryPageLimit:      10,
		},
	}
}

func questionList(n int) []*model.InterviewQuestion {
	questions := make([]*model.InterviewQuestion, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, &model.InterviewQuestion{ID: uint(i), Question: "Tell me about a challenge."})
	}
	return questions
}

func TestStartTransitionsToActive(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(1)
	svc := NewInterviewSessionService(fake, testConfig())

	session, question, err := svc.Start(context.Background(), "cred")
	require.NoError(t, err)
	assert.Equal(t, uint(1), session.ID)
	assert.Equal(t, uint(1), question.ID)

	snap := svc.Snapshot("cred")
	assert.Equal(t, StateActive, snap.State)
	assert.Empty(t, snap.LastError)
}

func TestStartFailureReturnsToIdle(t *testing.T) {
	fake := newFakeBackend()
	fake.startErr = errors.New("backend down")
	svc := NewInterviewSessionService(fake, testConfig())

	_, _, err := svc.Start(context.Background(), "cred")
	require.Error(t, err)

	snap := svc.Snapshot("cred")
	assert.Equal(t, StateIdle, snap.State)
	assert.Contains(t, snap.LastError, "backend down")
}

func TestAdvanceExhaustionCompletesSilently(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(1)
	svc := NewInterviewSessionService(fake, testConfig())

	_, _, err := svc.Start(context.Background(), "cred")
	require.NoError(t, err)
	historyBefore := fake.historyCalls

	question, completed, err := svc.Advance(context.Background(), "cred")
	require.NoError(t, err)
	assert.True(t, completed)
	assert.Nil(t, question)

	// Completion ran and history was refreshed before Advance returned.
	assert.Equal(t, 1, fake.completeCalls)
	assert.Equal(t, historyBefore+1, fake.historyCalls)

	snap := svc.Snapshot("cred")
	assert.Equal(t, StateIdle, snap.State)
	assert.Nil(t, snap.Session)
	assert.Len(t, snap.PastInterviews, 1)
	assert.Empty(t, snap.LastError)
}

func TestAdvanceWithoutSessionIsGuarded(t *testing.T) {
	svc := NewInterviewSessionService(newFakeBackend(), testConfig())

	_, _, err := svc.Advance(context.Background(), "cred")
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestSubmitWithoutSessionIsGuarded(t *testing.T) {
	svc := NewInterviewSessionService(newFakeBackend(), testConfig())

	_, err := svc.SubmitResponse(context.Background(), "cred", "my answer")
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestSubmitAppendsFeedbackEntry(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(2)
	svc := NewInterviewSessionService(fake, testConfig())

	_, _, err := svc.Start(context.Background(), "cred")
	require.NoError(t, err)

	answer, err := svc.SubmitResponse(context.Background(), "cred", "my answer")
	require.NoError(t, err)
	assert.Equal(t, "Solid answer.", answer.AIFeedback)
	require.NotNil(t, answer.QuestionID)
	assert.Equal(t, uint(1), *answer.QuestionID)
	assert.Equal(t, 1, answer.QuestionNumber)

	snap := svc.Snapshot("cred")
	require.Len(t, snap.Feedbacks, 1)
	assert.Equal(t, "my answer", snap.Feedbacks[0].UserResponse)
}

func TestSubmitFailureSetsErrorSlotAndReturns(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(1)
	svc := NewInterviewSessionService(fake, testConfig())

	_, _, err := svc.Start(context.Background(), "cred")
	require.NoError(t, err)

	fake.submitErr = errors.New("scoring unavailable")
	_, err = svc.SubmitResponse(context.Background(), "cred", "my answer")
	require.Error(t, err)

	snap := svc.Snapshot("cred")
	assert.Contains(t, snap.LastError, "scoring unavailable")
	assert.Equal(t, StateActive, snap.State)

	svc.ClearError("cred")
	assert.Empty(t, svc.Snapshot("cred").LastError)
}

func TestConcurrentMutationRejected(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(3)
	svc := NewInterviewSessionService(fake, testConfig())

	_, _, err := svc.Start(context.Background(), "cred")
	require.NoError(t, err)

	fake.mu.Lock()
	fake.blockNext = make(chan struct{})
	fake.nextEntered = make(chan struct{})
	entered := fake.nextEntered
	block := fake.blockNext
	fake.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _, _ = svc.Advance(context.Background(), "cred")
	}()

	<-entered
	_, err = svc.SubmitResponse(context.Background(), "cred", "while busy")
	assert.ErrorIs(t, err, ErrOperationInFlight)

	close(block)
	<-done
}

func TestCompleteFailureStaysActive(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(1)
	svc := NewInterviewSessionService(fake, testConfig())

	_, _, err := svc.Start(context.Background(), "cred")
	require.NoError(t, err)

	fake.completeErr = errors.New("completion rejected")
	err = svc.Complete(context.Background(), "cred")
	require.Error(t, err)

	snap := svc.Snapshot("cred")
	assert.Equal(t, StateActive, snap.State)
	require.NotNil(t, snap.Session)
	assert.Contains(t, snap.LastError, "completion rejected")
}

func TestCompleteRefreshesHistory(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(1)
	svc := NewInterviewSessionService(fake, testConfig())

	_, _, err := svc.Start(context.Background(), "cred")
	require.NoError(t, err)

	err = svc.Complete(context.Background(), "cred")
	require.NoError(t, err)

	snap := svc.Snapshot("cred")
	assert.Equal(t, StateIdle, snap.State)
	require.Len(t, snap.PastInterviews, 1)
	assert.Equal(t, model.SessionCompleted, snap.PastInterviews[0].Status)
	assert.Equal(t, 1, snap.HistoryCount)
}

func TestRateQuestionValidatesAndAttaches(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(1)
	svc := NewInterviewSessionService(fake, testConfig())

	_, _, err := svc.Start(context.Background(), "cred")
	require.NoError(t, err)
	_, err = svc.SubmitResponse(context.Background(), "cred", "answer")
	require.NoError(t, err)

	_, err = svc.RateQuestion(context.Background(), "cred", 1, 1, "MEH")
	assert.ErrorIs(t, err, ErrInvalidRating)
	assert.Equal(t, 0, fake.rateCalls)

	rating, err := svc.RateQuestion(context.Background(), "cred", 1, 1, model.RatingLike)
	require.NoError(t, err)
	assert.Equal(t, model.RatingLike, rating.Rating)

	snap := svc.Snapshot("cred")
	require.Len(t, snap.Feedbacks, 1)
	require.NotNil(t, snap.Feedbacks[0].Rating)
	assert.Equal(t, model.RatingLike, snap.Feedbacks[0].Rating.Rating)
}

func TestSubmitFeedbackValidatesLocally(t *testing.T) {
	fake := newFakeBackend()
	svc := NewInterviewSessionService(fake, testConfig())

	_, err := svc.SubmitFeedback(context.Background(), "cred", 1, "", 3)
	assert.ErrorIs(t, err, ErrInvalidFeedback)

	_, err = svc.SubmitFeedback(context.Background(), "cred", 1, "great", 6)
	assert.ErrorIs(t, err, ErrInvalidFeedback)

	submission, err := svc.SubmitFeedback(context.Background(), "cred", 1, "great", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, submission.Rating)
	assert.Equal(t, 1, fake.historyCalls)
}

func TestStoresAreIsolatedPerCredential(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(2)
	svc := NewInterviewSessionService(fake, testConfig())

	_, _, err := svc.Start(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, StateActive, svc.Snapshot("alice").State)
	assert.Equal(t, StateIdle, svc.Snapshot("bob").State)

	svc.Reset("alice")
	assert.Equal(t, StateIdle, svc.Snapshot("alice").State)
}
