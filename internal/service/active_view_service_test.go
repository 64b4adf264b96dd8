package service

import (
	"context"
	"errors"
	"testing"

	"github.com/careercracker/webclient/internal/dto"
	"github.com/careercracker/webclient/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViewService(fake *fakeBackend) ActiveInterviewService {
	cfg := testConfig()
	sessions := NewInterviewSessionService(fake, cfg)
	return NewActiveInterviewService(sessions, NewTranscriptService(), cfg)
}

func TestOpenRendersFirstQuestion(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(5)
	svc := newViewService(fake)

	view, err := svc.Open(context.Background(), "cred", true)
	require.NoError(t, err)

	assert.Equal(t, "ACTIVE", view.State)
	assert.Equal(t, PhaseAnswering, view.Phase)
	assert.Equal(t, 1, view.QuestionNumber)
	assert.Equal(t, 5, view.TotalQuestions)
	require.NotNil(t, view.Question)
	assert.Equal(t, uint(1), view.Question.ID)
	assert.True(t, view.SpeechSupported)
	assert.Empty(t, view.SpeechNotice)
}

func TestOpenWithoutSpeechShowsNotice(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(5)
	svc := newViewService(fake)

	view, err := svc.Open(context.Background(), "cred", false)
	require.NoError(t, err)
	assert.False(t, view.SpeechSupported)
	assert.NotEmpty(t, view.SpeechNotice)

	_, err = svc.StartListening("cred")
	assert.ErrorIs(t, err, ErrSpeechUnsupported)
}

func TestSubmitEmptyResponseNeverTouchesNetwork(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(5)
	svc := newViewService(fake)

	_, err := svc.Open(context.Background(), "cred", true)
	require.NoError(t, err)
	submitsBefore := fake.submitCalls

	_, err = svc.Submit(context.Background(), "cred", "   \n\t ")
	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.Equal(t, submitsBefore, fake.submitCalls)

	// Still answerable afterwards.
	view, err := svc.Submit(context.Background(), "cred", "a real answer")
	require.NoError(t, err)
	assert.Equal(t, PhaseSubmitted, view.Phase)
}

func TestSubmitStoresFullFeedbackImmediately(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(5)
	svc := newViewService(fake)

	_, err := svc.Open(context.Background(), "cred", true)
	require.NoError(t, err)

	view, err := svc.Submit(context.Background(), "cred", "my answer")
	require.NoError(t, err)
	assert.Equal(t, "Solid answer.", view.Feedback)

	feedback, err := svc.FeedbackText("cred")
	require.NoError(t, err)
	assert.Equal(t, "Solid answer.", feedback)
}

func TestSubmitTwiceForSameQuestionRejected(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(5)
	svc := newViewService(fake)

	_, err := svc.Open(context.Background(), "cred", true)
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), "cred", "answer")
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), "cred", "again")
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Equal(t, 1, fake.submitCalls)
}

func TestNextIncrementsCounterAndResetsQuestionState(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(5)
	svc := newViewService(fake)

	_, err := svc.Open(context.Background(), "cred", true)
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), "cred", "answer one")
	require.NoError(t, err)

	view, err := svc.Next(context.Background(), "cred")
	require.NoError(t, err)
	assert.Equal(t, 2, view.QuestionNumber)
	assert.Equal(t, PhaseAnswering, view.Phase)
	assert.Empty(t, view.Draft)
	assert.Empty(t, view.Feedback)
	assert.Nil(t, view.Rating)
	require.NotNil(t, view.Question)
	assert.Equal(t, uint(2), view.Question.ID)
}

func TestNextBeforeSubmitRejected(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(5)
	svc := newViewService(fake)

	_, err := svc.Open(context.Background(), "cred", true)
	require.NoError(t, err)

	_, err = svc.Next(context.Background(), "cred")
	assert.ErrorIs(t, err, ErrResponseNotSubmitted)
}

func TestSkipKeepsCounter(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(5)
	svc := newViewService(fake)

	_, err := svc.Open(context.Background(), "cred", true)
	require.NoError(t, err)

	view, err := svc.Skip(context.Background(), "cred")
	require.NoError(t, err)
	assert.Equal(t, 1, view.QuestionNumber)
	require.NotNil(t, view.Question)
	assert.Equal(t, uint(2), view.Question.ID)
}

func TestSkipAfterSubmitRejected(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(5)
	svc := newViewService(fake)

	_, err := svc.Open(context.Background(), "cred", true)
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), "cred", "answer")
	require.NoError(t, err)

	_, err = svc.Skip(context.Background(), "cred")
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestRatingIdempotencyAndRollback(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(5)
	svc := newViewService(fake)

	_, err := svc.Open(context.Background(), "cred", true)
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), "cred", "answer")
	require.NoError(t, err)

	view, err := svc.Rate(context.Background(), "cred", model.RatingLike)
	require.NoError(t, err)
	require.NotNil(t, view.Rating)
	assert.Equal(t, model.RatingLike, *view.Rating)
	assert.Equal(t, 1, fake.rateCalls)

	// Same value again: no second backend call.
	view, err = svc.Rate(context.Background(), "cred", model.RatingLike)
	require.NoError(t, err)
	require.NotNil(t, view.Rating)
	assert.Equal(t, 1, fake.rateCalls)

	// Backend failure rolls the selection back to none.
	fake.rateErr = errors.New("rating service down")
	_, err = svc.Rate(context.Background(), "cred", model.RatingDislike)
	require.Error(t, err)

	current, err := svc.View("cred")
	require.NoError(t, err)
	assert.Nil(t, current.Rating)
}

func TestRateBeforeSubmitRejected(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(5)
	svc := newViewService(fake)

	_, err := svc.Open(context.Background(), "cred", true)
	require.NoError(t, err)

	_, err = svc.Rate(context.Background(), "cred", model.RatingLike)
	assert.ErrorIs(t, err, ErrResponseNotSubmitted)
	assert.Equal(t, 0, fake.rateCalls)
}

func TestFullFiveQuestionScenario(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(5)
	svc := newViewService(fake)

	view, err := svc.Open(context.Background(), "cred", true)
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		assert.Equal(t, i, view.QuestionNumber)
		assert.Equal(t, i == 5, view.IsLastQuestion)

		view, err = svc.Submit(context.Background(), "cred", "answer")
		require.NoError(t, err)
		assert.Equal(t, PhaseSubmitted, view.Phase)

		if i < 5 {
			view, err = svc.Next(context.Background(), "cred")
			require.NoError(t, err)
		}
	}

	sessionID, err := svc.Complete(context.Background(), "cred")
	require.NoError(t, err)
	assert.Equal(t, uint(1), sessionID)
	assert.Equal(t, 1, fake.completeCalls)

	// The view is gone; a fresh interview can be opened.
	_, err = svc.View("cred")
	assert.ErrorIs(t, err, ErrViewNotOpen)

	view, err = svc.Open(context.Background(), "cred", true)
	require.Error(t, err) // question supply was consumed above
	_ = view
}

func TestCompleteBeforeLastQuestionRejected(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(5)
	svc := newViewService(fake)

	_, err := svc.Open(context.Background(), "cred", true)
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), "cred", "answer")
	require.NoError(t, err)

	_, err = svc.Complete(context.Background(), "cred")
	assert.ErrorIs(t, err, ErrNotLastQuestion)
	assert.Equal(t, 0, fake.completeCalls)
}

func TestExhaustionMidInterviewChainsCompletedSessionID(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(2)
	svc := newViewService(fake)

	_, err := svc.Open(context.Background(), "cred", true)
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), "cred", "answer one")
	require.NoError(t, err)
	_, err = svc.Next(context.Background(), "cred")
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), "cred", "answer two")
	require.NoError(t, err)

	// Supply is exhausted: Next completes the interview instead of failing.
	view, err := svc.Next(context.Background(), "cred")
	require.NoError(t, err)
	require.NotNil(t, view.CompletedSessionID)
	assert.Equal(t, uint(1), *view.CompletedSessionID)
	assert.Equal(t, 1, fake.completeCalls)
	assert.Empty(t, view.Error)
}

func TestDictationFlowsIntoDraftAndSubmit(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(5)
	svc := newViewService(fake)

	_, err := svc.Open(context.Background(), "cred", true)
	require.NoError(t, err)

	_, err = svc.StartListening("cred")
	require.NoError(t, err)

	transcript, err := svc.ApplyRecognition("cred", dto.RecognitionEventRequest{
		Results: []dto.RecognitionResultDTO{
			{Transcript: "I led a project", IsFinal: true},
			{Transcript: "that shipped", IsFinal: false},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "I led a project that shipped", transcript.Draft)

	svc.StopListening("cred")

	// Empty submit text falls back to the dictation draft.
	view, err := svc.Submit(context.Background(), "cred", "")
	require.NoError(t, err)
	assert.Equal(t, PhaseSubmitted, view.Phase)
	assert.Equal(t, "I led a project that shipped", view.Draft)
}

func TestCloseStopsTranscriptionAndResets(t *testing.T) {
	fake := newFakeBackend()
	fake.questions = questionList(5)
	svc := newViewService(fake)

	_, err := svc.Open(context.Background(), "cred", true)
	require.NoError(t, err)
	_, err = svc.StartListening("cred")
	require.NoError(t, err)

	svc.Close("cred")

	_, err = svc.View("cred")
	assert.ErrorIs(t, err, ErrViewNotOpen)
}
