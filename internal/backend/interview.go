package backend

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/careercracker/webclient/internal/model"
	"github.com/rs/zerolog/log"
)

// HistoryPage is the paginated envelope the backend returns for past
// interviews.
type HistoryPage struct {
	Results    []model.PastInterview `json:"results"`
	Count      int                   `json:"count"`
	Page       int                   `json:"page"`
	TotalPages int                   `json:"total_pages"`
}

// StartInterview creates a new session server-side.
func (c *Client) StartInterview(ctx context.Context, cred string) (*model.InterviewSession, error) {
	var session model.InterviewSession
	if err := c.do(ctx, cred, http.MethodPost, "/interviews/start/", nil, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// NextQuestion fetches the next question for the current session. When the
// supply is depleted it returns ErrQuestionsExhausted: a 404 from the
// endpoint, or the backend's literal exhaustion message, both map to it.
func (c *Client) NextQuestion(ctx context.Context, cred string) (*model.InterviewQuestion, error) {
	var question model.InterviewQuestion
	err := c.do(ctx, cred, http.MethodGet, "/interviews/questions/next/", nil, nil, &question)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			if apiErr.StatusCode == http.StatusNotFound || strings.Contains(strings.ToLower(apiErr.Message), exhaustedMessage) {
				return nil, ErrQuestionsExhausted
			}
		}
		return nil, err
	}
	return &question, nil
}

type submitResponseRequest struct {
	QuestionID uint   `json:"questionId"`
	Text       string `json:"text"`
}

// SubmitResponse sends the user's answer and returns the AI feedback entry
// for it. Text must already be validated non-empty by the caller.
func (c *Client) SubmitResponse(ctx context.Context, cred string, sessionID, questionID uint, text string) (*model.InterviewAnswer, error) {
	body := submitResponseRequest{QuestionID: questionID, Text: text}
	var answer model.InterviewAnswer
	path := "/interviews/" + strconv.FormatUint(uint64(sessionID), 10) + "/submit/"
	if err := c.do(ctx, cred, http.MethodPost, path, nil, body, &answer); err != nil {
		return nil, err
	}
	return &answer, nil
}

// CompleteInterview marks the session COMPLETED server-side.
func (c *Client) CompleteInterview(ctx context.Context, cred string, sessionID uint) error {
	path := "/interviews/" + strconv.FormatUint(uint64(sessionID), 10) + "/complete/"
	return c.do(ctx, cred, http.MethodPost, path, nil, nil, nil)
}

// PastInterviews fetches one page of completed sessions. page and limit are
// 1-based positive integers.
func (c *Client) PastInterviews(ctx context.Context, cred string, page, limit int) (*HistoryPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var history HistoryPage
	if err := c.do(ctx, cred, http.MethodGet, "/interviews/history/", query, nil, &history); err != nil {
		return nil, err
	}
	return &history, nil
}

type rateQuestionRequest struct {
	QuestionID  uint   `json:"question_id"`
	InterviewID uint   `json:"interview_id"`
	Rating      string `json:"rating"`
}

// RateQuestion records a LIKE/DISLIKE vote for a (question, session) pair.
// The backend overwrites any previous vote for the pair.
func (c *Client) RateQuestion(ctx context.Context, cred string, questionID, sessionID uint, rating string) (*model.QuestionRating, error) {
	body := rateQuestionRequest{QuestionID: questionID, InterviewID: sessionID, Rating: rating}
	var result model.QuestionRating
	if err := c.do(ctx, cred, http.MethodPost, "/interviews/question/rate/", nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// QuestionRating looks up an existing vote for a (question, session) pair.
// The lookup is best-effort: any failure resolves to nil, never an error.
func (c *Client) QuestionRating(ctx context.Context, cred string, questionID, sessionID uint) *model.QuestionRating {
	query := url.Values{}
	query.Set("question_id", strconv.FormatUint(uint64(questionID), 10))
	query.Set("interview_id", strconv.FormatUint(uint64(sessionID), 10))

	var rating model.QuestionRating
	if err := c.do(ctx, cred, http.MethodGet, "/interviews/question/rating/", query, nil, &rating); err != nil {
		log.Debug().Err(err).Uint("questionID", questionID).Uint("sessionID", sessionID).Msg("Question rating lookup failed, treating as unrated")
		return nil
	}
	if rating.Rating == "" {
		return nil
	}
	return &rating
}

type submitFeedbackRequest struct {
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// SubmitFeedback attaches the end-of-session satisfaction survey to a
// completed session. Content must be non-empty and rating within 1..5,
// validated by the caller.
func (c *Client) SubmitFeedback(ctx context.Context, cred string, sessionID uint, content string, rating int) (*model.FeedbackSubmission, error) {
	body := submitFeedbackRequest{Content: content, Rating: rating}
	var submission model.FeedbackSubmission
	path := "/interviews/" + strconv.FormatUint(uint64(sessionID), 10) + "/feedback/"
	if err := c.do(ctx, cred, http.MethodPost, path, nil, body, &submission); err != nil {
		return nil, err
	}
	return &submission, nil
}
