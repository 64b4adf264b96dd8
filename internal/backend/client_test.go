package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/careercracker/webclient/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(&config.Config{
		Backend: config.Backend{BaseURL: server.URL, Timeout: 5 * time.Second},
	})
}

func TestStartInterviewSendsCredential(t *testing.T) {
	var gotAuth, gotRequestID string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/interviews/start/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 42, "status": "IN_PROGRESS"}`))
	}))

	session, err := client.StartInterview(context.Background(), "token-123")
	require.NoError(t, err)
	assert.Equal(t, uint(42), session.ID)
	assert.Equal(t, "Bearer token-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestErrorPayloadNormalization(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"detail field", http.StatusBadRequest, `{"detail": "session already completed"}`, "session already completed"},
		{"error field", http.StatusBadRequest, `{"error": "invalid question"}`, "invalid question"},
		{"message field", http.StatusBadRequest, `{"message": "bad input"}`, "bad input"},
		{"no payload", http.StatusInternalServerError, ``, "Internal Server Error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))

			_, err := client.StartInterview(context.Background(), "token")
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.Equal(t, tc.message, apiErr.Message)
		})
	}
}

func TestUnauthorizedWrapsSentinel(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Invalid token."}`))
	}))

	_, err := client.FetchProfile(context.Background(), "stale")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestNextQuestionMapsExhaustion(t *testing.T) {
	t.Run("404 status", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := client.NextQuestion(context.Background(), "token")
		assert.True(t, errors.Is(err, ErrQuestionsExhausted))
	})

	t.Run("exhaustion message", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": "No more questions available"}`))
		}))

		_, err := client.NextQuestion(context.Background(), "token")
		assert.True(t, errors.Is(err, ErrQuestionsExhausted))
	})

	t.Run("other errors pass through", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		_, err := client.NextQuestion(context.Background(), "token")
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrQuestionsExhausted))
	})
}

func TestQuestionRatingNeverErrors(t *testing.T) {
	t.Run("server failure resolves to nil", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		assert.Nil(t, client.QuestionRating(context.Background(), "token", 1, 2))
	})

	t.Run("empty rating resolves to nil", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))

		assert.Nil(t, client.QuestionRating(context.Background(), "token", 1, 2))
	})

	t.Run("existing rating returned", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "3", r.URL.Query().Get("question_id"))
			assert.Equal(t, "7", r.URL.Query().Get("interview_id"))
			w.Write([]byte(`{"id": 9, "rating": "LIKE"}`))
		}))

		rating := client.QuestionRating(context.Background(), "token", 3, 7)
		require.NotNil(t, rating)
		assert.Equal(t, "LIKE", rating.Rating)
	})
}

func TestMalformedPayloadFailsFast(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "not-a-number"`))
	}))

	_, err := client.StartInterview(context.Background(), "token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed backend payload")
}

func TestPastInterviewsPagination(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"results": [{"id": 5, "status": "COMPLETED"}], "count": 11, "page": 2, "total_pages": 2}`))
	}))

	history, err := client.PastInterviews(context.Background(), "token", 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 11, history.Count)
	require.Len(t, history.Results, 1)
	assert.Equal(t, uint(5), history.Results[0].ID)
}
