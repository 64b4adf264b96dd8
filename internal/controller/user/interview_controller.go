package user

import (
	"net/http"
	"strconv"
	"time"

	"github.com/careercracker/webclient/config"
	"github.com/careercracker/webclient/internal/dto"
	"github.com/careercracker/webclient/internal/middleware"
	"github.com/careercracker/webclient/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type InterviewController struct {
	viewService    service.ActiveInterviewService
	sessionService service.InterviewSessionService
	cfg            *config.Config
}

func NewInterviewController(vs service.ActiveInterviewService, ss service.InterviewSessionService, cfg *config.Config) *InterviewController {
	return &InterviewController{viewService: vs, sessionService: ss, cfg: cfg}
}

// Open godoc
// @Summary Start an interview
// @Description Start a new interview session and open the view on its first question.
// @Tags Interview
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param options body dto.OpenInterviewRequest true "Client capabilities"
// @Success 200 {object} dto.InterviewViewDTO
// @Failure 401 {object} dto.ErrorResponse "Missing or rejected credential"
// @Failure 409 {object} dto.ErrorResponse "Another operation is in flight"
// @Router /interviews/open [post]
func (c *InterviewController) Open(ctx *gin.Context) {
	var req dto.OpenInterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Open: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	view, err := c.viewService.Open(ctx.Request.Context(), middleware.Credential(ctx), req.SpeechSupported)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// State godoc
// @Summary Current view state
// @Description Return the full render state of the active-interview view.
// @Tags Interview
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.InterviewViewDTO
// @Failure 409 {object} dto.ErrorResponse "No interview view is open"
// @Router /interviews/state [get]
func (c *InterviewController) State(ctx *gin.Context) {
	view, err := c.viewService.View(middleware.Credential(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// Submit godoc
// @Summary Submit a response
// @Description Submit the response text for the current question; an empty text submits the dictation draft. Whitespace-only responses are rejected locally.
// @Tags Interview
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param response body dto.SubmitResponseRequest true "Response text"
// @Success 200 {object} dto.InterviewViewDTO
// @Failure 400 {object} dto.ErrorResponse "Empty response"
// @Failure 409 {object} dto.ErrorResponse "No open view, or a response was already submitted"
// @Router /interviews/submit [post]
func (c *InterviewController) Submit(ctx *gin.Context) {
	var req dto.SubmitResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Submit: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	view, err := c.viewService.Submit(ctx.Request.Context(), middleware.Credential(ctx), req.Text)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// Next godoc
// @Summary Advance to the next question
// @Description Move to the following question after a submitted response. When the backend has no more questions the interview completes and the view reports the completed session id.
// @Tags Interview
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.InterviewViewDTO
// @Failure 409 {object} dto.ErrorResponse "No submitted response to advance from"
// @Router /interviews/next [post]
func (c *InterviewController) Next(ctx *gin.Context) {
	view, err := c.viewService.Next(ctx.Request.Context(), middleware.Credential(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// Skip godoc
// @Summary Skip the current question
// @Description Fetch a different question without submitting a response. The question counter is unchanged.
// @Tags Interview
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.InterviewViewDTO
// @Failure 409 {object} dto.ErrorResponse "A response was already submitted for this question"
// @Router /interviews/skip [post]
func (c *InterviewController) Skip(ctx *gin.Context) {
	view, err := c.viewService.Skip(ctx.Request.Context(), middleware.Credential(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// Complete godoc
// @Summary Finish the interview
// @Description Complete the interview after the last answered question. History is refreshed before this returns.
// @Tags Interview
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CompletionDTO
// @Failure 409 {object} dto.ErrorResponse "The last question has not been answered yet"
// @Router /interviews/complete [post]
func (c *InterviewController) Complete(ctx *gin.Context) {
	sessionID, err := c.viewService.Complete(ctx.Request.Context(), middleware.Credential(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CompletionDTO{CompletedSessionID: sessionID})
}

// Close godoc
// @Summary Close the interview view
// @Description Abandon the view, stop any live transcription and drop local session state. The backend session is left as-is.
// @Tags Interview
// @Security BearerAuth
// @Success 204 "View closed"
// @Router /interviews/close [post]
func (c *InterviewController) Close(ctx *gin.Context) {
	c.viewService.Close(middleware.Credential(ctx))
	ctx.Status(http.StatusNoContent)
}

// ClearError godoc
// @Summary Clear the last error
// @Description Reset the session store's error slot after the client has shown it.
// @Tags Interview
// @Security BearerAuth
// @Success 204 "Error cleared"
// @Router /interviews/clear-error [post]
func (c *InterviewController) ClearError(ctx *gin.Context) {
	c.sessionService.ClearError(middleware.Credential(ctx))
	ctx.Status(http.StatusNoContent)
}

// Rate godoc
// @Summary Rate the current question
// @Description Record a LIKE or DISLIKE for the question just answered. Repeating the current selection is a no-op.
// @Tags Interview
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param rating body dto.RateQuestionRequest true "Vote"
// @Success 200 {object} dto.InterviewViewDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid rating value"
// @Failure 409 {object} dto.ErrorResponse "No submitted response to rate"
// @Router /interviews/rate [post]
func (c *InterviewController) Rate(ctx *gin.Context) {
	var req dto.RateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Rate: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	view, err := c.viewService.Rate(ctx.Request.Context(), middleware.Credential(ctx), req.Rating)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// QuestionRating godoc
// @Summary Look up an existing rating
// @Description Return the stored rating for a question in a session, or null when none exists. This lookup never fails.
// @Tags Interview
// @Produce json
// @Security BearerAuth
// @Param question_id query int true "Question ID"
// @Param interview_id query int true "Interview session ID"
// @Success 200 {object} dto.RatingDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Router /interviews/rating [get]
func (c *InterviewController) QuestionRating(ctx *gin.Context) {
	questionID, err := strconv.ParseUint(ctx.Query("question_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question_id format"})
		return
	}
	interviewID, err := strconv.ParseUint(ctx.Query("interview_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid interview_id format"})
		return
	}

	rating := c.sessionService.QuestionRating(ctx.Request.Context(), middleware.Credential(ctx), uint(questionID), uint(interviewID))
	if rating == nil {
		ctx.JSON(http.StatusOK, nil)
		return
	}

	var out dto.RatingDTO
	if err := copier.Copy(&out, rating); err != nil {
		log.Error().Err(err).Msg("Failed to map rating to DTO")
	}
	ctx.JSON(http.StatusOK, out)
}

// SubmitFeedback godoc
// @Summary Submit the satisfaction survey
// @Description Send end-of-session feedback with a 1-5 rating for a completed interview.
// @Tags Interview
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session_id path int true "Completed session ID"
// @Param feedback body dto.SubmitFeedbackRequest true "Survey content and rating"
// @Success 200 {object} dto.FeedbackSubmissionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid feedback"
// @Router /interviews/{session_id}/feedback [post]
func (c *InterviewController) SubmitFeedback(ctx *gin.Context) {
	sessionID, err := strconv.ParseUint(ctx.Param("session_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid session ID format"})
		return
	}

	var req dto.SubmitFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitFeedback: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	submission, err := c.sessionService.SubmitFeedback(ctx.Request.Context(), middleware.Credential(ctx), uint(sessionID), req.Content, req.Rating)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var out dto.FeedbackSubmissionDTO
	if err := copier.Copy(&out, submission); err != nil {
		log.Error().Err(err).Msg("Failed to map feedback submission to DTO")
	}
	ctx.JSON(http.StatusOK, out)
}

// History godoc
// @Summary Past interviews
// @Description Return a page of the user's completed interviews with answers and feedback.
// @Tags Interview
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, 1-based" default(1)
// @Param limit query int false "Page size"
// @Success 200 {object} dto.HistoryResponseDTO
// @Failure 401 {object} dto.ErrorResponse "Missing or rejected credential"
// @Router /interviews/history [get]
func (c *InterviewController) History(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(c.cfg.Interview.HistoryPageLimit)))

	history, err := c.sessionService.PastInterviews(ctx.Request.Context(), middleware.Credential(ctx), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	results := make([]dto.PastInterviewDTO, 0, len(history.Results))
	for i := range history.Results {
		results = append(results, toPastInterviewDTO(&history.Results[i]))
	}
	ctx.JSON(http.StatusOK, dto.HistoryResponseDTO{
		Results:    results,
		Count:      history.Count,
		Page:       history.Page,
		TotalPages: history.TotalPages,
	})
}

// StreamFeedback godoc
// @Summary Stream feedback as it types out
// @Description Reveal the current question's feedback over SSE, one character per tick, finishing with a done event. The full text is already available from the submit response.
// @Tags Interview
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "SSE stream of feedback characters"
// @Failure 409 {object} dto.ErrorResponse "No feedback available"
// @Router /interviews/feedback/stream [get]
func (c *InterviewController) StreamFeedback(ctx *gin.Context) {
	feedback, err := c.viewService.FeedbackText(middleware.Credential(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Writer.Header().Set("Content-Type", "text/event-stream")
	ctx.Writer.Header().Set("Cache-Control", "no-cache")
	ctx.Writer.Header().Set("Connection", "keep-alive")

	ticker := time.NewTicker(c.cfg.Interview.TypingInterval)
	defer ticker.Stop()

	runes := []rune(feedback)
	for i := 0; i < len(runes); i++ {
		select {
		case <-ctx.Request.Context().Done():
			return
		case <-ticker.C:
			if _, err := ctx.Writer.WriteString("data: " + string(runes[i]) + "\n\n"); err != nil {
				return
			}
			ctx.Writer.Flush()
		}
	}
	ctx.Writer.WriteString("event: done\ndata: \n\n")
	ctx.Writer.Flush()
}

// StartTranscription godoc
// @Summary Start dictation
// @Description Turn the microphone on for the current question. Rejected when the client declared no speech support.
// @Tags Transcription
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TranscriptDTO
// @Failure 400 {object} dto.ErrorResponse "Speech recognition not supported"
// @Failure 409 {object} dto.ErrorResponse "No open view in the answering phase"
// @Router /interviews/transcription/start [post]
func (c *InterviewController) StartTranscription(ctx *gin.Context) {
	transcript, err := c.viewService.StartListening(middleware.Credential(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, transcript)
}

// TranscriptionEvent godoc
// @Summary Push a recognition event
// @Description Apply one speech-recognition event; the dictation draft is rebuilt from the full result list. A recognizer error stops listening.
// @Tags Transcription
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body dto.RecognitionEventRequest true "Recognizer event"
// @Success 200 {object} dto.TranscriptDTO
// @Failure 400 {object} dto.ErrorResponse "Transcription is not active"
// @Router /interviews/transcription/events [post]
func (c *InterviewController) TranscriptionEvent(ctx *gin.Context) {
	var event dto.RecognitionEventRequest
	if err := ctx.ShouldBindJSON(&event); err != nil {
		log.Warn().Err(err).Msg("TranscriptionEvent: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	transcript, err := c.viewService.ApplyRecognition(middleware.Credential(ctx), event)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, transcript)
}

// StopTranscription godoc
// @Summary Stop dictation
// @Description Turn the microphone off. The assembled draft is kept.
// @Tags Transcription
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TranscriptDTO
// @Router /interviews/transcription/stop [post]
func (c *InterviewController) StopTranscription(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.viewService.StopListening(middleware.Credential(ctx)))
}
