package user

import (
	"net/http"

	"github.com/careercracker/webclient/config"
	"github.com/careercracker/webclient/internal/dto"
	"github.com/careercracker/webclient/internal/middleware"
	"github.com/careercracker/webclient/internal/model"
	"github.com/careercracker/webclient/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type ProfileController struct {
	profileService service.ProfileService
	sessionService service.InterviewSessionService
	cfg            *config.Config
}

func NewProfileController(ps service.ProfileService, ss service.InterviewSessionService, cfg *config.Config) *ProfileController {
	return &ProfileController{profileService: ps, sessionService: ss, cfg: cfg}
}

// GetProfile godoc
// @Summary Get the user's profile
// @Description Return the authenticated user's profile, cached after the first fetch.
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileDTO
// @Failure 401 {object} dto.ErrorResponse "Missing or rejected credential"
// @Router /profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	profile, err := c.profileService.Profile(ctx.Request.Context(), middleware.Credential(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update the user's profile
// @Description Update profile fields; omitted fields are left unchanged. Username and email are not editable.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.ProfileDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Missing or rejected credential"
// @Router /profile [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateProfile: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	profile, err := c.profileService.UpdateProfile(ctx.Request.Context(), middleware.Credential(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// UpdateJobTitle godoc
// @Summary Set the target job title
// @Description Update only the target job title, typically right before starting an interview.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param title body dto.UpdateJobTitleRequest true "Target job title"
// @Success 200 {object} dto.ProfileDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Missing or rejected credential"
// @Router /profile/job-title [put]
func (c *ProfileController) UpdateJobTitle(ctx *gin.Context) {
	var req dto.UpdateJobTitleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateJobTitle: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	profile, err := c.profileService.UpdateJobTitle(ctx.Request.Context(), middleware.Credential(ctx), req.TargetJobTitle)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// Dashboard godoc
// @Summary Landing-page summary
// @Description Return the profile together with the most recent interviews.
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardDTO
// @Failure 401 {object} dto.ErrorResponse "Missing or rejected credential"
// @Router /dashboard [get]
func (c *ProfileController) Dashboard(ctx *gin.Context) {
	cred := middleware.Credential(ctx)

	profile, err := c.profileService.Profile(ctx.Request.Context(), cred)
	if err != nil {
		respondError(ctx, err)
		return
	}

	history, err := c.sessionService.PastInterviews(ctx.Request.Context(), cred, 1, c.cfg.Interview.HistoryPageLimit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	recent := make([]dto.PastInterviewDTO, 0, len(history.Results))
	for i := range history.Results {
		recent = append(recent, toPastInterviewDTO(&history.Results[i]))
	}
	ctx.JSON(http.StatusOK, dto.DashboardDTO{
		Profile:          *profile,
		RecentInterviews: recent,
		TotalInterviews:  history.Count,
	})
}

func toPastInterviewDTO(past *model.PastInterview) dto.PastInterviewDTO {
	var out dto.PastInterviewDTO
	if err := copier.Copy(&out, past); err != nil {
		log.Error().Err(err).Uint("sessionID", past.ID).Msg("Failed to map past interview to DTO")
	}
	return out
}
