package user

import (
	"net/http"

	"github.com/careercracker/webclient/internal/middleware"
	"github.com/careercracker/webclient/internal/service"
	"github.com/gin-gonic/gin"
)

type JobController struct {
	jobService service.JobService
}

func NewJobController(js service.JobService) *JobController {
	return &JobController{jobService: js}
}

// CareerInfo godoc
// @Summary Career information for a job title
// @Description Return a description and typical tasks for the given job title.
// @Tags Jobs
// @Produce json
// @Security BearerAuth
// @Param job_title query string true "Job title to look up"
// @Success 200 {object} dto.CareerInfoDTO
// @Failure 400 {object} dto.ErrorResponse "Empty job title"
// @Failure 401 {object} dto.ErrorResponse "Missing or rejected credential"
// @Router /jobs/career-info [get]
func (c *JobController) CareerInfo(ctx *gin.Context) {
	info, err := c.jobService.CareerInfo(ctx.Request.Context(), middleware.Credential(ctx), ctx.Query("job_title"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, info)
}
