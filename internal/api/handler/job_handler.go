package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ruralroots/directory-api/internal/core/domain"
	"github.com/ruralroots/directory-api/internal/core/ports"
	"github.com/ruralroots/directory-api/internal/core/views"
)

// JobHandler handles HTTP requests for the recruitment board.
type JobHandler struct {
	service ports.DirectoryService
}

func NewJobHandler(service ports.DirectoryService) *JobHandler {
	return &JobHandler{service: service}
}

// List handles GET /v1/jobs: all postings, newest first.
//
// @Summary      List job postings
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  listJobsResponse
// @Router       /v1/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	snap := h.service.Snapshot()
	return c.JSON(http.StatusOK, toJobList(views.ListJobs(snap.Jobs), snap))
}

// Create handles POST /v1/jobs. Requires the farm role and at least one
// owned farm.
//
// @Summary      Post a new job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  jobResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.service.AddJob(c.Request().Context(), ports.AddJobInput{
		FarmID:       req.FarmID,
		Title:        req.Title,
		Type:         req.Type,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       req.Salary,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toJobResponse(job, farmName(h.service.Snapshot(), job.FarmID)))
}

// Apply handles POST /v1/jobs/:id/apply. Applying twice is a no-op.
//
// @Summary      Apply to a job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  jobResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/jobs/{id}/apply [post]
func (h *JobHandler) Apply(c echo.Context) error {
	job, err := h.service.ApplyToJob(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toJobResponse(job, farmName(h.service.Snapshot(), job.FarmID)))
}

// MyApplications handles GET /v1/me/applications: the jobs the caller
// has applied to, snapshot order.
//
// @Summary      Jobs applied to by the caller
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listJobsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/me/applications [get]
func (h *JobHandler) MyApplications(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	snap := h.service.Snapshot()
	return c.JSON(http.StatusOK, toJobList(views.JobsAppliedToBy(snap.Jobs, userID), snap))
}

func toJobList(jobs []domain.Job, snap *domain.Snapshot) listJobsResponse {
	data := make([]jobResponse, 0, len(jobs))
	for i := range jobs {
		data = append(data, toJobResponse(&jobs[i], farmName(snap, jobs[i].FarmID)))
	}
	return listJobsResponse{Data: data, Total: len(data)}
}

func farmName(snap *domain.Snapshot, farmID string) string {
	if f := snap.FindFarm(farmID); f != nil {
		return f.Name
	}
	return ""
}
