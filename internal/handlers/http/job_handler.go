package http

import (
	"net/http"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"
	"alumninet/internal/httputil"
	"alumninet/pkg/errors"
	"alumninet/pkg/validation"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobService ports.JobService
}

func NewJobHandler(jobService ports.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

func (h *JobHandler) SetupRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	api := router.Group("/api/v1/job")
	{
		api.GET("", h.List)
		api.GET("/:jobId", h.Get)
		api.POST("/create", auth, h.Create)
		api.PUT("/update/:jobId", auth, h.Update)
		api.DELETE("/delete/:jobId", auth, h.Delete)
	}
}

type JobRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Experience  string `json:"experience"`
	Location    string `json:"location"`
	JobType     string `json:"jobType"`
	Industry    string `json:"industry"`
	JobFunction string `json:"jobFunction"`
	Remote      string `json:"remote"`
}

func (r *JobRequest) validate() error {
	v := validation.New()
	fields := map[string]string{
		"title":       r.Title,
		"company":     r.Company,
		"experience":  r.Experience,
		"location":    r.Location,
		"jobType":     r.JobType,
		"industry":    r.Industry,
		"jobFunction": r.JobFunction,
		"remote":      r.Remote,
	}
	for name, value := range fields {
		v.Require(name, value)
		if value != "" {
			v.Length(name, value, 1, 255)
		}
	}
	return v.Err()
}

func (r *JobRequest) input() ports.JobInput {
	return ports.JobInput{
		Title:       r.Title,
		Company:     r.Company,
		Experience:  r.Experience,
		Location:    r.Location,
		JobType:     r.JobType,
		Industry:    r.Industry,
		JobFunction: r.JobFunction,
		Remote:      r.Remote,
	}
}

func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewInvalidInputError("Invalid request body."))
		return
	}

	if err := req.validate(); err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), req.input())
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusCreated, "Job created successfully.", job)
}

func (h *JobHandler) Get(c *gin.Context) {
	jobID := domain.JobID(c.Param("jobId"))
	job, err := h.jobService.Get(c.Request.Context(), jobID)
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusOK, "Job fetched successfully.", job)
}

func (h *JobHandler) Update(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewInvalidInputError("Invalid request body."))
		return
	}

	if err := req.validate(); err != nil {
		c.Error(err)
		return
	}

	jobID := domain.JobID(c.Param("jobId"))
	job, err := h.jobService.Update(c.Request.Context(), jobID, req.input())
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusOK, "Job updated successfully.", job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	jobID := domain.JobID(c.Param("jobId"))
	if err := h.jobService.Delete(c.Request.Context(), jobID); err != nil {
		c.Error(err)
		return
	}

	httputil.RespondMessage(c, http.StatusOK, "Job deleted successfully.")
}

func (h *JobHandler) List(c *gin.Context) {
	filter := domain.JobFilter{
		Title:       c.Query("title"),
		Company:     c.Query("company"),
		Experience:  c.Query("experience"),
		Location:    c.Query("location"),
		JobType:     c.Query("jobType"),
		Industry:    c.Query("industry"),
		JobFunction: c.Query("jobFunction"),
		Remote:      c.Query("remote"),
	}

	jobs, err := h.jobService.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusOK, "Jobs fetched successfully.", jobs)
}
