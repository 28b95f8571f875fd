package http

import (
	"net/http"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"
	"alumninet/internal/httputil"
	"alumninet/internal/infrastructure/middleware"
	"alumninet/pkg/errors"
	"alumninet/pkg/validation"

	"github.com/gin-gonic/gin"
)

type StoryHandler struct {
	storyService ports.StoryService
}

func NewStoryHandler(storyService ports.StoryService) *StoryHandler {
	return &StoryHandler{
		storyService: storyService,
	}
}

func (h *StoryHandler) SetupRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	api := router.Group("/api/v1/story")
	{
		api.GET("", h.List)
		api.POST("/create", auth, h.Create)
		api.PUT("/:storyId", auth, h.Publish)
	}
}

type CreateStoryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r *CreateStoryRequest) validate() error {
	v := validation.New()
	v.Require("title", r.Title)
	if r.Title != "" {
		v.Length("title", r.Title, 1, 255)
	}
	v.Require("description", r.Description)
	return v.Err()
}

type PublishStoryRequest struct {
	Published *bool `json:"published"`
}

func (r *PublishStoryRequest) validate() error {
	v := validation.New()
	if r.Published == nil {
		v.Add("published", "published is required")
	}
	return v.Err()
}

func (h *StoryHandler) List(c *gin.Context) {
	stories, err := h.storyService.ListPublished(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusOK, "Success stories retrieved successfully.", stories)
}

func (h *StoryHandler) Create(c *gin.Context) {
	principal, ok := middleware.PrincipalID(c)
	if !ok {
		httputil.Abort(c, http.StatusUnauthorized, "Access Denied")
		return
	}

	var req CreateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewInvalidInputError("Invalid request body."))
		return
	}

	if err := req.validate(); err != nil {
		c.Error(err)
		return
	}

	story, err := h.storyService.Create(c.Request.Context(), principal, req.Title, req.Description)
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusCreated, "Success story created successfully.", story)
}

func (h *StoryHandler) Publish(c *gin.Context) {
	principal, ok := middleware.PrincipalID(c)
	if !ok {
		httputil.Abort(c, http.StatusUnauthorized, "Access Denied")
		return
	}

	var req PublishStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewInvalidInputError("Invalid request body."))
		return
	}

	if err := req.validate(); err != nil {
		c.Error(err)
		return
	}

	storyID := domain.StoryID(c.Param("storyId"))
	story, err := h.storyService.SetPublished(c.Request.Context(), principal, storyID, *req.Published)
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusOK, "Success story updated successfully.", story)
}
