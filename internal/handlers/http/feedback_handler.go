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

type FeedbackHandler struct {
	feedbackService ports.FeedbackService
}

func NewFeedbackHandler(feedbackService ports.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
	}
}

func (h *FeedbackHandler) SetupRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	api := router.Group("/api/v1/feedback", auth)
	{
		api.POST("/feedback", h.Create)
		api.GET("/feedbacks", h.List)
		api.DELETE("/feedback/:feedbackId", h.Delete)
	}
}

type CreateFeedbackRequest struct {
	Content      string `json:"content"`
	AttachedFile string `json:"attachedFile"`
}

func (r *CreateFeedbackRequest) validate() error {
	v := validation.New()
	v.Require("content", r.Content)
	if r.Content != "" {
		v.Length("content", r.Content, 1, 500)
	}
	if r.AttachedFile != "" {
		v.URL("attachedFile", r.AttachedFile)
	}
	return v.Err()
}

func (h *FeedbackHandler) Create(c *gin.Context) {
	principal, ok := middleware.PrincipalID(c)
	if !ok {
		httputil.Abort(c, http.StatusUnauthorized, "Access Denied")
		return
	}

	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewInvalidInputError("Invalid request body."))
		return
	}

	if err := req.validate(); err != nil {
		c.Error(err)
		return
	}

	feedback, err := h.feedbackService.Create(c.Request.Context(), principal, req.Content, req.AttachedFile)
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusCreated, "Feedback created successfully.", feedback)
}

func (h *FeedbackHandler) List(c *gin.Context) {
	feedbacks, err := h.feedbackService.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusOK, "Feedbacks retrieved successfully.", feedbacks)
}

func (h *FeedbackHandler) Delete(c *gin.Context) {
	principal, ok := middleware.PrincipalID(c)
	if !ok {
		httputil.Abort(c, http.StatusUnauthorized, "Access Denied")
		return
	}

	feedbackID := domain.FeedbackID(c.Param("feedbackId"))
	if err := h.feedbackService.Delete(c.Request.Context(), principal, feedbackID); err != nil {
		c.Error(err)
		return
	}

	httputil.RespondMessage(c, http.StatusOK, "Feedback deleted successfully.")
}
