package http

import (
	"net/http"
	"time"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"
	"alumninet/internal/httputil"
	"alumninet/internal/infrastructure/middleware"
	"alumninet/pkg/errors"
	"alumninet/pkg/validation"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventService ports.EventService
}

func NewEventHandler(eventService ports.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

func (h *EventHandler) SetupRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	api := router.Group("/api/v1/event")
	{
		api.POST("/create", auth, h.Create)
		api.GET("/upcoming", h.Upcoming)
		api.GET("/past", h.Past)
		api.DELETE("/:eventId", auth, h.Delete)
	}
}

type CreateEventRequest struct {
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Images  []string  `json:"images"`
	Link    string    `json:"link"`
	Date    time.Time `json:"date"`
}

func (r *CreateEventRequest) validate() error {
	v := validation.New()
	v.Require("title", r.Title)
	if r.Title != "" {
		v.Length("title", r.Title, 1, 100)
	}
	v.Require("content", r.Content)
	v.URLs("images", r.Images)
	if r.Link != "" {
		v.URL("link", r.Link)
	}
	if r.Date.IsZero() {
		v.Add("date", "date is required")
	}
	return v.Err()
}

func (h *EventHandler) Create(c *gin.Context) {
	principal, ok := middleware.PrincipalID(c)
	if !ok {
		httputil.Abort(c, http.StatusUnauthorized, "Access Denied")
		return
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewInvalidInputError("Invalid request body."))
		return
	}

	if err := req.validate(); err != nil {
		c.Error(err)
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), principal, ports.CreateEventInput{
		Title:   req.Title,
		Content: req.Content,
		Images:  req.Images,
		Link:    req.Link,
		Date:    req.Date,
	})
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusCreated, "Event created successfully.", event)
}

func (h *EventHandler) Upcoming(c *gin.Context) {
	events, err := h.eventService.Upcoming(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusOK, "Upcoming events retrieved successfully.", events)
}

func (h *EventHandler) Past(c *gin.Context) {
	events, err := h.eventService.Past(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusOK, "Past events retrieved successfully.", events)
}

func (h *EventHandler) Delete(c *gin.Context) {
	principal, ok := middleware.PrincipalID(c)
	if !ok {
		httputil.Abort(c, http.StatusUnauthorized, "Access Denied")
		return
	}

	eventID := domain.EventID(c.Param("eventId"))
	if err := h.eventService.Delete(c.Request.Context(), principal, eventID); err != nil {
		c.Error(err)
		return
	}

	httputil.RespondMessage(c, http.StatusOK, "Event deleted successfully.")
}
