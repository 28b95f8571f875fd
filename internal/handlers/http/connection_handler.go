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

type ConnectionHandler struct {
	connectionService ports.ConnectionService
	metrics           Metrics
}

func NewConnectionHandler(connectionService ports.ConnectionService, metrics Metrics) *ConnectionHandler {
	return &ConnectionHandler{
		connectionService: connectionService,
		metrics:           metrics,
	}
}

func (h *ConnectionHandler) SetupRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	api := router.Group("/api/v1/connection", auth)
	{
		api.POST("/connections", h.Request)
		api.PATCH("/connections/accept", h.Accept)
		api.PATCH("/connections/reject", h.Reject)
		api.GET("/connections", h.List)
	}
}

type ConnectionRequest struct {
	FollowingID string `json:"followingId"`
}

func (r *ConnectionRequest) validate() error {
	v := validation.New()
	v.Require("followingId", r.FollowingID)
	return v.Err()
}

type ConnectionDecisionRequest struct {
	ConnectionID string `json:"connectionId"`
}

func (r *ConnectionDecisionRequest) validate() error {
	v := validation.New()
	v.Require("connectionId", r.ConnectionID)
	return v.Err()
}

func (h *ConnectionHandler) Request(c *gin.Context) {
	principal, ok := middleware.PrincipalID(c)
	if !ok {
		httputil.Abort(c, http.StatusUnauthorized, "Access Denied")
		return
	}

	var req ConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewInvalidInputError("Invalid request body."))
		return
	}

	if err := req.validate(); err != nil {
		c.Error(err)
		return
	}

	conn, err := h.connectionService.Request(c.Request.Context(), principal, domain.UserID(req.FollowingID))
	if err != nil {
		c.Error(err)
		return
	}

	h.metrics.RecordConnectionRequested()
	httputil.Respond(c, http.StatusCreated, "Connection request sent.", conn)
}

func (h *ConnectionHandler) Accept(c *gin.Context) {
	principal, ok := middleware.PrincipalID(c)
	if !ok {
		httputil.Abort(c, http.StatusUnauthorized, "Access Denied")
		return
	}

	var req ConnectionDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewInvalidInputError("Invalid request body."))
		return
	}

	if err := req.validate(); err != nil {
		c.Error(err)
		return
	}

	conn, err := h.connectionService.Accept(c.Request.Context(), principal, domain.ConnectionID(req.ConnectionID))
	if err != nil {
		c.Error(err)
		return
	}

	h.metrics.RecordConnectionResolved()
	httputil.Respond(c, http.StatusOK, "Connection request accepted.", conn)
}

func (h *ConnectionHandler) Reject(c *gin.Context) {
	principal, ok := middleware.PrincipalID(c)
	if !ok {
		httputil.Abort(c, http.StatusUnauthorized, "Access Denied")
		return
	}

	var req ConnectionDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewInvalidInputError("Invalid request body."))
		return
	}

	if err := req.validate(); err != nil {
		c.Error(err)
		return
	}

	conn, err := h.connectionService.Reject(c.Request.Context(), principal, domain.ConnectionID(req.ConnectionID))
	if err != nil {
		c.Error(err)
		return
	}

	h.metrics.RecordConnectionResolved()
	httputil.Respond(c, http.StatusOK, "Connection request rejected.", conn)
}

func (h *ConnectionHandler) List(c *gin.Context) {
	principal, ok := middleware.PrincipalID(c)
	if !ok {
		httputil.Abort(c, http.StatusUnauthorized, "Access Denied")
		return
	}

	followers, followings, err := h.connectionService.ListConnections(c.Request.Context(), principal)
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusOK, "Connections retrieved successfully.", gin.H{
		"followers":  followers,
		"followings": followings,
	})
}
