package http

import (
	"net/http"

	"alumninet/internal/core/ports"
	"alumninet/internal/httputil"
	"alumninet/internal/infrastructure/middleware"
	"alumninet/pkg/errors"
	"alumninet/pkg/validation"

	"github.com/gin-gonic/gin"
)

type DonationHandler struct {
	donationService ports.DonationService
	metrics         Metrics
}

func NewDonationHandler(donationService ports.DonationService, metrics Metrics) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
		metrics:         metrics,
	}
}

func (h *DonationHandler) SetupRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	api := router.Group("/api/v1/donation")
	{
		api.POST("/create", auth, h.Create)
		api.GET("", h.List)
		api.GET("/leaderboard", h.Leaderboard)
	}
}

type CreateDonationRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

func (r *CreateDonationRequest) validate() error {
	v := validation.New()
	v.Positive("amount", r.Amount)
	v.Require("currency", r.Currency)
	return v.Err()
}

func (h *DonationHandler) Create(c *gin.Context) {
	principal, ok := middleware.PrincipalID(c)
	if !ok {
		httputil.Abort(c, http.StatusUnauthorized, "Access Denied")
		return
	}

	var req CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewInvalidInputError("Invalid request body."))
		return
	}

	if err := req.validate(); err != nil {
		c.Error(err)
		return
	}

	donation, err := h.donationService.Create(c.Request.Context(), principal, req.Amount, req.Currency)
	if err != nil {
		c.Error(err)
		return
	}

	h.metrics.RecordDonation(req.Amount)
	httputil.Respond(c, http.StatusCreated, "Donation created successfully.", donation)
}

func (h *DonationHandler) List(c *gin.Context) {
	donations, err := h.donationService.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusOK, "Donations retrieved successfully.", donations)
}

func (h *DonationHandler) Leaderboard(c *gin.Context) {
	leaderboard, err := h.donationService.Leaderboard(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusOK, "Leaderboard retrieved successfully.", leaderboard)
}
