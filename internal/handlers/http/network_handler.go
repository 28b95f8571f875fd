package http

import (
	"net/http"
	"strconv"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"
	"alumninet/internal/httputil"
	"alumninet/pkg/validation"

	"github.com/gin-gonic/gin"
)

type NetworkHandler struct {
	networkService ports.NetworkService
}

func NewNetworkHandler(networkService ports.NetworkService) *NetworkHandler {
	return &NetworkHandler{
		networkService: networkService,
	}
}

func (h *NetworkHandler) SetupRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	api := router.Group("/api/v1/network")
	{
		api.GET("/search", h.Search)
		api.GET("/filter", h.Filter)
	}
}

func (h *NetworkHandler) Search(c *gin.Context) {
	query := c.Query("searchQuery")

	v := validation.New()
	v.Require("searchQuery", query)
	if err := v.Err(); err != nil {
		c.Error(err)
		return
	}

	profiles, err := h.networkService.Search(c.Request.Context(), query)
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusOK, "Users found.", profiles)
}

func (h *NetworkHandler) Filter(c *gin.Context) {
	filter := domain.ProfileFilter{
		Location:     c.Query("location"),
		Industry:     c.Query("industry"),
		FieldOfStudy: c.Query("fieldOfStudy"),
		Company:      c.Query("company"),
	}
	if from := c.Query("graduationYearFrom"); from != "" {
		if year, err := strconv.Atoi(from); err == nil {
			filter.GraduationStartYearFrom = year
		}
	}
	if to := c.Query("graduationYearTo"); to != "" {
		if year, err := strconv.Atoi(to); err == nil {
			filter.GraduationStartYearTo = year
		}
	}

	profiles, err := h.networkService.Filter(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusOK, "Users filtered successfully.", profiles)
}
