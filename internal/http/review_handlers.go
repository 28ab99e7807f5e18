package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fleet-service/internal/http/middleware"
	"fleet-service/internal/model"
	"fleet-service/internal/service"
)

// updateReviewStatus serves the status transition for one entity kind. The
// source field distinguishes list-view quick-actions from detail-view
// actions; only the former require a reason for negative transitions.
func (h *Handler) updateReviewStatus(entityType model.ReviewEntityType) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.MustPrincipal(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
			return
		}
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		var req struct {
			Status string `json:"status" binding:"required"`
			Reason string `json:"reason"`
			Source string `json:"source"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
			return
		}

		target := model.ReviewStatus(strings.ToLower(strings.TrimSpace(req.Status)))
		source := service.TransitionSourceDetail
		if strings.ToLower(strings.TrimSpace(req.Source)) == string(service.TransitionSourceList) {
			source = service.TransitionSourceList
		}

		if err := h.reviewService.RequestTransition(c.Request.Context(), principal, entityType, id, target, req.Reason, source); err != nil {
			h.handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, successResponse(gin.H{"status": "updated"}))
	}
}

func (h *Handler) reviewHistory(entityType model.ReviewEntityType) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.MustPrincipal(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
			return
		}
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		logs, err := h.reviewService.History(c.Request.Context(), principal, entityType, id)
		if err != nil {
			h.handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, successResponse(gin.H{"items": logs}))
	}
}

// documentDashboard rolls up expiry buckets per entity kind for the
// landing page cards.
func (h *Handler) documentDashboard(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	ctx := c.Request.Context()
	drivers, err := h.driverService.DocumentCounts(ctx, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	vehicles, err := h.vehicleService.DocumentCounts(ctx, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	// Fleet partner cards are not shown to drivers; their roll-up stays zero.
	var fleetCompanies model.DashboardCounts
	if !principal.IsDriver() {
		fleetCompanies, err = h.fleetCompanyService.DocumentCounts(ctx, principal)
		if err != nil {
			h.handleError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, successResponse(gin.H{
		"drivers":         drivers,
		"vehicles":        vehicles,
		"fleet_companies": fleetCompanies,
	}))
}
