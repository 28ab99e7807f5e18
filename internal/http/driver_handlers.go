package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleet-service/internal/http/middleware"
	"fleet-service/internal/model"
	"fleet-service/internal/service"
)

func (h *Handler) listDrivers(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var opts service.DriverListOptions
	opts.Search = strings.TrimSpace(c.Query("search"))
	opts.Status = model.ReviewStatus(strings.TrimSpace(c.Query("status")))
	opts.DocumentFilter = service.DocumentFilter(strings.TrimSpace(c.Query("documents")))

	fleetCompanyID, err := parseOptionalUUID(c, "fleet_company_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid fleet_company_id"))
		return
	}
	opts.FleetCompanyID = fleetCompanyID
	opts.Limit, opts.Offset = parsePagination(c)

	records, err := h.driverService.List(c.Request.Context(), principal, opts)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": records}))
}

func (h *Handler) getDriver(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	details, err := h.driverService.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(details))
}

func (h *Handler) createDriver(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req struct {
		FullName       string `json:"full_name" binding:"required"`
		Phone          string `json:"phone"`
		Email          string `json:"email"`
		City           string `json:"city"`
		LicenseNumber  string `json:"license_number"`
		FleetCompanyID string `json:"fleet_company_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	input := service.CreateDriverInput{
		FullName:      req.FullName,
		Phone:         req.Phone,
		Email:         req.Email,
		City:          req.City,
		LicenseNumber: req.LicenseNumber,
	}
	if raw := strings.TrimSpace(req.FleetCompanyID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid fleet_company_id"))
			return
		}
		input.FleetCompanyID = &id
	}

	driver, err := h.driverService.Create(c.Request.Context(), principal, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(driver))
}

func (h *Handler) updateDriver(c *gin.Context) {
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
		FullName      *string `json:"full_name"`
		Phone         *string `json:"phone"`
		Email         *string `json:"email"`
		City          *string `json:"city"`
		LicenseNumber *string `json:"license_number"`
		PhotoURL      *string `json:"photo_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	input := service.UpdateDriverInput{
		FullName:      req.FullName,
		Phone:         req.Phone,
		Email:         req.Email,
		City:          req.City,
		LicenseNumber: req.LicenseNumber,
		PhotoURL:      req.PhotoURL,
	}

	if err := h.driverService.Update(c.Request.Context(), principal, id, input); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "updated"}))
}

func (h *Handler) deleteDriver(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.driverService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}

func (h *Handler) listDriverLeaves(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}
	driverID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	records, err := h.leaveService.ListByDriver(c.Request.Context(), principal, driverID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": records}))
}

func (h *Handler) createDriverLeave(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}
	driverID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		LeaveStart  string `json:"leave_start" binding:"required"`
		LeaveEnd    string `json:"leave_end" binding:"required"`
		LeaveReason string `json:"leave_reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	start, err := parseDate(req.LeaveStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid leave_start"))
		return
	}
	end, err := parseDate(req.LeaveEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid leave_end"))
		return
	}

	leave, err := h.leaveService.Create(c.Request.Context(), principal, service.CreateLeaveInput{
		DriverID:    driverID,
		LeaveStart:  start,
		LeaveEnd:    end,
		LeaveReason: req.LeaveReason,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(leave))
}

func (h *Handler) deleteLeave(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.leaveService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}

// parseDate accepts a calendar date or a full RFC3339 timestamp.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if ts, err := time.Parse("2006-01-02", value); err == nil {
		return ts, nil
	}
	return time.Parse(time.RFC3339, value)
}
