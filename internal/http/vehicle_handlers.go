package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"fleet-service/internal/http/middleware"
	"fleet-service/internal/model"
	"fleet-service/internal/service"
)

func (h *Handler) listVehicles(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var opts service.VehicleListOptions
	opts.Search = strings.TrimSpace(c.Query("search"))
	opts.Status = model.ReviewStatus(strings.TrimSpace(c.Query("status")))
	opts.DocumentFilter = service.DocumentFilter(strings.TrimSpace(c.Query("documents")))

	driverID, err := parseOptionalUUID(c, "driver_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid driver_id"))
		return
	}
	opts.DriverID = driverID

	fleetCompanyID, err := parseOptionalUUID(c, "fleet_company_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid fleet_company_id"))
		return
	}
	opts.FleetCompanyID = fleetCompanyID
	opts.Limit, opts.Offset = parsePagination(c)

	records, err := h.vehicleService.List(c.Request.Context(), principal, opts)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": records}))
}

func (h *Handler) getVehicle(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	details, err := h.vehicleService.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(details))
}

func (h *Handler) createVehicle(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req struct {
		PlateNumber    string         `json:"plate_number" binding:"required"`
		Brand          string         `json:"brand"`
		Model          string         `json:"model"`
		Year           int            `json:"year"`
		Color          string         `json:"color"`
		Seats          int            `json:"seats"`
		Features       datatypes.JSON `json:"features"`
		DriverID       string         `json:"driver_id"`
		FleetCompanyID string         `json:"fleet_company_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	input := service.CreateVehicleInput{
		PlateNumber: req.PlateNumber,
		Brand:       req.Brand,
		Model:       req.Model,
		Year:        req.Year,
		Color:       req.Color,
		Seats:       req.Seats,
		Features:    req.Features,
	}
	if raw := strings.TrimSpace(req.DriverID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid driver_id"))
			return
		}
		input.DriverID = &id
	}
	if raw := strings.TrimSpace(req.FleetCompanyID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid fleet_company_id"))
			return
		}
		input.FleetCompanyID = &id
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), principal, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(vehicle))
}

func (h *Handler) updateVehicle(c *gin.Context) {
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
		Brand    *string `json:"brand"`
		Model    *string `json:"model"`
		Year     *int    `json:"year"`
		Color    *string `json:"color"`
		Seats    *int    `json:"seats"`
		PhotoURL *string `json:"photo_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	input := service.UpdateVehicleInput{
		Brand:    req.Brand,
		Model:    req.Model,
		Year:     req.Year,
		Color:    req.Color,
		Seats:    req.Seats,
		PhotoURL: req.PhotoURL,
	}

	if err := h.vehicleService.Update(c.Request.Context(), principal, id, input); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "updated"}))
}

func (h *Handler) updateVehicleFeatures(c *gin.Context) {
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
		Features datatypes.JSON `json:"features" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	if err := h.vehicleService.UpdateFeatures(c.Request.Context(), principal, id, req.Features); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "updated"}))
}

func (h *Handler) deleteVehicle(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.vehicleService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}
