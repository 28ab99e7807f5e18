package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"fleet-service/internal/http/middleware"
	"fleet-service/internal/model"
	"fleet-service/internal/service"
)

func (h *Handler) listTrips(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	opts, err := parseTripQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	trips, err := h.tripService.List(c.Request.Context(), principal, opts)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": trips}))
}

func (h *Handler) getTrip(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	trip, err := h.tripService.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(trip))
}

func parseTripQuery(c *gin.Context) (service.TripListOptions, error) {
	var opts service.TripListOptions

	if statusParam := c.Query("status"); statusParam != "" {
		for _, val := range splitCSV(statusParam) {
			opts.TripStatuses = append(opts.TripStatuses, model.TripStatus(strings.ToLower(val)))
		}
	}
	if paymentParam := c.Query("payment_status"); paymentParam != "" {
		for _, val := range splitCSV(paymentParam) {
			opts.PaymentStatuses = append(opts.PaymentStatuses, model.PaymentStatus(strings.ToLower(val)))
		}
	}
	if typeParam := c.Query("type"); typeParam != "" {
		for _, val := range splitCSV(typeParam) {
			opts.TripTypes = append(opts.TripTypes, model.TripType(strings.ToLower(val)))
		}
	}

	driverID, err := parseOptionalUUID(c, "driver_id")
	if err != nil {
		return opts, err
	}
	opts.DriverID = driverID

	vehicleID, err := parseOptionalUUID(c, "vehicle_id")
	if err != nil {
		return opts, err
	}
	opts.VehicleID = vehicleID

	fleetCompanyID, err := parseOptionalUUID(c, "fleet_company_id")
	if err != nil {
		return opts, err
	}
	opts.FleetCompanyID = fleetCompanyID

	if dateFrom := strings.TrimSpace(c.Query("date_from")); dateFrom != "" {
		ts, err := time.Parse(time.RFC3339, dateFrom)
		if err != nil {
			return opts, err
		}
		opts.DateFrom = &ts
	}
	if dateTo := strings.TrimSpace(c.Query("date_to")); dateTo != "" {
		ts, err := time.Parse(time.RFC3339, dateTo)
		if err != nil {
			return opts, err
		}
		opts.DateTo = &ts
	}

	opts.Limit, opts.Offset = parsePagination(c)
	return opts, nil
}
