package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fleet-service/internal/service"
	"fleet-service/internal/socket"
)

type Handler struct {
	driverService       *service.DriverService
	vehicleService      *service.VehicleService
	fleetCompanyService *service.FleetCompanyService
	tripService         *service.TripService
	leaveService        *service.LeaveService
	payoutService       *service.PayoutService
	documentService     *service.DocumentService
	reviewService       *service.ReviewService
	notificationService *service.NotificationService
	hub                 *socket.Hub
	log                 zerolog.Logger
}

func NewHandler(
	driverService *service.DriverService,
	vehicleService *service.VehicleService,
	fleetCompanyService *service.FleetCompanyService,
	tripService *service.TripService,
	leaveService *service.LeaveService,
	payoutService *service.PayoutService,
	documentService *service.DocumentService,
	reviewService *service.ReviewService,
	notificationService *service.NotificationService,
	hub *socket.Hub,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		driverService:       driverService,
		vehicleService:      vehicleService,
		fleetCompanyService: fleetCompanyService,
		tripService:         tripService,
		leaveService:        leaveService,
		payoutService:       payoutService,
		documentService:     documentService,
		reviewService:       reviewService,
		notificationService: notificationService,
		hub:                 hub,
		log:                 log,
	}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch err {
	case service.ErrPermissionDenied:
		c.JSON(http.StatusForbidden, errorResponse(err.Error()))
	case service.ErrInvalidInput:
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case service.ErrNotFound:
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case service.ErrConflict:
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	case service.ErrInvalidStatus:
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(name)))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}

func parseOptionalUUID(c *gin.Context, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parsePagination(c *gin.Context) (limit, offset int) {
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}
	if raw := strings.TrimSpace(c.Query("offset")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			offset = v
		}
	}
	return limit, offset
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

type responseEnvelope struct {
	Data interface{} `json:"data"`
}

func successResponse(data interface{}) responseEnvelope {
	return responseEnvelope{Data: data}
}

func errorResponse(msg string) gin.H {
	return gin.H{"error": msg}
}
