package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fleet-service/internal/http/middleware"
	"fleet-service/internal/model"
	"fleet-service/internal/service"
)

func (h *Handler) listFleetPartners(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var opts service.FleetCompanyListOptions
	opts.Search = strings.TrimSpace(c.Query("search"))
	opts.Status = model.ReviewStatus(strings.TrimSpace(c.Query("status")))
	opts.DocumentFilter = service.DocumentFilter(strings.TrimSpace(c.Query("documents")))
	opts.Limit, opts.Offset = parsePagination(c)

	records, err := h.fleetCompanyService.List(c.Request.Context(), principal, opts)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": records}))
}

func (h *Handler) getFleetPartner(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	details, err := h.fleetCompanyService.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(details))
}

func (h *Handler) createFleetPartner(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req struct {
		CompanyName string `json:"company_name" binding:"required"`
		ContactName string `json:"contact_name"`
		Phone       string `json:"phone"`
		Email       string `json:"email"`
		City        string `json:"city"`
		Address     string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	company, err := h.fleetCompanyService.Create(c.Request.Context(), principal, service.CreateFleetCompanyInput{
		CompanyName: req.CompanyName,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
		City:        req.City,
		Address:     req.Address,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(company))
}

func (h *Handler) updateFleetPartner(c *gin.Context) {
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
		CompanyName *string `json:"company_name"`
		ContactName *string `json:"contact_name"`
		Phone       *string `json:"phone"`
		Email       *string `json:"email"`
		City        *string `json:"city"`
		Address     *string `json:"address"`
		LogoURL     *string `json:"logo_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	input := service.UpdateFleetCompanyInput{
		CompanyName: req.CompanyName,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
		City:        req.City,
		Address:     req.Address,
		LogoURL:     req.LogoURL,
	}

	if err := h.fleetCompanyService.Update(c.Request.Context(), principal, id, input); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "updated"}))
}

func (h *Handler) deleteFleetPartner(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.fleetCompanyService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}
