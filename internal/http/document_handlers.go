package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleet-service/internal/http/middleware"
	"fleet-service/internal/model"
	"fleet-service/internal/service"
)

// uploadDocument takes a multipart form: the file plus owner_type, owner_id,
// document_type and optional document_number/document_expiry_date fields.
func (h *Handler) uploadDocument(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	ownerID, err := uuid.Parse(strings.TrimSpace(c.PostForm("owner_id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid owner_id"))
		return
	}

	input := service.UploadDocumentInput{
		OwnerType:      model.ReviewEntityType(strings.ToLower(strings.TrimSpace(c.PostForm("owner_type")))),
		OwnerID:        ownerID,
		DocumentType:   model.DocumentType(strings.ToLower(strings.TrimSpace(c.PostForm("document_type")))),
		DocumentNumber: strings.TrimSpace(c.PostForm("document_number")),
	}

	if raw := strings.TrimSpace(c.PostForm("document_expiry_date")); raw != "" {
		ts, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid expiry_date"))
			return
		}
		input.ExpiryDate = &ts
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("file is required"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("cannot read file"))
		return
	}
	defer file.Close()

	input.File = file
	input.ContentType = fileHeader.Header.Get("Content-Type")

	document, err := h.documentService.Upload(c.Request.Context(), principal, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(document))
}

func (h *Handler) listDocuments(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	ownerID, err := uuid.Parse(strings.TrimSpace(c.Query("owner_id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid owner_id"))
		return
	}
	ownerType := model.ReviewEntityType(strings.ToLower(strings.TrimSpace(c.Query("owner_type"))))

	documents, err := h.documentService.ListByOwner(c.Request.Context(), principal, ownerType, ownerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": documents}))
}
