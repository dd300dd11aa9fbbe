package exports

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

const exportFailedMessage = "Failed to export resume"

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume/export", h.export)
	rg.GET("/exports", h.list)
	rg.GET("/exports/:id/download", h.download)
}

func (h *Handler) export(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	art, err := h.Svc.Export(c.Request.Context(), userID)
	if err != nil {
		c.Set(middleware.NoticeKey, exportFailedMessage)
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Invalid(c, err.Error())
		default:
			respond.Error(c, http.StatusBadGateway, "export_failed", exportFailedMessage, gin.H{"retryable": true})
		}
		return
	}

	c.Set(middleware.NoticeKey, "Resume exported successfully")
	if art.Export.ID != "" {
		c.Set(middleware.ExportIDKey, art.Export.ID)
		c.Header("X-Export-Id", art.Export.ID)
	}
	c.Header("X-Export-Pages", strconv.Itoa(art.Export.Pages))
	c.Header("Content-Disposition", "attachment; filename=\""+art.Export.FileName+"\"")
	respond.Data(c, http.StatusOK, pdfMimeType, art.PDF)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 0
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	items, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Invalid(c, err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list exports", nil)
		}
		return
	}

	resp := make([]ExportResponse, 0, len(items))
	for _, e := range items {
		resp = append(resp, toResponse(e))
	}
	respond.OK(c, resp)
}

func (h *Handler) download(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	exportID := c.Param("id")
	c.Set(middleware.ExportIDKey, exportID)

	export, reader, err := h.Svc.Open(c.Request.Context(), userID, exportID)
	if err != nil {
		switch {
		case errors.Is(err, ErrForbidden):
			respond.Error(c, http.StatusForbidden, "forbidden", "access denied", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "export not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Invalid(c, "export id is required")
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load export", nil)
		}
		return
	}
	defer reader.Close()

	c.Header("Content-Type", export.MimeType)
	c.Header("Content-Disposition", "attachment; filename=\""+export.FileName+"\"")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}
