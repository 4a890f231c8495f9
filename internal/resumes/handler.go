package resumes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-vault/internal/shared/server/middleware"
	"resume-vault/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to an authenticated router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.create)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.PUT("/resumes/:id", h.update)
	rg.DELETE("/resumes/:id", h.remove)
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	fields, ok := bindFields(c)
	if !ok {
		return
	}

	resume, err := h.Svc.Create(c.Request.Context(), userID, fields)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to create resume")
		return
	}
	respond.OK(c, resume)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	list, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to list resumes")
		return
	}
	respond.OK(c, list)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	resume, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Resume not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to fetch resume")
		return
	}
	respond.OK(c, resume)
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	patch, ok := bindFields(c)
	if !ok {
		return
	}

	resume, err := h.Svc.Update(c.Request.Context(), userID, c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Resume not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to update resume")
		return
	}
	respond.OK(c, resume)
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to delete resume")
		return
	}
	respond.Success(c)
}

// bindFields decodes the request body into an open field map. An empty body
// is a valid empty record.
func bindFields(c *gin.Context) (map[string]any, bool) {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return map[string]any{}, true
	}
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid request body")
		return nil, false
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, true
}
