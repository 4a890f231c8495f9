package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

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

// RegisterRoutes attaches the public auth routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/signup", h.signup)
	rg.POST("/login", h.login)
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Email and password required")
		return
	}

	token, err := h.Svc.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Email and password required")
		case errors.Is(err, ErrEmailTaken):
			respond.Error(c, http.StatusBadRequest, "conflict", "User exists")
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to sign up")
		}
		return
	}

	respond.OK(c, gin.H{"token": token})
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Email and password required")
		return
	}

	token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Email and password required")
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusBadRequest, "not_found", "User not found")
		case errors.Is(err, ErrWrongPassword):
			respond.Error(c, http.StatusBadRequest, "wrong_password", "Incorrect password")
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to log in")
		}
		return
	}

	respond.OK(c, gin.H{"token": token})
}
