package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-analyzer/internal/shared/server/respond"
)

// Handler exposes the password login endpoint.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the authentication route. It lives at the engine
// root, outside /api/v1, and is exempt from the auth middleware.
func (h *Handler) RegisterRoutes(engine *gin.Engine) {
	engine.POST("/authenticate", h.authenticate)
}

type authenticationRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authenticationResponse struct {
	Token string `json:"token"`
}

func (h *Handler) authenticate(c *gin.Context) {
	var req authenticationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrAccountDisabled):
			respond.Error(c, http.StatusBadRequest, "Account is disabled", "Please contact support")
		case errors.Is(err, ErrInvalidCredentials):
			respond.Error(c, http.StatusBadRequest, "Invalid credentials", "Please check your email and password")
		default:
			respond.Error(c, http.StatusInternalServerError, "An unexpected error occurred", err.Error())
		}
		return
	}
	respond.OK(c, authenticationResponse{Token: token})
}
