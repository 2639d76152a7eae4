package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-analyzer/internal/shared/server/middleware"
	"resume-analyzer/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the users service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches user routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/users", h.create)
	rg.GET("/users", h.list)
	rg.GET("/users/me", h.me)
	rg.GET("/users/:id", h.get)
	rg.PUT("/users/:id", h.update)
	rg.DELETE("/users/:id", h.delete)
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toResponse(user User) userResponse {
	return userResponse{ID: user.ID, Name: user.Name, Email: user.Email}
}

func (h *Handler) create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.Svc.Create(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			respond.ValidationError(c, verr.Fields)
		case errors.Is(err, ErrEmailTaken):
			respond.Error(c, http.StatusBadRequest, "User with email "+req.Email+" already exists", "User creation failed")
		default:
			respond.Error(c, http.StatusInternalServerError, "An unexpected error occurred", err.Error())
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(user))
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "An unexpected error occurred", err.Error())
		return
	}
	out := make([]userResponse, 0, len(list))
	for _, user := range list {
		out = append(out, toResponse(user))
	}
	respond.OK(c, out)
}

func (h *Handler) me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	user, err := h.Svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "User not found", "User with the given ID not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "An unexpected error occurred", err.Error())
		return
	}
	respond.OK(c, toResponse(user))
}

func (h *Handler) get(c *gin.Context) {
	user, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "User not found", "User with the given ID not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "An unexpected error occurred", err.Error())
		return
	}
	respond.OK(c, toResponse(user))
}

func (h *Handler) update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.Name, req.Email)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			respond.ValidationError(c, verr.Fields)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "User not found", "User with the given ID not found")
		case errors.Is(err, ErrEmailTaken):
			respond.Error(c, http.StatusBadRequest, "User with email "+req.Email+" already exists", "User update failed")
		default:
			respond.Error(c, http.StatusInternalServerError, "An unexpected error occurred", err.Error())
		}
		return
	}
	respond.OK(c, toResponse(user))
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "User not found", "User with the given ID not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "An unexpected error occurred", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
