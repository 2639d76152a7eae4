package resumes

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-analyzer/internal/shared/server/middleware"
	"resume-analyzer/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the resumes service.
type Handler struct {
	Svc *Service

	// MaxUploadBytes caps the multipart request body size.
	MaxUploadBytes int64
}

func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/upload", h.upload)
	rg.GET("/resumes/user/me", h.listMine)
	rg.GET("/resumes/:id", h.get)
	rg.GET("/resumes/:id/file", h.download)
	rg.DELETE("/resumes/:id", h.delete)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if h.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "File too large", "The uploaded file exceeds the allowed size")
			return
		}
		respond.Error(c, http.StatusBadRequest, "Missing file", "Request must include a \"file\" form field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "File too large", "The uploaded file exceeds the allowed size")
			return
		}
		respond.Error(c, http.StatusBadRequest, "Could not read file", err.Error())
		return
	}

	resume, err := h.Svc.Upload(c.Request.Context(), userID, header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		if errors.Is(err, ErrInvalidUpload) {
			respond.Error(c, http.StatusBadRequest, "Invalid resume file", err.Error())
			return
		}
		respond.Error(c, http.StatusInternalServerError, "An unexpected error occurred", err.Error())
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(resume))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resume, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Resume not found", "Resume with the given ID not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "An unexpected error occurred", err.Error())
		return
	}
	respond.OK(c, toResponse(resume))
}

func (h *Handler) download(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resume, data, err := h.Svc.GetFile(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Resume not found", "Resume with the given ID not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "An unexpected error occurred", err.Error())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+resume.FileName+`"`)
	c.Data(http.StatusOK, resume.MimeType, data)
}

func (h *Handler) listMine(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	list, err := h.Svc.ListMine(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "An unexpected error occurred", err.Error())
		return
	}
	out := make([]ResumeResponse, 0, len(list))
	for _, resume := range list {
		out = append(out, toResponse(resume))
	}
	respond.OK(c, out)
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Resume not found", "Resume with the given ID not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "An unexpected error occurred", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
