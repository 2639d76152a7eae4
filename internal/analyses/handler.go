package analyses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-analyzer/internal/shared/server/middleware"
	"resume-analyzer/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group. The analyze
// route lives under /resumes to match the rest of the resume surface.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/analyze/:resumeId", h.analyze)
	rg.POST("/analysis", h.create)
	rg.GET("/analysis/:id", h.get)
	rg.GET("/analysis/resume/:resumeId", h.listByResume)
	rg.PUT("/analysis/:id", h.update)
	rg.DELETE("/analysis/:id", h.delete)
}

func (h *Handler) analyze(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req jobDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.Svc.Analyze(c.Request.Context(), userID, c.Param("resumeId"), req.JobDescription)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidJobDescription):
			respond.Error(c, http.StatusBadRequest, "The provided job description is not valid.", err.Error())
		case errors.Is(err, ErrResumeNotFound):
			respond.Error(c, http.StatusNotFound, "Resume not found", "Resume with the given ID not found")
		case errors.Is(err, ErrAnalysisFailed):
			respond.Error(c, http.StatusInternalServerError, "Failed to analyze resume", err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "An unexpected error occurred", err.Error())
		}
		return
	}
	respond.OK(c, result)
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	var result Result
	if req.AISummary != nil {
		result = *req.AISummary
	}
	analysis, err := h.Svc.Create(c.Request.Context(), userID, req.ResumeID, req.JobDescription, result)
	if err != nil {
		if errors.Is(err, ErrResumeNotFound) {
			respond.Error(c, http.StatusNotFound, "Resume not found", "Resume with the given ID not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "An unexpected error occurred", err.Error())
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(analysis))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	analysis, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Analysis not found", "Analysis with the given ID not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "An unexpected error occurred", err.Error())
		return
	}
	respond.OK(c, toResponse(analysis))
}

func (h *Handler) listByResume(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	list, err := h.Svc.ListByResume(c.Request.Context(), userID, c.Param("resumeId"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "An unexpected error occurred", err.Error())
		return
	}
	out := make([]AnalysisResponse, 0, len(list))
	for _, analysis := range list {
		out = append(out, toResponse(analysis))
	}
	respond.OK(c, out)
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req updateAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	analysis, err := h.Svc.Update(c.Request.Context(), userID, c.Param("id"), req.JobDescription, req.AISummary)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Analysis not found", "Analysis with the given ID not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "An unexpected error occurred", err.Error())
		return
	}
	respond.OK(c, toResponse(analysis))
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Analysis not found", "Analysis with the given ID not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "An unexpected error occurred", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
