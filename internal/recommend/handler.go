package recommend

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"agromech-backend/internal/recommend/engine"
	"agromech-backend/internal/shared/server/middleware"
	"agromech-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommendations/generate", h.generate)
	rg.GET("/recommendations", h.list)
}

func (h *Handler) generate(c *gin.Context) {
	var in GenerateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	response, err := h.Svc.Generate(c.Request.Context(), middleware.UserIDFromContext(c), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Set("recommendationId", response.ID)
	respond.JSON(c, http.StatusOK, response)
}

func (h *Handler) list(c *gin.Context) {
	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	recs, err := h.Svc.List(c.Request.Context(), middleware.UserIDFromContext(c), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list recommendations", nil)
		return
	}
	respond.JSON(c, http.StatusOK, recs)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTerrainNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "terrain not found", nil)
	case errors.Is(err, ErrImplementNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "implement not found", nil)
	case errors.Is(err, engine.ErrTerrainRequired),
		errors.Is(err, engine.ErrTractorsRequired),
		errors.Is(err, engine.ErrRequiredPowerInvalid):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "implementId es requerido", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate recommendations", nil)
	}
}
