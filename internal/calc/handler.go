package calc

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

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
	rg.POST("/calculations/power-loss", h.powerLoss)
	rg.POST("/calculations/minimum-power", h.minimumPower)
	rg.GET("/calculations", h.history)
}

func (h *Handler) powerLoss(c *gin.Context) {
	var req PowerLossRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	result, err := h.Svc.PowerLoss(c.Request.Context(), middleware.UserIDFromContext(c), req)
	if err != nil {
		h.respondError(c, err, "failed to compute power loss")
		return
	}
	respond.JSON(c, http.StatusOK, result)
}

func (h *Handler) minimumPower(c *gin.Context) {
	var req MinimumPowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	result, err := h.Svc.MinimumPower(c.Request.Context(), middleware.UserIDFromContext(c), req)
	if err != nil {
		h.respondError(c, err, "failed to compute minimum power")
		return
	}
	respond.JSON(c, http.StatusOK, result)
}

func (h *Handler) history(c *gin.Context) {
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

	queries, err := h.Svc.History(c.Request.Context(), middleware.UserIDFromContext(c), limit, offset)
	if err != nil {
		h.respondError(c, err, "failed to list calculations")
		return
	}
	respond.JSON(c, http.StatusOK, queries)
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
