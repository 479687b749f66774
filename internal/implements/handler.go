package implements

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
	rg.POST("/implements", h.create)
	rg.GET("/implements", h.list)
	rg.GET("/implements/:id", h.get)
	rg.PUT("/implements/:id", h.update)
	rg.DELETE("/implements/:id", middleware.RequireRole(middleware.RoleAdmin), h.remove)
}

type implementRequest struct {
	Name               string  `json:"name"`
	ImplementType      string  `json:"implementType"`
	PowerRequirementHP float64 `json:"powerRequirementHp"`
	WorkingDepthM      float64 `json:"workingDepthM"`
	WorkingWidthM      float64 `json:"workingWidthM"`
}

func (req implementRequest) toInput() CreateInput {
	return CreateInput{
		Name:               req.Name,
		ImplementType:      req.ImplementType,
		PowerRequirementHP: req.PowerRequirementHP,
		WorkingDepthM:      req.WorkingDepthM,
		WorkingWidthM:      req.WorkingWidthM,
	}
}

func (h *Handler) create(c *gin.Context) {
	if middleware.IsGuest(c) {
		respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to manage implements", nil)
		return
	}
	var req implementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	implement, err := h.Svc.Create(c.Request.Context(), middleware.UserIDFromContext(c), req.toInput())
	if err != nil {
		h.respondError(c, err, "failed to create implement")
		return
	}
	respond.JSON(c, http.StatusCreated, implement)
}

func (h *Handler) get(c *gin.Context) {
	implement, err := h.Svc.Get(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to fetch implement")
		return
	}
	respond.JSON(c, http.StatusOK, implement)
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

	implements, err := h.Svc.List(c.Request.Context(), middleware.UserIDFromContext(c), limit, offset)
	if err != nil {
		h.respondError(c, err, "failed to list implements")
		return
	}
	respond.JSON(c, http.StatusOK, implements)
}

func (h *Handler) update(c *gin.Context) {
	if middleware.IsGuest(c) {
		respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to manage implements", nil)
		return
	}
	var req implementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	implement, err := h.Svc.Update(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"), req.toInput())
	if err != nil {
		h.respondError(c, err, "failed to update implement")
		return
	}
	respond.JSON(c, http.StatusOK, implement)
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id")); err != nil {
		h.respondError(c, err, "failed to delete implement")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "implement not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
