package tractors

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"agromech-backend/internal/shared/server/middleware"
	"agromech-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches tractor routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/tractors", h.create)
	rg.GET("/tractors", h.list)
	rg.GET("/tractors/:id", h.get)
	rg.PUT("/tractors/:id", h.update)
	rg.DELETE("/tractors/:id", middleware.RequireRole(middleware.RoleAdmin), h.remove)
}

type tractorRequest struct {
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	EnginePowerHP float64 `json:"enginePowerHp"`
	WeightKG      float64 `json:"weightKg"`
	TractionType  string  `json:"tractionType"`
	Status        string  `json:"status"`
}

func (req tractorRequest) toInput() CreateInput {
	return CreateInput{
		Name:          req.Name,
		Brand:         req.Brand,
		Model:         req.Model,
		EnginePowerHP: req.EnginePowerHP,
		WeightKG:      req.WeightKG,
		TractionType:  req.TractionType,
		Status:        req.Status,
	}
}

func (h *Handler) create(c *gin.Context) {
	if middleware.IsGuest(c) {
		respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to manage the fleet", nil)
		return
	}
	var req tractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	tractor, err := h.Svc.Create(c.Request.Context(), middleware.UserIDFromContext(c), req.toInput())
	if err != nil {
		h.respondError(c, err, "failed to create tractor")
		return
	}
	c.Set("tractorId", tractor.ID)
	respond.JSON(c, http.StatusCreated, tractor)
}

func (h *Handler) get(c *gin.Context) {
	tractor, err := h.Svc.Get(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to fetch tractor")
		return
	}
	respond.JSON(c, http.StatusOK, tractor)
}

func (h *Handler) list(c *gin.Context) {
	limit, offset := pagination(c)
	tractors, err := h.Svc.List(c.Request.Context(), middleware.UserIDFromContext(c), limit, offset)
	if err != nil {
		h.respondError(c, err, "failed to list tractors")
		return
	}
	respond.JSON(c, http.StatusOK, tractors)
}

func (h *Handler) update(c *gin.Context) {
	if middleware.IsGuest(c) {
		respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to manage the fleet", nil)
		return
	}
	var req tractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	tractor, err := h.Svc.Update(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"), req.toInput())
	if err != nil {
		h.respondError(c, err, "failed to update tractor")
		return
	}
	respond.JSON(c, http.StatusOK, tractor)
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id")); err != nil {
		h.respondError(c, err, "failed to delete tractor")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "tractor not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

func pagination(c *gin.Context) (limit, offset int) {
	limit = 20
	offset = 0
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
	return limit, offset
}
