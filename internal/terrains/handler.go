package terrains

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
	rg.POST("/terrains", h.create)
	rg.GET("/terrains", h.list)
	rg.GET("/terrains/:id", h.get)
	rg.PUT("/terrains/:id", h.update)
	rg.DELETE("/terrains/:id", middleware.RequireRole(middleware.RoleAdmin), h.remove)
}

type terrainRequest struct {
	Name            string  `json:"name"`
	SoilType        string  `json:"soilType"`
	SlopePercentage float64 `json:"slopePercentage"`
	AltitudeMeters  float64 `json:"altitudeMeters"`
	TemperatureC    float64 `json:"temperatureCelsius"`
	AreaHectares    float64 `json:"areaHectares"`
}

func (req terrainRequest) toInput() CreateInput {
	return CreateInput{
		Name:            req.Name,
		SoilType:        req.SoilType,
		SlopePercentage: req.SlopePercentage,
		AltitudeMeters:  req.AltitudeMeters,
		TemperatureC:    req.TemperatureC,
		AreaHectares:    req.AreaHectares,
	}
}

func (h *Handler) create(c *gin.Context) {
	if middleware.IsGuest(c) {
		respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to manage terrains", nil)
		return
	}
	var req terrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	terrain, err := h.Svc.Create(c.Request.Context(), middleware.UserIDFromContext(c), req.toInput())
	if err != nil {
		h.respondError(c, err, "failed to create terrain")
		return
	}
	c.Set("terrainId", terrain.ID)
	respond.JSON(c, http.StatusCreated, terrain)
}

func (h *Handler) get(c *gin.Context) {
	terrain, err := h.Svc.Get(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to fetch terrain")
		return
	}
	respond.JSON(c, http.StatusOK, terrain)
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

	terrains, err := h.Svc.List(c.Request.Context(), middleware.UserIDFromContext(c), limit, offset)
	if err != nil {
		h.respondError(c, err, "failed to list terrains")
		return
	}
	respond.JSON(c, http.StatusOK, terrains)
}

func (h *Handler) update(c *gin.Context) {
	if middleware.IsGuest(c) {
		respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to manage terrains", nil)
		return
	}
	var req terrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	terrain, err := h.Svc.Update(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"), req.toInput())
	if err != nil {
		h.respondError(c, err, "failed to update terrain")
		return
	}
	respond.JSON(c, http.StatusOK, terrain)
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id")); err != nil {
		h.respondError(c, err, "failed to delete terrain")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "terrain not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
