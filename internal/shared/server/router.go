package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "agromech-backend/internal/auth"
	"agromech-backend/internal/calc"
	"agromech-backend/internal/implements"
	"agromech-backend/internal/recommend"
	"agromech-backend/internal/services/health"
	"agromech-backend/internal/shared/config"
	"agromech-backend/internal/shared/metrics"
	"agromech-backend/internal/shared/server/middleware"
	"agromech-backend/internal/shared/server/respond"
	"agromech-backend/internal/terrains"
	"agromech-backend/internal/tractors"
	"agromech-backend/internal/users"
)

// RouterDeps carries the handlers the router wires up. Bootstrap owns
// construction; the router only does registration.
type RouterDeps struct {
	Config           config.Config
	Health           *health.Service
	TractorHandler   *tractors.Handler
	ImplementHandler *implements.Handler
	TerrainHandler   *terrains.Handler
	CalcHandler      *calc.Handler
	RecommendHandler *recommend.Handler
	UserHandler      *users.Handler
	GoogleAuth       *googleauth.GoogleService
}

// Rate limit group for the compute-heavy endpoints.
const rateLimitGroupCompute = "COMPUTE"

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
	)

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService()
	}

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	api.GET("/metrics", metrics.Handler())

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(api)
	}
	if deps.TractorHandler != nil {
		deps.TractorHandler.RegisterRoutes(api)
	}
	if deps.ImplementHandler != nil {
		deps.ImplementHandler.RegisterRoutes(api)
	}
	if deps.TerrainHandler != nil {
		deps.TerrainHandler.RegisterRoutes(api)
	}

	compute := api.Group("")
	compute.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			rateLimitGroupCompute: {Rate: 5, Burst: 10},
		},
		DefaultGroup: rateLimitGroupCompute,
	}))
	if deps.CalcHandler != nil {
		deps.CalcHandler.RegisterRoutes(compute)
	}
	if deps.RecommendHandler != nil {
		deps.RecommendHandler.RegisterRoutes(compute)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
