package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "agromech-backend/internal/auth"
	"agromech-backend/internal/calc"
	"agromech-backend/internal/implements"
	"agromech-backend/internal/recommend"
	"agromech-backend/internal/services/health"
	"agromech-backend/internal/shared/config"
	"agromech-backend/internal/shared/server"
	"agromech-backend/internal/shared/storage/db"
	"agromech-backend/internal/terrains"
	"agromech-backend/internal/tractors"
	"agromech-backend/internal/users"
)

// App holds shared dependencies built once at startup.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	TractorsRepo   tractors.Repo
	ImplementsRepo implements.Repo
	TerrainsRepo   terrains.Repo
	CalcRepo       calc.Repo
	RecommendRepo  recommend.Repo
	UsersRepo      users.Repo

	TractorsService   *tractors.Service
	ImplementsService *implements.Service
	TerrainsService   *terrains.Service
	CalcService       *calc.Service
	RecommendService  *recommend.Service
	UsersService      *users.Service

	TractorsHandler   *tractors.Handler
	ImplementsHandler *implements.Handler
	TerrainsHandler   *terrains.Handler
	CalcHandler       *calc.Handler
	RecommendHandler  *recommend.Handler
	UsersHandler      *users.Handler
	GoogleAuth        *googleauth.GoogleService
}

// Build prepares dependencies and the router. With DATABASE_URL unset in a
// dev-like environment it falls back to in-memory repositories.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}

	if sqlDB != nil {
		app.TractorsRepo = &tractors.PGRepo{DB: sqlDB}
		app.ImplementsRepo = &implements.PGRepo{DB: sqlDB}
		app.TerrainsRepo = &terrains.PGRepo{DB: sqlDB}
		app.CalcRepo = &calc.PGRepo{DB: sqlDB}
		app.RecommendRepo = &recommend.PGRepo{DB: sqlDB}
		app.UsersRepo = &users.PGRepo{DB: sqlDB}
	} else {
		app.TractorsRepo = tractors.NewMemoryRepo()
		app.ImplementsRepo = implements.NewMemoryRepo()
		app.TerrainsRepo = terrains.NewMemoryRepo()
		app.CalcRepo = calc.NewMemoryRepo()
		app.RecommendRepo = recommend.NewMemoryRepo()
		app.UsersRepo = users.NewMemoryRepo()
	}

	app.TractorsService = tractors.NewService(app.TractorsRepo)
	app.ImplementsService = implements.NewService(app.ImplementsRepo)
	app.TerrainsService = terrains.NewService(app.TerrainsRepo)
	app.CalcService = calc.NewService(app.CalcRepo)
	app.RecommendService = recommend.NewService(app.RecommendRepo, app.TerrainsService, app.ImplementsService, app.TractorsService)
	app.UsersService = users.NewService(app.UsersRepo)

	app.TractorsHandler = tractors.NewHandler(app.TractorsService)
	app.ImplementsHandler = implements.NewHandler(app.ImplementsService)
	app.TerrainsHandler = terrains.NewHandler(app.TerrainsService)
	app.CalcHandler = calc.NewHandler(app.CalcService)
	app.RecommendHandler = recommend.NewHandler(app.RecommendService)
	app.UsersHandler = users.NewHandler(app.UsersService)
	app.GoogleAuth = googleauth.NewGoogleService(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
		cfg.UIRedirectURL,
		app.UsersService,
	)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		Health:           health.NewService(),
		TractorHandler:   app.TractorsHandler,
		ImplementHandler: app.ImplementsHandler,
		TerrainHandler:   app.TerrainsHandler,
		CalcHandler:      app.CalcHandler,
		RecommendHandler: app.RecommendHandler,
		UserHandler:      app.UsersHandler,
		GoogleAuth:       app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
