package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	healthAPI "tutorlink/internal/app/server/api/http/health"
	"tutorlink/internal/app/server/api/http/middleware"
	"tutorlink/internal/app/server/api/http/middleware/auth"
	"tutorlink/internal/app/server/api/http/middleware/logger"
	tutorAPI "tutorlink/internal/app/server/api/http/tutor"
	userAPI "tutorlink/internal/app/server/api/http/user"
	"tutorlink/internal/domain/course"
	"tutorlink/internal/domain/user"
	"tutorlink/internal/infrastructure/storage/sqlite"
)

type Handlers struct {
	Health *healthAPI.Handler
	User   *userAPI.Handler
	Tutor  *tutorAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(storage *sqlite.Storage, secret []byte, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("TutorLink API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(storage, secret, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Tutor.SetupRoutes(API)

	return mux
}

func handlers(storage *sqlite.Storage, secret []byte, log *slog.Logger) *Handlers {
	authMW := auth.New(secret, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := sqlite.NewUserRepository(storage, log)
	userService := user.NewService(userRepo, log)
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, secret, log, middlewares.GetAllAndClear())

	courseRepo := sqlite.NewCourseRepository(storage, log)
	catalog := course.NewCatalog(courseRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	tutorHandler := tutorAPI.NewHandler(catalog, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		User:   userHandler,
		Tutor:  tutorHandler,
	}
}
