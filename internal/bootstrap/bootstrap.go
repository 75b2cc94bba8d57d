package bootstrap

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/campus/internal/app/controllers"
	appModels "github.com/yigit/campus/internal/app/models"
	appRoutes "github.com/yigit/campus/internal/app/routes"
	appServices "github.com/yigit/campus/internal/app/services"
	"github.com/yigit/campus/internal/config"
	appMiddleware "github.com/yigit/campus/internal/middleware"
	pkgAuth "github.com/yigit/campus/internal/pkg/auth"
	"github.com/yigit/campus/internal/pkg/helpers"
	"github.com/yigit/campus/internal/pkg/logger"
	"github.com/yigit/campus/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	University        *appModels.University
	UniversityService appServices.UniversityService
	StudentController *appControllers.StudentController
	TeacherController *appControllers.TeacherController
	CourseController  *appControllers.CourseController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	JWTService        *pkgAuth.JWTService
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Format: logger.Format(strings.ToLower(cfg.Logging.Format)),
	})
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// NewJWTService builds the token service from the auth section
func NewJWTService(cfg *config.Config) *pkgAuth.JWTService {
	return pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Auth.Secret,
		TokenExp:    helpers.ParseDuration(cfg.Auth.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.Auth.Issuer,
	})
}

// SetupUniversity creates the university and applies the seed file, if any.
func SetupUniversity(cfg *config.Config, lgr zerolog.Logger) (*appModels.University, error) {
	university := appModels.NewUniversity()
	if cfg.Seed.Path == "" {
		lgr.Info().Msg("No seed file configured, starting with an empty university")
		return university, nil
	}

	data, err := seed.Load(cfg.Seed.Path)
	if err != nil {
		lgr.Error().Err(err).Str("path", cfg.Seed.Path).Msg("Failed to load seed data")
		return nil, err
	}
	seed.Apply(university, data, lgr)
	return university, nil
}

// BuildDependencies initializes services, middleware and controllers.
func BuildDependencies(cfg *config.Config, university *appModels.University, lgr zerolog.Logger) (*Dependencies, error) {
	if university == nil {
		return nil, fmt.Errorf("university is required")
	}

	deps := &Dependencies{
		University: university,
		Logger:     lgr,
	}

	deps.JWTService = NewJWTService(cfg)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, cfg.Auth.Enabled)
	if !cfg.Auth.Enabled {
		lgr.Warn().Msg("Authentication disabled, write routes are open")
	}

	deps.UniversityService = appServices.NewUniversityService(university, lgr)

	deps.StudentController = appControllers.NewStudentController(deps.UniversityService)
	deps.TeacherController = appControllers.NewTeacherController(deps.UniversityService)
	deps.CourseController = appControllers.NewCourseController(deps.UniversityService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	lgr.Info().Str("ginMode", gin.Mode()).Msg("Gin mode set")

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestID(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.TeacherController,
		deps.CourseController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
