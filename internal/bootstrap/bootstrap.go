package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hanifz/tracerstudy/docs" // generated swagger docs
	appControllers "github.com/hanifz/tracerstudy/internal/app/controllers"
	appMigrations "github.com/hanifz/tracerstudy/internal/app/migrations"
	appRepos "github.com/hanifz/tracerstudy/internal/app/repositories"
	appRoutes "github.com/hanifz/tracerstudy/internal/app/routes"
	appServices "github.com/hanifz/tracerstudy/internal/app/services"
	"github.com/hanifz/tracerstudy/internal/config"
	"github.com/hanifz/tracerstudy/internal/db"
	appMiddleware "github.com/hanifz/tracerstudy/internal/middleware"
	pkgAuth "github.com/hanifz/tracerstudy/internal/pkg/auth"
	"github.com/hanifz/tracerstudy/internal/pkg/email"
	"github.com/hanifz/tracerstudy/internal/pkg/filestorage"
	"github.com/hanifz/tracerstudy/internal/pkg/helpers"
	"github.com/hanifz/tracerstudy/internal/pkg/logger"
	"github.com/hanifz/tracerstudy/internal/pkg/wilayah"
	"github.com/hanifz/tracerstudy/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	UserService            appServices.UserService
	FakultasService        appServices.FakultasService
	ProgramStudiService    appServices.ProgramStudiService
	BiodataService         appServices.BiodataService
	PertanyaanService      appServices.PertanyaanService
	PilihanJawabanService  appServices.PilihanJawabanService
	JawabanService         appServices.JawabanService
	WilayahService         appServices.WilayahService
	LokasiPekerjaanService appServices.LokasiPekerjaanService
	ReportService          appServices.ReportService
	Controllers            appRoutes.Controllers
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	EmailService           email.EmailService
	FileStorage            *filestorage.LocalStorage
	WilayahClient          *wilayah.Client
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// File storage URL must match the static file serving path
	fileStorageBaseURL := strings.TrimRight(cfg.Server.BaseURL, "/") + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 168*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.EmailService = email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
	}, lgr)

	deps.WilayahClient = wilayah.NewClient(cfg.Wilayah.BaseURL, helpers.ParseDuration(cfg.Wilayah.Timeout, 30*time.Second))

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, deps.EmailService, cfg.Server.BaseURL)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, deps.EmailService)
	deps.FakultasService = appServices.NewFakultasService(deps.Repos.FakultasRepository)
	deps.ProgramStudiService = appServices.NewProgramStudiService(deps.Repos.ProgramStudiRepository)
	deps.BiodataService = appServices.NewBiodataService(deps.Repos.BiodataRepository, deps.Repos.UserRepository, deps.FileStorage)
	deps.PertanyaanService = appServices.NewPertanyaanService(deps.Repos.PertanyaanRepository, deps.Repos.PilihanJawabanRepository)
	deps.PilihanJawabanService = appServices.NewPilihanJawabanService(deps.Repos.PilihanJawabanRepository, deps.Repos.PertanyaanRepository)
	deps.JawabanService = appServices.NewJawabanService(deps.Repos.JawabanRepository, deps.Repos.PertanyaanRepository, deps.Repos.PilihanJawabanRepository)
	deps.WilayahService = appServices.NewWilayahService(deps.Repos.WilayahRepository, deps.WilayahClient)
	deps.LokasiPekerjaanService = appServices.NewLokasiPekerjaanService(deps.Repos.LokasiPekerjaanRepository, deps.Repos.WilayahRepository, deps.Repos.UserRepository)
	deps.ReportService = appServices.NewReportService(deps.Repos.JawabanRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = appRoutes.Controllers{
		Auth:            appControllers.NewAuthController(deps.AuthService, deps.UserService, deps.JWTService, cfg),
		User:            appControllers.NewUserController(deps.UserService),
		Fakultas:        appControllers.NewFakultasController(deps.FakultasService),
		ProgramStudi:    appControllers.NewProgramStudiController(deps.ProgramStudiService),
		Biodata:         appControllers.NewBiodataController(deps.BiodataService),
		Pertanyaan:      appControllers.NewPertanyaanController(deps.PertanyaanService),
		PilihanJawaban:  appControllers.NewPilihanJawabanController(deps.PilihanJawabanService),
		Jawaban:         appControllers.NewJawabanController(deps.JawabanService),
		Wilayah:         appControllers.NewWilayahController(deps.WilayahService),
		LokasiPekerjaan: appControllers.NewLokasiPekerjaanController(deps.LokasiPekerjaanService),
		MasterData:      appControllers.NewMasterDataController(deps.PertanyaanService),
		Report:          appControllers.NewReportController(deps.ReportService),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterValidations()

	router := gin.Default()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
