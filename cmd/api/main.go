// Package main is the entrypoint for the Pets Paradise API server.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/petsparadise/petsparadise/internal/config"
	"github.com/petsparadise/petsparadise/internal/handler"
	"github.com/petsparadise/petsparadise/internal/metrics"
	"github.com/petsparadise/petsparadise/internal/middleware"
	"github.com/petsparadise/petsparadise/internal/notify"
	"github.com/petsparadise/petsparadise/internal/repository"
	"github.com/petsparadise/petsparadise/internal/server"
	"github.com/petsparadise/petsparadise/internal/service"
	"github.com/petsparadise/petsparadise/internal/storage"
)

func main() {
	ctx := context.Background()

	// Local development convenience; a missing .env file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	logger.Info("connected to database")

	if err := repo.Migrate(ctx); err != nil {
		logger.Error("failed to run migrations", slog.String("error", sanitizeError(err, cfg.DatabaseURL)))
		os.Exit(1)
	}
	logger.Info("database migrations applied")

	images, err := storage.NewImageStore(cfg.ImageDir)
	if err != nil {
		logger.Error("failed to initialize image store", "error", err, "dir", cfg.ImageDir)
		os.Exit(1)
	}

	var notifier notify.Notifier
	if cfg.EmailEnabled() {
		mailer, err := notify.NewMailer(notify.Config{
			Host:     cfg.EmailHost,
			Port:     cfg.EmailPort,
			Username: cfg.EmailUser,
			Password: cfg.EmailPass,
			From:     cfg.Sender(),
		})
		if err != nil {
			logger.Error("failed to initialize mailer", "error", err)
			os.Exit(1)
		}
		notifier = mailer
		logger.Info("email notifications enabled", "host", cfg.EmailHost)
	} else {
		notifier = notify.NewDisabled(logger)
		logger.Info("email notifications disabled")
	}

	recorder := metrics.NewInMemory()
	adminService := service.NewAdminService(repo, logger)
	petService := service.NewPetService(repo, images, notifier, recorder, logger)
	formService := service.NewFormService(repo, recorder, logger)

	if err := adminService.EnsureDefaultAdmin(ctx, cfg.AdminDefaultUsername, cfg.AdminDefaultPassword); err != nil {
		logger.Error("failed to ensure default admin", "error", err)
		os.Exit(1)
	}

	secret := []byte(cfg.SessionSecret)

	h := handler.New()
	healthHandler := handler.NewHealthHandler(repo)
	adminHandler := handler.NewAdminHandler(adminService, logger, secret, cfg.SessionTTL, cfg.IsProduction())
	petHandler := handler.NewPetHandler(petService, logger, cfg.MaxUploadSize)
	formHandler := handler.NewFormHandler(formService, logger)

	r := setupRouter(h, healthHandler, adminHandler, petHandler, formHandler, images, secret, cfg, logger)

	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)
	srv.OnShutdown("database", func(context.Context) error {
		repo.Close()
		return nil
	})

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"client_origin", cfg.ClientOrigin,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	adminHandler *handler.AdminHandler,
	petHandler *handler.PetHandler,
	formHandler *handler.FormHandler,
	images *storage.ImageStore,
	secret []byte,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = []string{cfg.ClientOrigin}

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.CORS(corsCfg))
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: cfg.IsDevelopment()}))

	// Health endpoints
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)

	// Root info endpoint
	r.Get("/", h.Root)

	sessionAuth := middleware.SessionAuth(middleware.SessionAuthConfig{
		Logger: logger,
		Secret: secret,
	})
	jsonBody := middleware.BodyLimit(cfg.MaxRequestBodySize)

	// Administrator account and session routes
	r.Route("/admin", func(r chi.Router) {
		r.Use(jsonBody)
		r.Post("/signup", adminHandler.Signup)
		r.Post("/login", adminHandler.Login)
		r.Post("/logout", adminHandler.Logout)

		r.Group(func(r chi.Router) {
			r.Use(sessionAuth)
			r.Get("/me", adminHandler.Me)
			r.Post("/change-password", adminHandler.ChangePassword)
		})
	})

	// Public listing routes. The multipart submission route enforces its
	// own upload cap instead of the JSON body limit.
	r.Post("/services", petHandler.Submit)
	r.With(jsonBody).Get("/approvedPets", petHandler.ListApproved)

	// Administrator listing routes
	r.Group(func(r chi.Router) {
		r.Use(sessionAuth, jsonBody)
		r.Get("/requests", petHandler.ListPending)
		r.Get("/adoptedPets", petHandler.ListAdopted)
		r.Put("/approving/{id}", petHandler.Update)
		r.Delete("/delete/{id}", petHandler.Delete)
	})

	// Adoption application forms
	r.Route("/form", func(r chi.Router) {
		r.Use(jsonBody)
		r.Post("/save", formHandler.Save)

		r.Group(func(r chi.Router) {
			r.Use(sessionAuth)
			r.Get("/getForms", formHandler.List)
			r.Delete("/reject/{id}", formHandler.Reject)
			r.Delete("/delete/many/{petId}", formHandler.DeleteForPet)
		})
	})

	// Uploaded pet images
	fileServer := http.StripPrefix("/images/", http.FileServer(http.Dir(images.Dir())))
	r.Get("/images/*", fileServer.ServeHTTP)

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
