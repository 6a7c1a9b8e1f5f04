package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/config"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/database"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/logging"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/routes"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/services"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/validation"
	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"
)

func serveCommand(stdout slog.Handler) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API",
		Action: func(ctx context.Context, _ *cli.Command) error {
			return serve(ctx, stdout)
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create or update the catalog tables",
		Action: func(ctx context.Context, _ *cli.Command) error {
			db, err := open(config.Load())
			if err != nil {
				return err
			}
			defer database.Close(db)

			slog.Info("migrations applied")
			return nil
		},
	}
}

func createSuperuserCommand() *cli.Command {
	return &cli.Command{
		Name:  "create-superuser",
		Usage: "Create an administrator account with its token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Usage: "Account email", Required: true},
			&cli.StringFlag{Name: "password", Usage: "Account password", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Load()
			if cfg.TokenSecret == "" {
				return errors.New("TOKEN_SECRET environment variable is required")
			}

			v := validation.New(validation.MinLengthPolicy(cfg.PasswordMinLength))
			rawEmail, rawPassword := cmd.String("email"), cmd.String("password")
			email, err := v.Email(&rawEmail)
			if err != nil {
				return err
			}
			password, err := v.Password(&rawPassword)
			if err != nil {
				return err
			}

			db, err := open(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			users := services.NewUserService(db)
			user, err := services.NewAuthService(db, users, cfg.TokenSecret).CreateSuperuser(ctx, email, password)
			if err != nil {
				return err
			}
			slog.Info("superuser created", "user_id", user.ID, "email", user.Email)
			return nil
		},
	}
}

func open(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DBPassword == "" {
		return nil, errors.New("DB_PASSWORD environment variable is required")
	}
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}

func serve(ctx context.Context, stdout slog.Handler) error {
	cfg := config.Load()
	if cfg.TokenSecret == "" {
		return errors.New("TOKEN_SECRET environment variable is required")
	}

	db, err := open(cfg)
	if err != nil {
		return err
	}

	// ERROR+ records also go to system_logs
	pgLogHandler := logging.NewPGHandler(db)
	slog.SetDefault(slog.New(logging.NewFanout(stdout, pgLogHandler)).With("service", "music-catalog"))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.StartCleanup(ctx, db, cfg.LogRetentionDays)

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		}
	}

	// Services
	users := services.NewUserService(db)
	auth := services.NewAuthService(db, users, cfg.TokenSecret)
	genres := services.NewGenreService(db)
	songs := services.NewSongService(db)
	v := validation.New(validation.MinLengthPolicy(cfg.PasswordMinLength))

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(registry)

	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.BodyLimitMB * 1024 * 1024,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid}\n",
	}))
	app.Use(metrics.Handler())
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		return c.Next()
	})

	routes.Setup(app, cfg, routes.Handlers{
		Users:  handlers.NewUserHandler(users, auth, v),
		Genres: handlers.NewGenreHandler(users, genres, v),
		Songs:  handlers.NewSongHandler(users, songs, v),
		Health: handlers.NewHealthHandler(db),
	}, middleware.TokenAuth(cfg.TokenSecret, auth), promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	listenErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port)
		listenErr <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err = <-listenErr:
		slog.Error("server failed", "error", err)
	case <-ctx.Done():
		slog.Info("shutting down server...")
		err = nil
	}

	if shutdownErr := app.ShutdownWithTimeout(10 * time.Second); shutdownErr != nil {
		slog.Error("server shutdown error", "error", shutdownErr)
	}

	sentry.Flush(2 * time.Second)
	pgLogHandler.Stop()

	if closeErr := database.Close(db); closeErr != nil {
		slog.Error("database close error", "error", closeErr)
	}

	slog.Info("server stopped")
	return err
}
