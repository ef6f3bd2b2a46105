package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"streetadmin/auth"
	"streetadmin/backend"
	"streetadmin/config"
	"streetadmin/flash"
	"streetadmin/handlers"
	"streetadmin/logger"
	"streetadmin/middleware"
	"streetadmin/queries"
	"streetadmin/querycache"
	"streetadmin/routes"
	"streetadmin/templates"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logg, closer, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer closer.Close()

	app, cache := newApp(cfg, logg)
	defer cache.Close()

	go func() {
		logg.WithFields(logrus.Fields{"address": cfg.Address, "backend": cfg.BackendBaseURL, "version": version}).Info("portal_starting")
		if err := app.Listen(cfg.Address); err != nil {
			logg.WithError(err).Fatal("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logg.Info("portal_shutting_down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logg.WithError(err).Error("shutdown failed")
	}
}

// newApp wires the portal: backend client, query cache, session issuer,
// view engine, middleware and routes.
func newApp(cfg *config.Config, logg *logrus.Logger) (*fiber.App, *querycache.Cache) {
	client := backend.New(cfg.BackendBaseURL, cfg.BackendTimeout, logg)
	cache := querycache.New(cfg.CacheTTL, cfg.CacheSweep)
	svc := queries.NewService(client, cache, cfg.DefaultPageSize)
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.SessionTTL)
	flashCodec := flash.NewCodec([]byte(cfg.JWTSecret), "street_flash", cfg.CookieSecure)

	h := handlers.New(svc, client, issuer, flashCodec, logg, handlers.Options{
		DefaultPageSize:  cfg.DefaultPageSize,
		MaxPageSize:      cfg.MaxPageSize,
		SearchDebounceMS: cfg.SearchDebounceMS,
		CookieSecure:     cfg.CookieSecure,
		Version:          version,
	})

	app := fiber.New(fiber.Config{
		AppName:               "STREET Admin",
		Views:                 templates.Engine(),
		ErrorHandler:          middleware.ErrorHandler(logg, cfg.CookieSecure),
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
	})

	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			logg.WithFields(logrus.Fields{"panic": e, "path": c.Path()}).Error("panic_recovered")
		},
	}))
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(middleware.RequestLogger(logg))
	if origins := strings.ReplaceAll(cfg.CORSOrigins, " ", ""); origins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowCredentials: origins != "*",
		}))
	}
	app.Use(middleware.FlashMiddleware(flashCodec))

	routes.SetupRoutes(app, h, issuer, routes.Options{
		CookieSecure:         cfg.CookieSecure,
		LoginRateLimitMax:    cfg.LoginRateLimitMax,
		LoginRateLimitWindow: cfg.LoginRateLimitWindow,
	})

	return app, cache
}
