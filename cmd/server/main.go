package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nats-io/nats.go"

	"github.com/shoplite/shoplite/internal"
	"github.com/shoplite/shoplite/internal/app"
	"github.com/shoplite/shoplite/internal/app/cart"
	"github.com/shoplite/shoplite/internal/app/category"
	"github.com/shoplite/shoplite/internal/app/product"
	"github.com/shoplite/shoplite/internal/app/user"
	"github.com/shoplite/shoplite/internal/auth"
	"github.com/shoplite/shoplite/internal/email"
	"github.com/shoplite/shoplite/internal/handler/api"
	"github.com/shoplite/shoplite/internal/jobs"
	"github.com/shoplite/shoplite/internal/middleware"
	"github.com/shoplite/shoplite/internal/postgres"
	"github.com/shoplite/shoplite/internal/routes"
	"github.com/shoplite/shoplite/internal/storage"
	"github.com/shoplite/shoplite/internal/worker"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize database/sql connection for migrations
	logger.Info().Msg("connecting to database")
	sqlDB, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	// Run migrations
	logger.Info().Msg("running database migrations")
	if err := internal.RunMigrations(sqlDB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	// Initialize pgx connection pool for the application
	pool, err := postgres.NewPool(ctx, cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	// Persistence
	begin := postgres.NewUnitOfWorkFactory(pool)
	users := postgres.NewUserDirectory(pool)

	// File storage
	files, err := storage.New(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize file storage: %w", err)
	}
	logger.Info().Str("provider", cfg.Storage.Provider).Msg("file storage initialized")

	cartReads := postgres.NewCartReadModel(pool, files)

	// Access tokens
	tokens, err := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, time.Duration(cfg.JWT.TTLMinutes)*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to initialize token issuer: %w", err)
	}

	// Mail delivery
	var sender email.Sender
	if cfg.Env == "prod" {
		sender = email.NewSMTPSender(email.SMTPConfig{
			Host:     cfg.Email.Host,
			Port:     int(cfg.Email.Port),
			Username: cfg.Email.Username,
			Password: cfg.Email.Password,
			From:     cfg.Email.From,
			FromName: cfg.Email.FromName,
		})
	} else {
		sender = email.NewLogSender(logger)
	}

	// Background jobs over NATS; without a broker, confirmation emails are
	// only logged.
	var mailer user.ConfirmationMailer
	if cfg.Nats.URL != "" {
		nc, err := nats.Connect(cfg.Nats.URL, nats.Name("shoplite-server"))
		if err != nil {
			return fmt.Errorf("failed to connect to nats: %w", err)
		}
		defer nc.Drain()

		mailer = jobs.NewPublisher(nc, logger)

		w := worker.NewWorker(nc, sender, worker.Config{}, logger)
		go func() {
			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error().Err(err).Msg("worker stopped")
			}
		}()
		logger.Info().Str("url", cfg.Nats.URL).Msg("job broker connected")
	} else {
		mailer = jobs.NewNoopMailer(logger)
	}

	// Request pipeline: every handler registered once, explicitly.
	mediator := app.NewMediator()

	app.MustRegister(mediator, cart.NewAddProductToCartHandler(begin, users))
	app.MustRegister(mediator, cart.NewRemoveItemFromCartHandler(begin))
	app.MustRegister(mediator, cart.NewUpdateCartItemQuantityHandler(begin))
	app.MustRegister(mediator, cart.NewClearCartHandler(begin))
	app.MustRegister(mediator, cart.NewGetCartDetailsHandler(cartReads))
	app.MustRegister(mediator, cart.NewGetCartItemCountHandler(cartReads))

	app.MustRegister(mediator, product.NewCreateProductHandler(begin, users, files))
	app.MustRegister(mediator, product.NewEditProductHandler(begin, files))
	app.MustRegister(mediator, product.NewDeleteProductHandler(begin, files))
	app.MustRegister(mediator, product.NewGetProductsHandler(begin, files))
	app.MustRegister(mediator, product.NewGetProductDetailByIDHandler(begin, users, files))

	app.MustRegister(mediator, category.NewCreateCategoryHandler(begin))
	app.MustRegister(mediator, category.NewGetAllCategoriesHandler(begin))
	app.MustRegister(mediator, category.NewGetCategoryByIDHandler(begin))

	app.MustRegister(mediator, user.NewRegisterUserHandler(users, mailer, logger))
	app.MustRegister(mediator, user.NewConfirmUserEmailHandler(users))
	app.MustRegister(mediator, user.NewPasswordLoginHandler(users, tokens))

	// HTTP server
	metrics := middleware.NewMetrics("shoplite")

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(metrics.Middleware())

	routes.RegisterAPIRoutes(e, routes.APIDeps{
		Users:      api.NewUserHandler(mediator),
		Categories: api.NewCategoryHandler(mediator),
		Products:   api.NewProductHandler(mediator),
		Cart:       api.NewCartHandler(mediator),
		Auth:       middleware.RequireAuth(tokens),
		Metrics:    metrics,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	go func() {
		logger.Info().Str("address", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("server failed")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
