// Package main wires the HTTP server for the kudos service.
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/nicles7/kudos-app/config"
	"github.com/nicles7/kudos-app/internal/repository"
	"github.com/nicles7/kudos-app/internal/seed"
	"github.com/nicles7/kudos-app/internal/service/gemini"
	"github.com/nicles7/kudos-app/internal/transport/http/middleware"
	"github.com/nicles7/kudos-app/internal/transport/http/server/handlers-fiber"
	"github.com/nicles7/kudos-app/internal/usecase"
	"github.com/nicles7/kudos-app/internal/usecase/domain"
	"github.com/nicles7/kudos-app/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	loc, err := cfg.App.Location()
	if err != nil {
		log.Errorw("invalid timezone", "error", err)
		return
	}

	repo, err := repository.New(ctx, cfg.Ledger.Backend, log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	roster, err := seed.Load(cfg.Ledger.SeedFile, time.Now())
	if err != nil {
		log.Errorw("seed load error", "error", err, "file", cfg.Ledger.SeedFile)
		return
	}
	if err := repo.Seed(ctx, roster.Users, roster.Teams, roster.Kudos); err != nil {
		log.Errorw("seed error", "error", err)
		return
	}

	opts := []domain.Option{
		domain.WithLocation(loc),
		domain.WithGenerationTimeout(cfg.GenAI.RequestTimeout),
	}
	if cfg.GenAI.Enabled() {
		client, err := gemini.New(ctx, log, gemini.Config{
			APIKey:     cfg.GenAI.APIKey,
			TextModel:  cfg.GenAI.TextModel,
			ImageModel: cfg.GenAI.ImageModel,
		})
		if err != nil {
			log.Errorw("genai client error", "error", err)
			return
		}
		opts = append(opts, domain.WithMessageComposer(client), domain.WithImageGenerator(client))
	} else {
		log.Warnw("genai api key is not set, generation endpoints are disabled")
	}

	uc := usecase.New(log, ctx, repo, cfg.HTTP.RequestTimeout, opts...)

	// generation requests outlive ordinary ones
	ioTimeout := cfg.HTTP.RequestTimeout
	if cfg.GenAI.Enabled() && cfg.GenAI.RequestTimeout > ioTimeout {
		ioTimeout = cfg.GenAI.RequestTimeout
	}

	serv := fiber.New(fiber.Config{
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
		BodyLimit:    16 * 1024 * 1024,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	h.Register(serv)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infow("http server starting", "addr", cfg.ServerAddr(), "backend", cfg.Ledger.Backend, "timezone", loc.String())
		return serv.Listen(cfg.ServerAddr())
	})
	g.Go(func() error {
		<-gctx.Done()
		stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := serv.ShutdownWithContext(shutdownCtx); err != nil {
			log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout, "error", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Errorw("failed to start server", "error", err)
	}
}
