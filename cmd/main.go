package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"go.uber.org/zap"

	"github.com/gomeliGithub/maria-project-sub000/config"
	"github.com/gomeliGithub/maria-project-sub000/db"
	"github.com/gomeliGithub/maria-project-sub000/internal/auth/handler"
	repo "github.com/gomeliGithub/maria-project-sub000/internal/auth/repository/postgres"
	"github.com/gomeliGithub/maria-project-sub000/internal/auth/secret"
	"github.com/gomeliGithub/maria-project-sub000/internal/auth/service"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to load configuration", "error", err)
	}

	// Key material lives for exactly one process run; every token dies
	// with the process.
	keys, err := secret.NewKeySet()
	if err != nil {
		log.Fatalw("failed to generate key material", "error", err)
	}

	ctx := context.Background()

	if err := db.ApplyMigrations(cfg.DBURL); err != nil {
		log.Fatalw("failed to apply migrations", "error", err)
	}

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalw("failed to create database pool", "error", err)
	}
	defer pool.Close()

	clientRepo := repo.NewClientRepository(pool)
	revocationRepo := repo.NewRevocationRepository(pool)

	tokenService := service.NewTokenService(cfg.TokenAlgorithm, keys, revocationRepo, cfg.TokenExpiryMin)
	clientService := service.NewClientService(clientRepo, tokenService, keys, cfg, log)

	authHandler := handler.NewAuthHandler(clientService, tokenService, cfg)
	gate := handler.NewGate(clientService, tokenService)

	app := fiber.New(fiber.Config{
		ErrorHandler: handler.NewErrorHandler(log),
	})
	app.Use(encryptcookie.New(encryptcookie.Config{Key: keys.CookieKey}))

	handler.RegisterRoutes(app, authHandler, gate)

	log.Infow("starting auth service", "port", cfg.Port, "env", cfg.Env)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}
