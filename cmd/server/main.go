package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/avioline/seat-reservation/internal/booking"
	"github.com/avioline/seat-reservation/internal/config"
	"github.com/avioline/seat-reservation/internal/database"
	"github.com/avioline/seat-reservation/internal/handler"
	"github.com/avioline/seat-reservation/internal/queue"
	"github.com/avioline/seat-reservation/internal/repository"
	"github.com/avioline/seat-reservation/internal/router"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema: %v", err)
	}
	if err := database.SeedAdmin(ctx, db, cfg.AdminUsername, cfg.AdminPassword, cfg.BcryptCost); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	svc := booking.NewService(repository.NewReservationRepo(db))
	admins := repository.NewAdminRepo(db)

	// Redis is optional; cache and rate limiting are disabled when nil.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}

	// Background consumer appending reservation confirmations to
	// logs/reservations.log; it reconnects on broker failures.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterPublic(e, handler.NewPublicHandler(svc), handler.NewReservationHandler(svc), rdb)
	router.RegisterAdmin(e, handler.NewAdminHandler(admins, svc, cfg.JWTSecret, cfg.AccessTTLMin), cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
