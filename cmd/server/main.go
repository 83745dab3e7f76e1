package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/jackyoon/meeting-room-reservation/internal/config"
	"github.com/jackyoon/meeting-room-reservation/internal/database"
	"github.com/jackyoon/meeting-room-reservation/internal/engine"
	"github.com/jackyoon/meeting-room-reservation/internal/handler"
	"github.com/jackyoon/meeting-room-reservation/internal/parser"
	"github.com/jackyoon/meeting-room-reservation/internal/queue"
	"github.com/jackyoon/meeting-room-reservation/internal/repository"
	"github.com/jackyoon/meeting-room-reservation/internal/router"
)

func main() {
	// Load .env when present; real deployments set env vars directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("schema: %v", err)
	}
	cancel()

	roomRepo := repository.NewRoomRepo(db)
	reservationRepo := repository.NewReservationRepo(db)

	eng := engine.New(parser.New(parser.ClockPolicy(cfg.ClockPolicy)), reservationRepo, roomRepo)

	rdb := config.NewRedisClient() // nil when Redis is unreachable; middleware degrades
	if rdb == nil {
		log.Printf("redis unavailable: rate limiting and response caching disabled")
	}

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterEngine(e, handler.NewMessageHandler(eng), handler.NewReservationHandler(reservationRepo, roomRepo), rdb)

	// Background consumer appends reservation.created events to the
	// reservation log; it reconnects on its own and never stops the server.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
