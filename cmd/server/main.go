package main // roster API server

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/bus-seat-roster/internal/config"
	"github.com/iliyamo/bus-seat-roster/internal/database"
	"github.com/iliyamo/bus-seat-roster/internal/handler"
	"github.com/iliyamo/bus-seat-roster/internal/middleware"
	"github.com/iliyamo/bus-seat-roster/internal/queue"
	"github.com/iliyamo/bus-seat-roster/internal/repository"
	"github.com/iliyamo/bus-seat-roster/internal/roster"
	"github.com/iliyamo/bus-seat-roster/internal/router"
	"github.com/iliyamo/bus-seat-roster/internal/service"
)

func main() {
	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	vocab, err := config.LoadVocabulary(cfg.VocabularyFile)
	if err != nil {
		log.Fatalf("vocabulary: %v", err)
	}
	if cfg.OrganizerPasswordHash == "" {
		log.Printf("auth: ORGANIZER_PASSWORD_HASH is empty; organizer login is disabled")
	}

	var db *sql.DB
	var store service.RosterStore = repository.NewMemoryRosterStore()
	if cfg.DatabaseEnabled() {
		db, err = database.Open(cfg)
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer db.Close()
		if err := database.Migrate(ctx, db); err != nil {
			log.Fatalf("db migrate: %v", err)
		}
		store = repository.NewRosterRepo(db)
		log.Printf("store: mysql %s:%s/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)
	} else {
		log.Printf("store: in-memory (DB_HOST not set)")
	}

	rdb := config.NewRedisClient(config.LoadRedisConfig())
	if rdb != nil {
		defer rdb.Close()
	}
	cacheCfg := config.LoadCacheConfig()

	planner := service.NewPlanner(roster.NewParser(vocab), store)
	planner.Invalidate = func(ctx context.Context) error {
		return middleware.InvalidateCache(ctx, cacheCfg, rdb)
	}
	if cfg.QueueEnabled {
		planner.Publisher = &service.AMQPPublisher{URL: cfg.AMQPURL}
		go func() {
			if err := queue.StartRosterConsumer(ctx, cfg.AMQPURL, cfg.EventLogDir); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("roster-consumer: stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Printf("http: %s %s %d %s", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))
	e.Use(echomw.BodyLimit("1M"))

	router.RegisterRoutes(e, router.Deps{
		DB:        db,
		JWTSecret: cfg.JWTSecret,
		Auth:      handler.NewAuthHandler(cfg),
		Rosters:   handler.NewRosterHandler(planner),
		Cache:     middleware.NewRedisCache(cacheCfg, rdb),
		RateLimit: middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
