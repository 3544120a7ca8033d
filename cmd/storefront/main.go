package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/vista-store/storefront/internal/api"
	"github.com/vista-store/storefront/internal/core/ports"
	"github.com/vista-store/storefront/internal/core/service"
	"github.com/vista-store/storefront/internal/infrastructure/config"
	"github.com/vista-store/storefront/internal/infrastructure/db/memory"
	"github.com/vista-store/storefront/internal/infrastructure/db/mongo"
	"github.com/vista-store/storefront/internal/infrastructure/db/redis"
	"github.com/vista-store/storefront/internal/infrastructure/queue"
	"github.com/vista-store/storefront/internal/infrastructure/storage"
	"github.com/vista-store/storefront/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Vista Store API
// @version      1.0
// @description  Storefront backend: catalog, carts, sessions and order tracking.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Repositories: MongoDB, or seeded in-memory fixtures ---
	var (
		users    ports.UserRepository
		products ports.ProductRepository
		orders   ports.OrderRepository
		mongoDB  *gomongo.Database
	)
	if cfg.Mongo.URI != "" {
		client, db, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongodb connection failed")
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Warn().Err(err).Msg("mongodb disconnect failed")
			}
		}()

		userRepo := mongo.NewUserRepository(db)
		orderRepo := mongo.NewOrderRepository(db)
		if err := userRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("user index creation failed")
		}
		if err := orderRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("order index creation failed")
		}

		users = userRepo
		products = mongo.NewProductRepository(db)
		orders = orderRepo
		mongoDB = db
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongodb repositories")
	} else {
		users = memory.NewUserRepository()
		products = memory.NewProductRepository()
		orders = memory.NewOrderRepository()
		log.Info().Msg("MONGO_URI not set, using in-memory repositories with seeded fixtures")
	}

	// --- Snapshots and dedup: Redis, or process-local fallbacks ---
	var (
		snapshots ports.SnapshotStore
		dedup     service.DedupChecker
		redisCli  *goredis.Client
	)
	if cfg.Redis.Addr != "" {
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Warn().Err(err).Msg("redis close failed")
			}
		}()

		snapshots = redis.NewSnapshotStore(client)
		dedup = redis.NewDedupChecker(client)
		redisCli = client
		log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis snapshot store")
	} else {
		snapshots = storage.NewMemoryStore()
		dedup = memory.NewDedupChecker()
		log.Info().Msg("REDIS_ADDR not set, using in-memory snapshot store")
	}

	// --- Order event pipeline ---
	tracking := service.NewTrackingService(orders, dedup, log)
	dispatcher := queue.NewDispatcher(0, tracking, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		Users:      users,
		Products:   products,
		Orders:     orders,
		Snapshots:  snapshots,
		Dispatcher: dispatcher,
		Mongo:      mongoDB,
		Redis:      redisCli,
		JWTSecret:  cfg.JWTSecret,
		TokenTTL:   cfg.TokenTTL,
		Log:        log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting storefront server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}
