package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"bidding-engine/internal/config"
	"bidding-engine/internal/database"
	"bidding-engine/internal/fraud"
	"bidding-engine/internal/handler"
	"bidding-engine/internal/locker"
	"bidding-engine/internal/logger"
	"bidding-engine/internal/metrics"
	"bidding-engine/internal/repository/postgres"
	"bidding-engine/internal/service"
	"bidding-engine/internal/worker"

	"github.com/redis/go-redis/v9"

	_ "bidding-engine/docs"
)

// @title Auction Bidding Engine API
// @version 1.0
// @description Live auction bidding with an escrowed virtual-currency ledger
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Setup logger
	log := logger.New(true)

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	// Repositories
	accountRepo := postgres.NewAccountRepository(dbPool)
	ledgerRepo := postgres.NewLedgerRepository(dbPool)
	auctionRepo := postgres.NewAuctionRepository(dbPool)
	bidRepo := postgres.NewBidRepository(dbPool)

	// Transaction manager used by services
	txManager := postgres.NewTransactionManager(dbPool)

	// Metrics and per-auction serialization
	collector := metrics.NewCollector()
	auctionLocks := locker.New()

	// Root context to be cancelled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Fraud monitor: Redis-backed counters when configured, in-process otherwise
	var counterStore fraud.CounterStore
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		counterStore = fraud.NewRedisCounterStore(rdb)
	} else {
		counterStore = fraud.NewMemoryCounterStore()
	}
	fraudMonitor := fraud.NewMonitor(cfg.Fraud, counterStore, accountRepo, collector, log)
	fraudMonitor.Start(ctx)

	// Services
	ledgerService := service.NewLedgerService(accountRepo, ledgerRepo, txManager, fraudMonitor, collector, log)
	settlementService := service.NewSettlementService(ledgerService, auctionRepo, bidRepo, txManager, auctionLocks, collector, cfg.Auction, log)
	auctionService := service.NewAuctionService(auctionRepo, settlementService, cfg.Auction.AntiSnipeWindow, cfg.Auction.DefaultMaxExtensions, log)
	biddingService := service.NewBiddingService(ledgerService, auctionRepo, bidRepo, txManager, auctionLocks, fraudMonitor, collector, cfg.Auction, log)

	// Worker for time-based lifecycle transitions and settlement
	sweeper := worker.NewLifecycleSweeper(auctionRepo, settlementService, cfg.Worker, log)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	// http handler
	h := handler.NewHandler(biddingService, auctionService, ledgerService, collector.Handler(), log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
