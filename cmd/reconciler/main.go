package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/travelmate/community-hub/internal/adapter"
	"github.com/travelmate/community-hub/internal/config"
	"github.com/travelmate/community-hub/internal/logger"
	"github.com/travelmate/community-hub/internal/messaging"
	"github.com/travelmate/community-hub/internal/providers/aifeatures"
	"github.com/travelmate/community-hub/internal/providers/chat"
	"github.com/travelmate/community-hub/internal/providers/jetstream"
	"github.com/travelmate/community-hub/internal/providers/ledger"
	"github.com/travelmate/community-hub/internal/reconciler"
	"github.com/travelmate/community-hub/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadReconcilerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if err := cfg.Ledger.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid ledger config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "reconciler",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Reconciler")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("dsn", cfg.Database.DSN()))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize clock adapter
	clock := adapter.NewClock()

	// Dial the ledger RPC endpoint
	ethDialer := adapter.NewEthClientDialer()
	ethClient, err := ethDialer.Dial(ctx, cfg.Ledger.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial ledger RPC", zap.Error(err), zap.String("rpc_url", cfg.Ledger.RPCURL))
	}
	defer ethClient.Close()
	logger.InfoCtx(ctx, "Connected to ledger RPC", zap.String("rpc_url", cfg.Ledger.RPCURL))

	// Initialize ledger client and event decoder
	ledgerClient, err := ledger.NewClient(ledger.Config{
		ChainID:             cfg.Ledger.ChainID,
		ContractAddress:     cfg.Ledger.ContractAddress,
		PrivateKey:          cfg.Ledger.PrivateKey,
		GasLimit:            cfg.Ledger.GasLimit,
		SubmitMaxAttempts:   cfg.Ledger.SubmitMaxAttempts,
		ConfirmationTimeout: cfg.Ledger.ConfirmationTimeout,
		ReceiptPollInterval: cfg.Ledger.ReceiptPollInterval,
	}, ethClient)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create ledger client", zap.Error(err))
	}
	decoder := ledger.NewDecoder(cfg.Ledger.ContractAddress)

	// Initialize side-effect provisioners
	chatProvisioner := chat.NewProvisioner(clock)
	featureProvisioner := aifeatures.NewProvisioner()

	// Connect to NATS JetStream. The publisher is optional here: recovered
	// communities are still persisted when the broker is unreachable.
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream())
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		defer publisher.Close()
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, recovered communities will not be published")
	}

	// Initialize reconciler
	reconcilerConfig := reconciler.Config{
		Interval:       cfg.Reconciler.Interval,
		BatchSize:      cfg.Reconciler.BatchSize,
		WorkerPoolSize: cfg.Reconciler.PoolSize,
		MaxAttempts:    cfg.Reconciler.MaxAttempts,
	}
	rec := reconciler.New(reconcilerConfig, dataStore, ledgerClient, decoder, chatProvisioner, featureProvisioner, publisher, clock)

	logger.InfoCtx(ctx, "Initialized reconciler (continuous mode)",
		zap.Duration("interval", cfg.Reconciler.Interval),
		zap.Int("batch_size", cfg.Reconciler.BatchSize),
		zap.Int("worker_pool_size", cfg.Reconciler.PoolSize),
	)

	// Start the reconciler in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := rec.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the reconciler
	cancel()

	// Give the reconciler time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	if err := rec.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Reconciler stopped")
}
