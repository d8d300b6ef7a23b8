package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/travelmate/community-hub/internal/adapter"
	"github.com/travelmate/community-hub/internal/config"
	"github.com/travelmate/community-hub/internal/logger"
	"github.com/travelmate/community-hub/internal/providers/aifeatures"
	"github.com/travelmate/community-hub/internal/providers/chat"
	"github.com/travelmate/community-hub/internal/providers/jetstream"
	"github.com/travelmate/community-hub/internal/providers/ledger"
	temporal "github.com/travelmate/community-hub/internal/providers/temporal"
	"github.com/travelmate/community-hub/internal/store"
	"github.com/travelmate/community-hub/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadWorkerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if err := cfg.Ledger.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid ledger config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "community-worker",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Community Worker")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("dsn", cfg.Database.DSN()))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clockAdapter := adapter.NewClock()

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
	chatProvisioner := chat.NewProvisioner(clockAdapter)
	featureProvisioner := aifeatures.NewProvisioner()

	// Connect to NATS JetStream
	publisher, err := jetstream.NewPublisher(jetstream.Config{
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

	// Initialize executor for activities
	executor := workflows.NewExecutor(ledgerClient, decoder, chatProvisioner, featureProvisioner, dataStore, publisher)

	// Connect to Temporal with logger integration
	temporalLogger := temporal.NewZapLoggerAdapter(logger.Default())
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporalLogger,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("namespace", cfg.Temporal.Namespace))

	// Create Temporal worker
	temporalWorker := worker.New(
		temporalClient,
		cfg.Temporal.CommunityTaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			Interceptors: []interceptor.WorkerInterceptor{
				temporal.NewSentryActivityInterceptor(),
			},
		})
	logger.InfoCtx(ctx, "Created Temporal worker", zap.String("taskQueue", cfg.Temporal.CommunityTaskQueue))

	// Create worker core instance. The submission timeout leaves headroom
	// over the ledger confirmation timeout so the activity is never cut off
	// while the client is still polling for a receipt.
	workerCore := workflows.NewWorkerCore(executor,
		workflows.WorkerCoreConfig{
			SubmissionTimeout: cfg.Ledger.ConfirmationTimeout + 30*time.Second,
		})

	// Register workflows
	temporalWorker.RegisterWorkflow(workerCore.CreateCommunity)
	logger.InfoCtx(ctx, "Registered workflows")

	// Register activities
	// Activities will be called by workflows
	temporalWorker.RegisterActivity(executor.SubmitCreateCommunity)
	temporalWorker.RegisterActivity(executor.DecodeCommunityID)
	temporalWorker.RegisterActivity(executor.ProvisionChatChannel)
	temporalWorker.RegisterActivity(executor.InitializeFeatureConfig)
	temporalWorker.RegisterActivity(executor.UpsertCommunity)
	temporalWorker.RegisterActivity(executor.EnqueueReconciliationTask)
	temporalWorker.RegisterActivity(executor.PublishCommunityCreated)
	logger.InfoCtx(ctx, "Registered activities")

	// Start worker
	err = temporalWorker.Start()
	if err != nil {
		logger.FatalCtx(ctx, "Failed to start worker", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Worker started and listening for tasks")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down worker...")
	temporalWorker.Stop()
	logger.Info("Worker stopped")
}
