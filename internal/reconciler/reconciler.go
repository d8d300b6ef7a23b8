package reconciler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/travelmate/community-hub/internal/adapter"
	"github.com/travelmate/community-hub/internal/domain"
	"github.com/travelmate/community-hub/internal/logger"
	"github.com/travelmate/community-hub/internal/messaging"
	"github.com/travelmate/community-hub/internal/providers/aifeatures"
	"github.com/travelmate/community-hub/internal/providers/chat"
	"github.com/travelmate/community-hub/internal/providers/ledger"
	"github.com/travelmate/community-hub/internal/store"
	"github.com/travelmate/community-hub/internal/store/schema"
)

// Reconciler resolves saga runs whose ledger and local state may have
// diverged: confirmation timeouts and persistence failures after a confirmed
// mutation. It is the operator process behind every ambiguous saga exit.
//
//go:generate mockgen -source=reconciler.go -destination=../mocks/reconciler.go -package=mocks -mock_names=Reconciler=MockReconciler
type Reconciler interface {
	// Start begins the reconciler's main loop
	// This is a blocking call that runs until the context is canceled
	Start(ctx context.Context) error

	// Stop gracefully stops the reconciler
	Stop(ctx context.Context) error

	// Name returns the reconciler's name for logging and identification
	Name() string
}

// Config holds configuration for the reconciler
type Config struct {
	Interval       time.Duration // Time to sleep between scan cycles
	BatchSize      int           // Tasks to process per cycle
	WorkerPoolSize int           // Concurrent workers
	MaxAttempts    int           // Attempts before a task is abandoned
}

type reconciler struct {
	config       Config
	store        store.Store
	ledgerClient ledger.Client
	decoder      *ledger.Decoder
	chat         chat.Provisioner
	features     aifeatures.Provisioner
	publisher    messaging.Publisher
	clock        adapter.Clock
	pool         pond.Pool
	running      atomic.Bool
	stopChan     chan struct{}
	stoppedCh    chan struct{}
}

// New creates a new reconciler
func New(
	config Config,
	st store.Store,
	ledgerClient ledger.Client,
	decoder *ledger.Decoder,
	chatProvisioner chat.Provisioner,
	featureProvisioner aifeatures.Provisioner,
	publisher messaging.Publisher,
	clock adapter.Clock,
) Reconciler {
	return &reconciler{
		config:       config,
		store:        st,
		ledgerClient: ledgerClient,
		decoder:      decoder,
		chat:         chatProvisioner,
		features:     featureProvisioner,
		publisher:    publisher,
		clock:        clock,
		stopChan:     make(chan struct{}),
		stoppedCh:    make(chan struct{}),
	}
}

// Name returns the reconciler's name
func (r *reconciler) Name() string {
	return "community-reconciler"
}

// Start begins the reconciler's main loop
func (r *reconciler) Start(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return fmt.Errorf("reconciler already running")
	}
	defer func() {
		r.running.Store(false)
		close(r.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting reconciler",
		zap.Duration("interval", r.config.Interval),
		zap.Int("batch_size", r.config.BatchSize),
		zap.Int("worker_pool_size", r.config.WorkerPoolSize),
	)

	r.pool = pond.NewPool(
		r.config.WorkerPoolSize,
		pond.WithQueueSize(r.config.BatchSize),
		pond.WithContext(ctx),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Reconciler stopping due to context cancellation", zap.Error(ctx.Err()))
			r.cleanup()
			return nil
		case <-r.stopChan:
			logger.InfoCtx(ctx, "Reconciler stop requested")
			r.cleanup()
			return nil
		default:
			if err := r.runCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
		}
	}
}

// cleanup stops the worker pool and waits for tasks to complete
func (r *reconciler) cleanup() {
	if r.pool != nil {
		r.pool.StopAndWait()
	}
}

// Stop gracefully stops the reconciler with timeout support
func (r *reconciler) Stop(ctx context.Context) error {
	if !r.running.CompareAndSwap(true, false) {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping reconciler")

	close(r.stopChan)

	select {
	case <-r.stoppedCh:
		logger.InfoCtx(ctx, "Reconciler stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Reconciler stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runCycle processes one batch of pending reconciliation tasks
func (r *reconciler) runCycle(ctx context.Context) error {
	startTime := r.clock.Now()

	tasks, err := r.store.ListPendingReconciliationTasks(ctx, r.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list pending reconciliation tasks: %w", err)
	}

	if len(tasks) == 0 {
		if !r.sleep(ctx, r.config.Interval) {
			return ctx.Err()
		}
		return nil
	}

	logger.InfoCtx(ctx, "Found pending reconciliation tasks", zap.Int("count", len(tasks)))

	var resolvedCount, failedCount atomic.Int32

	for i := range tasks {
		task := tasks[i]
		r.pool.Submit(func() {
			if err := r.resolveTask(ctx, &task); err != nil {
				failedCount.Add(1)
				logger.WarnCtx(ctx, "Reconciliation attempt failed",
					zap.String("task_id", task.ID),
					zap.String("tx_hash", task.TxHash),
					zap.Error(err))
				if recordErr := r.store.RecordReconciliationAttempt(ctx, task.ID, err, r.config.MaxAttempts); recordErr != nil {
					logger.ErrorCtx(ctx, recordErr, zap.String("task_id", task.ID))
				}
				return
			}
			resolvedCount.Add(1)
		})
	}

	r.pool.StopAndWait()

	// Recreate pool for next cycle
	r.pool = pond.NewPool(
		r.config.WorkerPoolSize,
		pond.WithQueueSize(r.config.BatchSize),
		pond.WithContext(ctx),
	)

	logger.InfoCtx(ctx, "Reconciliation cycle completed",
		zap.Duration("duration", r.clock.Since(startTime)),
		zap.Int("total", len(tasks)),
		zap.Int32("resolved", resolvedCount.Load()),
		zap.Int32("failed", failedCount.Load()),
	)

	if !r.sleep(ctx, r.config.Interval) {
		return ctx.Err()
	}

	return nil
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation or a stop request
func (r *reconciler) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-r.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-r.stopChan:
		return false
	}
}

// resolveTask completes the stranded saga legs for one task. Every step is
// idempotent under the ledger id, so replaying a partially reconciled task
// converges.
func (r *reconciler) resolveTask(ctx context.Context, task *schema.ReconciliationTask) error {
	logger.InfoCtx(ctx, "Reconciling task",
		zap.String("task_id", task.ID),
		zap.String("tx_hash", task.TxHash),
		zap.String("reason", string(task.Reason)),
		zap.Int("attempts", task.Attempts))

	var req domain.CreationRequest
	if err := json.Unmarshal(task.Request, &req); err != nil {
		return fmt.Errorf("failed to unmarshal creation request: %w", err)
	}

	ledgerID := task.LedgerID
	if ledgerID == "" {
		receipt, err := r.ledgerClient.FetchReceipt(ctx, task.TxHash)
		if err != nil {
			if errors.Is(err, domain.ErrTransactionReverted) {
				// The mutation definitively failed; there is nothing to
				// reconcile and no record to create
				logger.InfoCtx(ctx, "Transaction reverted, resolving task without a record",
					zap.String("task_id", task.ID),
					zap.String("tx_hash", task.TxHash))
				return r.store.ResolveReconciliationTask(ctx, task.ID, "")
			}
			return fmt.Errorf("failed to fetch receipt: %w", err)
		}

		ledgerID, err = r.decoder.DecodeCommunityID(receipt)
		if err != nil {
			return fmt.Errorf("failed to decode community id: %w", err)
		}
	}

	// Re-run the side effects. Both are idempotent; failures degrade the
	// record exactly as in the saga.
	channelID, err := r.chat.ProvisionChannel(ctx, req.Name)
	if err != nil {
		logger.WarnCtx(ctx, "Chat channel provisioning failed during reconciliation",
			zap.String("ledger_id", ledgerID),
			zap.Error(err))
		channelID = ""
	}

	featureConfig := domain.DefaultFeatureConfig()
	if provisioned, err := r.features.InitializeFeatureConfig(ctx, req.Category); err != nil {
		logger.WarnCtx(ctx, "Feature config initialization failed during reconciliation",
			zap.String("ledger_id", ledgerID),
			zap.Error(err))
	} else if provisioned != nil {
		featureConfig = *provisioned
	}

	community, err := r.store.UpsertCommunityByLedgerID(ctx, store.UpsertCommunityInput{
		LedgerID:        ledgerID,
		Name:            req.Name,
		Destination:     req.Destination,
		Category:        req.Category,
		Capacity:        req.Capacity,
		Description:     req.Description,
		AdminIdentity:   req.AdminIdentity,
		ContractAddress: r.ledgerClient.ContractAddress(),
		ChannelID:       channelID,
		FeatureConfig:   featureConfig,
		Tags:            domain.TagsForCategory(req.Category),
	})
	if err != nil {
		return fmt.Errorf("failed to upsert community: %w", err)
	}

	if r.publisher != nil {
		event := &domain.CommunityCreatedEvent{
			LedgerID:  ledgerID,
			Name:      req.Name,
			Category:  req.Category,
			ChannelID: channelID,
			TxHash:    task.TxHash,
			CreatedAt: r.clock.Now(),
		}
		if err := r.publisher.PublishCommunityCreated(ctx, event); err != nil {
			logger.WarnCtx(ctx, "Failed to publish community created event during reconciliation",
				zap.String("ledger_id", ledgerID),
				zap.Error(err))
		}
	}

	if err := r.store.ResolveReconciliationTask(ctx, task.ID, ledgerID); err != nil {
		return fmt.Errorf("failed to resolve reconciliation task: %w", err)
	}

	logger.InfoCtx(ctx, "Reconciliation task resolved",
		zap.String("task_id", task.ID),
		zap.String("ledger_id", ledgerID),
		zap.Uint64("community_id", community.ID))

	return nil
}
