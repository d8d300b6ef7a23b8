package workflows

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/travelmate/community-hub/internal/domain"
	"github.com/travelmate/community-hub/internal/logger"
	"github.com/travelmate/community-hub/internal/store"
	"github.com/travelmate/community-hub/internal/store/schema"
)

// CreateCommunity orchestrates the community creation saga:
// 1. Validate the request (no ledger contact on failure)
// 2. Submit the createCommunity transaction and await confirmation
// 3. Decode the community id from the confirmed receipt
// 4. Provision chat channel and AI feature config concurrently
// 5. Persist the community record keyed by ledger id
// 6. Publish the created event (non-fatal)
//
// The ledger mutation is never compensated. Ambiguous exits (confirmation
// timeout, persistence failure after confirmation) enqueue a durable
// reconciliation task and report StatusReconciliationRequired.
func (w *workerCore) CreateCommunity(ctx workflow.Context, req domain.CreationRequest) (*domain.CreationOutcome, error) {
	logger.InfoWf(ctx, "Community creation saga started",
		zap.String("state", string(domain.SagaStateReceived)),
		zap.String("name", req.Name),
		zap.String("category", string(req.Category)))

	if err := req.Validate(); err != nil {
		logger.WarnWf(ctx, "Creation request rejected",
			zap.String("state", string(domain.SagaStateFailed)),
			zap.Error(err))
		return nil, temporal.NewNonRetryableApplicationError(err.Error(), domain.ErrTypeValidation, err)
	}

	// Submission runs at most once per saga run. The activity is never
	// retried by Temporal: the ledger client retries transient broadcast
	// failures internally with fresh nonces, and a confirmed-but-unseen
	// transaction must go to reconciliation, not be resubmitted.
	submitOptions := workflow.ActivityOptions{
		StartToCloseTimeout: w.config.SubmissionTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	submitCtx := workflow.WithActivityOptions(ctx, submitOptions)

	logger.InfoWf(ctx, "Submitting ledger transaction",
		zap.String("state", string(domain.SagaStateSubmitting)))

	var receipt *domain.LedgerReceipt
	err := workflow.ExecuteActivity(submitCtx, w.executor.SubmitCreateCommunity, req).Get(submitCtx, &receipt)
	if err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("ledger submission failed: %w", err),
			zap.String("state", string(domain.SagaStateFailed)))
		return nil, err
	}

	if !receipt.Confirmed {
		// The transaction was broadcast but its fate is unknown. Record it
		// durably and hand off to the reconciler.
		logger.WarnWf(ctx, "Confirmation timed out, ledger state unknown",
			zap.String("state", string(domain.SagaStateUnknown)),
			zap.String("tx_hash", receipt.TxHash))
		return w.exitForReconciliation(ctx, req, receipt.TxHash, "", schema.ReasonConfirmationTimeout, nil)
	}

	logger.InfoWf(ctx, "Transaction confirmed",
		zap.String("state", string(domain.SagaStateDecoding)),
		zap.String("tx_hash", receipt.TxHash),
		zap.Uint64("block_number", receipt.BlockNumber))

	decodeOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 10 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts:        3,
			NonRetryableErrorTypes: []string{domain.ErrTypeEventNotFound},
		},
	}
	decodeCtx := workflow.WithActivityOptions(ctx, decodeOptions)

	var ledgerID string
	err = workflow.ExecuteActivity(decodeCtx, w.executor.DecodeCommunityID, receipt).Get(decodeCtx, &ledgerID)
	if err != nil {
		// The mutation is confirmed but its identity cannot be established.
		// Nothing is persisted: a community row must never exist without a
		// decoded ledger id.
		logger.ErrorWf(ctx, fmt.Errorf("failed to decode community id: %w", err),
			zap.String("state", string(domain.SagaStateFailed)),
			zap.String("tx_hash", receipt.TxHash))
		return nil, err
	}

	logger.InfoWf(ctx, "Provisioning side effects",
		zap.String("state", string(domain.SagaStateProvisioning)),
		zap.String("ledger_id", ledgerID))

	// The two provisioners are independent and run concurrently. Exhausted
	// retries degrade the record instead of failing the saga: the ledger
	// mutation is already confirmed and is never unwound.
	provisionOptions := workflow.ActivityOptions{
		StartToCloseTimeout: w.config.ProvisioningTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
			InitialInterval: time.Second,
		},
	}
	provisionCtx := workflow.WithActivityOptions(ctx, provisionOptions)

	chatFuture := workflow.ExecuteActivity(provisionCtx, w.executor.ProvisionChatChannel, req.Name)
	featureFuture := workflow.ExecuteActivity(provisionCtx, w.executor.InitializeFeatureConfig, req.Category)

	var warnings []string

	var channelID string
	if err := chatFuture.Get(provisionCtx, &channelID); err != nil {
		logger.WarnWf(ctx, "Chat channel provisioning failed, continuing without channel",
			zap.String("ledger_id", ledgerID),
			zap.Error(err))
		channelID = ""
		warnings = append(warnings, fmt.Sprintf("chat channel provisioning failed: %v", err))
	}

	featureConfig := domain.DefaultFeatureConfig()
	var provisioned *domain.FeatureConfig
	if err := featureFuture.Get(provisionCtx, &provisioned); err != nil {
		logger.WarnWf(ctx, "Feature config initialization failed, using defaults",
			zap.String("ledger_id", ledgerID),
			zap.Error(err))
		warnings = append(warnings, fmt.Sprintf("feature config initialization failed: %v", err))
	} else if provisioned != nil {
		featureConfig = *provisioned
	}

	logger.InfoWf(ctx, "Persisting community record",
		zap.String("state", string(domain.SagaStatePersisting)),
		zap.String("ledger_id", ledgerID))

	persistOptions := workflow.ActivityOptions{
		StartToCloseTimeout: w.config.PersistenceTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 4,
			InitialInterval: time.Second,
		},
	}
	persistCtx := workflow.WithActivityOptions(ctx, persistOptions)

	input := store.UpsertCommunityInput{
		LedgerID:      ledgerID,
		Name:          req.Name,
		Destination:   req.Destination,
		Category:      req.Category,
		Capacity:      req.Capacity,
		Description:   req.Description,
		AdminIdentity: req.AdminIdentity,
		ChannelID:     channelID,
		FeatureConfig: featureConfig,
		Tags:          domain.TagsForCategory(req.Category),
	}

	var community *schema.Community
	err = workflow.ExecuteActivity(persistCtx, w.executor.UpsertCommunity, input).Get(persistCtx, &community)
	if err != nil {
		// The ledger mutation is confirmed but the local record could not be
		// written. The ledger remains the source of truth; the reconciler
		// replays the write later under the same ledger id.
		logger.ErrorWf(ctx, fmt.Errorf("failed to persist community: %w", err),
			zap.String("state", string(domain.SagaStateUnknown)),
			zap.String("ledger_id", ledgerID),
			zap.String("tx_hash", receipt.TxHash))
		return w.exitForReconciliation(ctx, req, receipt.TxHash, ledgerID, schema.ReasonPersistenceFailure, warnings)
	}

	event := &domain.CommunityCreatedEvent{
		LedgerID:  ledgerID,
		Name:      req.Name,
		Category:  req.Category,
		ChannelID: channelID,
		TxHash:    receipt.TxHash,
		CreatedAt: workflow.Now(ctx),
	}
	if err := workflow.ExecuteActivity(persistCtx, w.executor.PublishCommunityCreated, event).Get(persistCtx, nil); err != nil {
		logger.WarnWf(ctx, "Failed to publish community created event",
			zap.String("ledger_id", ledgerID),
			zap.Error(err))
		warnings = append(warnings, fmt.Sprintf("created event not published: %v", err))
	}

	logger.InfoWf(ctx, "Community creation saga completed",
		zap.String("state", string(domain.SagaStateCompleted)),
		zap.String("ledger_id", ledgerID),
		zap.Uint64("community_id", community.ID))

	return &domain.CreationOutcome{
		Status:      domain.StatusCompleted,
		LedgerID:    ledgerID,
		TxHash:      receipt.TxHash,
		CommunityID: community.ID,
		Warnings:    warnings,
	}, nil
}

// exitForReconciliation enqueues a durable reconciliation task for a saga run
// whose ledger and local state may have diverged, then reports the ambiguous
// outcome to the caller. Losing the enqueue as well fails the workflow so the
// divergence is at least visible in Temporal.
func (w *workerCore) exitForReconciliation(
	ctx workflow.Context,
	req domain.CreationRequest,
	txHash string,
	ledgerID string,
	reason schema.ReconciliationReason,
	warnings []string,
) (*domain.CreationOutcome, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal creation request: %w", err)
	}

	task := &schema.ReconciliationTask{
		ID:       ulid.MustNewDefault(workflow.Now(ctx)).String(),
		TxHash:   txHash,
		LedgerID: ledgerID,
		Reason:   reason,
		Request:  payload,
		Status:   schema.ReconciliationStatusPending,
	}

	enqueueOptions := workflow.ActivityOptions{
		StartToCloseTimeout: w.config.PersistenceTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 5,
			InitialInterval: time.Second,
		},
	}
	enqueueCtx := workflow.WithActivityOptions(ctx, enqueueOptions)

	if err := workflow.ExecuteActivity(enqueueCtx, w.executor.EnqueueReconciliationTask, task).Get(enqueueCtx, nil); err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("failed to enqueue reconciliation task: %w", err),
			zap.String("tx_hash", txHash),
			zap.String("reason", string(reason)))
		return nil, err
	}

	return &domain.CreationOutcome{
		Status:   domain.StatusReconciliationRequired,
		LedgerID: ledgerID,
		TxHash:   txHash,
		Warnings: append(warnings, fmt.Sprintf("reconciliation required: %s", reason)),
	}, nil
}
