package workflows

import (
	"context"
	"errors"

	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/travelmate/community-hub/internal/domain"
	"github.com/travelmate/community-hub/internal/logger"
	"github.com/travelmate/community-hub/internal/messaging"
	"github.com/travelmate/community-hub/internal/providers/aifeatures"
	"github.com/travelmate/community-hub/internal/providers/chat"
	"github.com/travelmate/community-hub/internal/providers/ledger"
	"github.com/travelmate/community-hub/internal/store"
	"github.com/travelmate/community-hub/internal/store/schema"
)

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor_core.go -package=mocks -mock_names=Executor=MockCoreExecutor
type Executor interface {
	// SubmitCreateCommunity submits the createCommunity transaction and
	// waits for confirmation. On confirmation timeout it returns an
	// unconfirmed receipt carrying the tx hash instead of an error, so the
	// workflow can record the ambiguous transaction for reconciliation.
	SubmitCreateCommunity(ctx context.Context, req domain.CreationRequest) (*domain.LedgerReceipt, error)

	// DecodeCommunityID extracts the community id from a confirmed receipt
	DecodeCommunityID(ctx context.Context, receipt *domain.LedgerReceipt) (string, error)

	// ProvisionChatChannel creates the chat channel for a community name
	ProvisionChatChannel(ctx context.Context, communityName string) (string, error)

	// InitializeFeatureConfig builds the AI feature configuration for a
	// community category
	InitializeFeatureConfig(ctx context.Context, category domain.Category) (*domain.FeatureConfig, error)

	// UpsertCommunity writes the community record keyed by ledger id
	UpsertCommunity(ctx context.Context, input store.UpsertCommunityInput) (*schema.Community, error)

	// EnqueueReconciliationTask durably records an ambiguous saga exit
	EnqueueReconciliationTask(ctx context.Context, task *schema.ReconciliationTask) error

	// PublishCommunityCreated publishes the community created event to the
	// message broker
	PublishCommunityCreated(ctx context.Context, event *domain.CommunityCreatedEvent) error
}

// executor is the concrete implementation of Executor
type executor struct {
	ledgerClient ledger.Client
	decoder      *ledger.Decoder
	chat         chat.Provisioner
	features     aifeatures.Provisioner
	store        store.Store
	publisher    messaging.Publisher
}

// NewExecutor creates a new executor instance
func NewExecutor(
	ledgerClient ledger.Client,
	decoder *ledger.Decoder,
	chatProvisioner chat.Provisioner,
	featureProvisioner aifeatures.Provisioner,
	st store.Store,
	publisher messaging.Publisher,
) Executor {
	return &executor{
		ledgerClient: ledgerClient,
		decoder:      decoder,
		chat:         chatProvisioner,
		features:     featureProvisioner,
		store:        st,
		publisher:    publisher,
	}
}

// SubmitCreateCommunity submits the createCommunity transaction and waits for
// confirmation
func (e *executor) SubmitCreateCommunity(ctx context.Context, req domain.CreationRequest) (*domain.LedgerReceipt, error) {
	logger.InfoCtx(ctx, "Submitting community creation transaction",
		zap.String("name", req.Name),
		zap.Int("capacity", req.Capacity))

	receipt, err := e.ledgerClient.SubmitCreateCommunity(ctx, req.Name, int64(req.Capacity))
	if err != nil {
		if errors.Is(err, domain.ErrConfirmationTimeout) && receipt != nil {
			// The transaction may still land on the ledger. Surface the
			// unconfirmed receipt so the workflow can enqueue reconciliation
			// instead of retrying the submission.
			logger.WarnCtx(ctx, "Confirmation timed out, returning unconfirmed receipt",
				zap.String("tx_hash", receipt.TxHash))
			return receipt, nil
		}
		return nil, classifyError(err)
	}

	logger.InfoCtx(ctx, "Transaction confirmed",
		zap.String("tx_hash", receipt.TxHash),
		zap.Uint64("block_number", receipt.BlockNumber))

	return receipt, nil
}

// DecodeCommunityID extracts the community id from a confirmed receipt
func (e *executor) DecodeCommunityID(ctx context.Context, receipt *domain.LedgerReceipt) (string, error) {
	ledgerID, err := e.decoder.DecodeCommunityID(receipt)
	if err != nil {
		return "", classifyError(err)
	}

	logger.InfoCtx(ctx, "Decoded community id from receipt",
		zap.String("ledger_id", ledgerID),
		zap.String("tx_hash", receipt.TxHash))

	return ledgerID, nil
}

// ProvisionChatChannel creates the chat channel for a community name
func (e *executor) ProvisionChatChannel(ctx context.Context, communityName string) (string, error) {
	channelID, err := e.chat.ProvisionChannel(ctx, communityName)
	if err != nil {
		return "", err
	}

	logger.InfoCtx(ctx, "Chat channel provisioned", zap.String("channel_id", channelID))

	return channelID, nil
}

// InitializeFeatureConfig builds the AI feature configuration for a category
func (e *executor) InitializeFeatureConfig(ctx context.Context, category domain.Category) (*domain.FeatureConfig, error) {
	return e.features.InitializeFeatureConfig(ctx, category)
}

// UpsertCommunity writes the community record keyed by ledger id. The
// factory contract address is stamped here: it is deployment configuration
// the workflow must not observe directly.
func (e *executor) UpsertCommunity(ctx context.Context, input store.UpsertCommunityInput) (*schema.Community, error) {
	input.ContractAddress = e.ledgerClient.ContractAddress()

	community, err := e.store.UpsertCommunityByLedgerID(ctx, input)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Community record persisted",
		zap.String("ledger_id", input.LedgerID),
		zap.Uint64("community_id", community.ID))

	return community, nil
}

// EnqueueReconciliationTask durably records an ambiguous saga exit
func (e *executor) EnqueueReconciliationTask(ctx context.Context, task *schema.ReconciliationTask) error {
	if err := e.store.EnqueueReconciliationTask(ctx, task); err != nil {
		return err
	}

	logger.WarnCtx(ctx, "Reconciliation task enqueued",
		zap.String("task_id", task.ID),
		zap.String("tx_hash", task.TxHash),
		zap.String("reason", string(task.Reason)))

	return nil
}

// PublishCommunityCreated publishes the community created event
func (e *executor) PublishCommunityCreated(ctx context.Context, event *domain.CommunityCreatedEvent) error {
	return e.publisher.PublishCommunityCreated(ctx, event)
}

// classifyError converts terminal domain errors into non-retryable Temporal
// application errors typed with the taxonomy name. Unclassified errors pass
// through and stay retryable.
func classifyError(err error) error {
	if errType := domain.ErrorType(err); errType != "" {
		return temporal.NewNonRetryableApplicationError(err.Error(), errType, err)
	}
	return err
}
