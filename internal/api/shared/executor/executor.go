package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	sdktemporal "go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/travelmate/community-hub/internal/api/shared/constants"
	"github.com/travelmate/community-hub/internal/api/shared/dto"
	apierrors "github.com/travelmate/community-hub/internal/api/shared/errors"
	"github.com/travelmate/community-hub/internal/domain"
	"github.com/travelmate/community-hub/internal/logger"
	"github.com/travelmate/community-hub/internal/providers/temporal"
	"github.com/travelmate/community-hub/internal/store"
	"github.com/travelmate/community-hub/internal/workflows"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// CreateCommunity runs the community creation saga to completion and
	// returns its outcome. A reconciliation_required outcome is a valid
	// result, not an error.
	CreateCommunity(ctx context.Context, req domain.CreationRequest) (*dto.CreateCommunityResponse, error)

	// ListCommunities retrieves communities ordered by creation time descending
	ListCommunities(ctx context.Context, limit *int, offset *uint64) (*dto.CommunityListResponse, error)

	// GetCommunity retrieves a single community by its ledger id
	GetCommunity(ctx context.Context, ledgerID string) (*dto.CommunityResponse, error)

	// JoinCommunity adds a member to a community. Idempotent per member.
	JoinCommunity(ctx context.Context, ledgerID string, memberIdentity string) (*dto.JoinCommunityResponse, error)
}

type executor struct {
	store                 store.Store
	orchestrator          temporal.TemporalOrchestrator
	orchestratorTaskQueue string
	creationTimeout       time.Duration
}

func NewExecutor(store store.Store, orchestrator temporal.TemporalOrchestrator, orchestratorTaskQueue string, creationTimeout time.Duration) Executor {
	if creationTimeout == 0 {
		creationTimeout = 5 * time.Minute
	}
	return &executor{
		store:                 store,
		orchestrator:          orchestrator,
		orchestratorTaskQueue: orchestratorTaskQueue,
		creationTimeout:       creationTimeout,
	}
}

func (e *executor) CreateCommunity(ctx context.Context, req domain.CreationRequest) (*dto.CreateCommunityResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	w := workflows.NewWorkerCore(nil, workflows.WorkerCoreConfig{})
	options := client.StartWorkflowOptions{
		ID:                       fmt.Sprintf("create-community-%s", uuid.NewString()),
		TaskQueue:                e.orchestratorTaskQueue,
		WorkflowExecutionTimeout: e.creationTimeout,
		WorkflowIDReusePolicy:    enums.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE,
	}

	wfRun, err := e.orchestrator.ExecuteWorkflow(ctx, options, w.CreateCommunity, req)
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to start community creation: %v", err))
	}

	var outcome *domain.CreationOutcome
	if err := wfRun.Get(ctx, &outcome); err != nil {
		return nil, mapWorkflowError(err)
	}

	response := &dto.CreateCommunityResponse{
		Status:   outcome.Status,
		LedgerID: outcome.LedgerID,
		TxHash:   outcome.TxHash,
		Warnings: outcome.Warnings,
	}

	if outcome.Status == domain.StatusCompleted && outcome.LedgerID != "" {
		community, err := e.store.GetCommunityByLedgerID(ctx, outcome.LedgerID)
		if err != nil {
			// The saga completed; failing to read the record back is not
			// a creation failure
			logger.WarnCtx(ctx, "Failed to load created community",
				zap.String("ledger_id", outcome.LedgerID),
				zap.Error(err))
		} else {
			response.Community = dto.MapCommunityToDTO(community)
		}
	}

	return response, nil
}

func (e *executor) ListCommunities(ctx context.Context, limit *int, offset *uint64) (*dto.CommunityListResponse, error) {
	if limit == nil {
		defaultLimit := constants.DEFAULT_COMMUNITIES_LIMIT
		limit = &defaultLimit
	}
	if offset == nil {
		defaultOffset := constants.DEFAULT_OFFSET
		offset = &defaultOffset
	}

	communities, total, err := e.store.ListCommunities(ctx, *limit, *offset)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list communities: %v", err))
	}

	communityDTOs := make([]dto.CommunityResponse, len(communities))
	for i := range communities {
		communityDTOs[i] = *dto.MapCommunityToDTO(&communities[i])
	}

	var nextOffset *uint64
	if *offset+uint64(len(communities)) < uint64(total) { //nolint:gosec,G115
		offsetVal := *offset + uint64(len(communities))
		nextOffset = &offsetVal
	}

	return &dto.CommunityListResponse{
		Communities: communityDTOs,
		Offset:      nextOffset,
		Total:       total,
	}, nil
}

func (e *executor) GetCommunity(ctx context.Context, ledgerID string) (*dto.CommunityResponse, error) {
	community, err := e.store.GetCommunityByLedgerID(ctx, ledgerID)
	if err != nil {
		if errors.Is(err, domain.ErrCommunityNotFound) {
			return nil, nil
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get community: %v", err))
	}

	return dto.MapCommunityToDTO(community), nil
}

func (e *executor) JoinCommunity(ctx context.Context, ledgerID string, memberIdentity string) (*dto.JoinCommunityResponse, error) {
	community, err := e.store.AddCommunityMember(ctx, ledgerID, memberIdentity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCommunityNotFound):
			return nil, apierrors.NewNotFoundError("Community not found", ledgerID)
		case errors.Is(err, domain.ErrCommunityFull):
			return nil, apierrors.NewConflictError("Community is at capacity", err.Error())
		default:
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to join community: %v", err))
		}
	}

	return &dto.JoinCommunityResponse{
		Community: *dto.MapCommunityToDTO(community),
	}, nil
}

// mapWorkflowError converts a failed workflow run into an API error using the
// saga error taxonomy carried in the Temporal application error type
func mapWorkflowError(err error) *apierrors.APIError {
	var appErr *sdktemporal.ApplicationError
	if errors.As(err, &appErr) {
		switch appErr.Type() {
		case domain.ErrTypeValidation:
			return apierrors.NewValidationError(appErr.Message())
		case domain.ErrTypeConfiguration:
			return apierrors.NewServiceError("Ledger client misconfigured", appErr.Message())
		case domain.ErrTypeTransactionRejected:
			return apierrors.NewLedgerError("Transaction rejected by the ledger", appErr.Message())
		case domain.ErrTypeEventNotFound:
			return apierrors.NewLedgerError("Creation event missing from confirmed transaction", appErr.Message())
		}
	}
	return apierrors.NewServiceError(fmt.Sprintf("Community creation failed: %v", err))
}
