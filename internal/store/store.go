package store

import (
	"context"

	"github.com/travelmate/community-hub/internal/domain"
	"github.com/travelmate/community-hub/internal/store/schema"
)

// UpsertCommunityInput carries the assembled community record. All fields
// are derived deterministically from the confirmed receipt and the original
// request, so replays under the same LedgerID converge to the same row.
type UpsertCommunityInput struct {
	LedgerID        string
	Name            string
	Destination     string
	Category        domain.Category
	Capacity        int
	Description     string
	AdminIdentity   string
	ContractAddress string
	ChannelID       string
	FeatureConfig   domain.FeatureConfig
	Tags            []string
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// UpsertCommunityByLedgerID writes the community record keyed by its
	// ledger id. The write is an upsert: replaying the same ledger id
	// converges instead of duplicating.
	UpsertCommunityByLedgerID(ctx context.Context, input UpsertCommunityInput) (*schema.Community, error)

	// GetCommunityByLedgerID retrieves a community by its ledger id
	GetCommunityByLedgerID(ctx context.Context, ledgerID string) (*schema.Community, error)

	// ListCommunities retrieves communities ordered by creation time descending
	ListCommunities(ctx context.Context, limit int, offset uint64) ([]schema.Community, int64, error)

	// AddCommunityMember adds a member to a community. Idempotent: joining
	// twice leaves one membership row and does not inflate the member count.
	AddCommunityMember(ctx context.Context, ledgerID string, memberIdentity string) (*schema.Community, error)

	// EnqueueReconciliationTask durably records a saga run whose ledger and
	// local state may have diverged
	EnqueueReconciliationTask(ctx context.Context, task *schema.ReconciliationTask) error

	// ListPendingReconciliationTasks retrieves pending tasks, oldest first
	ListPendingReconciliationTasks(ctx context.Context, limit int) ([]schema.ReconciliationTask, error)

	// ResolveReconciliationTask marks a task resolved
	ResolveReconciliationTask(ctx context.Context, taskID string, ledgerID string) error

	// RecordReconciliationAttempt increments a task's attempt counter and
	// stores the failure; tasks that reach maxAttempts are abandoned
	RecordReconciliationAttempt(ctx context.Context, taskID string, attemptErr error, maxAttempts int) error
}
