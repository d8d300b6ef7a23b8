package workflows

import (
	"time"

	"go.temporal.io/sdk/workflow"

	"github.com/travelmate/community-hub/internal/domain"
)

// WorkerCore defines the interface for orchestrating community creation
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockCoreWorker
type WorkerCore interface {
	// CreateCommunity runs the community creation saga: submit the ledger
	// transaction, decode the community id, provision side effects and
	// persist the record
	CreateCommunity(ctx workflow.Context, req domain.CreationRequest) (*domain.CreationOutcome, error)
}

type WorkerCoreConfig struct {
	// SubmissionTimeout bounds the submit-and-confirm activity. It must
	// exceed the ledger client's confirmation timeout so the activity can
	// report an ambiguous outcome instead of being cut off mid-wait.
	SubmissionTimeout time.Duration
	// ProvisioningTimeout bounds each side-effect provisioning activity
	ProvisioningTimeout time.Duration
	// PersistenceTimeout bounds each store activity
	PersistenceTimeout time.Duration
}

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	config   WorkerCoreConfig
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor, config WorkerCoreConfig) WorkerCore {
	if config.SubmissionTimeout == 0 {
		config.SubmissionTimeout = 3 * time.Minute
	}
	if config.ProvisioningTimeout == 0 {
		config.ProvisioningTimeout = 30 * time.Second
	}
	if config.PersistenceTimeout == 0 {
		config.PersistenceTimeout = 30 * time.Second
	}

	return &workerCore{
		executor: executor,
		config:   config,
	}
}
