package schema

import (
	"time"

	"gorm.io/datatypes"
)

// ReconciliationStatus represents the status of a reconciliation task
type ReconciliationStatus string

const (
	// ReconciliationStatusPending is a task awaiting reconciliation
	ReconciliationStatusPending ReconciliationStatus = "pending"
	// ReconciliationStatusResolved is a task that was reconciled successfully
	ReconciliationStatusResolved ReconciliationStatus = "resolved"
	// ReconciliationStatusAbandoned is a task that exhausted its attempts and
	// needs manual operator intervention
	ReconciliationStatusAbandoned ReconciliationStatus = "abandoned"
)

// ReconciliationReason names why a saga run could not determine its outcome
type ReconciliationReason string

const (
	// ReasonConfirmationTimeout means the confirmation wait elapsed with the
	// transaction still pending; ledger state is unknown
	ReasonConfirmationTimeout ReconciliationReason = "confirmation_timeout"
	// ReasonPersistenceFailure means the ledger mutation is confirmed but the
	// local record could not be written
	ReasonPersistenceFailure ReconciliationReason = "persistence_failure"
)

// ReconciliationTask represents the reconciliation_tasks table: the durable
// queue of saga runs whose ledger and local state may have diverged
type ReconciliationTask struct {
	// ID is a ULID assigned when the task is enqueued
	ID string `gorm:"column:id;primaryKey"`
	// TxHash is the ledger transaction whose outcome is in question
	TxHash string `gorm:"column:tx_hash;not null;index"`
	// LedgerID is the decoded community id, when decoding already happened
	LedgerID string `gorm:"column:ledger_id"`
	// Reason classifies why reconciliation is required
	Reason ReconciliationReason `gorm:"column:reason;not null"`
	// Request is the original creation request (JSON), replayed on resolution
	Request datatypes.JSON `gorm:"column:request;not null"`
	// Status is the task status
	Status ReconciliationStatus `gorm:"column:status;not null;default:'pending';index"`
	// Attempts is the number of reconciliation attempts so far
	Attempts int `gorm:"column:attempts;not null;default:0"`
	// LastError is the most recent reconciliation failure
	LastError *string `gorm:"column:last_error"`
	// ResolvedAt is the timestamp when the task was resolved
	ResolvedAt *time.Time `gorm:"column:resolved_at"`
	// CreatedAt is the timestamp when the task was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp when the task was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName overrides the table name
func (ReconciliationTask) TableName() string {
	return "reconciliation_tasks"
}
