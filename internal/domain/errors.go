package domain

import "errors"

var (
	// ErrInvalidRequest is returned when a creation request fails validation;
	// the caller must correct the input
	ErrInvalidRequest = errors.New("invalid creation request")

	// ErrLedgerNotConfigured is returned when the signer, contract address or
	// RPC endpoint is missing; fatal, never retried
	ErrLedgerNotConfigured = errors.New("ledger client not configured")

	// ErrTransactionReverted is returned when the ledger rejected or reverted
	// the transaction; the mutation did not happen
	ErrTransactionReverted = errors.New("transaction reverted")

	// ErrConfirmationTimeout is returned when the confirmation wait elapsed
	// with the transaction still pending. The mutation state is unknown and
	// must be reconciled; never treat this as "did not happen".
	ErrConfirmationTimeout = errors.New("timed out awaiting confirmation")

	// ErrEventNotFound is returned when a confirmed receipt contains no
	// CommunityCreated event; the external contract broke its side-effect
	// contract and the saga has no idempotency key to proceed with
	ErrEventNotFound = errors.New("community created event not found in receipt")

	// ErrCommunityNotFound is returned when a community is not found in the store
	ErrCommunityNotFound = errors.New("community not found")

	// ErrCommunityFull is returned when a join request would exceed the
	// community capacity
	ErrCommunityFull = errors.New("community is at capacity")
)

// Saga error taxonomy names, used as Temporal application error types
const (
	ErrTypeValidation          = "ValidationError"
	ErrTypeConfiguration       = "ConfigurationError"
	ErrTypeTransactionRejected = "TransactionRejected"
	ErrTypeConfirmationTimeout = "ConfirmationTimeout"
	ErrTypeEventNotFound       = "EventNotFound"
)
