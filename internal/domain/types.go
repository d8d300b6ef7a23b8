package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Category represents the community category
type Category string

const (
	CategoryStandard    Category = "standard"
	CategoryCurated     Category = "curated"
	CategoryTechEnabled Category = "tech-enabled"
)

// IsValidCategory checks if a category is valid
func IsValidCategory(category Category) bool {
	return category == CategoryStandard ||
		category == CategoryCurated ||
		category == CategoryTechEnabled
}

// FeatureMode represents the AI feature mode for a community
type FeatureMode string

const (
	FeatureModeBasic    FeatureMode = "basic"
	FeatureModeAdvanced FeatureMode = "advanced"
)

// CreationRequest is the immutable input to the community creation saga.
// AdminIdentity is an opaque external identity (e.g. a wallet address); the
// saga does not validate its authenticity.
type CreationRequest struct {
	Name          string   `json:"name"`
	Destination   string   `json:"destination"`
	Category      Category `json:"category"`
	Capacity      int      `json:"capacity"`
	Description   string   `json:"description"`
	AdminIdentity string   `json:"admin_identity"`
}

// Validate checks the request before any ledger interaction
func (r *CreationRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidRequest)
	}
	if r.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidRequest, r.Capacity)
	}
	if !IsValidCategory(r.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidRequest, r.Category)
	}
	return nil
}

// RawEvent is a single event record emitted by a ledger transaction,
// captured in receipt order
type RawEvent struct {
	Emitter string   `json:"emitter"`
	Topics  []string `json:"topics"`
	Data    []byte   `json:"data"`
}

// LedgerReceipt is the durable result of a submitted ledger transaction.
// Produced once by the ledger client; immutable.
type LedgerReceipt struct {
	TxHash      string     `json:"tx_hash"`
	Confirmed   bool       `json:"confirmed"`
	BlockNumber uint64     `json:"block_number"`
	Events      []RawEvent `json:"events"`
}

// FeatureConfig holds the AI feature configuration for a community
type FeatureConfig struct {
	Enabled        bool        `json:"enabled"`
	Mode           FeatureMode `json:"mode"`
	WelcomeMessage string      `json:"welcome_message"`
}

// DefaultFeatureConfig is the degraded fallback used when feature
// initialization exhausts its retries
func DefaultFeatureConfig() FeatureConfig {
	return FeatureConfig{Enabled: false, Mode: FeatureModeBasic}
}

// ProvisioningResult aggregates the two independent side-effect outputs.
// The fields have no ordering relationship.
type ProvisioningResult struct {
	ChannelID     string        `json:"channel_id"`
	FeatureConfig FeatureConfig `json:"feature_config"`
}

// CreationStatus is the terminal status of one saga run
type CreationStatus string

const (
	// StatusCompleted means the ledger mutation is confirmed and the local
	// record is persisted (possibly with degraded side effects)
	StatusCompleted CreationStatus = "completed"
	// StatusReconciliationRequired means the ledger state is unknown or the
	// local record could not be written after a confirmed mutation; an
	// operator process must reconcile
	StatusReconciliationRequired CreationStatus = "reconciliation_required"
)

// SagaState names the orchestrator states for logging and diagnostics
type SagaState string

const (
	SagaStateReceived             SagaState = "received"
	SagaStateSubmitting           SagaState = "submitting"
	SagaStateAwaitingConfirmation SagaState = "awaiting_confirmation"
	SagaStateDecoding             SagaState = "decoding"
	SagaStateProvisioning         SagaState = "provisioning"
	SagaStatePersisting           SagaState = "persisting"
	SagaStateCompleted            SagaState = "completed"
	SagaStateFailed               SagaState = "failed"
	SagaStateUnknown              SagaState = "unknown"
)

// CreationOutcome is the orchestrator result returned to the caller
type CreationOutcome struct {
	Status      CreationStatus `json:"status"`
	LedgerID    string         `json:"ledger_id,omitempty"`
	TxHash      string         `json:"tx_hash,omitempty"`
	CommunityID uint64         `json:"community_id,omitempty"`
	Warnings    []string       `json:"warnings,omitempty"`
}

// CommunityCreatedEvent is published to the message broker after a
// community record is persisted
type CommunityCreatedEvent struct {
	LedgerID  string    `json:"ledger_id"`
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
	ChannelID string    `json:"channel_id,omitempty"`
	TxHash    string    `json:"tx_hash"`
	CreatedAt time.Time `json:"created_at"`
}

// TagsForCategory derives the community tags from its category.
// The mapping is deterministic and exhaustive.
func TagsForCategory(category Category) []string {
	switch category {
	case CategoryCurated:
		return []string{"Verified", "Safe"}
	case CategoryTechEnabled:
		return []string{"AI-Optimized", "Tech-Enabled"}
	default:
		return []string{"Crypto", "Smart Contracts"}
	}
}

// FeatureModeForCategory derives the AI feature mode from the category
func FeatureModeForCategory(category Category) FeatureMode {
	if category == CategoryTechEnabled {
		return FeatureModeAdvanced
	}
	return FeatureModeBasic
}

// ChannelSlug normalizes a community name into a chat channel slug
func ChannelSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "_")
	return slug
}

// ErrorType returns the saga taxonomy name for a classified error, or an
// empty string when the error is not part of the taxonomy. The names double
// as Temporal application error types so activity retry policies can mark
// terminal failures non-retryable.
func ErrorType(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return ErrTypeValidation
	case errors.Is(err, ErrLedgerNotConfigured):
		return ErrTypeConfiguration
	case errors.Is(err, ErrTransactionReverted):
		return ErrTypeTransactionRejected
	case errors.Is(err, ErrConfirmationTimeout):
		return ErrTypeConfirmationTimeout
	case errors.Is(err, ErrEventNotFound):
		return ErrTypeEventNotFound
	default:
		return ""
	}
}
