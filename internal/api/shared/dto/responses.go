package dto

import (
	"time"

	"github.com/travelmate/community-hub/internal/domain"
)

// CommunityResponse is the API representation of a community
type CommunityResponse struct {
	ID            uint64                `json:"id"`
	LedgerID      string                `json:"ledger_id"`
	Name          string                `json:"name"`
	Destination   string                `json:"destination,omitempty"`
	Category      domain.Category       `json:"category"`
	Capacity      int                   `json:"capacity"`
	Description   string                `json:"description,omitempty"`
	AdminIdentity string                `json:"admin_identity,omitempty"`
	ChannelID     string                `json:"channel_id,omitempty"`
	FeatureConfig *domain.FeatureConfig `json:"feature_config,omitempty"`
	Tags          []string              `json:"tags"`
	MemberCount   int                   `json:"member_count"`
	PooledFunds   string                `json:"pooled_funds"`
	Verified      bool                  `json:"verified"`
	CreatedAt     time.Time             `json:"created_at"`
}

// CommunityListResponse is the paginated list of communities
type CommunityListResponse struct {
	Communities []CommunityResponse `json:"communities"`
	Offset      *uint64             `json:"offset,omitempty"`
	Total       int64               `json:"total"`
}

// CreateCommunityResponse is the outcome of a creation saga run
type CreateCommunityResponse struct {
	Status    domain.CreationStatus `json:"status"`
	LedgerID  string                `json:"ledger_id,omitempty"`
	TxHash    string                `json:"tx_hash,omitempty"`
	Warnings  []string              `json:"warnings,omitempty"`
	Community *CommunityResponse    `json:"community,omitempty"`
}

// JoinCommunityResponse is the result of a join request
type JoinCommunityResponse struct {
	Community CommunityResponse `json:"community"`
}

// HealthResponse is the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
