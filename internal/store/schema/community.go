package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/travelmate/community-hub/internal/domain"
)

// Community represents the communities table. LedgerID is the natural key:
// it is assigned exactly once by the ledger and derived deterministically
// from the transaction receipt, which makes it the idempotency key for the
// whole creation saga.
type Community struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// LedgerID is the ledger-assigned community identifier (unique)
	LedgerID string `gorm:"column:ledger_id;not null;uniqueIndex"`
	// Name is the community name
	Name string `gorm:"column:name;not null"`
	// Destination is the travel destination
	Destination string `gorm:"column:destination"`
	// Category is the community category
	Category domain.Category `gorm:"column:category;not null"`
	// Capacity is the maximum number of members
	Capacity int `gorm:"column:capacity;not null"`
	// Description is the community description
	Description string `gorm:"column:description"`
	// AdminIdentity is the opaque external identity of the community admin
	AdminIdentity string `gorm:"column:admin_identity"`
	// ContractAddress is the factory contract that minted the ledger identity
	ContractAddress string `gorm:"column:contract_address"`
	// ChannelID is the provisioned chat channel id (empty when provisioning degraded)
	ChannelID string `gorm:"column:channel_id"`
	// FeatureConfig is the AI feature configuration (JSON)
	FeatureConfig datatypes.JSON `gorm:"column:feature_config"`
	// Tags are derived deterministically from the category (JSON array)
	Tags datatypes.JSON `gorm:"column:tags"`
	// MemberCount is the current number of members (the admin counts as one)
	MemberCount int `gorm:"column:member_count;not null;default:1"`
	// PooledFunds is the display value of pooled community funds
	PooledFunds string `gorm:"column:pooled_funds;not null;default:'0 ETH'"`
	// Verified marks operator-verified communities
	Verified bool `gorm:"column:verified;not null;default:false"`
	// CreatedAt is the timestamp when the record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp when the record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName overrides the table name
func (Community) TableName() string {
	return "communities"
}

// CommunityMember represents the community_members table. The composite
// unique index makes joining idempotent.
type CommunityMember struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CommunityID references the community
	CommunityID uint64 `gorm:"column:community_id;not null;uniqueIndex:idx_community_member"`
	// MemberIdentity is the member's opaque external identity
	MemberIdentity string `gorm:"column:member_identity;not null;uniqueIndex:idx_community_member"`
	// JoinedAt is the timestamp when the member joined
	JoinedAt time.Time `gorm:"column:joined_at;not null;default:now()"`
}

// TableName overrides the table name
func (CommunityMember) TableName() string {
	return "community_members"
}
