package dto

import (
	"encoding/json"

	"github.com/travelmate/community-hub/internal/domain"
	"github.com/travelmate/community-hub/internal/store/schema"
)

// MapCommunityToDTO converts a community record into its API representation
func MapCommunityToDTO(community *schema.Community) *CommunityResponse {
	response := &CommunityResponse{
		ID:            community.ID,
		LedgerID:      community.LedgerID,
		Name:          community.Name,
		Destination:   community.Destination,
		Category:      community.Category,
		Capacity:      community.Capacity,
		Description:   community.Description,
		AdminIdentity: community.AdminIdentity,
		ChannelID:     community.ChannelID,
		MemberCount:   community.MemberCount,
		PooledFunds:   community.PooledFunds,
		Verified:      community.Verified,
		CreatedAt:     community.CreatedAt,
	}

	if len(community.FeatureConfig) > 0 {
		var featureConfig domain.FeatureConfig
		if err := json.Unmarshal(community.FeatureConfig, &featureConfig); err == nil {
			response.FeatureConfig = &featureConfig
		}
	}

	if len(community.Tags) > 0 {
		var tags []string
		if err := json.Unmarshal(community.Tags, &tags); err == nil {
			response.Tags = tags
		}
	}

	return response
}
