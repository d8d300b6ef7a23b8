package dto

import (
	"errors"
	"strings"

	"github.com/travelmate/community-hub/internal/domain"
)

// CreateCommunityRequest is the request body for POST /api/v1/communities
type CreateCommunityRequest struct {
	Name          string `json:"name"`
	Destination   string `json:"destination"`
	Category      string `json:"category"`
	Capacity      int    `json:"capacity"`
	Description   string `json:"description"`
	AdminIdentity string `json:"admin_identity"`
}

// Validate checks the request body
func (r *CreateCommunityRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if r.Capacity <= 0 {
		return errors.New("capacity must be a positive integer")
	}
	if !domain.IsValidCategory(domain.Category(r.Category)) {
		return errors.New("category must be one of: standard, curated, tech-enabled")
	}
	return nil
}

// ToDomain converts the request body into a domain creation request
func (r *CreateCommunityRequest) ToDomain() domain.CreationRequest {
	return domain.CreationRequest{
		Name:          r.Name,
		Destination:   r.Destination,
		Category:      domain.Category(r.Category),
		Capacity:      r.Capacity,
		Description:   r.Description,
		AdminIdentity: r.AdminIdentity,
	}
}

// JoinCommunityRequest is the request body for POST /api/v1/communities/:ledger_id/join
type JoinCommunityRequest struct {
	MemberIdentity string `json:"member_identity"`
}

// Validate checks the request body
func (r *JoinCommunityRequest) Validate() error {
	if strings.TrimSpace(r.MemberIdentity) == "" {
		return errors.New("member_identity is required")
	}
	return nil
}
