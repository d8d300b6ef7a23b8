package rest

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/travelmate/community-hub/internal/api/shared/constants"
)

// ListCommunitiesQueryParams holds query parameters for GET /communities
type ListCommunitiesQueryParams struct {
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`
}

// ParseListCommunitiesQuery parses query parameters for GET /communities
func ParseListCommunitiesQuery(c *gin.Context) (*ListCommunitiesQueryParams, error) {
	var params ListCommunitiesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit > constants.MAX_COMMUNITIES_LIMIT {
		params.Limit = constants.MAX_COMMUNITIES_LIMIT
	}

	return &params, nil
}

// Validate checks the parsed query parameters
func (p *ListCommunitiesQueryParams) Validate() error {
	if p.Limit <= 0 {
		return errors.New("limit must be a positive integer")
	}
	return nil
}
