package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/travelmate/community-hub/internal/api/shared/dto"
	"github.com/travelmate/community-hub/internal/api/shared/executor"
	"github.com/travelmate/community-hub/internal/domain"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CreateCommunity runs the community creation saga and reports its outcome
	// POST /api/v1/communities
	CreateCommunity(c *gin.Context)

	// ListCommunities retrieves communities ordered by creation time descending
	// GET /api/v1/communities?limit=<limit>&offset=<offset>
	ListCommunities(c *gin.Context)

	// GetCommunity retrieves a single community by its ledger id
	// GET /api/v1/communities/:ledger_id
	GetCommunity(c *gin.Context)

	// JoinCommunity adds a member to a community
	// POST /api/v1/communities/:ledger_id/join
	JoinCommunity(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// CreateCommunity runs the community creation saga synchronously and reports
// its outcome. An ambiguous outcome is reported as 202: the request was
// accepted and the ledger transaction may still complete, pending
// reconciliation. Only a definite failure is an error status.
func (h *handler) CreateCommunity(c *gin.Context) {
	var req dto.CreateCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.CreateCommunity(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondAPIError(c, err, "Failed to create community")
		return
	}

	if response.Status == domain.StatusReconciliationRequired {
		c.JSON(http.StatusAccepted, response)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListCommunities retrieves communities with pagination
func (h *handler) ListCommunities(c *gin.Context) {
	queryParams, err := ParseListCommunitiesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	limit := &queryParams.Limit
	offset := &queryParams.Offset

	response, err := h.executor.ListCommunities(c.Request.Context(), limit, offset)
	if err != nil {
		respondAPIError(c, err, "Failed to list communities")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetCommunity retrieves a single community by its ledger id
func (h *handler) GetCommunity(c *gin.Context) {
	ledgerID := c.Param("ledger_id")
	if ledgerID == "" {
		respondBadRequest(c, "Ledger id is required")
		return
	}

	communityDTO, err := h.executor.GetCommunity(c.Request.Context(), ledgerID)
	if err != nil {
		respondAPIError(c, err, "Failed to get community")
		return
	}

	if communityDTO == nil {
		respondNotFound(c, "Community not found")
		return
	}

	c.JSON(http.StatusOK, communityDTO)
}

// JoinCommunity adds a member to a community
func (h *handler) JoinCommunity(c *gin.Context) {
	ledgerID := c.Param("ledger_id")
	if ledgerID == "" {
		respondBadRequest(c, "Ledger id is required")
		return
	}

	var req dto.JoinCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.JoinCommunity(c.Request.Context(), ledgerID, req.MemberIdentity)
	if err != nil {
		respondAPIError(c, err, "Failed to join community")
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Service: "community-hub-api",
	})
}
