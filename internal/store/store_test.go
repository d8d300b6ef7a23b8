package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/travelmate/community-hub/internal/domain"
	"github.com/travelmate/community-hub/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestCommunity creates a test community input
func buildTestCommunity(ledgerID, name string) UpsertCommunityInput {
	return UpsertCommunityInput{
		LedgerID:        ledgerID,
		Name:            name,
		Destination:     "Delhi",
		Category:        domain.CategoryStandard,
		Capacity:        3,
		Description:     "A community for exploring Delhi",
		AdminIdentity:   "admin-123",
		ContractAddress: "0x00000000000000000000000000000000000000CC",
		ChannelID:       "chat_delhi_explorers_1700000000000",
		FeatureConfig: domain.FeatureConfig{
			Enabled:        true,
			Mode:           domain.FeatureModeBasic,
			WelcomeMessage: "welcome",
		},
		Tags: []string{"Crypto", "Smart Contracts"},
	}
}

// buildTestTask creates a test reconciliation task
func buildTestTask(id, txHash string) *schema.ReconciliationTask {
	request, _ := json.Marshal(domain.CreationRequest{
		Name:     "Delhi Explorers",
		Category: domain.CategoryStandard,
		Capacity: 3,
	})
	return &schema.ReconciliationTask{
		ID:      id,
		TxHash:  txHash,
		Reason:  schema.ReasonConfirmationTimeout,
		Request: datatypes.JSON(request),
		Status:  schema.ReconciliationStatusPending,
	}
}

// =============================================================================
// Community Tests
// =============================================================================

func testUpsertCommunityByLedgerID(t *testing.T, s Store) {
	ctx := context.Background()

	input := buildTestCommunity("42", "Delhi Explorers")
	community, err := s.UpsertCommunityByLedgerID(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, community)

	assert.NotZero(t, community.ID)
	assert.Equal(t, "42", community.LedgerID)
	assert.Equal(t, "Delhi Explorers", community.Name)
	assert.Equal(t, domain.CategoryStandard, community.Category)
	assert.Equal(t, "0x00000000000000000000000000000000000000CC", community.ContractAddress)
	assert.Equal(t, 1, community.MemberCount)
	assert.Equal(t, "0 ETH", community.PooledFunds)

	var featureConfig domain.FeatureConfig
	require.NoError(t, json.Unmarshal(community.FeatureConfig, &featureConfig))
	assert.True(t, featureConfig.Enabled)

	var tags []string
	require.NoError(t, json.Unmarshal(community.Tags, &tags))
	assert.Equal(t, []string{"Crypto", "Smart Contracts"}, tags)
}

func testUpsertCommunityReplayConverges(t *testing.T, s Store) {
	ctx := context.Background()

	input := buildTestCommunity("42", "Delhi Explorers")
	first, err := s.UpsertCommunityByLedgerID(ctx, input)
	require.NoError(t, err)

	// Replaying the same ledger id must update in place, not duplicate
	input.Description = "Updated description"
	second, err := s.UpsertCommunityByLedgerID(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Updated description", second.Description)

	_, total, err := s.ListCommunities(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func testUpsertCommunityReplayPreservesMemberCount(t *testing.T, s Store) {
	ctx := context.Background()

	input := buildTestCommunity("42", "Delhi Explorers")
	_, err := s.UpsertCommunityByLedgerID(ctx, input)
	require.NoError(t, err)

	_, err = s.AddCommunityMember(ctx, "42", "member-7")
	require.NoError(t, err)

	// A replayed upsert must not reset the member count accumulated since
	// the first write
	replayed, err := s.UpsertCommunityByLedgerID(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 2, replayed.MemberCount)
}

func testGetCommunityByLedgerID(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.UpsertCommunityByLedgerID(ctx, buildTestCommunity("42", "Delhi Explorers"))
	require.NoError(t, err)

	community, err := s.GetCommunityByLedgerID(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "Delhi Explorers", community.Name)

	_, err = s.GetCommunityByLedgerID(ctx, "999")
	assert.ErrorIs(t, err, domain.ErrCommunityNotFound)
}

func testListCommunities(t *testing.T, s Store) {
	ctx := context.Background()

	for i := range 3 {
		input := buildTestCommunity(fmt.Sprintf("%d", i+1), fmt.Sprintf("Community %d", i+1))
		_, err := s.UpsertCommunityByLedgerID(ctx, input)
		require.NoError(t, err)
		// Distinct created_at values keep the ordering deterministic
		time.Sleep(5 * time.Millisecond)
	}

	communities, total, err := s.ListCommunities(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, communities, 2)

	// Newest first
	assert.Equal(t, "3", communities[0].LedgerID)
	assert.Equal(t, "2", communities[1].LedgerID)

	communities, total, err = s.ListCommunities(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, communities, 1)
	assert.Equal(t, "1", communities[0].LedgerID)
}

func testAddCommunityMember(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.UpsertCommunityByLedgerID(ctx, buildTestCommunity("42", "Delhi Explorers"))
	require.NoError(t, err)

	community, err := s.AddCommunityMember(ctx, "42", "member-7")
	require.NoError(t, err)
	assert.Equal(t, 2, community.MemberCount)

	_, err = s.AddCommunityMember(ctx, "999", "member-7")
	assert.ErrorIs(t, err, domain.ErrCommunityNotFound)
}

func testAddCommunityMemberIdempotent(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.UpsertCommunityByLedgerID(ctx, buildTestCommunity("42", "Delhi Explorers"))
	require.NoError(t, err)

	_, err = s.AddCommunityMember(ctx, "42", "member-7")
	require.NoError(t, err)

	// Joining twice must not inflate the member count
	community, err := s.AddCommunityMember(ctx, "42", "member-7")
	require.NoError(t, err)
	assert.Equal(t, 2, community.MemberCount)
}

func testAddCommunityMemberCapacity(t *testing.T, s Store) {
	ctx := context.Background()

	// Capacity 3 with the admin already counted
	_, err := s.UpsertCommunityByLedgerID(ctx, buildTestCommunity("42", "Delhi Explorers"))
	require.NoError(t, err)

	_, err = s.AddCommunityMember(ctx, "42", "member-1")
	require.NoError(t, err)
	community, err := s.AddCommunityMember(ctx, "42", "member-2")
	require.NoError(t, err)
	assert.Equal(t, 3, community.MemberCount)

	_, err = s.AddCommunityMember(ctx, "42", "member-3")
	assert.ErrorIs(t, err, domain.ErrCommunityFull)
}

// =============================================================================
// Reconciliation Task Tests
// =============================================================================

func testEnqueueReconciliationTask(t *testing.T, s Store) {
	ctx := context.Background()

	task := buildTestTask("01ARZ3NDEKTSV4RRFFQ69G5FAV", "0xabc123")
	require.NoError(t, s.EnqueueReconciliationTask(ctx, task))

	// Re-enqueueing the same task id is a no-op
	require.NoError(t, s.EnqueueReconciliationTask(ctx, buildTestTask("01ARZ3NDEKTSV4RRFFQ69G5FAV", "0xabc123")))

	tasks, err := s.ListPendingReconciliationTasks(ctx, 10)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "0xabc123", tasks[0].TxHash)
	assert.Equal(t, schema.ReasonConfirmationTimeout, tasks[0].Reason)

	var request domain.CreationRequest
	require.NoError(t, json.Unmarshal(tasks[0].Request, &request))
	assert.Equal(t, "Delhi Explorers", request.Name)
}

func testListPendingReconciliationTasksOldestFirst(t *testing.T, s Store) {
	ctx := context.Background()

	for i := range 3 {
		task := buildTestTask(fmt.Sprintf("task-%d", i+1), fmt.Sprintf("0xtx%d", i+1))
		require.NoError(t, s.EnqueueReconciliationTask(ctx, task))
		time.Sleep(5 * time.Millisecond)
	}

	tasks, err := s.ListPendingReconciliationTasks(ctx, 2)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "task-1", tasks[0].ID)
	assert.Equal(t, "task-2", tasks[1].ID)
}

func testResolveReconciliationTask(t *testing.T, s Store) {
	ctx := context.Background()

	require.NoError(t, s.EnqueueReconciliationTask(ctx, buildTestTask("task-1", "0xabc123")))
	require.NoError(t, s.ResolveReconciliationTask(ctx, "task-1", "42"))

	tasks, err := s.ListPendingReconciliationTasks(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func testRecordReconciliationAttempt(t *testing.T, s Store) {
	ctx := context.Background()

	require.NoError(t, s.EnqueueReconciliationTask(ctx, buildTestTask("task-1", "0xabc123")))

	attemptErr := errors.New("rpc unreachable")
	require.NoError(t, s.RecordReconciliationAttempt(ctx, "task-1", attemptErr, 3))

	// Below the attempt limit the task stays pending
	tasks, err := s.ListPendingReconciliationTasks(ctx, 10)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, 1, tasks[0].Attempts)
	require.NotNil(t, tasks[0].LastError)
	assert.Equal(t, "rpc unreachable", *tasks[0].LastError)

	// Reaching the limit abandons the task
	require.NoError(t, s.RecordReconciliationAttempt(ctx, "task-1", attemptErr, 3))
	require.NoError(t, s.RecordReconciliationAttempt(ctx, "task-1", attemptErr, 3))

	tasks, err = s.ListPendingReconciliationTasks(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

// RunStoreTests runs all store tests against a Store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"UpsertCommunityByLedgerID", testUpsertCommunityByLedgerID},
		{"UpsertCommunityReplayConverges", testUpsertCommunityReplayConverges},
		{"UpsertCommunityReplayPreservesMemberCount", testUpsertCommunityReplayPreservesMemberCount},
		{"GetCommunityByLedgerID", testGetCommunityByLedgerID},
		{"ListCommunities", testListCommunities},
		{"AddCommunityMember", testAddCommunityMember},
		{"AddCommunityMemberIdempotent", testAddCommunityMemberIdempotent},
		{"AddCommunityMemberCapacity", testAddCommunityMemberCapacity},
		{"EnqueueReconciliationTask", testEnqueueReconciliationTask},
		{"ListPendingReconciliationTasksOldestFirst", testListPendingReconciliationTasksOldestFirst},
		{"ResolveReconciliationTask", testResolveReconciliationTask},
		{"RecordReconciliationAttempt", testRecordReconciliationAttempt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
