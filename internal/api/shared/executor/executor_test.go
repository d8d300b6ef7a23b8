package executor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"
	sdktemporal "go.temporal.io/sdk/temporal"
	"gorm.io/datatypes"

	"github.com/travelmate/community-hub/internal/api/shared/executor"
	apierrors "github.com/travelmate/community-hub/internal/api/shared/errors"
	"github.com/travelmate/community-hub/internal/domain"
	"github.com/travelmate/community-hub/internal/logger"
	"github.com/travelmate/community-hub/internal/mocks"
	"github.com/travelmate/community-hub/internal/store/schema"
)

// fakeWorkflowRun is a minimal client.WorkflowRun carrying a fixed outcome
type fakeWorkflowRun struct {
	outcome *domain.CreationOutcome
	err     error
}

func (f *fakeWorkflowRun) GetID() string    { return "create-community-test" }
func (f *fakeWorkflowRun) GetRunID() string { return "run-1" }

func (f *fakeWorkflowRun) Get(ctx context.Context, valuePtr interface{}) error {
	if f.err != nil {
		return f.err
	}
	*(valuePtr.(**domain.CreationOutcome)) = f.outcome
	return nil
}

func (f *fakeWorkflowRun) GetWithOptions(ctx context.Context, valuePtr interface{}, options client.WorkflowRunGetOptions) error {
	return f.Get(ctx, valuePtr)
}

type testExecutorMocks struct {
	ctrl         *gomock.Controller
	store        *mocks.MockStore
	orchestrator *mocks.MockTemporalOrchestrator
	executor     executor.Executor
}

func setupTestExecutor(t *testing.T) *testExecutorMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)

	tm := &testExecutorMocks{
		ctrl:         ctrl,
		store:        mocks.NewMockStore(ctrl),
		orchestrator: mocks.NewMockTemporalOrchestrator(ctrl),
	}
	tm.executor = executor.NewExecutor(tm.store, tm.orchestrator, "community-creation", time.Minute)

	return tm
}

func validRequest() domain.CreationRequest {
	return domain.CreationRequest{
		Name:          "Delhi Explorers",
		Destination:   "Delhi",
		Category:      domain.CategoryStandard,
		Capacity:      50,
		AdminIdentity: "admin-123",
	}
}

func storedCommunity() *schema.Community {
	return &schema.Community{
		ID:            7,
		LedgerID:      "42",
		Name:          "Delhi Explorers",
		Category:      domain.CategoryStandard,
		Capacity:      50,
		MemberCount:   1,
		PooledFunds:   "0 ETH",
		FeatureConfig: datatypes.JSON(`{"enabled":true,"mode":"basic","welcome_message":"welcome"}`),
		Tags:          datatypes.JSON(`["Crypto","Smart Contracts"]`),
		CreatedAt:     time.Now().UTC(),
	}
}

func TestCreateCommunity_Completed(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	req := validRequest()

	tm.orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), req).
		DoAndReturn(func(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error) {
			assert.Contains(t, options.ID, "create-community-")
			assert.Equal(t, "community-creation", options.TaskQueue)
			assert.Equal(t, time.Minute, options.WorkflowExecutionTimeout)
			return &fakeWorkflowRun{
				outcome: &domain.CreationOutcome{
					Status:      domain.StatusCompleted,
					LedgerID:    "42",
					TxHash:      "0xabc123",
					CommunityID: 7,
				},
			}, nil
		})

	tm.store.EXPECT().
		GetCommunityByLedgerID(gomock.Any(), "42").
		Return(storedCommunity(), nil)

	response, err := tm.executor.CreateCommunity(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, response.Status)
	assert.Equal(t, "42", response.LedgerID)
	assert.Equal(t, "0xabc123", response.TxHash)
	require.NotNil(t, response.Community)
	assert.Equal(t, "Delhi Explorers", response.Community.Name)
}

func TestCreateCommunity_InvalidRequestSkipsWorkflow(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	req := validRequest()
	req.Capacity = 0

	_, err := tm.executor.CreateCommunity(context.Background(), req)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.ErrCodeValidationFailed, apiErr.Code)
}

func TestCreateCommunity_ReconciliationRequired(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&fakeWorkflowRun{
			outcome: &domain.CreationOutcome{
				Status: domain.StatusReconciliationRequired,
				TxHash: "0xdeadbeef",
			},
		}, nil)

	// No community lookup happens for an ambiguous outcome
	response, err := tm.executor.CreateCommunity(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReconciliationRequired, response.Status)
	assert.Equal(t, "0xdeadbeef", response.TxHash)
	assert.Nil(t, response.Community)
}

func TestCreateCommunity_WorkflowErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name         string
		errorType    string
		expectedCode apierrors.ErrorCode
	}{
		{"validation", domain.ErrTypeValidation, apierrors.ErrCodeValidationFailed},
		{"configuration", domain.ErrTypeConfiguration, apierrors.ErrCodeServiceError},
		{"transaction rejected", domain.ErrTypeTransactionRejected, apierrors.ErrCodeLedgerError},
		{"event not found", domain.ErrTypeEventNotFound, apierrors.ErrCodeLedgerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestExecutor(t)
			defer tm.ctrl.Finish()

			wfErr := sdktemporal.NewNonRetryableApplicationError("saga failed", tt.errorType, nil)
			tm.orchestrator.EXPECT().
				ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(&fakeWorkflowRun{err: wfErr}, nil)

			_, err := tm.executor.CreateCommunity(context.Background(), validRequest())

			var apiErr *apierrors.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.expectedCode, apiErr.Code)
		})
	}
}

func TestCreateCommunity_StartFailure(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("task queue unreachable"))

	_, err := tm.executor.CreateCommunity(context.Background(), validRequest())

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.ErrCodeServiceError, apiErr.Code)
}

func TestCreateCommunity_CompletedWithUnreadableRecord(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&fakeWorkflowRun{
			outcome: &domain.CreationOutcome{
				Status:   domain.StatusCompleted,
				LedgerID: "42",
			},
		}, nil)

	tm.store.EXPECT().
		GetCommunityByLedgerID(gomock.Any(), "42").
		Return(nil, errors.New("connection reset"))

	// The saga completed; a read-back failure degrades the response, it
	// does not fail the request
	response, err := tm.executor.CreateCommunity(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, response.Status)
	assert.Nil(t, response.Community)
}

func TestListCommunities(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	limit := 2
	offset := uint64(0)

	tm.store.EXPECT().
		ListCommunities(gomock.Any(), 2, uint64(0)).
		Return([]schema.Community{*storedCommunity(), *storedCommunity()}, int64(5), nil)

	response, err := tm.executor.ListCommunities(context.Background(), &limit, &offset)
	require.NoError(t, err)
	assert.Len(t, response.Communities, 2)
	assert.Equal(t, int64(5), response.Total)

	// More rows remain, so the next offset is exposed
	require.NotNil(t, response.Offset)
	assert.Equal(t, uint64(2), *response.Offset)
}

func TestListCommunities_DefaultsAndLastPage(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().
		ListCommunities(gomock.Any(), 20, uint64(0)).
		Return([]schema.Community{*storedCommunity()}, int64(1), nil)

	response, err := tm.executor.ListCommunities(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Len(t, response.Communities, 1)
	assert.Nil(t, response.Offset)
}

func TestGetCommunity(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().
		GetCommunityByLedgerID(gomock.Any(), "42").
		Return(storedCommunity(), nil)

	community, err := tm.executor.GetCommunity(context.Background(), "42")
	require.NoError(t, err)
	require.NotNil(t, community)
	assert.Equal(t, "42", community.LedgerID)
	assert.Equal(t, []string{"Crypto", "Smart Contracts"}, community.Tags)
}

func TestGetCommunity_NotFound(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().
		GetCommunityByLedgerID(gomock.Any(), "999").
		Return(nil, domain.ErrCommunityNotFound)

	community, err := tm.executor.GetCommunity(context.Background(), "999")
	require.NoError(t, err)
	assert.Nil(t, community)
}

func TestJoinCommunity(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	joined := storedCommunity()
	joined.MemberCount = 2

	tm.store.EXPECT().
		AddCommunityMember(gomock.Any(), "42", "member-7").
		Return(joined, nil)

	response, err := tm.executor.JoinCommunity(context.Background(), "42", "member-7")
	require.NoError(t, err)
	assert.Equal(t, 2, response.Community.MemberCount)
}

func TestJoinCommunity_ErrorMapping(t *testing.T) {
	tests := []struct {
		name         string
		storeErr     error
		expectedCode apierrors.ErrorCode
	}{
		{"not found", domain.ErrCommunityNotFound, apierrors.ErrCodeNotFound},
		{"full", domain.ErrCommunityFull, apierrors.ErrCodeConflict},
		{"other", errors.New("connection reset"), apierrors.ErrCodeDatabaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestExecutor(t)
			defer tm.ctrl.Finish()

			tm.store.EXPECT().
				AddCommunityMember(gomock.Any(), "42", "member-7").
				Return(nil, tt.storeErr)

			_, err := tm.executor.JoinCommunity(context.Background(), "42", "member-7")

			var apiErr *apierrors.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.expectedCode, apiErr.Code)
		})
	}
}
