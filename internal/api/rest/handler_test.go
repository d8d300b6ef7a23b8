package rest_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/travelmate/community-hub/internal/api/rest"
	"github.com/travelmate/community-hub/internal/api/shared/dto"
	apierrors "github.com/travelmate/community-hub/internal/api/shared/errors"
	"github.com/travelmate/community-hub/internal/domain"
	"github.com/travelmate/community-hub/internal/logger"
	"github.com/travelmate/community-hub/internal/mocks"
)

type HandlerTestSuite struct {
	suite.Suite

	ctrl     *gomock.Controller
	executor *mocks.MockAPIExecutor
	router   *gin.Engine
}

// SetupTest is called before each test
func (s *HandlerTestSuite) SetupTest() {
	_ = logger.Initialize(logger.Config{
		Debug: true,
	})

	gin.SetMode(gin.TestMode)

	s.ctrl = gomock.NewController(s.T())
	s.executor = mocks.NewMockAPIExecutor(s.ctrl)
	handler := rest.NewHandler(s.executor)

	// Routes are wired without the auth middleware so the tests exercise
	// handler behavior only.
	s.router = gin.New()
	s.router.GET("/health", handler.HealthCheck)
	s.router.GET("/api/v1/communities", handler.ListCommunities)
	s.router.GET("/api/v1/communities/:ledger_id", handler.GetCommunity)
	s.router.POST("/api/v1/communities", handler.CreateCommunity)
	s.router.POST("/api/v1/communities/:ledger_id/join", handler.JoinCommunity)
}

// TearDownTest is called after each test
func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) serve(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func validCreateRequest() dto.CreateCommunityRequest {
	return dto.CreateCommunityRequest{
		Name:          "Delhi Explorers",
		Destination:   "Delhi",
		Category:      "standard",
		Capacity:      50,
		AdminIdentity: "admin-123",
	}
}

// TestCreateCommunity_Completed tests a successful creation run
func (s *HandlerTestSuite) TestCreateCommunity_Completed() {
	reqBody := validCreateRequest()

	s.executor.EXPECT().
		CreateCommunity(gomock.Any(), reqBody.ToDomain()).
		Return(&dto.CreateCommunityResponse{
			Status:   domain.StatusCompleted,
			LedgerID: "42",
			TxHash:   "0xabc123",
		}, nil)

	w := s.serve(http.MethodPost, "/api/v1/communities", reqBody)

	s.Equal(http.StatusCreated, w.Code)

	var response dto.CreateCommunityResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(domain.StatusCompleted, response.Status)
	s.Equal("42", response.LedgerID)
}

// TestCreateCommunity_ReconciliationRequiredIsAccepted tests that an
// ambiguous ledger outcome is reported as 202 rather than an error
func (s *HandlerTestSuite) TestCreateCommunity_ReconciliationRequiredIsAccepted() {
	reqBody := validCreateRequest()

	s.executor.EXPECT().
		CreateCommunity(gomock.Any(), gomock.Any()).
		Return(&dto.CreateCommunityResponse{
			Status: domain.StatusReconciliationRequired,
			TxHash: "0xdeadbeef",
		}, nil)

	w := s.serve(http.MethodPost, "/api/v1/communities", reqBody)

	s.Equal(http.StatusAccepted, w.Code)

	var response dto.CreateCommunityResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(domain.StatusReconciliationRequired, response.Status)
	s.Equal("0xdeadbeef", response.TxHash)
}

// TestCreateCommunity_InvalidBody tests that a malformed body is rejected
// before the executor is called
func (s *HandlerTestSuite) TestCreateCommunity_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/communities", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
}

// TestCreateCommunity_ValidationFailure tests request body validation
func (s *HandlerTestSuite) TestCreateCommunity_ValidationFailure() {
	reqBody := validCreateRequest()
	reqBody.Capacity = 0

	w := s.serve(http.MethodPost, "/api/v1/communities", reqBody)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "capacity")
}

// TestCreateCommunity_LedgerErrorIsBadGateway tests the mapping of a ledger
// failure to an upstream error status
func (s *HandlerTestSuite) TestCreateCommunity_LedgerErrorIsBadGateway() {
	s.executor.EXPECT().
		CreateCommunity(gomock.Any(), gomock.Any()).
		Return(nil, apierrors.NewLedgerError("Ledger transaction rejected"))

	w := s.serve(http.MethodPost, "/api/v1/communities", validCreateRequest())

	s.Equal(http.StatusBadGateway, w.Code)
}

// TestListCommunities tests pagination parameter parsing
func (s *HandlerTestSuite) TestListCommunities() {
	limit := 5
	offset := uint64(10)

	s.executor.EXPECT().
		ListCommunities(gomock.Any(), &limit, &offset).
		Return(&dto.CommunityListResponse{
			Communities: []dto.CommunityResponse{
				{LedgerID: "42", Name: "Delhi Explorers"},
			},
			Total: 11,
		}, nil)

	w := s.serve(http.MethodGet, "/api/v1/communities?limit=5&offset=10", nil)

	s.Equal(http.StatusOK, w.Code)

	var response dto.CommunityListResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Len(response.Communities, 1)
	s.Equal(int64(11), response.Total)
}

// TestListCommunities_DefaultsApplied tests the default limit and offset
func (s *HandlerTestSuite) TestListCommunities_DefaultsApplied() {
	limit := 20
	offset := uint64(0)

	s.executor.EXPECT().
		ListCommunities(gomock.Any(), &limit, &offset).
		Return(&dto.CommunityListResponse{Total: 0}, nil)

	w := s.serve(http.MethodGet, "/api/v1/communities", nil)

	s.Equal(http.StatusOK, w.Code)
}

// TestListCommunities_InvalidLimit tests rejection of a non-positive limit
func (s *HandlerTestSuite) TestListCommunities_InvalidLimit() {
	w := s.serve(http.MethodGet, "/api/v1/communities?limit=-1", nil)

	s.Equal(http.StatusBadRequest, w.Code)
}

// TestGetCommunity tests retrieving a single community by its ledger id
func (s *HandlerTestSuite) TestGetCommunity() {
	s.executor.EXPECT().
		GetCommunity(gomock.Any(), "42").
		Return(&dto.CommunityResponse{
			LedgerID: "42",
			Name:     "Delhi Explorers",
			Category: domain.CategoryStandard,
		}, nil)

	w := s.serve(http.MethodGet, "/api/v1/communities/42", nil)

	s.Equal(http.StatusOK, w.Code)

	var response dto.CommunityResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("42", response.LedgerID)
}

// TestGetCommunity_NotFound tests the 404 response for an unknown community
func (s *HandlerTestSuite) TestGetCommunity_NotFound() {
	s.executor.EXPECT().
		GetCommunity(gomock.Any(), "999").
		Return(nil, nil)

	w := s.serve(http.MethodGet, "/api/v1/communities/999", nil)

	s.Equal(http.StatusNotFound, w.Code)
}

// TestJoinCommunity tests adding a member
func (s *HandlerTestSuite) TestJoinCommunity() {
	s.executor.EXPECT().
		JoinCommunity(gomock.Any(), "42", "member-7").
		Return(&dto.JoinCommunityResponse{
			Community: dto.CommunityResponse{
				LedgerID:    "42",
				MemberCount: 2,
			},
		}, nil)

	w := s.serve(http.MethodPost, "/api/v1/communities/42/join", dto.JoinCommunityRequest{
		MemberIdentity: "member-7",
	})

	s.Equal(http.StatusOK, w.Code)

	var response dto.JoinCommunityResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(2, response.Community.MemberCount)
}

// TestJoinCommunity_MissingIdentity tests request body validation
func (s *HandlerTestSuite) TestJoinCommunity_MissingIdentity() {
	w := s.serve(http.MethodPost, "/api/v1/communities/42/join", dto.JoinCommunityRequest{
		MemberIdentity: "   ",
	})

	s.Equal(http.StatusBadRequest, w.Code)
}

// TestJoinCommunity_FullIsConflict tests the capacity conflict mapping
func (s *HandlerTestSuite) TestJoinCommunity_FullIsConflict() {
	s.executor.EXPECT().
		JoinCommunity(gomock.Any(), "42", "member-7").
		Return(nil, apierrors.NewConflictError("Community is at capacity"))

	w := s.serve(http.MethodPost, "/api/v1/communities/42/join", dto.JoinCommunityRequest{
		MemberIdentity: "member-7",
	})

	s.Equal(http.StatusConflict, w.Code)
}

// TestJoinCommunity_UnknownCommunity tests the 404 mapping
func (s *HandlerTestSuite) TestJoinCommunity_UnknownCommunity() {
	s.executor.EXPECT().
		JoinCommunity(gomock.Any(), "999", "member-7").
		Return(nil, apierrors.NewNotFoundError("Community not found"))

	w := s.serve(http.MethodPost, "/api/v1/communities/999/join", dto.JoinCommunityRequest{
		MemberIdentity: "member-7",
	})

	s.Equal(http.StatusNotFound, w.Code)
}

// TestHealthCheck tests the health endpoint
func (s *HandlerTestSuite) TestHealthCheck() {
	w := s.serve(http.MethodGet, "/health", nil)

	s.Equal(http.StatusOK, w.Code)

	var response dto.HealthResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("ok", response.Status)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
