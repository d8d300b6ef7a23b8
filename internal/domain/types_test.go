package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreationRequestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(r *CreationRequest)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(r *CreationRequest) {},
		},
		{
			name:    "empty name",
			mutate:  func(r *CreationRequest) { r.Name = "" },
			wantErr: true,
		},
		{
			name:    "whitespace name",
			mutate:  func(r *CreationRequest) { r.Name = "   " },
			wantErr: true,
		},
		{
			name:    "zero capacity",
			mutate:  func(r *CreationRequest) { r.Capacity = 0 },
			wantErr: true,
		},
		{
			name:    "negative capacity",
			mutate:  func(r *CreationRequest) { r.Capacity = -3 },
			wantErr: true,
		},
		{
			name:    "unknown category",
			mutate:  func(r *CreationRequest) { r.Category = "premium" },
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := CreationRequest{
				Name:     "Delhi Explorers",
				Category: CategoryStandard,
				Capacity: 50,
			}
			tc.mutate(&req)

			err := req.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRequest)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTagsForCategory(t *testing.T) {
	assert.Equal(t, []string{"Verified", "Safe"}, TagsForCategory(CategoryCurated))
	assert.Equal(t, []string{"AI-Optimized", "Tech-Enabled"}, TagsForCategory(CategoryTechEnabled))
	assert.Equal(t, []string{"Crypto", "Smart Contracts"}, TagsForCategory(CategoryStandard))
}

func TestFeatureModeForCategory(t *testing.T) {
	assert.Equal(t, FeatureModeAdvanced, FeatureModeForCategory(CategoryTechEnabled))
	assert.Equal(t, FeatureModeBasic, FeatureModeForCategory(CategoryStandard))
	assert.Equal(t, FeatureModeBasic, FeatureModeForCategory(CategoryCurated))
}

func TestChannelSlug(t *testing.T) {
	assert.Equal(t, "delhi_explorers", ChannelSlug("Delhi Explorers"))
	assert.Equal(t, "delhi_explorers", ChannelSlug("  Delhi   Explorers  "))
	assert.Equal(t, "tokyo", ChannelSlug("Tokyo"))
}

func TestDefaultFeatureConfig(t *testing.T) {
	config := DefaultFeatureConfig()
	assert.False(t, config.Enabled)
	assert.Equal(t, FeatureModeBasic, config.Mode)
}

func TestErrorType(t *testing.T) {
	testCases := []struct {
		err  error
		want string
	}{
		{ErrInvalidRequest, ErrTypeValidation},
		{ErrLedgerNotConfigured, ErrTypeConfiguration},
		{ErrTransactionReverted, ErrTypeTransactionRejected},
		{ErrConfirmationTimeout, ErrTypeConfirmationTimeout},
		{ErrEventNotFound, ErrTypeEventNotFound},
		{fmt.Errorf("wrapped: %w", ErrTransactionReverted), ErrTypeTransactionRejected},
		{errors.New("connection reset"), ""},
		{nil, ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, ErrorType(tc.err))
	}
}
