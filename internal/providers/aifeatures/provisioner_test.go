package aifeatures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelmate/community-hub/internal/domain"
)

func TestInitializeFeatureConfig(t *testing.T) {
	p := NewProvisioner()

	config, err := p.InitializeFeatureConfig(context.Background(), domain.CategoryStandard)
	require.NoError(t, err)
	assert.True(t, config.Enabled)
	assert.Equal(t, domain.FeatureModeBasic, config.Mode)
	assert.Equal(t, WelcomeMessage, config.WelcomeMessage)
}

func TestInitializeFeatureConfig_TechEnabledGetsAdvancedMode(t *testing.T) {
	p := NewProvisioner()

	config, err := p.InitializeFeatureConfig(context.Background(), domain.CategoryTechEnabled)
	require.NoError(t, err)
	assert.Equal(t, domain.FeatureModeAdvanced, config.Mode)
}

func TestInitializeFeatureConfig_Deterministic(t *testing.T) {
	p := NewProvisioner()

	first, err := p.InitializeFeatureConfig(context.Background(), domain.CategoryCurated)
	require.NoError(t, err)

	second, err := p.InitializeFeatureConfig(context.Background(), domain.CategoryCurated)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestInitializeFeatureConfig_CanceledContext(t *testing.T) {
	p := NewProvisioner()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.InitializeFeatureConfig(ctx, domain.CategoryStandard)
	assert.ErrorIs(t, err, context.Canceled)
}
