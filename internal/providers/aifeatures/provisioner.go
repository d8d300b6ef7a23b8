package aifeatures

import (
	"context"

	"github.com/travelmate/community-hub/internal/domain"
)

// WelcomeMessage is the default greeting configured for new communities
const WelcomeMessage = "Welcome to your AI-powered travel community!"

// Provisioner initializes the AI feature configuration for a community.
// The minimal implementation is a pure function of the category, but the
// interface models a fallible remote call so a hosted configuration service
// can be swapped in.
//
//go:generate mockgen -source=provisioner.go -destination=../../mocks/aifeatures_provisioner.go -package=mocks -mock_names=Provisioner=MockFeatureProvisioner
type Provisioner interface {
	// InitializeFeatureConfig returns the feature configuration for a
	// category. Deterministic; safe to retry.
	InitializeFeatureConfig(ctx context.Context, category domain.Category) (*domain.FeatureConfig, error)
}

type provisioner struct{}

// NewProvisioner creates an AI feature provisioner
func NewProvisioner() Provisioner {
	return &provisioner{}
}

func (p *provisioner) InitializeFeatureConfig(ctx context.Context, category domain.Category) (*domain.FeatureConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &domain.FeatureConfig{
		Enabled:        true,
		Mode:           domain.FeatureModeForCategory(category),
		WelcomeMessage: WelcomeMessage,
	}, nil
}
