package chat

import (
	"context"
	"fmt"
	"sync"

	"github.com/travelmate/community-hub/internal/adapter"
	"github.com/travelmate/community-hub/internal/domain"
)

// Provisioner provisions real-time chat channels for communities. It is
// modeled as a remote capability with its own latency and failure profile.
//
//go:generate mockgen -source=provisioner.go -destination=../../mocks/chat_provisioner.go -package=mocks -mock_names=Provisioner=MockChatProvisioner
type Provisioner interface {
	// ProvisionChannel generates or retrieves the channel id for a community
	// name. Calling it twice for the same name returns the same id.
	ProvisionChannel(ctx context.Context, communityName string) (string, error)
}

type provisioner struct {
	clock adapter.Clock

	mu       sync.Mutex
	channels map[string]string
}

// NewProvisioner creates a chat channel provisioner
func NewProvisioner(clock adapter.Clock) Provisioner {
	return &provisioner{
		clock:    clock,
		channels: make(map[string]string),
	}
}

// ProvisionChannel returns the channel id for a community name, creating it
// on first use. The id embeds the provisioning time, so retrieval rather
// than regeneration is what keeps replays stable.
func (p *provisioner) ProvisionChannel(ctx context.Context, communityName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	slug := domain.ChannelSlug(communityName)
	if slug == "" {
		return "", fmt.Errorf("cannot derive channel slug from name %q", communityName)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if id, ok := p.channels[slug]; ok {
		return id, nil
	}

	id := fmt.Sprintf("chat_%s_%d", slug, p.clock.Now().UnixMilli())
	p.channels[slug] = id
	return id, nil
}
