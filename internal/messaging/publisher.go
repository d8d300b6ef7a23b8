package messaging

import (
	"context"

	"github.com/travelmate/community-hub/internal/domain"
)

// Publisher defines the interface for publishing community lifecycle events
// to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishCommunityCreated publishes a community created event
	PublishCommunityCreated(ctx context.Context, event *domain.CommunityCreatedEvent) error
	// Close closes the connection
	Close()
}
