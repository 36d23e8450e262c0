package gateway_nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/uberdeluxe/passenger-service/internal/pkg/constants"
	"github.com/uberdeluxe/passenger-service/internal/pkg/logger"
	"github.com/uberdeluxe/passenger-service/internal/pkg/models"
	natspkg "github.com/uberdeluxe/passenger-service/internal/pkg/nats"
)

// NATSGateway implements the NATS publishing operations for the passenger service
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// PublishPassengerRegistered publishes a passenger registration event
func (g *NATSGateway) PublishPassengerRegistered(ctx context.Context, event *models.PassengerRegisteredEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal passenger registered event: %w", err)
	}

	if err := g.client.Publish(constants.SubjectPassengerRegistered, data); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish passenger registered event",
			logger.Int64("passenger_id", event.PassengerID),
			logger.Err(err))
		return fmt.Errorf("failed to publish passenger registered event: %w", err)
	}

	logger.InfoCtx(ctx, "Published passenger registered event",
		logger.Int64("passenger_id", event.PassengerID))

	return nil
}

// PublishRideQuoted publishes a ride quote event
func (g *NATSGateway) PublishRideQuoted(ctx context.Context, event *models.RideQuotedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal ride quoted event: %w", err)
	}

	if err := g.client.Publish(constants.SubjectRideQuoted, data); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish ride quoted event",
			logger.Int64("passenger_id", event.PassengerID),
			logger.Err(err))
		return fmt.Errorf("failed to publish ride quoted event: %w", err)
	}

	logger.InfoCtx(ctx, "Published ride quoted event",
		logger.Int64("passenger_id", event.PassengerID))

	return nil
}
