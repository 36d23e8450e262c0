package passengers

import (
	"context"

	"github.com/uberdeluxe/passenger-service/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/uberdeluxe/passenger-service/services/passengers PassengerGW

// PassengerGW defines the passenger gateways interface
type PassengerGW interface {
	// Distance-matrix provider
	GetTravelEstimate(ctx context.Context, origin, destination models.Location) (*models.DistanceMatrixElement, error)

	// NATS Gateway
	PublishPassengerRegistered(ctx context.Context, event *models.PassengerRegisteredEvent) error
	PublishRideQuoted(ctx context.Context, event *models.RideQuotedEvent) error
}
