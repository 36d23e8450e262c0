package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uberdeluxe/passenger-service/internal/pkg/logger"
	"github.com/uberdeluxe/passenger-service/internal/pkg/models"
	"github.com/uberdeluxe/passenger-service/internal/utils"
)

// BookRide produces a fare quote for a trip between two locations. The
// passenger is resolved first so an unknown id never costs an external call.
func (u *PassengerUC) BookRide(ctx context.Context, req *models.BookRideRequest) (*models.RideQuote, error) {
	if _, err := u.passengerRepo.GetPassengerByID(ctx, req.PassengerID); err != nil {
		return nil, err
	}

	element, err := u.passengerGW.GetTravelEstimate(ctx, req.Origin, req.Destination)
	if err != nil {
		return nil, err
	}

	fare, err := utils.CalculateRideFare(element.Distance.Text, u.ratePerKm)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate fare: %w", err)
	}

	quote := &models.RideQuote{
		Fare: fare,
		// The provider's duration text is passed through verbatim; downstream
		// consumers expect its locale and format
		EstimatedTimeOfArrival: element.Duration.Text,
	}

	event := &models.RideQuotedEvent{
		EventID:     uuid.NewString(),
		PassengerID: req.PassengerID,
		Origin:      req.Origin.String(),
		Destination: req.Destination.String(),
		Fare:        quote.Fare,
		ETA:         quote.EstimatedTimeOfArrival,
		QuotedAt:    time.Now().UTC(),
	}
	if err := u.passengerGW.PublishRideQuoted(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish ride quoted event",
			logger.Int64("passenger_id", req.PassengerID),
			logger.Err(err))
	}

	return quote, nil
}
