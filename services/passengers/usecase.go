package passengers

import (
	"context"
	"encoding/json"

	"github.com/uberdeluxe/passenger-service/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/uberdeluxe/passenger-service/services/passengers PassengerUC

// PassengerUC represents the passenger usecase interface
type PassengerUC interface {
	Register(ctx context.Context, req *models.RegisterPassengerRequest) (*models.RegisterResponse, error)
	GetPassengerByID(ctx context.Context, id int64) (*models.Passenger, error)
	UpdatePassenger(ctx context.Context, id int64, patchDoc json.RawMessage) (*models.Passenger, error)
	ListPassengers(ctx context.Context, pageNumber int) (*models.PassengerPage, error)
	DeletePassenger(ctx context.Context, id int64) error

	// handle ride quote
	BookRide(ctx context.Context, req *models.BookRideRequest) (*models.RideQuote, error)
}
