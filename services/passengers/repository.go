package passengers

import (
	"context"

	"github.com/uberdeluxe/passenger-service/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/uberdeluxe/passenger-service/services/passengers PassengerRepo

// PassengerRepo defines the persistence operations for passengers
type PassengerRepo interface {
	CreatePassenger(ctx context.Context, passenger *models.Passenger) (*models.Passenger, error)
	GetPassengerByID(ctx context.Context, id int64) (*models.Passenger, error)
	UpdatePassenger(ctx context.Context, passenger *models.Passenger) (*models.Passenger, error)
	ListPassengers(ctx context.Context, offset, limit int) ([]models.Passenger, int64, error)
	DeletePassenger(ctx context.Context, id int64) error
}
