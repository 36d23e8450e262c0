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

// Register creates a new passenger from a registration request. The passenger
// role is fixed at creation and the password is stored bcrypt-encoded.
func (u *PassengerUC) Register(ctx context.Context, req *models.RegisterPassengerRequest) (*models.RegisterResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("registration request cannot be nil")
	}
	if req.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if req.FirstName == "" {
		return nil, fmt.Errorf("first name is required")
	}
	if req.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	passenger := &models.Passenger{
		UserDetails: models.AppUser{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  hashed,
			Phone:     req.Phone,
			Roles:     models.Roles{models.RolePassenger},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	saved, err := u.passengerRepo.CreatePassenger(ctx, passenger)
	if err != nil {
		return nil, fmt.Errorf("failed to create passenger: %w", err)
	}

	event := &models.PassengerRegisteredEvent{
		EventID:      uuid.NewString(),
		PassengerID:  saved.ID,
		Email:        saved.UserDetails.Email,
		RegisteredAt: now,
	}
	if err := u.passengerGW.PublishPassengerRegistered(ctx, event); err != nil {
		// Event delivery is best-effort; registration already succeeded
		logger.WarnCtx(ctx, "Failed to publish passenger registered event",
			logger.Int64("passenger_id", saved.ID),
			logger.Err(err))
	}

	return &models.RegisterResponse{
		ID:      saved.ID,
		Success: true,
		Message: "User Registration Successful",
	}, nil
}

// GetPassengerByID returns the passenger with the given id
func (u *PassengerUC) GetPassengerByID(ctx context.Context, id int64) (*models.Passenger, error) {
	return u.passengerRepo.GetPassengerByID(ctx, id)
}

// ListPassengers returns one page of passengers. Page numbers are 1-based;
// values below 1 resolve to the first page.
func (u *PassengerUC) ListPassengers(ctx context.Context, pageNumber int) (*models.PassengerPage, error) {
	if pageNumber < 1 {
		pageNumber = 1
	}

	pageSize := u.cfg.Pagination.PageSize
	offset := (pageNumber - 1) * pageSize

	items, total, err := u.passengerRepo.ListPassengers(ctx, offset, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list passengers: %w", err)
	}

	return &models.PassengerPage{
		Passengers: items,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalCount: total,
	}, nil
}

// DeletePassenger removes a passenger by id. Deleting an unknown id is not an error.
func (u *PassengerUC) DeletePassenger(ctx context.Context, id int64) error {
	return u.passengerRepo.DeletePassenger(ctx, id)
}
