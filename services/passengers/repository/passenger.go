package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/uberdeluxe/passenger-service/internal/pkg/models"
	"github.com/uberdeluxe/passenger-service/services/passengers"
)

// PassengerRepo implements passengers.PassengerRepo on PostgreSQL
type PassengerRepo struct {
	db  *sqlx.DB
	cfg *models.Config
}

// NewPassengerRepo creates a new passenger repository
func NewPassengerRepo(cfg *models.Config, db *sqlx.DB) *PassengerRepo {
	return &PassengerRepo{
		db:  db,
		cfg: cfg,
	}
}

const passengerColumns = `id, first_name, last_name, email, password, phone, roles, created_at, updated_at`

func scanPassenger(row *sql.Row) (*models.Passenger, error) {
	var p models.Passenger
	err := row.Scan(
		&p.ID,
		&p.UserDetails.FirstName,
		&p.UserDetails.LastName,
		&p.UserDetails.Email,
		&p.UserDetails.Password,
		&p.UserDetails.Phone,
		&p.UserDetails.Roles,
		&p.UserDetails.CreatedAt,
		&p.UserDetails.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePassenger inserts a new passenger and returns it with the identifier
// assigned by the database
func (r *PassengerRepo) CreatePassenger(ctx context.Context, passenger *models.Passenger) (*models.Passenger, error) {
	query := `
		INSERT INTO passengers (first_name, last_name, email, password, phone, roles, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + passengerColumns

	row := r.db.QueryRowContext(ctx, query,
		passenger.UserDetails.FirstName,
		passenger.UserDetails.LastName,
		passenger.UserDetails.Email,
		passenger.UserDetails.Password,
		passenger.UserDetails.Phone,
		passenger.UserDetails.Roles,
		passenger.UserDetails.CreatedAt,
		passenger.UserDetails.UpdatedAt,
	)

	saved, err := scanPassenger(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert passenger: %w", err)
	}
	return saved, nil
}

// GetPassengerByID retrieves a passenger by id
func (r *PassengerRepo) GetPassengerByID(ctx context.Context, id int64) (*models.Passenger, error) {
	query := `SELECT ` + passengerColumns + ` FROM passengers WHERE id = $1`

	passenger, err := scanPassenger(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", passengers.ErrPassengerNotFound, id)
		}
		return nil, fmt.Errorf("failed to get passenger: %w", err)
	}
	return passenger, nil
}

// UpdatePassenger persists the full passenger record and returns the stored
// row so callers observe any normalization applied by the database
func (r *PassengerRepo) UpdatePassenger(ctx context.Context, passenger *models.Passenger) (*models.Passenger, error) {
	query := `
		UPDATE passengers
		SET first_name = $2, last_name = $3, email = $4, password = $5,
			phone = $6, roles = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + passengerColumns

	row := r.db.QueryRowContext(ctx, query,
		passenger.ID,
		passenger.UserDetails.FirstName,
		passenger.UserDetails.LastName,
		passenger.UserDetails.Email,
		passenger.UserDetails.Password,
		passenger.UserDetails.Phone,
		passenger.UserDetails.Roles,
	)

	saved, err := scanPassenger(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", passengers.ErrPassengerNotFound, passenger.ID)
		}
		return nil, fmt.Errorf("failed to update passenger: %w", err)
	}
	return saved, nil
}

// ListPassengers returns one page of passengers ordered by id, plus the total count
func (r *PassengerRepo) ListPassengers(ctx context.Context, offset, limit int) ([]models.Passenger, int64, error) {
	query := `SELECT ` + passengerColumns + ` FROM passengers ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list passengers: %w", err)
	}
	defer rows.Close()

	items := make([]models.Passenger, 0, limit)
	for rows.Next() {
		var p models.Passenger
		err := rows.Scan(
			&p.ID,
			&p.UserDetails.FirstName,
			&p.UserDetails.LastName,
			&p.UserDetails.Email,
			&p.UserDetails.Password,
			&p.UserDetails.Phone,
			&p.UserDetails.Roles,
			&p.UserDetails.CreatedAt,
			&p.UserDetails.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan passenger: %w", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate passengers: %w", err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM passengers`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count passengers: %w", err)
	}

	return items, total, nil
}

// DeletePassenger removes a passenger by id. Removing an unknown id is a no-op.
func (r *PassengerRepo) DeletePassenger(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM passengers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete passenger: %w", err)
	}
	return nil
}
