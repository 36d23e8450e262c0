package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/uberdeluxe/passenger-service/internal/pkg/logger"
	"github.com/uberdeluxe/passenger-service/internal/pkg/models"
	"github.com/uberdeluxe/passenger-service/services/passengers"
)

// UpdatePassenger applies an RFC 6902 patch document to the stored passenger
// record through a JSON tree round-trip. The apply is all-or-nothing: nothing
// is persisted unless the whole document applies and the result maps back to
// a valid passenger with an unchanged identifier.
func (u *PassengerUC) UpdatePassenger(ctx context.Context, id int64, patchDoc json.RawMessage) (*models.Passenger, error) {
	current, err := u.passengerRepo.GetPassengerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tree, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize passenger: %w", err)
	}

	patch, err := jsonpatch.DecodePatch(patchDoc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", passengers.ErrPatchApply, err)
	}

	patched, err := patch.Apply(tree)
	if err != nil {
		logger.WarnCtx(ctx, "Patch application failed",
			logger.Int64("passenger_id", id),
			logger.Err(err))
		return nil, fmt.Errorf("%w: %v", passengers.ErrPatchApply, err)
	}

	updated, err := decodePatchedPassenger(patched)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", passengers.ErrInvalidPatchedRecord, err)
	}
	if updated.ID != current.ID {
		return nil, fmt.Errorf("%w: passenger id is immutable", passengers.ErrInvalidPatchedRecord)
	}

	saved, err := u.passengerRepo.UpdatePassenger(ctx, updated)
	if err != nil {
		return nil, fmt.Errorf("failed to save patched passenger: %w", err)
	}

	return saved, nil
}

// decodePatchedPassenger maps the patched JSON tree back into a typed record.
// Unknown fields and type mismatches are rejected so a structurally
// incompatible patch cannot produce a silently truncated record.
func decodePatchedPassenger(data []byte) (*models.Passenger, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var passenger models.Passenger
	if err := decoder.Decode(&passenger); err != nil {
		return nil, err
	}
	if err := passenger.Validate(); err != nil {
		return nil, err
	}
	return &passenger, nil
}
