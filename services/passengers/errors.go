package passengers

import "errors"

var (
	// ErrPassengerNotFound is returned when the referenced passenger id does not exist
	ErrPassengerNotFound = errors.New("passenger not found")
	// ErrProviderUnavailable is returned when the distance-matrix call fails at the transport layer
	ErrProviderUnavailable = errors.New("distance provider unavailable")
	// ErrUnprocessableResponse is returned when the provider response is empty or malformed
	ErrUnprocessableResponse = errors.New("unprocessable distance provider response")
	// ErrPatchApply is returned when the partial-update document cannot be applied
	ErrPatchApply = errors.New("failed to apply patch document")
	// ErrInvalidPatchedRecord is returned when the patched document does not map back to a valid passenger
	ErrInvalidPatchedRecord = errors.New("patch produced an invalid record")
)
