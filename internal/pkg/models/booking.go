package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Location identifies a point as a human-readable address
type Location struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// String joins the non-empty parts of the location the way the distance-matrix
// provider expects them
func (l Location) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.Address, l.City, l.State} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// BookRideRequest is the payload for a ride quote. It is never persisted.
type BookRideRequest struct {
	PassengerID int64    `json:"passengerId"`
	Origin      Location `json:"origin"`
	Destination Location `json:"destination"`
}

// RideQuote is the fare estimate returned for a booking request
type RideQuote struct {
	Fare                   decimal.Decimal `json:"fare"`
	EstimatedTimeOfArrival string          `json:"estimatedTimeOfArrival"`
}

// TextValue mirrors the provider's {text, value} pairs
type TextValue struct {
	Text  string `json:"text"`
	Value int64  `json:"value"`
}

// DistanceMatrixElement is the provider result for one origin/destination pair
type DistanceMatrixElement struct {
	Distance TextValue `json:"distance"`
	Duration TextValue `json:"duration"`
	Status   string    `json:"status"`
}

// DistanceMatrixRow is one row of the provider's result matrix
type DistanceMatrixRow struct {
	Elements []DistanceMatrixElement `json:"elements"`
}

// DistanceMatrixResponse is the provider's top-level response shape
type DistanceMatrixResponse struct {
	Rows   []DistanceMatrixRow `json:"rows"`
	Status string              `json:"status"`
}

// RideQuotedEvent is published after a quote is produced
type RideQuotedEvent struct {
	EventID     string          `json:"event_id"`
	PassengerID int64           `json:"passenger_id"`
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	Fare        decimal.Decimal `json:"fare"`
	ETA         string          `json:"eta"`
	QuotedAt    time.Time       `json:"quoted_at"`
}
