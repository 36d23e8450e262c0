package usecase

import (
	"github.com/shopspring/decimal"
	"github.com/uberdeluxe/passenger-service/internal/pkg/models"
	"github.com/uberdeluxe/passenger-service/internal/utils"
	"github.com/uberdeluxe/passenger-service/services/passengers"
)

type PassengerUC struct {
	passengerRepo passengers.PassengerRepo
	passengerGW   passengers.PassengerGW
	cfg           *models.Config
	ratePerKm     decimal.Decimal
}

// NewPassengerUC creates a new passenger usecase instance
func NewPassengerUC(
	passengerRepo passengers.PassengerRepo,
	passengerGW passengers.PassengerGW,
	cfg *models.Config,
) *PassengerUC {
	rate := utils.DefaultRatePerKm
	if cfg.Pricing.RatePerKm != "" {
		if parsed, err := decimal.NewFromString(cfg.Pricing.RatePerKm); err == nil {
			rate = parsed
		}
	}

	return &PassengerUC{
		passengerRepo: passengerRepo,
		passengerGW:   passengerGW,
		cfg:           cfg,
		ratePerKm:     rate,
	}
}
