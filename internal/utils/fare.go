package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultRatePerKm is the fare charged per kilometre. The coefficient is a
// pricing policy value and can be overridden per deployment through
// PRICING_RATE_PER_KM.
var DefaultRatePerKm = decimal.NewFromInt(150)

var metersPerKm = decimal.NewFromInt(1000)

// CalculateRideFare derives a fare from the distance text reported by the
// distance-matrix provider, e.g. "23.4 km" or "850 m". The result is rounded
// to currency scale and is never negative.
func CalculateRideFare(distanceText string, ratePerKm decimal.Decimal) (decimal.Decimal, error) {
	fields := strings.Fields(strings.ReplaceAll(distanceText, ",", ""))
	if len(fields) == 0 {
		return decimal.Zero, fmt.Errorf("empty distance text")
	}

	distance, err := decimal.NewFromString(fields[0])
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid distance %q: %w", distanceText, err)
	}
	if distance.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative distance %q", distanceText)
	}

	unit := "km"
	if len(fields) > 1 {
		unit = strings.ToLower(fields[1])
	}
	switch unit {
	case "km":
	case "m":
		distance = distance.Div(metersPerKm)
	default:
		return decimal.Zero, fmt.Errorf("unsupported distance unit %q", unit)
	}

	return distance.Mul(ratePerKm).Round(2), nil
}
