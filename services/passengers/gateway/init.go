package gateway

import (
	"github.com/uberdeluxe/passenger-service/internal/pkg/models"
	natspkg "github.com/uberdeluxe/passenger-service/internal/pkg/nats"
	gateway_http "github.com/uberdeluxe/passenger-service/services/passengers/gateway/http"
	gateway_nats "github.com/uberdeluxe/passenger-service/services/passengers/gateway/nats"
)

// PassengerGW combines the outbound gateways of the passenger service
type PassengerGW struct {
	*gateway_http.DistanceMatrixClient
	*gateway_nats.NATSGateway
}

// NewPassengerGW creates the combined passenger gateway
func NewPassengerGW(natsClient *natspkg.Client, distanceCfg models.DistanceMatrixConfig) *PassengerGW {
	return &PassengerGW{
		DistanceMatrixClient: gateway_http.NewDistanceMatrixClient(distanceCfg),
		NATSGateway:          gateway_nats.NewNATSGateway(natsClient),
	}
}
