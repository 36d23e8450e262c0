package gateway_http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	httpclient "github.com/uberdeluxe/passenger-service/internal/pkg/http"
	"github.com/uberdeluxe/passenger-service/internal/pkg/logger"
	"github.com/uberdeluxe/passenger-service/internal/pkg/models"
	"github.com/uberdeluxe/passenger-service/services/passengers"
)

// departureZone is the fixed offset the provider contract expects for the
// departure_time parameter
var departureZone = time.FixedZone("UTC+1", int(time.Hour/time.Second))

// DistanceMatrixClient calls the external distance-matrix provider
type DistanceMatrixClient struct {
	client  *httpclient.Client
	baseURL string
	apiKey  string
	now     func() time.Time
}

// NewDistanceMatrixClient creates a new distance-matrix client
func NewDistanceMatrixClient(cfg models.DistanceMatrixConfig) *DistanceMatrixClient {
	return &DistanceMatrixClient{
		client:  httpclient.NewClient(cfg.BaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second),
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		now:     time.Now,
	}
}

// buildRequestURL encodes the provider request. The departure time is
// computed fresh per call; a stale value changes traffic-adjusted estimates.
func (g *DistanceMatrixClient) buildRequestURL(origin, destination models.Location) string {
	params := url.Values{}
	params.Set("origins", origin.String())
	params.Set("destinations", destination.String())
	params.Set("mode", "driving")
	params.Set("traffic_model", "pessimistic")
	params.Set("departure_time", strconv.FormatInt(g.now().In(departureZone).Unix(), 10))
	params.Set("key", g.apiKey)

	return g.baseURL + "/json?" + params.Encode()
}

// GetTravelEstimate returns the distance/duration pair for one
// origin/destination. The provider result matrix is expected to hold at least
// one row with one element; an empty matrix is an error, not an empty quote.
func (g *DistanceMatrixClient) GetTravelEstimate(ctx context.Context, origin, destination models.Location) (*models.DistanceMatrixElement, error) {
	requestURL := g.buildRequestURL(origin, destination)

	resp, err := g.client.Get(ctx, requestURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", passengers.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: provider returned %s", passengers.ErrProviderUnavailable, resp.Status)
	}

	var matrix models.DistanceMatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&matrix); err != nil {
		return nil, fmt.Errorf("%w: %v", passengers.ErrUnprocessableResponse, err)
	}

	if len(matrix.Rows) == 0 || len(matrix.Rows[0].Elements) == 0 {
		logger.WarnCtx(ctx, "Distance provider returned an empty result matrix",
			logger.String("origins", origin.String()),
			logger.String("destinations", destination.String()))
		return nil, fmt.Errorf("%w: empty result matrix", passengers.ErrUnprocessableResponse)
	}

	element := matrix.Rows[0].Elements[0]
	if element.Status != "" && element.Status != "OK" {
		return nil, fmt.Errorf("%w: element status %s", passengers.ErrUnprocessableResponse, element.Status)
	}

	return &element, nil
}
