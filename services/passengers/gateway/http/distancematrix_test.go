package gateway_http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uberdeluxe/passenger-service/internal/pkg/models"
	"github.com/uberdeluxe/passenger-service/services/passengers"
)

func testOrigin() models.Location {
	return models.Location{Address: "1 Marina Rd", City: "Lagos", State: "Lagos"}
}

func testDestination() models.Location {
	return models.Location{Address: "12 Allen Ave", City: "Ikeja", State: "Lagos"}
}

func newTestClient(baseURL string) *DistanceMatrixClient {
	client := NewDistanceMatrixClient(models.DistanceMatrixConfig{
		BaseURL:        baseURL,
		APIKey:         "test-api-key",
		TimeoutSeconds: 2,
	})
	client.now = func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return client
}

func TestGetTravelEstimate_Success(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"rows": [{"elements": [{
				"distance": {"text": "12.5 km", "value": 12500},
				"duration": {"text": "23 mins", "value": 1380},
				"status": "OK"
			}]}],
			"status": "OK"
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	element, err := client.GetTravelEstimate(context.Background(), testOrigin(), testDestination())

	require.NoError(t, err)
	assert.Equal(t, "12.5 km", element.Distance.Text)
	assert.Equal(t, "23 mins", element.Duration.Text)

	assert.Equal(t, "/json", gotPath)
	assert.Equal(t, []string{"1 Marina Rd, Lagos, Lagos"}, gotQuery["origins"])
	assert.Equal(t, []string{"12 Allen Ave, Ikeja, Lagos"}, gotQuery["destinations"])
	assert.Equal(t, []string{"driving"}, gotQuery["mode"])
	assert.Equal(t, []string{"pessimistic"}, gotQuery["traffic_model"])
	assert.Equal(t, []string{"test-api-key"}, gotQuery["key"])
	// The frozen clock reads 2024-06-01T12:00:00Z; the unix timestamp is the
	// same regardless of the UTC+1 rendering the provider contract asks for.
	assert.Equal(t, []string{"1717243200"}, gotQuery["departure_time"])
}

func TestGetTravelEstimate_FirstElementWins(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"rows": [
				{"elements": [
					{"distance": {"text": "3 km", "value": 3000}, "duration": {"text": "8 mins", "value": 480}, "status": "OK"},
					{"distance": {"text": "99 km", "value": 99000}, "duration": {"text": "2 hours", "value": 7200}, "status": "OK"}
				]},
				{"elements": [
					{"distance": {"text": "50 km", "value": 50000}, "duration": {"text": "1 hour", "value": 3600}, "status": "OK"}
				]}
			],
			"status": "OK"
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	element, err := client.GetTravelEstimate(context.Background(), testOrigin(), testDestination())

	require.NoError(t, err)
	assert.Equal(t, "3 km", element.Distance.Text)
	assert.Equal(t, "8 mins", element.Duration.Text)
}

func TestGetTravelEstimate_ProviderUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetTravelEstimate(context.Background(), testOrigin(), testDestination())

	assert.ErrorIs(t, err, passengers.ErrProviderUnavailable)
}

func TestGetTravelEstimate_ProviderServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetTravelEstimate(context.Background(), testOrigin(), testDestination())

	assert.ErrorIs(t, err, passengers.ErrProviderUnavailable)
}

func TestGetTravelEstimate_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetTravelEstimate(context.Background(), testOrigin(), testDestination())

	assert.ErrorIs(t, err, passengers.ErrUnprocessableResponse)
}

func TestGetTravelEstimate_EmptyMatrix(t *testing.T) {
	bodies := []string{
		`{"rows": [], "status": "OK"}`,
		`{"rows": [{"elements": []}], "status": "OK"}`,
	}

	for _, body := range bodies {
		body := body
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))

		client := newTestClient(server.URL)

		_, err := client.GetTravelEstimate(context.Background(), testOrigin(), testDestination())

		assert.ErrorIs(t, err, passengers.ErrUnprocessableResponse)
		server.Close()
	}
}

func TestGetTravelEstimate_ElementNotRoutable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"rows": [{"elements": [{"status": "ZERO_RESULTS"}]}],
			"status": "OK"
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetTravelEstimate(context.Background(), testOrigin(), testDestination())

	assert.ErrorIs(t, err, passengers.ErrUnprocessableResponse)
}

func TestBuildRequestURL_DepartureTimeIsFreshPerCall(t *testing.T) {
	client := NewDistanceMatrixClient(models.DistanceMatrixConfig{
		BaseURL: "http://provider.local",
		APIKey:  "k",
	})

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	client.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Minute)
	}

	first := client.buildRequestURL(testOrigin(), testDestination())
	second := client.buildRequestURL(testOrigin(), testDestination())

	assert.NotEqual(t, first, second)
}
