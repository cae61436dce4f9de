package openroute

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/civicshield/evacuation_system/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	cfg := &config.Config{
		OpenRouteBaseURL: serverURL,
		OpenRouteAPIKey:  "test-key",
		ProviderTimeout:  2 * time.Second,
	}
	return NewClient(cfg, logrus.New())
}

func TestGetRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/driving-car/geojson", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))

		var req directionsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		// Координаты передаются как [lon, lat]
		require.Len(t, req.Coordinates, 2)
		assert.Equal(t, []float64{30.5, 50.4}, req.Coordinates[0])
		assert.Equal(t, []float64{30.6, 50.5}, req.Coordinates[1])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"features": [{
				"geometry": {"coordinates": [[30.5, 50.4], [30.55, 50.45], [30.6, 50.5]]},
				"properties": {
					"summary": {"distance": 15200.5, "duration": 1260.0},
					"segments": [{
						"steps": [
							{"distance": 250.0, "duration": 30.0, "type": 11, "instruction": "Head north", "name": "Main Street"},
							{"distance": 14800.5, "duration": 1200.0, "type": 1, "instruction": "Turn right", "name": "Highway"},
							{"distance": 150.0, "duration": 30.0, "type": 10, "instruction": "Arrive at destination", "name": "-"}
						]
					}]
				}
			}]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	route, err := client.GetRoute(context.Background(), 50.4, 30.5, 50.5, 30.6)

	require.NoError(t, err)
	assert.Equal(t, 15200.5, route.DistanceMeters)
	assert.Equal(t, 1260.0, route.DurationSeconds)
	require.Len(t, route.Geometry, 3)
	require.Len(t, route.Steps, 3)
	assert.Equal(t, "depart", route.Steps[0].Type)
	assert.Equal(t, "turn", route.Steps[1].Type)
	assert.Equal(t, "arrive", route.Steps[2].Type)
}

func TestGetRoute_NoFeatures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"features": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GetRoute(context.Background(), 50.4, 30.5, 50.5, 30.6)

	assert.Error(t, err)
}

func TestGetRoute_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GetRoute(context.Background(), 50.4, 30.5, 50.5, 30.6)

	assert.Error(t, err)
}

func TestStepTypeName(t *testing.T) {
	assert.Equal(t, "turn", stepTypeName(0))
	assert.Equal(t, "turn", stepTypeName(5))
	assert.Equal(t, "straight", stepTypeName(6))
	assert.Equal(t, "roundabout", stepTypeName(7))
	assert.Equal(t, "u-turn", stepTypeName(9))
	assert.Equal(t, "keep", stepTypeName(12))
	assert.Equal(t, "unknown", stepTypeName(99))
}
