package openroute

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/civicshield/evacuation_system/internal/config"
	"github.com/civicshield/evacuation_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Client - клиент OpenRouteService directions API (профиль driving-car)
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: cfg.OpenRouteBaseURL,
		apiKey:  cfg.OpenRouteAPIKey,
		httpClient: &http.Client{
			Timeout: cfg.ProviderTimeout,
		},
		logger: logger,
	}
}

// GetRoute строит автомобильный маршрут между двумя точками.
// Геометрия возвращается в формате GeoJSON: вершины как [lon, lat].
func (c *Client) GetRoute(ctx context.Context, fromLat, fromLon, toLat, toLon float64) (*models.Route, error) {
	reqBody := directionsRequest{
		Coordinates: [][]float64{
			{fromLon, fromLat},
			{toLon, toLat},
		},
		Instructions: true,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/driving-car/geojson", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openroute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openroute API error: status %d", resp.StatusCode)
	}

	var result directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(result.Features) == 0 {
		return nil, fmt.Errorf("openroute returned no route")
	}

	feature := result.Features[0]
	route := &models.Route{
		Geometry:        feature.Geometry.Coordinates,
		DistanceMeters:  feature.Properties.Summary.Distance,
		DurationSeconds: feature.Properties.Summary.Duration,
	}
	if len(feature.Properties.Segments) > 0 {
		steps := feature.Properties.Segments[0].Steps
		route.Steps = make([]models.RouteStep, 0, len(steps))
		for _, s := range steps {
			route.Steps = append(route.Steps, models.RouteStep{
				Instruction: s.Instruction,
				Distance:    s.Distance,
				Duration:    s.Duration,
				Type:        stepTypeName(s.Type),
				Name:        s.Name,
			})
		}
	}
	return route, nil
}

// stepTypeName переводит числовой код маневра ORS в строковую категорию
func stepTypeName(code int) string {
	switch {
	case code >= 0 && code <= 5:
		return "turn"
	case code == 6:
		return "straight"
	case code == 7 || code == 8:
		return "roundabout"
	case code == 9:
		return "u-turn"
	case code == 10:
		return "arrive"
	case code == 11:
		return "depart"
	case code == 12 || code == 13:
		return "keep"
	default:
		return "unknown"
	}
}

// Типы запроса и ответа OpenRouteService

type directionsRequest struct {
	Coordinates  [][]float64 `json:"coordinates"`
	Instructions bool        `json:"instructions"`
}

type directionsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
			Segments []struct {
				Steps []struct {
					Distance    float64 `json:"distance"`
					Duration    float64 `json:"duration"`
					Type        int     `json:"type"`
					Instruction string  `json:"instruction"`
					Name        string  `json:"name"`
				} `json:"steps"`
			} `json:"segments"`
		} `json:"properties"`
	} `json:"features"`
}
