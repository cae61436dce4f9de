package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/civicshield/evacuation_system/internal/config"
	"github.com/civicshield/evacuation_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Client - клиент Nominatim: поиск экстренных служб и обратное геокодирование.
// Провайдер best-effort: вызывающие обязаны переживать пустые ответы и ошибки.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:   cfg.NominatimBaseURL,
		userAgent: cfg.NominatimUserAgent,
		httpClient: &http.Client{
			Timeout: cfg.ProviderTimeout,
		},
		logger: logger,
	}
}

// SearchFacilities ищет объекты по текстовому запросу рядом с точкой
func (c *Client) SearchFacilities(ctx context.Context, query string, lat, lon float64, limit int) ([]service.Facility, error) {
	params := url.Values{
		"format":         {"json"},
		"q":              {query},
		"lat":            {formatCoord(lat)},
		"lon":            {formatCoord(lon)},
		"limit":          {strconv.Itoa(limit)},
		"addressdetails": {"1"},
	}

	var places []searchPlace
	if err := c.doRequest(ctx, c.baseURL+"/search?"+params.Encode(), &places); err != nil {
		return nil, fmt.Errorf("facility search failed: %w", err)
	}

	facilities := make([]service.Facility, 0, len(places))
	for _, place := range places {
		placeLat, errLat := strconv.ParseFloat(place.Lat, 64)
		placeLon, errLon := strconv.ParseFloat(place.Lon, 64)
		if errLat != nil || errLon != nil {
			c.logger.WithField("display_name", place.DisplayName).Warn("Skipping facility with unparsable coordinates")
			continue
		}
		facilities = append(facilities, service.Facility{
			// Первый сегмент display_name - собственное имя объекта
			Name:      strings.SplitN(place.DisplayName, ",", 2)[0],
			Latitude:  placeLat,
			Longitude: placeLon,
			Address:   place.DisplayName,
		})
	}
	return facilities, nil
}

// ReverseGeocode возвращает город по координатам. "Unknown" - валидный
// результат, а не ошибка.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	params := url.Values{
		"format": {"json"},
		"lat":    {formatCoord(lat)},
		"lon":    {formatCoord(lon)},
	}

	var result reverseResult
	if err := c.doRequest(ctx, c.baseURL+"/reverse?"+params.Encode(), &result); err != nil {
		return "", fmt.Errorf("reverse geocode failed: %w", err)
	}

	// Nominatim кладет населенный пункт в разные поля в зависимости от типа
	for _, name := range []string{
		result.Address.City,
		result.Address.Town,
		result.Address.Village,
		result.Address.County,
		result.Address.StateDistrict,
	} {
		if name != "" {
			return name, nil
		}
	}
	return "Unknown", nil
}

func (c *Client) doRequest(ctx context.Context, fullURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("nominatim request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("nominatim API error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// Типы ответов Nominatim API

type searchPlace struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

type reverseResult struct {
	Address struct {
		City          string `json:"city"`
		Town          string `json:"town"`
		Village       string `json:"village"`
		County        string `json:"county"`
		StateDistrict string `json:"state_district"`
	} `json:"address"`
}
