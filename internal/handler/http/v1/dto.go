package v1

import (
	"time"

	"github.com/google/uuid"
)

// ReportIncidentRequest DTO для репорта об опасности
// @Description DTO для репорта об опасности
type ReportIncidentRequest struct {
	UserID    string  `json:"user_id" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// ReportIncidentResponse DTO для ответа на принятый репорт
// @Description DTO для ответа на принятый репорт
type ReportIncidentResponse struct {
	IncidentID       uuid.UUID     `json:"incident_id"`
	City             string        `json:"city"`
	WindowedCount    int           `json:"windowed_count"`
	CanReportAgainAt time.Time     `json:"can_report_again_at"`
	Zone             *ZoneResponse `json:"zone,omitempty"`
}

// ZoneResponse DTO для ответа с информацией об опасной зоне
// @Description DTO для ответа с информацией об опасной зоне
type ZoneResponse struct {
	City          string    `json:"city"`
	IncidentCount int       `json:"incident_count"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Status        string    `json:"status"`
	LastUpdated   time.Time `json:"last_updated"`
}

// LocationCheckRequest DTO для проверки координат
// @Description DTO для проверки координат
type LocationCheckRequest struct {
	UserID    string  `json:"user_id" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// DangerStatusResponse DTO для ответа о близости к опасным зонам
// @Description DTO для ответа о близости к опасным зонам
type DangerStatusResponse struct {
	InDanger    bool            `json:"in_danger"`
	NearbyZones []*ZoneResponse `json:"nearby_zones"`
}

// PlanEvacuationRequest DTO для запроса маршрутов эвакуации
// @Description DTO для запроса маршрутов эвакуации
type PlanEvacuationRequest struct {
	UserID    string  `json:"user_id" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// DestinationResponse DTO для пункта назначения маршрута
// @Description DTO для пункта назначения маршрута
type DestinationResponse struct {
	Name       string  `json:"name"`
	Kind       string  `json:"kind"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Address    string  `json:"address,omitempty"`
	DistanceKm float64 `json:"distance_km"`
}

// StepResponse DTO для шага маршрута
// @Description DTO для шага маршрута
type StepResponse struct {
	Instruction     string  `json:"instruction"`
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
	Type            string  `json:"type"`
	Name            string  `json:"name,omitempty"`
}

// RouteResponse DTO для ранжированного маршрута эвакуации
// @Description DTO для ранжированного маршрута эвакуации
type RouteResponse struct {
	Geometry        [][]float64         `json:"geometry"`
	DistanceMeters  float64             `json:"distance_meters"`
	DurationSeconds float64             `json:"duration_seconds"`
	DangerScore     float64             `json:"danger_score"`
	SafetyLevel     string              `json:"safety_level"`
	CompositeScore  float64             `json:"composite_score"`
	Destination     DestinationResponse `json:"destination"`
	Instructions    []StepResponse      `json:"instructions,omitempty"`
}

// EvacuationPlanResponse DTO для ответа с планом эвакуации
// @Description DTO для ответа с планом эвакуации
type EvacuationPlanResponse struct {
	Routes  []*RouteResponse `json:"routes"`
	Zones   []*ZoneResponse  `json:"zones"`
	Message string           `json:"message,omitempty"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	UserCount int `json:"user_count"`
}
