package service

import (
	"github.com/civicshield/evacuation_system/internal/config"
	"github.com/civicshield/evacuation_system/internal/geo"
	"github.com/civicshield/evacuation_system/internal/models"
)

const (
	// Максимальный штраф за вершину маршрута в центре зоны
	maxVertexPenalty = 100

	// Вес опасности в композитной оценке: минута пути торгуется против
	// опасности в соотношении 1:10, опасность доминирует в упорядочении
	dangerWeight = 10

	// Граница между "moderate" и "risky"
	moderateDangerCeiling = 50
)

// RouteScorer считает взвешенную по опасности композитную оценку маршрута
type RouteScorer struct {
	cfg *config.Config
}

func NewRouteScorer(cfg *config.Config) *RouteScorer {
	return &RouteScorer{cfg: cfg}
}

// DangerScore накапливает штраф по каждой вершине геометрии в пределах
// радиуса зоны: 100*(1 - d/radius), линейное затухание до нуля на границе.
// Вершины геометрии в порядке (lon, lat).
func (s *RouteScorer) DangerScore(geometry [][]float64, zones []*models.DangerZone) float64 {
	radius := s.cfg.ZoneDangerRadiusKm
	total := 0.0

	for _, zone := range zones {
		for _, coord := range geometry {
			if len(coord) < 2 {
				continue
			}
			distance := geo.DistanceKm(coord[1], coord[0], zone.Center.Latitude, zone.Center.Longitude)
			if distance < radius {
				total += maxVertexPenalty * (1 - distance/radius)
			}
		}
	}
	return total
}

// Score строит ScoredRoute для маршрута и пункта назначения.
// Композитная оценка монотонно растет и по опасности, и по длительности,
// поэтому порядок "меньше - лучше" корректен.
func (s *RouteScorer) Score(route *models.Route, destination models.CandidateDestination, zones []*models.DangerZone) *models.ScoredRoute {
	dangerScore := s.DangerScore(route.Geometry, zones)

	var safetyLevel models.SafetyLevel
	switch {
	case dangerScore == 0:
		safetyLevel = models.SafetySafe
	case dangerScore < moderateDangerCeiling:
		safetyLevel = models.SafetyModerate
	default:
		safetyLevel = models.SafetyRisky
	}

	return &models.ScoredRoute{
		Geometry:        route.Geometry,
		DistanceMeters:  route.DistanceMeters,
		DurationSeconds: route.DurationSeconds,
		DangerScore:     dangerScore,
		SafetyLevel:     safetyLevel,
		CompositeScore:  dangerScore*dangerWeight + route.DurationSeconds/60,
		Destination:     destination,
	}
}
