package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/civicshield/evacuation_system/internal/config"
	"github.com/civicshield/evacuation_system/internal/geo"
	"github.com/civicshield/evacuation_system/internal/models"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=evacuation.go -destination=mocks/mock_evacuation.go -package=mocks

const (
	// Возвращаем не больше двух маршрутов: один к реальной службе, один к
	// синтетической точке отхода
	maxPlannedRoutes = 2

	// Шаг считается крупным, если он длиннее этой дистанции в метрах
	majorStepDistanceMeters = 100

	maxSimplifiedInstructions = 5
)

// RouteProvider определяет контракт внешнего маршрутного провайдера
type RouteProvider interface {
	GetRoute(ctx context.Context, startLat, startLon, endLat, endLon float64) (*models.Route, error)
}

// DangerCheckRecorder сохраняет факт проверки местоположения
type DangerCheckRecorder interface {
	SaveDangerCheck(ctx context.Context, check *models.DangerCheck) error
}

// PlanResult - итог планирования эвакуации
type PlanResult struct {
	Routes  []*models.ScoredRoute
	Zones   []*models.DangerZone
	Message string
}

// DangerStatus - результат проверки местоположения на близость к зонам
type DangerStatus struct {
	InDanger    bool
	NearbyZones []*models.DangerZone
}

// EvacuationService определяет контракт планирования эвакуации
type EvacuationService interface {
	Plan(ctx context.Context, userID string, lat, lon float64) (*PlanResult, error)
	CheckDangerStatus(ctx context.Context, userID string, lat, lon float64) (*DangerStatus, error)
}

type evacuationService struct {
	zones  ZoneService
	finder *DestinationFinder
	synth  *EscapeSynthesizer
	scorer *RouteScorer
	router RouteProvider
	checks DangerCheckRecorder
	clock  clockwork.Clock
	cfg    *config.Config
	logger *logrus.Logger
}

func NewEvacuationService(zones ZoneService, finder *DestinationFinder, synth *EscapeSynthesizer, scorer *RouteScorer, router RouteProvider, checks DangerCheckRecorder, clock clockwork.Clock, cfg *config.Config, logger *logrus.Logger) EvacuationService {
	return &evacuationService{
		zones:  zones,
		finder: finder,
		synth:  synth,
		scorer: scorer,
		router: router,
		checks: checks,
		clock:  clock,
		cfg:    cfg,
		logger: logger,
	}
}

// Plan строит до двух ранжированных маршрутов эвакуации от точки origin.
// Планирование никогда не мутирует состояние зон, поэтому отмена контекста
// безопасно бросает незавершенные внешние вызовы.
func (s *evacuationService) Plan(ctx context.Context, userID string, lat, lon float64) (*PlanResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "evacuation",
		"method":  "Plan",
		"user_id": userID,
	})
	log.Info("Planning evacuation routes")

	zones, err := s.zones.ActiveZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not get active zones: %w", err)
	}

	if len(zones) == 0 {
		log.Info("No active danger zones, nothing to plan")
		return &PlanResult{Message: "No active danger zones. You are safe."}, nil
	}

	if !insideAnyZone(lat, lon, zones, s.cfg.PlanningRadiusKm) {
		log.Info("User is not near any danger zone, nothing to plan")
		return &PlanResult{Message: "You are not near any danger zones."}, nil
	}

	// Не больше двух пунктов назначения и никогда двух одного вида:
	// одна реальная служба и одна синтетическая точка отхода
	selected := make([]models.CandidateDestination, 0, maxPlannedRoutes)
	if safe := s.finder.FindSafe(ctx, lat, lon, zones, 1); len(safe) > 0 {
		selected = append(selected, safe[0])
	}
	if escapes := s.synth.Synthesize(lat, lon, zones, s.cfg.EscapeBaseDistanceKm); len(escapes) > 0 {
		selected = append(selected, escapes[0])
	}

	if len(selected) == 0 {
		log.Warn("No safe destinations found nearby")
		return nil, ErrNoDestinations
	}

	routes := make([]*models.ScoredRoute, 0, len(selected))
	for _, destination := range selected {
		// Отказ провайдера по одному пункту назначения не прерывает
		// планирование по остальным
		route, err := s.router.GetRoute(ctx, lat, lon, destination.Latitude, destination.Longitude)
		if err != nil {
			log.WithError(err).WithField("destination", destination.Name).Warn("Route provider failed for destination, skipping")
			continue
		}

		scored := s.scorer.Score(route, destination, zones)
		scored.SimplifiedInstructions = simplifyInstructions(route.Steps, maxSimplifiedInstructions)
		routes = append(routes, scored)
	}

	if len(routes) == 0 {
		log.Warn("Route provider failed for all destinations")
		return &PlanResult{Zones: zones, Message: "No evacuation routes could be computed."}, nil
	}

	sort.Slice(routes, func(i, j int) bool { return routes[i].CompositeScore < routes[j].CompositeScore })
	if len(routes) > maxPlannedRoutes {
		routes = routes[:maxPlannedRoutes]
	}

	log.WithField("routes", len(routes)).Info("Evacuation routes planned")
	return &PlanResult{Routes: routes, Zones: zones}, nil
}

// CheckDangerStatus проверяет близость точки к активным зонам и сохраняет
// факт проверки
func (s *evacuationService) CheckDangerStatus(ctx context.Context, userID string, lat, lon float64) (*DangerStatus, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "evacuation",
		"method":  "CheckDangerStatus",
		"user_id": userID,
	})

	zones, err := s.zones.ActiveZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not get active zones: %w", err)
	}

	nearby := make([]*models.DangerZone, 0)
	for _, zone := range zones {
		if geo.IsWithinRadius(lat, lon, zone.Center.Latitude, zone.Center.Longitude, s.cfg.PlanningRadiusKm) {
			nearby = append(nearby, zone)
		}
	}

	inDanger := len(nearby) > 0
	// Факт проверки - аудит best-effort, его потеря не валит ответ
	if err := s.checks.SaveDangerCheck(ctx, &models.DangerCheck{
		UserID:      userID,
		Latitude:    lat,
		Longitude:   lon,
		IsDangerous: inDanger,
		CheckedAt:   s.clock.Now().UTC(),
	}); err != nil {
		log.WithError(err).Warn("Failed to save danger check")
	}

	log.WithField("in_danger", inDanger).Info("Danger status checked")
	return &DangerStatus{InDanger: inDanger, NearbyZones: nearby}, nil
}

// simplifyInstructions оставляет только крупные шаги: длиннее 100 м, поворот,
// круговое движение или шаг по именованной дороге. Берутся первые maxSteps
// в порядке провайдера.
func simplifyInstructions(steps []models.RouteStep, maxSteps int) []models.RouteStep {
	major := make([]models.RouteStep, 0, len(steps))
	for _, step := range steps {
		if step.Distance > majorStepDistanceMeters ||
			step.Type == "turn" ||
			step.Type == "roundabout" ||
			step.Name != "" {
			major = append(major, step)
		}
	}
	if len(major) > maxSteps {
		major = major[:maxSteps]
	}
	return major
}
