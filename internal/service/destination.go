package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/civicshield/evacuation_system/internal/config"
	"github.com/civicshield/evacuation_system/internal/geo"
	"github.com/civicshield/evacuation_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=destination.go -destination=mocks/mock_destination.go -package=mocks

// Сколько объектов запрашивать у поискового провайдера на категорию
const facilitySearchLimit = 5

// Facility - объект из внешнего поиска экстренных служб
type Facility struct {
	Name      string
	Latitude  float64
	Longitude float64
	Address   string
}

// FacilitySearcher определяет контракт внешнего поиска экстренных служб
type FacilitySearcher interface {
	SearchFacilities(ctx context.Context, query string, lat, lon float64, limit int) ([]Facility, error)
}

// DestinationFinder ищет ближайшие безопасные экстренные службы: сначала
// полицейские участки, затем пожарные станции. Кандидаты внутри активных зон
// отбрасываются.
type DestinationFinder struct {
	search FacilitySearcher
	cfg    *config.Config
	logger *logrus.Logger
}

func NewDestinationFinder(search FacilitySearcher, cfg *config.Config, logger *logrus.Logger) *DestinationFinder {
	return &DestinationFinder{
		search: search,
		cfg:    cfg,
		logger: logger,
	}
}

// FindSafe возвращает до limit безопасных пунктов назначения, отсортированных
// по расстоянию от origin. Пустой результат - не ошибка: вызывающий обязан
// трактовать его как "подходящей службы нет", а не как отказ.
func (f *DestinationFinder) FindSafe(ctx context.Context, lat, lon float64, zones []*models.DangerZone, limit int) []models.CandidateDestination {
	log := f.logger.WithFields(logrus.Fields{
		"service": "destination",
		"method":  "FindSafe",
	})

	categories := []struct {
		kind  models.DestinationKind
		query string
	}{
		{models.DestinationPoliceStation, "police station"},
		{models.DestinationFireStation, "fire station"},
	}

	for _, category := range categories {
		facilities, err := f.search.SearchFacilities(ctx, category.query, lat, lon, facilitySearchLimit)
		if err != nil {
			log.WithError(err).WithField("kind", category.kind).Warn("Facility search failed, trying next category")
			continue
		}

		safe := make([]models.CandidateDestination, 0, len(facilities))
		for _, facility := range facilities {
			if insideAnyZone(facility.Latitude, facility.Longitude, zones, f.cfg.FacilityBufferKm) {
				continue
			}
			safe = append(safe, models.CandidateDestination{
				Name:       facility.Name,
				Kind:       category.kind,
				Latitude:   facility.Latitude,
				Longitude:  facility.Longitude,
				Address:    facility.Address,
				DistanceKm: geo.DistanceKm(lat, lon, facility.Latitude, facility.Longitude),
			})
		}

		if len(safe) > 0 {
			sort.Slice(safe, func(i, j int) bool { return safe[i].DistanceKm < safe[j].DistanceKm })
			if len(safe) > limit {
				safe = safe[:limit]
			}
			return safe
		}
	}

	return nil
}

// EscapeSynthesizer генерирует синтетические безопасные координаты вокруг
// пользователя, когда реальной службы поблизости нет
type EscapeSynthesizer struct {
	cfg *config.Config
}

func NewEscapeSynthesizer(cfg *config.Config) *EscapeSynthesizer {
	return &EscapeSynthesizer{cfg: cfg}
}

type escapeDirection struct {
	name    string
	latUnit float64
	lonUnit float64
}

// Первые четыре направления - стороны света: расширенный поиск использует
// только их
var escapeDirections = []escapeDirection{
	{"North", 1, 0},
	{"South", -1, 0},
	{"East", 0, 1},
	{"West", 0, -1},
	{"Northeast", 0.707, 0.707},
	{"Northwest", 0.707, -0.707},
	{"Southeast", -0.707, 0.707},
	{"Southwest", -0.707, -0.707},
}

// Synthesize генерирует точки отхода на baseDistanceKm по восьми направлениям.
// Принимаются точки вне всех активных зон с буфером EscapeBufferKm (больше
// буфера для реальных служб: доверие к синтетической точке ниже). Если на
// базовой дистанции ничего не принято, поиск расширяется на 15, 20, 25 и 30 км
// только по сторонам света. Возвращает до трех точек по возрастанию расстояния.
func (e *EscapeSynthesizer) Synthesize(lat, lon float64, zones []*models.DangerZone, baseDistanceKm float64) []models.CandidateDestination {
	if len(zones) == 0 {
		return nil
	}

	points := make([]models.CandidateDestination, 0, len(escapeDirections))
	for _, direction := range escapeDirections {
		if point, ok := e.tryDirection(lat, lon, zones, direction, baseDistanceKm); ok {
			points = append(points, point)
		}
	}

	// Расширенный поиск: дальше, но только по сторонам света
	if len(points) == 0 {
	extended:
		for dist := 15.0; dist <= 30; dist += 5 {
			for _, direction := range escapeDirections[:4] {
				if point, ok := e.tryDirection(lat, lon, zones, direction, dist); ok {
					points = append(points, point)
					break extended
				}
			}
		}
	}

	sort.Slice(points, func(i, j int) bool { return points[i].DistanceKm < points[j].DistanceKm })
	if len(points) > 3 {
		points = points[:3]
	}
	return points
}

func (e *EscapeSynthesizer) tryDirection(lat, lon float64, zones []*models.DangerZone, direction escapeDirection, distanceKm float64) (models.CandidateDestination, bool) {
	escapeLat, escapeLon := geo.OffsetPoint(lat, lon, direction.latUnit, direction.lonUnit, distanceKm)
	if insideAnyZone(escapeLat, escapeLon, zones, e.cfg.EscapeBufferKm) {
		return models.CandidateDestination{}, false
	}
	return models.CandidateDestination{
		Name:       fmt.Sprintf("Safe Area (%s)", direction.name),
		Kind:       models.DestinationEscapePoint,
		Latitude:   escapeLat,
		Longitude:  escapeLon,
		Address:    fmt.Sprintf("Safe area %.0fkm %s", distanceKm, direction.name),
		DistanceKm: geo.DistanceKm(lat, lon, escapeLat, escapeLon),
	}, true
}

// insideAnyZone проверяет, попадает ли точка в буфер хотя бы одной зоны
func insideAnyZone(lat, lon float64, zones []*models.DangerZone, bufferKm float64) bool {
	for _, zone := range zones {
		if geo.IsWithinRadius(lat, lon, zone.Center.Latitude, zone.Center.Longitude, bufferKm) {
			return true
		}
	}
	return false
}
