package service

import (
	"context"
	"fmt"
	"time"

	"github.com/civicshield/evacuation_system/internal/config"
	"github.com/civicshield/evacuation_system/internal/models"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	CountByCitySince(ctx context.Context, city string, since time.Time) (int, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
	GetThrottle(ctx context.Context, reporterID string) (*models.ReportThrottle, error)
	UpsertThrottle(ctx context.Context, throttle *models.ReportThrottle) error
	SaveDangerCheck(ctx context.Context, check *models.DangerCheck) error
	GetDangerCheckStats(ctx context.Context, minutes int) (int, error)
}

// Geocoder определяет контракт обратного геокодирования (lat/lon -> город)
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
}

// ReportResult - итог приема репорта: созданный инцидент, оконный счетчик по
// городу и зона, если переход состояния произошел
type ReportResult struct {
	Incident         *models.Incident
	City             string
	WindowedCount    int
	Zone             *models.DangerZone
	CanReportAgainAt time.Time
}

// ReportService определяет контракт для бизнес-логики приема репортов
type ReportService interface {
	ReportIncident(ctx context.Context, reporterID string, lat, lon float64) (*ReportResult, error)
	GetStats(ctx context.Context) (int, error)
}

type reportService struct {
	repo     IncidentRepository
	geocoder Geocoder
	zones    ZoneService
	clock    clockwork.Clock
	cfg      *config.Config
	logger   *logrus.Logger
}

func NewReportService(repo IncidentRepository, geocoder Geocoder, zones ZoneService, clock clockwork.Clock, cfg *config.Config, logger *logrus.Logger) ReportService {
	return &reportService{
		repo:     repo,
		geocoder: geocoder,
		zones:    zones,
		clock:    clock,
		cfg:      cfg,
		logger:   logger,
	}
}

// ReportIncident принимает репорт: троттлинг, создание инцидента, оконный
// подсчет по городу и передача счетчика в трекер опасных зон
func (s *reportService) ReportIncident(ctx context.Context, reporterID string, lat, lon float64) (*ReportResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "report",
		"method":      "ReportIncident",
		"reporter_id": reporterID,
	})
	log.Info("Processing incident report")

	now := s.clock.Now().UTC()

	// Обратное геокодирование деградирует до "Unknown", а не валит запрос
	city, err := s.geocoder.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		log.WithError(err).Warn("Reverse geocoding failed, falling back to Unknown city")
		city = "Unknown"
	}
	log = log.WithField("city", city)

	throttle, err := s.repo.GetThrottle(ctx, reporterID)
	if err != nil {
		log.WithError(err).Error("Failed to get report throttle")
		return nil, fmt.Errorf("service: could not check report throttle: %w", err)
	}
	if throttle != nil && throttle.LastReportCity == city && now.Sub(throttle.LastReportTime) < s.cfg.ReportWindow {
		retryAt := throttle.LastReportTime.Add(s.cfg.ReportWindow)
		log.WithField("retry_at", retryAt).Info("Report throttled")
		return nil, &ThrottledError{RetryAt: retryAt}
	}

	incident := &models.Incident{
		ReporterID: reporterID,
		Latitude:   lat,
		Longitude:  lon,
		City:       city,
		ReportedAt: now,
		ExpiresAt:  now.Add(s.cfg.IncidentTTL),
	}
	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	if err := s.repo.UpsertThrottle(ctx, &models.ReportThrottle{
		ReporterID:     reporterID,
		LastReportCity: city,
		LastReportTime: now,
	}); err != nil {
		log.WithError(err).Error("Failed to update report throttle")
		return nil, fmt.Errorf("service: could not update report throttle: %w", err)
	}

	count, err := s.repo.CountByCitySince(ctx, city, now.Add(-s.cfg.ReportWindow))
	if err != nil {
		log.WithError(err).Error("Failed to count incidents for city")
		return nil, fmt.Errorf("service: could not count incidents: %w", err)
	}

	zone, err := s.zones.OnIncidentRecorded(ctx, city, models.Coordinates{Latitude: lat, Longitude: lon}, count)
	if err != nil {
		log.WithError(err).Error("Failed to update danger zone state")
		return nil, fmt.Errorf("service: could not update danger zone: %w", err)
	}

	log.WithField("windowed_count", count).Info("Incident reported successfully")
	return &ReportResult{
		Incident:         incident,
		City:             city,
		WindowedCount:    count,
		Zone:             zone,
		CanReportAgainAt: now.Add(s.cfg.ReportWindow),
	}, nil
}

// GetStats возвращает количество уникальных пользователей, проверивших
// местоположение за настроенное окно
func (s *reportService) GetStats(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "GetStats",
	})

	count, err := s.repo.GetDangerCheckStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get danger check stats")
		return 0, fmt.Errorf("service: could not get stats: %w", err)
	}
	return count, nil
}
