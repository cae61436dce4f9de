package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/civicshield/evacuation_system/internal/config"
	"github.com/civicshield/evacuation_system/internal/models"
	"github.com/civicshield/evacuation_system/internal/notifier"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=zone.go -destination=mocks/mock_zone.go -package=mocks

// DangerZoneRepository определяет контракт для работы с бд опасных зон.
// Мутации атомарны по городу: реализация сериализует конкурентные переходы
// одной и той же зоны.
type DangerZoneRepository interface {
	// UpsertActive создает или переводит зону города в активное состояние,
	// обновляя счетчик. Возвращает зону и признак активации (создание или
	// реактивация, в отличие от обновления уже активной зоны).
	UpsertActive(ctx context.Context, city string, center models.Coordinates, count int, now time.Time) (*models.DangerZone, bool, error)
	ListActive(ctx context.Context) ([]*models.DangerZone, error)
	// UpdateActiveCount обновляет счетчик активной зоны. Возвращает
	// ErrStateConflict, если зона уже не активна.
	UpdateActiveCount(ctx context.Context, city string, count int, now time.Time) (*models.DangerZone, error)
	// Deactivate переводит зону в неактивное состояние. Возвращает false,
	// если зона уже была неактивна (идемпотентность).
	Deactivate(ctx context.Context, city string, now time.Time) (bool, error)
	GetActiveZonesFromCache(ctx context.Context) ([]*models.DangerZone, error)
	SetActiveZonesCache(ctx context.Context, zones []*models.DangerZone) error
	InvalidateActiveZonesCache(ctx context.Context) error
}

// ZoneService определяет контракт машины состояний опасных зон
type ZoneService interface {
	OnIncidentRecorded(ctx context.Context, city string, center models.Coordinates, count int) (*models.DangerZone, error)
	RecomputeAll(ctx context.Context) error
	ActiveZones(ctx context.Context) ([]*models.DangerZone, error)
	RunMaintenanceCycle(ctx context.Context) error
}

type zoneService struct {
	zoneRepo     DangerZoneRepository
	incidentRepo IncidentRepository
	publisher    notifier.Publisher
	alerts       notifier.AlertDispatcher
	clock        clockwork.Clock
	cfg          *config.Config
	logger       *logrus.Logger

	// Флаг работающего цикла обслуживания: конкурентные запуски схлопываются
	maintenanceRunning atomic.Bool
}

func NewZoneService(zoneRepo DangerZoneRepository, incidentRepo IncidentRepository, publisher notifier.Publisher, alerts notifier.AlertDispatcher, clock clockwork.Clock, cfg *config.Config, logger *logrus.Logger) ZoneService {
	return &zoneService{
		zoneRepo:     zoneRepo,
		incidentRepo: incidentRepo,
		publisher:    publisher,
		alerts:       alerts,
		clock:        clock,
		cfg:          cfg,
		logger:       logger,
	}
}

// OnIncidentRecorded обрабатывает свежий оконный счетчик по городу: создает,
// реактивирует или обновляет зону, если счетчик достиг порога активации
func (s *zoneService) OnIncidentRecorded(ctx context.Context, city string, center models.Coordinates, count int) (*models.DangerZone, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "OnIncidentRecorded",
		"city":    city,
		"count":   count,
	})

	if count < s.cfg.ZoneActivationThreshold {
		log.Debug("Incident count below activation threshold, no transition")
		return nil, nil
	}

	now := s.clock.Now().UTC()
	zone, activated, err := s.zoneRepo.UpsertActive(ctx, city, center, count, now)
	if err != nil {
		log.WithError(err).Error("Failed to upsert danger zone")
		return nil, fmt.Errorf("service: could not upsert danger zone: %w", err)
	}

	if err := s.zoneRepo.InvalidateActiveZonesCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate active zones cache")
	}

	if activated {
		log.Info("Danger zone activated")
		s.publish(ctx, notifier.Event{
			Name:          notifier.EventZoneActivated,
			City:          zone.City,
			IncidentCount: zone.IncidentCount,
			Center:        &zone.Center,
			Timestamp:     now,
		})
		// Оповещение рассылается только при активации, не на каждое обновление
		if err := s.alerts.DispatchCityAlert(ctx, zone.City); err != nil {
			log.WithError(err).Warn("Failed to dispatch city alert")
		}
	} else {
		log.Info("Danger zone count updated")
		s.publish(ctx, notifier.Event{
			Name:          notifier.EventZoneUpdated,
			City:          zone.City,
			IncidentCount: zone.IncidentCount,
			Timestamp:     now,
		})
	}

	return zone, nil
}

// RecomputeAll пересчитывает оконный счетчик каждой активной зоны и
// деактивирует зоны, опустившиеся ниже порога деактивации
func (s *zoneService) RecomputeAll(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "RecomputeAll",
	})
	log.Info("Recomputing all active danger zones")

	zones, err := s.zoneRepo.ListActive(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list active danger zones")
		return fmt.Errorf("service: could not list active zones: %w", err)
	}

	now := s.clock.Now().UTC()
	for _, zone := range zones {
		zoneLog := log.WithField("city", zone.City)

		count, err := s.incidentRepo.CountByCitySince(ctx, zone.City, now.Add(-s.cfg.ReportWindow))
		if err != nil {
			zoneLog.WithError(err).Error("Failed to count incidents for zone, skipping")
			continue
		}

		if count < s.cfg.ZoneDeactivationThreshold {
			deactivated, err := s.zoneRepo.Deactivate(ctx, zone.City, now)
			if err != nil {
				zoneLog.WithError(err).Error("Failed to deactivate danger zone, skipping")
				continue
			}
			if deactivated {
				zoneLog.WithField("count", count).Info("Danger zone deactivated")
				s.publish(ctx, notifier.Event{
					Name:      notifier.EventZoneDeactivated,
					City:      zone.City,
					Timestamp: now,
				})
			}
		} else {
			updated, err := s.zoneRepo.UpdateActiveCount(ctx, zone.City, count, now)
			if err != nil {
				if errors.Is(err, ErrStateConflict) {
					// Живой путь успел перевести зону, пересчет догонит ее в
					// следующем цикле
					zoneLog.Debug("Zone transitioned concurrently, skipping")
					continue
				}
				zoneLog.WithError(err).Error("Failed to update danger zone count, skipping")
				continue
			}
			s.publish(ctx, notifier.Event{
				Name:          notifier.EventZoneUpdated,
				City:          updated.City,
				IncidentCount: updated.IncidentCount,
				Timestamp:     now,
			})
		}

		if err := s.zoneRepo.InvalidateActiveZonesCache(ctx); err != nil {
			zoneLog.WithError(err).Warn("Failed to invalidate active zones cache")
		}
	}

	log.WithField("zones", len(zones)).Info("Recompute finished")
	return nil
}

// ActiveZones возвращает снимок всех активных зон, с кешированием в Redis
func (s *zoneService) ActiveZones(ctx context.Context) ([]*models.DangerZone, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "ActiveZones",
	})

	cached, err := s.zoneRepo.GetActiveZonesFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read active zones cache")
	}
	if cached != nil {
		return cached, nil
	}

	zones, err := s.zoneRepo.ListActive(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list active danger zones")
		return nil, fmt.Errorf("service: could not list active zones: %w", err)
	}

	if err := s.zoneRepo.SetActiveZonesCache(ctx, zones); err != nil {
		log.WithError(err).Warn("Failed to set active zones cache")
	}
	return zones, nil
}

// RunMaintenanceCycle выполняет цикл обслуживания: чистка истекших инцидентов,
// затем пересчет всех активных зон. Конкурентные запуски дедуплицируются.
func (s *zoneService) RunMaintenanceCycle(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "RunMaintenanceCycle",
	})

	if !s.maintenanceRunning.CompareAndSwap(false, true) {
		log.Info("Maintenance cycle already running, skipping")
		return nil
	}
	defer s.maintenanceRunning.Store(false)

	log.Info("Running maintenance cycle")

	purged, err := s.incidentRepo.PurgeExpired(ctx, s.clock.Now().UTC())
	if err != nil {
		log.WithError(err).Error("Failed to purge expired incidents")
		return fmt.Errorf("service: could not purge expired incidents: %w", err)
	}
	log.WithField("purged", purged).Info("Expired incidents purged")

	return s.RecomputeAll(ctx)
}

// publish отправляет событие в очередь; доставка best-effort
func (s *zoneService) publish(ctx context.Context, event notifier.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("event", event.Name).Error("Failed to publish zone event")
	}
}
