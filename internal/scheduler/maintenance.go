package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/civicshield/evacuation_system/internal/config"
	"github.com/civicshield/evacuation_system/internal/service"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Таймаут одного цикла обслуживания: зависший цикл не должен пережить
// следующий запуск
const maintenanceTimeout = 30 * time.Minute

// MaintenanceScheduler запускает периодический цикл обслуживания зон:
// чистку истекших инцидентов и пересчет активных зон
type MaintenanceScheduler struct {
	cron   *cron.Cron
	zones  service.ZoneService
	spec   string
	logger *logrus.Logger
}

func NewMaintenanceScheduler(zones service.ZoneService, cfg *config.Config, logger *logrus.Logger) *MaintenanceScheduler {
	return &MaintenanceScheduler{
		cron:   cron.New(),
		zones:  zones,
		spec:   cfg.MaintenanceCronSpec,
		logger: logger,
	}
}

// Start регистрирует задачу по cron-расписанию и запускает планировщик
func (s *MaintenanceScheduler) Start() error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "scheduler",
		"spec":    s.spec,
	})

	_, err := s.cron.AddFunc(s.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), maintenanceTimeout)
		defer cancel()

		if err := s.zones.RunMaintenanceCycle(ctx); err != nil {
			log.WithError(err).Error("Maintenance cycle failed")
		}
	})
	if err != nil {
		return fmt.Errorf("scheduler: could not register maintenance job: %w", err)
	}

	s.cron.Start()
	log.Info("Maintenance scheduler started")
	return nil
}

// Stop останавливает планировщик и дожидается завершения запущенных задач
func (s *MaintenanceScheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info("Maintenance scheduler stopped")
}
