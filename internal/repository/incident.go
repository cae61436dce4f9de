package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/civicshield/evacuation_system/internal/models"
	"github.com/civicshield/evacuation_system/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) service.IncidentRepository {
	return &IncidentRepository{
		db: db,
	}
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (reporter_id, location, city, reported_at, expires_at)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5, $6) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		incident.ReporterID,
		incident.Longitude,
		incident.Latitude,
		incident.City,
		incident.ReportedAt,
		incident.ExpiresAt,
	).Scan(&incident.ID)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// CountByCitySince возвращает число инцидентов города, зарегистрированных
// не раньше указанного момента. Поле expires_at здесь намеренно не участвует:
// TTL и скользящее окно подсчета - независимые политики.
func (r *IncidentRepository) CountByCitySince(ctx context.Context, city string, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM incidents
		WHERE city = $1 AND reported_at >= $2;
	`
	var count int
	err := r.db.QueryRow(ctx, query, city, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count incidents for city: %w", err)
	}
	return count, nil
}

// PurgeExpired удаляет все инциденты с истекшим сроком жизни. Идемпотентна
// и безопасна при конкурентных чтениях.
func (r *IncidentRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `
		DELETE FROM incidents
		WHERE expires_at < $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired incidents: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// GetThrottle возвращает запись троттлинга по пользователю или nil, если
// пользователь еще не репортил
func (r *IncidentRepository) GetThrottle(ctx context.Context, reporterID string) (*models.ReportThrottle, error) {
	throttle := &models.ReportThrottle{}
	query := `
		SELECT reporter_id, last_report_city, last_report_time
		FROM report_throttles
		WHERE reporter_id = $1;
	`
	err := r.db.QueryRow(ctx, query, reporterID).Scan(
		&throttle.ReporterID,
		&throttle.LastReportCity,
		&throttle.LastReportTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report throttle: %w", err)
	}
	return throttle, nil
}

// UpsertThrottle создает или обновляет запись троттлинга пользователя
func (r *IncidentRepository) UpsertThrottle(ctx context.Context, throttle *models.ReportThrottle) error {
	query := `
		INSERT INTO report_throttles (reporter_id, last_report_city, last_report_time)
		VALUES ($1, $2, $3)
		ON CONFLICT (reporter_id) DO UPDATE SET
			last_report_city = EXCLUDED.last_report_city,
			last_report_time = EXCLUDED.last_report_time;
	`
	_, err := r.db.Exec(ctx, query,
		throttle.ReporterID,
		throttle.LastReportCity,
		throttle.LastReportTime,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert report throttle: %w", err)
	}
	return nil
}

// SaveDangerCheck сохраняет запись о проверке местоположения в бд
func (r *IncidentRepository) SaveDangerCheck(ctx context.Context, check *models.DangerCheck) error {
	query := `
		INSERT INTO danger_checks (user_id, location, is_dangerous, checked_at)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		check.UserID,
		check.Longitude,
		check.Latitude,
		check.IsDangerous,
		check.CheckedAt,
	).Scan(&check.ID)
	if err != nil {
		return fmt.Errorf("failed to save danger check: %w", err)
	}
	return nil
}

// GetDangerCheckStats возвращает количество уникальных пользователей,
// проверивших геолокацию за последние minutes минут
func (r *IncidentRepository) GetDangerCheckStats(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM danger_checks
		WHERE checked_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get danger check stats: %w", err)
	}
	return count, nil
}
