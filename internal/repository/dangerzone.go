package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/civicshield/evacuation_system/internal/models"
	"github.com/civicshield/evacuation_system/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const activeZonesCacheKey = "danger_zones:active"

type DangerZoneRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewDangerZoneRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.DangerZoneRepository {
	return &DangerZoneRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// UpsertActive создает зону города или переводит ее в активное состояние,
// обновляя счетчик. Блокировка строки города (FOR UPDATE в CTE) сериализует
// конкурентные переходы одной зоны; переходы разных городов независимы.
// Центр зоны фиксируется при создании: ON CONFLICT намеренно не трогает
// location.
func (r *DangerZoneRepository) UpsertActive(ctx context.Context, city string, center models.Coordinates, count int, now time.Time) (*models.DangerZone, bool, error) {
	query := `
		WITH existing AS (
			SELECT status FROM danger_zones WHERE city = $1 FOR UPDATE
		), upserted AS (
			INSERT INTO danger_zones (city, incident_count, location, status, last_updated)
			VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), 'active', $5)
			ON CONFLICT (city) DO UPDATE SET
				incident_count = EXCLUDED.incident_count,
				status = 'active',
				last_updated = EXCLUDED.last_updated,
				updated_at = NOW()
			RETURNING
				city,
				incident_count,
				ST_Y(location::geometry) AS latitude,
				ST_X(location::geometry) AS longitude,
				status,
				last_updated,
				created_at,
				updated_at
		)
		SELECT
			u.city,
			u.incident_count,
			u.latitude,
			u.longitude,
			u.status,
			u.last_updated,
			u.created_at,
			u.updated_at,
			COALESCE((SELECT e.status FROM existing e), 'missing') AS prev_status
		FROM upserted u;
	`
	zone := &models.DangerZone{}
	var prevStatus string
	err := r.db.QueryRow(ctx, query,
		city,
		count,
		center.Longitude,
		center.Latitude,
		now,
	).Scan(
		&zone.City,
		&zone.IncidentCount,
		&zone.Center.Latitude,
		&zone.Center.Longitude,
		&zone.Status,
		&zone.LastUpdated,
		&zone.CreatedAt,
		&zone.UpdatedAt,
		&prevStatus,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert danger zone: %w", err)
	}

	activated := prevStatus != string(models.ZoneStatusActive)
	return zone, activated, nil
}

// ListActive возвращает все активные зоны из бд
func (r *DangerZoneRepository) ListActive(ctx context.Context) ([]*models.DangerZone, error) {
	query := `
		SELECT
			city,
			incident_count,
			ST_Y(location::geometry) AS latitude,
			ST_X(location::geometry) AS longitude,
			status,
			last_updated,
			created_at,
			updated_at
		FROM danger_zones
		WHERE status = 'active'
		ORDER BY city;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active danger zones: %w", err)
	}
	defer rows.Close()

	zones := make([]*models.DangerZone, 0)
	for rows.Next() {
		zone := &models.DangerZone{}
		err := rows.Scan(
			&zone.City,
			&zone.IncidentCount,
			&zone.Center.Latitude,
			&zone.Center.Longitude,
			&zone.Status,
			&zone.LastUpdated,
			&zone.CreatedAt,
			&zone.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan danger zone row: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListActive: %w", err)
	}
	return zones, nil
}

// UpdateActiveCount обновляет счетчик зоны, только пока она активна.
// Если зона успела деактивироваться, возвращается ErrStateConflict, и
// вызывающий перечитывает актуальное состояние.
func (r *DangerZoneRepository) UpdateActiveCount(ctx context.Context, city string, count int, now time.Time) (*models.DangerZone, error) {
	query := `
		UPDATE danger_zones SET
			incident_count = $2,
			last_updated = $3,
			updated_at = NOW()
		WHERE city = $1 AND status = 'active'
		RETURNING
			city,
			incident_count,
			ST_Y(location::geometry) AS latitude,
			ST_X(location::geometry) AS longitude,
			status,
			last_updated,
			created_at,
			updated_at;
	`
	zone := &models.DangerZone{}
	err := r.db.QueryRow(ctx, query, city, count, now).Scan(
		&zone.City,
		&zone.IncidentCount,
		&zone.Center.Latitude,
		&zone.Center.Longitude,
		&zone.Status,
		&zone.LastUpdated,
		&zone.CreatedAt,
		&zone.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrStateConflict
		}
		return nil, fmt.Errorf("failed to update danger zone count: %w", err)
	}
	return zone, nil
}

// Deactivate переводит активную зону в неактивное состояние. Запись не
// удаляется: история счетчика сохраняется для реактивации.
func (r *DangerZoneRepository) Deactivate(ctx context.Context, city string, now time.Time) (bool, error) {
	query := `
		UPDATE danger_zones SET
			status = 'inactive',
			last_updated = $2,
			updated_at = NOW()
		WHERE city = $1 AND status = 'active';
	`
	cmdTag, err := r.db.Exec(ctx, query, city, now)
	if err != nil {
		return false, fmt.Errorf("failed to deactivate danger zone: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// GetActiveZonesFromCache пытается получить снимок активных зон из Redis
func (r *DangerZoneRepository) GetActiveZonesFromCache(ctx context.Context) ([]*models.DangerZone, error) {
	val, err := r.redisClient.Get(ctx, activeZonesCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active zones from cache: %w", err)
	}

	zones := make([]*models.DangerZone, 0)
	if err := json.Unmarshal(val, &zones); err != nil {
		return nil, fmt.Errorf("failed to unmarshal active zones from cache: %w", err)
	}
	return zones, nil
}

// SetActiveZonesCache сохраняет снимок активных зон в Redis
func (r *DangerZoneRepository) SetActiveZonesCache(ctx context.Context, zones []*models.DangerZone) error {
	val, err := json.Marshal(zones)
	if err != nil {
		return fmt.Errorf("failed to marshal active zones for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, activeZonesCacheKey, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set active zones in cache: %w", err)
	}
	return nil
}

// InvalidateActiveZonesCache удаляет снимок активных зон из Redis кэша
func (r *DangerZoneRepository) InvalidateActiveZonesCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, activeZonesCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate active zones cache: %w", err)
	}
	return nil
}
