package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/civicshield/evacuation_system/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	eventQueueKey = "zone_events"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

type EventName string

const (
	EventZoneActivated   EventName = "zone_activated"
	EventZoneUpdated     EventName = "zone_updated"
	EventZoneDeactivated EventName = "zone_deactivated"
)

// Event - событие жизненного цикла опасной зоны для рассылки подписчикам.
// Доставка best-effort, exactly-once не гарантируется.
type Event struct {
	Name          EventName           `json:"name"`
	City          string              `json:"city"`
	IncidentCount int                 `json:"incident_count,omitempty"`
	Center        *models.Coordinates `json:"center,omitempty"`
	Timestamp     time.Time           `json:"timestamp"`
}

// Publisher - интерфейс для публикации событий зон
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// AlertDispatcher - интерфейс исходящих оповещений жителям города.
// Вызывается ровно один раз на активацию зоны, не на каждое обновление.
type AlertDispatcher interface {
	DispatchCityAlert(ctx context.Context, city string) error
}

// RedisPublisher - реализация Publisher, использующая очередь в Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие зоны в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal zone event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish zone event to Redis: %w", err)
	}
	return nil
}
