package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	changeQueueKey = "fleet_change_events"
)

// EventStateChanged - единственный тип события, который шлет ядро
const EventStateChanged = "fleet.state_changed"

// ChangeEvent - полезная нагрузка вебхука об изменении состояния
// флота. Внешним потребителям не сообщается, что именно изменилось:
// сигнал означает «перечитайте состояние».
type ChangeEvent struct {
	Event     string    `json:"event"`
	Timestamp time.Time `json:"timestamp"`
}

// ChangePublisher - интерфейс для публикации событий изменения
type ChangePublisher interface {
	Publish(ctx context.Context, event ChangeEvent) error
}

// RedisChangePublisher - реализация ChangePublisher поверх очереди Redis
type RedisChangePublisher struct {
	redisClient *redis.Client
}

// NewRedisChangePublisher создает новый RedisChangePublisher
func NewRedisChangePublisher(client *redis.Client) *RedisChangePublisher {
	return &RedisChangePublisher{
		redisClient: client,
	}
}

// Publish публикует событие изменения в очередь Redis
func (p *RedisChangePublisher) Publish(ctx context.Context, event ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	// LPUSH кладет событие в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, changeQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish change event to Redis: %w", err)
	}
	return nil
}
