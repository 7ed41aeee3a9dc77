package webhook

import (
	"context"

	"github.com/alarmmonitor/fleet_coordination_system/internal/notifier"
	"github.com/sirupsen/logrus"
)

// Bridge пересылает сигналы внутреннего узла уведомлений во внешнюю
// очередь вебхуков. Heartbeat-сигналы наружу не уходят.
type Bridge struct {
	hub       *notifier.Hub
	publisher ChangePublisher
	logger    *logrus.Logger
}

// NewBridge создает мост между узлом уведомлений и очередью вебхуков
func NewBridge(hub *notifier.Hub, publisher ChangePublisher, logger *logrus.Logger) *Bridge {
	return &Bridge{
		hub:       hub,
		publisher: publisher,
		logger:    logger,
	}
}

// Start подписывает мост на узел и запускает горутину пересылки
func (b *Bridge) Start(ctx context.Context) {
	sub := b.hub.Subscribe()
	go func() {
		defer b.hub.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub.Events():
				if !ok {
					return
				}
				if ev.Type != notifier.EventChange {
					continue
				}
				event := ChangeEvent{Event: EventStateChanged, Timestamp: ev.Time}
				if err := b.publisher.Publish(ctx, event); err != nil {
					// Доставка вебхуков - best effort, внутреннее
					// состояние от нее не зависит
					b.logger.WithError(err).Warn("Failed to enqueue change event for webhook delivery")
				}
			}
		}
	}()
}
