package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// EventType различает содержательные уведомления и keep-alive сигналы
type EventType string

const (
	// EventChange - "состояние изменилось, перечитайте его"
	EventChange EventType = "change"
	// EventHeartbeat - keep-alive для долгоживущих подключений
	EventHeartbeat EventType = "heartbeat"
)

// Event - сигнал без полезной нагрузки: подписчикам не сообщается,
// что именно изменилось.
type Event struct {
	Type EventType `json:"type"`
	Time time.Time `json:"time"`
}

// Subscriber - один наблюдатель со своей FIFO-очередью сигналов
type Subscriber struct {
	id uuid.UUID
	ch chan Event
}

// Events возвращает канал входящих сигналов подписчика
func (s *Subscriber) Events() <-chan Event {
	return s.ch
}

// Hub - широковещательный узел уведомлений об изменениях с
// динамическим составом подписчиков
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]*Subscriber
	bufferSize  int
	logger      *logrus.Logger
}

// NewHub создает узел; bufferSize - глубина очереди каждого подписчика
func NewHub(bufferSize int, logger *logrus.Logger) *Hub {
	if bufferSize < 1 {
		bufferSize = 16
	}
	return &Hub{
		subscribers: make(map[uuid.UUID]*Subscriber),
		bufferSize:  bufferSize,
		logger:      logger,
	}
}

// Subscribe регистрирует нового наблюдателя
func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{
		id: uuid.New(),
		ch: make(chan Event, h.bufferSize),
	}

	h.mu.Lock()
	h.subscribers[sub.id] = sub
	count := len(h.subscribers)
	h.mu.Unlock()

	h.logger.WithFields(logrus.Fields{
		"component":   "notifier",
		"subscriber":  sub.id,
		"subscribers": count,
	}).Debug("Subscriber registered")
	return sub
}

// Unsubscribe снимает наблюдателя с учета и закрывает его очередь
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	if _, ok := h.subscribers[sub.id]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.subscribers, sub.id)
	close(sub.ch)
	count := len(h.subscribers)
	h.mu.Unlock()

	h.logger.WithFields(logrus.Fields{
		"component":   "notifier",
		"subscriber":  sub.id,
		"subscribers": count,
	}).Debug("Subscriber removed")
}

// Publish рассылает один сигнал об изменении всем текущим подписчикам.
// Отправка неблокирующая: переполненная очередь медленного подписчика
// теряет сигнал, издатель продолжает работу.
func (h *Hub) Publish() {
	h.broadcast(Event{Type: EventChange, Time: time.Now()})
}

// Count возвращает число текущих подписчиков
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// RunHeartbeat шлет keep-alive всем подписчикам с заданным интервалом,
// пока контекст не отменен. Запускается одной горутиной из main.
func (h *Hub) RunHeartbeat(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.broadcast(Event{Type: EventHeartbeat, Time: time.Now()})
		}
	}
}

func (h *Hub) broadcast(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subscribers {
		select {
		case sub.ch <- ev:
		default:
			// Очередь подписчика заполнена, сигнал пропускается
		}
	}
}
