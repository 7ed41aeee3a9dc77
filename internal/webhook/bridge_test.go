package webhook_test

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/alarmmonitor/fleet_coordination_system/internal/notifier"
	"github.com/alarmmonitor/fleet_coordination_system/internal/webhook"
	"github.com/alarmmonitor/fleet_coordination_system/internal/webhook/mocks"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func TestBridge_ForwardsChangeEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisherMock := mocks.NewMockChangePublisher(ctrl)
	hub := notifier.NewHub(4, newTestLogger())

	var wg sync.WaitGroup
	wg.Add(1)
	publisherMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.ChangeEvent) error {
			defer wg.Done()
			assert.Equal(t, webhook.EventStateChanged, event.Event)
			assert.False(t, event.Timestamp.IsZero())
			return nil
		}).
		Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bridge := webhook.NewBridge(hub, publisherMock, newTestLogger())
	bridge.Start(ctx)

	// Дождаться регистрации подписки моста
	waitForSubscribers(t, hub, 1)

	hub.Publish()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("change event was not forwarded to the publisher")
	}
}

// Heartbeat-сигналы наружу не уходят
func TestBridge_DropsHeartbeats(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisherMock := mocks.NewMockChangePublisher(ctrl)
	hub := notifier.NewHub(4, newTestLogger())

	// Никаких вызовов Publish не ожидается
	ctx, cancel := context.WithCancel(context.Background())

	bridge := webhook.NewBridge(hub, publisherMock, newTestLogger())
	bridge.Start(ctx)
	waitForSubscribers(t, hub, 1)

	heartbeatCtx, heartbeatCancel := context.WithCancel(context.Background())
	go hub.RunHeartbeat(heartbeatCtx, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	heartbeatCancel()
	cancel()

	// gomock-контроллер при завершении теста проверит, что Publish не звали
	_ = publisherMock
}

func waitForSubscribers(t *testing.T, hub *notifier.Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for hub.Count() < want {
		if time.Now().After(deadline) {
			t.Fatalf("hub never reached %d subscribers", want)
		}
		time.Sleep(time.Millisecond)
	}
}
