package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/LavaJover/shvark-loyalty-service/internal/domain"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscriber struct {
	messages chan domain.Message
}

func (s *fakeSubscriber) Subscribe(topic, groupID string) (<-chan domain.Message, error) {
	return s.messages, nil
}

func orderMessage(t *testing.T, event kafka.OrderEvent) domain.Message {
	t.Helper()
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return domain.Message{Key: []byte(event.UserID), Value: payload}
}

func TestOrderEventWorkerAccruesCompletedOrders(t *testing.T) {
	program := tieredProgram()
	program.Levels = []domain.Level{{ID: "l1", Name: "Base", MinPoints: 0, CashbackPercent: 10}}
	uc, progressRepo := newAccrualFixture(program)

	sub := &fakeSubscriber{messages: make(chan domain.Message, 4)}
	sub.messages <- orderMessage(t, kafka.OrderEvent{
		OrderID: "order-1", UserID: "user-1", Status: kafka.OrderStatusCompleted,
		AmountFiat: 1500, Currency: "RUB", Timestamp: time.Now().Unix(),
	})
	// Non-terminal statuses and broken payloads are skipped.
	sub.messages <- orderMessage(t, kafka.OrderEvent{
		OrderID: "order-2", UserID: "user-1", Status: "PENDING", AmountFiat: 9999,
	})
	sub.messages <- domain.Message{Value: []byte("not json")}
	close(sub.messages)

	// The worker returns once the channel drains and closes.
	uc.StartOrderEventWorker(context.Background(), sub, "orders", "loyalty")

	progress, err := progressRepo.GetProgress("user-1", "loyalty")
	require.NoError(t, err)
	assert.Equal(t, 1500.0, progress.YearlyTotal)
	assert.Equal(t, int32(1), progress.YearlyOrderCount)
	assert.Equal(t, 150.0, progress.BonusPoints)
}

func TestOrderEventWorkerStopsOnContextCancel(t *testing.T) {
	uc, _ := newAccrualFixture(tieredProgram())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		uc.StartOrderEventWorker(ctx, &fakeSubscriber{messages: make(chan domain.Message)}, "orders", "loyalty")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop on context cancel")
	}
}
