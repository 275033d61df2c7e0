package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-loyalty-service/internal/domain"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/kafka"
)

// StartOrderEventWorker consumes order events from the order service
// and feeds completed orders into accrual. Runs until the context is
// canceled or the subscription channel closes.
func (uc *DefaultAccrualUsecase) StartOrderEventWorker(ctx context.Context, subscriber domain.SubscriberPort, topic, groupID string) {
	messages, err := subscriber.Subscribe(topic, groupID)
	if err != nil {
		slog.Error("failed to subscribe to order events", "topic", topic, "error", err.Error())
		return
	}
	slog.Info("order event worker started", "topic", topic, "group_id", groupID)

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				slog.Error("order event channel closed", "topic", topic)
				return
			}
			uc.handleOrderMessage(msg)
		}
	}
}

func (uc *DefaultAccrualUsecase) handleOrderMessage(msg domain.Message) {
	var event kafka.OrderEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		slog.Error("failed to decode order event", "error", err.Error())
		if uc.Metrics != nil {
			uc.Metrics.RecordAccrualError("decode_event")
		}
		return
	}
	if event.Status != kafka.OrderStatusCompleted {
		return
	}
	orderTime := time.Now()
	if event.Timestamp > 0 {
		orderTime = time.Unix(event.Timestamp, 0)
	}
	uc.HandleOrderCompleted(event.UserID, event.AmountFiat, orderTime)
}
