package kafka

// OrderEvent is the payload published by the order service on order
// status changes. The loyalty engine only reacts to completed orders.
type OrderEvent struct {
	OrderID    string  `json:"order_id"`
	UserID     string  `json:"user_id"`
	Status     string  `json:"status"`
	AmountFiat float64 `json:"amount_fiat"`
	Currency   string  `json:"currency"`
	Timestamp  int64   `json:"timestamp"`
}

const OrderStatusCompleted = "COMPLETED"
