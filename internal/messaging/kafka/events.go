package kafka

import (
	"time"

	"github.com/google/uuid"
)

// EventType определяет тип события заказа.
type EventType string

const (
	EventTypeOrderCreated EventType = "order.created"
	EventTypeOrderUpdated EventType = "order.updated"
	EventTypeOrderDeleted EventType = "order.deleted"
)

// TopicOrderEvents — топик для событий заказов.
const TopicOrderEvents = "tienda.order.events"

// OrderEvent представляет событие жизненного цикла заказа.
// Публикуется после коммита соответствующей транзакции.
type OrderEvent struct {
	EventID    string    `json:"event_id"`
	EventType  EventType `json:"event_type"`
	OrderID    int64     `json:"order_id"`
	CustomerID int64     `json:"customer_id,omitempty"`
	Total      string    `json:"total,omitempty"`
	LineCount  int       `json:"line_count"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewOrderEvent создает новое событие заказа.
func NewOrderEvent(eventType EventType, orderID, customerID int64, total string, lineCount int) *OrderEvent {
	return &OrderEvent{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		OrderID:    orderID,
		CustomerID: customerID,
		Total:      total,
		LineCount:  lineCount,
		Timestamp:  time.Now().UTC(),
	}
}
