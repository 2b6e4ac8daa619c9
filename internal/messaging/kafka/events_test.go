package kafka

import (
	"encoding/json"
	"testing"
)

func TestNewOrderEvent(t *testing.T) {
	event := NewOrderEvent(EventTypeOrderCreated, 1, 7, "24.50", 2)

	if event.EventID == "" {
		t.Fatal("expected generated event id")
	}
	if event.EventType != EventTypeOrderCreated {
		t.Fatalf("unexpected event type: %s", event.EventType)
	}
	if event.OrderID != 1 || event.CustomerID != 7 || event.LineCount != 2 {
		t.Fatalf("unexpected event payload: %+v", event)
	}
	if event.Timestamp.IsZero() {
		t.Fatal("expected timestamp to be set")
	}
}

func TestOrderEventJSONShape(t *testing.T) {
	event := NewOrderEvent(EventTypeOrderDeleted, 5, 0, "", 0)

	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}
	if decoded["event_type"] != "order.deleted" {
		t.Fatalf("unexpected event_type: %v", decoded["event_type"])
	}
	// Пустые customer_id и total опускаются.
	if _, ok := decoded["customer_id"]; ok {
		t.Fatal("expected empty customer_id to be omitted")
	}
	if _, ok := decoded["total"]; ok {
		t.Fatal("expected empty total to be omitted")
	}
}
