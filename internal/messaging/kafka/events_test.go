package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/crm/internal/domain"
)

func TestNewCustomerCreatedEvent(t *testing.T) {
	customer := domain.Customer{
		ID:    "c1",
		Name:  "Alice",
		Email: "alice@example.com",
	}

	event := NewCustomerCreatedEvent(customer)
	if event.EventType != EventTypeCustomerCreated {
		t.Errorf("expected event type %s, got %s", EventTypeCustomerCreated, event.EventType)
	}
	if event.CustomerID != "c1" || event.Email != "alice@example.com" {
		t.Errorf("unexpected event payload: %+v", event)
	}
	if event.Timestamp.IsZero() {
		t.Error("timestamp should be set")
	}
}

// Цена в событии сериализуется строкой без потери точности.
func TestNewProductCreatedEvent(t *testing.T) {
	product := domain.Product{
		ID:    "p1",
		Name:  "Phone",
		Price: decimal.RequireFromString("299.99"),
		Stock: 50,
	}

	event := NewProductCreatedEvent(product)
	if event.EventType != EventTypeProductCreated {
		t.Errorf("expected event type %s, got %s", EventTypeProductCreated, event.EventType)
	}
	if event.Price != "299.99" {
		t.Errorf("expected price string 299.99, got %s", event.Price)
	}
	if event.Stock != 50 {
		t.Errorf("expected stock 50, got %d", event.Stock)
	}
}

func TestNewOrderCreatedEvent(t *testing.T) {
	order := domain.Order{
		ID:          "o1",
		CustomerID:  "c1",
		ProductIDs:  []string{"p1", "p2"},
		OrderDate:   time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC),
		TotalAmount: decimal.RequireFromString("15.50"),
	}

	event := NewOrderCreatedEvent(order)
	if event.EventType != EventTypeOrderCreated {
		t.Errorf("expected event type %s, got %s", EventTypeOrderCreated, event.EventType)
	}
	if event.TotalAmount != "15.50" {
		t.Errorf("expected total string 15.50, got %s", event.TotalAmount)
	}
	if len(event.ProductIDs) != 2 {
		t.Errorf("expected 2 product ids, got %v", event.ProductIDs)
	}

	// Событие не должно делить срез с заказом.
	order.ProductIDs[0] = "mutated"
	if event.ProductIDs[0] != "p1" {
		t.Error("event product ids must not alias the order slice")
	}
}

func TestOrderEventJSON(t *testing.T) {
	event := NewOrderCreatedEvent(domain.Order{
		ID:          "o1",
		CustomerID:  "c1",
		ProductIDs:  []string{"p1"},
		TotalAmount: decimal.RequireFromString("10.00"),
	})

	raw, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}
	if decoded["event_type"] != "order.created" {
		t.Errorf("expected event_type order.created, got %v", decoded["event_type"])
	}
	if decoded["total_amount"] != "10.00" {
		t.Errorf("expected total_amount as string, got %v", decoded["total_amount"])
	}
}
