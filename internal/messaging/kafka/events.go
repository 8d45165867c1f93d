package kafka

import (
	"time"

	"github.com/vladislavdragonenkov/crm/internal/domain"
)

// EventType определяет тип события
type EventType string

const (
	EventTypeCustomerCreated EventType = "customer.created"
	EventTypeProductCreated  EventType = "product.created"
	EventTypeOrderCreated    EventType = "order.created"
)

// Topics для Kafka
const (
	TopicCustomerEvents = "crm.customer.events"
	TopicProductEvents  = "crm.product.events"
	TopicOrderEvents    = "crm.order.events"
)

// CustomerEvent представляет событие по клиенту
type CustomerEvent struct {
	EventType  EventType `json:"event_type"`
	CustomerID string    `json:"customer_id"`
	Email      string    `json:"email"`
	Timestamp  time.Time `json:"timestamp"`
}

// ProductEvent представляет событие по товару
type ProductEvent struct {
	EventType EventType `json:"event_type"`
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
	Stock     int32     `json:"stock"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderEvent представляет событие по заказу
type OrderEvent struct {
	EventType   EventType `json:"event_type"`
	OrderID     string    `json:"order_id"`
	CustomerID  string    `json:"customer_id"`
	ProductIDs  []string  `json:"product_ids"`
	TotalAmount string    `json:"total_amount"`
	OrderDate   time.Time `json:"order_date"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewCustomerCreatedEvent создаёт событие о появлении клиента.
func NewCustomerCreatedEvent(customer domain.Customer) CustomerEvent {
	return CustomerEvent{
		EventType:  EventTypeCustomerCreated,
		CustomerID: customer.ID,
		Email:      customer.Email,
		Timestamp:  time.Now().UTC(),
	}
}

// NewProductCreatedEvent создаёт событие о появлении товара.
// Цена сериализуется строкой, чтобы не терять точность десятичного значения.
func NewProductCreatedEvent(product domain.Product) ProductEvent {
	return ProductEvent{
		EventType: EventTypeProductCreated,
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price.String(),
		Stock:     product.Stock,
		Timestamp: time.Now().UTC(),
	}
}

// NewOrderCreatedEvent создаёт событие о появлении заказа.
func NewOrderCreatedEvent(order domain.Order) OrderEvent {
	return OrderEvent{
		EventType:   EventTypeOrderCreated,
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		ProductIDs:  append([]string(nil), order.ProductIDs...),
		TotalAmount: order.TotalAmount.String(),
		OrderDate:   order.OrderDate,
		Timestamp:   time.Now().UTC(),
	}
}
