package memory

import (
	"errors"
	"sync"

	"github.com/vladislavdragonenkov/crm/internal/domain"
)

// orderRepositoryInMemory — простая in-memory реализация OrderRepository.
// Для фильтра по имени клиента репозиторий обращается к хранилищу клиентов.
type orderRepositoryInMemory struct {
	mu        sync.RWMutex
	items     map[string]domain.Order
	customers domain.CustomerRepository
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewOrderRepository(customers domain.CustomerRepository) domain.OrderRepository {
	return &orderRepositoryInMemory{
		items:     make(map[string]domain.Order),
		customers: customers,
	}
}

// Create сохраняет заказ вместе со связями на товары. Копируем срез,
// чтобы избежать непредсказуемых мутаций извне.
func (r *orderRepositoryInMemory) Create(order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[order.ID]; exists {
		return errors.New("order id already exists")
	}
	order.ProductIDs = append([]string(nil), order.ProductIDs...)
	r.items[order.ID] = order
	return nil
}

// Get возвращает заказ или ErrOrderNotFound, если его нет.
func (r *orderRepositoryInMemory) Get(id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	order.ProductIDs = append([]string(nil), order.ProductIDs...)
	return order, nil
}

// List возвращает заказы, удовлетворяющие фильтру, в стабильном порядке.
func (r *orderRepositoryInMemory) List(filter domain.OrderFilter) ([]domain.Order, error) {
	r.mu.RLock()
	orders := make([]domain.Order, 0, len(r.items))
	for _, order := range r.items {
		order.ProductIDs = append([]string(nil), order.ProductIDs...)
		orders = append(orders, order)
	}
	r.mu.RUnlock()

	result := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		ok, err := r.matchesOrder(filter, order)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, order)
		}
	}
	sortByCreatedAt(result, func(o domain.Order) (string, int64) {
		return o.ID, o.CreatedAt.UnixNano()
	})

	return result, nil
}

func (r *orderRepositoryInMemory) matchesOrder(f domain.OrderFilter, o domain.Order) (bool, error) {
	if f.CustomerNameContains != "" {
		customer, err := r.customers.Get(o.CustomerID)
		if err != nil {
			if errors.Is(err, domain.ErrCustomerNotFound) {
				return false, nil
			}
			return false, err
		}
		if !containsFold(customer.Name, f.CustomerNameContains) {
			return false, nil
		}
	}
	if f.OrderDate != nil && !o.OrderDate.Equal(*f.OrderDate) {
		return false, nil
	}
	if f.OrderDateLTE != nil && o.OrderDate.After(*f.OrderDateLTE) {
		return false, nil
	}
	if f.OrderDateGTE != nil && o.OrderDate.Before(*f.OrderDateGTE) {
		return false, nil
	}
	if f.TotalAmount != nil && !o.TotalAmount.Equal(*f.TotalAmount) {
		return false, nil
	}
	if f.TotalAmountLTE != nil && o.TotalAmount.GreaterThan(*f.TotalAmountLTE) {
		return false, nil
	}
	if f.TotalAmountGTE != nil && o.TotalAmount.LessThan(*f.TotalAmountGTE) {
		return false, nil
	}
	return true, nil
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
