package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/vladislavdragonenkov/crm/internal/domain"
)

// customerRepositoryInMemory — простая in-memory реализация CustomerRepository.
type customerRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Customer
}

// NewCustomerRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewCustomerRepository() domain.CustomerRepository {
	return &customerRepositoryInMemory{
		items: make(map[string]domain.Customer),
	}
}

// Create сохраняет нового клиента, проверяя уникальность email.
func (r *customerRepositoryInMemory) Create(customer domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if strings.EqualFold(existing.Email, customer.Email) {
			return domain.ErrEmailExists
		}
	}
	r.items[customer.ID] = customer
	return nil
}

// Get возвращает клиента или ErrCustomerNotFound, если его нет.
func (r *customerRepositoryInMemory) Get(id string) (domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.items[id]
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return customer, nil
}

// GetByEmail возвращает клиента по email или ErrCustomerNotFound, если его нет.
func (r *customerRepositoryInMemory) GetByEmail(email string) (domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, customer := range r.items {
		if strings.EqualFold(customer.Email, email) {
			return customer, nil
		}
	}
	return domain.Customer{}, domain.ErrCustomerNotFound
}

// List возвращает клиентов, удовлетворяющих фильтру, в стабильном порядке.
func (r *customerRepositoryInMemory) List(filter domain.CustomerFilter) ([]domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Customer, 0, len(r.items))
	for _, customer := range r.items {
		if !matchesCustomer(filter, customer) {
			continue
		}
		result = append(result, customer)
	}
	sortByCreatedAt(result, func(c domain.Customer) (string, int64) {
		return c.ID, c.CreatedAt.UnixNano()
	})

	return result, nil
}

func matchesCustomer(f domain.CustomerFilter, c domain.Customer) bool {
	if f.Name != "" && c.Name != f.Name {
		return false
	}
	if f.NameContains != "" && !containsFold(c.Name, f.NameContains) {
		return false
	}
	if f.NameStartsWith != "" && !hasPrefixFold(c.Name, f.NameStartsWith) {
		return false
	}
	if f.Email != "" && c.Email != f.Email {
		return false
	}
	if f.EmailContains != "" && !containsFold(c.Email, f.EmailContains) {
		return false
	}
	return true
}

// containsFold — регистронезависимый аналог strings.Contains,
// чтобы поведение совпадало с ILIKE в PostgreSQL-реализации.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func hasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}

// sortByCreatedAt сортирует записи по времени создания, затем по ID.
func sortByCreatedAt[T any](items []T, key func(T) (string, int64)) {
	sort.Slice(items, func(i, j int) bool {
		idI, tsI := key(items[i])
		idJ, tsJ := key(items[j])
		if tsI != tsJ {
			return tsI < tsJ
		}
		return idI < idJ
	})
}

var _ domain.CustomerRepository = (*customerRepositoryInMemory)(nil)
