package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/crm/internal/domain"
)

// productRepositoryInMemory — простая in-memory реализация ProductRepository.
type productRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Product
}

// NewProductRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewProductRepository() domain.ProductRepository {
	return &productRepositoryInMemory{
		items: make(map[string]domain.Product),
	}
}

// Create сохраняет новый товар.
func (r *productRepositoryInMemory) Create(product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[product.ID] = product
	return nil
}

// Get возвращает товар или ErrProductNotFound, если его нет.
func (r *productRepositoryInMemory) Get(id string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.items[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return product, nil
}

// List возвращает товары, удовлетворяющие фильтру, в стабильном порядке.
func (r *productRepositoryInMemory) List(filter domain.ProductFilter) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Product, 0, len(r.items))
	for _, product := range r.items {
		if !matchesProduct(filter, product) {
			continue
		}
		result = append(result, product)
	}
	sortByCreatedAt(result, func(p domain.Product) (string, int64) {
		return p.ID, p.CreatedAt.UnixNano()
	})

	return result, nil
}

func matchesProduct(f domain.ProductFilter, p domain.Product) bool {
	if f.Name != "" && p.Name != f.Name {
		return false
	}
	if f.NameContains != "" && !containsFold(p.Name, f.NameContains) {
		return false
	}
	if f.NameStartsWith != "" && !hasPrefixFold(p.Name, f.NameStartsWith) {
		return false
	}
	if f.Price != nil && !p.Price.Equal(*f.Price) {
		return false
	}
	if f.PriceLTE != nil && p.Price.GreaterThan(*f.PriceLTE) {
		return false
	}
	if f.PriceGTE != nil && p.Price.LessThan(*f.PriceGTE) {
		return false
	}
	return true
}

var _ domain.ProductRepository = (*productRepositoryInMemory)(nil)
