package seed

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/crm/internal/domain"
)

// Seeder идемпотентно наполняет хранилище фиксированными записями для
// локальной разработки. Поиск по натуральному ключу: email для клиентов,
// название для товаров.
type Seeder struct {
	customers domain.CustomerRepository
	products  domain.ProductRepository
	logger    *log.Entry
}

// NewSeeder конструирует Seeder с зависимостями.
func NewSeeder(customers domain.CustomerRepository, products domain.ProductRepository, logger *log.Entry) *Seeder {
	if logger == nil {
		logger = log.New().WithField("component", "seeder")
	}
	return &Seeder{
		customers: customers,
		products:  products,
		logger:    logger,
	}
}

type seedProduct struct {
	name  string
	price string
	stock int32
}

var (
	seedCustomers = []domain.Customer{
		{Name: "John Doe", Email: "john@example.com"},
		{Name: "Jane Doe", Email: "jane@example.com"},
	}
	seedProducts = []seedProduct{
		{name: "Phone", price: "299.99", stock: 50},
		{name: "Tablet", price: "199.99", stock: 30},
	}
)

// Seed гарантирует наличие фиксированных клиентов и товаров.
// Повторный запуск ничего не дублирует.
func (s *Seeder) Seed() error {
	for _, c := range seedCustomers {
		if err := s.ensureCustomer(c); err != nil {
			return err
		}
	}
	for _, p := range seedProducts {
		if err := s.ensureProduct(p); err != nil {
			return err
		}
	}

	s.logger.Info("seeded initial data")
	return nil
}

func (s *Seeder) ensureCustomer(c domain.Customer) error {
	_, err := s.customers.GetByEmail(c.Email)
	if err == nil {
		s.logger.WithField("email", c.Email).Debug("customer already seeded")
		return nil
	}
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		return fmt.Errorf("lookup customer %s: %w", c.Email, err)
	}

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	if err := s.customers.Create(c); err != nil {
		// Параллельный seed мог успеть раньше; это не ошибка.
		if errors.Is(err, domain.ErrEmailExists) {
			return nil
		}
		return fmt.Errorf("seed customer %s: %w", c.Email, err)
	}

	s.logger.WithField("email", c.Email).Info("seeded customer")
	return nil
}

func (s *Seeder) ensureProduct(p seedProduct) error {
	existing, err := s.products.List(domain.ProductFilter{Name: p.name})
	if err != nil {
		return fmt.Errorf("lookup product %s: %w", p.name, err)
	}
	if len(existing) > 0 {
		s.logger.WithField("name", p.name).Debug("product already seeded")
		return nil
	}

	price, err := decimal.NewFromString(p.price)
	if err != nil {
		return fmt.Errorf("parse seed price for %s: %w", p.name, err)
	}

	product := domain.Product{
		ID:        uuid.NewString(),
		Name:      p.name,
		Price:     price,
		Stock:     p.stock,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.products.Create(product); err != nil {
		return fmt.Errorf("seed product %s: %w", p.name, err)
	}

	s.logger.WithField("name", p.name).Info("seeded product")
	return nil
}
