package crm

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/crm/internal/domain"
	"github.com/vladislavdragonenkov/crm/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/crm/internal/metrics"
)

// EventPublisher описывает публикацию доменных событий.
// Реализуется Kafka-продюсером; nil означает, что события не публикуются.
type EventPublisher interface {
	PublishEvent(topic string, key string, event interface{}) error
}

// MessageCustomerCreated возвращается вместе с созданным клиентом.
const MessageCustomerCreated = "Customer created successfully."

const (
	opCreateCustomer      = "create_customer"
	opBulkCreateCustomers = "bulk_create_customers"
	opCreateProduct       = "create_product"
	opCreateOrder         = "create_order"
)

// Service реализует бизнес-логику CRM поверх доменных репозиториев:
// валидация входа, проверка инвариантов и одна запись в хранилище на операцию.
type Service struct {
	customers domain.CustomerRepository
	products  domain.ProductRepository
	orders    domain.OrderRepository
	publisher EventPublisher
	metrics   *metrics.CRMMetrics
	logger    *log.Entry
}

// NewService конструирует сервис с зависимостями. Publisher и metrics опциональны.
func NewService(
	customers domain.CustomerRepository,
	products domain.ProductRepository,
	orders domain.OrderRepository,
	publisher EventPublisher,
	crmMetrics *metrics.CRMMetrics,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "crm-service")
	}
	return &Service{
		customers: customers,
		products:  products,
		orders:    orders,
		publisher: publisher,
		metrics:   crmMetrics,
		logger:    logger,
	}
}

// CustomerInput — входные данные для создания клиента.
type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

// ProductInput — входные данные для создания товара.
type ProductInput struct {
	Name  string
	Price decimal.Decimal
	Stock int32
}

// OrderInput — входные данные для создания заказа.
// OrderDate равный nil означает "текущее время".
type OrderInput struct {
	CustomerID string
	ProductIDs []string
	OrderDate  *time.Time
}

// CreateCustomer создаёт клиента, если email ещё не занят.
// Возвращает созданную запись и подтверждающее сообщение.
func (s *Service) CreateCustomer(input CustomerInput) (domain.Customer, string, error) {
	defer s.observe(opCreateCustomer, time.Now())

	customer, err := s.createCustomer(input, nil)
	if err != nil {
		s.recordFailure(opCreateCustomer)
		return domain.Customer{}, "", err
	}

	return customer, MessageCustomerCreated, nil
}

// BulkCreateCustomers обрабатывает кандидатов независимо друг от друга:
// сбой одного элемента не откатывает и не блокирует остальные. Возвращает
// созданных клиентов и сообщения об ошибках, оба в порядке обработки.
// Дубликаты email внутри одного батча отклоняются так же, как и против
// уже сохранённых записей.
func (s *Service) BulkCreateCustomers(inputs []CustomerInput) ([]domain.Customer, []string) {
	defer s.observe(opBulkCreateCustomers, time.Now())

	created := make([]domain.Customer, 0, len(inputs))
	errMessages := make([]string, 0)
	seenEmails := make(map[string]struct{}, len(inputs))

	for _, input := range inputs {
		customer, err := s.createCustomer(input, seenEmails)
		if err != nil {
			s.recordFailure(opBulkCreateCustomers)
			errMessages = append(errMessages, bulkErrorMessage(input, err))
			continue
		}
		seenEmails[strings.ToLower(customer.Email)] = struct{}{}
		created = append(created, customer)
	}

	return created, errMessages
}

func (s *Service) createCustomer(input CustomerInput, seenEmails map[string]struct{}) (domain.Customer, error) {
	customer := domain.Customer{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Phone:     input.Phone,
		CreatedAt: time.Now().UTC(),
	}

	if errs := customer.ValidateInvariants(); len(errs) > 0 {
		return domain.Customer{}, errs[0]
	}

	if seenEmails != nil {
		if _, ok := seenEmails[strings.ToLower(customer.Email)]; ok {
			return domain.Customer{}, domain.ErrEmailExists
		}
	}

	_, err := s.customers.GetByEmail(customer.Email)
	switch {
	case err == nil:
		return domain.Customer{}, domain.ErrEmailExists
	case !errors.Is(err, domain.ErrCustomerNotFound):
		s.logger.WithError(err).Error("failed to check email uniqueness")
		return domain.Customer{}, fmt.Errorf("check email uniqueness: %w", err)
	}

	// Предварительная проверка не закрывает гонку: хранилище обязано держать
	// уникальный индекс и вернуть ErrEmailExists проигравшему.
	if err := s.customers.Create(customer); err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			return domain.Customer{}, domain.ErrEmailExists
		}
		s.logger.WithError(err).Error("failed to create customer")
		return domain.Customer{}, fmt.Errorf("create customer: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordCustomerCreated()
	}
	s.publish(kafka.TopicCustomerEvents, customer.ID, kafka.NewCustomerCreatedEvent(customer))

	return customer, nil
}

// bulkErrorMessage формирует сообщение об ошибке для элемента батча.
func bulkErrorMessage(input CustomerInput, err error) string {
	if errors.Is(err, domain.ErrEmailExists) {
		return fmt.Sprintf("Email '%s' already exists.", strings.TrimSpace(input.Email))
	}
	return fmt.Sprintf("%s: %s", strings.TrimSpace(input.Email), err.Error())
}

// CreateProduct создаёт товар с точной десятичной ценой.
func (s *Service) CreateProduct(input ProductInput) (domain.Product, error) {
	defer s.observe(opCreateProduct, time.Now())

	product := domain.Product{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(input.Name),
		Price:     input.Price,
		Stock:     input.Stock,
		CreatedAt: time.Now().UTC(),
	}

	if errs := product.ValidateInvariants(); len(errs) > 0 {
		s.recordFailure(opCreateProduct)
		return domain.Product{}, errs[0]
	}

	if err := s.products.Create(product); err != nil {
		s.recordFailure(opCreateProduct)
		s.logger.WithError(err).Error("failed to create product")
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordProductCreated()
	}
	s.publish(kafka.TopicProductEvents, product.ID, kafka.NewProductCreatedEvent(product))

	return product, nil
}

// CreateOrder создаёт заказ: проверяет клиента, разрешает все товары до
// какой-либо записи и сохраняет заказ со связями одной атомарной операцией.
// Сумма заказа — точная десятичная сумма цен в порядке входного списка.
func (s *Service) CreateOrder(input OrderInput) (domain.Order, error) {
	defer s.observe(opCreateOrder, time.Now())

	if _, err := s.customers.Get(input.CustomerID); err != nil {
		s.recordFailure(opCreateOrder)
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return domain.Order{}, domain.ErrCustomerNotFound
		}
		s.logger.WithError(err).Error("failed to load customer for order")
		return domain.Order{}, fmt.Errorf("load customer: %w", err)
	}

	if len(input.ProductIDs) == 0 {
		s.recordFailure(opCreateOrder)
		return domain.Order{}, domain.ErrEmptyProductList
	}

	products := make([]domain.Product, 0, len(input.ProductIDs))
	for _, productID := range input.ProductIDs {
		product, err := s.products.Get(productID)
		if err != nil {
			s.recordFailure(opCreateOrder)
			if errors.Is(err, domain.ErrProductNotFound) {
				return domain.Order{}, &domain.ProductNotFoundError{ProductID: productID}
			}
			s.logger.WithError(err).Error("failed to load product for order")
			return domain.Order{}, fmt.Errorf("load product %s: %w", productID, err)
		}
		products = append(products, product)
	}

	now := time.Now().UTC()
	orderDate := now
	if input.OrderDate != nil {
		orderDate = input.OrderDate.UTC()
	}

	order := domain.Order{
		ID:          uuid.NewString(),
		CustomerID:  input.CustomerID,
		ProductIDs:  append([]string(nil), input.ProductIDs...),
		OrderDate:   orderDate,
		TotalAmount: domain.TotalOf(products),
		CreatedAt:   now,
	}

	if errs := order.ValidateInvariants(); len(errs) > 0 {
		s.recordFailure(opCreateOrder)
		return domain.Order{}, errs[0]
	}

	if err := s.orders.Create(order); err != nil {
		s.recordFailure(opCreateOrder)
		s.logger.WithError(err).Error("failed to create order")
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordOrderCreated()
	}
	s.publish(kafka.TopicOrderEvents, order.ID, kafka.NewOrderCreatedEvent(order))

	return order, nil
}

// GetCustomer возвращает клиента по идентификатору.
func (s *Service) GetCustomer(id string) (domain.Customer, error) {
	return s.customers.Get(id)
}

// GetProduct возвращает товар по идентификатору.
func (s *Service) GetProduct(id string) (domain.Product, error) {
	return s.products.Get(id)
}

// ListCustomers возвращает клиентов по фильтру; пустой фильтр означает всех.
func (s *Service) ListCustomers(filter domain.CustomerFilter) ([]domain.Customer, error) {
	return s.customers.List(filter)
}

// ListProducts возвращает товары по фильтру; пустой фильтр означает все.
func (s *Service) ListProducts(filter domain.ProductFilter) ([]domain.Product, error) {
	return s.products.List(filter)
}

// ListOrders возвращает заказы по фильтру; пустой фильтр означает все.
func (s *Service) ListOrders(filter domain.OrderFilter) ([]domain.Order, error) {
	return s.orders.List(filter)
}

// publish отправляет событие, если продюсер настроен. Сбой публикации не
// влияет на результат операции.
func (s *Service) publish(topic, key string, event interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEvent(topic, key, event); err != nil {
		s.logger.WithError(err).WithField("topic", topic).Warn("failed to publish event")
	}
}

func (s *Service) observe(operation string, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveRequestDuration(operation, time.Since(start))
	}
}

func (s *Service) recordFailure(operation string) {
	if s.metrics != nil {
		s.metrics.RecordMutationFailure(operation)
	}
}
