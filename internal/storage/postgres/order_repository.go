package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/vladislavdragonenkov/crm/internal/domain"
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

// Create сохраняет заказ и связи на товары одной транзакцией, чтобы не могло
// остаться заказа без привязанных товаров.
func (r *orderRepository) Create(order domain.Order) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, customer_id, order_date, total_amount, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`,
		order.ID, order.CustomerID, order.OrderDate, order.TotalAmount, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	// Повторы одного product_id в заказе схлопываются: связь хранится как
	// множество, позиция фиксирует первое вхождение.
	seen := make(map[string]struct{}, len(order.ProductIDs))
	position := 0
	for _, productID := range order.ProductIDs {
		if _, ok := seen[productID]; ok {
			continue
		}
		seen[productID] = struct{}{}

		if _, err = tx.ExecContext(ctx, `
			INSERT INTO order_products (order_id, product_id, position)
			VALUES ($1,$2,$3)
		`, order.ID, productID, position); err != nil {
			return fmt.Errorf("insert order product link: %w", err)
		}
		position++
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit create order: %w", err)
	}

	return nil
}

func (r *orderRepository) Get(id string) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var order domain.Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, customer_id, order_date, total_amount, created_at
		FROM orders
		WHERE id = $1
	`, id).Scan(
		&order.ID, &order.CustomerID, &order.OrderDate, &order.TotalAmount, &order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}

	productIDs, err := r.loadProductIDs(ctx, order.ID)
	if err != nil {
		return domain.Order{}, err
	}
	order.ProductIDs = productIDs

	return order, nil
}

func (r *orderRepository) List(filter domain.OrderFilter) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	query := `
		SELECT o.id, o.customer_id, o.order_date, o.total_amount, o.created_at
		FROM orders o
	`
	if filter.CustomerNameContains != "" {
		query += " JOIN customers c ON c.id = o.customer_id"
	}
	where, args := buildOrderWhere(filter)
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY o.created_at ASC, o.id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID, &order.CustomerID, &order.OrderDate, &order.TotalAmount, &order.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	for i := range orders {
		productIDs, err := r.loadProductIDs(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].ProductIDs = productIDs
	}

	return orders, nil
}

func buildOrderWhere(f domain.OrderFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.CustomerNameContains != "" {
		add("c.name ILIKE '%%' || $%d || '%%'", f.CustomerNameContains)
	}
	if f.OrderDate != nil {
		add("o.order_date = $%d", *f.OrderDate)
	}
	if f.OrderDateLTE != nil {
		add("o.order_date <= $%d", *f.OrderDateLTE)
	}
	if f.OrderDateGTE != nil {
		add("o.order_date >= $%d", *f.OrderDateGTE)
	}
	if f.TotalAmount != nil {
		add("o.total_amount = $%d", *f.TotalAmount)
	}
	if f.TotalAmountLTE != nil {
		add("o.total_amount <= $%d", *f.TotalAmountLTE)
	}
	if f.TotalAmountGTE != nil {
		add("o.total_amount >= $%d", *f.TotalAmountGTE)
	}

	return strings.Join(conds, " AND "), args
}

func (r *orderRepository) loadProductIDs(ctx context.Context, orderID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT product_id
		FROM order_products
		WHERE order_id = $1
		ORDER BY position ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order product links: %w", err)
	}
	defer rows.Close()

	productIDs := make([]string, 0)
	for rows.Next() {
		var productID string
		if err := rows.Scan(&productID); err != nil {
			return nil, fmt.Errorf("scan order product link: %w", err)
		}
		productIDs = append(productIDs, productID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order product links: %w", err)
	}

	return productIDs, nil
}

var _ domain.OrderRepository = (*orderRepository)(nil)
