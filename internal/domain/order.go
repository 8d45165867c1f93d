package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order агрегирует заказ: ссылку на клиента, набор товаров и зафиксированную сумму.
type Order struct {
	ID string
	// CustomerID ссылается на существующего клиента.
	CustomerID string
	// ProductIDs — идентификаторы товаров заказа в порядке, в котором их передал вызывающий.
	ProductIDs []string
	// OrderDate — момент оформления заказа; по умолчанию время создания.
	OrderDate time.Time
	// TotalAmount — точная десятичная сумма цен товаров на момент создания заказа.
	// После создания не пересчитывается.
	TotalAmount decimal.Decimal
	// CreatedAt фиксирует момент создания записи.
	CreatedAt time.Time
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.CustomerID == "" {
		errs = append(errs, ErrCustomerNotFound)
	}
	if len(o.ProductIDs) == 0 {
		errs = append(errs, ErrEmptyProductList)
	}
	if o.TotalAmount.IsNegative() {
		errs = append(errs, ErrTotalAmountNegative)
	}

	return errs
}

// TotalOf вычисляет сумму заказа как точную десятичную сумму цен товаров
// в порядке их следования во входном списке.
func TotalOf(products []Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}
	return total
}
