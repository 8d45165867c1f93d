package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerFilter описывает поля фильтрации при выборке клиентов.
// Пустое строковое поле означает отсутствие условия.
type CustomerFilter struct {
	Name           string
	NameContains   string
	NameStartsWith string
	Email          string
	EmailContains  string
}

// ProductFilter описывает поля фильтрации при выборке товаров.
// nil-указатель означает отсутствие условия по цене.
type ProductFilter struct {
	Name           string
	NameContains   string
	NameStartsWith string
	Price          *decimal.Decimal
	PriceLTE       *decimal.Decimal
	PriceGTE       *decimal.Decimal
}

// OrderFilter описывает поля фильтрации при выборке заказов.
type OrderFilter struct {
	CustomerNameContains string
	OrderDate            *time.Time
	OrderDateLTE         *time.Time
	OrderDateGTE         *time.Time
	TotalAmount          *decimal.Decimal
	TotalAmountLTE       *decimal.Decimal
	TotalAmountGTE       *decimal.Decimal
}

// IsZero сообщает, задано ли хотя бы одно условие фильтра.
func (f CustomerFilter) IsZero() bool {
	return f == CustomerFilter{}
}

// IsZero сообщает, задано ли хотя бы одно условие фильтра.
func (f ProductFilter) IsZero() bool {
	return f.Name == "" && f.NameContains == "" && f.NameStartsWith == "" &&
		f.Price == nil && f.PriceLTE == nil && f.PriceGTE == nil
}

// IsZero сообщает, задано ли хотя бы одно условие фильтра.
func (f OrderFilter) IsZero() bool {
	return f.CustomerNameContains == "" &&
		f.OrderDate == nil && f.OrderDateLTE == nil && f.OrderDateGTE == nil &&
		f.TotalAmount == nil && f.TotalAmountLTE == nil && f.TotalAmountGTE == nil
}
