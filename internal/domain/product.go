package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product представляет товар каталога.
type Product struct {
	ID string
	// Name — обязательное название товара.
	Name string
	// Price — точная десятичная цена, строго больше нуля.
	Price decimal.Decimal
	// Stock — остаток на складе, не может быть отрицательным.
	Stock int32
	// CreatedAt фиксирует момент создания записи.
	CreatedAt time.Time
}

// ValidateInvariants проверяет базовые инварианты товара и возвращает список замечаний.
func (p *Product) ValidateInvariants() []error {
	var errs []error

	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ErrProductNameRequired)
	}
	if !p.Price.IsPositive() {
		errs = append(errs, ErrPriceNotPositive)
	}
	if p.Stock < 0 {
		errs = append(errs, ErrStockNegative)
	}

	return errs
}
