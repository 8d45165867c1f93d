package domain

import (
	"errors"
	"fmt"
)

var (
	// Ошибка отсутствующего имени клиента.
	ErrCustomerNameRequired = errors.New("customer name is required")
	// Ошибка отсутствующего email клиента.
	ErrCustomerEmailRequired = errors.New("customer email is required")
	// Ошибка некорректного формата email.
	ErrCustomerEmailInvalid = errors.New("customer email is invalid")
	// ErrEmailExists возвращается, если email уже занят другим клиентом.
	ErrEmailExists = errors.New("email already exists")
	// Ошибка отсутствующего названия товара.
	ErrProductNameRequired = errors.New("product name is required")
	// ErrPriceNotPositive возвращается, если цена товара не строго положительна.
	ErrPriceNotPositive = errors.New("price must be positive")
	// ErrStockNegative возвращается при отрицательном остатке.
	ErrStockNegative = errors.New("stock cannot be negative")
	// ErrCustomerNotFound возвращается, если клиент не найден в репозитории.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrProductNotFound возвращается, если товар не найден в репозитории.
	ErrProductNotFound = errors.New("product not found")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
	// ErrEmptyProductList возвращается при попытке создать заказ без товаров.
	ErrEmptyProductList = errors.New("order must contain at least one product")
	// Ошибка отрицательной суммы заказа.
	ErrTotalAmountNegative = errors.New("total amount must be non-negative")
)

// ProductNotFoundError уточняет ErrProductNotFound идентификатором товара,
// на котором споткнулось создание заказа.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: %s", e.ProductID)
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrProductNotFound).
func (e *ProductNotFoundError) Unwrap() error {
	return ErrProductNotFound
}

// IsNotFound проверяет, является ли ошибка ошибкой отсутствия записи.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrOrderNotFound)
}
