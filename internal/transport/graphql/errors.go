package graphql

import (
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/crm/internal/domain"
)

// Сообщения API-контракта. Формулировки фиксированы и видимы клиентам,
// поэтому меняться не должны.
const (
	msgEmailExists      = "Email already exists"
	msgPriceNotPositive = "Price must be positive"
	msgStockNegative    = "Stock cannot be negative"
	msgInvalidCustomer  = "Invalid customer ID"
	msgEmptyProductList = "At least one product must be selected"
	msgNameRequired     = "Name is required"
	msgEmailRequired    = "Email is required"
	msgEmailInvalid     = "Enter a valid email address"
	msgInternal         = "internal server error"
)

// apiError переводит доменную ошибку в сообщение API-контракта.
// Неизвестные ошибки не протекают наружу.
func apiError(err error) error {
	var productNotFound *domain.ProductNotFoundError

	switch {
	case errors.Is(err, domain.ErrEmailExists):
		return errors.New(msgEmailExists)
	case errors.Is(err, domain.ErrPriceNotPositive):
		return errors.New(msgPriceNotPositive)
	case errors.Is(err, domain.ErrStockNegative):
		return errors.New(msgStockNegative)
	case errors.Is(err, domain.ErrCustomerNotFound):
		return errors.New(msgInvalidCustomer)
	case errors.Is(err, domain.ErrEmptyProductList):
		return errors.New(msgEmptyProductList)
	case errors.As(err, &productNotFound):
		return fmt.Errorf("Invalid product ID: %s", productNotFound.ProductID)
	case errors.Is(err, domain.ErrCustomerNameRequired),
		errors.Is(err, domain.ErrProductNameRequired):
		return errors.New(msgNameRequired)
	case errors.Is(err, domain.ErrCustomerEmailRequired):
		return errors.New(msgEmailRequired)
	case errors.Is(err, domain.ErrCustomerEmailInvalid):
		return errors.New(msgEmailInvalid)
	default:
		return errors.New(msgInternal)
	}
}
