package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/crm/internal/domain"
)

func makeOrder() domain.Order {
	now := time.Now().UTC()
	return domain.Order{
		ID:          "order-1",
		CustomerID:  "customer-1",
		ProductIDs:  []string{"product-1", "product-2"},
		OrderDate:   now,
		TotalAmount: decimal.RequireFromString("15.50"),
		CreatedAt:   now,
	}
}

func TestOrderValidateInvariants_Ok(t *testing.T) {
	order := makeOrder()
	if errs := order.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestOrderValidateInvariants_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(o *domain.Order)
	}{
		{
			name: "no customer",
			mut: func(o *domain.Order) {
				o.CustomerID = ""
			},
		},
		{
			name: "no products",
			mut: func(o *domain.Order) {
				o.ProductIDs = nil
			},
		},
		{
			name: "negative total",
			mut: func(o *domain.Order) {
				o.TotalAmount = decimal.RequireFromString("-0.01")
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := makeOrder()
			tc.mut(&order)
			if errs := order.ValidateInvariants(); len(errs) == 0 {
				t.Fatal("expected validation error, got none")
			}
		})
	}
}

// Сумма заказа — точная десятичная сумма цен без округления на float.
func TestTotalOf(t *testing.T) {
	products := []domain.Product{
		{ID: "p1", Price: decimal.RequireFromString("10.00")},
		{ID: "p2", Price: decimal.RequireFromString("5.50")},
	}

	total := domain.TotalOf(products)
	if !total.Equal(decimal.RequireFromString("15.50")) {
		t.Fatalf("expected total 15.50, got %s", total)
	}
}

// Повтор товара в списке считается дважды.
func TestTotalOf_RepeatedProduct(t *testing.T) {
	product := domain.Product{ID: "p1", Price: decimal.RequireFromString("0.10")}
	total := domain.TotalOf([]domain.Product{product, product, product})
	if !total.Equal(decimal.RequireFromString("0.30")) {
		t.Fatalf("expected total 0.30, got %s", total)
	}
}

func TestTotalOf_Empty(t *testing.T) {
	if total := domain.TotalOf(nil); !total.IsZero() {
		t.Fatalf("expected zero total, got %s", total)
	}
}

func TestProductNotFoundError(t *testing.T) {
	err := &domain.ProductNotFoundError{ProductID: "missing-1"}

	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatal("ProductNotFoundError should unwrap to ErrProductNotFound")
	}

	var target *domain.ProductNotFoundError
	if !errors.As(err, &target) || target.ProductID != "missing-1" {
		t.Fatalf("errors.As should expose product id, got %+v", target)
	}

	if !domain.IsNotFound(err) {
		t.Fatal("IsNotFound should report true for product not found")
	}
}

func TestIsNotFound(t *testing.T) {
	for _, err := range []error{
		domain.ErrCustomerNotFound,
		domain.ErrProductNotFound,
		domain.ErrOrderNotFound,
	} {
		if !domain.IsNotFound(err) {
			t.Fatalf("IsNotFound should report true for %v", err)
		}
	}
	if domain.IsNotFound(domain.ErrEmailExists) {
		t.Fatal("IsNotFound should report false for ErrEmailExists")
	}
}
