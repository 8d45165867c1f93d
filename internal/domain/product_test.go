package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/crm/internal/domain"
)

func makeProduct() domain.Product {
	return domain.Product{
		ID:        "product-1",
		Name:      "Laptop",
		Price:     decimal.RequireFromString("999.99"),
		Stock:     10,
		CreatedAt: time.Now().UTC(),
	}
}

func TestProductValidateInvariants_Ok(t *testing.T) {
	product := makeProduct()
	if errs := product.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

// Граничные значения: минимальная положительная цена и нулевой остаток валидны.
func TestProductValidateInvariants_Boundaries(t *testing.T) {
	product := makeProduct()
	product.Price = decimal.RequireFromString("0.01")
	product.Stock = 0
	if errs := product.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected boundary values to be valid, got %v", errs)
	}
}

func TestProductValidateInvariants_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(p *domain.Product)
		want error
	}{
		{
			name: "no name",
			mut: func(p *domain.Product) {
				p.Name = ""
			},
			want: domain.ErrProductNameRequired,
		},
		{
			name: "zero price",
			mut: func(p *domain.Product) {
				p.Price = decimal.Zero
			},
			want: domain.ErrPriceNotPositive,
		},
		{
			name: "negative price",
			mut: func(p *domain.Product) {
				p.Price = decimal.RequireFromString("-1.50")
			},
			want: domain.ErrPriceNotPositive,
		},
		{
			name: "negative stock",
			mut: func(p *domain.Product) {
				p.Stock = -1
			},
			want: domain.ErrStockNegative,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			product := makeProduct()
			tc.mut(&product)

			errs := product.ValidateInvariants()
			if len(errs) == 0 {
				t.Fatal("expected validation error, got none")
			}
			for _, err := range errs {
				if err == tc.want {
					return
				}
			}
			t.Fatalf("expected %v in %v", tc.want, errs)
		})
	}
}
