package memory

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/crm/internal/domain"
)

func seedProduct(t *testing.T, repo domain.ProductRepository, id, name, price string, offset time.Duration) domain.Product {
	t.Helper()

	product := domain.Product{
		ID:        id,
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Stock:     10,
		CreatedAt: time.Now().UTC().Add(offset),
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("seed product %s: %v", name, err)
	}
	return product
}

func TestProductRepository_CreateAndGet(t *testing.T) {
	repo := NewProductRepository()
	created := seedProduct(t, repo, "p1", "Laptop", "999.99", 0)

	got, err := repo.Get("p1")
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if !got.Price.Equal(created.Price) {
		t.Fatalf("expected price %s, got %s", created.Price, got.Price)
	}
}

func TestProductRepository_GetNotFound(t *testing.T) {
	repo := NewProductRepository()
	if _, err := repo.Get("missing"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductRepository_ListFilters(t *testing.T) {
	repo := NewProductRepository()
	seedProduct(t, repo, "p1", "Phone", "299.99", 0)
	seedProduct(t, repo, "p2", "Tablet", "199.99", time.Second)

	priceOf := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}

	cases := []struct {
		name   string
		filter domain.ProductFilter
		want   []string
	}{
		{
			name:   "all",
			filter: domain.ProductFilter{},
			want:   []string{"p1", "p2"},
		},
		{
			name:   "exact name",
			filter: domain.ProductFilter{Name: "Phone"},
			want:   []string{"p1"},
		},
		{
			name:   "name contains",
			filter: domain.ProductFilter{NameContains: "tab"},
			want:   []string{"p2"},
		},
		{
			name:   "name starts with",
			filter: domain.ProductFilter{NameStartsWith: "pho"},
			want:   []string{"p1"},
		},
		{
			name:   "exact price",
			filter: domain.ProductFilter{Price: priceOf("199.99")},
			want:   []string{"p2"},
		},
		{
			name:   "price lte",
			filter: domain.ProductFilter{PriceLTE: priceOf("200.00")},
			want:   []string{"p2"},
		},
		{
			name:   "price gte",
			filter: domain.ProductFilter{PriceGTE: priceOf("200.00")},
			want:   []string{"p1"},
		},
		{
			name:   "price range includes boundary",
			filter: domain.ProductFilter{PriceGTE: priceOf("199.99"), PriceLTE: priceOf("299.99")},
			want:   []string{"p1", "p2"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			products, err := repo.List(tc.filter)
			if err != nil {
				t.Fatalf("list products: %v", err)
			}
			if len(products) != len(tc.want) {
				t.Fatalf("expected %d products, got %d", len(tc.want), len(products))
			}
			for i, id := range tc.want {
				if products[i].ID != id {
					t.Fatalf("expected %s at position %d, got %s", id, i, products[i].ID)
				}
			}
		})
	}
}
