package memory

import (
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/crm/internal/domain"
)

func seedCustomer(t *testing.T, repo domain.CustomerRepository, id, name, email string, offset time.Duration) domain.Customer {
	t.Helper()

	customer := domain.Customer{
		ID:        id,
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC().Add(offset),
	}
	if err := repo.Create(customer); err != nil {
		t.Fatalf("seed customer %s: %v", email, err)
	}
	return customer
}

func TestCustomerRepository_CreateAndGet(t *testing.T) {
	repo := NewCustomerRepository()
	created := seedCustomer(t, repo, "c1", "Alice", "alice@example.com", 0)

	got, err := repo.Get("c1")
	if err != nil {
		t.Fatalf("get customer: %v", err)
	}
	if got.Email != created.Email || got.Name != created.Name {
		t.Fatalf("unexpected customer: %+v", got)
	}
}

func TestCustomerRepository_GetNotFound(t *testing.T) {
	repo := NewCustomerRepository()
	if _, err := repo.Get("missing"); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

// Уникальность email регистронезависима, как и уникальный индекс в PostgreSQL.
func TestCustomerRepository_DuplicateEmail(t *testing.T) {
	repo := NewCustomerRepository()
	seedCustomer(t, repo, "c1", "Alice", "alice@example.com", 0)

	err := repo.Create(domain.Customer{ID: "c2", Name: "Other", Email: "ALICE@example.com"})
	if !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestCustomerRepository_GetByEmail(t *testing.T) {
	repo := NewCustomerRepository()
	seedCustomer(t, repo, "c1", "Alice", "alice@example.com", 0)

	got, err := repo.GetByEmail("Alice@Example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.ID != "c1" {
		t.Fatalf("unexpected customer: %+v", got)
	}

	if _, err := repo.GetByEmail("bob@example.com"); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestCustomerRepository_ListOrderedByCreatedAt(t *testing.T) {
	repo := NewCustomerRepository()
	seedCustomer(t, repo, "c2", "Bob", "bob@example.com", time.Second)
	seedCustomer(t, repo, "c1", "Alice", "alice@example.com", 0)

	customers, err := repo.List(domain.CustomerFilter{})
	if err != nil {
		t.Fatalf("list customers: %v", err)
	}
	if len(customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(customers))
	}
	if customers[0].ID != "c1" || customers[1].ID != "c2" {
		t.Fatalf("expected creation order c1,c2, got %s,%s", customers[0].ID, customers[1].ID)
	}
}

func TestCustomerRepository_ListFilters(t *testing.T) {
	repo := NewCustomerRepository()
	seedCustomer(t, repo, "c1", "Alice Smith", "alice@example.com", 0)
	seedCustomer(t, repo, "c2", "Bob Jones", "bob@corp.org", time.Second)

	cases := []struct {
		name   string
		filter domain.CustomerFilter
		want   []string
	}{
		{
			name:   "exact name",
			filter: domain.CustomerFilter{Name: "Alice Smith"},
			want:   []string{"c1"},
		},
		{
			name:   "name contains is case-insensitive",
			filter: domain.CustomerFilter{NameContains: "smith"},
			want:   []string{"c1"},
		},
		{
			name:   "name starts with",
			filter: domain.CustomerFilter{NameStartsWith: "bob"},
			want:   []string{"c2"},
		},
		{
			name:   "exact email",
			filter: domain.CustomerFilter{Email: "bob@corp.org"},
			want:   []string{"c2"},
		},
		{
			name:   "email contains",
			filter: domain.CustomerFilter{EmailContains: "example"},
			want:   []string{"c1"},
		},
		{
			name:   "no match",
			filter: domain.CustomerFilter{NameContains: "charlie"},
			want:   nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			customers, err := repo.List(tc.filter)
			if err != nil {
				t.Fatalf("list customers: %v", err)
			}
			if len(customers) != len(tc.want) {
				t.Fatalf("expected %d customers, got %d", len(tc.want), len(customers))
			}
			for i, id := range tc.want {
				if customers[i].ID != id {
					t.Fatalf("expected %s at position %d, got %s", id, i, customers[i].ID)
				}
			}
		})
	}
}
