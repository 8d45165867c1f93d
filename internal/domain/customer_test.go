package domain_test

import (
	"testing"
	"time"

	"github.com/vladislavdragonenkov/crm/internal/domain"
)

// helper для создания валидного клиента.
func makeCustomer() domain.Customer {
	return domain.Customer{
		ID:        "customer-1",
		Name:      "Alice",
		Email:     "alice@example.com",
		Phone:     "+1234567890",
		CreatedAt: time.Now().UTC(),
	}
}

func TestCustomerValidateInvariants_Ok(t *testing.T) {
	customer := makeCustomer()
	if errs := customer.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestCustomerValidateInvariants_PhoneOptional(t *testing.T) {
	customer := makeCustomer()
	customer.Phone = ""
	if errs := customer.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("phone is optional, got %v", errs)
	}
}

func TestCustomerValidateInvariants_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(c *domain.Customer)
		want error
	}{
		{
			name: "no name",
			mut: func(c *domain.Customer) {
				c.Name = "  "
			},
			want: domain.ErrCustomerNameRequired,
		},
		{
			name: "no email",
			mut: func(c *domain.Customer) {
				c.Email = ""
			},
			want: domain.ErrCustomerEmailRequired,
		},
		{
			name: "email without at",
			mut: func(c *domain.Customer) {
				c.Email = "alice.example.com"
			},
			want: domain.ErrCustomerEmailInvalid,
		},
		{
			name: "email without local part",
			mut: func(c *domain.Customer) {
				c.Email = "@example.com"
			},
			want: domain.ErrCustomerEmailInvalid,
		},
		{
			name: "email without domain dot",
			mut: func(c *domain.Customer) {
				c.Email = "alice@example"
			},
			want: domain.ErrCustomerEmailInvalid,
		},
		{
			name: "email with space",
			mut: func(c *domain.Customer) {
				c.Email = "alice smith@example.com"
			},
			want: domain.ErrCustomerEmailInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			customer := makeCustomer()
			tc.mut(&customer)

			errs := customer.ValidateInvariants()
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
