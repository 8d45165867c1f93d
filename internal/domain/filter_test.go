package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/crm/internal/domain"
)

func TestFilterIsZero(t *testing.T) {
	if !(domain.CustomerFilter{}).IsZero() {
		t.Error("empty customer filter should be zero")
	}
	if (domain.CustomerFilter{NameContains: "a"}).IsZero() {
		t.Error("customer filter with condition should not be zero")
	}

	if !(domain.ProductFilter{}).IsZero() {
		t.Error("empty product filter should be zero")
	}
	price := decimal.RequireFromString("1.00")
	if (domain.ProductFilter{PriceGTE: &price}).IsZero() {
		t.Error("product filter with price condition should not be zero")
	}

	if !(domain.OrderFilter{}).IsZero() {
		t.Error("empty order filter should be zero")
	}
	now := time.Now()
	if (domain.OrderFilter{OrderDateLTE: &now}).IsZero() {
		t.Error("order filter with date condition should not be zero")
	}
}
