package domain

import (
	"strings"
	"time"
)

// Customer представляет клиента CRM.
type Customer struct {
	ID string
	// Name — обязательное имя клиента.
	Name string
	// Email уникален в пределах всей системы.
	Email string
	// Phone опционален; пустая строка означает отсутствие телефона.
	Phone string
	// CreatedAt фиксирует момент создания записи.
	CreatedAt time.Time
}

// ValidateInvariants проверяет базовые инварианты клиента и возвращает список замечаний.
func (c *Customer) ValidateInvariants() []error {
	var errs []error

	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, ErrCustomerNameRequired)
	}
	email := strings.TrimSpace(c.Email)
	if email == "" {
		errs = append(errs, ErrCustomerEmailRequired)
	} else if !isValidEmail(email) {
		errs = append(errs, ErrCustomerEmailInvalid)
	}

	return errs
}

// isValidEmail делает минимальную проверку формы адреса: непустые части вокруг @.
func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	if strings.ContainsAny(email, " \t") {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}
