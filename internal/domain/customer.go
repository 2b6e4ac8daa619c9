package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Customer представляет клиента с текущим балансом долга.
// Заказы ссылаются на клиента по ID; обратных навигационных ссылок нет.
type Customer struct {
	ID   int64
	Name string
	// Debt — задолженность клиента, два знака после запятой.
	Debt decimal.Decimal
}

// ValidateInvariants проверяет обязательные поля клиента.
func (c *Customer) ValidateInvariants() []error {
	var errs []error
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, ErrCustomerNameRequired)
	}
	return errs
}
