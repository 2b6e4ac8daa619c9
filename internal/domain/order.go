package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod описывает способ оплаты, сохраняемый вместе с заказом.
type PaymentMethod string

const (
	// PaymentMethodCash — оплата наличными при получении.
	PaymentMethodCash PaymentMethod = "cash"
	// PaymentMethodCard — оплата банковской картой.
	PaymentMethodCard PaymentMethod = "card"
	// PaymentMethodTransfer — оплата банковским переводом.
	PaymentMethodTransfer PaymentMethod = "transfer"
	// PaymentMethodAccount — запись на счёт клиента (в долг).
	PaymentMethodAccount PaymentMethod = "account"
)

// KnownPaymentMethod сообщает, входит ли значение в поддерживаемый набор.
func KnownPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer, PaymentMethodAccount:
		return true
	default:
		return false
	}
}

// OrderLine представляет одну позицию заказа.
// Составной ключ (OrderID, ProductID): не более одной позиции на товар.
type OrderLine struct {
	OrderID   int64
	ProductID int64
	// Quantity — количество товара, строго больше нуля, два знака после запятой.
	Quantity decimal.Decimal
}

// Order агрегирует заказ клиента и его позиции.
type Order struct {
	ID         int64
	CustomerID int64
	// Total равен сумме price × quantity по позициям на момент последней
	// реконсиляции, округлённой до двух знаков.
	Total         decimal.Decimal
	Fecha         time.Time
	PaymentMethod PaymentMethod
	Lines         []OrderLine
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.CustomerID <= 0 {
		errs = append(errs, ErrCustomerRequired)
	}
	if o.PaymentMethod != "" && !KnownPaymentMethod(o.PaymentMethod) {
		errs = append(errs, ErrPaymentMethodUnknown)
	}
	if o.Total.IsNegative() {
		errs = append(errs, ErrTotalNegative)
	}

	seen := make(map[int64]struct{}, len(o.Lines))
	for _, line := range o.Lines {
		if line.ProductID <= 0 {
			errs = append(errs, ErrProductRequired)
		}
		if !line.Quantity.IsPositive() {
			errs = append(errs, ErrInvalidQuantity)
		}
		if _, dup := seen[line.ProductID]; dup {
			errs = append(errs, ErrDuplicateOrderLine)
		}
		seen[line.ProductID] = struct{}{}
	}

	return errs
}
