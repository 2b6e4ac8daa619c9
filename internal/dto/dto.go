// Package dto содержит транспортные объекты HTTP API.
// Денежные поля сериализуются строками, чтобы не терять точность decimal.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer — транспортное представление клиента.
type Customer struct {
	ID   int64           `json:"id"`
	Name string          `json:"name"`
	Debt decimal.Decimal `json:"debt"`
}

// Category — транспортное представление категории.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product — транспортное представление товара.
type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	CategoryID    int64           `json:"categoryId"`
	StockQuantity decimal.Decimal `json:"stockQuantity"`
}

// OrderLine — одна позиция заказа в транспортном виде.
type OrderLine struct {
	ProductID int64           `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// Order — транспортное представление заказа с позициями.
type Order struct {
	ID            int64           `json:"id"`
	CustomerID    int64           `json:"customerId"`
	Total         decimal.Decimal `json:"total"`
	Date          time.Time       `json:"date"`
	PaymentMethod string          `json:"paymentMethod"`
	Lines         []OrderLine     `json:"lines"`
}

// OrderDraft — желаемое состояние заказа, присланное вызывающим.
// Total и Date игнорируются: их вычисляет сервис.
type OrderDraft struct {
	CustomerID    int64       `json:"customerId"`
	PaymentMethod string      `json:"paymentMethod"`
	Lines         []OrderLine `json:"lines"`
}
