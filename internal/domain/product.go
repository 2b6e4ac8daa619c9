package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// CategoryNameMaxLen — максимальная длина имени категории.
const CategoryNameMaxLen = 100

// Category группирует товары. Имя уникально на уровне хранилища.
type Category struct {
	ID   int64
	Name string
}

// ValidateInvariants проверяет имя категории до обращения к хранилищу.
func (c *Category) ValidateInvariants() []error {
	var errs []error
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, ErrCategoryNameRequired)
	}
	if utf8.RuneCountInString(c.Name) > CategoryNameMaxLen {
		errs = append(errs, ErrCategoryNameTooLong)
	}
	return errs
}

// Product представляет товар каталога.
type Product struct {
	ID   int64
	Name string
	// Price — цена за единицу, два знака после запятой.
	Price decimal.Decimal
	// Stock — остаток на складе (допускаются дробные единицы).
	Stock decimal.Decimal
	// CategoryID — обязательная ссылка на категорию.
	CategoryID int64
}

// ValidateInvariants проверяет обязательные поля товара.
func (p *Product) ValidateInvariants() []error {
	var errs []error
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ErrProductNameRequired)
	}
	if p.Price.IsNegative() {
		errs = append(errs, ErrProductPriceNegative)
	}
	if p.CategoryID <= 0 {
		errs = append(errs, ErrCategoryRequired)
	}
	return errs
}
