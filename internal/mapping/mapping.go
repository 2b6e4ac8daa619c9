// Package mapping выполняет чистую пополевую проекцию между доменными
// сущностями и транспортными объектами. Никаких вычислений бизнес-полей:
// Total и Fecha задаёт только сервис заказов.
package mapping

import (
	"github.com/vladislavdragonenkov/tienda/internal/domain"
	"github.com/vladislavdragonenkov/tienda/internal/dto"
)

// CustomerToDTO проецирует клиента в транспортный объект.
func CustomerToDTO(c domain.Customer) dto.Customer {
	return dto.Customer{
		ID:   c.ID,
		Name: c.Name,
		Debt: c.Debt,
	}
}

// CustomerFromDTO проецирует транспортный объект в доменного клиента.
func CustomerFromDTO(c dto.Customer) domain.Customer {
	return domain.Customer{
		ID:   c.ID,
		Name: c.Name,
		Debt: c.Debt,
	}
}

// CustomersToDTO проецирует срез клиентов.
func CustomersToDTO(customers []domain.Customer) []dto.Customer {
	result := make([]dto.Customer, 0, len(customers))
	for _, c := range customers {
		result = append(result, CustomerToDTO(c))
	}
	return result
}

// CategoryToDTO проецирует категорию в транспортный объект.
func CategoryToDTO(c domain.Category) dto.Category {
	return dto.Category{
		ID:   c.ID,
		Name: c.Name,
	}
}

// CategoryFromDTO проецирует транспортный объект в доменную категорию.
func CategoryFromDTO(c dto.Category) domain.Category {
	return domain.Category{
		ID:   c.ID,
		Name: c.Name,
	}
}

// CategoriesToDTO проецирует срез категорий.
func CategoriesToDTO(categories []domain.Category) []dto.Category {
	result := make([]dto.Category, 0, len(categories))
	for _, c := range categories {
		result = append(result, CategoryToDTO(c))
	}
	return result
}

// ProductToDTO проецирует товар в транспортный объект.
func ProductToDTO(p domain.Product) dto.Product {
	return dto.Product{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		CategoryID:    p.CategoryID,
		StockQuantity: p.Stock,
	}
}

// ProductFromDTO проецирует транспортный объект в доменный товар.
func ProductFromDTO(p dto.Product) domain.Product {
	return domain.Product{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Stock:      p.StockQuantity,
		CategoryID: p.CategoryID,
	}
}

// ProductsToDTO проецирует срез товаров.
func ProductsToDTO(products []domain.Product) []dto.Product {
	result := make([]dto.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToDTO(p))
	}
	return result
}

// OrderToDTO проецирует заказ вместе с позициями.
func OrderToDTO(o domain.Order) dto.Order {
	lines := make([]dto.OrderLine, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, dto.OrderLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	return dto.Order{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		Total:         o.Total,
		Date:          o.Fecha,
		PaymentMethod: string(o.PaymentMethod),
		Lines:         lines,
	}
}

// OrdersToDTO проецирует срез заказов.
func OrdersToDTO(orders []domain.Order) []dto.Order {
	result := make([]dto.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToDTO(o))
	}
	return result
}

// OrderFromDraft собирает доменный заказ из черновика.
// Total остаётся нулевым, Fecha — нулевым временем: их проставляет сервис.
func OrderFromDraft(d dto.OrderDraft) domain.Order {
	lines := make([]domain.OrderLine, 0, len(d.Lines))
	for _, line := range d.Lines {
		lines = append(lines, domain.OrderLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	return domain.Order{
		CustomerID:    d.CustomerID,
		PaymentMethod: domain.PaymentMethod(d.PaymentMethod),
		Lines:         lines,
	}
}
