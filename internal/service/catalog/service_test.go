package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/tienda/internal/domain"
	"github.com/vladislavdragonenkov/tienda/internal/dto"
	"github.com/vladislavdragonenkov/tienda/internal/storage/memory"
)

func newTestService() *Service {
	store := memory.NewStore()
	return NewService(memory.NewCategoryRepository(store), memory.NewProductRepository(store), nil)
}

func TestCreateCategoryAndList(t *testing.T) {
	service := newTestService()

	created, err := service.CreateCategory(dto.Category{Name: "Cigarettes"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	all, err := service.ListCategories()
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "Cigarettes", all[0].Name)
}

func TestCreateCategoryRejectsDuplicateName(t *testing.T) {
	service := newTestService()

	_, err := service.CreateCategory(dto.Category{Name: "Cigarettes"})
	require.NoError(t, err)

	_, err = service.CreateCategory(dto.Category{Name: "Cigarettes"})
	require.ErrorIs(t, err, domain.ErrCategoryNameTaken)
}

func TestCreateCategoryValidatesName(t *testing.T) {
	service := newTestService()

	_, err := service.CreateCategory(dto.Category{Name: ""})
	require.ErrorIs(t, err, domain.ErrCategoryNameRequired)

	_, err = service.CreateCategory(dto.Category{Name: strings.Repeat("x", domain.CategoryNameMaxLen+1)})
	require.ErrorIs(t, err, domain.ErrCategoryNameTooLong)
}

func TestUpdateCategory(t *testing.T) {
	service := newTestService()

	created, err := service.CreateCategory(dto.Category{Name: "Cigarettes"})
	require.NoError(t, err)

	updated, err := service.UpdateCategory(created.ID, dto.Category{Name: "Tobacco"})
	require.NoError(t, err)
	require.Equal(t, "Tobacco", updated.Name)

	_, err = service.UpdateCategory(9999, dto.Category{Name: "Nothing"})
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestDeleteCategoryRestrictedWhileReferenced(t *testing.T) {
	service := newTestService()

	category, err := service.CreateCategory(dto.Category{Name: "Cigarettes"})
	require.NoError(t, err)

	product, err := service.CreateProduct(dto.Product{
		Name:       "Pack A",
		Price:      decimal.RequireFromString("10.00"),
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	_, err = service.DeleteCategory(category.ID)
	require.ErrorIs(t, err, domain.ErrCategoryInUse)

	deleted, err := service.DeleteProduct(product.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = service.DeleteCategory(category.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = service.DeleteCategory(category.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestCreateProductRequiresExistingCategory(t *testing.T) {
	service := newTestService()

	_, err := service.CreateProduct(dto.Product{
		Name:       "Pack A",
		Price:      decimal.NewFromInt(10),
		CategoryID: 4242,
	})
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCreateProductValidation(t *testing.T) {
	service := newTestService()

	category, err := service.CreateCategory(dto.Category{Name: "Cigarettes"})
	require.NoError(t, err)

	_, err = service.CreateProduct(dto.Product{Name: "", CategoryID: category.ID})
	require.ErrorIs(t, err, domain.ErrProductNameRequired)

	_, err = service.CreateProduct(dto.Product{
		Name:       "Pack A",
		Price:      decimal.NewFromInt(-1),
		CategoryID: category.ID,
	})
	require.ErrorIs(t, err, domain.ErrProductPriceNegative)

	_, err = service.CreateProduct(dto.Product{Name: "Pack A", Price: decimal.NewFromInt(1)})
	require.ErrorIs(t, err, domain.ErrCategoryRequired)
}

func TestUpdateProduct(t *testing.T) {
	service := newTestService()

	category, err := service.CreateCategory(dto.Category{Name: "Cigarettes"})
	require.NoError(t, err)

	created, err := service.CreateProduct(dto.Product{
		Name:       "Pack A",
		Price:      decimal.RequireFromString("10.00"),
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	updated, err := service.UpdateProduct(created.ID, dto.Product{
		Name:          "Pack A+",
		Price:         decimal.RequireFromString("11.50"),
		StockQuantity: decimal.NewFromInt(7),
		CategoryID:    category.ID,
	})
	require.NoError(t, err)
	require.Equal(t, "Pack A+", updated.Name)
	require.True(t, updated.Price.Equal(decimal.RequireFromString("11.50")))

	_, err = service.UpdateProduct(9999, dto.Product{
		Name:       "Ghost",
		Price:      decimal.NewFromInt(1),
		CategoryID: category.ID,
	})
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGetProduct(t *testing.T) {
	service := newTestService()

	category, err := service.CreateCategory(dto.Category{Name: "Cigarettes"})
	require.NoError(t, err)

	created, err := service.CreateProduct(dto.Product{
		Name:       "Pack A",
		Price:      decimal.RequireFromString("10.00"),
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	got, err := service.GetProduct(created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, category.ID, got.CategoryID)

	_, err = service.GetProduct(9999)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestDeleteProductRestrictedWhileReferenced(t *testing.T) {
	store := memory.NewStore()
	service := NewService(memory.NewCategoryRepository(store), memory.NewProductRepository(store), nil)
	customers := memory.NewCustomerRepository(store)
	orders := memory.NewOrderRepository(store)

	category, err := service.CreateCategory(dto.Category{Name: "Cigarettes"})
	require.NoError(t, err)
	product, err := service.CreateProduct(dto.Product{
		Name:       "Pack A",
		Price:      decimal.RequireFromString("10.00"),
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	customer := domain.Customer{Name: "Maria", Debt: decimal.Zero}
	require.NoError(t, customers.Add(&customer))
	order := domain.Order{
		CustomerID:    customer.ID,
		Total:         decimal.RequireFromString("10.00"),
		Fecha:         time.Now().UTC(),
		PaymentMethod: domain.PaymentMethodCash,
		Lines:         []domain.OrderLine{{ProductID: product.ID, Quantity: decimal.NewFromInt(1)}},
	}
	require.NoError(t, orders.Create(&order))

	_, err = service.DeleteProduct(product.ID)
	require.ErrorIs(t, err, domain.ErrProductInUse)

	_, err = orders.Delete(order.ID)
	require.NoError(t, err)

	deleted, err := service.DeleteProduct(product.ID)
	require.NoError(t, err)
	require.True(t, deleted)
}
