package customers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/tienda/internal/domain"
	"github.com/vladislavdragonenkov/tienda/internal/dto"
	"github.com/vladislavdragonenkov/tienda/internal/storage/memory"
)

func newTestService() *Service {
	store := memory.NewStore()
	return NewService(memory.NewCustomerRepository(store), nil)
}

func TestCreateAndGetCustomer(t *testing.T) {
	service := newTestService()

	created, err := service.CreateCustomer(dto.Customer{Name: "Maria", Debt: decimal.RequireFromString("12.30")})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := service.GetCustomer(created.ID)
	require.NoError(t, err)
	require.Equal(t, "Maria", got.Name)
	require.True(t, got.Debt.Equal(decimal.RequireFromString("12.30")))
}

func TestCreateCustomerIgnoresClientProvidedID(t *testing.T) {
	service := newTestService()

	created, err := service.CreateCustomer(dto.Customer{ID: 777, Name: "Maria"})
	require.NoError(t, err)
	require.NotEqual(t, int64(777), created.ID)
}

func TestCreateCustomerRequiresName(t *testing.T) {
	service := newTestService()

	_, err := service.CreateCustomer(dto.Customer{Name: "  "})
	require.ErrorIs(t, err, domain.ErrCustomerNameRequired)
}

func TestUpdateCustomer(t *testing.T) {
	service := newTestService()

	created, err := service.CreateCustomer(dto.Customer{Name: "Maria"})
	require.NoError(t, err)

	updated, err := service.UpdateCustomer(created.ID, dto.Customer{Name: "Maria Lopez", Debt: decimal.NewFromInt(5)})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Maria Lopez", updated.Name)

	_, err = service.UpdateCustomer(9999, dto.Customer{Name: "Nobody"})
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestDeleteCustomerReportsAbsenceViaBool(t *testing.T) {
	service := newTestService()

	created, err := service.CreateCustomer(dto.Customer{Name: "Maria"})
	require.NoError(t, err)

	deleted, err := service.DeleteCustomer(created.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = service.DeleteCustomer(created.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestListCustomers(t *testing.T) {
	service := newTestService()

	for _, name := range []string{"A", "B", "C"} {
		_, err := service.CreateCustomer(dto.Customer{Name: name})
		require.NoError(t, err)
	}

	all, err := service.ListCustomers()
	require.NoError(t, err)
	require.Len(t, all, 3)
}
