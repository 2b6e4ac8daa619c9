package memory

import (
	"sort"

	"github.com/vladislavdragonenkov/tienda/internal/domain"
)

// orderRepositoryInMemory — in-memory реализация OrderRepository.
// Заказ хранится вместе со своими позициями как единое значение,
// поэтому замена набора позиций атомарна под мьютексом хранилища.
type orderRepositoryInMemory struct {
	store *Store
}

// NewOrderRepository возвращает in-memory репозиторий заказов.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepositoryInMemory{store: store}
}

func (r *orderRepositoryInMemory) GetAll() ([]domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]domain.Order, 0, len(r.store.orders))
	for _, order := range r.store.orders {
		result = append(result, copyOrder(order))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

func (r *orderRepositoryInMemory) GetByID(id int64) (domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	order, ok := r.store.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return copyOrder(order), nil
}

func (r *orderRepositoryInMemory) Create(order *domain.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.customers[order.CustomerID]; !ok {
		return domain.ErrCustomerNotFound
	}
	for _, line := range order.Lines {
		if _, ok := r.store.products[line.ProductID]; !ok {
			return domain.ErrProductNotFound
		}
	}

	order.ID = r.store.allocOrderID()
	for i := range order.Lines {
		order.Lines[i].OrderID = order.ID
	}
	r.store.orders[order.ID] = copyOrder(*order)
	return nil
}

func (r *orderRepositoryInMemory) ReplaceLines(order domain.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.orders[order.ID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if _, ok := r.store.customers[order.CustomerID]; !ok {
		return domain.ErrCustomerNotFound
	}
	for _, line := range order.Lines {
		if _, ok := r.store.products[line.ProductID]; !ok {
			return domain.ErrProductNotFound
		}
	}

	// Прежний набор позиций отбрасывается целиком; CustomerID, Total и
	// Fecha копируются из входного заказа.
	existing.Lines = nil
	for _, line := range order.Lines {
		line.OrderID = existing.ID
		existing.Lines = append(existing.Lines, line)
	}
	existing.CustomerID = order.CustomerID
	existing.Total = order.Total
	existing.Fecha = order.Fecha
	if order.PaymentMethod != "" {
		existing.PaymentMethod = order.PaymentMethod
	}

	r.store.orders[existing.ID] = copyOrder(existing)
	return nil
}

func (r *orderRepositoryInMemory) Delete(id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.orders[id]; !ok {
		return false, nil
	}
	delete(r.store.orders, id)
	return true, nil
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
