package memory

import (
	"sort"

	"github.com/vladislavdragonenkov/tienda/internal/domain"
)

// customerRepositoryInMemory — простая in-memory реализация CustomerRepository.
type customerRepositoryInMemory struct {
	store *Store
}

// NewCustomerRepository возвращает in-memory репозиторий клиентов.
func NewCustomerRepository(store *Store) domain.CustomerRepository {
	return &customerRepositoryInMemory{store: store}
}

func (r *customerRepositoryInMemory) GetAll() ([]domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]domain.Customer, 0, len(r.store.customers))
	for _, c := range r.store.customers {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

func (r *customerRepositoryInMemory) GetByID(id int64) (domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.customers[id]
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return c, nil
}

func (r *customerRepositoryInMemory) Add(customer *domain.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	customer.ID = r.store.allocCustomerID()
	r.store.customers[customer.ID] = *customer
	return nil
}

func (r *customerRepositoryInMemory) Update(customer domain.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.customers[customer.ID]; !ok {
		return domain.ErrCustomerNotFound
	}
	r.store.customers[customer.ID] = customer
	return nil
}

func (r *customerRepositoryInMemory) Delete(id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.customers[id]; !ok {
		return false, nil
	}
	for _, order := range r.store.orders {
		if order.CustomerID == id {
			return false, domain.ErrCustomerInUse
		}
	}
	delete(r.store.customers, id)
	return true, nil
}

var _ domain.CustomerRepository = (*customerRepositoryInMemory)(nil)
