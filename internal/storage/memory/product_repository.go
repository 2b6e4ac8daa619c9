package memory

import (
	"sort"

	"github.com/vladislavdragonenkov/tienda/internal/domain"
)

// productRepositoryInMemory — in-memory реализация ProductRepository.
type productRepositoryInMemory struct {
	store *Store
}

// NewProductRepository возвращает in-memory репозиторий товаров.
func NewProductRepository(store *Store) domain.ProductRepository {
	return &productRepositoryInMemory{store: store}
}

func (r *productRepositoryInMemory) GetAll() ([]domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]domain.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

func (r *productRepositoryInMemory) GetByID(id int64) (domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.products[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

func (r *productRepositoryInMemory) Add(product *domain.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.categories[product.CategoryID]; !ok {
		return domain.ErrCategoryNotFound
	}

	product.ID = r.store.allocProductID()
	r.store.products[product.ID] = *product
	return nil
}

func (r *productRepositoryInMemory) Update(product domain.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	if _, ok := r.store.categories[product.CategoryID]; !ok {
		return domain.ErrCategoryNotFound
	}
	r.store.products[product.ID] = product
	return nil
}

func (r *productRepositoryInMemory) Delete(id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.products[id]; !ok {
		return false, nil
	}
	for _, order := range r.store.orders {
		for _, line := range order.Lines {
			if line.ProductID == id {
				return false, domain.ErrProductInUse
			}
		}
	}
	delete(r.store.products, id)
	return true, nil
}

var _ domain.ProductRepository = (*productRepositoryInMemory)(nil)
