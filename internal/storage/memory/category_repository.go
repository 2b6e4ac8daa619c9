package memory

import (
	"sort"

	"github.com/vladislavdragonenkov/tienda/internal/domain"
)

// categoryRepositoryInMemory — in-memory реализация CategoryRepository.
type categoryRepositoryInMemory struct {
	store *Store
}

// NewCategoryRepository возвращает in-memory репозиторий категорий.
func NewCategoryRepository(store *Store) domain.CategoryRepository {
	return &categoryRepositoryInMemory{store: store}
}

func (r *categoryRepositoryInMemory) GetAll() ([]domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]domain.Category, 0, len(r.store.categories))
	for _, c := range r.store.categories {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

func (r *categoryRepositoryInMemory) GetByID(id int64) (domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.categories[id]
	if !ok {
		return domain.Category{}, domain.ErrCategoryNotFound
	}
	return c, nil
}

func (r *categoryRepositoryInMemory) Add(category *domain.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// Уникальность имени повторяет уникальный индекс Postgres.
	for _, existing := range r.store.categories {
		if existing.Name == category.Name {
			return domain.ErrCategoryNameTaken
		}
	}

	category.ID = r.store.allocCategoryID()
	r.store.categories[category.ID] = *category
	return nil
}

func (r *categoryRepositoryInMemory) Update(category domain.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.categories[category.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	for _, existing := range r.store.categories {
		if existing.ID != category.ID && existing.Name == category.Name {
			return domain.ErrCategoryNameTaken
		}
	}
	r.store.categories[category.ID] = category
	return nil
}

func (r *categoryRepositoryInMemory) Delete(id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.categories[id]; !ok {
		return false, nil
	}
	// RESTRICT: удаление запрещено, пока на категорию ссылаются товары.
	for _, product := range r.store.products {
		if product.CategoryID == id {
			return false, domain.ErrCategoryInUse
		}
	}
	delete(r.store.categories, id)
	return true, nil
}

var _ domain.CategoryRepository = (*categoryRepositoryInMemory)(nil)
