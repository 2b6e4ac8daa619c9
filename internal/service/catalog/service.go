// Package catalog реализует операции над категориями и товарами.
package catalog

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/tienda/internal/domain"
	"github.com/vladislavdragonenkov/tienda/internal/dto"
	"github.com/vladislavdragonenkov/tienda/internal/mapping"
)

// Service оркестрирует CRUD каталога поверх репозиториев.
// Уникальность имени категории и ссылочную целостность товар-категория
// обеспечивает хранилище; сервис переводит его ошибки вызывающему как есть.
type Service struct {
	categories domain.CategoryRepository
	products   domain.ProductRepository
	logger     *log.Entry
}

// NewService конструирует сервис каталога.
func NewService(categories domain.CategoryRepository, products domain.ProductRepository, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.WithField("component", "catalog-service")
	}
	return &Service{categories: categories, products: products, logger: logger}
}

// ListCategories возвращает все категории.
func (s *Service) ListCategories() ([]dto.Category, error) {
	categories, err := s.categories.GetAll()
	if err != nil {
		return nil, err
	}
	return mapping.CategoriesToDTO(categories), nil
}

// GetCategory возвращает категорию по идентификатору.
func (s *Service) GetCategory(id int64) (dto.Category, error) {
	category, err := s.categories.GetByID(id)
	if err != nil {
		return dto.Category{}, err
	}
	return mapping.CategoryToDTO(category), nil
}

// CreateCategory создаёт категорию с уникальным именем.
func (s *Service) CreateCategory(in dto.Category) (dto.Category, error) {
	category := mapping.CategoryFromDTO(in)
	category.ID = 0

	if errs := category.ValidateInvariants(); len(errs) > 0 {
		return dto.Category{}, errs[0]
	}

	if err := s.categories.Add(&category); err != nil {
		if !errors.Is(err, domain.ErrCategoryNameTaken) {
			s.logger.WithError(err).Error("failed to create category")
		}
		return dto.Category{}, err
	}

	return mapping.CategoryToDTO(category), nil
}

// UpdateCategory переименовывает категорию.
func (s *Service) UpdateCategory(id int64, in dto.Category) (dto.Category, error) {
	category := mapping.CategoryFromDTO(in)
	category.ID = id

	if errs := category.ValidateInvariants(); len(errs) > 0 {
		return dto.Category{}, errs[0]
	}

	if err := s.categories.Update(category); err != nil {
		return dto.Category{}, err
	}

	return mapping.CategoryToDTO(category), nil
}

// DeleteCategory удаляет категорию.
// Категория, на которую ссылается хотя бы один товар, не удаляется:
// возвращается domain.ErrCategoryInUse.
func (s *Service) DeleteCategory(id int64) (bool, error) {
	deleted, err := s.categories.Delete(id)
	if err != nil {
		if !errors.Is(err, domain.ErrCategoryInUse) {
			s.logger.WithError(err).WithField("category_id", id).Error("failed to delete category")
		}
		return false, err
	}
	return deleted, nil
}

// ListProducts возвращает все товары.
func (s *Service) ListProducts() ([]dto.Product, error) {
	products, err := s.products.GetAll()
	if err != nil {
		return nil, err
	}
	return mapping.ProductsToDTO(products), nil
}

// GetProduct возвращает товар по идентификатору.
func (s *Service) GetProduct(id int64) (dto.Product, error) {
	product, err := s.products.GetByID(id)
	if err != nil {
		return dto.Product{}, err
	}
	return mapping.ProductToDTO(product), nil
}

// CreateProduct создаёт товар в существующей категории.
func (s *Service) CreateProduct(in dto.Product) (dto.Product, error) {
	product := mapping.ProductFromDTO(in)
	product.ID = 0

	if errs := product.ValidateInvariants(); len(errs) > 0 {
		return dto.Product{}, errs[0]
	}

	if err := s.products.Add(&product); err != nil {
		if !domain.IsNotFound(err) {
			s.logger.WithError(err).Error("failed to create product")
		}
		return dto.Product{}, err
	}

	return mapping.ProductToDTO(product), nil
}

// UpdateProduct полностью замещает данные товара.
func (s *Service) UpdateProduct(id int64, in dto.Product) (dto.Product, error) {
	product := mapping.ProductFromDTO(in)
	product.ID = id

	if errs := product.ValidateInvariants(); len(errs) > 0 {
		return dto.Product{}, errs[0]
	}

	if err := s.products.Update(product); err != nil {
		return dto.Product{}, err
	}

	return mapping.ProductToDTO(product), nil
}

// DeleteProduct удаляет товар; false означает, что записи не было.
func (s *Service) DeleteProduct(id int64) (bool, error) {
	deleted, err := s.products.Delete(id)
	if err != nil {
		if !errors.Is(err, domain.ErrProductInUse) {
			s.logger.WithError(err).WithField("product_id", id).Error("failed to delete product")
		}
		return false, err
	}
	return deleted, nil
}
