package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/tienda/internal/domain"
)

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository создаёт PostgreSQL-реализацию CategoryRepository.
func NewCategoryRepository(store *Store) domain.CategoryRepository {
	return &categoryRepository{db: store.DB()}
}

func (r *categoryRepository) GetAll() ([]domain.Category, error) {
	ctx, cancel := opCtx()
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name
		FROM categories
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) GetByID(id int64) (domain.Category, error) {
	ctx, cancel := opCtx()
	defer cancel()

	var c domain.Category
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name
		FROM categories
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Category{}, domain.ErrCategoryNotFound
		}
		return domain.Category{}, fmt.Errorf("select category: %w", err)
	}

	return c, nil
}

func (r *categoryRepository) Add(category *domain.Category) error {
	ctx, cancel := opCtx()
	defer cancel()

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id
	`, category.Name).Scan(&category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCategoryNameTaken
		}
		return fmt.Errorf("insert category: %w", err)
	}

	return nil
}

func (r *categoryRepository) Update(category domain.Category) error {
	ctx, cancel := opCtx()
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE categories
		SET name = $1
		WHERE id = $2
	`, category.Name, category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCategoryNameTaken
		}
		return fmt.Errorf("update category: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrCategoryNotFound
	}

	return nil
}

func (r *categoryRepository) Delete(id int64) (bool, error) {
	ctx, cancel := opCtx()
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		// ON DELETE RESTRICT на products.category_id.
		if isForeignKeyViolation(err) {
			return false, domain.ErrCategoryInUse
		}
		return false, fmt.Errorf("delete category: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	return affected > 0, nil
}

var _ domain.CategoryRepository = (*categoryRepository)(nil)
