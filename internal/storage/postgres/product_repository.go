package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/tienda/internal/domain"
)

type productRepository struct {
	db *sql.DB
}

// NewProductRepository создаёт PostgreSQL-реализацию ProductRepository.
func NewProductRepository(store *Store) domain.ProductRepository {
	return &productRepository{db: store.DB()}
}

func (r *productRepository) GetAll() ([]domain.Product, error) {
	ctx, cancel := opCtx()
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price, stock, category_id
		FROM products
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.CategoryID); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

func (r *productRepository) GetByID(id int64) (domain.Product, error) {
	ctx, cancel := opCtx()
	defer cancel()

	var p domain.Product
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, price, stock, category_id
		FROM products
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.CategoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("select product: %w", err)
	}

	return p, nil
}

func (r *productRepository) Add(product *domain.Product) error {
	ctx, cancel := opCtx()
	defer cancel()

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, price, stock, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, product.Name, product.Price, product.Stock, product.CategoryID).Scan(&product.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

func (r *productRepository) Update(product domain.Product) error {
	ctx, cancel := opCtx()
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name = $1,
		    price = $2,
		    stock = $3,
		    category_id = $4
		WHERE id = $5
	`, product.Name, product.Price, product.Stock, product.CategoryID, product.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

func (r *productRepository) Delete(id int64) (bool, error) {
	ctx, cancel := opCtx()
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrProductInUse
		}
		return false, fmt.Errorf("delete product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	return affected > 0, nil
}

var _ domain.ProductRepository = (*productRepository)(nil)
