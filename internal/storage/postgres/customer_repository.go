package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/tienda/internal/domain"
)

type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository создаёт PostgreSQL-реализацию CustomerRepository.
func NewCustomerRepository(store *Store) domain.CustomerRepository {
	return &customerRepository{db: store.DB()}
}

func (r *customerRepository) GetAll() ([]domain.Customer, error) {
	ctx, cancel := opCtx()
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, debt
		FROM customers
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Debt); err != nil {
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customer rows: %w", err)
	}

	return customers, nil
}

func (r *customerRepository) GetByID(id int64) (domain.Customer, error) {
	ctx, cancel := opCtx()
	defer cancel()

	var c domain.Customer
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, debt
		FROM customers
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Debt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Customer{}, domain.ErrCustomerNotFound
		}
		return domain.Customer{}, fmt.Errorf("select customer: %w", err)
	}

	return c, nil
}

func (r *customerRepository) Add(customer *domain.Customer) error {
	ctx, cancel := opCtx()
	defer cancel()

	// RETURNING отдаёт сгенерированный ID до возврата вызывающему.
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO customers (name, debt)
		VALUES ($1, $2)
		RETURNING id
	`, customer.Name, customer.Debt).Scan(&customer.ID)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}

	return nil
}

func (r *customerRepository) Update(customer domain.Customer) error {
	ctx, cancel := opCtx()
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE customers
		SET name = $1,
		    debt = $2
		WHERE id = $3
	`, customer.Name, customer.Debt, customer.ID)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrCustomerNotFound
	}

	return nil
}

func (r *customerRepository) Delete(id int64) (bool, error) {
	ctx, cancel := opCtx()
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrCustomerInUse
		}
		return false, fmt.Errorf("delete customer: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	return affected > 0, nil
}

var _ domain.CustomerRepository = (*customerRepository)(nil)
