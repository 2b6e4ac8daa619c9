package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/tienda/internal/domain"
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

// Create сохраняет заказ вместе с позициями в одной транзакции.
// Промежуточное состояние "заказ без позиций" снаружи не наблюдаемо.
func (r *orderRepository) Create(order *domain.Order) error {
	ctx, cancel := opCtx()
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (customer_id, total, fecha, payment_method)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		order.CustomerID, order.Total, order.Fecha, string(order.PaymentMethod),
	).Scan(&order.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCustomerNotFound
		}
		return fmt.Errorf("insert order: %w", err)
	}

	if err = insertLines(ctx, tx, order.ID, order.Lines); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit create order: %w", err)
	}

	for i := range order.Lines {
		order.Lines[i].OrderID = order.ID
	}

	return nil
}

func (r *orderRepository) GetByID(id int64) (domain.Order, error) {
	ctx, cancel := opCtx()
	defer cancel()

	var order domain.Order
	var method string

	err := r.db.QueryRowContext(ctx, `
		SELECT id, customer_id, total, fecha, payment_method
		FROM orders
		WHERE id = $1
	`, id).Scan(&order.ID, &order.CustomerID, &order.Total, &order.Fecha, &method)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}
	order.PaymentMethod = domain.PaymentMethod(method)

	lines, err := r.loadLines(ctx, order.ID)
	if err != nil {
		return domain.Order{}, err
	}
	order.Lines = lines

	return order, nil
}

func (r *orderRepository) GetAll() ([]domain.Order, error) {
	ctx, cancel := opCtx()
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, customer_id, total, fecha, payment_method
		FROM orders
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var order domain.Order
		var method string
		if err := rows.Scan(&order.ID, &order.CustomerID, &order.Total, &order.Fecha, &method); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		order.PaymentMethod = domain.PaymentMethod(method)
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	for i := range orders {
		lines, err := r.loadLines(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Lines = lines
	}

	return orders, nil
}

// ReplaceLines атомарно заменяет весь набор позиций заказа:
// удалить существующие, вставить новые, скопировать CustomerID, Total и
// Fecha. Либо фиксируется всё, либо остаётся прежнее состояние.
func (r *orderRepository) ReplaceLines(order domain.Order) error {
	ctx, cancel := opCtx()
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// FOR UPDATE сериализует конкурентные реконсиляции одного заказа.
	var existingID int64
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM orders WHERE id = $1 FOR UPDATE
	`, order.ID).Scan(&existingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrOrderNotFound
		}
		return fmt.Errorf("lock order: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `
		DELETE FROM order_lines WHERE order_id = $1
	`, order.ID); err != nil {
		return fmt.Errorf("delete order lines: %w", err)
	}

	if err = insertLines(ctx, tx, order.ID, order.Lines); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `
		UPDATE orders
		SET customer_id = $1,
		    total = $2,
		    fecha = $3,
		    payment_method = COALESCE(NULLIF($4, ''), payment_method)
		WHERE id = $5
	`, order.CustomerID, order.Total, order.Fecha, string(order.PaymentMethod), order.ID); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCustomerNotFound
		}
		return fmt.Errorf("update order shell: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit replace lines: %w", err)
	}

	return nil
}

func (r *orderRepository) Delete(id int64) (bool, error) {
	ctx, cancel := opCtx()
	defer cancel()

	// Позиции удаляются каскадно по FK order_lines.order_id.
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *orderRepository) loadLines(ctx context.Context, orderID int64) ([]domain.OrderLine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT order_id, product_id, quantity
		FROM order_lines
		WHERE order_id = $1
		ORDER BY product_id ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order lines: %w", err)
	}
	defer rows.Close()

	lines := make([]domain.OrderLine, 0)
	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(&line.OrderID, &line.ProductID, &line.Quantity); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order lines: %w", err)
	}

	return lines, nil
}

func insertLines(ctx context.Context, tx *sql.Tx, orderID int64, lines []domain.OrderLine) error {
	for _, line := range lines {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_lines (order_id, product_id, quantity)
			VALUES ($1, $2, $3)
		`, orderID, line.ProductID, line.Quantity); err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrProductNotFound
			}
			return fmt.Errorf("insert order line: %w", err)
		}
	}
	return nil
}

var _ domain.OrderRepository = (*orderRepository)(nil)
