package order

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertOrderQuery = `
		INSERT INTO orders (order_number, customer_id, subtotal, discount_amount, shipping_amount, tax_amount, total_amount, currency_code, status, payment_status, payment_method_id, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING order_id
	`
	getOrderByNumberQuery = `
		SELECT order_id, order_number, customer_id, subtotal, discount_amount, shipping_amount, tax_amount, total_amount, currency_code, status, payment_status, payment_method_id, created_at, updated_at
		FROM orders
		WHERE order_number = $1
	`
	listOrderItemsQuery = `
		SELECT order_item_id, order_id, product_id, product_name, sku, unit_price, quantity, total_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY order_item_id
	`
	listRecentOrdersQuery = `
		SELECT order_id, order_number, customer_id, subtotal, discount_amount, shipping_amount, tax_amount, total_amount, currency_code, status, payment_status, payment_method_id, created_at, updated_at
		FROM orders
		ORDER BY order_id DESC
		LIMIT $1
	`
	updateOrderStatusQuery = `UPDATE orders SET status = $1, updated_at = $2 WHERE order_id = $3`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create writes the order header and all item snapshots in one
// transaction, so a failed item insert can never leave an orphaned header.
func (r *PostgresRepository) Create(ctx context.Context, ord Order, items []Item) (Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return Order{}, fmt.Errorf("begin order tx: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, insertOrderQuery,
		ord.OrderNumber, ord.CustomerID, ord.Subtotal, ord.DiscountAmount, ord.ShippingAmount,
		ord.TaxAmount, ord.TotalAmount, ord.CurrencyCode, ord.Status, ord.PaymentStatus,
		ord.PaymentMethodID, ord.CreatedAt, ord.UpdatedAt).
		Scan(&ord.ID)
	if err != nil {
		return Order{}, fmt.Errorf("insert order header: %w", err)
	}

	if len(items) > 0 {
		query, args := buildItemsInsert(ord.ID, items)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return Order{}, fmt.Errorf("insert order items: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Order{}, fmt.Errorf("commit order tx: %w", err)
	}

	ord.Items = make([]Item, len(items))
	for i, it := range items {
		it.OrderID = ord.ID
		ord.Items[i] = it
	}
	return ord, nil
}

// buildItemsInsert produces a single multi-row INSERT for the item snapshots.
func buildItemsInsert(orderID int, items []Item) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`INSERT INTO order_items (order_id, product_id, product_name, sku, unit_price, quantity, total_price) VALUES `)

	args := make([]any, 0, len(items)*7)
	for i, it := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 7
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d,$%d)", base+1, base+2, base+3, base+4, base+5, base+6, base+7)
		args = append(args, orderID, it.ProductID, it.ProductName, it.SKU, it.UnitPrice, it.Quantity, it.TotalPrice)
	}
	return sb.String(), args
}

func (r *PostgresRepository) GetByNumber(ctx context.Context, number string) (Order, error) {
	ord, err := scanOrder(r.db.QueryRowContext(ctx, getOrderByNumberQuery, number))
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}

	rows, err := r.db.QueryContext(ctx, listOrderItemsQuery, ord.ID)
	if err != nil {
		return Order{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.SKU, &it.UnitPrice, &it.Quantity, &it.TotalPrice); err != nil {
			return Order{}, err
		}
		ord.Items = append(ord.Items, it)
	}
	return ord, rows.Err()
}

func (r *PostgresRepository) ListRecent(ctx context.Context, limit int) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, listRecentOrdersQuery, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ord)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, orderID int, status string) error {
	res, err := r.db.ExecContext(ctx, updateOrderStatusQuery, status, nowRFC3339(), orderID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var ord Order
	err := row.Scan(&ord.ID, &ord.OrderNumber, &ord.CustomerID, &ord.Subtotal, &ord.DiscountAmount,
		&ord.ShippingAmount, &ord.TaxAmount, &ord.TotalAmount, &ord.CurrencyCode, &ord.Status,
		&ord.PaymentStatus, &ord.PaymentMethodID, &ord.CreatedAt, &ord.UpdatedAt)
	return ord, err
}
