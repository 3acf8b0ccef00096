package payment

import (
	"context"
	"database/sql"
	"time"
)

// Transaction is one recorded bridge call.
type Transaction struct {
	ID       int     `json:"transactionID"`
	OrderID  int     `json:"orderID"`
	Provider string  `json:"provider"`
	Action   string  `json:"action"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Status   string  `json:"status"`
}

// TransactionRepository records bridge calls for reconciliation.
type TransactionRepository interface {
	Record(ctx context.Context, tx Transaction) (Transaction, error)
}

type PostgresTransactionRepository struct {
	db *sql.DB
}

const insertTransactionQuery = `
	INSERT INTO payment_transactions (order_id, provider, action, amount, currency, status, created_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7)
	RETURNING transaction_id
`

func NewPostgresTransactionRepository(db *sql.DB) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{db: db}
}

func (r *PostgresTransactionRepository) Record(ctx context.Context, tx Transaction) (Transaction, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	err := r.db.QueryRowContext(ctx, insertTransactionQuery,
		tx.OrderID, tx.Provider, tx.Action, tx.Amount, tx.Currency, tx.Status, now).
		Scan(&tx.ID)
	if err != nil {
		return Transaction{}, err
	}
	return tx, nil
}
