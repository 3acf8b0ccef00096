package paymentmethod

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	listActiveMethodsQuery = `
		SELECT payment_method_id, code, name, provider, is_active
		FROM payment_methods
		WHERE is_active = TRUE
		ORDER BY payment_method_id
	`
	getMethodByIDQuery = `
		SELECT payment_method_id, code, name, provider, is_active
		FROM payment_methods
		WHERE payment_method_id = $1
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListActive() ([]PaymentMethod, error) {
	rows, err := r.db.Query(listActiveMethodsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PaymentMethod, 0)
	for rows.Next() {
		var m PaymentMethod
		if err := rows.Scan(&m.ID, &m.Code, &m.Name, &m.Provider, &m.IsActive); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (PaymentMethod, error) {
	var m PaymentMethod
	err := r.db.QueryRow(getMethodByIDQuery, id).Scan(&m.ID, &m.Code, &m.Name, &m.Provider, &m.IsActive)
	if err == sql.ErrNoRows {
		return PaymentMethod{}, ErrNotFound
	}
	if err != nil {
		return PaymentMethod{}, err
	}
	return m, nil
}
