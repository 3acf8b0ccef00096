package currency

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	listActiveCurrenciesQuery = `
		SELECT code, symbol, rate, is_active
		FROM currencies
		WHERE is_active = TRUE
		ORDER BY code
	`
	getCurrencyByCodeQuery = `
		SELECT code, symbol, rate, is_active
		FROM currencies
		WHERE code = $1
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListActive() ([]Currency, error) {
	rows, err := r.db.Query(listActiveCurrenciesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Currency, 0)
	for rows.Next() {
		var c Currency
		if err := rows.Scan(&c.Code, &c.Symbol, &c.Rate, &c.IsActive); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByCode(code string) (Currency, error) {
	var c Currency
	err := r.db.QueryRow(getCurrencyByCodeQuery, code).Scan(&c.Code, &c.Symbol, &c.Rate, &c.IsActive)
	if err == sql.ErrNoRows {
		return Currency{}, ErrNotFound
	}
	if err != nil {
		return Currency{}, err
	}
	return c, nil
}
