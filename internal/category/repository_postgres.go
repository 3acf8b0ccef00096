package category

import "database/sql"

// Repository provides access to category rows.
type Repository interface {
	List() ([]Category, error)
}

type PostgresRepository struct {
	db *sql.DB
}

const listCategoriesQuery = `
	SELECT category_id, category_name, category_img
	FROM categories
	ORDER BY category_id
`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Category, error) {
	rows, err := r.db.Query(listCategoriesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Image); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
