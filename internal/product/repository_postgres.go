package product

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listProductsQuery = `
		SELECT product_id, product_name, product_desc, sku, price, stock_quantity, product_img, category_id
		FROM products
		ORDER BY product_id
	`
	listProductsByCategoryQuery = `
		SELECT product_id, product_name, product_desc, sku, price, stock_quantity, product_img, category_id
		FROM products
		WHERE category_id = $1
		ORDER BY product_id
	`
	getProductByIDQuery = `
		SELECT product_id, product_name, product_desc, sku, price, stock_quantity, product_img, category_id
		FROM products
		WHERE product_id = $1
	`
	listProductsByIDsQuery = `
		SELECT product_id, product_name, product_desc, sku, price, stock_quantity, product_img, category_id
		FROM products
		WHERE product_id = ANY($1::int[])
		ORDER BY array_position($1::int[], product_id)
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(categoryID int) ([]Product, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if categoryID > 0 {
		rows, err = r.db.Query(listProductsByCategoryQuery, categoryID)
	} else {
		rows, err = r.db.Query(listProductsQuery)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	var (
		p    Product
		desc sql.NullString
	)
	err := r.db.QueryRow(getProductByIDQuery, id).
		Scan(&p.ID, &p.Name, &desc, &p.SKU, &p.Price, &p.Stock, &p.Image, &p.CategoryID)
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	if desc.Valid {
		p.Description = desc.String
	}
	return p, nil
}

func (r *PostgresRepository) ListByIDs(ids []int) ([]Product, error) {
	if len(ids) == 0 {
		return []Product{}, nil
	}
	rows, err := r.db.Query(listProductsByIDsQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func scanProducts(rows *sql.Rows) ([]Product, error) {
	out := make([]Product, 0)
	for rows.Next() {
		var (
			p    Product
			desc sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Name, &desc, &p.SKU, &p.Price, &p.Stock, &p.Image, &p.CategoryID); err != nil {
			return nil, err
		}
		if desc.Valid {
			p.Description = desc.String
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
