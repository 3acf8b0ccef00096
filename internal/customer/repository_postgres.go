package customer

import (
	"context"
	"database/sql"
	"time"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	findCustomerByEmailQuery = `
		SELECT customer_id, email, first_name, last_name, address, city, postal_code, country, phone
		FROM customers
		WHERE email = $1
	`
	insertCustomerQuery = `
		INSERT INTO customers (email, first_name, last_name, address, city, postal_code, country, phone, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING customer_id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateOrFind(ctx context.Context, info ShippingInfo) (Customer, error) {
	var c Customer
	err := r.db.QueryRowContext(ctx, findCustomerByEmailQuery, info.Email).Scan(
		&c.ID, &c.Email, &c.FirstName, &c.LastName, &c.Address, &c.City, &c.PostalCode, &c.Country, &c.Phone)
	if err == nil {
		return c, nil
	}
	if err != sql.ErrNoRows {
		return Customer{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	c = Customer{ShippingInfo: info, CreatedAt: now}
	err = r.db.QueryRowContext(ctx, insertCustomerQuery,
		info.Email, info.FirstName, info.LastName, info.Address, info.City, info.PostalCode, info.Country, info.Phone, now).
		Scan(&c.ID)
	if err != nil {
		return Customer{}, err
	}
	return c, nil
}
