package coupon

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const getCouponByCodeQuery = `
	SELECT coupon_id, code, kind, value, min_subtotal, is_active
	FROM coupons
	WHERE code = $1
`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByCode(code string) (Coupon, error) {
	var c Coupon
	err := r.db.QueryRow(getCouponByCodeQuery, code).
		Scan(&c.ID, &c.Code, &c.Kind, &c.Value, &c.MinSubtotal, &c.IsActive)
	if err == sql.ErrNoRows {
		return Coupon{}, ErrInvalidCoupon
	}
	if err != nil {
		return Coupon{}, err
	}
	return c, nil
}
