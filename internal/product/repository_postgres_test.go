package product

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"product_id", "product_name", "product_desc", "sku", "price", "stock_quantity", "product_img", "category_id"})
}

func TestList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := productRows().
		AddRow(1, "Mug", "ceramic mug", "MUG-01", 12.50, 30, nil, nil).
		AddRow(2, "Tote", nil, "TOTE-01", 29.99, 5, nil, nil)
	mock.ExpectQuery("FROM products").WillReturnRows(rows)

	all, err := repo.List(0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 products, got %d", len(all))
	}
	if all[1].Description != "" {
		t.Errorf("expected empty description for NULL column, got %q", all[1].Description)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListByCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := productRows().AddRow(7, "Leash", "d", "LSH-07", 9.99, 12, nil, 3)
	mock.ExpectQuery("WHERE category_id").WithArgs(3).WillReturnRows(rows)

	got, err := repo.List(3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].ID != 7 {
		t.Fatalf("unexpected result %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("WHERE product_id").WithArgs(99).WillReturnRows(productRows())

	if _, err := repo.GetByID(99); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListByIDs_PreservesOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := productRows().
		AddRow(5, "B", nil, "B-05", 2.0, 1, nil, nil).
		AddRow(1, "A", nil, "A-01", 1.0, 1, nil, nil)
	mock.ExpectQuery("array_position").WithArgs(pq.Array([]int{5, 1})).WillReturnRows(rows)

	got, err := repo.ListByIDs([]int{5, 1})
	if err != nil {
		t.Fatalf("ListByIDs: %v", err)
	}
	if len(got) != 2 || got[0].ID != 5 || got[1].ID != 1 {
		t.Fatalf("unexpected order %+v", got)
	}

	// empty input short-circuits without a query
	if got, err := repo.ListByIDs(nil); err != nil || len(got) != 0 {
		t.Fatalf("expected empty result for nil ids, got %v %v", got, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
