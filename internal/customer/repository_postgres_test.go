package customer

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var info = ShippingInfo{
	Email:      "jamie@example.com",
	FirstName:  "Jamie",
	LastName:   "Lee",
	Address:    "1 Main St",
	City:       "Springfield",
	PostalCode: "12345",
	Country:    "US",
	Phone:      "555-0101",
}

func TestCreateOrFind_Existing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"customer_id", "email", "first_name", "last_name", "address", "city", "postal_code", "country", "phone"}).
		AddRow(7, info.Email, info.FirstName, info.LastName, info.Address, info.City, info.PostalCode, info.Country, info.Phone)
	mock.ExpectQuery("FROM customers").WithArgs(info.Email).WillReturnRows(rows)

	c, err := repo.CreateOrFind(context.Background(), info)
	if err != nil {
		t.Fatalf("CreateOrFind: %v", err)
	}
	if c.ID != 7 {
		t.Errorf("expected existing customer 7, got %d", c.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateOrFind_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM customers").WithArgs(info.Email).
		WillReturnRows(sqlmock.NewRows([]string{"customer_id"}))
	mock.ExpectQuery("INSERT INTO customers").
		WithArgs(info.Email, info.FirstName, info.LastName, info.Address, info.City, info.PostalCode, info.Country, info.Phone, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"customer_id"}).AddRow(11))

	c, err := repo.CreateOrFind(context.Background(), info)
	if err != nil {
		t.Fatalf("CreateOrFind: %v", err)
	}
	if c.ID != 11 {
		t.Errorf("expected new customer 11, got %d", c.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestInMemoryDedupByEmail(t *testing.T) {
	repo := NewInMemoryRepository()
	a, _ := repo.CreateOrFind(context.Background(), info)
	b, _ := repo.CreateOrFind(context.Background(), info)
	if a.ID != b.ID {
		t.Errorf("expected same customer for same email, got %d and %d", a.ID, b.ID)
	}
	if repo.Len() != 1 {
		t.Errorf("expected 1 stored customer, got %d", repo.Len())
	}
}
