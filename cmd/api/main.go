package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/storelane/storefront-backend/internal/admin"
	"github.com/storelane/storefront-backend/internal/cart"
	"github.com/storelane/storefront-backend/internal/category"
	"github.com/storelane/storefront-backend/internal/checkout"
	"github.com/storelane/storefront-backend/internal/config"
	"github.com/storelane/storefront-backend/internal/coupon"
	"github.com/storelane/storefront-backend/internal/currency"
	"github.com/storelane/storefront-backend/internal/customer"
	"github.com/storelane/storefront-backend/internal/order"
	"github.com/storelane/storefront-backend/internal/payment"
	"github.com/storelane/storefront-backend/internal/paymentmethod"
	"github.com/storelane/storefront-backend/internal/product"
	"github.com/storelane/storefront-backend/pkg/metrics"
)

// main wires dependencies and starts the HTTP server.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}
	if err := ensureSchema(db); err != nil {
		log.Fatalf("bootstrap schema: %v", err)
	}

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + cart.SessionHeader,
	}))

	storeMetrics := metrics.New()

	// repositories and services
	productService := product.NewService(product.NewPostgresRepository(db))
	categoryService := category.NewService(category.NewPostgresRepository(db))
	currencyService := currency.NewService(currency.NewPostgresRepository(db))
	couponService := coupon.NewService(coupon.NewPostgresRepository(db))
	methodService := paymentmethod.NewService(paymentmethod.NewPostgresRepository(db))
	customerRepo := customer.NewPostgresRepository(db)
	orderService := order.NewService(order.NewPostgresRepository(db), customerRepo, couponService, storeMetrics)

	cartStore := cart.NewStore()
	checkoutService := checkout.NewService(checkout.NewStore(), cartStore, methodService, orderService, storeMetrics)

	bridge := payment.NewBridge(map[string]string{
		"stripe": cfg.StripeEndpoint,
		"paypal": cfg.PayPalEndpoint,
	})

	// public routes
	product.NewHandler(productService).RegisterPublicRoutes(app)
	category.NewHandler(categoryService).RegisterPublicRoutes(app)
	currency.NewHandler(currencyService).RegisterPublicRoutes(app)
	paymentmethod.NewHandler(methodService).RegisterPublicRoutes(app)
	cart.NewHandler(cartStore, productService, currencyService).RegisterPublicRoutes(app)
	checkout.NewHandler(checkoutService).RegisterPublicRoutes(app)
	order.NewHandler(orderService).RegisterPublicRoutes(app)
	payment.NewHandler(bridge, payment.NewPostgresTransactionRepository(db)).RegisterPublicRoutes(app)

	adminHandler := admin.NewHandler(orderService, cfg.JWTSecret, os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD_HASH"))
	adminHandler.RegisterPublicRoutes(app)

	// everything registered after this middleware requires a valid token
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))
	adminHandler.RegisterProtectedRoutes(app)

	go func() {
		log.Printf("metrics on %s", cfg.MetricsAddr)
		if err := http.ListenAndServe(cfg.MetricsAddr, metrics.Handler()); err != nil {
			log.Printf("metrics server stopped: %v", err)
		}
	}()

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// ensureSchema creates the tables on first start and seeds reference data
// that the storefront cannot run without.
func ensureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			category_id SERIAL PRIMARY KEY,
			category_name TEXT NOT NULL,
			category_img TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			product_id SERIAL PRIMARY KEY,
			product_name TEXT NOT NULL,
			product_desc TEXT,
			sku TEXT NOT NULL,
			price NUMERIC NOT NULL DEFAULT 0,
			stock_quantity INT NOT NULL DEFAULT 0,
			product_img TEXT,
			category_id INT REFERENCES categories(category_id)
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			customer_id SERIAL PRIMARY KEY,
			email TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			address TEXT NOT NULL,
			city TEXT NOT NULL,
			postal_code TEXT NOT NULL,
			country TEXT NOT NULL,
			phone TEXT NOT NULL,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id SERIAL PRIMARY KEY,
			order_number TEXT NOT NULL UNIQUE,
			customer_id INT NOT NULL REFERENCES customers(customer_id),
			subtotal NUMERIC NOT NULL DEFAULT 0,
			discount_amount NUMERIC NOT NULL DEFAULT 0,
			shipping_amount NUMERIC NOT NULL DEFAULT 0,
			tax_amount NUMERIC NOT NULL DEFAULT 0,
			total_amount NUMERIC NOT NULL DEFAULT 0,
			currency_code TEXT NOT NULL DEFAULT 'USD',
			status TEXT NOT NULL DEFAULT 'pending',
			payment_status TEXT NOT NULL DEFAULT 'pending',
			payment_method_id INT,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			order_item_id SERIAL PRIMARY KEY,
			order_id INT NOT NULL REFERENCES orders(order_id),
			product_id INT NOT NULL,
			product_name TEXT NOT NULL,
			sku TEXT NOT NULL,
			unit_price NUMERIC NOT NULL,
			quantity INT NOT NULL,
			total_price NUMERIC NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS payment_methods (
			payment_method_id SERIAL PRIMARY KEY,
			code TEXT NOT NULL,
			name TEXT NOT NULL,
			provider TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS currencies (
			code TEXT PRIMARY KEY,
			symbol TEXT NOT NULL,
			rate NUMERIC NOT NULL DEFAULT 1,
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS coupons (
			coupon_id SERIAL PRIMARY KEY,
			code TEXT NOT NULL UNIQUE,
			kind TEXT NOT NULL,
			value NUMERIC NOT NULL,
			min_subtotal NUMERIC NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS payment_transactions (
			transaction_id SERIAL PRIMARY KEY,
			order_id INT NOT NULL,
			provider TEXT NOT NULL,
			action TEXT NOT NULL,
			amount NUMERIC NOT NULL,
			currency TEXT NOT NULL,
			status TEXT,
			created_at TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	// seed currencies when the table is empty
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM currencies`).Scan(&n); err == nil && n == 0 {
		seed := []struct {
			code, symbol string
			rate         float64
		}{
			{"USD", "$", 1},
			{"EUR", "€", 0.92},
		}
		for _, s := range seed {
			if _, err := db.Exec(`INSERT INTO currencies (code, symbol, rate, is_active) VALUES ($1,$2,$3,TRUE)`, s.code, s.symbol, s.rate); err != nil {
				log.Printf("warning: could not seed currency %s: %v", s.code, err)
			}
		}
	}

	// seed payment methods when the table is empty
	if err := db.QueryRow(`SELECT COUNT(*) FROM payment_methods`).Scan(&n); err == nil && n == 0 {
		seed := []struct{ code, name, provider string }{
			{"card", "Credit / debit card", "stripe"},
			{"paypal", "PayPal", "paypal"},
		}
		for _, s := range seed {
			if _, err := db.Exec(`INSERT INTO payment_methods (code, name, provider, is_active) VALUES ($1,$2,$3,TRUE)`, s.code, s.name, s.provider); err != nil {
				log.Printf("warning: could not seed payment method %s: %v", s.code, err)
			}
		}
	}

	return nil
}
