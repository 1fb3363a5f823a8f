package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createCustomerTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE IF NOT EXISTS customers (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'CUSTOMER',
		password_hash TEXT NOT NULL,
		phone1 TEXT NOT NULL,
		phone2 TEXT,
		marketer_id TEXT,
		email_verified_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createMerchantTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE IF NOT EXISTS merchants (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		brand_name TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		phone1 TEXT NOT NULL,
		phone2 TEXT,
		market_id TEXT,
		referred_by TEXT,
		email_verified_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createAddressTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE IF NOT EXISTS addresses (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		owner_type TEXT NOT NULL,
		street TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		country TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createMarketTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE IF NOT EXISTS markets (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		street TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		is_mall BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

// Product reads preload ratings, so the ratings table always rides along.
func createProductTables(t *testing.T, db *gorm.DB) {
	createRatingTable(t, db)
	mustExec(t, db, `CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		merchant_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		price INTEGER NOT NULL,
		previous_price INTEGER,
		stock INTEGER NOT NULL DEFAULT 0,
		category TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE IF NOT EXISTS product_images (
		id TEXT PRIMARY KEY,
		product_id TEXT NOT NULL,
		url TEXT NOT NULL,
		is_display BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createAdTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE IF NOT EXISTS ads (
		id TEXT PRIMARY KEY,
		product_id TEXT NOT NULL,
		level INTEGER NOT NULL DEFAULT 0,
		paid_for BOOLEAN NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		views INTEGER NOT NULL DEFAULT 0,
		clicks INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

// Cart listings preload products, so those tables always ride along.
func createCartTable(t *testing.T, db *gorm.DB) {
	createProductTables(t, db)
	mustExec(t, db, `CREATE TABLE IF NOT EXISTS cart_items (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		total_price INTEGER NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE(customer_id, product_id)
	);`)
}

func createRatingTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE IF NOT EXISTS ratings (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		stars INTEGER NOT NULL,
		review TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE(customer_id, product_id)
	);`)
}

func createMarketerTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE IF NOT EXISTS marketers (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL UNIQUE,
		username TEXT NOT NULL UNIQUE,
		verified BOOLEAN NOT NULL DEFAULT 0,
		bank_name TEXT NOT NULL,
		account_name TEXT NOT NULL,
		account_number TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE IF NOT EXISTS marketer_earnings (
		id TEXT PRIMARY KEY,
		marketer_id TEXT NOT NULL,
		merchant_id TEXT NOT NULL,
		ad_id TEXT NOT NULL UNIQUE,
		amount INTEGER NOT NULL,
		paid BOOLEAN NOT NULL DEFAULT 0,
		paid_at DATETIME,
		created_at DATETIME
	);`)
}

func createTransactionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		reference TEXT NOT NULL UNIQUE,
		merchant_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		ad_level INTEGER NOT NULL,
		amount INTEGER NOT NULL,
		status TEXT NOT NULL,
		settled_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createAuthTokenTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE IF NOT EXISTS auth_tokens (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		owner_type TEXT NOT NULL,
		purpose TEXT NOT NULL,
		token TEXT NOT NULL UNIQUE,
		expires_at DATETIME NOT NULL,
		used_at DATETIME,
		created_at DATETIME
	);`)
}
