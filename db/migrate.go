package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	user := "user"
	pwd := "password"
	host := "tcp(127.0.0.1:3306)"
	dbName := "storesetup_db"

	if os.Getenv("MYSQL_USER") != "" { user = os.Getenv("MYSQL_USER") }
	if os.Getenv("MYSQL_PWD") != "" { pwd = os.Getenv("MYSQL_PWD") }
	if os.Getenv("MYSQL_HOST") != "" { host = os.Getenv("MYSQL_HOST") }
	if os.Getenv("MYSQL_DATABASE") != "" { dbName = os.Getenv("MYSQL_DATABASE") }

	dsn := fmt.Sprintf("%s:%s@%s/%s?parseTime=true&loc=Local", user, pwd, host, dbName)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	queries := []string{
		`CREATE TABLE IF NOT EXISTS merchants (
			id CHAR(26) PRIMARY KEY COMMENT 'ULID',
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			preferred_locale VARCHAR(5) NOT NULL DEFAULT 'ar'
		)`,
		`CREATE TABLE IF NOT EXISTS stores (
			id CHAR(26) PRIMARY KEY COMMENT 'ULID',
			merchant_id CHAR(26) NOT NULL,
			platform VARCHAR(50) NOT NULL,
			external_store_id VARCHAR(255) NOT NULL,
			name VARCHAR(255) NOT NULL,
			access_token TEXT NOT NULL,
			refresh_token TEXT,
			theme_id VARCHAR(255),
			logo_url TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uq_stores_external (platform, external_store_id),
			FOREIGN KEY (merchant_id) REFERENCES merchants(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS setup_sessions (
			id CHAR(26) PRIMARY KEY COMMENT 'ULID',
			store_id CHAR(26) NOT NULL,
			status VARCHAR(20) NOT NULL COMMENT 'pending, in_progress, completed',
			current_step VARCHAR(20) NOT NULL COMMENT 'business, categories, products, marketing',
			completion_percentage INT NOT NULL DEFAULT 0,
			confirmed_products INT NOT NULL DEFAULT 0,
			landing_page JSON,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			FOREIGN KEY (store_id) REFERENCES stores(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS messages (
			id CHAR(26) PRIMARY KEY COMMENT 'ULID',
			session_id CHAR(26) NOT NULL,
			role VARCHAR(20) NOT NULL COMMENT 'user, assistant',
			content TEXT NOT NULL,
			action JSON,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (session_id) REFERENCES setup_sessions(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS store_categories (
			id CHAR(26) PRIMARY KEY COMMENT 'ULID',
			store_id CHAR(26) NOT NULL,
			remote_id VARCHAR(255),
			name_ar VARCHAR(255) NOT NULL,
			name_en VARCHAR(255) NOT NULL,
			remote_confirmed BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (store_id) REFERENCES stores(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS store_products (
			id CHAR(26) PRIMARY KEY COMMENT 'ULID',
			store_id CHAR(26) NOT NULL,
			remote_id VARCHAR(255),
			name_ar VARCHAR(255) NOT NULL,
			name_en VARCHAR(255) NOT NULL,
			price DECIMAL(10,2) NOT NULL DEFAULT 0.00,
			category_id VARCHAR(255),
			remote_confirmed BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (store_id) REFERENCES stores(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS coupons (
			id CHAR(26) PRIMARY KEY COMMENT 'ULID',
			store_id CHAR(26) NOT NULL,
			code VARCHAR(100) NOT NULL,
			discount_type VARCHAR(20) NOT NULL COMMENT 'percentage, fixed',
			discount_value DECIMAL(10,2) NOT NULL,
			expiry_date VARCHAR(50),
			min_order_value DECIMAL(10,2) DEFAULT 0.00,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (store_id) REFERENCES stores(id) ON DELETE CASCADE
		)`,
	}

	for _, q := range queries {
		_, err := db.Exec(q)
		if err != nil {
			log.Printf("Error executing query: %s\nError: %v\n", q, err)
            // Continue even if error (e.g. table exists with older definition)
		} else {
			fmt.Println("Executed successfully:", q[:40], "...")
		}
	}
    fmt.Println("Migration completed.")
}
