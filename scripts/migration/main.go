package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/go-sql-driver/mysql"
)

// Incremental migration: adds the confirmed_products counter and the
// remote_confirmed flags to databases created before those columns
// existed.
func main() {
    user := os.Getenv("MYSQL_USER")
    pwd := os.Getenv("MYSQL_PWD")
    host := os.Getenv("MYSQL_HOST")
    dbName := os.Getenv("MYSQL_DATABASE")

    dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true", user, pwd, host, dbName)
    db, err := sql.Open("mysql", dsn)
    if err != nil {
        log.Fatal(err)
    }
    defer db.Close()

    queries := []string{
        "ALTER TABLE setup_sessions ADD COLUMN confirmed_products INT NOT NULL DEFAULT 0",
        "ALTER TABLE store_categories ADD COLUMN remote_confirmed BOOLEAN DEFAULT FALSE",
        "ALTER TABLE store_products ADD COLUMN remote_confirmed BOOLEAN DEFAULT FALSE",
    }

    for _, q := range queries {
        _, err := db.Exec(q)
        if err != nil {
            if strings.Contains(err.Error(), "Duplicate column name") {
                log.Printf("Skipping duplicate column error: %v", err)
            } else {
                fmt.Printf("Warning (might be ok if exists): %v\n", err)
            }
            continue
        }
        fmt.Println("Executed:", q)
    }

    fmt.Println("Migration Done.")
}
