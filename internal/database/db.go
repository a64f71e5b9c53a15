package database

import (
	"fmt"
	"time"

	"brasserie/internal/models"

	"github.com/jinzhu/gorm"
	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

var db *gorm.DB

// InitDB opens the database connection and configures the pool.
// Supported drivers are "sqlite3" and "postgres".
func InitDB(driver, dsn string, logMode bool) (*gorm.DB, error) {
	conn, err := gorm.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	conn.LogMode(logMode)

	conn.DB().SetMaxIdleConns(10)
	conn.DB().SetMaxOpenConns(100)
	conn.DB().SetConnMaxLifetime(time.Hour)

	db = conn
	return conn, nil
}

// Migrate creates and updates all required tables.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Menu{},
		&models.Order{},
		&models.OrderItem{},
		&models.Rating{},
	).Error
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return db
}

// CloseDB closes the database connection
func CloseDB() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
