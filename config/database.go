package config

import (
	"context"
	"fmt"
	"os"

	"github.com/snap-point/tour-guide-api/catalog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
}

// GetDBConfig returns nil when no database is configured; the service then
// runs on the built-in catalog.
func GetDBConfig() *DBConfig {
	host := os.Getenv("DB_HOST")
	if host == "" {
		return nil
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}
	return &DBConfig{
		Host:     host,
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		Port:     port,
	}
}

func (c *DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.Host, c.User, c.Password, c.Name, c.Port)
}

// InitDB opens the catalog database and migrates the reference tables.
func InitDB(cfg *DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := catalog.Migrate(context.Background(), db); err != nil {
		return nil, err
	}
	return db, nil
}
