package db

import (
	"database/sql"
	"fmt"

	"github.com/Techwolf78/Movie-App-Backend/internal/config"

	_ "github.com/go-sql-driver/mysql"
)

// DSN builds a go-sql-driver DSN from the database config.
// refer to https://github.com/go-sql-driver/mysql/?tab=readme-ov-file#dsn-data-source-name
func DSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

func Connect(cfg config.DatabaseConfig) (*sql.DB, error) {
	database, err := sql.Open("mysql", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	database.SetMaxOpenConns(25)
	database.SetMaxIdleConns(25)
	database.SetConnMaxLifetime(0)

	if err := database.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return database, nil
}
