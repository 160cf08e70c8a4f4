package database

import (
	"fmt"

	"employeeservice/migrations"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies the embedded SQL migrations to the connected database
func (c *Connection) RunMigrations() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(sqlDB, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
