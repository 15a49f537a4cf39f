package db

import (
	"fmt"

	"github.com/zulandar/trestle/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds a MySQL DSN from database configuration.
func DSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// Connect opens a GORM connection to the configured database.
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	switch cfg.Driver {
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.Path), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("db: connect sqlite %s: %w", cfg.Path, err)
		}
		return db, nil
	case "mysql":
		db, err := gorm.Open(mysql.Open(DSN(cfg)), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("db: connect to %s:%d/%s: %w", cfg.Host, cfg.Port, cfg.Name, err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("db: unknown driver %q", cfg.Driver)
	}
}
