package database

import (
	"fmt"
	"strings"

	"github.com/farmchainx/farmchainx/internal/common/config"
)

// NewDatabase opens the store selected by cfg.Type and migrates the
// users, crops and orders tables
func NewDatabase(cfg *config.DatabaseConfig) (Database, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Type)) {
	case "sqlite", "":
		return NewSQLite(cfg)
	case "mysql":
		return NewMySQL(cfg)
	case "postgres":
		return NewPostgres(cfg)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}
}
