package database

import (
	"context"
	"testing"

	"github.com/farmchainx/farmchainx/internal/common/config"

	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	cfg := &config.DatabaseConfig{Type: "sqlite", DBName: ":memory:"}
	dbi, err := NewSQLite(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbi.Close() })
	return dbi.(*SQLite)
}

func createUser(t *testing.T, db Database, email string, role Role) *User {
	t.Helper()
	u := &User{Email: email, Password: "hash", FullName: "Test " + string(role), Role: role, Approved: true}
	require.NoError(t, db.CreateUser(context.Background(), u))
	return u
}
