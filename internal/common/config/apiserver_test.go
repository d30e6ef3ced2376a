package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseConfig_GetDSN_Postgres(t *testing.T) {
	c := &DatabaseConfig{Type: "postgres", Host: "h", Port: 5432, User: "u", Password: "p", DBName: "d", SSLMode: "require"}
	assert.Equal(t, "postgres://u:p@h:5432/d?sslmode=require", c.GetDSN())

	c.SSLMode = ""
	assert.Equal(t, "postgres://u:p@h:5432/d?sslmode=disable", c.GetDSN())
}

func TestDatabaseConfig_GetDSN_MySQL(t *testing.T) {
	c := &DatabaseConfig{Type: "mysql", Host: "h", Port: 3306, User: "u", Password: "p", DBName: "d"}
	assert.Equal(t, "u:p@tcp(h:3306)/d?charset=utf8mb4&parseTime=True&loc=Local", c.GetDSN())
}

func TestDatabaseConfig_GetDSN_SQLite(t *testing.T) {
	tmp := t.TempDir()
	dbPath := filepath.Join(tmp, "data", "farm.sqlite")
	c := &DatabaseConfig{Type: "sqlite", DBName: dbPath}
	assert.Equal(t, dbPath, c.GetDSN())
	_, err := os.Stat(filepath.Dir(dbPath))
	assert.NoError(t, err)

	mem := &DatabaseConfig{Type: "sqlite", DBName: ":memory:"}
	assert.Equal(t, ":memory:", mem.GetDSN())
}

func TestDatabaseConfig_GetDSN_Unknown(t *testing.T) {
	c := &DatabaseConfig{Type: "unknown"}
	assert.Equal(t, "", c.GetDSN())
}

func validConfig() *APIServerConfig {
	c := &APIServerConfig{JWT: JWTConfig{SecretKey: "0123456789abcdef0123456789abcdef"}}
	c.setDefaults()
	return c
}

func TestAPIServerConfig_Validate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	cases := map[string]func(c *APIServerConfig){
		"database type": func(c *APIServerConfig) { c.Database.Type = "oracle" },
		"jwt secret":    func(c *APIServerConfig) { c.JWT.SecretKey = "short" },
		"cache type":    func(c *APIServerConfig) { c.Cache.Type = "memcached" },
		"redis addr":    func(c *APIServerConfig) { c.Cache.Type = "redis" },
		"port":          func(c *APIServerConfig) { c.Server.Port = 70000 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := validConfig()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
