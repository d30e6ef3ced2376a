package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/farmchainx/farmchainx/internal/apiserver/cache"
	"github.com/farmchainx/farmchainx/internal/apiserver/database"
	jsvc "github.com/farmchainx/farmchainx/internal/auth/jwt"
	"github.com/farmchainx/farmchainx/internal/common/config"
	"github.com/farmchainx/farmchainx/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "secret123"

type testEnv struct {
	t      *testing.T
	db     database.Database
	jwt    *jsvc.Service
	mem    *cache.MemoryCache
	h      *Handler
	router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewSQLite(&config.DatabaseConfig{Type: "sqlite", DBName: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	jwtService, err := jsvc.NewService(jsvc.Config{SecretKey: "this-is-a-very-long-secret-key-for-testing", Duration: time.Hour})
	require.NoError(t, err)

	mem := cache.NewMemoryCache(zap.NewNop(), time.Hour)
	t.Cleanup(func() { _ = mem.Close() })

	m := metrics.New(config.MetricsConfig{Namespace: "test"})
	h := NewHandler(db, jwtService, cache.NewManager(mem, time.Minute, zap.NewNop()), m, zap.NewNop())

	r := gin.New()
	h.RegisterRoutes(r)
	r.NoRoute(h.NotFound)

	return &testEnv{t: t, db: db, jwt: jwtService, mem: mem, h: h, router: r}
}

// seedUser writes an approved account straight to storage and returns it
// with a valid token
func (e *testEnv) seedUser(email string, role database.Role) (*database.User, string) {
	e.t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(e.t, err)
	u := &database.User{Email: email, Password: string(hash), FullName: "User " + email, Role: role, Approved: true}
	require.NoError(e.t, e.db.CreateUser(context.Background(), u))
	tok, err := e.jwt.GenerateToken(u.ID, u.Email, string(u.Role))
	require.NoError(e.t, err)
	return u, tok
}

func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(e.t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

