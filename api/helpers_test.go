package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/devan2636/astrodev-backend/database"
	"github.com/devan2636/astrodev-backend/models"
)

const testSecret = "test-secret"

func setupTestDB(t *testing.T) (database.Database, *gorm.DB) {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := "file:" + name + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return database.New(db), db
}

func setupTestRouter(t *testing.T, db database.Database, storage ObjectStorage) *chi.Mux {
	t.Helper()
	return newRouter(db, storage, nil, withConfig(map[string]string{
		"SESSION_SECRET": testSecret,
	}))
}

func seedProfile(t *testing.T, db database.Database, email, password, role string) *models.Profile {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	profile := &models.Profile{Email: email, PasswordHash: string(hash), Role: role}
	require.NoError(t, db.ProfileRepo().Add(profile))
	return profile
}

func doJSON(t *testing.T, router http.Handler, method, target, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func signInToken(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/auth/sign-in", "", signInRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decodeBody[signInResponse](t, w)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
