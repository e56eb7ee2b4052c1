package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devan2636/astrodev-backend/models"
)

func TestGetSectionUnknownKey(t *testing.T) {
	db, _ := setupTestDB(t)
	router := setupTestRouter(t, db, nil)

	w := doJSON(t, router, http.MethodGet, "/content/sidebar", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSectionWithoutOverrideIsNotFound(t *testing.T) {
	db, _ := setupTestDB(t)
	router := setupTestRouter(t, db, nil)

	// No row means the client renders its built-in default
	w := doJSON(t, router, http.MethodGet, "/content/hero", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func putContent(t *testing.T, router http.Handler, token, section, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/admin/content/"+section, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUpsertSectionOverwritesSingleRow(t *testing.T) {
	db, gormDB := setupTestDB(t)
	router := setupTestRouter(t, db, nil)
	seedProfile(t, db, "admin@astrodev.dev", "hunter22", models.RoleAdmin)
	token := signInToken(t, router, "admin@astrodev.dev", "hunter22")

	w := putContent(t, router, token, "hero", `{"title":"Hello"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/content/hero", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	saved := decodeBody[models.SiteContent](t, w)
	require.Equal(t, "hero", saved.Section)
	require.JSONEq(t, `{"title":"Hello"}`, string(saved.Content))

	// A second save replaces the document without duplicating the row
	w = putContent(t, router, token, "hero", `{"title":"Updated","subtitle":"New"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var count int64
	require.NoError(t, gormDB.Model(&models.SiteContent{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	w = doJSON(t, router, http.MethodGet, "/content/hero", "", nil)
	saved = decodeBody[models.SiteContent](t, w)
	require.JSONEq(t, `{"title":"Updated","subtitle":"New"}`, string(saved.Content))
}

func TestUpsertSectionRejectsInvalidJSON(t *testing.T) {
	db, _ := setupTestDB(t)
	router := setupTestRouter(t, db, nil)
	seedProfile(t, db, "admin@astrodev.dev", "hunter22", models.RoleAdmin)
	token := signInToken(t, router, "admin@astrodev.dev", "hunter22")

	w := putContent(t, router, token, "about", `{"title":`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = putContent(t, router, token, "about", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = putContent(t, router, token, "sidebar", `{"title":"x"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
