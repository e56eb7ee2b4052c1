package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/devan2636/astrodev-backend/models"
)

func TestGetAllProjectsFallsBackWhenTableEmpty(t *testing.T) {
	db, _ := setupTestDB(t)
	router := setupTestRouter(t, db, nil)

	w := doJSON(t, router, http.MethodGet, "/projects", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	collection := decodeBody[ProjectCollection](t, w)
	require.True(t, collection.Fallback)
	require.Equal(t, 4, collection.Total)
	require.Len(t, collection.Projects, 4)
	require.Equal(t, "AstrodevIoT Platform", collection.Projects[0].Title)
	require.Contains(t, collection.Projects[0].Tags, "ESP32")
}

func TestGetCategoriesFromFallbackCatalog(t *testing.T) {
	db, _ := setupTestDB(t)
	router := setupTestRouter(t, db, nil)

	w := doJSON(t, router, http.MethodGet, "/projects/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	facet := decodeBody[CategoryCollection](t, w)
	require.Equal(t, []string{"All", "IoT", "Web App", "API"}, facet.Categories)
}

func TestGetProjectResolvesFallbackIDs(t *testing.T) {
	db, _ := setupTestDB(t)
	router := setupTestRouter(t, db, nil)

	fallbackID := models.FallbackProjects()[0].ID.String()
	w := doJSON(t, router, http.MethodGet, "/projects/"+fallbackID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	view := decodeBody[ProjectView](t, w)
	require.Equal(t, "AstrodevIoT Platform", view.Title)

	w = doJSON(t, router, http.MethodGet, "/projects/"+uuid.New().String(), "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/projects/not-a-uuid", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectLifecycle(t *testing.T) {
	db, _ := setupTestDB(t)
	router := setupTestRouter(t, db, nil)
	seedProfile(t, db, "admin@astrodev.dev", "hunter22", models.RoleAdmin)
	token := signInToken(t, router, "admin@astrodev.dev", "hunter22")

	// Missing title is rejected
	w := doJSON(t, router, http.MethodPost, "/admin/projects", token, projectRequest{Description: "no title"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Tags arrive messy: comma-joined and padded
	w = doJSON(t, router, http.MethodPost, "/admin/projects", token, projectRequest{
		Title:        "Telemetry Hub",
		Description:  "Sensor ingestion service",
		Category:     "IoT",
		Tags:         []string{"Go, chi", " gorm "},
		DisplayOrder: 1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeBody[ProjectView](t, w)
	require.Equal(t, []string{"Go", "chi", "gorm"}, created.Tags)

	// A populated table means no fallback
	w = doJSON(t, router, http.MethodGet, "/projects", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	collection := decodeBody[ProjectCollection](t, w)
	require.False(t, collection.Fallback)
	require.Equal(t, 1, collection.Total)

	// Update replaces the tag set wholesale
	w = doJSON(t, router, http.MethodPut, "/admin/projects/"+created.ID.String(), token, projectRequest{
		Title:    "Telemetry Hub",
		Category: "IoT",
		Tags:     []string{"MQTT"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decodeBody[ProjectView](t, w)
	require.Equal(t, []string{"MQTT"}, updated.Tags)

	w = doJSON(t, router, http.MethodDelete, "/admin/projects/"+created.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Back to the fallback catalog
	w = doJSON(t, router, http.MethodGet, "/projects", "", nil)
	collection = decodeBody[ProjectCollection](t, w)
	require.True(t, collection.Fallback)

	w = doJSON(t, router, http.MethodDelete, "/admin/projects/"+created.ID.String(), token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestNormalizeTags(t *testing.T) {
	require.Equal(t, []string{"Go", "chi", "gorm"}, normalizeTags([]string{"Go, chi", " gorm "}))
	require.Nil(t, normalizeTags([]string{" ", ","}))
	require.Nil(t, normalizeTags(nil))
}
