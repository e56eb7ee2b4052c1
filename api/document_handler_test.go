package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devan2636/astrodev-backend/models"
)

// fakeObjectStorage records uploads and deletes in memory
type fakeObjectStorage struct {
	objects map[string][]byte
	deleted []string
}

func newFakeObjectStorage() *fakeObjectStorage {
	return &fakeObjectStorage{objects: map[string][]byte{}}
}

func (f *fakeObjectStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.objects[key] = data
	return nil
}

func (f *fakeObjectStorage) Delete(ctx context.Context, key string) error {
	delete(f.objects, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeObjectStorage) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

func uploadFile(t *testing.T, router http.Handler, token, title, fileName, content string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if title != "" {
		require.NoError(t, form.WriteField("title", title))
	}
	part, err := form.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/documents", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUploadDocumentStoresObjectAndRow(t *testing.T) {
	db, _ := setupTestDB(t)
	storage := newFakeObjectStorage()
	router := setupTestRouter(t, db, storage)
	seedProfile(t, db, "admin@astrodev.dev", "hunter22", models.RoleAdmin)
	token := signInToken(t, router, "admin@astrodev.dev", "hunter22")

	w := uploadFile(t, router, token, "Datasheet", "guide.pdf", "pdf-bytes")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decodeBody[models.StoredDocument](t, w)
	require.Equal(t, "Datasheet", created.Title)
	require.Equal(t, "guide.pdf", created.FileName)
	require.EqualValues(t, len("pdf-bytes"), created.FileSize)
	require.Equal(t, []byte("pdf-bytes"), storage.objects[created.FilePath])

	// Title falls back to the file name when omitted
	w = uploadFile(t, router, token, "", "notes.txt", "text")
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "notes.txt", decodeBody[models.StoredDocument](t, w).Title)
}

func TestDownloadDocumentCountsEveryHit(t *testing.T) {
	db, _ := setupTestDB(t)
	storage := newFakeObjectStorage()
	router := setupTestRouter(t, db, storage)

	document := &models.StoredDocument{Title: "Datasheet", FilePath: "documents/x/guide.pdf", FileName: "guide.pdf"}
	require.NoError(t, db.StoredDocumentRepo().Add(document))

	for want := int64(1); want <= 3; want++ {
		w := doJSON(t, router, http.MethodPost, "/documents/"+document.ID.String()+"/download", "", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := decodeBody[struct {
			URL           string `json:"url"`
			FileName      string `json:"file_name"`
			DownloadCount int64  `json:"download_count"`
		}](t, w)
		require.Equal(t, "https://cdn.test/documents/x/guide.pdf", resp.URL)
		require.Equal(t, want, resp.DownloadCount)
	}

	stored, err := db.StoredDocumentRepo().FindByID(document.ID)
	require.NoError(t, err)
	require.EqualValues(t, 3, stored.DownloadCount)
}

func TestDocumentEndpointsWithoutStorage(t *testing.T) {
	db, _ := setupTestDB(t)
	router := setupTestRouter(t, db, nil)
	seedProfile(t, db, "admin@astrodev.dev", "hunter22", models.RoleAdmin)
	token := signInToken(t, router, "admin@astrodev.dev", "hunter22")

	document := &models.StoredDocument{Title: "Datasheet", FilePath: "documents/x/guide.pdf", FileName: "guide.pdf"}
	require.NoError(t, db.StoredDocumentRepo().Add(document))

	w := doJSON(t, router, http.MethodPost, "/documents/"+document.ID.String()+"/download", "", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = uploadFile(t, router, token, "Datasheet", "guide.pdf", "pdf-bytes")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	// Listing still works: metadata needs no object store
	w = doJSON(t, router, http.MethodGet, "/documents", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Datasheet")
}

func TestDeleteDocumentRemovesObjectAndRow(t *testing.T) {
	db, _ := setupTestDB(t)
	storage := newFakeObjectStorage()
	router := setupTestRouter(t, db, storage)
	seedProfile(t, db, "admin@astrodev.dev", "hunter22", models.RoleAdmin)
	token := signInToken(t, router, "admin@astrodev.dev", "hunter22")

	w := uploadFile(t, router, token, "Datasheet", "guide.pdf", "pdf-bytes")
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody[models.StoredDocument](t, w)

	w = doJSON(t, router, http.MethodDelete, "/admin/documents/"+created.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NotContains(t, storage.objects, created.FilePath)
	require.Contains(t, storage.deleted, created.FilePath)

	stored, err := db.StoredDocumentRepo().FindByID(created.ID)
	require.NoError(t, err)
	require.Nil(t, stored)

	w = doJSON(t, router, http.MethodDelete, "/admin/documents/"+created.ID.String(), token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
