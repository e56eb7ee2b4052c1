package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devan2636/astrodev-backend/models"
)

func TestIncrementDownloadCount(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := db.StoredDocumentRepo()

	document := models.StoredDocument{Title: "Datasheet", FilePath: "documents/x/guide.pdf", FileName: "guide.pdf"}
	require.NoError(t, repo.Add(&document))

	require.NoError(t, repo.IncrementDownloadCount(document.ID))
	require.NoError(t, repo.IncrementDownloadCount(document.ID))

	stored, err := repo.FindByID(document.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, stored.DownloadCount)
}
