package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/devan2636/astrodev-backend/models"
)

func TestProjectFindAllOrdersByDisplayOrder(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := db.ProjectRepo()

	second := models.Project{Title: "Second", Category: "API", DisplayOrder: 2}
	first := models.Project{Title: "First", Category: "IoT", DisplayOrder: 1}
	require.NoError(t, repo.Add(&second))
	require.NoError(t, repo.Add(&first))

	projects, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, projects, 2)
	require.Equal(t, "First", projects[0].Title)
	require.Equal(t, "Second", projects[1].Title)
}

func TestProjectTagReplaceSwapsTheWholeSet(t *testing.T) {
	db, gormDB := setupTestDB(t)

	project := models.Project{Title: "Telemetry Hub", Category: "IoT"}
	require.NoError(t, db.ProjectRepo().Add(&project))
	require.NoError(t, db.ProjectTagRepo().Replace(project.ID, []string{"Go", "MQTT"}))
	require.NoError(t, db.ProjectTagRepo().Replace(project.ID, []string{"Rust"}))

	loaded, err := db.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"Rust"}, loaded.TagValues())

	var count int64
	require.NoError(t, gormDB.Model(&models.ProjectTag{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestProjectDeleteRemovesTags(t *testing.T) {
	db, gormDB := setupTestDB(t)

	project := models.Project{Title: "Telemetry Hub", Category: "IoT"}
	require.NoError(t, db.ProjectRepo().Add(&project))
	require.NoError(t, db.ProjectTagRepo().Replace(project.ID, []string{"Go", "MQTT"}))

	require.NoError(t, db.ProjectRepo().Delete(project.ID))

	gone, err := db.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	require.Nil(t, gone)

	var count int64
	require.NoError(t, gormDB.Model(&models.ProjectTag{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestProjectFindByIDMissingReturnsNil(t *testing.T) {
	db, _ := setupTestDB(t)

	project, err := db.ProjectRepo().FindByID(uuid.New())
	require.NoError(t, err)
	require.Nil(t, project)
}
