// SPDX-License-Identifier: MIT
package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatcatcamp/lpsite/internal/locale"
	"github.com/thatcatcamp/lpsite/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := testDB.AutoMigrate(&models.CopyDocument{}); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	return testDB
}

func TestImportThenLoadFromDatabase(t *testing.T) {
	testDB := setupTestDB(t)

	docs, err := EmbeddedSource().Load()
	require.NoError(t, err)

	n, err := Import(testDB, docs)
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	repo, err := NewRepository(DBSource{DB: testDB}, nil)
	require.NoError(t, err)

	want, _ := embeddedRepo(t).LoadPageCopy(locale.German, PageExample)
	got, ok := repo.LoadPageCopy(locale.German, PageExample)
	require.True(t, ok)
	assert.Equal(t, want, got)

	legal, ok := repo.LoadLegalPageCopy(locale.English, LegalImpressum)
	require.True(t, ok)
	assert.Equal(t, "Imprint", legal.Title)
}

func TestImportReplacesExistingRows(t *testing.T) {
	testDB := setupTestDB(t)

	docs := NewDocuments()
	docs.AddPage(locale.English, PageExample, minimalPage("First"))
	_, err := Import(testDB, docs)
	require.NoError(t, err)

	docs.AddPage(locale.English, PageExample, minimalPage("Second"))
	_, err = Import(testDB, docs)
	require.NoError(t, err)

	var count int64
	testDB.Model(&models.CopyDocument{}).Count(&count)
	assert.Equal(t, int64(1), count)

	repo, err := NewRepository(DBSource{DB: testDB}, nil)
	require.NoError(t, err)
	page, _ := repo.LoadPageCopy(locale.English, PageExample)
	assert.Equal(t, "Second", page.Hero.Title)
}

func TestDBSourceRejectsUnknownKind(t *testing.T) {
	testDB := setupTestDB(t)
	require.NoError(t, testDB.Create(&models.CopyDocument{
		Locale: "en", Kind: "sidebar", PageID: PageExample, Body: "{}",
	}).Error)

	_, err := DBSource{DB: testDB}.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sidebar")
}

func TestDBSourceRequiresDatabase(t *testing.T) {
	_, err := DBSource{}.Load()
	assert.Error(t, err)
}
