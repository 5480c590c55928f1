package books

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lucasvieira/booklist/internal/entities"
)

// setupTestRepo creates a repository over a fresh, unseeded database
func setupTestRepo(t *testing.T) (*Repository, func()) {
	t.Helper()
	dbPath := "./test_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Book{}))

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		os.Remove(dbPath)
	}
	return NewRepository(db), cleanup
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestRepository_Create(t *testing.T) {
	t.Run("returns the persisted row with a generated id", func(t *testing.T) {
		repo, cleanup := setupTestRepo(t)
		defer cleanup()

		book, err := repo.Create("Grande Sertão: Veredas", "João Guimarães Rosa", 1956)
		require.NoError(t, err)
		require.NotNil(t, book)

		assert.NotEmpty(t, book.ID)
		assert.Equal(t, "Grande Sertão: Veredas", book.Title)
		assert.Equal(t, "João Guimarães Rosa", book.Author)
		assert.Equal(t, 1956, book.PublishedYear)
		assert.True(t, book.UpdatedAt.Equal(book.CreatedAt), "createdAt and updatedAt must match on insert")
	})

	t.Run("generates unique ids across creates", func(t *testing.T) {
		repo, cleanup := setupTestRepo(t)
		defer cleanup()

		seen := make(map[string]bool)
		for i := 0; i < 10; i++ {
			book, err := repo.Create("Title", "Author", 2000+i)
			require.NoError(t, err)
			assert.False(t, seen[book.ID], "id %s was reused", book.ID)
			seen[book.ID] = true
		}
	})

	t.Run("accepts a publishedYear of zero", func(t *testing.T) {
		repo, cleanup := setupTestRepo(t)
		defer cleanup()

		book, err := repo.Create("Ancient Scrolls", "Unknown", 0)
		require.NoError(t, err)
		assert.Equal(t, 0, book.PublishedYear)
	})
}

func TestRepository_GetByID(t *testing.T) {
	t.Run("round-trips a created book", func(t *testing.T) {
		repo, cleanup := setupTestRepo(t)
		defer cleanup()

		created, err := repo.Create("Vidas Secas", "Graciliano Ramos", 1938)
		require.NoError(t, err)

		fetched, err := repo.GetByID(created.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, *created, *fetched)
	})

	t.Run("returns nil without error for an unknown id", func(t *testing.T) {
		repo, cleanup := setupTestRepo(t)
		defer cleanup()

		book, err := repo.GetByID("does-not-exist")
		assert.NoError(t, err)
		assert.Nil(t, book)
	})
}

func TestRepository_List(t *testing.T) {
	t.Run("returns all books most recently created first", func(t *testing.T) {
		repo, cleanup := setupTestRepo(t)
		defer cleanup()

		first, err := repo.Create("First", "Author", 2001)
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
		second, err := repo.Create("Second", "Author", 2002)
		require.NoError(t, err)

		listed, err := repo.List("")
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, second.ID, listed[0].ID)
		assert.Equal(t, first.ID, listed[1].ID)
	})

	t.Run("filters by case-insensitive title substring", func(t *testing.T) {
		repo, cleanup := setupTestRepo(t)
		defer cleanup()

		_, err := repo.Create("O Senhor dos Anéis", "J.R.R. Tolkien", 1954)
		require.NoError(t, err)
		_, err = repo.Create("1984", "George Orwell", 1949)
		require.NoError(t, err)

		for _, filter := range []string{"senhor", "SENHOR", "SeNhOr dOs"} {
			listed, err := repo.List(filter)
			require.NoError(t, err)
			require.Len(t, listed, 1, "filter %q", filter)
			assert.Equal(t, "O Senhor dos Anéis", listed[0].Title)
		}

		listed, err := repo.List("198")
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, "1984", listed[0].Title)
	})

	t.Run("returns an empty slice when nothing matches", func(t *testing.T) {
		repo, cleanup := setupTestRepo(t)
		defer cleanup()

		_, err := repo.Create("1984", "George Orwell", 1949)
		require.NoError(t, err)

		listed, err := repo.List("no such title")
		require.NoError(t, err)
		assert.NotNil(t, listed)
		assert.Empty(t, listed)
	})
}

func TestRepository_Update(t *testing.T) {
	t.Run("partial patch changes only the supplied field and updatedAt", func(t *testing.T) {
		repo, cleanup := setupTestRepo(t)
		defer cleanup()

		created, err := repo.Create("Memórias Póstumas", "Machado", 1881)
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		updated, err := repo.Update(created.ID, Patch{Author: strPtr("Machado de Assis")})
		require.NoError(t, err)
		require.NotNil(t, updated)

		assert.Equal(t, "Machado de Assis", updated.Author)
		assert.Equal(t, created.Title, updated.Title)
		assert.Equal(t, created.PublishedYear, updated.PublishedYear)
		assert.True(t, updated.CreatedAt.Equal(created.CreatedAt), "createdAt must never change")
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt), "updatedAt must be refreshed")
	})

	t.Run("full patch replaces every business field", func(t *testing.T) {
		repo, cleanup := setupTestRepo(t)
		defer cleanup()

		created, err := repo.Create("Draft", "Anonymous", 2020)
		require.NoError(t, err)

		updated, err := repo.Update(created.ID, Patch{
			Title:         strPtr("Final"),
			Author:        strPtr("Someone"),
			PublishedYear: intPtr(2021),
		})
		require.NoError(t, err)
		require.NotNil(t, updated)

		assert.Equal(t, "Final", updated.Title)
		assert.Equal(t, "Someone", updated.Author)
		assert.Equal(t, 2021, updated.PublishedYear)
		assert.Equal(t, created.ID, updated.ID)
	})

	t.Run("returns nil without mutating anything for an unknown id", func(t *testing.T) {
		repo, cleanup := setupTestRepo(t)
		defer cleanup()

		created, err := repo.Create("Untouched", "Author", 1999)
		require.NoError(t, err)

		updated, err := repo.Update("does-not-exist", Patch{Title: strPtr("Changed")})
		assert.NoError(t, err)
		assert.Nil(t, updated)

		after, err := repo.GetByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Untouched", after.Title)
	})
}

func TestRepository_Delete(t *testing.T) {
	t.Run("removes an existing book", func(t *testing.T) {
		repo, cleanup := setupTestRepo(t)
		defer cleanup()

		created, err := repo.Create("Ephemeral", "Author", 2010)
		require.NoError(t, err)

		deleted, err := repo.Delete(created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		gone, err := repo.GetByID(created.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("returns false without error for an unknown id", func(t *testing.T) {
		repo, cleanup := setupTestRepo(t)
		defer cleanup()

		deleted, err := repo.Delete("does-not-exist")
		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestRepository_Count(t *testing.T) {
	t.Run("tracks the number of rows", func(t *testing.T) {
		repo, cleanup := setupTestRepo(t)
		defer cleanup()

		count, err := repo.Count()
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)

		_, err = repo.Create("One", "Author", 2001)
		require.NoError(t, err)
		_, err = repo.Create("Two", "Author", 2002)
		require.NoError(t, err)

		count, err = repo.Count()
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestPatch_IsEmpty(t *testing.T) {
	assert.True(t, Patch{}.IsEmpty())
	assert.False(t, Patch{Title: strPtr("x")}.IsEmpty())
	assert.False(t, Patch{Author: strPtr("x")}.IsEmpty())
	assert.False(t, Patch{PublishedYear: intPtr(0)}.IsEmpty())
}
