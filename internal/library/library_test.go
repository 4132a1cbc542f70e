// file: internal/library/library_test.go
// version: 1.0.0
// guid: 47aa2c67-9633-4037-86e8-c8c5bf7c73f0

package library

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jdfalk/book-library/internal/fileops"
	"github.com/jdfalk/book-library/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	book1    = models.NewBook("Book 1", "Author 1", 2020)
	book2    = models.NewBook("Book 2", "Author 2", 2021)
	journal1 = models.NewBook("Journal 1", "Author 1", 2022)
)

func sampleLibrary(opts ...Option) *Library {
	lib := New(opts...)
	lib.Add(book1)
	lib.Add(book2)
	lib.Add(journal1)
	return lib
}

func TestNew_Defaults(t *testing.T) {
	lib := New()

	assert.Equal(t, FormatText, lib.Format())
	assert.Equal(t, 0, lib.Len())
	assert.Empty(t, lib.Books())
}

func TestLibrary_AddPreservesInsertionOrder(t *testing.T) {
	lib := sampleLibrary()

	assert.Equal(t, []models.Book{book1, book2, journal1}, lib.Books())
	assert.Equal(t, 3, lib.Len())
}

func TestLibrary_AddAllowsDuplicates(t *testing.T) {
	lib := New()
	lib.Add(book1)
	lib.Add(book1)

	assert.Equal(t, []models.Book{book1, book1}, lib.Books())
}

func TestLibrary_BooksReturnsCopy(t *testing.T) {
	lib := sampleLibrary()

	books := lib.Books()
	books[0] = models.NewBook("Changed", "Someone", 1)

	assert.Equal(t, book1, lib.Books()[0])
}

func TestLibrary_Remove(t *testing.T) {
	t.Run("removes matching book", func(t *testing.T) {
		lib := sampleLibrary()
		lib.Remove(book1)
		assert.Equal(t, []models.Book{book2, journal1}, lib.Books())
	})

	t.Run("absent book is a no-op", func(t *testing.T) {
		lib := sampleLibrary()
		lib.Remove(models.NewBook("Missing", "Nobody", 1999))
		assert.Equal(t, []models.Book{book1, book2, journal1}, lib.Books())
	})

	t.Run("only first duplicate removed", func(t *testing.T) {
		lib := New()
		lib.Add(book1)
		lib.Add(book2)
		lib.Add(book1)
		lib.Remove(book1)
		assert.Equal(t, []models.Book{book2, book1}, lib.Books())
	})

	t.Run("matches on every field", func(t *testing.T) {
		lib := sampleLibrary()
		lib.Remove(models.NewBook("Book 1", "Author 1", 2019))
		assert.Equal(t, 3, lib.Len())
	})

	t.Run("empty library", func(t *testing.T) {
		lib := New()
		lib.Remove(book1)
		assert.Equal(t, 0, lib.Len())
	})
}

func TestLibrary_AddThenRemoveRestoresState(t *testing.T) {
	lib := sampleLibrary()
	before := lib.Books()

	extra := models.NewBook("Dune", "Frank Herbert", 1965)
	lib.Add(extra)
	lib.Remove(extra)

	assert.Equal(t, before, lib.Books())
}

func TestLibrary_Contains(t *testing.T) {
	lib := sampleLibrary()

	assert.True(t, lib.Contains(book2))
	assert.False(t, lib.Contains(models.NewBook("Book 2", "Author 2", 2020)))
}

func TestLibrary_List(t *testing.T) {
	lib := sampleLibrary()
	var buf bytes.Buffer

	require.NoError(t, lib.List(&buf))

	expected := "Book 1 (2020) by Author 1\n" +
		"Book 2 (2021) by Author 2\n" +
		"Journal 1 (2022) by Author 1\n"
	assert.Equal(t, expected, buf.String())
}

func TestLibrary_ListEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().List(&buf))
	assert.Empty(t, buf.String())
}

func TestLibrary_FindByAuthor(t *testing.T) {
	lib := sampleLibrary()

	tests := []struct {
		name   string
		author string
		want   []models.Book
	}{
		{"two matches in order", "Author 1", []models.Book{book1, journal1}},
		{"single match", "Author 2", []models.Book{book2}},
		{"case sensitive", "author 1", nil},
		{"no partial match", "Author", nil},
		{"unknown author", "Author 3", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lib.FindByAuthor(tt.author))
		})
	}
}

func TestLibrary_SaveWritesTextFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.txt")
	lib := sampleLibrary()

	require.NoError(t, lib.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Book 1,Author 1,2020\nBook 2,Author 2,2021\nJournal 1,Author 1,2022\n", string(data))
}

func TestLibrary_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.txt")
	require.NoError(t, os.WriteFile(path, []byte("Old,Entry,1900\nOlder,Entry,1800\n"), 0644))

	lib := New()
	lib.Add(book2)
	require.NoError(t, lib.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Book 2,Author 2,2021\n", string(data))
}

func TestLibrary_SaveUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "library.txt")

	err := sampleLibrary().Save(path)
	assert.Error(t, err)
}

func TestLibrary_SaveWithBackups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "library.txt")
	lib := sampleLibrary(WithBackups(fileops.BackupConfig{Dir: "backups", MaxBackups: 2}))

	require.NoError(t, lib.Save(path))
	require.NoError(t, lib.Save(path))

	backups, err := fileops.ListBackups(filepath.Join(dir, "backups"), "library.txt")
	require.NoError(t, err)
	require.Len(t, backups, 1, "first save has nothing to back up")

	data, err := os.ReadFile(backups[0])
	require.NoError(t, err)
	assert.Equal(t, "Book 1,Author 1,2020\nBook 2,Author 2,2021\nJournal 1,Author 1,2022\n", string(data))
}

func TestLibrary_SaveThenLoadRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatText, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "library")
			require.NoError(t, sampleLibrary(WithFormat(format)).Save(path))

			fresh := New(WithFormat(format))
			require.NoError(t, fresh.Load(path))

			assert.Equal(t, []models.Book{book1, book2, journal1}, fresh.Books())
		})
	}
}

func TestLibrary_SaveThenLoadLongRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.txt")
	long := models.NewBook(strings.Repeat("x", 2<<20), "Author 1", 2020)

	lib := New()
	lib.Add(long)
	lib.Add(book2)
	require.NoError(t, lib.Save(path))

	fresh := New()
	require.NoError(t, fresh.Load(path))
	assert.Equal(t, []models.Book{long, book2}, fresh.Books())
}

func TestLibrary_SaveThroughSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.txt")
	link := filepath.Join(dir, "library.txt")
	require.NoError(t, os.WriteFile(target, []byte("Old,Entry,1900\n"), 0600))
	require.NoError(t, os.Symlink(target, link))

	require.NoError(t, sampleLibrary().Save(link))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "Book 1,Author 1,2020\nBook 2,Author 2,2021\nJournal 1,Author 1,2022\n", string(data))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.True(t, info.Mode()&os.ModeSymlink != 0, "link should still be a symlink")

	info, err = os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLibrary_LoadAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.txt")
	require.NoError(t, sampleLibrary().Save(path))

	lib := sampleLibrary()
	lib.Remove(book1)
	require.NoError(t, lib.Load(path))

	assert.Equal(t, []models.Book{book2, journal1, book1, book2, journal1}, lib.Books())
}

func TestLibrary_LoadMissingFile(t *testing.T) {
	lib := New()

	err := lib.Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLibrary_LoadErrorsLeaveLibraryUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"too few fields", "Book 1,Author 1,2020\nBook 2,2021\n", ErrMalformedLine},
		{"too many fields", "Book, Vol 1,Author 1,2020\n", ErrMalformedLine},
		{"blank line", "Book 1,Author 1,2020\n\nBook 2,Author 2,2021\n", ErrMalformedLine},
		{"non-numeric year", "Book 1,Author 1,twenty\n", ErrInvalidYear},
		{"empty year", "Book 1,Author 1,\n", ErrInvalidYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "library.txt")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			lib := New()
			lib.Add(book2)

			err := lib.Load(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, []models.Book{book2}, lib.Books())
		})
	}
}

func TestLibrary_CommaInTitleDoesNotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.txt")
	lib := New()
	lib.Add(models.NewBook("Hello, World", "Author 1", 2020))
	require.NoError(t, lib.Save(path))

	err := New().Load(path)
	assert.ErrorIs(t, err, ErrMalformedLine)
}
