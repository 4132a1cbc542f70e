// file: internal/library/notifying_test.go
// version: 1.0.0
// guid: 8109923e-be06-407c-b8aa-9ae2fed20fda

package library_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jdfalk/book-library/internal/library"
	"github.com/jdfalk/book-library/internal/library/mocks"
	"github.com/jdfalk/book-library/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dune = models.NewBook("Dune", "Frank Herbert", 1965)

func TestNotifyingLibrary_AddAnnouncesAndDelegates(t *testing.T) {
	inner := mocks.NewMockCatalog(t)
	inner.On("Add", dune).Once()

	var out bytes.Buffer
	lib := library.NewNotifying(inner, library.WithNotices(&out))
	lib.Add(dune)

	assert.Equal(t, "Adding book: Dune (1965) by Frank Herbert\nBook added successfully\n", out.String())
}

func TestNotifyingLibrary_RemovePresent(t *testing.T) {
	inner := mocks.NewMockCatalog(t)
	inner.On("Contains", dune).Return(true).Once()
	inner.On("Remove", dune).Once()

	var out bytes.Buffer
	library.NewNotifying(inner, library.WithNotices(&out)).Remove(dune)

	assert.Equal(t, library.NoticeRemoved+"\n", out.String())
}

func TestNotifyingLibrary_RemoveAbsentSkipsDelegate(t *testing.T) {
	inner := mocks.NewMockCatalog(t)
	inner.On("Contains", dune).Return(false).Once()

	var out bytes.Buffer
	library.NewNotifying(inner, library.WithNotices(&out)).Remove(dune)

	assert.Equal(t, library.NoticeNotFound+"\n", out.String())
	inner.AssertNotCalled(t, "Remove", dune)
}

func TestNotifyingLibrary_DelegatesOtherOperations(t *testing.T) {
	inner := mocks.NewMockCatalog(t)
	saveErr := errors.New("disk full")
	inner.On("FindByAuthor", "Frank Herbert").Return([]models.Book{dune}).Once()
	inner.On("Books").Return([]models.Book{dune}).Once()
	inner.On("Save", "library.txt").Return(saveErr).Once()
	inner.On("Load", "library.txt").Return(nil).Once()

	var out bytes.Buffer
	lib := library.NewNotifying(inner, library.WithNotices(&out))

	assert.Equal(t, []models.Book{dune}, lib.FindByAuthor("Frank Herbert"))
	assert.Equal(t, []models.Book{dune}, lib.Books())
	assert.ErrorIs(t, lib.Save("library.txt"), saveErr)
	assert.NoError(t, lib.Load("library.txt"))
	assert.Empty(t, out.String(), "only add and remove emit notices")
}

func TestNotifyingLibrary_OverRealLibrary(t *testing.T) {
	var out bytes.Buffer
	base := library.New()
	lib := library.NewNotifying(base, library.WithNotices(&out))

	lib.Add(dune)
	lib.Remove(models.NewBook("Missing", "Nobody", 2000))
	lib.Remove(dune)

	assert.Equal(t, 0, base.Len())
	expected := "Adding book: Dune (1965) by Frank Herbert\n" +
		"Book added successfully\n" +
		"Book not found in the library\n" +
		"Book removed successfully\n"
	assert.Equal(t, expected, out.String())

	var list bytes.Buffer
	require.NoError(t, lib.List(&list))
	assert.Empty(t, list.String())
}

func TestNotifyingLibrary_ImplementsCatalog(t *testing.T) {
	var _ library.Catalog = library.NewNotifying(library.New())
	var _ library.Catalog = library.NewInstrumented(library.New())
	var _ library.Catalog = library.New()
}
