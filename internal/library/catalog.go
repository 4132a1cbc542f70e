// file: internal/library/catalog.go
// version: 1.0.0
// guid: 63a9b493-eb9f-4f91-a7c0-ba1f151995d3

package library

import (
	"fmt"
	"io"

	"github.com/jdfalk/book-library/internal/models"
)

// Catalog is the set of operations every library variant supports. Wrappers
// such as NotifyingLibrary and InstrumentedLibrary implement it by delegating
// to another Catalog.
type Catalog interface {
	// Add appends book to the end of the collection
	Add(book models.Book)
	// Remove drops the first entry equal to book, if any
	Remove(book models.Book)
	// Contains reports whether an entry equal to book is present
	Contains(book models.Book) bool
	// Books returns a copy of the collection in insertion order
	Books() []models.Book
	// List writes one rendered book per line to w in insertion order
	List(w io.Writer) error
	// FindByAuthor returns the books whose author equals author exactly
	FindByAuthor(author string) []models.Book
	// Save overwrites path with the whole collection
	Save(path string) error
	// Load appends every record in path to the collection
	Load(path string) error
}

// PrintBooks writes the rendering of each book on its own line.
func PrintBooks(w io.Writer, books []models.Book) error {
	for _, book := range books {
		if _, err := fmt.Fprintln(w, book); err != nil {
			return err
		}
	}
	return nil
}
