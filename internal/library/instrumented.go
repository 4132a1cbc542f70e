// file: internal/library/instrumented.go
// version: 1.0.0
// guid: ed7c5802-653b-403c-b6f8-65a606858b2f

package library

import (
	"time"

	"github.com/jdfalk/book-library/internal/metrics"
	"github.com/jdfalk/book-library/internal/models"
)

// InstrumentedLibrary records Prometheus metrics for the operations that
// change or persist the wrapped Catalog.
type InstrumentedLibrary struct {
	Catalog
}

// NewInstrumented wraps inner
func NewInstrumented(inner Catalog) *InstrumentedLibrary {
	return &InstrumentedLibrary{Catalog: inner}
}

// Add delegates and counts the added book.
func (i *InstrumentedLibrary) Add(book models.Book) {
	i.Catalog.Add(book)
	metrics.IncBooksAdded()
	i.updateSize()
}

// Remove delegates and counts a removal or a miss.
func (i *InstrumentedLibrary) Remove(book models.Book) {
	present := i.Catalog.Contains(book)
	i.Catalog.Remove(book)
	if present {
		metrics.IncBooksRemoved()
	} else {
		metrics.IncRemoveMisses()
	}
	i.updateSize()
}

// Save delegates and records the outcome and duration.
func (i *InstrumentedLibrary) Save(path string) error {
	start := time.Now()
	err := i.Catalog.Save(path)
	metrics.ObserveFileOperation(metrics.OpSave, time.Since(start), err)
	return err
}

// Load delegates and records the outcome and duration.
func (i *InstrumentedLibrary) Load(path string) error {
	start := time.Now()
	err := i.Catalog.Load(path)
	metrics.ObserveFileOperation(metrics.OpLoad, time.Since(start), err)
	i.updateSize()
	return err
}

func (i *InstrumentedLibrary) updateSize() {
	metrics.SetBooks(len(i.Catalog.Books()))
}
