// file: internal/library/notifying.go
// version: 1.0.0
// guid: 315be504-8a7c-4006-b45b-d35df6bff309

package library

import (
	"fmt"
	"io"
	"os"

	"github.com/jdfalk/book-library/internal/models"
)

// Notices written by NotifyingLibrary
const (
	NoticeAdded    = "Book added successfully"
	NoticeRemoved  = "Book removed successfully"
	NoticeNotFound = "Book not found in the library"
)

// NotifyingLibrary wraps a Catalog, announcing adds and guarding removes.
// Every other operation is delegated unchanged.
type NotifyingLibrary struct {
	Catalog
	out io.Writer
}

// NotifyingOption configures a NotifyingLibrary
type NotifyingOption func(*NotifyingLibrary)

// WithNotices sets where notices are written (stdout by default)
func WithNotices(w io.Writer) NotifyingOption {
	return func(n *NotifyingLibrary) {
		n.out = w
	}
}

// NewNotifying wraps inner
func NewNotifying(inner Catalog, opts ...NotifyingOption) *NotifyingLibrary {
	n := &NotifyingLibrary{
		Catalog: inner,
		out:     os.Stdout,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Add announces the book, adds it, then confirms.
func (n *NotifyingLibrary) Add(book models.Book) {
	n.notify("Adding book: %s", book)
	n.Catalog.Add(book)
	n.notify(NoticeAdded)
}

// Remove only delegates when the book is present; otherwise it reports the
// miss and leaves the collection untouched.
func (n *NotifyingLibrary) Remove(book models.Book) {
	if !n.Catalog.Contains(book) {
		n.notify(NoticeNotFound)
		return
	}
	n.Catalog.Remove(book)
	n.notify(NoticeRemoved)
}

func (n *NotifyingLibrary) notify(format string, args ...any) {
	_, _ = fmt.Fprintf(n.out, format+"\n", args...)
}
