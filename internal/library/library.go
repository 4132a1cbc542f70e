// file: internal/library/library.go
// version: 1.0.0
// guid: 903030f6-4f78-4d85-a8fc-0c8a79682502

package library

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jdfalk/book-library/internal/fileops"
	"github.com/jdfalk/book-library/internal/models"
)

// Library is an ordered, in-memory collection of books. Duplicates are allowed.
// It is not safe for concurrent use.
type Library struct {
	books   []models.Book
	format  Format
	backups fileops.BackupConfig
}

// Option configures a Library
type Option func(*Library)

// WithFormat sets the file format used by Save and Load
func WithFormat(format Format) Option {
	return func(l *Library) {
		l.format = format
	}
}

// WithBackups copies the previous file aside before every Save
func WithBackups(config fileops.BackupConfig) Option {
	return func(l *Library) {
		l.backups = config
	}
}

// New creates an empty library that persists in the text format by default
func New(opts ...Option) *Library {
	l := &Library{
		format:  FormatText,
		backups: fileops.DefaultBackupConfig(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Format returns the file format used by Save and Load
func (l *Library) Format() Format {
	return l.format
}

// Add appends book. It always succeeds.
func (l *Library) Add(book models.Book) {
	l.books = append(l.books, book)
}

// Remove drops the first entry equal to book. Removing an absent book is a no-op.
func (l *Library) Remove(book models.Book) {
	if i := l.indexOf(book); i >= 0 {
		l.books = append(l.books[:i], l.books[i+1:]...)
	}
}

// Contains reports whether an entry equal to book is present
func (l *Library) Contains(book models.Book) bool {
	return l.indexOf(book) >= 0
}

// Len returns the number of books
func (l *Library) Len() int {
	return len(l.books)
}

// Books returns a copy of the collection in insertion order
func (l *Library) Books() []models.Book {
	out := make([]models.Book, len(l.books))
	copy(out, l.books)
	return out
}

// List writes every book to w, one per line, in insertion order
func (l *Library) List(w io.Writer) error {
	return PrintBooks(w, l.books)
}

// FindByAuthor returns the books whose author equals author (case-sensitive)
func (l *Library) FindByAuthor(author string) []models.Book {
	var out []models.Book
	for _, book := range l.books {
		if book.Author == author {
			out = append(out, book)
		}
	}
	return out
}

// Save overwrites path with every book in the configured format
func (l *Library) Save(path string) error {
	var buf bytes.Buffer
	if err := Encode(&buf, l.format, l.books); err != nil {
		return err
	}

	if backup, err := fileops.BackupFile(path, l.backups); err != nil {
		return fmt.Errorf("failed to save library: %w", err)
	} else if backup != "" {
		log.Printf("[INFO] Backed up %s to %s", path, backup)
	}

	if err := fileops.WriteFileAtomic(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to save library: %w", err)
	}

	log.Printf("[INFO] Saved %d books to %s (%s)", len(l.books), path, l.format)
	return nil
}

// Load reads path and appends its records. Nothing is appended if any record
// fails to parse.
func (l *Library) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to load library: %w", err)
	}
	defer f.Close()

	books, err := Decode(f, l.format)
	if err != nil {
		return fmt.Errorf("failed to load library %s: %w", path, err)
	}

	l.books = append(l.books, books...)
	log.Printf("[INFO] Loaded %d books from %s (%s)", len(books), path, l.format)
	return nil
}

func (l *Library) indexOf(book models.Book) int {
	for i, b := range l.books {
		if b == book {
			return i
		}
	}
	return -1
}
