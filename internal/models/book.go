// file: internal/models/book.go
// version: 1.0.0
// guid: 206a5888-524f-4442-922e-1f501bc50222

package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidBook is returned by Validate when a field fails its presence or range check.
var ErrInvalidBook = errors.New("invalid book")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Book is a single library record. Two books are the same book when every
// field is equal; there is no identity beyond the values themselves.
type Book struct {
	Title  string `json:"title" yaml:"title" validate:"required"`
	Author string `json:"author" yaml:"author" validate:"required"`
	Year   int    `json:"year" yaml:"year" validate:"gte=0,lte=9999"`
}

// NewBook builds a Book from its three fields. It performs no validation.
func NewBook(title, author string, year int) Book {
	return Book{Title: title, Author: author, Year: year}
}

// String renders the book as "{title} ({year}) by {author}".
func (b Book) String() string {
	return fmt.Sprintf("%s (%d) by %s", b.Title, b.Year, b.Author)
}

// Validate reports empty titles or authors and years outside 0-9999.
func (b Book) Validate() error {
	err := validate.Struct(b)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidBook, err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", field))
		case "gte", "lte":
			messages = append(messages, fmt.Sprintf("%s must be between 0 and 9999", field))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", field))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidBook, strings.Join(messages, "; "))
}
