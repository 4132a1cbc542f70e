// file: internal/library/codec.go
// version: 1.0.0
// guid: c2dd0955-5210-4604-8db3-6291eb54a1e3

package library

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jdfalk/book-library/internal/models"
	"gopkg.in/yaml.v3"
)

// Format selects the on-disk representation of a library file.
type Format string

const (
	// FormatText is one "title,author,year" record per line with no quoting.
	// Titles or authors containing a comma do not survive a round trip.
	FormatText Format = "text"
	// FormatYAML is a "books:" sequence of title/author/year mappings.
	FormatYAML Format = "yaml"
)

// ParseFormat maps a config or flag value to a Format. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt", "csv":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Encode writes books to w in the given format.
func Encode(w io.Writer, format Format, books []models.Book) error {
	switch format {
	case FormatText:
		return encodeText(w, books)
	case FormatYAML:
		return encodeYAML(w, books)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Decode reads every record from r. It returns nothing on the first bad record.
func Decode(r io.Reader, format Format) ([]models.Book, error) {
	switch format {
	case FormatText:
		return decodeText(r)
	case FormatYAML:
		return decodeYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func encodeText(w io.Writer, books []models.Book) error {
	bw := bufio.NewWriter(w)
	for _, book := range books {
		if _, err := fmt.Fprintf(bw, "%s,%s,%d\n", book.Title, book.Author, book.Year); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func decodeText(r io.Reader) ([]models.Book, error) {
	br := bufio.NewReader(r)

	var books []models.Book
	lineNo := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read library: %w", err)
		}
		if line == "" && err != nil {
			break
		}

		lineNo++
		text := strings.TrimRight(line, "\r\n")
		book, parseErr := parseLine(text)
		if parseErr != nil {
			return nil, &ParseError{Line: lineNo, Text: text, Err: parseErr}
		}
		books = append(books, book)

		if err != nil {
			break
		}
	}
	return books, nil
}

// parseLine splits a trimmed record into exactly three fields.
func parseLine(line string) (models.Book, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 3 {
		return models.Book{}, fmt.Errorf("%w (got %d fields)", ErrMalformedLine, len(fields))
	}

	year, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return models.Book{}, fmt.Errorf("%w: %q", ErrInvalidYear, fields[2])
	}
	return models.NewBook(fields[0], fields[1], year), nil
}

type yamlDocument struct {
	Books []models.Book `yaml:"books"`
}

func encodeYAML(w io.Writer, books []models.Book) error {
	doc := yamlDocument{Books: books}
	if doc.Books == nil {
		doc.Books = []models.Book{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode yaml library: %w", err)
	}
	return enc.Close()
}

func decodeYAML(r io.Reader) ([]models.Book, error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode yaml library: %w", err)
	}
	return doc.Books, nil
}
