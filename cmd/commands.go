// file: cmd/commands.go
// version: 1.0.0
// guid: 2e1c4a7b-6d3f-4b8e-9a05-7c1d2f3e4b5a

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jdfalk/book-library/internal/config"
	"github.com/jdfalk/book-library/internal/library"
	"github.com/jdfalk/book-library/internal/matcher"
	"github.com/jdfalk/book-library/internal/models"
	"github.com/spf13/cobra"
)

// maxSuggestions caps the "Did you mean" list printed by find
const maxSuggestions = 3

// demoCmd plays the fixed demonstration sequence
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the demonstration sequence",
	Long: `Add three books, list them, list the books by "Author 1", save the
library, remove "Book 1", then load the saved file back and list again.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.OutOrStdout(), config.AppConfig.LibraryFile)
	},
}

// listCmd prints every book in the library file
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the books in the library file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		catalog, err := newCatalog(out)
		if err != nil {
			return err
		}
		if err := loadExisting(catalog, config.AppConfig.LibraryFile); err != nil {
			return err
		}
		return catalog.List(out)
	},
}

// addCmd appends a validated book and saves
var addCmd = &cobra.Command{
	Use:   "add TITLE AUTHOR YEAR",
	Short: "Add a book to the library file",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		book, err := bookFromArgs(args)
		if err != nil {
			return err
		}
		if err := book.Validate(); err != nil {
			return err
		}

		catalog, err := newCatalog(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		path := config.AppConfig.LibraryFile
		if err := loadExisting(catalog, path); err != nil {
			return err
		}
		catalog.Add(book)
		return saveCatalog(catalog, path)
	},
}

// removeCmd drops the first matching book and saves when something changed
var removeCmd = &cobra.Command{
	Use:   "remove TITLE AUTHOR YEAR",
	Short: "Remove a book from the library file",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		book, err := bookFromArgs(args)
		if err != nil {
			return err
		}

		catalog, err := newCatalog(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		path := config.AppConfig.LibraryFile
		if err := loadExisting(catalog, path); err != nil {
			return err
		}

		present := catalog.Contains(book)
		catalog.Remove(book)
		if !present {
			return nil
		}
		return saveCatalog(catalog, path)
	},
}

// findCmd prints the books by an author, suggesting near matches on a miss
var findCmd = &cobra.Command{
	Use:   "find AUTHOR",
	Short: "List the books by an author",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		catalog, err := newCatalog(out)
		if err != nil {
			return err
		}
		if err := loadExisting(catalog, config.AppConfig.LibraryFile); err != nil {
			return err
		}

		author := args[0]
		books := catalog.FindByAuthor(author)
		if len(books) > 0 {
			return library.PrintBooks(out, books)
		}

		fmt.Fprintf(out, "No books by %s\n", author)
		suggestions := matcher.SuggestAuthors(author, authorsOf(catalog.Books()), maxSuggestions)
		if len(suggestions) > 0 {
			names := make([]string, len(suggestions))
			for i, s := range suggestions {
				names[i] = s.Author
			}
			fmt.Fprintf(out, "Did you mean: %s?\n", strings.Join(names, ", "))
		}
		return nil
	},
}

var exportFormat string

// exportCmd rewrites the library file in another format
var exportCmd = &cobra.Command{
	Use:   "export PATH",
	Short: "Write the library to PATH in another format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := library.ParseFormat(exportFormat)
		if err != nil {
			return err
		}

		source, err := newLibrary()
		if err != nil {
			return err
		}
		if err := loadExisting(library.NewInstrumented(source), config.AppConfig.LibraryFile); err != nil {
			return err
		}

		dest := library.New(library.WithFormat(target))
		for _, book := range source.Books() {
			dest.Add(book)
		}
		if err := saveCatalog(library.NewInstrumented(dest), args[0]); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d books to %s (%s)\n", dest.Len(), args[0], target)
		return nil
	},
}

// configCmd groups configuration helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

// configSaveCmd writes the effective settings so later runs pick them up
var configSaveCmd = &cobra.Command{
	Use:   "save [PATH]",
	Short: "Save the effective settings as a YAML config file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			path = filepath.Join(home, ".book-library.yaml")
		}
		if err := config.SaveConfigToFile(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "to", "yaml", "target format: text or yaml")
	configCmd.AddCommand(configSaveCmd)
}

// runDemo adds three books, lists, saves, removes one, then reloads the saved
// file on top of what is left.
func runDemo(out io.Writer, path string) error {
	catalog, err := newCatalog(out)
	if err != nil {
		return err
	}

	book1 := models.NewBook("Book 1", "Author 1", 2020)
	book2 := models.NewBook("Book 2", "Author 2", 2021)
	journal1 := models.NewBook("Journal 1", "Author 1", 2022)

	catalog.Add(book1)
	catalog.Add(book2)
	catalog.Add(journal1)

	fmt.Fprintln(out, "Library Contents:")
	if err := catalog.List(out); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nBooks by Author 1:")
	if err := library.PrintBooks(out, catalog.FindByAuthor("Author 1")); err != nil {
		return err
	}

	if err := saveCatalog(catalog, path); err != nil {
		return err
	}

	catalog.Remove(book1)

	fmt.Fprintln(out, "\nLibrary Contents after removing Book 1:")
	if err := catalog.List(out); err != nil {
		return err
	}

	err = library.WithFileManager(catalog, func(fm *library.FileManager) error {
		return fm.Load(path)
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nLibrary Contents after loading from file:")
	return catalog.List(out)
}

// bookFromArgs builds a book from TITLE AUTHOR YEAR arguments
func bookFromArgs(args []string) (models.Book, error) {
	year, err := strconv.Atoi(strings.TrimSpace(args[2]))
	if err != nil {
		return models.Book{}, fmt.Errorf("%w: %q", library.ErrInvalidYear, args[2])
	}
	return models.NewBook(args[0], args[1], year), nil
}

func authorsOf(books []models.Book) []string {
	authors := make([]string, 0, len(books))
	for _, book := range books {
		authors = append(authors, book.Author)
	}
	return authors
}
