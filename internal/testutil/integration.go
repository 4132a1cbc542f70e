// file: internal/testutil/integration.go
// version: 2.0.0
// guid: a1b2c3d4-e5f6-7890-abcd-ef1234567890

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jdfalk/book-library/internal/models"
	"github.com/stretchr/testify/require"
)

// IntegrationEnv holds the files used by a command-level test.
type IntegrationEnv struct {
	TempDir     string
	LibraryFile string
	ConfigFile  string
	MetricsFile string
	T           *testing.T
}

// SetupIntegration creates a temp directory with paths for the library,
// config and metrics files. HOME is pointed at the temp directory so no user
// config file leaks into the test.
func SetupIntegration(t *testing.T) *IntegrationEnv {
	t.Helper()

	tmpBase := t.TempDir()
	t.Setenv("HOME", tmpBase)

	return &IntegrationEnv{
		TempDir:     tmpBase,
		LibraryFile: filepath.Join(tmpBase, "library.txt"),
		ConfigFile:  filepath.Join(tmpBase, "config.yaml"),
		MetricsFile: filepath.Join(tmpBase, "book_library.prom"),
		T:           t,
	}
}

// WriteLibrary replaces the library file with contents.
func (env *IntegrationEnv) WriteLibrary(contents string) {
	env.T.Helper()
	require.NoError(env.T, os.WriteFile(env.LibraryFile, []byte(contents), 0644))
}

// ReadLibrary returns the library file contents.
func (env *IntegrationEnv) ReadLibrary() string {
	env.T.Helper()
	data, err := os.ReadFile(env.LibraryFile)
	require.NoError(env.T, err)
	return string(data)
}

// Path joins name onto the temp directory.
func (env *IntegrationEnv) Path(name string) string {
	return filepath.Join(env.TempDir, name)
}

// SampleBooks returns the three books used by the demonstration sequence.
func SampleBooks() []models.Book {
	return []models.Book{
		models.NewBook("Book 1", "Author 1", 2020),
		models.NewBook("Book 2", "Author 2", 2021),
		models.NewBook("Journal 1", "Author 1", 2022),
	}
}

// SampleLibraryText is SampleBooks in the text file format.
const SampleLibraryText = "Book 1,Author 1,2020\nBook 2,Author 2,2021\nJournal 1,Author 1,2022\n"
