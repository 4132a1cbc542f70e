// file: internal/library/filemanager.go
// version: 1.0.0
// guid: 103a7383-64e9-4d88-8f75-424d9247bd15

package library

// FileManager scopes save and load calls against a Catalog. It holds no file
// handle; closing it only ends the scope.
type FileManager struct {
	catalog Catalog
	closed  bool
}

// OpenFileManager starts a scope over catalog
func OpenFileManager(catalog Catalog) *FileManager {
	return &FileManager{catalog: catalog}
}

// WithFileManager runs fn inside a scope and always closes it, returning fn's error
func WithFileManager(catalog Catalog, fn func(fm *FileManager) error) error {
	fm := OpenFileManager(catalog)
	defer fm.Close()
	return fn(fm)
}

// Save writes the catalog to path
func (fm *FileManager) Save(path string) error {
	if fm.closed {
		return ErrFileManagerClosed
	}
	return fm.catalog.Save(path)
}

// Load appends the records in path to the catalog
func (fm *FileManager) Load(path string) error {
	if fm.closed {
		return ErrFileManagerClosed
	}
	return fm.catalog.Load(path)
}

// Close ends the scope. It is safe to call more than once.
func (fm *FileManager) Close() error {
	fm.closed = true
	return nil
}
