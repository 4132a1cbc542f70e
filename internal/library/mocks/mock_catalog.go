// file: internal/library/mocks/mock_catalog.go
// version: 1.0.0
// guid: 8b7e7a9e-72f3-4d11-a6ae-6960a1810672

package mocks

import (
	"io"

	"github.com/jdfalk/book-library/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockCatalog is a testify mock of library.Catalog
type MockCatalog struct {
	mock.Mock
}

// NewMockCatalog creates a MockCatalog whose expectations are asserted when the test ends
func NewMockCatalog(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCatalog {
	m := &MockCatalog{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCatalog) Add(book models.Book) {
	m.Called(book)
}

func (m *MockCatalog) Remove(book models.Book) {
	m.Called(book)
}

func (m *MockCatalog) Contains(book models.Book) bool {
	args := m.Called(book)
	return args.Bool(0)
}

func (m *MockCatalog) Books() []models.Book {
	args := m.Called()
	if books, ok := args.Get(0).([]models.Book); ok {
		return books
	}
	return nil
}

func (m *MockCatalog) List(w io.Writer) error {
	args := m.Called(w)
	return args.Error(0)
}

func (m *MockCatalog) FindByAuthor(author string) []models.Book {
	args := m.Called(author)
	if books, ok := args.Get(0).([]models.Book); ok {
		return books
	}
	return nil
}

func (m *MockCatalog) Save(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockCatalog) Load(path string) error {
	args := m.Called(path)
	return args.Error(0)
}
