package library

import "strings"

// BookCatalog owns the book records of a LibraryData in insertion order.
type BookCatalog struct {
	data *LibraryData
}

// NewBookCatalog returns a catalog operating on data.Books in place.
func NewBookCatalog(data *LibraryData) *BookCatalog {
	return &BookCatalog{data: data}
}

// Add appends an available book. Empty id or title yields ErrValidation and a
// duplicate id yields ErrAlreadyExists; in both cases the catalog is untouched.
func (c *BookCatalog) Add(id, title, author string) (*Book, error) {
	if err := validateInput(BookInput{ID: id, Title: title, Author: author}); err != nil {
		return nil, err
	}
	if c.index(id) >= 0 {
		return nil, alreadyExistsf("book %s already exists", id)
	}
	b := &Book{ID: id, Title: title, Author: author, Available: true}
	c.data.Books = append(c.data.Books, b)
	return b, nil
}

// Search returns books whose title or author contains text, ignoring case.
// Empty text matches every book. The returned slice is new; order is preserved.
func (c *BookCatalog) Search(text string) []*Book {
	t := strings.ToLower(text)
	results := make([]*Book, 0, len(c.data.Books))
	for _, b := range c.data.Books {
		if strings.Contains(strings.ToLower(b.Title), t) ||
			strings.Contains(strings.ToLower(b.Author), t) {
			results = append(results, b)
		}
	}
	return results
}

// Get returns the first book whose id matches exactly.
func (c *BookCatalog) Get(id string) (*Book, error) {
	i := c.index(id)
	if i < 0 {
		return nil, notFoundf("book %s not found", id)
	}
	return c.data.Books[i], nil
}

// All returns the catalog in insertion order.
func (c *BookCatalog) All() []*Book { return c.data.Books }

func (c *BookCatalog) Len() int { return len(c.data.Books) }

func (c *BookCatalog) index(id string) int {
	for i, b := range c.data.Books {
		if b.ID == id {
			return i
		}
	}
	return -1
}
