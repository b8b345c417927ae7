package library

// Book is a catalog record. ID is immutable once added; Available flips to
// false on checkout and there is no operation that flips it back.
type Book struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Available bool   `json:"available"`
}

// Member represents a registered library member. Fees only ever grows.
type Member struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Fees  float64 `json:"fees"`
}

// LibraryData represents the complete library state for persistence
type LibraryData struct {
	Books   []*Book   `json:"books"`
	Members []*Member `json:"members"`
}

// NewLibraryData returns an empty state with non-nil collections.
func NewLibraryData() *LibraryData {
	return &LibraryData{Books: []*Book{}, Members: []*Member{}}
}

// normalize replaces missing collections and drops null entries left by a
// hand-edited or partially written blob.
func (d *LibraryData) normalize() *LibraryData {
	books := make([]*Book, 0, len(d.Books))
	for _, b := range d.Books {
		if b != nil {
			books = append(books, b)
		}
	}
	members := make([]*Member, 0, len(d.Members))
	for _, m := range d.Members {
		if m != nil {
			members = append(members, m)
		}
	}
	d.Books, d.Members = books, members
	return d
}
