package library

import (
	"fmt"
	"log/slog"
)

// LibraryManager is a thin façade that runs one operation, persists the
// resulting state and asks the Renderer to redraw. It owns the in-memory
// state; nothing in this package is global.
type LibraryManager struct {
	store  Store
	view   Renderer
	logger *slog.Logger

	data    *LibraryData
	books   *BookCatalog
	members *MemberDirectory
	lending *LendingService
}

// NewLibraryManager loads state from store and renders the book list.
// A nil view or logger discards output.
func NewLibraryManager(store Store, view Renderer, logger *slog.Logger) (*LibraryManager, error) {
	if view == nil {
		view = NopRenderer{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	data := NewLibraryData()
	books := NewBookCatalog(data)
	members := NewMemberDirectory(data)
	lm := &LibraryManager{
		store:   store,
		view:    view,
		logger:  logger,
		data:    data,
		books:   books,
		members: members,
		lending: NewLendingService(books, members),
	}
	if err := lm.Reload(); err != nil {
		return nil, err
	}
	return lm, nil
}

// Close closes the underlying store.
func (lm *LibraryManager) Close() error { return lm.store.Close() }

// Reload replaces in-memory state with what the store holds.
func (lm *LibraryManager) Reload() error {
	loaded, err := lm.store.Load()
	if err != nil {
		return fmt.Errorf("load library: %w", err)
	}
	*lm.data = *loaded
	lm.logger.Debug("library loaded", "books", lm.books.Len(), "members", lm.members.Len())
	lm.view.RenderBooks(lm.books.All())
	return nil
}

// ------------------ Book helpers ------------------

func (lm *LibraryManager) AddBook(id, title, author string) error {
	if _, err := lm.books.Add(id, title, author); err != nil {
		lm.logger.Debug("add book rejected", "book_id", id, "error", err)
		return err
	}
	if err := lm.save(); err != nil {
		return err
	}
	lm.logger.Info("book added", "book_id", id)
	lm.view.RenderBooks(lm.books.All())
	return nil
}

func (lm *LibraryManager) GetBook(id string) (*Book, error) { return lm.books.Get(id) }
func (lm *LibraryManager) Books() []*Book                   { return lm.books.All() }

// SearchBooks renders and returns the matching books without persisting.
func (lm *LibraryManager) SearchBooks(text string) []*Book {
	results := lm.books.Search(text)
	lm.view.RenderBooks(results)
	return results
}

// ------------------ Member helpers ------------------

func (lm *LibraryManager) RegisterMember(id, name, email string) error {
	if _, err := lm.members.Register(id, name, email); err != nil {
		lm.logger.Debug("register member rejected", "member_id", id, "error", err)
		return err
	}
	if err := lm.save(); err != nil {
		return err
	}
	lm.logger.Info("member registered", "member_id", id)
	return nil
}

func (lm *LibraryManager) FindMember(id string) (*Member, error) { return lm.members.Find(id) }
func (lm *LibraryManager) Members() []*Member                    { return lm.members.All() }

// ShowMember renders the member with id, or the no-selection placeholder.
func (lm *LibraryManager) ShowMember(id string) {
	m, err := lm.members.Find(id)
	if err != nil {
		m = nil
	}
	lm.view.RenderMember(m)
}

// ------------------ Circulation ------------------

// CheckoutBook lends bookID to memberID. On any rejection nothing is
// persisted or rendered.
func (lm *LibraryManager) CheckoutBook(bookID, memberID string) error {
	loan, err := lm.lending.Checkout(bookID, memberID)
	if err != nil {
		lm.logger.Debug("checkout rejected", "book_id", bookID, "member_id", memberID, "error", err)
		return err
	}
	if err := lm.save(); err != nil {
		return err
	}
	lm.logger.Info("book checked out", "book_id", bookID, "member_id", memberID, "fee", loan.Fee)
	lm.view.RenderBooks(lm.books.All())
	lm.view.RenderMember(loan.Member)
	return nil
}

// ------------------ Bulk actions ------------------

// LoadDemo seeds two books if the catalog is empty and two members if the
// directory is empty, then persists and renders.
func (lm *LibraryManager) LoadDemo() error {
	if lm.books.Len() == 0 {
		for _, b := range demoBooks {
			if _, err := lm.books.Add(b.ID, b.Title, b.Author); err != nil {
				return err
			}
		}
	}
	if lm.members.Len() == 0 {
		for _, m := range demoMembers {
			if _, err := lm.members.Register(m.ID, m.Name, m.Email); err != nil {
				return err
			}
		}
	}
	if err := lm.save(); err != nil {
		return err
	}
	lm.view.RenderBooks(lm.books.All())
	return nil
}

// ClearAll removes the stored blob and empties the in-memory state.
func (lm *LibraryManager) ClearAll() error {
	if err := lm.store.Clear(); err != nil {
		lm.logger.Error("clear library failed", "error", err)
		return wrap(err, CodeInternal, "clear library")
	}
	*lm.data = *NewLibraryData()
	lm.logger.Info("library cleared")
	lm.view.RenderBooks(lm.books.All())
	return nil
}

func (lm *LibraryManager) save() error {
	if err := lm.store.Save(lm.data); err != nil {
		lm.logger.Error("save library failed", "error", err)
		return wrap(err, CodeInternal, "save library")
	}
	return nil
}

var demoBooks = []BookInput{
	{ID: "A1", Title: "Refactoring", Author: "Martin Fowler"},
	{ID: "A2", Title: "The Pragmatic Programmer", Author: "Hunt & Thomas"},
}

var demoMembers = []MemberInput{
	{ID: "M1", Name: "Grace Hopper", Email: "grace@navy.mil"},
	{ID: "M2", Name: "Alan Turing", Email: "alan@bletchley.uk"},
}
