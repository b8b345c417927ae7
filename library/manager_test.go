package library

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRenderer keeps every render call for assertions.
type recordingRenderer struct {
	books   [][]string
	members []*Member
}

func (r *recordingRenderer) RenderBooks(books []*Book) { r.books = append(r.books, ids(books)) }
func (r *recordingRenderer) RenderMember(m *Member) {
	if m != nil {
		cp := *m
		m = &cp
	}
	r.members = append(r.members, m)
}

// countingStore wraps a MemoryStore and counts writes.
type countingStore struct {
	*MemoryStore
	saves   int
	saveErr error
}

func (s *countingStore) Save(data *LibraryData) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	return s.MemoryStore.Save(data)
}

func newManager(t *testing.T) (*LibraryManager, *countingStore, *recordingRenderer) {
	t.Helper()
	store := &countingStore{MemoryStore: NewMemoryStore()}
	view := &recordingRenderer{}
	mgr, err := NewLibraryManager(store, view, nil)
	require.NoError(t, err)
	t.Cleanup(func() { mgr.Close() })
	return mgr, store, view
}

func TestNewLibraryManager_LoadsAndRenders(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(sampleData()))
	view := &recordingRenderer{}

	mgr, err := NewLibraryManager(store, view, nil)
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"A1", "A2"}}, view.books)
	assert.Len(t, mgr.Members(), 2)
}

func TestLibraryManager_AddBook(t *testing.T) {
	mgr, store, view := newManager(t)

	require.NoError(t, mgr.AddBook("A1", "Refactoring", "Martin Fowler"))
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, []string{"A1"}, view.books[len(view.books)-1])

	err := mgr.AddBook("", "Untitled", "")
	assert.ErrorIs(t, err, ErrValidation)
	err = mgr.AddBook("A1", "Again", "")
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Equal(t, 1, store.saves, "rejected adds are not persisted")
	assert.Len(t, mgr.Books(), 1)
}

func TestLibraryManager_RegisterMember(t *testing.T) {
	mgr, store, view := newManager(t)
	renders := len(view.books)

	require.NoError(t, mgr.RegisterMember("M1", "Grace Hopper", "grace@navy.mil"))
	assert.Equal(t, 1, store.saves)
	assert.Len(t, view.books, renders, "registration does not re-render books")

	assert.ErrorIs(t, mgr.RegisterMember("M2", "", ""), ErrValidation)
	assert.Equal(t, 1, store.saves)
}

func TestLibraryManager_SearchBooks(t *testing.T) {
	mgr, store, view := newManager(t)
	require.NoError(t, mgr.LoadDemo())
	saves := store.saves

	results := mgr.SearchBooks("fowler")
	assert.Equal(t, []string{"A1"}, ids(results))
	assert.Equal(t, []string{"A1"}, view.books[len(view.books)-1])
	assert.Equal(t, saves, store.saves, "search does not persist")
}

func TestLibraryManager_CheckoutBook(t *testing.T) {
	mgr, store, view := newManager(t)
	require.NoError(t, mgr.LoadDemo())
	saves, bookRenders := store.saves, len(view.books)

	require.NoError(t, mgr.CheckoutBook("A1", "M1"))
	assert.Equal(t, saves+1, store.saves)
	assert.Len(t, view.books, bookRenders+1)
	require.Len(t, view.members, 1)
	assert.Equal(t, "M1", view.members[0].ID)
	assert.Equal(t, 3.5, view.members[0].Fees)

	persisted, err := store.Load()
	require.NoError(t, err)
	assert.False(t, persisted.Books[0].Available)
	assert.Equal(t, 3.5, persisted.Members[0].Fees)
}

func TestLibraryManager_CheckoutNoOpSkipsSideEffects(t *testing.T) {
	mgr, store, view := newManager(t)
	require.NoError(t, mgr.LoadDemo())
	require.NoError(t, mgr.CheckoutBook("A1", "M1"))
	saves, bookRenders, memberRenders := store.saves, len(view.books), len(view.members)

	assert.ErrorIs(t, mgr.CheckoutBook("A1", "M2"), ErrUnavailable)
	assert.ErrorIs(t, mgr.CheckoutBook("A9", "M2"), ErrNotFound)
	assert.ErrorIs(t, mgr.CheckoutBook("A2", "M9"), ErrNotFound)

	assert.Equal(t, saves, store.saves)
	assert.Len(t, view.books, bookRenders)
	assert.Len(t, view.members, memberRenders)

	m2, _ := mgr.FindMember("M2")
	assert.Zero(t, m2.Fees)
	a2, _ := mgr.GetBook("A2")
	assert.True(t, a2.Available)
}

func TestLibraryManager_SaveFailure(t *testing.T) {
	mgr, store, _ := newManager(t)
	store.saveErr = errors.New("disk full")

	err := mgr.AddBook("A1", "Refactoring", "")
	assert.ErrorIs(t, err, ErrInternal)
	assert.Contains(t, err.Error(), "disk full")
}

func TestLibraryManager_LoadDemo(t *testing.T) {
	mgr, _, _ := newManager(t)

	require.NoError(t, mgr.LoadDemo())
	assert.Equal(t, []string{"A1", "A2"}, ids(mgr.Books()))
	require.Len(t, mgr.Members(), 2)
	assert.Equal(t, "Grace Hopper", mgr.Members()[0].Name)
	assert.Equal(t, "alan@bletchley.uk", mgr.Members()[1].Email)

	// Second call leaves populated collections alone.
	require.NoError(t, mgr.LoadDemo())
	assert.Len(t, mgr.Books(), 2)
	assert.Len(t, mgr.Members(), 2)
}

func TestLibraryManager_LoadDemoFillsOnlyEmptyHalf(t *testing.T) {
	mgr, _, _ := newManager(t)
	require.NoError(t, mgr.AddBook("X1", "Own Book", ""))

	require.NoError(t, mgr.LoadDemo())
	assert.Equal(t, []string{"X1"}, ids(mgr.Books()))
	assert.Len(t, mgr.Members(), 2)
}

func TestLibraryManager_ClearAll(t *testing.T) {
	mgr, store, view := newManager(t)
	require.NoError(t, mgr.LoadDemo())

	require.NoError(t, mgr.ClearAll())
	assert.Empty(t, mgr.Books())
	assert.Empty(t, mgr.Members())
	assert.Equal(t, []string{}, view.books[len(view.books)-1])

	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, persisted.Books)

	// The catalog still works against the reset state.
	require.NoError(t, mgr.AddBook("A1", "Refactoring", ""))
	assert.Len(t, mgr.Books(), 1)
}

func TestLibraryManager_ShowMember(t *testing.T) {
	mgr, _, view := newManager(t)
	require.NoError(t, mgr.RegisterMember("M1", "Grace Hopper", ""))

	mgr.ShowMember("M1")
	mgr.ShowMember("nobody")

	require.Len(t, view.members, 2)
	assert.Equal(t, "Grace Hopper", view.members[0].Name)
	assert.Nil(t, view.members[1])
}

func TestLibraryManager_SQLiteReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lib.db")
	db, err := NewDatabase(path, "")
	require.NoError(t, err)
	mgr, err := NewLibraryManager(db, nil, nil)
	require.NoError(t, err)
	require.NoError(t, mgr.LoadDemo())
	require.NoError(t, mgr.CheckoutBook("A2", "M2"))
	require.NoError(t, mgr.Close())

	db, err = NewDatabase(path, "")
	require.NoError(t, err)
	mgr, err = NewLibraryManager(db, nil, nil)
	require.NoError(t, err)
	t.Cleanup(func() { mgr.Close() })

	a2, err := mgr.GetBook("A2")
	require.NoError(t, err)
	assert.False(t, a2.Available)
	m2, err := mgr.FindMember("M2")
	require.NoError(t, err)
	assert.Equal(t, 3.5, m2.Fees)
}
