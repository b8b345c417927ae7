package library

// Loan describes a completed checkout.
type Loan struct {
	Book   *Book
	Member *Member
	Fee    float64
}

// LendingService performs checkouts across a BookCatalog and a MemberDirectory.
type LendingService struct {
	books    *BookCatalog
	members  *MemberDirectory
	fee      FeePolicy
	loanDays int
}

// NewLendingService uses CalculateFee and DefaultLoanDays.
func NewLendingService(books *BookCatalog, members *MemberDirectory) *LendingService {
	return &LendingService{
		books:    books,
		members:  members,
		fee:      CalculateFee,
		loanDays: DefaultLoanDays,
	}
}

// Checkout marks the book unavailable and charges the member the fee for a
// DefaultLoanDays loan. An unknown book or member yields ErrNotFound and a
// book that is already out yields ErrUnavailable; neither changes any record.
func (s *LendingService) Checkout(bookID, memberID string) (*Loan, error) {
	book, err := s.books.Get(bookID)
	if err != nil {
		return nil, err
	}
	member, err := s.members.Find(memberID)
	if err != nil {
		return nil, err
	}
	if !book.Available {
		return nil, unavailablef("book %s already checked out", bookID)
	}

	fee := s.fee(s.loanDays)
	book.Available = false
	member.Fees += fee
	return &Loan{Book: book, Member: member, Fee: fee}, nil
}
