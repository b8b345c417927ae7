package library

// MemberDirectory owns the member records of a LibraryData in registration order.
type MemberDirectory struct {
	data *LibraryData
}

// NewMemberDirectory returns a directory operating on data.Members in place.
func NewMemberDirectory(data *LibraryData) *MemberDirectory {
	return &MemberDirectory{data: data}
}

// Register appends a member with no fees. Empty id or name yields
// ErrValidation and a duplicate id yields ErrAlreadyExists.
func (d *MemberDirectory) Register(id, name, email string) (*Member, error) {
	if err := validateInput(MemberInput{ID: id, Name: name, Email: email}); err != nil {
		return nil, err
	}
	if d.index(id) >= 0 {
		return nil, alreadyExistsf("member %s already exists", id)
	}
	m := &Member{ID: id, Name: name, Email: email}
	d.data.Members = append(d.data.Members, m)
	return m, nil
}

// Find returns the member whose id matches exactly.
func (d *MemberDirectory) Find(id string) (*Member, error) {
	i := d.index(id)
	if i < 0 {
		return nil, notFoundf("member %s not found", id)
	}
	return d.data.Members[i], nil
}

func (d *MemberDirectory) All() []*Member { return d.data.Members }

func (d *MemberDirectory) Len() int { return len(d.data.Members) }

func (d *MemberDirectory) index(id string) int {
	for i, m := range d.data.Members {
		if m.ID == id {
			return i
		}
	}
	return -1
}
