package library

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
)

// DefaultStoreKey is the key the state blob is kept under.
const DefaultStoreKey = "LIB_STORE"

// Store persists the combined library state as a single blob.
//
// Load returns an empty LibraryData when nothing is stored or the stored blob
// cannot be decoded; a non-nil error means the backend itself failed.
// Save overwrites the blob wholesale and Clear removes it.
type Store interface {
	Load() (*LibraryData, error)
	Save(data *LibraryData) error
	Clear() error
	Close() error
}

var blobCodec = jsoniter.ConfigCompatibleWithStandardLibrary

func encodeData(data *LibraryData) ([]byte, error) {
	if data == nil {
		data = NewLibraryData()
	}
	return blobCodec.Marshal(data)
}

// decodeData never fails: anything that is not a JSON object decodes to an
// empty state.
func decodeData(blob []byte) *LibraryData {
	blob = bytes.TrimSpace(blob)
	if len(blob) == 0 || blob[0] != '{' {
		return NewLibraryData()
	}
	var data LibraryData
	if err := blobCodec.Unmarshal(blob, &data); err != nil {
		return NewLibraryData()
	}
	return data.normalize()
}

// MemoryStore keeps the encoded blob in process. It does not survive a restart.
type MemoryStore struct {
	blob []byte
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Load() (*LibraryData, error) { return decodeData(s.blob), nil }

func (s *MemoryStore) Save(data *LibraryData) error {
	blob, err := encodeData(data)
	if err != nil {
		return err
	}
	s.blob = blob
	return nil
}

func (s *MemoryStore) Clear() error {
	s.blob = nil
	return nil
}

func (s *MemoryStore) Close() error { return nil }
