package valueobject

import "github.com/google/uuid"

// UniqueID is an opaque, immutable entity identifier.
type UniqueID struct {
	value string
}

// NewUniqueID generates a fresh random identifier.
func NewUniqueID() UniqueID {
	return UniqueID{value: uuid.NewString()}
}

// UniqueIDFrom wraps an existing identifier, generating one when empty.
func UniqueIDFrom(id string) UniqueID {
	if id == "" {
		return NewUniqueID()
	}
	return UniqueID{value: id}
}

func (id UniqueID) String() string {
	return id.value
}

func (id UniqueID) Equals(other UniqueID) bool {
	return id.value == other.value
}
