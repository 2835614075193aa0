// Package uuid wraps github.com/google/uuid with gin binding support.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// UUID embeds google/uuid so that it can be used in binding structs for
// URI and query parameters.
type UUID struct {
	google_uuid.UUID
}

// Nil is the zero UUID.
var Nil UUID

// New returns a random UUID.
func New() UUID {
	return UUID{google_uuid.New()}
}

// NewString returns a random UUID as a string.
func NewString() string {
	return google_uuid.NewString()
}

// UnmarshalParam implements the gin binding.BindUnmarshaler interface.
//
// An empty parameter unmarshals to Nil so that unset query parameters
// can be told apart from invalid ones.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}
