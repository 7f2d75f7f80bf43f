// Package uuid wraps google/uuid so that UUIDs bind from URI and query
// parameters.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// UUID binds from string parameters. An empty parameter binds to Nil, which
// allows query filters to distinguish "not set" from "set to an ID".
type UUID struct {
	google_uuid.UUID
}

// Nil is the UUID with all zeros.
var Nil UUID

// UnmarshalParam parses the string representation of a UUID. gin calls it
// when binding URI and query parameters.
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
