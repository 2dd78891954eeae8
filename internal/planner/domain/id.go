package domain

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// idLength is the number of hex characters kept from the UUID.
const idLength = 10

// NewID generates an opaque record identifier: the leading hex digits of a
// UUIDv4. Ten characters keeps ids short enough to show in listings while
// leaving collisions out of reach for a single user's data.
func NewID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])[:idLength]
}
