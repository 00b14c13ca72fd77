package entity

import (
	"time"

	"github.com/RohithShyam024/credkit/internal/pkg/hash"
)

// Credential is one registered user. The store owns the collection; everything
// else reaches credentials through repository operations only.
type Credential struct {
	Username string

	// Record is exclusively owned by this credential. A password change swaps
	// the whole record; it is never mutated field by field.
	Record hash.Record

	// CreatedAt is set by the store at insert and immutable afterwards.
	CreatedAt time.Time
}
