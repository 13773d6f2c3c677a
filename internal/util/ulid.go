package util

import (
	"github.com/oklog/ulid/v2"
)

// NewULID returns a new lexically sortable id. ulid.Make draws from a
// process-wide monotonic source, so ids minted within the same millisecond
// still differ and sort in creation order.
func NewULID() string {
	return ulid.Make().String()
}
