package model

import "time"

// Metadata carries the server-assigned creation timestamp. Finance records are
// never updated in place, so there is no modification tracking.
type Metadata struct {
	CreatedAt time.Time `db:"created_at"`
}
