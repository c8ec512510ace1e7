package entity

import (
	"time"
)

// Movie is structurally identical to Game but kept as an independent
// entity; the two catalogs do not share a table or a base record.
type Movie struct {
	Base
	Title       string     `db:"title"`
	ReleaseDate *time.Time `db:"release_date"`
	Description *string    `db:"description"`
}
