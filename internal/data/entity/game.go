package entity

import (
	"time"
)

type Game struct {
	Base
	Title       string     `db:"title"`
	ReleaseDate *time.Time `db:"release_date"`
	Description *string    `db:"description"`
}
