package entity

import (
	"github.com/google/uuid"
)

type GameGenre struct {
	BaseSimple
	GameID  uuid.UUID `db:"game_id"`
	GenreID uuid.UUID `db:"genre_id"`
}
