package entity

import (
	"math"

	"github.com/google/uuid"
)

const (
	RatingMin = 1.0
	RatingMax = 10.0
)

// Review links a user to exactly one of game or movie. The exclusivity
// rule lives here (not only in the request DTO) so that reviews built
// directly in code hit the same checks as form submissions.
type Review struct {
	BaseSimple
	UserID      uuid.UUID  `db:"user_id"`
	GameID      *uuid.UUID `db:"game_id"`
	MovieID     *uuid.UUID `db:"movie_id"`
	Rating      float64    `db:"rating"`
	Description string     `db:"description"`
}

// Validate returns field-level error messages, or nil when the review is
// well formed. Invariants: exactly one target reference, rating within
// [1.0, 10.0] with at most one fractional digit, non-empty description.
func (r *Review) Validate() map[string]string {
	errs := make(map[string]string)

	if r.UserID == uuid.Nil {
		errs["user"] = "This field is required"
	}

	switch {
	case r.GameID == nil && r.MovieID == nil:
		errs["target"] = "Review must reference exactly one of game or movie, got neither"
	case r.GameID != nil && r.MovieID != nil:
		errs["target"] = "Review must reference exactly one of game or movie, got both"
	}

	switch {
	case r.Rating < RatingMin:
		errs["rating"] = "Rating is too low, minimum is 1.0"
	case r.Rating > RatingMax:
		errs["rating"] = "Rating is too high, maximum is 10.0"
	case math.Abs(r.Rating*10-math.Round(r.Rating*10)) > 1e-9:
		errs["rating"] = "Rating allows at most one decimal place"
	}

	if r.Description == "" {
		errs["description"] = "This field is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
