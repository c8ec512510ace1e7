package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReview() *Review {
	gameID := uuid.New()
	return &Review{
		BaseSimple: BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:      uuid.New(),
		GameID:      &gameID,
		Rating:      8.5,
		Description: "worth playing",
	}
}

func TestReviewValidateOK(t *testing.T) {
	assert.Nil(t, validReview().Validate())
}

func TestReviewValidateExclusivity(t *testing.T) {
	t.Run("neither target", func(t *testing.T) {
		review := validReview()
		review.GameID = nil

		errs := review.Validate()
		require.NotNil(t, errs)
		assert.Contains(t, errs["target"], "got neither")
	})

	t.Run("both targets", func(t *testing.T) {
		review := validReview()
		movieID := uuid.New()
		review.MovieID = &movieID

		errs := review.Validate()
		require.NotNil(t, errs)
		assert.Contains(t, errs["target"], "got both")
	})

	t.Run("movie only is fine", func(t *testing.T) {
		review := validReview()
		movieID := uuid.New()
		review.GameID = nil
		review.MovieID = &movieID

		assert.Nil(t, review.Validate())
	})
}

func TestReviewValidateRating(t *testing.T) {
	tests := []struct {
		name    string
		rating  float64
		wantMsg string
	}{
		{"just below minimum", 0.9, "Rating is too low, minimum is 1.0"},
		{"at minimum", 1.0, ""},
		{"at maximum", 10.0, ""},
		{"just above maximum", 10.1, "Rating is too high, maximum is 10.0"},
		{"zero", 0, "Rating is too low, minimum is 1.0"},
		{"negative", -5, "Rating is too low, minimum is 1.0"},
		{"one decimal place", 7.5, ""},
		{"two decimal places", 7.55, "Rating allows at most one decimal place"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			review := validReview()
			review.Rating = tt.rating

			errs := review.Validate()
			if tt.wantMsg == "" {
				assert.Nil(t, errs)
				return
			}

			require.NotNil(t, errs)
			assert.Equal(t, tt.wantMsg, errs["rating"])
		})
	}
}

func TestReviewValidateRequiredFields(t *testing.T) {
	review := validReview()
	review.UserID = uuid.Nil
	review.Description = ""

	errs := review.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "user")
	assert.Contains(t, errs, "description")
}
