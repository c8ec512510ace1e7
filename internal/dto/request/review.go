package request

import (
	"net/url"
	"strconv"
)

// ReviewRequest leaves the rating range check to the review entity so the
// "too low" / "too high" messages come from one place.
type ReviewRequest struct {
	Rating      float64 `json:"rating"`
	Description string  `json:"description" validate:"required"`
}

func (r *ReviewRequest) FromForm(values url.Values) {
	// An unparsable rating stays 0 and is rejected downstream as below range.
	r.Rating, _ = strconv.ParseFloat(values.Get("rating"), 64)
	r.Description = values.Get("description")
}
