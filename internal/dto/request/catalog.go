package request

import "net/url"

// CatalogItemRequest carries the add/edit payload for both games and
// movies; the two forms are identical. Edits replace all four fields and
// the full genre set, so there is no partial-update variant.
type CatalogItemRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=124"`
	ReleaseDate *string  `json:"release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Description *string  `json:"description,omitempty"`
	GenreIDs    []string `json:"genre_ids,omitempty" validate:"dive,uuid4"`
}

func (r *CatalogItemRequest) FromForm(values url.Values) {
	r.Title = values.Get("title")

	if v := values.Get("release_date"); v != "" {
		r.ReleaseDate = &v
	}
	if v := values.Get("description"); v != "" {
		r.Description = &v
	}

	r.GenreIDs = values["genres"]
}
