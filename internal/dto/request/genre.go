package request

import "net/url"

type GenreRequest struct {
	Name string `json:"name" validate:"required,min=1,max=64"`
}

func (r *GenreRequest) FromForm(values url.Values) {
	r.Name = values.Get("name")
}
