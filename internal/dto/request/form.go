package request

import "net/url"

// FormBinder is implemented by requests that can also be populated from
// an HTML form submission instead of a JSON body.
type FormBinder interface {
	FromForm(values url.Values)
}
