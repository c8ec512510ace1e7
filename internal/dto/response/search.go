package response

// SearchResponse always carries both result sets; an empty query yields
// two empty lists rather than the full catalogs.
type SearchResponse struct {
	Query  string          `json:"query"`
	Games  []GameResponse  `json:"games"`
	Movies []MovieResponse `json:"movies"`
}
