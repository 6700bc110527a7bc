package model

import "github.com/goccy/go-json"

// MovieSummary is one line of the movie list page.
type MovieSummary struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Year   int    `json:"year"`
	Rating int    `json:"rating"`
	Genre  string `json:"genre"`
	Studio string `json:"studio"`
}

// MovieInfo holds the scalar fields of the movie detail page. The zero
// value is the empty record shown when a movie does not exist. Rating is
// shown alongside the other scalar fields.
type MovieInfo struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Year   int    `json:"year"`
	Rating int    `json:"rating"`
	Genre  string `json:"genre"`
	Studio string `json:"studio"`
}

// Empty reports whether m is the empty record.
func (m MovieInfo) Empty() bool { return m == MovieInfo{} }

// MarshalJSON encodes the empty record as {} and every other record with all
// of its fields, zeros included.
func (m MovieInfo) MarshalJSON() ([]byte, error) {
	if m.Empty() {
		return []byte("{}"), nil
	}
	type plain MovieInfo
	return json.Marshal(plain(m))
}

// CastEntry is one credit listed on the movie detail page.
type CastEntry struct {
	ActorID int    `json:"actor_id"`
	Actor   string `json:"actor"`
	Role    string `json:"role"`
}

// MovieDetail is the movie detail page: scalar fields plus the cast.
type MovieDetail struct {
	Movie MovieInfo   `json:"movie"`
	Cast  []CastEntry `json:"cast"`
}

// MovieList is the movie list page. Page is the 1-based page number echoed
// back for display; Query and Order carry the request's filter for links.
type MovieList struct {
	Movies []MovieSummary `json:"data"`
	Page   int            `json:"page"`
	Query  string         `json:"query,omitempty"`
	Order  string         `json:"order,omitempty"`
}
