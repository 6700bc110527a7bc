// Package query builds the parameterized SQL used to browse the catalog.
// Caller input never reaches the SQL text: identifiers and search terms are
// bound as arguments, and the sort column is picked from a fixed allow-list.
package query

import (
	"strconv"
	"strings"
)

// PageSize is the number of movies shown per list page.
const PageSize = 20

// Query is a ready-to-execute statement. Name labels the operation in logs
// and metrics.
type Query struct {
	Name string
	SQL  string
	Args []any
}

// MovieListParams holds the raw inputs of the movie list page.
type MovieListParams struct {
	Search string // free text matched against title and synopsis
	Order  string // sort key, see SortColumn
	Page   string // 1-based page number as received
}

// sortColumns maps the accepted sort keys to safe column expressions.
var sortColumns = map[string]string{
	"title":  "movies.title",
	"year":   "movies.year",
	"rating": "movies.rating",
	"genre":  "genres.name",
	"studio": "studios.name",
	"id":     "movies.id",
}

// DefaultSort is used when no or an unknown sort key is given.
const DefaultSort = "title"

// SortKeys lists the sort keys offered on the list page, in display order.
var SortKeys = []string{"title", "year", "rating", "genre", "studio"}

// SortKey normalizes a caller supplied sort key. Unknown keys become
// DefaultSort.
func SortKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if _, ok := sortColumns[key]; ok {
		return key
	}
	return DefaultSort
}

// SortColumn resolves a caller supplied sort key to its column expression.
func SortColumn(key string) string {
	return sortColumns[SortKey(key)]
}

// ParsePage converts the raw page parameter to a page number. Missing or
// invalid values, and anything below 1, yield page 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Offset returns the row offset of a page. With legacy set it reproduces the
// historic one-row overlap: page 2 starts at offset 19 instead of 20.
func Offset(page int, legacy bool) int {
	if page <= 1 {
		return 0
	}
	off := (page - 1) * PageSize
	if legacy {
		off--
	}
	return off
}

// likePattern lower-cases term, escapes LIKE wildcards and wraps it in %.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(term)) + "%"
}

// ListActors selects every actor ordered by name.
func ListActors() Query {
	return Query{
		Name: "list_actors",
		SQL: `SELECT actors.id, actors.name
		FROM actors
		ORDER BY actors.name`,
	}
}

// ActorDetail selects every cast credit of one actor. The id is bound as
// received; the store decides how it compares against actors.id.
func ActorDetail(actorID string) Query {
	return Query{
		Name: "actor_detail",
		SQL: `SELECT actors.name AS actor,
			movies.title AS movie_title,
			movies.id AS movie_id,
			cast_members.character AS role,
			movies.rating
		FROM actors
		JOIN cast_members ON actors.id = cast_members.actor_id
		JOIN movies       ON movies.id = cast_members.movie_id
		WHERE actors.id = ?`,
		Args: []any{actorID},
	}
}

// ListMovies builds the filtered, ordered and paginated movie list query.
func ListMovies(p MovieListParams, legacyOffset bool) Query {
	where := ""
	args := []any{}

	// The term is matched as received; only an empty term disables the filter.
	if p.Search != "" {
		pattern := likePattern(p.Search)
		where = "WHERE LOWER(movies.title) LIKE ? OR LOWER(movies.synopsis) LIKE ?"
		args = append(args, pattern, pattern)
	}

	order := SortColumn(p.Order)
	if order != "movies.id" {
		order += ", movies.id"
	}

	args = append(args, PageSize, Offset(ParsePage(p.Page), legacyOffset))

	return Query{
		Name: "list_movies",
		SQL: `SELECT movies.id, movies.title, movies.year, movies.rating,
			genres.name AS genre, studios.name AS studio
		FROM movies
		JOIN genres  ON genres.id = movies.genre_id
		JOIN studios ON studios.id = movies.studio_id
		` + where + `
		ORDER BY ` + order + `
		LIMIT ? OFFSET ?`,
		Args: args,
	}
}

// MovieDetail selects one movie with its genre, studio and full cast.
func MovieDetail(movieID string) Query {
	return Query{
		Name: "movie_detail",
		SQL: `SELECT movies.title, movies.year, movies.id, movies.rating,
			genres.name AS genre, studios.name AS studio,
			actors.id AS actor_id, actors.name AS actor,
			cast_members.character AS role
		FROM movies
		JOIN genres       ON genres.id = movies.genre_id
		JOIN studios      ON studios.id = movies.studio_id
		JOIN cast_members ON cast_members.movie_id = movies.id
		JOIN actors       ON actors.id = cast_members.actor_id
		WHERE movies.id = ?`,
		Args: []any{movieID},
	}
}
