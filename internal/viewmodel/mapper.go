// Package viewmodel turns raw catalog rows into the display structures of
// package model. Numeric columns are coerced with a zero default; no other
// validation happens here.
package viewmodel

import (
	"github.com/iliyamo/movie-catalog/internal/database"
	"github.com/iliyamo/movie-catalog/internal/model"
)

// Actors maps actor index rows (id, name).
func Actors(rows []database.Row) []model.Actor {
	out := make([]model.Actor, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.Actor{
			ID:   intField(r, "id"),
			Name: r.Text("name"),
		})
	}
	return out
}

// ActorCredits maps cast credit rows (movie_title, movie_id, role, rating).
func ActorCredits(rows []database.Row) []model.ActorCredit {
	out := make([]model.ActorCredit, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.ActorCredit{
			Title:  r.Text("movie_title"),
			ID:     intField(r, "movie_id"),
			Role:   r.Text("role"),
			Rating: intField(r, "rating"),
		})
	}
	return out
}

// ActorDetail takes the display name from the first row and maps every row
// as a credit.
func ActorDetail(rows []database.Row) model.ActorDetail {
	d := model.ActorDetail{Movies: ActorCredits(rows)}
	if len(rows) > 0 {
		d.Name = rows[0].Text("actor")
	}
	return d
}

// Movies maps movie list rows.
func Movies(rows []database.Row) []model.MovieSummary {
	out := make([]model.MovieSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.MovieSummary{
			ID:     intField(r, "id"),
			Title:  r.Text("title"),
			Year:   intField(r, "year"),
			Rating: intField(r, "rating"),
			Genre:  r.Text("genre"),
			Studio: r.Text("studio"),
		})
	}
	return out
}

// MovieDetail reads the movie's scalar fields from the first row and one
// cast entry from every row. No rows gives an empty movie and empty cast.
func MovieDetail(rows []database.Row) model.MovieDetail {
	d := model.MovieDetail{Cast: make([]model.CastEntry, 0, len(rows))}
	if len(rows) > 0 {
		first := rows[0]
		d.Movie = model.MovieInfo{
			ID:     intField(first, "id"),
			Title:  first.Text("title"),
			Year:   intField(first, "year"),
			Rating: intField(first, "rating"),
			Genre:  first.Text("genre"),
			Studio: first.Text("studio"),
		}
	}
	for _, r := range rows {
		d.Cast = append(d.Cast, model.CastEntry{
			ActorID: intField(r, "actor_id"),
			Actor:   r.Text("actor"),
			Role:    r.Text("role"),
		})
	}
	return d
}
