// Package repository contains data access logic separated from HTTP handlers.
// This file defines the CatalogRepo which serves the read-only catalog:
// every method builds one query, runs it through the store and shapes the
// rows into view models. A lookup that matches nothing yields an empty view
// model, never an error.
package repository

import (
	"context"

	"github.com/iliyamo/movie-catalog/internal/database"
	"github.com/iliyamo/movie-catalog/internal/model"
	"github.com/iliyamo/movie-catalog/internal/query"
	"github.com/iliyamo/movie-catalog/internal/viewmodel"
)

// Querier executes a single catalog query. *database.Store implements it.
type Querier interface {
	Query(ctx context.Context, q query.Query) ([]database.Row, error)
}

// CatalogRepo encapsulates the catalog queries.
type CatalogRepo struct {
	store        Querier
	legacyOffset bool // reproduce the historic page offset (page 2 starts at row 19)
}

// NewCatalogRepo constructs a CatalogRepo on top of the given store.
func NewCatalogRepo(store Querier, legacyOffset bool) *CatalogRepo {
	return &CatalogRepo{store: store, legacyOffset: legacyOffset}
}

// ListActors returns every actor ordered by name.
func (r *CatalogRepo) ListActors(ctx context.Context) ([]model.Actor, error) {
	rows, err := r.store.Query(ctx, query.ListActors())
	if err != nil {
		return nil, err
	}
	return viewmodel.Actors(rows), nil
}

// GetActor returns the actor's display name and credited movies. The id is
// passed to the store untouched.
func (r *CatalogRepo) GetActor(ctx context.Context, id string) (model.ActorDetail, error) {
	rows, err := r.store.Query(ctx, query.ActorDetail(id))
	if err != nil {
		return model.ActorDetail{}, err
	}
	return viewmodel.ActorDetail(rows), nil
}

// ListMovies returns one page of movies filtered and ordered per p.
func (r *CatalogRepo) ListMovies(ctx context.Context, p query.MovieListParams) (model.MovieList, error) {
	rows, err := r.store.Query(ctx, query.ListMovies(p, r.legacyOffset))
	if err != nil {
		return model.MovieList{}, err
	}
	return model.MovieList{
		Movies: viewmodel.Movies(rows),
		Page:   query.ParsePage(p.Page),
		Query:  p.Search,
		Order:  query.SortKey(p.Order),
	}, nil
}

// GetMovie returns a movie's scalar fields and cast.
func (r *CatalogRepo) GetMovie(ctx context.Context, id string) (model.MovieDetail, error) {
	rows, err := r.store.Query(ctx, query.MovieDetail(id))
	if err != nil {
		return model.MovieDetail{}, err
	}
	return viewmodel.MovieDetail(rows), nil
}
