package model

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieDetailJSONKeepsZeroFields(t *testing.T) {
	t.Parallel()

	d := MovieDetail{
		Movie: MovieInfo{ID: 7, Title: "Untitled", Genre: "Drama", Studio: "Fox"},
		Cast:  []CastEntry{},
	}
	bs, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"movie":{"id":7,"title":"Untitled","year":0,"rating":0,"genre":"Drama","studio":"Fox"},"cast":[]}`, string(bs))
}

func TestMovieDetailJSONEmptyRecord(t *testing.T) {
	t.Parallel()

	bs, err := json.Marshal(MovieDetail{Cast: []CastEntry{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"movie":{},"cast":[]}`, string(bs))

	var back MovieDetail
	require.NoError(t, json.Unmarshal(bs, &back))
	assert.True(t, back.Movie.Empty())
}
