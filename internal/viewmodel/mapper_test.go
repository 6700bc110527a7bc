package viewmodel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/movie-catalog/internal/database"
	"github.com/iliyamo/movie-catalog/internal/model"
)

func row(kv ...any) database.Row {
	cols := make([]string, 0, len(kv)/2)
	vals := make([]any, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		cols = append(cols, kv[i].(string))
		vals = append(vals, kv[i+1])
	}
	return database.NewRow(cols, vals)
}

func TestToInt(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   any
		want int
	}{
		{nil, 0},
		{"", 0},
		{"7", 7},
		{" 7 ", 7},
		{"7.9", 7},
		{"8/10", 8},
		{"-3", -3},
		{"abc", 0},
		{[]byte("12"), 12},
		{int64(2010), 2010},
		{int32(5), 5},
		{uint8(9), 9},
		{float64(6.5), 6},
		{true, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, toInt(tc.in), "toInt(%#v)", tc.in)
	}
}

func TestActors(t *testing.T) {
	t.Parallel()

	got := Actors([]database.Row{
		row("id", "1", "name", "Ann"),
		row("id", int64(2), "name", "Bob"),
	})
	want := []model.Actor{{ID: 1, Name: "Ann"}, {ID: 2, Name: "Bob"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Actors() mismatch (-want +got):\n%s", diff)
	}
	assert.NotNil(t, Actors(nil))
}

func TestMoviesCoercesNumbers(t *testing.T) {
	t.Parallel()

	got := Movies([]database.Row{
		row("id", "3", "title", "Heat", "year", "1995", "rating", "7", "genre", "Crime", "studio", "Warner"),
		row("id", "4", "title", "Blank", "year", nil, "rating", "n/a", "genre", "Drama", "studio", "Fox"),
	})
	want := []model.MovieSummary{
		{ID: 3, Title: "Heat", Year: 1995, Rating: 7, Genre: "Crime", Studio: "Warner"},
		{ID: 4, Title: "Blank", Year: 0, Rating: 0, Genre: "Drama", Studio: "Fox"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Movies() mismatch (-want +got):\n%s", diff)
	}
}

func TestActorDetail(t *testing.T) {
	t.Parallel()

	rows := []database.Row{
		row("actor", "Leo", "movie_title", "Inception", "movie_id", "1", "role", "Cobb", "rating", "8"),
		row("actor", "Leo", "movie_title", "Titanic", "movie_id", "2", "role", "Jack", "rating", nil),
	}
	got := ActorDetail(rows)
	want := model.ActorDetail{
		Name: "Leo",
		Movies: []model.ActorCredit{
			{Title: "Inception", ID: 1, Role: "Cobb", Rating: 8},
			{Title: "Titanic", ID: 2, Role: "Jack", Rating: 0},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ActorDetail() mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, got.Movies, len(rows))
}

func TestActorDetailNoRows(t *testing.T) {
	t.Parallel()

	got := ActorDetail(nil)
	assert.Equal(t, "", got.Name)
	assert.NotNil(t, got.Movies)
	assert.Empty(t, got.Movies)
}

func TestMovieDetail(t *testing.T) {
	t.Parallel()

	rows := []database.Row{
		row("title", "Inception", "year", "2010", "id", "1", "rating", "8", "genre", "Sci-Fi", "studio", "Warner",
			"actor_id", "10", "actor", "Leo", "role", "Cobb"),
		row("title", "Inception", "year", "2010", "id", "1", "rating", "8", "genre", "Sci-Fi", "studio", "Warner",
			"actor_id", "11", "actor", "Tom", "role", "Eames"),
	}
	got := MovieDetail(rows)
	want := model.MovieDetail{
		Movie: model.MovieInfo{ID: 1, Title: "Inception", Year: 2010, Rating: 8, Genre: "Sci-Fi", Studio: "Warner"},
		Cast: []model.CastEntry{
			{ActorID: 10, Actor: "Leo", Role: "Cobb"},
			{ActorID: 11, Actor: "Tom", Role: "Eames"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MovieDetail() mismatch (-want +got):\n%s", diff)
	}
}

func TestMovieDetailNoRows(t *testing.T) {
	t.Parallel()

	got := MovieDetail([]database.Row{})
	assert.True(t, got.Movie.Empty())
	assert.NotNil(t, got.Cast)
	assert.Empty(t, got.Cast)
}
