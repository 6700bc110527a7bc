package render

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsesEveryPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	for _, name := range []string{ActorsIndex, ActorsShow, MoviesIndex, MoviesShow, Error} {
		assert.Contains(t, r.pages, name)
	}
}

func TestRenderUsesLayout(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, Error, struct{ Message string }{"database error"}, nil))
	out := buf.String()
	assert.Contains(t, out, "<title>Error | Movie Catalog</title>")
	assert.Contains(t, out, `<p class="error">database error</p>`)
	assert.Contains(t, out, `<a href="/actors">Actors</a>`)
}

func TestRenderEscapesText(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, Error, struct{ Message string }{"<script>"}, nil))
	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestRenderUnknownPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	assert.Error(t, r.Render(&bytes.Buffer{}, "nope", nil, nil))
}

func TestJSONSerializer(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, JSONSerializer{}.Serialize(c, map[string]int{"page": 2}, ""))
	assert.JSONEq(t, `{"page":2}`, rec.Body.String())

	c = e.NewContext(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad")), httptest.NewRecorder())
	var v map[string]any
	var he *echo.HTTPError
	require.ErrorAs(t, JSONSerializer{}.Deserialize(c, &v), &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}
