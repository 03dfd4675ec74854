package params

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsbench/newsd/pkg/errors"
)

func parse(t *testing.T, target string) (List, error) {
	t.Helper()
	return ParseList(httptest.NewRequest("GET", target, nil))
}

func TestParseListDefaults(t *testing.T) {
	p, err := parse(t, "/api/articles")
	require.NoError(t, err)
	assert.Equal(t, List{Page: 1, PageSize: DefaultPageSize}, p)
}

func TestParseListAllParams(t *testing.T) {
	p, err := parse(t, "/api/articles?page=3&limit=5&category=Science&search=quantum")
	require.NoError(t, err)
	assert.Equal(t, List{Page: 3, PageSize: 5, Category: "Science", Search: "quantum"}, p)
}

func TestParseListClampsPageSize(t *testing.T) {
	p, err := parse(t, "/api/articles?limit=1000")
	require.NoError(t, err)
	assert.Equal(t, MaxPageSize, p.PageSize)

	p, err = parse(t, "/api/articles?limit=0")
	require.NoError(t, err)
	assert.Equal(t, 1, p.PageSize)

	p, err = parse(t, "/api/articles?limit=-5")
	require.NoError(t, err)
	assert.Equal(t, 1, p.PageSize)
}

func TestParseListMalformedNumbersFallBack(t *testing.T) {
	p, err := parse(t, "/api/articles?page=abc&limit=xyz")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
}

func TestParseListRejectsNonPositivePage(t *testing.T) {
	for _, target := range []string{"/api/articles?page=0", "/api/articles?page=-1"} {
		_, err := parse(t, target)
		require.Error(t, err, target)
		assert.True(t, errors.Is(err, errors.ErrInvalidInput))
		assert.Equal(t, "Page number must be greater than 0", err.Error())
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(1, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 4, TotalPages(80, 20))
	assert.Equal(t, 16, TotalPages(80, 5))
}
