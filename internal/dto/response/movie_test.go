package response

import (
	"testing"
	"time"

	"cinema-catalog/internal/data/entity"
	"cinema-catalog/pkg/locale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFormatter(t *testing.T, name string) *locale.Formatter {
	t.Helper()
	r, err := locale.NewResolver("en-US", []string{"en-US", "ja-JP"})
	require.NoError(t, err)
	return r.Formatter(name)
}

func TestCommentToResponse_FollowsRequestLocale(t *testing.T) {
	c := entity.Comment{
		Author:  "alex",
		Date:    time.Date(2020, time.February, 1, 18, 30, 0, 0, time.UTC),
		Message: "great",
	}

	en := CommentToResponse(c, newFormatter(t, "en-US"))
	require.NotNil(t, en.DateDisplay)
	assert.Contains(t, *en.DateDisplay, "February 1, 2020")

	ja := CommentToResponse(c, newFormatter(t, "ja-JP"))
	require.NotNil(t, ja.DateDisplay)
	assert.Contains(t, *ja.DateDisplay, "2020年")
	assert.NotEqual(t, *en.DateDisplay, *ja.DateDisplay)
	assert.Equal(t, c.Date, ja.Date)
}

func TestMovieToResponse_OmitsMissingAmounts(t *testing.T) {
	zero := 0.0
	price := 12.0
	m := entity.Movie{ID: 1, Title: "Joker", ReleaseDate: "2019-10-02", Price: &price, Budget: &zero}

	got := MovieToDetailResponse(&m, newFormatter(t, "en-US"), nil)
	require.NotNil(t, got.Price)
	assert.Equal(t, "$12.00", *got.Price)
	assert.Nil(t, got.Budget)
	assert.Nil(t, got.Revenue)
	assert.Equal(t, []string{}, got.Genres)
	assert.Empty(t, got.Comments)
}
