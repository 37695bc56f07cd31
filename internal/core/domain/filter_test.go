package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesSearch(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  bool
	}{
		{"foobar", "  Foo", true},
		{"  FooBar ", "bar", true},
		{"foobar", "", true},
		{"foobar", "   ", true},
		{"Кроссовки весна", "ВЕСНА", true},
		{"foobar", "baz", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MatchesSearch(tc.name, tc.query), "%q ~ %q", tc.name, tc.query)
	}
}

func TestFilter(t *testing.T) {
	buckets := SplitByStatus([]Campaign{
		{ID: 1, Name: "Summer sale", StatusID: StatusCodeRunning},
		{ID: 2, Name: "summer boots", StatusID: StatusCodePaused},
		{ID: 3, Name: "Winter", StatusID: StatusCodeRunning},
	})

	assert.Equal(t, []int64{1, 2}, ids(Filter(buckets, FilterAll, "SUMMER")))
	assert.Equal(t, []int64{1}, ids(Filter(buckets, FilterActive, "summer")))
	assert.Empty(t, Filter(buckets, FilterArchived, ""))
}

func TestParseStatusFilter(t *testing.T) {
	f, err := ParseStatusFilter("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, f)

	f, err = ParseStatusFilter("Paused")
	require.NoError(t, err)
	assert.Equal(t, FilterPaused, f)
	assert.Equal(t, "Остановленные", f.Label())

	_, err = ParseStatusFilter("deleted")
	assert.Error(t, err)
}
