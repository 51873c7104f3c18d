package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticlesDiscardsPreamble(t *testing.T) {
	s, err := New(DefaultStart, DefaultEnd)
	require.NoError(t, err)
	articles := s.Articles("noise УДК 004.foo СПИСОК ЛИТЕРАТУРЫ bar УДК 005.baz")
	require.Len(t, articles, 2)
	assert.Equal(t, "foo ", articles[0])
	assert.Equal(t, "baz", articles[1])
}

func TestArticlesNoMarkers(t *testing.T) {
	s, err := New(DefaultStart, DefaultEnd)
	require.NoError(t, err)
	assert.Empty(t, s.Articles("nothing that resembles a heading"))
	assert.Empty(t, s.Articles(""))
}

func TestArticlesTruncatesAtFirstEndMarker(t *testing.T) {
	s, err := New(DefaultStart, DefaultEnd)
	require.NoError(t, err)
	articles := s.Articles("УДК 111.body СПИСОК ЛИТЕРАТУРЫ refs СПИСОК ЛИТЕРАТУРЫ more")
	require.Len(t, articles, 1)
	assert.Equal(t, "body ", articles[0])
}

func TestArticlesKeepsBodyWithoutEndMarker(t *testing.T) {
	s, err := New(DefaultStart, DefaultEnd)
	require.NoError(t, err)
	articles := s.Articles("УДК 123.first whole body УДК 456.second СПИСОК ЛИТЕРАТУРЫ refs")
	require.Len(t, articles, 2)
	assert.Equal(t, "first whole body ", articles[0])
	assert.Equal(t, "second ", articles[1])
}

func TestNewRejectsBadPattern(t *testing.T) {
	_, err := New(`[`, DefaultEnd)
	assert.Error(t, err)
	_, err = New(DefaultStart, `(`)
	assert.Error(t, err)
}
