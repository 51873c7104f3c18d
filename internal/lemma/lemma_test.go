package lemma

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowballEnglish(t *testing.T) {
	s := Snowball{Language: "english"}
	lm, err := s.Lemma("running")
	require.NoError(t, err)
	assert.Equal(t, "run", lm)
}

func TestSnowballRussianCollapsesInflections(t *testing.T) {
	s := Snowball{Language: "russian"}
	a, err := s.Lemma("словами")
	require.NoError(t, err)
	b, err := s.Lemma("словам")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSnowballDeterministic(t *testing.T) {
	s := Snowball{Language: "russian"}
	first, err := s.Lemma("журналами")
	require.NoError(t, err)
	second, err := s.Lemma("журналами")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSnowballUnknownLanguage(t *testing.T) {
	s := Snowball{Language: "klingon"}
	_, err := s.Lemma("word")
	assert.Error(t, err)
}

type stub map[string]string

func (s stub) Lemma(word string) (string, error) {
	lm, ok := s[word]
	if !ok {
		return "", errors.New("no parse for " + word)
	}
	return lm, nil
}

func TestApplyPreservesOrderAndMultiplicity(t *testing.T) {
	lemmas, err := Apply(stub{"cats": "cat", "ran": "run"}, []string{"cats", "ran", "cats"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "run", "cat"}, lemmas)
}

func TestApplyPropagatesFailure(t *testing.T) {
	_, err := Apply(stub{"ok": "ok"}, []string{"ok", "mystery"})
	assert.Error(t, err)
}
