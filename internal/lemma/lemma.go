package lemma

import (
	"fmt"

	"github.com/kljensen/snowball"
)

// Lemmatizer reduces a word to a single canonical base form. Implementations
// must be deterministic: the same word always maps to the same form within a
// run.
type Lemmatizer interface {
	Lemma(word string) (string, error)
}

// Snowball implements Lemmatizer with the snowball stemmer for the given
// language ("russian", "english", ...).
type Snowball struct {
	Language string
}

func (s Snowball) Lemma(word string) (string, error) {
	stem, err := snowball.Stem(word, s.Language, true)
	if err != nil {
		return "", fmt.Errorf("stem %q: %w", word, err)
	}
	return stem, nil
}

// Apply maps every token through l, preserving order and multiplicity. The
// first failure aborts the whole batch: dropping a token here would silently
// skew the frequency counts downstream.
func Apply(l Lemmatizer, tokens []string) ([]string, error) {
	lemmas := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		lm, err := l.Lemma(tok)
		if err != nil {
			return nil, err
		}
		lemmas = append(lemmas, lm)
	}
	return lemmas, nil
}
