package tfidf

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
)

// Term is one scored lemma of an article.
type Term struct {
	Lemma string
	Score float64
}

// DocumentFrequency counts, for every distinct lemma in the corpus, the
// number of articles containing it at least once. Repeats within one article
// do not increase the count.
func DocumentFrequency(corpus [][]string) map[string]int {
	df := make(map[string]int)
	for _, article := range corpus {
		seen := make(map[string]struct{}, len(article))
		for _, w := range article {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			df[w]++
		}
	}
	return df
}

// Score ranks each article's lemmas by tf-idf: tf is the lemma's share of the
// article's word count, idf the plain ratio of corpus size to document
// frequency (no logarithm, no smoothing). Articles are scored concurrently;
// each depends only on its own lemma list and the read-only frequency table,
// so the result is deterministic. An article left empty by filtering gets a
// nil term list.
func Score(corpus [][]string) [][]Term {
	df := DocumentFrequency(corpus)
	articles := len(corpus)

	scored := make([][]Term, articles)
	var wg sync.WaitGroup
	for i, article := range corpus {
		i, article := i, article
		wg.Add(1)
		go func() {
			defer wg.Done()
			scored[i] = scoreArticle(article, df, articles)
		}()
	}
	wg.Wait()
	return scored
}

func scoreArticle(lemmas []string, df map[string]int, articles int) []Term {
	if len(lemmas) == 0 {
		return nil
	}
	counts := make(map[string]int, len(lemmas))
	order := make([]string, 0, len(lemmas))
	for _, w := range lemmas {
		if _, ok := counts[w]; !ok {
			order = append(order, w)
		}
		counts[w]++
	}

	words := float64(len(lemmas))
	terms := make([]Term, 0, len(order))
	for _, w := range order {
		tf := float64(counts[w]) / words
		idf := float64(articles) / float64(df[w])
		terms = append(terms, Term{Lemma: w, Score: tf * idf})
	}
	// Stable sort on score alone: equal scores keep first-seen order.
	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].Score > terms[j].Score
	})
	return terms
}

// Format renders the report: a 1-based "Article N" header per article,
// followed by its top limit terms, one "lemma: score" line each, scores
// rounded to 5 decimal places.
func Format(scored [][]Term, limit int) string {
	var b strings.Builder
	for i, terms := range scored {
		fmt.Fprintf(&b, "\nArticle %d\n", i+1)
		if len(terms) > limit {
			terms = terms[:limit]
		}
		for _, t := range terms {
			fmt.Fprintf(&b, "%s: %g\n", t.Lemma, math.Round(t.Score*1e5)/1e5)
		}
	}
	return b.String()
}
