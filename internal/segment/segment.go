package segment

import (
	"fmt"
	"regexp"
)

// Marker patterns for the article conventions this tool was built around:
// articles open with a UDC classification code heading and close with a
// references-section heading.
const (
	DefaultStart = `УДК \d\d\d\.`
	DefaultEnd   = `СПИСОК ЛИТЕРАТУРЫ`
)

// Splitter carves a document's raw text into article bodies.
type Splitter struct {
	start *regexp.Regexp
	end   *regexp.Regexp
}

func New(start, end string) (*Splitter, error) {
	s, err := regexp.Compile(start)
	if err != nil {
		return nil, fmt.Errorf("start marker: %w", err)
	}
	e, err := regexp.Compile(end)
	if err != nil {
		return nil, fmt.Errorf("end marker: %w", err)
	}
	return &Splitter{start: s, end: e}, nil
}

// Articles splits text on every start-marker match and returns the article
// bodies in document order. The first segment precedes the first marker and
// is not an article; it is discarded. Each body is truncated at the first
// end-marker match, or kept whole when the marker is absent. No markers at
// all yields nil.
func (s *Splitter) Articles(text string) []string {
	parts := s.start.Split(text, -1)
	if len(parts) < 2 {
		return nil
	}
	articles := make([]string, 0, len(parts)-1)
	for _, body := range parts[1:] {
		if loc := s.end.FindStringIndex(body); loc != nil {
			body = body[:loc[0]]
		}
		articles = append(articles, body)
	}
	return articles
}
