package norm

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bbalet/stopwords"
	"github.com/jdkato/prose/v3"
)

// ISO codes for the stopword lists, keyed by snowball language name.
var isoCodes = map[string]string{
	"english": "en",
	"russian": "ru",
}

// Normalizer turns an article body into a clean, ordered word list:
// lowercase, tokenize, drop stopwords, drop anything that isn't a plain
// latin/cyrillic word.
type Normalizer struct {
	iso string
}

func New(lang string) (*Normalizer, error) {
	iso, ok := isoCodes[lang]
	if !ok {
		return nil, fmt.Errorf("unsupported language %q", lang)
	}
	return &Normalizer{iso: iso}, nil
}

var (
	// A token survives only if it has at least one letter or hyphen and
	// nothing outside letters and hyphens. Digits, punctuation, and mixed
	// alphanumerics all fail one of the two.
	wordLike = regexp.MustCompile(`[a-zA-Zа-яА-Я-]`)
	junk     = regexp.MustCompile(`[^a-zA-Zа-яА-Я-]`)
)

// Tokens normalizes one article body. Order is preserved and duplicates are
// retained; frequency matters downstream.
func (n *Normalizer) Tokens(article string) ([]string, error) {
	doc, err := prose.NewDocument(strings.ToLower(article),
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
		// Rejoin words hyphenated across line breaks before tokenizing.
		prose.UsingTokenizer(prose.NewIterTokenizer(prose.UsingSanitizer(strings.NewReplacer("-\n", "")))),
	)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	var words []string
	for _, tok := range doc.Tokens() {
		if n.isStopWord(tok.Text) {
			continue
		}
		if !wordLike.MatchString(tok.Text) || junk.MatchString(tok.Text) {
			continue
		}
		words = append(words, tok.Text)
	}
	return words, nil
}

func (n *Normalizer) isStopWord(word string) bool {
	return strings.TrimSpace(stopwords.CleanString(word, n.iso, false)) == ""
}
