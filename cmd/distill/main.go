package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"distill/internal/lemma"
	"distill/internal/norm"
	"distill/internal/pdf"
	"distill/internal/segment"
	"distill/internal/tfidf"
)

var (
	app  = kingpin.New("distill", "consume a pdf of concatenated articles and rank each article's most distinctive terms by tf-idf")
	args = struct {
		input *string
		text  *string
		out   *string
		limit *int
		lang  *string
		start *string
		end   *string
	}{
		input: app.Flag("in", "input pdf to process").Short('i').Required().String(),
		text:  app.Flag("text", "path for the extracted plain text dump").Default("file.txt").String(),
		out:   app.Flag("out", "path for the tf-idf report").Short('o').Default("tf_idf.txt").String(),
		limit: app.Flag("limit", "number of top terms to report per article").Short('n').Default("20").Int(),
		lang:  app.Flag("lang", "language for stopword and lemma lookup").Default("russian").String(),
		start: app.Flag("start", "article start marker pattern").Default(segment.DefaultStart).String(),
		end:   app.Flag("end", "article end marker pattern").Default(segment.DefaultEnd).String(),
	}
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	logrus.Infof("input: %s", *args.input)

	text, err := pdf.Text(*args.input)
	if err != nil {
		logrus.Fatal(err)
	}
	// Keep the raw extraction around for inspection.
	if err := os.WriteFile(*args.text, []byte(text), 0644); err != nil {
		logrus.Fatal(err)
	}

	splitter, err := segment.New(*args.start, *args.end)
	if err != nil {
		logrus.Fatal(err)
	}
	articles := splitter.Articles(text)
	logrus.Infof("articles: %d", len(articles))

	normalizer, err := norm.New(*args.lang)
	if err != nil {
		logrus.Fatal(err)
	}
	stemmer := lemma.Snowball{Language: *args.lang}

	corpus := make([][]string, 0, len(articles))
	for _, article := range articles {
		words, err := normalizer.Tokens(article)
		if err != nil {
			logrus.Fatal(err)
		}
		lemmas, err := lemma.Apply(stemmer, words)
		if err != nil {
			logrus.Fatal(err)
		}
		corpus = append(corpus, lemmas)
	}

	report := tfidf.Format(tfidf.Score(corpus), *args.limit)
	if err := os.WriteFile(*args.out, []byte(report), 0644); err != nil {
		logrus.Fatal(err)
	}
	logrus.Infof("report: %s", *args.out)
}
