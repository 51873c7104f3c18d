package pdf

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"
)

// Text extracts the plain text of every page of the PDF at path,
// concatenated in page order.
func Text(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	var buf bytes.Buffer
	fonts := make(map[string]*pdf.Font)
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		for _, name := range p.Fonts() { // cache fonts so we don't continually parse charmap
			if _, ok := fonts[name]; !ok {
				logrus.Debugf("font: %s %s", name, p.Font(name).BaseFont())
				f := p.Font(name)
				fonts[name] = &f
			}
		}
		text, err := pageText(p, fonts)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}

// pageText interprets the page's content stream and collects every shown
// text string, decoded with the font active at the time it is shown.
func pageText(p pdf.Page, fonts map[string]*pdf.Font) (result string, err error) {
	// The underlying interpreter panics on malformed streams.
	defer func() {
		if r := recover(); r != nil {
			result = ""
			err = errors.New(fmt.Sprint(r))
		}
	}()

	var enc pdf.TextEncoding = &nopEncoder{}
	var text bytes.Buffer
	show := func(s string) {
		for _, ch := range enc.Decode(s) {
			text.WriteRune(ch)
		}
	}

	pdf.Interpret(p.V.Key("Contents"), func(stk *pdf.Stack, op string) {
		n := stk.Len()
		args := make([]pdf.Value, n)
		for i := n - 1; i >= 0; i-- {
			args[i] = stk.Pop()
		}

		switch op {
		case "T*": // move to start of next line
			show("\n")
		case "Tf": // set text font and size
			if len(args) != 2 {
				logrus.Warnf("bad Tf operator")
				return
			}
			if font, ok := fonts[args[0].Name()]; ok {
				enc = font.Encoder()
			} else {
				enc = &nopEncoder{}
			}
		case "\"": // set spacing, move to next line, and show text
			if len(args) != 3 {
				logrus.Warnf("bad \" operator")
				return
			}
			show(args[2].RawString())
		case "'": // move to next line and show text
			if len(args) != 1 {
				logrus.Warnf("bad ' operator")
				return
			}
			show(args[0].RawString())
		case "Tj": // show text
			if len(args) != 1 {
				logrus.Warnf("bad Tj operator")
				return
			}
			show(args[0].RawString())
		case "TJ": // show text, allowing individual glyph positioning
			v := args[0]
			for i := 0; i < v.Len(); i++ {
				if x := v.Index(i); x.Kind() == pdf.String {
					show(x.RawString())
				}
			}
		}
	})
	return text.String(), nil
}

type nopEncoder struct{}

func (e *nopEncoder) Decode(raw string) string {
	return raw
}
