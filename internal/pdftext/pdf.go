// Package pdftext pulls line-broken plain text out of PDF files.
package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
	rpdf "rsc.io/pdf"
)

// ErrUnreadable is returned for anything that cannot be opened or parsed as a PDF.
var ErrUnreadable = errors.New("could not read/parse document")

const (
	// lineGap is the vertical distance, in text space units, that starts a new line.
	lineGap = 10.0
	// spaceGap and columnGap are horizontal gaps, as a fraction of the font
	// size, that become a space or a column break ("   ").
	spaceGap  = 0.15
	columnGap = 1.5
)

// Document is the text of a PDF, one line per visual text row.
type Document struct {
	Pages int
	Text  string
}

// FromFile reads and extracts the PDF at path.
func FromFile(path string) (Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return FromBytes(b)
}

// FromBytes extracts text from an in-memory PDF.
func FromBytes(b []byte) (doc Document, err error) {
	// rsc.io/pdf panics on some malformed streams.
	defer func() {
		if r := recover(); r != nil {
			doc = Document{}
			err = fmt.Errorf("%w: %v", ErrUnreadable, r)
		}
	}()

	r, err := rpdf.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	n := r.NumPage()
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		sb.WriteString(assemble(p.Content().Text))
		sb.WriteString("\n")
	}
	return Document{Pages: n, Text: norm.NFKC.String(sb.String())}, nil
}

// assemble joins a page's glyph runs into text, breaking lines whenever the
// baseline moves by more than lineGap.
func assemble(runs []rpdf.Text) string {
	var (
		sb      strings.Builder
		started bool
		prev    rpdf.Text
	)
	for _, t := range runs {
		if t.S == "" {
			continue
		}
		if started {
			if math.Abs(prev.Y-t.Y) > lineGap {
				sb.WriteString("\n")
			} else {
				sb.WriteString(separator(prev, t))
			}
		}
		sb.WriteString(t.S)
		prev = t
		started = true
	}
	return sb.String()
}

func separator(prev, next rpdf.Text) string {
	size := next.FontSize
	if size <= 0 {
		size = prev.FontSize
	}
	if size <= 0 {
		return " "
	}
	gap := next.X - (prev.X + prev.W)
	switch {
	case gap > columnGap*size:
		return "   "
	case gap > spaceGap*size:
		return " "
	default:
		return ""
	}
}
