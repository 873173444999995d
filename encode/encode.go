package encode

import (
	"io"
	"strings"

	"github.com/confedit/go-confedit/ir"
	"github.com/confedit/go-confedit/token"
)

type EncState struct {
	Color func(token.Kind, string) string
}

// Encode writes the document's text to w. Without options the output is
// exactly doc.String(); with colors enabled each line is classified
// against the document's dialect and wrapped in the matching color.
// Encoding never alters the document.
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	text := doc.String()
	if es.Color == nil {
		_, err := io.WriteString(w, text)
		return err
	}
	for _, ln := range token.Classify([]byte(text), doc.Syntax()) {
		raw := ln.Raw
		nl := ""
		if strings.HasSuffix(raw, "\n") {
			raw, nl = raw[:len(raw)-1], "\n"
		}
		if _, err := io.WriteString(w, es.Color(ln.Kind, raw)+nl); err != nil {
			return err
		}
	}
	return nil
}
