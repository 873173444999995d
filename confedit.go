// Package confedit edits INI-style configuration text without losing a
// byte of it: parsing yields a block document that renders back to the
// original text exactly, and mutations rewrite only the blocks they
// touch.
//
//	doc, err := confedit.ParseString(src)
//	if err != nil {
//	    return err
//	}
//	doc.Set("metadata", "version", "1.2.0")
//	out := doc.String()
//
// The heavy lifting lives in the subpackages; this package bundles the
// common entry points.
package confedit

import (
	"github.com/confedit/go-confedit/ir"
	"github.com/confedit/go-confedit/parse"
)

func Parse(d []byte, opts ...parse.ParseOption) (*ir.Document, error) {
	return parse.Parse(d, opts...)
}

func ParseString(s string, opts ...parse.ParseOption) (*ir.Document, error) {
	return parse.ParseString(s, opts...)
}

func MustParse(s string, opts ...parse.ParseOption) *ir.Document {
	doc, err := parse.ParseString(s, opts...)
	if err != nil {
		panic(err)
	}
	return doc
}
