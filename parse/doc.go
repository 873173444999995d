// Package parse parses INI-style text into a block document.
//
// # Usage
//
//	doc, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// Parse with options
//	doc, err := parse.Parse(data,
//	    parse.WithSyntax(syn),
//	    parse.WithFilename("setup.cfg"))
//
// Parsing is a single pass over classified lines and stops at the first
// malformed line; the returned *Error carries the line number and raw
// text, and wraps ErrParse. An unmodified parse result renders back to
// the input byte for byte.
//
// # Related Packages
//
//   - github.com/confedit/go-confedit/ir - The document model
//   - github.com/confedit/go-confedit/token - Line classification
//   - github.com/confedit/go-confedit/encode - Render documents to text
package parse
