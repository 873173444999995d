// Package format describes INI dialect parameters.
//
// # Usage
//
//	syn := format.Default()
//	syn.AllowNoValue = true
//	doc, err := parse.Parse(data, parse.WithSyntax(syn))
//
// The zero dialect is invalid; start from Default().
//
// # Related Packages
//
//   - github.com/confedit/go-confedit/parse - Parse text to a document
//   - github.com/confedit/go-confedit/token - Line classification
package format
