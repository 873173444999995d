// Package token classifies raw INI-style text into typed lines.
//
// Classification is a single pass and context-free; the parse package
// turns the classified lines into a document tree and applies the
// context-dependent rules (which continuations are legal, duplicate
// detection, and so on).
//
// # Usage
//
//	lines := token.Classify(data, format.Default())
//	for _, ln := range lines {
//	    switch ln.Kind {
//	    case token.KindSectionHeader:
//	        // ln.Name
//	    case token.KindOption:
//	        // ln.Key, ln.Delim, ln.Value
//	    }
//	}
//
// # Related Packages
//
//   - github.com/confedit/go-confedit/format - Dialect parameters
//   - github.com/confedit/go-confedit/parse - Document construction
package token
