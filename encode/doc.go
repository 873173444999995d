// Package encode writes block documents to text.
//
// # Usage
//
//	// Plain output, byte-identical to doc.String()
//	err := encode.Encode(doc, os.Stdout)
//
//	// Colorized for terminals
//	err := encode.Encode(doc, os.Stdout, encode.AutoColors(os.Stdout))
//
//	// Ordered YAML export of the dictionary form
//	out, err := encode.ToYAML(doc)
//
// # Related Packages
//
//   - github.com/confedit/go-confedit/ir - The document model
//   - github.com/confedit/go-confedit/parse - Parse text to a document
package encode
