// Package eval provides expression queries over parsed documents.
//
// Expressions are expr-lang programs evaluated against the document's
// dictionary form, useful for conditional edits:
//
//	ok, err := eval.QueryBool(doc, `has("metadata", "name") && doc["metadata"]["name"] != ""`)
//	if err != nil {
//	    return err
//	}
//	if ok {
//	    doc.Set("metadata", "verified", "1")
//	}
//
// # Related Packages
//
//   - github.com/confedit/go-confedit/ir - The document model
package eval
