package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/confedit/go-confedit/ir"
)

type Env map[string]any

// NewEnv builds the evaluation environment for a document. The
// dictionary form is reachable as doc["section"]["key"], which also
// covers dotted section names; helpers cover existence checks:
//
//	has("section", "key")
//	hasSection("section")
//	value("section", "key")  // nil when absent or valueless
//	sections()
func NewEnv(doc *ir.Document) Env {
	dict := map[string]any{}
	for name, sec := range doc.ToDict() {
		m := map[string]any{}
		for k, v := range sec {
			m[k] = v
		}
		dict[name] = m
	}
	return Env{
		"doc": dict,
		"has": func(section, option string) bool {
			return doc.HasOption(section, option)
		},
		"hasSection": func(name string) bool {
			return doc.HasSection(name)
		},
		"value": func(section, option string) any {
			o, ok, err := doc.LookupOption(section, option)
			if err != nil || !ok || !o.HasValue() {
				return nil
			}
			return o.Value()
		},
		"sections": func() []string {
			return doc.Sections()
		},
	}
}

// Query compiles and runs an expression against the document.
func Query(doc *ir.Document, src string) (any, error) {
	program, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	res, err := vm.Run(program, NewEnv(doc))
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", src, err)
	}
	return res, nil
}

// QueryBool is Query for predicate expressions.
func QueryBool(doc *ir.Document, src string) (bool, error) {
	res, err := Query(doc, src)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%q is not a predicate: got %T", src, res)
	}
	return b, nil
}
