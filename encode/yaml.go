package encode

import (
	"github.com/goccy/go-yaml"

	"github.com/confedit/go-confedit/ir"
)

// ToYAML renders the document's dictionary form as YAML, keeping
// container order for sections and options. Valueless keys come out as
// nulls.
func ToYAML(doc *ir.Document) ([]byte, error) {
	root := make(yaml.MapSlice, 0, len(doc.Items()))
	for _, si := range doc.Items() {
		sec := make(yaml.MapSlice, 0, len(si.Section.Items()))
		for _, oi := range si.Section.Items() {
			var v any
			if oi.Option.HasValue() {
				v = oi.Option.Value()
			}
			sec = append(sec, yaml.MapItem{Key: oi.Key, Value: v})
		}
		root = append(root, yaml.MapItem{Key: si.Name, Value: sec})
	}
	return yaml.Marshal(root)
}
