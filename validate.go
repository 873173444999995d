package confedit

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"

	irpkg "github.com/confedit/go-confedit/ir"
)

type ValidateOption func(*ini.LoadOptions)

// ValidateFormat renders the document and runs it through a strict INI
// grammar check, delegated to gopkg.in/ini.v1. The load options derive
// from the document's dialect; ValidateOptions may override them. Any
// failure from the delegated parser is returned unchanged.
//
// Under a Strict dialect duplicate sections and duplicate option keys
// are rejected here too: the tree can hold them (AddOption appends
// unchecked), and the delegated grammar merges rather than rejects.
//
// The delegated grammar works on single-character delimiters; dialects
// with longer delimiters should supply their own KeyValueDelimiters.
func ValidateFormat(doc *irpkg.Document, opts ...ValidateOption) error {
	syn := doc.Syntax()
	if syn.Strict {
		if err := checkDuplicates(doc); err != nil {
			return err
		}
	}
	loadOpts := ini.LoadOptions{
		KeyValueDelimiters:         strings.Join(syn.Delimiters, ""),
		AllowBooleanKeys:           syn.AllowNoValue,
		AllowShadows:               !syn.Strict,
		AllowNonUniqueSections:     !syn.Strict,
		AllowPythonMultilineValues: true,
		SpaceBeforeInlineComment:   true,
		IgnoreInlineComment:        len(syn.InlineCommentPrefixes) == 0,
	}
	for _, opt := range opts {
		opt(&loadOpts)
	}
	_, err := ini.LoadSources(loadOpts, []byte(doc.String()))
	return err
}

func checkDuplicates(doc *irpkg.Document) error {
	names := map[string]bool{}
	for _, s := range doc.SectionBlocks() {
		if names[s.Name()] {
			return fmt.Errorf("%w: %q", irpkg.ErrDuplicateSection, s.Name())
		}
		names[s.Name()] = true
		keys := map[string]bool{}
		for _, o := range s.OptionBlocks() {
			k := o.Key()
			if keys[k] {
				return fmt.Errorf("%w: %q in section %q", irpkg.ErrDuplicateOption, k, s.Name())
			}
			keys[k] = true
		}
	}
	return nil
}
