package ir

import (
	"fmt"
	"strings"

	"github.com/confedit/go-confedit/format"
)

func defaultSyntax() *format.Syntax { return format.Default() }

// Document is the root of the block tree: an ordered container of
// sections, comments and blank runs, with a mapping facade keyed by
// section name. It owns everything it transitively holds and has no
// owner itself.
//
// A document is not safe for concurrent mutation; clone it instead of
// sharing one tree across goroutines.
type Document struct {
	blocks []Block
	syntax *format.Syntax
	xform  func(string) string
}

// SectionItem is one (name, section) pair in container order.
type SectionItem struct {
	Name    string
	Section *Section
}

func NewDocument() *Document {
	return &Document{syntax: format.Default()}
}

// Syntax returns the dialect the document was parsed with (or Default).
func (d *Document) Syntax() *format.Syntax { return d.syntax }

func (d *Document) SetSyntax(syn *format.Syntax) {
	if syn == nil {
		syn = format.Default()
	}
	d.syntax = syn
}

// OptionXform normalizes an option key for lookup. The default folds to
// lower case, the common INI convention.
func (d *Document) OptionXform(key string) string {
	if d.xform != nil {
		return d.xform(key)
	}
	return strings.ToLower(key)
}

// SetOptionXform overrides key normalization. Pass nil to restore the
// default.
func (d *Document) SetOptionXform(f func(string) string) { d.xform = f }

func (d *Document) String() string {
	var sb strings.Builder
	for _, b := range d.blocks {
		sb.WriteString(b.String())
	}
	return sb.String()
}

func (d *Document) Equal(o *Document) bool {
	if o == nil || len(d.blocks) != len(o.blocks) {
		return false
	}
	for i, b := range d.blocks {
		if !b.Equal(o.blocks[i]) {
			return false
		}
	}
	return true
}

// Clone returns an independent deep copy of the whole tree.
func (d *Document) Clone() *Document {
	c := &Document{xform: d.xform}
	if d.syntax != nil {
		syn := *d.syntax
		c.syntax = &syn
	}
	c.blocks = make([]Block, len(d.blocks))
	for i, b := range d.blocks {
		cb := b.cloneBlock()
		cb.setContainer(c)
		c.blocks[i] = cb
	}
	return c
}

// Container

func (d *Document) Blocks() []Block { return d.blocks }

func (d *Document) Len() int { return len(d.blocks) }

// Insert places a detached section, comment or space block at idx. A
// section whose name already exists is rejected. On error the document
// is unchanged.
func (d *Document) Insert(idx int, b Block) error {
	if err := attachable(b); err != nil {
		return err
	}
	switch b.Kind() {
	case KindSection, KindComment, KindSpace:
	default:
		return fmt.Errorf("%w: document cannot hold %s", ErrValue, b.Kind())
	}
	if s, ok := b.(*Section); ok {
		if d.HasSection(s.Name()) {
			return fmt.Errorf("%w: %q", ErrDuplicateSection, s.Name())
		}
	}
	if err := spliceIn(&d.blocks, idx, b); err != nil {
		return err
	}
	b.setContainer(d)
	return nil
}

func (d *Document) Append(b Block) error { return d.Insert(len(d.blocks), b) }

// Remove detaches the block at idx.
func (d *Document) Remove(idx int) error {
	b, err := spliceOut(&d.blocks, idx)
	if err != nil {
		return err
	}
	b.setContainer(nil)
	return nil
}

func (d *Document) syntaxOf() *format.Syntax { return d.Syntax() }

func (d *Document) lastBlock() Block {
	if len(d.blocks) == 0 {
		return nil
	}
	return d.blocks[len(d.blocks)-1]
}

// Parser-facing appends, sharing the run-merging rule with Section.

func (d *Document) AddComment(raw string) *Document {
	if c, ok := d.lastBlock().(*Comment); ok {
		c.AddLine(raw)
		return d
	}
	c := NewComment().AddLine(raw)
	c.setContainer(d)
	d.blocks = append(d.blocks, c)
	return d
}

func (d *Document) AddSpace(raw string) *Document {
	if sp, ok := d.lastBlock().(*Space); ok {
		sp.AddLine(raw)
		return d
	}
	sp := NewSpace().AddLine(raw)
	sp.setContainer(d)
	d.blocks = append(d.blocks, sp)
	return d
}

// Mapping facade

func (d *Document) sectionIdx(name string) int {
	return Index(d, func(b Block) bool {
		s, ok := b.(*Section)
		return ok && s.Name() == name
	})
}

// AddSection appends a section. v is either a name for a fresh section
// or a detached *Section; anything else is ErrValue. A name collision is
// ErrDuplicateSection.
func (d *Document) AddSection(v any) (*Section, error) {
	var s *Section
	switch x := v.(type) {
	case string:
		s = NewSection(x)
	case *Section:
		s = x
	default:
		return nil, fmt.Errorf("%w: want section name or *Section, got %T", ErrValue, v)
	}
	if err := d.Append(s); err != nil {
		return nil, err
	}
	return s, nil
}

// GetSection returns the section named name, or ErrNoSection.
func (d *Document) GetSection(name string) (*Section, error) {
	if s, ok := d.LookupSection(name); ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNoSection, name)
}

// LookupSection is the comma-ok variant of GetSection.
func (d *Document) LookupSection(name string) (*Section, bool) {
	if i := d.sectionIdx(name); i >= 0 {
		return d.blocks[i].(*Section), true
	}
	return nil, false
}

func (d *Document) HasSection(name string) bool {
	return d.sectionIdx(name) >= 0
}

func (d *Document) HasOption(section, option string) bool {
	s, ok := d.LookupSection(section)
	return ok && s.HasOption(option)
}

// Get returns the option stored under section/option. A missing section
// and a missing option are both errors here; use LookupOption when a
// missing option should fall back instead.
func (d *Document) Get(section, option string) (*Option, error) {
	s, err := d.GetSection(section)
	if err != nil {
		return nil, err
	}
	return s.Get(option)
}

// LookupOption is the fallback-friendly two-level lookup. A missing
// section is always an error; a missing option reports ok=false and
// leaves the fallback choice, nil included, to the caller.
func (d *Document) LookupOption(section, option string) (*Option, bool, error) {
	s, err := d.GetSection(section)
	if err != nil {
		return nil, false, err
	}
	o, ok := s.Lookup(option)
	return o, ok, nil
}

// Set assigns value under section/option, creating the option when
// absent. The section must exist.
func (d *Document) Set(section, option, value string) error {
	s, err := d.GetSection(section)
	if err != nil {
		return err
	}
	s.Set(option, value)
	return nil
}

// SetSection replaces the section stored under name, keeping its
// position, or renames s to name and appends it when absent. s must be
// detached.
func (d *Document) SetSection(name string, s *Section) error {
	if err := attachable(s); err != nil {
		return err
	}
	idx := d.sectionIdx(name)
	if idx < 0 {
		s.SetName(name)
		return d.Append(s)
	}
	if s.Name() != name && d.HasSection(s.Name()) {
		return fmt.Errorf("%w: %q", ErrDuplicateSection, s.Name())
	}
	old := d.blocks[idx]
	old.setContainer(nil)
	d.blocks[idx] = s
	s.setContainer(d)
	return nil
}

// DeleteSection removes the section named name, or returns ErrNoSection.
func (d *Document) DeleteSection(name string) error {
	idx := d.sectionIdx(name)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrNoSection, name)
	}
	return d.Remove(idx)
}

// RemoveSection removes the named section, reporting whether it existed.
func (d *Document) RemoveSection(name string) bool {
	return d.DeleteSection(name) == nil
}

// RemoveOption removes section/option, reporting whether the option
// existed. A missing section is an error.
func (d *Document) RemoveOption(section, option string) (bool, error) {
	s, err := d.GetSection(section)
	if err != nil {
		return false, err
	}
	if !s.HasOption(option) {
		return false, nil
	}
	return true, s.Delete(option)
}

// SectionBlocks returns only the section blocks, in container order.
func (d *Document) SectionBlocks() []*Section {
	var res []*Section
	for _, b := range d.blocks {
		if s, ok := b.(*Section); ok {
			res = append(res, s)
		}
	}
	return res
}

// Sections returns the section names in container order.
func (d *Document) Sections() []string {
	secs := d.SectionBlocks()
	res := make([]string, len(secs))
	for i, s := range secs {
		res[i] = s.Name()
	}
	return res
}

// Options returns the option keys of the named section.
func (d *Document) Options(section string) ([]string, error) {
	s, err := d.GetSection(section)
	if err != nil {
		return nil, err
	}
	return s.Options(), nil
}

// Items returns (name, section) pairs in container order.
func (d *Document) Items() []SectionItem {
	secs := d.SectionBlocks()
	res := make([]SectionItem, len(secs))
	for i, s := range secs {
		res[i] = SectionItem{Name: s.Name(), Section: s}
	}
	return res
}

// ItemsIn returns (key, option) pairs of the named section.
func (d *Document) ItemsIn(section string) ([]OptionItem, error) {
	s, err := d.GetSection(section)
	if err != nil {
		return nil, err
	}
	return s.Items(), nil
}

// ToDict maps section names to their option dictionaries.
func (d *Document) ToDict() map[string]map[string]any {
	res := make(map[string]map[string]any)
	for _, s := range d.SectionBlocks() {
		res[s.Name()] = s.ToDict()
	}
	return res
}

// InsertAt returns a builder anchored at idx inside this document.
func (d *Document) InsertAt(idx int) *BlockBuilder {
	return &BlockBuilder{target: d, idx: idx}
}
