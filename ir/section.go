package ir

import (
	"fmt"
	"strings"

	"github.com/confedit/go-confedit/format"
)

// Section is a named block holding options, comments and blank runs.
// It is itself a block inside a Document. A parsed section renders its
// captured header line verbatim; renaming the section (or constructing
// one programmatically) marks it updated, and an updated header renders
// synthesized as "[name]". The flag is sticky: renaming back to the
// original name still renders synthesized.
type Section struct {
	meta
	name       string
	header     string // captured raw header line, "" when synthesized
	headerless bool
	updated    bool
	blocks     []Block
}

// OptionItem is one (key, option) pair in container order.
type OptionItem struct {
	Key    string
	Option *Option
}

// NewSection creates a detached section with a synthesized header.
func NewSection(name string) *Section {
	return &Section{name: name, updated: true}
}

// NewRawSection captures a section header line as written in source.
// Parser facing.
func NewRawSection(name, raw string) *Section {
	return &Section{name: name, header: raw}
}

// NewHeaderlessSection creates a section that renders no header line,
// holding option lines that precede any header in the source. Renaming
// it turns it into an ordinary synthesized section. Parser facing.
func NewHeaderlessSection(name string) *Section {
	return &Section{name: name, headerless: true}
}

func (s *Section) Kind() Kind { return KindSection }

func (s *Section) Name() string { return s.name }

// SetName renames the section and forces header re-synthesis.
func (s *Section) SetName(name string) {
	s.name = name
	s.updated = true
}

func (s *Section) String() string {
	var sb strings.Builder
	switch {
	case s.headerless && !s.updated:
	case s.updated || s.header == "":
		sb.WriteString("[" + s.name + "]\n")
	default:
		sb.WriteString(s.header)
	}
	for _, b := range s.blocks {
		sb.WriteString(b.String())
	}
	return sb.String()
}

func (s *Section) Equal(b Block) bool {
	os, ok := b.(*Section)
	if !ok || s.name != os.name || len(s.blocks) != len(os.blocks) {
		return false
	}
	for i, sb := range s.blocks {
		if !sb.Equal(os.blocks[i]) {
			return false
		}
	}
	return true
}

// Document returns the owning document, nil when detached.
func (s *Section) Document() *Document {
	d, _ := s.owner.(*Document)
	return d
}

func (s *Section) AddBefore() (*BlockBuilder, error) { return builderAround(s, false) }
func (s *Section) AddAfter() (*BlockBuilder, error)  { return builderAround(s, true) }

// Clone returns a detached deep copy; every contained block is cloned
// and re-homed to the new section.
func (s *Section) Clone() *Section {
	c := &Section{name: s.name, header: s.header, headerless: s.headerless, updated: s.updated}
	c.blocks = make([]Block, len(s.blocks))
	for i, b := range s.blocks {
		cb := b.cloneBlock()
		cb.setContainer(c)
		c.blocks[i] = cb
	}
	return c
}

func (s *Section) cloneBlock() Block { return s.Clone() }

// Container

func (s *Section) Blocks() []Block { return s.blocks }

func (s *Section) Len() int { return len(s.blocks) }

// Insert places a detached option, comment or space block at idx. An
// option whose normalized key already exists is rejected. On error the
// section is unchanged.
func (s *Section) Insert(idx int, b Block) error {
	if err := attachable(b); err != nil {
		return err
	}
	switch b.Kind() {
	case KindOption, KindComment, KindSpace:
	default:
		return fmt.Errorf("%w: section cannot hold %s", ErrValue, b.Kind())
	}
	if o, ok := b.(*Option); ok {
		if s.HasOption(o.RawKey()) {
			return fmt.Errorf("%w: %q in section %q", ErrDuplicateOption, o.RawKey(), s.name)
		}
	}
	if err := spliceIn(&s.blocks, idx, b); err != nil {
		return err
	}
	b.setContainer(s)
	return nil
}

func (s *Section) Append(b Block) error { return s.Insert(len(s.blocks), b) }

// Remove detaches the block at idx.
func (s *Section) Remove(idx int) error {
	b, err := spliceOut(&s.blocks, idx)
	if err != nil {
		return err
	}
	b.setContainer(nil)
	return nil
}

func (s *Section) syntaxOf() *format.Syntax {
	if d := s.Document(); d != nil {
		return d.Syntax()
	}
	return defaultSyntax()
}

func (s *Section) xform(key string) string {
	if d := s.Document(); d != nil {
		return d.OptionXform(key)
	}
	return strings.ToLower(key)
}

func (s *Section) lastBlock() Block {
	if len(s.blocks) == 0 {
		return nil
	}
	return s.blocks[len(s.blocks)-1]
}

// Parser-facing appends. AddComment and AddSpace extend a trailing run
// of the same kind instead of opening a new block.

// AddOption appends o without the duplicate-key check Insert makes;
// callers that have not pre-checked the key should use Append instead.
func (s *Section) AddOption(o *Option) *Section {
	o.setContainer(s)
	s.blocks = append(s.blocks, o)
	return s
}

func (s *Section) AddComment(raw string) *Section {
	if c, ok := s.lastBlock().(*Comment); ok {
		c.AddLine(raw)
		return s
	}
	c := NewComment().AddLine(raw)
	c.setContainer(s)
	s.blocks = append(s.blocks, c)
	return s
}

func (s *Section) AddSpace(raw string) *Section {
	if sp, ok := s.lastBlock().(*Space); ok {
		sp.AddLine(raw)
		return s
	}
	sp := NewSpace().AddLine(raw)
	sp.setContainer(s)
	s.blocks = append(s.blocks, sp)
	return s
}

// Mapping facade

func (s *Section) optionIdx(key string) int {
	key = s.xform(key)
	return Index(s, func(b Block) bool {
		o, ok := b.(*Option)
		return ok && s.xform(o.key) == key
	})
}

// Get returns the option for key, or ErrNoOption.
func (s *Section) Get(key string) (*Option, error) {
	if o, ok := s.Lookup(key); ok {
		return o, nil
	}
	return nil, fmt.Errorf("%w: %q in section %q", ErrNoOption, key, s.name)
}

// Lookup is the comma-ok variant of Get. A missing option is not an
// error here, so callers can apply any fallback they like, including
// nil.
func (s *Section) Lookup(key string) (*Option, bool) {
	if i := s.optionIdx(key); i >= 0 {
		return s.blocks[i].(*Option), true
	}
	return nil, false
}

func (s *Section) HasOption(key string) bool {
	return s.optionIdx(key) >= 0
}

// Set assigns value to key, mutating the existing option in place or
// appending a new one. Chainable.
func (s *Section) Set(key, value string) *Section {
	if o, ok := s.Lookup(key); ok {
		o.SetValue(value)
		return s
	}
	o := NewOption(key, value)
	o.setContainer(s)
	s.blocks = append(s.blocks, o)
	return s
}

// SetNoValue assigns a bare key. Chainable.
func (s *Section) SetNoValue(key string) *Section {
	if o, ok := s.Lookup(key); ok {
		o.SetNoValue()
		return s
	}
	o := NewOptionNoValue(key)
	o.setContainer(s)
	s.blocks = append(s.blocks, o)
	return s
}

// SetOption replaces the whole option object stored under key, keeping
// its position. The supplied option must be detached and its own key
// must normalize to key; otherwise nothing changes.
func (s *Section) SetOption(key string, o *Option) error {
	if err := attachable(o); err != nil {
		return err
	}
	if s.xform(o.key) != s.xform(key) {
		return fmt.Errorf("%w: set key %q does not equal option key %q", ErrValue, key, o.key)
	}
	idx := s.optionIdx(key)
	if idx < 0 {
		return s.Append(o)
	}
	old := s.blocks[idx]
	old.setContainer(nil)
	s.blocks[idx] = o
	o.setContainer(s)
	return nil
}

// Delete removes the option stored under key, or returns ErrNoOption.
func (s *Section) Delete(key string) error {
	idx := s.optionIdx(key)
	if idx < 0 {
		return fmt.Errorf("%w: %q in section %q", ErrNoOption, key, s.name)
	}
	return s.Remove(idx)
}

// OptionBlocks returns only the option blocks, in container order.
func (s *Section) OptionBlocks() []*Option {
	var res []*Option
	for _, b := range s.blocks {
		if o, ok := b.(*Option); ok {
			res = append(res, o)
		}
	}
	return res
}

// Options returns the normalized option keys in container order.
func (s *Section) Options() []string {
	opts := s.OptionBlocks()
	res := make([]string, len(opts))
	for i, o := range opts {
		res[i] = o.Key()
	}
	return res
}

// Items returns (key, option) pairs in container order.
func (s *Section) Items() []OptionItem {
	opts := s.OptionBlocks()
	res := make([]OptionItem, len(opts))
	for i, o := range opts {
		res[i] = OptionItem{Key: o.Key(), Option: o}
	}
	return res
}

// ToDict maps normalized keys to values; a bare key maps to nil.
func (s *Section) ToDict() map[string]any {
	res := make(map[string]any)
	for _, o := range s.OptionBlocks() {
		if !o.HasValue() {
			res[o.Key()] = nil
			continue
		}
		res[o.Key()] = o.Value()
	}
	return res
}

// InsertAt returns a builder anchored at idx inside this section.
func (s *Section) InsertAt(idx int) *BlockBuilder {
	return &BlockBuilder{target: s, idx: idx}
}
