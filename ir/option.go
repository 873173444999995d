package ir

import (
	"slices"
	"strings"
)

// Option is a key/value pair owned by a Section. An option parsed from
// source renders its captured text verbatim until its value or key is
// changed; after that it renders a synthesized line (plus indented
// continuation lines for multi-line values). A nil value ("no value")
// is distinct from an empty string and renders as a bare key.
type Option struct {
	meta
	key     string // as written; lookups normalize on the fly
	delim   string
	lines   []string // captured source lines, option line first
	parts   []string // value fragment contributed by each captured line
	value   *string
	updated bool
}

// NewOption creates a synthesized option.
func NewOption(key, value string) *Option {
	v := value
	return &Option{key: key, value: &v, updated: true}
}

// NewOptionNoValue creates a synthesized option carrying no value.
func NewOptionNoValue(key string) *Option {
	return &Option{key: key, updated: true}
}

// NewRawOption captures an option line as written in source. Parser
// facing. value is the line's value fragment after inline-comment
// stripping; noValue marks a bare key with no delimiter.
func NewRawOption(key, delim, raw, value string, noValue bool) *Option {
	o := &Option{key: key, delim: delim, lines: []string{raw}}
	if !noValue {
		o.parts = []string{value}
	}
	return o
}

// AddContinuation captures one continuation line of a parsed value.
func (o *Option) AddContinuation(raw, value string) *Option {
	o.lines = append(o.lines, raw)
	o.parts = append(o.parts, value)
	return o
}

func (o *Option) Kind() Kind { return KindOption }

// Key returns the normalized lookup key.
func (o *Option) Key() string { return o.xform(o.key) }

// RawKey returns the key with its original casing.
func (o *Option) RawKey() string { return o.key }

// SetKey renames the option, forcing synthesized rendering.
func (o *Option) SetKey(key string) {
	o.key = key
	o.updated = true
}

// Value returns the logical value. Parsed multi-line values join their
// fragments with newlines, so a value spanning continuation lines comes
// back as a single multi-line string.
func (o *Option) Value() string {
	if o.updated {
		if o.value == nil {
			return ""
		}
		return *o.value
	}
	return strings.Join(o.parts, "\n")
}

// HasValue reports whether the option carries a value at all; false
// means a bare key (allowed only when the dialect permits it).
func (o *Option) HasValue() bool {
	if o.updated {
		return o.value != nil
	}
	return o.parts != nil
}

func (o *Option) SetValue(v string) {
	o.value = &v
	o.updated = true
}

// SetNoValue turns the option into a bare key.
func (o *Option) SetNoValue() {
	o.value = nil
	o.updated = true
}

func (o *Option) String() string {
	if !o.updated && o.lines != nil {
		return strings.Join(o.lines, "")
	}
	if !o.HasValue() {
		return o.key + "\n"
	}
	sep := o.sep()
	vals := strings.Split(o.Value(), "\n")
	var sb strings.Builder
	sb.WriteString(strings.TrimRight(o.key+sep+vals[0], " \t"))
	sb.WriteString("\n")
	for _, v := range vals[1:] {
		sb.WriteString("\t")
		sb.WriteString(v)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (o *Option) sep() string {
	syn := defaultSyntax()
	if o.owner != nil {
		syn = o.owner.syntaxOf()
	}
	d := o.delim
	if d == "" {
		d = syn.Delimiters[0]
	}
	if syn.SpaceAroundDelimiters {
		return " " + d + " "
	}
	return d
}

func (o *Option) Equal(b Block) bool {
	oo, ok := b.(*Option)
	return ok && o.key == oo.key && o.String() == oo.String()
}

func (o *Option) AddBefore() (*BlockBuilder, error) { return builderAround(o, false) }
func (o *Option) AddAfter() (*BlockBuilder, error)  { return builderAround(o, true) }

// Section returns the owning section, nil when detached.
func (o *Option) Section() *Section {
	s, _ := o.owner.(*Section)
	return s
}

// Clone returns a detached deep copy.
func (o *Option) Clone() *Option {
	c := &Option{
		key:     o.key,
		delim:   o.delim,
		lines:   slices.Clone(o.lines),
		parts:   slices.Clone(o.parts),
		updated: o.updated,
	}
	if o.value != nil {
		v := *o.value
		c.value = &v
	}
	return c
}

func (o *Option) cloneBlock() Block { return o.Clone() }

func (o *Option) xform(k string) string {
	if s, ok := o.owner.(*Section); ok && s != nil {
		return s.xform(k)
	}
	return strings.ToLower(k)
}
