package ir

import (
	"slices"
	"strings"
)

// Comment is a run of contiguous comment lines. Lines hold the exact
// source text including indentation and trailing newlines.
type Comment struct {
	meta
	lines []string
}

func NewComment() *Comment { return &Comment{} }

func (c *Comment) Kind() Kind { return KindComment }

// AddLine appends one raw comment line to the run.
func (c *Comment) AddLine(raw string) *Comment {
	c.lines = append(c.lines, raw)
	return c
}

func (c *Comment) Lines() []string { return slices.Clone(c.lines) }

func (c *Comment) String() string { return strings.Join(c.lines, "") }

func (c *Comment) Equal(o Block) bool {
	oc, ok := o.(*Comment)
	return ok && slices.Equal(c.lines, oc.lines)
}

func (c *Comment) AddBefore() (*BlockBuilder, error) { return builderAround(c, false) }
func (c *Comment) AddAfter() (*BlockBuilder, error)  { return builderAround(c, true) }

// Clone returns a detached deep copy.
func (c *Comment) Clone() *Comment {
	return &Comment{lines: slices.Clone(c.lines)}
}

func (c *Comment) cloneBlock() Block { return c.Clone() }

// Space is a run of contiguous blank lines.
type Space struct {
	meta
	lines []string
}

func NewSpace() *Space { return &Space{} }

func (s *Space) Kind() Kind { return KindSpace }

// AddLine appends one raw blank line to the run.
func (s *Space) AddLine(raw string) *Space {
	s.lines = append(s.lines, raw)
	return s
}

func (s *Space) Lines() []string { return slices.Clone(s.lines) }

func (s *Space) String() string { return strings.Join(s.lines, "") }

func (s *Space) Equal(o Block) bool {
	os, ok := o.(*Space)
	return ok && slices.Equal(s.lines, os.lines)
}

func (s *Space) AddBefore() (*BlockBuilder, error) { return builderAround(s, false) }
func (s *Space) AddAfter() (*BlockBuilder, error)  { return builderAround(s, true) }

// Clone returns a detached deep copy.
func (s *Space) Clone() *Space {
	return &Space{lines: slices.Clone(s.lines)}
}

func (s *Space) cloneBlock() Block { return s.Clone() }
