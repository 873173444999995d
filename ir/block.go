package ir

import (
	"fmt"

	"github.com/confedit/go-confedit/format"
)

type Kind int

const (
	KindComment Kind = iota
	KindSpace
	KindOption
	KindSection
)

func (k Kind) String() string {
	return map[Kind]string{
		KindComment: "KindComment",
		KindSpace:   "KindSpace",
		KindOption:  "KindOption",
		KindSection: "KindSection",
	}[k]
}

// Block is the smallest unit of owned text: a comment run, a blank-line
// run, an option, or a section. A block belongs to at most one container
// at a time; Container returns nil for a detached block. String renders
// the block back to text, byte-identical to the source for blocks that
// have not been logically altered since parse.
type Block interface {
	Kind() Kind
	Container() Container
	String() string
	Equal(Block) bool

	setContainer(Container)
	cloneBlock() Block
}

// Container is an ordered, mutable sequence of sibling blocks. Document
// and Section are the only implementations; Document holds sections,
// comments and spaces, Section holds options, comments and spaces.
// Insert and Remove keep the container unchanged on error.
type Container interface {
	Blocks() []Block
	Len() int
	Insert(idx int, b Block) error
	Remove(idx int) error
	Append(b Block) error

	syntaxOf() *format.Syntax
}

// Index returns the index of the first block satisfying pred, or -1.
func Index(c Container, pred func(Block) bool) int {
	for i, b := range c.Blocks() {
		if pred(b) {
			return i
		}
	}
	return -1
}

func indexOf(c Container, b Block) int {
	return Index(c, func(x Block) bool { return x == b })
}

// meta carries the container back-reference shared by all block kinds.
// The reference is non-owning: it is set on attach and cleared on detach.
type meta struct {
	owner Container
}

func (m *meta) Container() Container     { return m.owner }
func (m *meta) setContainer(c Container) { m.owner = c }

func spliceIn(s *[]Block, idx int, b Block) error {
	if idx < 0 || idx > len(*s) {
		return fmt.Errorf("%w: index %d out of range [0,%d]", ErrValue, idx, len(*s))
	}
	*s = append(*s, nil)
	copy((*s)[idx+1:], (*s)[idx:])
	(*s)[idx] = b
	return nil
}

func spliceOut(s *[]Block, idx int) (Block, error) {
	if idx < 0 || idx >= len(*s) {
		return nil, fmt.Errorf("%w: index %d out of range [0,%d)", ErrValue, idx, len(*s))
	}
	b := (*s)[idx]
	copy((*s)[idx:], (*s)[idx+1:])
	*s = (*s)[:len(*s)-1]
	return b, nil
}

func attachable(b Block) error {
	if b == nil {
		return fmt.Errorf("%w: nil block", ErrValue)
	}
	if b.Container() != nil {
		return fmt.Errorf("%w: block already attached", ErrValue)
	}
	return nil
}

func builderAround(b Block, after bool) (*BlockBuilder, error) {
	c := b.Container()
	if c == nil {
		return nil, fmt.Errorf("%w: block has no container", ErrNotAttached)
	}
	return &BlockBuilder{target: c, anchor: b, after: after}, nil
}
