package ir

import (
	"fmt"
	"strings"
)

// BlockBuilder inserts new blocks at a position inside a container
// without the caller juggling raw indices. Builders come from
// Section.InsertAt / Document.InsertAt (index anchor) or from a block's
// AddBefore / AddAfter (block anchor). Each insertion advances the
// anchor, so successive calls lay blocks down in reading order.
//
// The position of a block anchor is resolved against the live container
// at every call, never cached: insertions between calls shift indices,
// and a stale index would splice into the wrong place. Calls after an
// error are no-ops; Err returns the first failure.
type BlockBuilder struct {
	target Container
	idx    int
	anchor Block
	after  bool
	n      int
	err    error
}

// Err returns the first error any insertion hit, if any.
func (bb *BlockBuilder) Err() error { return bb.err }

func (bb *BlockBuilder) at() (int, error) {
	if bb.anchor == nil {
		return bb.idx + bb.n, nil
	}
	if bb.anchor.Container() != bb.target {
		return 0, fmt.Errorf("%w: builder anchor left its container", ErrNotAttached)
	}
	i := indexOf(bb.target, bb.anchor)
	if i < 0 {
		return 0, fmt.Errorf("%w: builder anchor left its container", ErrNotAttached)
	}
	if bb.after {
		return i + 1 + bb.n, nil
	}
	return i, nil
}

func (bb *BlockBuilder) insert(b Block) *BlockBuilder {
	if bb.err != nil {
		return bb
	}
	at, err := bb.at()
	if err != nil {
		bb.err = err
		return bb
	}
	if err := bb.target.Insert(at, b); err != nil {
		bb.err = err
		return bb
	}
	bb.n++
	return bb
}

// Comment inserts a comment run. Lines of text lacking a comment prefix
// get the dialect's default prefix.
func (bb *BlockBuilder) Comment(text string) *BlockBuilder {
	syn := bb.target.syntaxOf()
	c := NewComment()
	for _, ln := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if !hasCommentPrefix(ln, syn.CommentPrefixes) {
			ln = syn.CommentPrefix() + " " + ln
		}
		c.AddLine(ln + "\n")
	}
	return bb.insert(c)
}

// Space inserts a run of n blank lines.
func (bb *BlockBuilder) Space(n int) *BlockBuilder {
	if n < 1 {
		n = 1
	}
	sp := NewSpace()
	for i := 0; i < n; i++ {
		sp.AddLine("\n")
	}
	return bb.insert(sp)
}

// Option inserts a new key/value option; only valid inside a section.
func (bb *BlockBuilder) Option(key, value string) *BlockBuilder {
	if _, ok := bb.target.(*Section); !ok {
		if bb.err == nil {
			bb.err = fmt.Errorf("%w: options belong in sections", ErrValue)
		}
		return bb
	}
	return bb.insert(NewOption(key, value))
}

// Section inserts a new empty section named name; only valid inside a
// document.
func (bb *BlockBuilder) Section(name string) *BlockBuilder {
	return bb.SectionBlock(NewSection(name))
}

// SectionBlock inserts a detached section; only valid inside a document.
func (bb *BlockBuilder) SectionBlock(s *Section) *BlockBuilder {
	if _, ok := bb.target.(*Document); !ok {
		if bb.err == nil {
			bb.err = fmt.Errorf("%w: sections belong in documents", ErrValue)
		}
		return bb
	}
	return bb.insert(s)
}

func hasCommentPrefix(ln string, prefixes []string) bool {
	t := strings.TrimLeft(ln, " \t")
	for _, p := range prefixes {
		if strings.HasPrefix(t, p) {
			return true
		}
	}
	return false
}
