package parse

import (
	"errors"
	"fmt"

	"github.com/confedit/go-confedit/format"
	"github.com/confedit/go-confedit/internal/debug"
	"github.com/confedit/go-confedit/ir"
	"github.com/confedit/go-confedit/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	pOpts := &parseOpts{syntax: format.Default()}
	for _, f := range opts {
		f(pOpts)
	}
	if err := pOpts.syntax.Validate(); err != nil {
		return nil, err
	}
	doc := ir.NewDocument()
	doc.SetSyntax(pOpts.syntax)
	st := &state{
		doc:   doc,
		opts:  pOpts,
		lines: token.Classify(d, pOpts.syntax),
	}
	for i := range st.lines {
		if err := st.feed(i); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Document, error) {
	return Parse([]byte(s), opts...)
}

// state is the parser's line machine: it tracks the open
// section and the open option, and chooses one container operation per
// classified line. Comment and blank runs close an open option, except
// for blank lines buffered into a value when the dialect keeps empty
// lines in values and more continuation material follows.
type state struct {
	doc   *ir.Document
	opts  *parseOpts
	lines []token.Line
	cur   *ir.Section
	opt   *ir.Option
}

func (st *state) feed(i int) error {
	ln := &st.lines[i]
	if debug.Parse() {
		debug.Logf("parse: %s", ln.Info())
	}
	switch ln.Kind {
	case token.KindBlank:
		if st.opt != nil && st.opts.syntax.EmptyLinesInValues && st.continuationFollows(i) {
			st.opt.AddContinuation(ln.Raw, "")
			return nil
		}
		st.opt = nil
		st.addSpace(ln.Raw)
		return nil

	case token.KindComment:
		st.opt = nil
		st.addComment(ln.Raw)
		return nil

	case token.KindSectionHeader:
		st.opt = nil
		sec := ir.NewRawSection(ln.Name, ln.Raw)
		if _, err := st.doc.AddSection(sec); err != nil {
			return st.fail(err, ln)
		}
		st.cur = sec
		return nil

	case token.KindOption:
		if st.cur == nil {
			if st.opts.defaultSec == "" {
				return st.fail(errors.New("option line before any section header"), ln)
			}
			sec := ir.NewHeaderlessSection(st.opts.defaultSec)
			if _, err := st.doc.AddSection(sec); err != nil {
				return st.fail(err, ln)
			}
			st.cur = sec
		}
		if st.cur.HasOption(ln.Key) {
			return st.fail(fmt.Errorf("%w: %q in section %q", ir.ErrDuplicateOption, ln.Key, st.cur.Name()), ln)
		}
		o := ir.NewRawOption(ln.Key, ln.Delim, ln.Raw, ln.Value, ln.NoValue)
		st.cur.AddOption(o)
		st.opt = o
		return nil

	case token.KindContinuation:
		if st.opt == nil {
			return st.fail(errors.New("continuation line outside a value"), ln)
		}
		st.opt.AddContinuation(ln.Raw, ln.Cont)
		return nil
	}
	return st.fail(errors.New("unparseable line"), ln)
}

// continuationFollows looks past a blank run for more value material.
func (st *state) continuationFollows(i int) bool {
	for j := i + 1; j < len(st.lines); j++ {
		switch st.lines[j].Kind {
		case token.KindBlank:
		case token.KindContinuation:
			return true
		default:
			return false
		}
	}
	return false
}

func (st *state) addComment(raw string) {
	if st.cur != nil {
		st.cur.AddComment(raw)
		return
	}
	st.doc.AddComment(raw)
}

func (st *state) addSpace(raw string) {
	if st.cur != nil {
		st.cur.AddSpace(raw)
		return
	}
	st.doc.AddSpace(raw)
}

func (st *state) fail(err error, ln *token.Line) error {
	return newError(err, st.opts.file, ln.Num, ln.Raw)
}

