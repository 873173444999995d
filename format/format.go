package format

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadSyntax = errors.New("bad syntax")

// Syntax holds the format-specific parameters of an INI dialect: how
// option lines are split, which prefixes introduce comments, and how
// permissive the grammar is.
type Syntax struct {
	// Delimiters separate option keys from values. The delimiter of a
	// line is the one occurring earliest on it.
	Delimiters []string
	// CommentPrefixes introduce full-line comments. Leading whitespace
	// before the prefix does not disqualify a line.
	CommentPrefixes []string
	// InlineCommentPrefixes introduce trailing comments on option
	// lines. Empty disables inline comments.
	InlineCommentPrefixes []string
	// AllowNoValue permits option lines that carry a key and no
	// delimiter at all.
	AllowNoValue bool
	// EmptyLinesInValues keeps blank lines that are followed by more
	// continuation material inside a multi-line value.
	EmptyLinesInValues bool
	// Strict rejects duplicate sections and duplicate options while
	// parsing.
	Strict bool
	// SpaceAroundDelimiters controls synthesized option lines:
	// "key = value" when set, "key=value" otherwise.
	SpaceAroundDelimiters bool
}

func Default() *Syntax {
	return &Syntax{
		Delimiters:            []string{"=", ":"},
		CommentPrefixes:       []string{"#", ";"},
		EmptyLinesInValues:    true,
		Strict:                true,
		SpaceAroundDelimiters: true,
	}
}

func (s *Syntax) Validate() error {
	if len(s.Delimiters) == 0 {
		return fmt.Errorf("%w: no delimiters", ErrBadSyntax)
	}
	for _, d := range s.Delimiters {
		if d == "" || strings.ContainsAny(d, " \t") {
			return fmt.Errorf("%w: delimiter %q", ErrBadSyntax, d)
		}
	}
	if len(s.CommentPrefixes) == 0 {
		return fmt.Errorf("%w: no comment prefixes", ErrBadSyntax)
	}
	for _, p := range append(s.CommentPrefixes[:len(s.CommentPrefixes):len(s.CommentPrefixes)], s.InlineCommentPrefixes...) {
		if p == "" || strings.ContainsAny(p, " \t") {
			return fmt.Errorf("%w: comment prefix %q", ErrBadSyntax, p)
		}
	}
	return nil
}

// Delimiter returns the delimiter used when synthesizing option lines,
// padded according to SpaceAroundDelimiters.
func (s *Syntax) Delimiter() string {
	d := s.Delimiters[0]
	if s.SpaceAroundDelimiters {
		return " " + d + " "
	}
	return d
}

// CommentPrefix returns the prefix used when synthesizing comment lines.
func (s *Syntax) CommentPrefix() string {
	return s.CommentPrefixes[0]
}
