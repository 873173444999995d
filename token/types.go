package token

import "fmt"

type Kind int

const (
	KindBlank Kind = iota
	KindComment
	KindSectionHeader
	KindOption
	KindContinuation
	KindUnknown
)

func (k Kind) String() string {
	return map[Kind]string{
		KindBlank:         "KindBlank",
		KindComment:       "KindComment",
		KindSectionHeader: "KindSectionHeader",
		KindOption:        "KindOption",
		KindContinuation:  "KindContinuation",
		KindUnknown:       "KindUnknown",
	}[k]
}

// Line is one classified input line. Raw is the exact original text
// including its trailing newline, so concatenating Raw over a classified
// document reproduces the input.
type Line struct {
	Raw  string
	Num  int // 1-based
	Kind Kind

	// KindSectionHeader
	Name string

	// KindOption. Key keeps the original casing. Value has any inline
	// comment stripped and surrounding whitespace trimmed. NoValue marks
	// a key with no delimiter at all.
	Key     string
	Delim   string
	Value   string
	NoValue bool

	// KindContinuation, whitespace-trimmed.
	Cont string
}

func (l *Line) Info() string {
	return fmt.Sprintf("%s line %d %q", l.Kind, l.Num, l.Raw)
}
