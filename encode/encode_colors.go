package encode

import (
	"github.com/fatih/color"

	"github.com/confedit/go-confedit/token"
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[token.Kind]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[token.Kind]func(string, ...any) string{
			token.KindComment:       color.BlueString,
			token.KindSectionHeader: color.New(color.FgCyan, color.Bold).SprintfFunc(),
			token.KindOption:        color.RGB(196, 96, 16).SprintfFunc(),
			token.KindContinuation:  color.RGB(128, 216, 236).SprintfFunc(),
		},
	}
}

func (c *Colors) Color(k token.Kind, s string) string {
	f, ok := c.Map[k]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}

func colorDefault(format string, args ...any) string {
	return color.New().SprintfFunc()(format, args...)
}
