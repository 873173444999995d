package encode

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type EncodeOption func(*EncState)

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// AutoColors enables the default colors only when w is a terminal.
func AutoColors(w io.Writer) EncodeOption {
	return func(es *EncState) {
		f, ok := w.(*os.File)
		if !ok {
			return
		}
		if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			return
		}
		es.Color = NewColors().Color
	}
}
