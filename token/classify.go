package token

import (
	"strings"

	"github.com/confedit/go-confedit/format"
)

// Classify splits d into lines and classifies each one against the
// dialect. Classification is context-free: a line is judged on its own
// shape only, so an indented line is always KindContinuation here even
// when no option is open; rejecting it is the parser's call.
func Classify(d []byte, syn *format.Syntax) []Line {
	if syn == nil {
		syn = format.Default()
	}
	var lines []Line
	rest := string(d)
	num := 0
	for rest != "" {
		raw := rest
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			raw = rest[:i+1]
			rest = rest[i+1:]
		} else {
			rest = ""
		}
		num++
		ln := classifyOne(raw, num, syn)
		lines = append(lines, ln)
	}
	return lines
}

func classifyOne(raw string, num int, syn *format.Syntax) Line {
	ln := Line{Raw: raw, Num: num}
	text := strings.TrimRight(raw, "\n")
	text = strings.TrimRight(text, "\r")
	trimmed := strings.TrimSpace(text)
	switch {
	case trimmed == "":
		ln.Kind = KindBlank
		return ln
	case hasPrefixAny(trimmed, syn.CommentPrefixes):
		ln.Kind = KindComment
		return ln
	case text[0] == ' ' || text[0] == '\t':
		ln.Kind = KindContinuation
		ln.Cont = stripInline(trimmed, syn)
		return ln
	case text[0] == '[':
		end := strings.IndexByte(text, ']')
		if end <= 1 {
			ln.Kind = KindUnknown
			return ln
		}
		ln.Kind = KindSectionHeader
		ln.Name = text[1:end]
		return ln
	}
	return classifyOption(ln, text, syn)
}

func classifyOption(ln Line, text string, syn *format.Syntax) Line {
	at := -1
	for _, d := range syn.Delimiters {
		i := strings.Index(text, d)
		if i <= 0 {
			// a delimiter in column zero leaves no key
			continue
		}
		if at == -1 || i < at {
			at = i
			ln.Delim = d
		}
	}
	if at == -1 {
		if !syn.AllowNoValue {
			ln.Kind = KindUnknown
			return ln
		}
		ln.Kind = KindOption
		ln.Key = strings.TrimSpace(stripInline(text, syn))
		ln.NoValue = true
		return ln
	}
	ln.Kind = KindOption
	ln.Key = strings.TrimSpace(text[:at])
	ln.Value = strings.TrimSpace(stripInline(text[at+len(ln.Delim):], syn))
	return ln
}

// stripInline cuts a trailing inline comment. The prefix only counts
// when preceded by whitespace, matching the usual INI convention of
// allowing '#' and ';' inside values.
func stripInline(v string, syn *format.Syntax) string {
	cut := len(v)
	for _, p := range syn.InlineCommentPrefixes {
		from := 0
		for {
			i := strings.Index(v[from:], p)
			if i < 0 {
				break
			}
			i += from
			if i == 0 || v[i-1] == ' ' || v[i-1] == '\t' {
				if i < cut {
					cut = i
				}
				break
			}
			from = i + len(p)
		}
	}
	return strings.TrimRight(v[:cut], " \t")
}

func hasPrefixAny(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
