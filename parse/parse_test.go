package parse

import (
	"errors"
	"testing"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/confedit/go-confedit/format"
	"github.com/confedit/go-confedit/ir"
)

type parseTest struct {
	in  string
	syn *format.Syntax
	e   error
}

func syntaxOf(pt *parseTest) *format.Syntax {
	if pt.syn != nil {
		return pt.syn
	}
	return format.Default()
}

func TestParseRoundTrip(t *testing.T) {
	pts := []parseTest{
		{
			in: "",
		},
		{
			in: "\n",
		},
		{
			in: "# only a comment\n",
		},
		{
			in: "\n\n\n",
		},
		{
			in: "[sec]\n",
		},
		{
			in: "[sec]\nkey = value\n",
		},
		{
			in: "[sec]\nkey=value\nother :  spaced out  \n",
		},
		{
			in: "# heading\n\n[sec]\n; note\nkey = value\n\n[other]\nx: 1\n",
		},
		{
			in: "[sec]\nkey = first\n    second\n\tthird\n",
		},
		{
			in: "[sec]\nkey =\n    only-continuations\n",
		},
		{
			// blank line inside a value
			in: "[sec]\nkey = a\n\n    b\n",
		},
		{
			// indented comment between options
			in: "[sec]\na = 1\n    # note\nb = 2\n",
		},
		{
			// header with trailing decoration
			in: "[sec]   ; note\nkey = value\n",
		},
		{
			// no trailing newline on the last line
			in: "[sec]\nkey = value",
		},
		{
			// windows newlines survive verbatim
			in: "[sec]\r\nkey = value\r\n",
		},
		{
			in: "[sec]\nflag\nkey = value\n",
			syn: &format.Syntax{
				Delimiters:      []string{"="},
				CommentPrefixes: []string{"#"},
				AllowNoValue:    true,
			},
		},
	}
	for _, pt := range pts {
		doc, err := Parse([]byte(pt.in), WithSyntax(syntaxOf(&pt)))
		if err != nil {
			t.Errorf("%q: unexpected error %v", pt.in, err)
			continue
		}
		got := doc.String()
		if got != pt.in {
			dmp := diffpatch.New()
			diffs := dmp.DiffMain(pt.in, got, false)
			t.Errorf("round trip mismatch:\n%s", dmp.DiffPrettyText(diffs))
		}
		if again := doc.String(); again != got {
			t.Errorf("%q: re-render differs", pt.in)
		}
	}
}

func TestParseErrors(t *testing.T) {
	pts := []parseTest{
		{
			in: "key = value\n",
			e:  ErrParse,
		},
		{
			in: "    dangling continuation\n",
			e:  ErrParse,
		},
		{
			in: "[sec]\nkey = v\n# break\n    continuation\n",
			e:  ErrParse,
		},
		{
			in: "[sec]\n[sec]\n",
			e:  ir.ErrDuplicateSection,
		},
		{
			in: "[sec]\nkey = 1\nKEY = 2\n",
			e:  ir.ErrDuplicateOption,
		},
		{
			in: "[sec]\nnot an option line\n",
			e:  ErrParse,
		},
		{
			in: "[unclosed\n",
			e:  ErrParse,
		},
	}
	for _, pt := range pts {
		_, err := Parse([]byte(pt.in), WithSyntax(syntaxOf(&pt)))
		if err == nil {
			t.Errorf("%q: expected error", pt.in)
			continue
		}
		if !errors.Is(err, pt.e) {
			t.Errorf("%q: got %v, want %v", pt.in, err, pt.e)
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: every parse failure wraps ErrParse, got %v", pt.in, err)
		}
	}
}

func TestParseErrorDetail(t *testing.T) {
	_, err := Parse([]byte("[sec]\nok = 1\ngarbage line\n"), WithFilename("setup.cfg"))
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("got %T: %v", err, err)
	}
	if pe.Line != 3 {
		t.Errorf("line: got %d", pe.Line)
	}
	if pe.Raw != "garbage line\n" {
		t.Errorf("raw: got %q", pe.Raw)
	}
	if pe.File != "setup.cfg" {
		t.Errorf("file: got %q", pe.File)
	}
}

func TestParseTree(t *testing.T) {
	in := "# top comment\n\n[first]\na = 1\n\n[second]\n; inner\nb = 2\n"
	doc, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}

	blocks := doc.Blocks()
	wantKinds := []ir.Kind{ir.KindComment, ir.KindSpace, ir.KindSection, ir.KindSection}
	if len(blocks) != len(wantKinds) {
		t.Fatalf("got %d top-level blocks", len(blocks))
	}
	for i, k := range wantKinds {
		if blocks[i].Kind() != k {
			t.Errorf("block %d: got %s, want %s", i, blocks[i].Kind(), k)
		}
	}

	first, err := doc.GetSection("first")
	if err != nil {
		t.Fatal(err)
	}
	// the blank line before [second] belongs to the open section
	kinds := []ir.Kind{}
	for _, b := range first.Blocks() {
		kinds = append(kinds, b.Kind())
	}
	if len(kinds) != 2 || kinds[0] != ir.KindOption || kinds[1] != ir.KindSpace {
		t.Errorf("first section blocks: got %v", kinds)
	}

	o, err := doc.Get("second", "b")
	if err != nil {
		t.Fatal(err)
	}
	if o.Value() != "2" {
		t.Errorf("got %q", o.Value())
	}
}

func TestParseMultilineValue(t *testing.T) {
	in := "[options.extras_require]\ntesting =   # Add here test requirements\n    sphinx\n    flake8\n"
	syn := format.Default()
	syn.InlineCommentPrefixes = []string{"#"}
	doc, err := Parse([]byte(in), WithSyntax(syn))
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.String(); got != in {
		t.Errorf("round trip: got %q", got)
	}
	o, err := doc.Get("options.extras_require", "testing")
	if err != nil {
		t.Fatal(err)
	}
	if got := o.Value(); got != "\nsphinx\nflake8" {
		t.Errorf("value: got %q", got)
	}
}

func TestParseBlankInsideValueStaysInValue(t *testing.T) {
	in := "[sec]\nkey = a\n\n    b\ntail = 1\n"
	doc, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	o, err := doc.Get("sec", "key")
	if err != nil {
		t.Fatal(err)
	}
	if got := o.Value(); got != "a\n\nb" {
		t.Errorf("value: got %q", got)
	}
	sec, _ := doc.GetSection("sec")
	if n := sec.Len(); n != 2 {
		t.Errorf("blank inside the value must not open a space block, got %d blocks", n)
	}
}

func TestParseDefaultSection(t *testing.T) {
	in := "# top\ntimeout = 30\nretries = 2\n\n[sec]\nkey = v\n"
	doc, err := Parse([]byte(in), WithDefaultSection("DEFAULT"))
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.String(); got != in {
		t.Errorf("headerless section must round-trip, got %q", got)
	}
	o, err := doc.Get("DEFAULT", "timeout")
	if err != nil {
		t.Fatal(err)
	}
	if o.Value() != "30" {
		t.Errorf("got %q", o.Value())
	}
	if _, err := Parse([]byte(in)); !errors.Is(err, ErrParse) {
		t.Errorf("without the option the same input must fail, got %v", err)
	}
}

func TestParseSyntaxValidation(t *testing.T) {
	_, err := Parse([]byte("x"), WithSyntax(&format.Syntax{}))
	if !errors.Is(err, format.ErrBadSyntax) {
		t.Errorf("got %v", err)
	}
}
