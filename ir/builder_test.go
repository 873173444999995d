package ir

import (
	"errors"
	"testing"
)

func TestBuilderInsertAtReadingOrder(t *testing.T) {
	s := NewSection("s").Set("a", "1").Set("b", "2")
	bb := s.InsertAt(1).Comment("between").Space(1).Option("c", "3")
	if err := bb.Err(); err != nil {
		t.Fatal(err)
	}
	want := "[s]\na = 1\n# between\n\nc = 3\nb = 2\n"
	if got := s.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuilderAddBeforeAfter(t *testing.T) {
	s := NewSection("s").Set("a", "1").Set("b", "2")
	a, _ := s.Get("a")

	bb, err := a.AddAfter()
	if err != nil {
		t.Fatal(err)
	}
	bb.Comment("after a").Option("a2", "x")
	if err := bb.Err(); err != nil {
		t.Fatal(err)
	}

	bb, err = a.AddBefore()
	if err != nil {
		t.Fatal(err)
	}
	bb.Comment("first").Comment("second")
	if err := bb.Err(); err != nil {
		t.Fatal(err)
	}

	want := "[s]\n# first\n# second\na = 1\n# after a\na2 = x\nb = 2\n"
	if got := s.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuilderAnchorResolvesLive(t *testing.T) {
	s := NewSection("s").Set("a", "1").Set("b", "2")
	b, _ := s.Get("b")
	bb, err := b.AddBefore()
	if err != nil {
		t.Fatal(err)
	}
	// shift the anchor by inserting ahead of it between builder calls
	bb.Comment("one")
	if err := s.Insert(0, NewComment().AddLine("# head\n")); err != nil {
		t.Fatal(err)
	}
	bb.Comment("two")
	if err := bb.Err(); err != nil {
		t.Fatal(err)
	}
	want := "[s]\n# head\na = 1\n# one\n# two\nb = 2\n"
	if got := s.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuilderDetachedAnchor(t *testing.T) {
	s := NewSection("s").Set("a", "1")
	o, _ := s.Get("a")

	clone := o.Clone()
	if _, err := clone.AddAfter(); !errors.Is(err, ErrNotAttached) {
		t.Errorf("got %v", err)
	}

	bb, err := o.AddAfter()
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Delete("a"); err != nil {
		t.Fatal(err)
	}
	bb.Comment("late")
	if !errors.Is(bb.Err(), ErrNotAttached) {
		t.Errorf("anchor removed mid-build: got %v", bb.Err())
	}
	if s.Len() != 0 {
		t.Error("failed build mutated the container")
	}
}

func TestBuilderKindChecks(t *testing.T) {
	d := NewDocument()
	if _, err := d.AddSection("s"); err != nil {
		t.Fatal(err)
	}
	bb := d.InsertAt(0).Option("k", "v")
	if !errors.Is(bb.Err(), ErrValue) {
		t.Errorf("option at document level: got %v", bb.Err())
	}

	s, _ := d.GetSection("s")
	bb = s.InsertAt(0).Section("inner")
	if !errors.Is(bb.Err(), ErrValue) {
		t.Errorf("section inside section: got %v", bb.Err())
	}
}

func TestBuilderStickyError(t *testing.T) {
	s := NewSection("s").Set("a", "1")
	bb := s.InsertAt(0).Option("a", "dup").Option("fine", "2")
	if !errors.Is(bb.Err(), ErrDuplicateOption) {
		t.Fatalf("got %v", bb.Err())
	}
	if s.HasOption("fine") {
		t.Error("insertions after an error must not apply")
	}
}

func TestBuilderSectionInsertion(t *testing.T) {
	d := NewDocument()
	if _, err := d.AddSection("z"); err != nil {
		t.Fatal(err)
	}
	bb := d.InsertAt(0).Comment("top").Section("a")
	if err := bb.Err(); err != nil {
		t.Fatal(err)
	}
	want := "# top\n[a]\n[z]\n"
	if got := d.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	sections := d.Sections()
	if len(sections) != 2 || sections[0] != "a" || sections[1] != "z" {
		t.Errorf("got %v", sections)
	}
}

func TestBuilderCommentPrefixing(t *testing.T) {
	s := NewSection("s")
	bb := s.InsertAt(0).Comment("plain\n; already prefixed")
	if err := bb.Err(); err != nil {
		t.Fatal(err)
	}
	want := "[s]\n# plain\n; already prefixed\n"
	if got := s.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCloneSectionBuilderIndependence(t *testing.T) {
	orig := NewSection("s").Set("a", "1")
	clone := orig.Clone()
	bb := clone.InsertAt(clone.Len()).Option("extra_option", "x")
	if err := bb.Err(); err != nil {
		t.Fatal(err)
	}
	if orig.HasOption("extra_option") {
		t.Error("option added to the clone appeared in the original")
	}
	if !clone.HasOption("extra_option") {
		t.Error("option missing from the clone")
	}
}
