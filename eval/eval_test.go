package eval

import (
	"testing"

	"github.com/confedit/go-confedit/parse"
)

func TestQuery(t *testing.T) {
	doc, err := parse.ParseString("[metadata]\nname = confedit\n[options]\nzip_safe = false\n")
	if err != nil {
		t.Fatal(err)
	}
	type queryTest struct {
		src  string
		want any
	}
	qts := []queryTest{
		{
			src:  `doc["metadata"]["name"]`,
			want: "confedit",
		},
		{
			src:  `has("metadata", "name")`,
			want: true,
		},
		{
			src:  `has("metadata", "nope")`,
			want: false,
		},
		{
			src:  `hasSection("options")`,
			want: true,
		},
		{
			src:  `value("options", "zip_safe")`,
			want: "false",
		},
		{
			src:  `value("options", "missing") == nil`,
			want: true,
		},
		{
			src:  `len(sections())`,
			want: 2,
		},
	}
	for _, qt := range qts {
		got, err := Query(doc, qt.src)
		if err != nil {
			t.Errorf("%s: %v", qt.src, err)
			continue
		}
		if got != qt.want {
			t.Errorf("%s: got %v (%T), want %v", qt.src, got, got, qt.want)
		}
	}
}

func TestQueryBool(t *testing.T) {
	doc, err := parse.ParseString("[a]\nx = 1\n")
	if err != nil {
		t.Fatal(err)
	}
	ok, err := QueryBool(doc, `has("a", "x") && doc["a"]["x"] == "1"`)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("predicate should hold")
	}
	if _, err := QueryBool(doc, `doc["a"]["x"]`); err == nil {
		t.Error("non-bool result must error")
	}
	if _, err := Query(doc, `this is not an expression`); err == nil {
		t.Error("compile failure must surface")
	}
}
