package toon

import (
	"strings"
	"testing"

	"github.com/phobologic/xmldoc/internal/model"
)

func TestEncodeValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", `""`},
		{"simple", "hello", "hello"},
		{"leading space", " hello", `" hello"`},
		{"trailing space", "hello ", `"hello "`},
		{"newline", "a\nb", `"a\nb"`},
		{"tab", "a\tb", `"a\tb"`},
		{"carriage return", "a\rb", `"a\rb"`},
		{"true keyword", "true", `"true"`},
		{"True keyword", "True", `"True"`},
		{"false keyword", "false", `"false"`},
		{"null keyword", "null", `"null"`},
		{"integer", "42", "42"},
		{"negative integer", "-1", "-1"},
		{"float", "3.14", "3.14"},
		{"zero", "0", "0"},
		{"leading zero invalid", "01", "01"},
		{"comma", "a,b", `"a,b"`},
		{"colon", "a:b", `"a:b"`},
		{"quote", `a"b`, `"a\"b"`},
		{"backslash", `a\b`, `"a\\b"`},
		{"bracket", "a[b", `"a[b"`},
		{"brace", "a{b", `"a{b"`},
		{"dash prefix", "-foo", `"-foo"`},
		{"type id", "T:Acme.Engine", `"T:Acme.Engine"`},
		{"closed generic", "List{Int32}", `"List{Int32}"`},
		{"dotted name", "Acme.Engine.Run", "Acme.Engine.Run"},
		{"arity", "Bag`1", "Bag`1"},
		{"prose", "Starts the engine.", "Starts the engine."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := encodeValue(tt.in)
			if got != tt.want {
				t.Errorf("encodeValue(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	idx := &model.Index{
		Assembly: "Acme",
		Members: []model.Entry{
			{ID: "T:Acme.Engine", Kind: "class", Rank: 0.75, Summary: "The engine."},
			{ID: "M:Acme.Engine.Run", Kind: "method", Rank: 0.25, Summary: "Starts it, then waits."},
		},
		References: []model.Reference{
			{Source: "M:Acme.Engine.Run", Target: "T:Acme.Engine", Via: []string{"see", "seealso"}},
		},
	}

	got := Encode(idx)

	want := []string{
		"assembly: Acme",
		"members[2]{id,kind,rank,summary}:",
		`  "T:Acme.Engine",class,0.7500,The engine.`,
		`  "M:Acme.Engine.Run",method,0.2500,"Starts it, then waits."`,
		"references[1]{source,target,via}:",
		`  "M:Acme.Engine.Run","T:Acme.Engine",see seealso`,
	}
	lines := strings.Split(got, "\n")
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), got)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestEncodeSites(t *testing.T) {
	t.Parallel()

	idx := &model.Index{
		Assembly: "Acme",
		Sites: []model.Site{
			{Source: "M:Acme.Engine.Run", Target: "T:Acme.Engine", Tag: "see", Line: 12},
		},
	}

	got := Encode(idx)
	if !strings.Contains(got, "sites[1]{source,target,tag,line}:\n  \"M:Acme.Engine.Run\",\"T:Acme.Engine\",see,12") {
		t.Errorf("expected sites section, got:\n%s", got)
	}
}

func TestEncodeEmpty(t *testing.T) {
	t.Parallel()

	got := Encode(&model.Index{})
	if !strings.HasPrefix(got, `assembly: ""`) {
		t.Errorf("expected quoted empty assembly, got:\n%s", got)
	}
	if !strings.Contains(got, "members[0]{id,kind,rank,summary}:") {
		t.Errorf("expected empty members section, got:\n%s", got)
	}
	if !strings.Contains(got, "references[0]{source,target,via}:") {
		t.Errorf("expected empty references section, got:\n%s", got)
	}
	if strings.Contains(got, "sites") {
		t.Errorf("sites section should be omitted when empty, got:\n%s", got)
	}
}
