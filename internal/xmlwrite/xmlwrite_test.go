package xmlwrite

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/phobologic/xmldoc/internal/element"
	"github.com/phobologic/xmldoc/internal/ingest"
)

func text(s string) *element.Text { return element.NewText(s, element.Markup{}) }

func TestWrite(t *testing.T) {
	t.Parallel()

	bag := element.NewMember(element.KindClass, "T:Acme.Bag`1", element.Markup{}, element.Elements(
		element.NewBlock(element.KindSummary, element.Markup{}, element.Elements(
			text("A bag of "),
			element.NewTypeParamRef("T", element.Markup{}),
			text(" & more."),
		)),
	))
	add := element.NewMember(element.KindMethod, "M:Acme.Bag`1.Add(`0)", element.Markup{}, element.Elements(
		element.NewParam("item", element.Markup{}, element.Elements(text("The item."))),
		element.NewSee("", "null", "", "", element.Markup{}),
		element.NewList(element.Number, element.Markup{}, element.Elements(
			element.NewBlock(element.KindItem, element.Markup{}, element.Elements(text("x"))),
		)),
	))
	doc := element.NewDocument("Acme", element.Markup{}, element.Elements(bag, add))

	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	want := `<?xml version="1.0"?>
<doc>
  <assembly><name>Acme</name></assembly>
  <members>
    <member name="T:Acme.Bag` + "`" + `1"><summary>A bag of <typeparamref name="T"/> &amp; more.</summary></member>
    <member name="M:Acme.Bag` + "`" + `1.Add(` + "`" + `0)"><param name="item">The item.</param><see langword="null"/><list type="number"><item>x</item></list></member>
  </members>
</doc>
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("xml (-want +got):\n%s", diff)
	}
}

func TestWriteEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, element.NewDocument("", element.Markup{}, nil)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "<?xml version=\"1.0\"?>\n<doc>\n  <members/>\n</doc>\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("xml (-want +got):\n%s", diff)
	}
}

func TestWriteMarkupAttributes(t *testing.T) {
	t.Parallel()

	custom := element.NewUnknown("custom", element.Markup{Attrs: element.Attributes{"kind": "x", "a": "1"}},
		element.Elements(text("kept")))
	param := element.NewParam("p", element.Markup{Attrs: element.Attributes{"name": "stale", "extra": "y"}}, nil)
	m := element.NewMember(element.KindField, "F:Acme.X", element.Markup{}, element.Elements(custom, param))

	out := Build(element.NewDocument("", element.Markup{}, element.Elements(m)))
	got, err := out.WriteToString()
	if err != nil {
		t.Fatalf("WriteToString: %v", err)
	}

	for _, want := range []string{
		`<custom a="1" kind="x">kept</custom>`,
		`<param name="p" extra="y"/>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

type memberText struct {
	ID   string
	Kind element.Kind
	Text string
}

func texts(doc *element.Document) []memberText {
	var out []memberText
	for _, m := range doc.Members() {
		out = append(out, memberText{ID: m.ID(), Kind: m.Kind(), Text: element.ToText(m)})
	}
	return out
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	f, err := os.Open("../ingest/testdata/Acme.xml")
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	doc, err := ingest.Read(f, ingest.Options{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	again, err := ingest.Read(&buf, ingest.Options{})
	if err != nil {
		t.Fatalf("Read written output: %v", err)
	}

	if again.Assembly != doc.Assembly {
		t.Errorf("Assembly = %q, want %q", again.Assembly, doc.Assembly)
	}
	if diff := cmp.Diff(texts(doc), texts(again)); diff != "" {
		t.Errorf("members (-original +round trip):\n%s", diff)
	}
}
