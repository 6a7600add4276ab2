package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/phobologic/xmldoc/internal/element"
	"github.com/phobologic/xmldoc/internal/memberid"
	"github.com/phobologic/xmldoc/internal/meta"
)

func readFixture(t *testing.T, opts Options) *element.Document {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", "Acme.xml"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	doc, err := Read(f, opts)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	return doc
}

func mustFind(t *testing.T, doc *element.Document, id string) *element.Member {
	t.Helper()
	m, ok := doc.Find(id)
	if !ok {
		t.Fatalf("member %q not found", id)
	}
	return m
}

// firstOf returns the first child of c with the given kind.
func firstOf(t *testing.T, c element.Container, kind element.Kind) element.Element {
	t.Helper()
	for _, e := range c.Children() {
		if e.Kind() == kind {
			return e
		}
	}
	t.Fatalf("no %s child under %s", kind, c.Kind())
	return nil
}

func TestReadMembers(t *testing.T) {
	t.Parallel()

	doc := readFixture(t, Options{})
	if doc.Assembly != "Acme" {
		t.Errorf("Assembly = %q, want Acme", doc.Assembly)
	}

	var got []element.Kind
	for _, m := range doc.Members() {
		got = append(got, m.Kind())
	}
	want := []element.Kind{
		element.KindType,
		element.KindMethod,
		element.KindProperty,
		element.KindUnknownMember,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("member kinds (-want +got):\n%s", diff)
	}

	bag := mustFind(t, doc, "T:Acme.Bag`1")
	if bag.Position().Line != 7 {
		t.Errorf("member position = %s, want line 7", bag.Position())
	}
	if got := bag.Attributes().Get("name"); got != "T:Acme.Bag`1" {
		t.Errorf("name attribute = %q", got)
	}
}

func TestReadDropsLayoutWhitespace(t *testing.T) {
	t.Parallel()

	doc := readFixture(t, Options{})
	bag := mustFind(t, doc, "T:Acme.Bag`1")

	var kinds []element.Kind
	for _, e := range bag.Children() {
		kinds = append(kinds, e.Kind())
	}
	if diff := cmp.Diff([]element.Kind{element.KindSummary, element.KindTypeParam}, kinds); diff != "" {
		t.Errorf("children (-want +got):\n%s", diff)
	}
}

func TestReadText(t *testing.T) {
	t.Parallel()

	doc := readFixture(t, Options{})
	tests := []struct {
		id   string
		want string
	}{
		{"T:Acme.Bag`1", "A bag of T items."},
		{"M:Acme.Bag`1.Add(`0)", "Adds item to the bag."},
		{"N:Acme", "Gets the Acme.Bag`1 instance."},
	}
	for _, tt := range tests {
		m := mustFind(t, doc, tt.id)
		summary := firstOf(t, m, element.KindSummary)
		if got := element.ToText(summary); got != tt.want {
			t.Errorf("%s summary = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestReadKeepNewLines(t *testing.T) {
	t.Parallel()

	doc := readFixture(t, Options{KeepNewLines: true})
	m := mustFind(t, doc, "N:Acme")
	summary := firstOf(t, m, element.KindSummary)

	if got, want := element.ToText(summary), "Gets the Acme.Bag`1\ninstance."; got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}

func TestReadTypedElements(t *testing.T) {
	t.Parallel()

	doc := readFixture(t, Options{})
	add := mustFind(t, doc, "M:Acme.Bag`1.Add(`0)")

	param := firstOf(t, add, element.KindParam).(*element.Param)
	if param.Name != "item" || element.ToText(param) != "The item." {
		t.Errorf("param = %q %q", param.Name, element.ToText(param))
	}

	exc := firstOf(t, add, element.KindException).(*element.Exception)
	if exc.Cref != "T:System.ArgumentNullException" {
		t.Errorf("exception cref = %q", exc.Cref)
	}

	example := firstOf(t, add, element.KindExample).(*element.Block)
	if n := len(example.Children()); n != 1 {
		t.Fatalf("example children = %d, want 1", n)
	}
	code := example.Children()[0].(*element.Code)
	want := "var bag = new Bag<int>();\n    bag.Add(1);"
	if code.Content != want {
		t.Errorf("code = %q, want %q", code.Content, want)
	}
}

func TestReadUnknownTagKeepsContent(t *testing.T) {
	t.Parallel()

	doc := readFixture(t, Options{})
	count := mustFind(t, doc, "P:Acme.Bag`1.Count")

	custom := firstOf(t, count, element.KindUnknown).(*element.Unknown)
	if custom.Name != "custom" {
		t.Errorf("Name = %q", custom.Name)
	}
	if custom.Attributes().Get("kind") != "x" {
		t.Errorf("attributes = %v", custom.Attributes())
	}
	if got := element.ToText(custom); got != "Kept text" {
		t.Errorf("text = %q", got)
	}
}

func TestReadInlineWhitespace(t *testing.T) {
	t.Parallel()

	src := `<doc><members><member name="F:A.b"><summary><c>x</c> <c>y</c></summary></member></members></doc>`
	doc, err := Read(strings.NewReader(src), Options{})
	if err != nil {
		t.Fatal(err)
	}
	summary := firstOf(t, mustFind(t, doc, "F:A.b"), element.KindSummary)
	if got := element.ToText(summary); got != "x y" {
		t.Errorf("text = %q, want %q", got, "x y")
	}
}

func TestReadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", "no root element"},
		{"wrong root", "<members/>", "want <doc>"},
		{"unclosed", "<doc><members>", "reading markup"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Read(strings.NewReader(tt.src), Options{})
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func acmeTypes() *memberid.Map {
	bag := meta.NewType("Acme", "Bag", meta.Class, meta.Public).WithTypeParameters("T")
	bag.AddMethod("Add", meta.Public).WithParameters(bag.TypeParameter(0))
	bag.AddProperty("Count", meta.NewType("System", "Int32", meta.Struct, meta.Public), meta.Public)

	ids := memberid.New()
	ids.Register(bag)
	return ids
}

func TestResolve(t *testing.T) {
	t.Parallel()

	doc := readFixture(t, Options{})
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	resolved, report := Resolve(doc, acmeTypes(), log)

	if report.Matched != 3 {
		t.Errorf("Matched = %d, want 3", report.Matched)
	}
	if diff := cmp.Diff([]string{"N:Acme"}, report.Unresolved); diff != "" {
		t.Errorf("Unresolved (-want +got):\n%s", diff)
	}

	bag := mustFind(t, resolved, "T:Acme.Bag`1")
	if bag.Kind() != element.KindClass {
		t.Errorf("bag kind = %s, want class", bag.Kind())
	}
	if bag.Descriptor() == nil || bag.Descriptor().Name() != "Bag" {
		t.Errorf("bag descriptor = %v", bag.Descriptor())
	}
	add := mustFind(t, resolved, "M:Acme.Bag`1.Add(`0)")
	if add.Kind() != element.KindMethod || add.Descriptor() == nil {
		t.Errorf("add = %s, %v", add.Kind(), add.Descriptor())
	}
	if ns := mustFind(t, resolved, "N:Acme"); ns.Descriptor() != nil {
		t.Error("unresolved member got a descriptor")
	}

	// The input document is left as read.
	orig := mustFind(t, doc, "T:Acme.Bag`1")
	if orig.Kind() != element.KindType || orig.Descriptor() != nil {
		t.Errorf("input member changed: %s, %v", orig.Kind(), orig.Descriptor())
	}

	var missing []string
	for _, e := range hook.AllEntries() {
		if id, ok := e.Data["id"]; ok {
			missing = append(missing, id.(string))
		}
	}
	if diff := cmp.Diff([]string{"N:Acme"}, missing); diff != "" {
		t.Errorf("logged ids (-want +got):\n%s", diff)
	}
}

func TestResolveCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category meta.Category
		want     element.Kind
	}{
		{meta.Class, element.KindClass},
		{meta.Struct, element.KindStruct},
		{meta.Interface, element.KindInterface},
		{meta.Enum, element.KindEnum},
		{meta.Delegate, element.KindType},
	}
	for _, tt := range tests {
		typ := meta.NewType("Acme", "Thing", tt.category, meta.Public)
		ids := memberid.New()
		ids.Register(typ)

		src := `<doc><members><member name="T:Acme.Thing"/></members></doc>`
		doc, err := Read(strings.NewReader(src), Options{})
		if err != nil {
			t.Fatal(err)
		}
		resolved, _ := Resolve(doc, ids, nil)
		if got := resolved.Members()[0].Kind(); got != tt.want {
			t.Errorf("%s: kind = %s, want %s", tt.category, got, tt.want)
		}
	}
}

func TestResolveNilLookup(t *testing.T) {
	t.Parallel()

	doc := readFixture(t, Options{})
	resolved, report := Resolve(doc, nil, nil)

	if report.Matched != 0 {
		t.Errorf("Matched = %d, want 0", report.Matched)
	}
	if len(report.Unresolved) != len(doc.Members()) {
		t.Errorf("Unresolved = %v, want every member", report.Unresolved)
	}
	for _, m := range resolved.Members() {
		if m.Descriptor() != nil {
			t.Errorf("%s: descriptor attached", m.ID())
		}
	}
}
