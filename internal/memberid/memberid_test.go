package memberid

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/phobologic/xmldoc/internal/meta"
)

func system(name string) *meta.TypeInfo {
	return meta.NewType("System", name, meta.Struct, meta.Public)
}

func TestNestedTypePath(t *testing.T) {
	t.Parallel()

	outer := meta.NewType("", "Outer", meta.Class, meta.Public)
	inner := outer.AddNested("Inner", meta.Class, meta.Public)
	value := inner.AddProperty("Value", system("Int32"), meta.Public)

	m := New()
	m.Register(outer)

	for id, want := range map[string]meta.Member{
		"T:Outer":             outer,
		"T:Outer.Inner":       inner,
		"P:Outer.Inner.Value": value,
	} {
		got, ok := m.DescriptorOf(id)
		if !ok {
			t.Errorf("DescriptorOf(%q) not found; registered: %v", id, m.IDs())
			continue
		}
		if got != want {
			t.Errorf("DescriptorOf(%q) = %v, want %v", id, got, want)
		}
	}
}

func TestNestedTypeUsesEnclosingTypeNotNamespace(t *testing.T) {
	t.Parallel()

	outer := meta.NewType("Acme", "Outer", meta.Class, meta.Public)
	inner := outer.AddNested("Inner", meta.Struct, meta.Public)

	id, ok := ID(inner)
	if !ok {
		t.Fatal("ID returned !ok")
	}
	if id != "T:Acme.Outer.Inner" {
		t.Errorf("id = %q, want T:Acme.Outer.Inner", id)
	}
}

func TestGenericMethod(t *testing.T) {
	t.Parallel()

	sample := meta.NewType("", "Sample", meta.Class, meta.Public)
	do := sample.AddMethod("Do", meta.Public).WithTypeParameters("T")
	do.WithParameters(do.TypeParameter(0))

	m := New()
	m.Register(sample)

	id, ok := m.IDOf(do)
	if !ok {
		t.Fatalf("method not registered; ids: %v", m.IDs())
	}
	if id != "M:Sample.Do``1(``0)" {
		t.Errorf("id = %q, want M:Sample.Do``1(``0)", id)
	}
}

func TestGenericArity(t *testing.T) {
	t.Parallel()

	cache := meta.NewType("Acme", "Cache", meta.Class, meta.Public).WithTypeParameters("TKey", "TValue")
	get := cache.AddMethod("TryGet", meta.Public)
	get.WithParameters(cache.TypeParameter(0), meta.ByRefOf(cache.TypeParameter(1)))

	m := New()
	m.Register(cache)

	id, ok := m.IDOf(cache)
	if !ok {
		t.Fatal("type not registered")
	}
	if !strings.HasSuffix(id, "`2") {
		t.Errorf("type id = %q, want suffix `2", id)
	}

	id, _ = m.IDOf(get)
	if id != "M:Acme.Cache`2.TryGet(`0,`1@)" {
		t.Errorf("method id = %q", id)
	}
}

func TestClosedGenericArguments(t *testing.T) {
	t.Parallel()

	list := meta.NewType("System.Collections.Generic", "List", meta.Class, meta.Public).WithTypeParameters("T")
	closed := meta.Instantiate(list, system("Int32"))

	owner := meta.NewType("Acme", "Owner", meta.Class, meta.Public)
	add := owner.AddMethod("AddAll", meta.Public).WithParameters(closed)

	m := New()
	m.Register(owner)

	id, _ := m.IDOf(add)
	want := "M:Acme.Owner.AddAll(System.Collections.Generic.List{System.Int32})"
	if id != want {
		t.Fatalf("id = %q, want %q", id, want)
	}

	closedID, ok := m.IDOf(closed)
	if !ok {
		t.Fatal("closed instantiation not recorded")
	}
	if !strings.Contains(closedID, "{System.Int32}") || strings.HasSuffix(closedID, "`1") {
		t.Errorf("closed id = %q", closedID)
	}
}

func TestReachableTypesRegistered(t *testing.T) {
	t.Parallel()

	str := meta.NewType("System", "String", meta.Class, meta.Public)
	owner := meta.NewType("Acme", "Owner", meta.Class, meta.Public)
	owner.AddMethod("Print", meta.Public).WithParameters(str, meta.ArrayOf(system("Byte"), 1))

	m := New()
	m.Register(owner)

	got, ok := m.DescriptorOf("T:System.String")
	if !ok || got != str {
		t.Errorf("T:System.String = %v, %v", got, ok)
	}
	if _, ok := m.DescriptorOf("T:System.Byte"); !ok {
		t.Error("array element type not recorded")
	}
	for _, id := range m.IDs() {
		if strings.Contains(id, "[]") {
			t.Errorf("array shape recorded as %q", id)
		}
	}
}

func TestPrivacyExclusion(t *testing.T) {
	t.Parallel()

	owner := meta.NewType("Acme", "Owner", meta.Class, meta.Public)
	field := owner.AddField("secret", system("Int32"), meta.Private)
	method := owner.AddMethod("Hidden", meta.Private)
	ctor := owner.AddConstructor(meta.Private)
	prop := owner.AddProperty("Internal", system("Int32"), meta.Private)

	m := New()
	m.Register(owner)

	if _, ok := m.IDOf(field); ok {
		t.Error("private field registered")
	}
	if _, ok := m.IDOf(method); ok {
		t.Error("private method registered")
	}
	if _, ok := m.DescriptorOf("F:Acme.Owner.secret"); ok {
		t.Error("private field has forward entry")
	}
	if _, ok := m.DescriptorOf("M:Acme.Owner.Hidden"); ok {
		t.Error("private method has forward entry")
	}
	if id, ok := m.IDOf(ctor); !ok || id != "M:Acme.Owner.#ctor" {
		t.Errorf("constructor id = %q, %v", id, ok)
	}
	if _, ok := m.IDOf(prop); !ok {
		t.Error("property should always be registered")
	}
}

func TestSpecialNameExcluded(t *testing.T) {
	t.Parallel()

	owner := meta.NewType("Acme", "Owner", meta.Class, meta.Public)
	getter := owner.AddMethod("get_Count", meta.Public).SpecialName()
	op := owner.AddMethod("op_Addition", meta.Public).SpecialName().Static()

	m := New()
	m.Register(owner)

	if _, ok := m.IDOf(getter); ok {
		t.Error("accessor registered")
	}
	if _, ok := m.IDOf(op); ok {
		t.Error("operator registered")
	}
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	owner := meta.NewType("Acme", "Owner", meta.Class, meta.Public)
	ctor := owner.AddConstructor(meta.Public).WithParameters(system("Int32"))
	cctor := owner.AddConstructor(meta.Private).Static()

	m := New()
	m.Register(owner)

	tests := []struct {
		member meta.Member
		want   string
	}{
		{ctor, "M:Acme.Owner.#ctor(System.Int32)"},
		{cctor, "M:Acme.Owner.#cctor"},
	}
	for _, tt := range tests {
		got, ok := m.IDOf(tt.member)
		if !ok || got != tt.want {
			t.Errorf("IDOf = %q, %v; want %q", got, ok, tt.want)
		}
	}
}

func TestParameterShapes(t *testing.T) {
	t.Parallel()

	i32 := system("Int32")

	tests := []struct {
		name  string
		param meta.Type
		want  string
	}{
		{"array", meta.ArrayOf(i32, 1), "M:Acme.Owner.Run(System.Int32[])"},
		{"matrix", meta.ArrayOf(i32, 2), "M:Acme.Owner.Run(System.Int32[0:,0:])"},
		{"byref", meta.ByRefOf(i32), "M:Acme.Owner.Run(System.Int32@)"},
		{"pointer", meta.PointerOf(i32), "M:Acme.Owner.Run(System.Int32*)"},
		{"jagged", meta.ArrayOf(meta.ArrayOf(i32, 1), 1), "M:Acme.Owner.Run(System.Int32[][])"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			owner := meta.NewType("Acme", "Owner", meta.Class, meta.Public)
			method := owner.AddMethod("Run", meta.Public)
			method.WithParameters(tt.param)
			got, ok := ID(method)
			if !ok || got != tt.want {
				t.Errorf("ID = %q, %v; want %q", got, ok, tt.want)
			}
		})
	}
}

func TestFieldsEventsAndMembers(t *testing.T) {
	t.Parallel()

	handler := meta.NewType("System", "EventHandler", meta.Delegate, meta.Public)
	owner := meta.NewType("Acme", "Owner", meta.Class, meta.Public)
	owner.AddField("Count", system("Int32"), meta.Public)
	owner.AddField("limit", system("Int32"), meta.Protected)
	owner.AddEvent("Changed", handler, meta.Public)
	owner.AddMethod("Reset", meta.Public)

	m := New()
	m.Register(owner)

	want := []string{
		"E:Acme.Owner.Changed",
		"F:Acme.Owner.Count",
		"F:Acme.Owner.limit",
		"M:Acme.Owner.Reset",
		"T:Acme.Owner",
	}
	if diff := cmp.Diff(want, m.IDs()); diff != "" {
		t.Errorf("IDs mismatch (-want +got):\n%s", diff)
	}
}

func TestIndexerParameters(t *testing.T) {
	t.Parallel()

	list := meta.NewType("Acme", "Table", meta.Class, meta.Public)
	item := list.AddProperty("Item", system("String"), meta.Public).
		WithParameters(system("Int32"), system("String"))
	count := list.AddProperty("Count", system("Int32"), meta.Public)

	m := New()
	m.Register(list)

	if id, _ := m.IDOf(item); id != "P:Acme.Table.Item(System.Int32,System.String)" {
		t.Errorf("indexer id = %q", id)
	}
	if id, _ := m.IDOf(count); id != "P:Acme.Table.Count" {
		t.Errorf("property id = %q", id)
	}
}

func TestDeterminism(t *testing.T) {
	t.Parallel()

	build := func() (*meta.TypeInfo, *meta.MethodInfo) {
		owner := meta.NewType("Acme", "Owner", meta.Class, meta.Public)
		method := owner.AddMethod("Map", meta.Public).WithTypeParameters("TIn", "TOut")
		method.WithParameters(method.TypeParameter(0), meta.ArrayOf(method.TypeParameter(1), 1))
		return owner, method
	}

	o1, m1 := build()
	_, m2 := build()

	m := New()
	m.Register(o1)
	registered, ok := m.IDOf(m1)
	if !ok {
		t.Fatal("method not registered")
	}
	computed, _ := ID(m2)
	if registered != computed {
		t.Errorf("ids differ: %q vs %q", registered, computed)
	}
	if computed != "M:Acme.Owner.Map``2(``0,``1[])" {
		t.Errorf("id = %q", computed)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	list := meta.NewType("Acme", "Bag", meta.Class, meta.Public).WithTypeParameters("T")
	list.AddConstructor(meta.Public)
	list.AddMethod("Add", meta.Public).WithParameters(list.TypeParameter(0))
	list.AddProperty("Count", system("Int32"), meta.Public)
	nested := list.AddNested("Enumerator", meta.Struct, meta.Public)
	nested.AddProperty("Current", list.TypeParameter(0), meta.Public)

	m := New()
	m.Register(list)
	m.Register(list)

	for _, id := range m.IDs() {
		d, ok := m.DescriptorOf(id)
		if !ok {
			t.Fatalf("DescriptorOf(%q) missing", id)
		}
		back, ok := m.IDOf(d)
		if !ok || back != id {
			t.Errorf("IDOf(DescriptorOf(%q)) = %q, %v", id, back, ok)
		}
	}

	if _, ok := m.DescriptorOf("P:Acme.Bag`1.Enumerator.Current"); !ok {
		t.Errorf("nested member of generic type missing; ids: %v", m.IDs())
	}
}

func TestGenericParameterNeverRegistered(t *testing.T) {
	t.Parallel()

	bag := meta.NewType("Acme", "Bag", meta.Class, meta.Public).WithTypeParameters("T")
	bag.AddMethod("Add", meta.Public).WithParameters(bag.TypeParameter(0))

	m := New()
	m.Register(bag)

	if _, ok := m.IDOf(bag.TypeParameter(0)); ok {
		t.Error("generic parameter registered")
	}
	if _, ok := ID(bag.TypeParameter(0)); ok {
		t.Error("generic parameter has a standalone id")
	}
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()

	m := New()
	if _, ok := m.DescriptorOf("T:Nope"); ok {
		t.Error("unknown id found")
	}
	if _, ok := m.IDOf(meta.NewType("", "Nope", meta.Class, meta.Public)); ok {
		t.Error("unregistered descriptor found")
	}
	if m.Len() != 0 {
		t.Errorf("Len = %d", m.Len())
	}
}

type opaque struct{}

func (opaque) Kind() meta.MemberKind    { return "indexer-ish" }
func (opaque) Name() string             { return "Weird" }
func (opaque) DeclaringType() meta.Type { return nil }
func (opaque) Access() meta.Access      { return meta.Public }

func TestUnknownKindSkipped(t *testing.T) {
	t.Parallel()

	owner := meta.NewType("Acme", "Owner", meta.Class, meta.Public)
	owner.AddMember(opaque{})

	m := New()
	m.Register(owner, opaque{})

	if m.Len() != 1 {
		t.Errorf("ids = %v, want only the owner", m.IDs())
	}
}
