package introspect

import (
	"strconv"
	"strings"

	"github.com/phobologic/xmldoc/internal/meta"
)

// predefined maps the C# keyword types to their runtime types.
var predefined = map[string]struct {
	name     string
	category meta.Category
}{
	"bool":    {"Boolean", meta.Struct},
	"byte":    {"Byte", meta.Struct},
	"sbyte":   {"SByte", meta.Struct},
	"char":    {"Char", meta.Struct},
	"decimal": {"Decimal", meta.Struct},
	"double":  {"Double", meta.Struct},
	"float":   {"Single", meta.Struct},
	"int":     {"Int32", meta.Struct},
	"uint":    {"UInt32", meta.Struct},
	"long":    {"Int64", meta.Struct},
	"ulong":   {"UInt64", meta.Struct},
	"short":   {"Int16", meta.Struct},
	"ushort":  {"UInt16", meta.Struct},
	"nint":    {"IntPtr", meta.Struct},
	"nuint":   {"UIntPtr", meta.Struct},
	"void":    {"Void", meta.Struct},
	"object":  {"Object", meta.Class},
	"dynamic": {"Object", meta.Class},
	"string":  {"String", meta.Class},
}

// wellKnown places common framework types referenced by simple name.
var wellKnown = map[string]struct {
	namespace string
	category  meta.Category
}{
	"Action":                {"System", meta.Delegate},
	"Func":                  {"System", meta.Delegate},
	"Predicate":             {"System", meta.Delegate},
	"EventHandler":          {"System", meta.Delegate},
	"EventArgs":             {"System", meta.Class},
	"Exception":             {"System", meta.Class},
	"Attribute":             {"System", meta.Class},
	"Type":                  {"System", meta.Class},
	"Uri":                   {"System", meta.Class},
	"Lazy":                  {"System", meta.Class},
	"Tuple":                 {"System", meta.Class},
	"IDisposable":           {"System", meta.Interface},
	"IEquatable":            {"System", meta.Interface},
	"IComparable":           {"System", meta.Interface},
	"Guid":                  {"System", meta.Struct},
	"DateTime":              {"System", meta.Struct},
	"DateTimeOffset":        {"System", meta.Struct},
	"TimeSpan":              {"System", meta.Struct},
	"Nullable":              {"System", meta.Struct},
	"ValueTuple":            {"System", meta.Struct},
	"Span":                  {"System", meta.Struct},
	"ReadOnlySpan":          {"System", meta.Struct},
	"Memory":                {"System", meta.Struct},
	"ReadOnlyMemory":        {"System", meta.Struct},
	"IEnumerable":           {"System.Collections.Generic", meta.Interface},
	"IEnumerator":           {"System.Collections.Generic", meta.Interface},
	"ICollection":           {"System.Collections.Generic", meta.Interface},
	"IList":                 {"System.Collections.Generic", meta.Interface},
	"IDictionary":           {"System.Collections.Generic", meta.Interface},
	"IReadOnlyCollection":   {"System.Collections.Generic", meta.Interface},
	"IReadOnlyList":         {"System.Collections.Generic", meta.Interface},
	"IReadOnlyDictionary":   {"System.Collections.Generic", meta.Interface},
	"IComparer":             {"System.Collections.Generic", meta.Interface},
	"IEqualityComparer":     {"System.Collections.Generic", meta.Interface},
	"List":                  {"System.Collections.Generic", meta.Class},
	"Dictionary":            {"System.Collections.Generic", meta.Class},
	"HashSet":               {"System.Collections.Generic", meta.Class},
	"Queue":                 {"System.Collections.Generic", meta.Class},
	"Stack":                 {"System.Collections.Generic", meta.Class},
	"KeyValuePair":          {"System.Collections.Generic", meta.Struct},
	"Task":                  {"System.Threading.Tasks", meta.Class},
	"ValueTask":             {"System.Threading.Tasks", meta.Struct},
	"CancellationToken":     {"System.Threading", meta.Struct},
	"Stream":                {"System.IO", meta.Class},
	"TextReader":            {"System.IO", meta.Class},
	"TextWriter":            {"System.IO", meta.Class},
	"StringBuilder":         {"System.Text", meta.Class},
	"IAsyncEnumerable":      {"System.Collections.Generic", meta.Interface},
	"IAsyncDisposable":      {"System", meta.Interface},
	"ConcurrentDictionary":  {"System.Collections.Concurrent", meta.Class},
	"IServiceProvider":      {"System", meta.Interface},
	"IFormatProvider":       {"System", meta.Interface},
	"ArgumentException":     {"System", meta.Class},
	"ArgumentNullException": {"System", meta.Class},
}

// scope resolves type references written inside a declaration.
type scope struct {
	l      *loader
	ns     string
	owner  *meta.TypeInfo
	method *meta.MethodInfo
	// methodParams are the generic parameter names of method, in order.
	methodParams []string
}

// resolve maps a type reference to a descriptor. Unparseable text becomes
// an opaque type named after the text.
func (s *scope) resolve(text string) meta.Type {
	e, ok := parseTypeExpr(text)
	if !ok {
		return s.l.external("", collapseWhitespace(text), 0, meta.Class)
	}
	return s.resolveExpr(e)
}

func (s *scope) resolveExpr(e *typeExpr) meta.Type {
	var t meta.Type
	if e.tuple != nil {
		args := make([]meta.Type, len(e.tuple))
		for i, el := range e.tuple {
			args[i] = s.resolveExpr(el)
		}
		t = s.l.instantiate(s.l.external("System", "ValueTuple", len(args), meta.Struct), args...)
	} else {
		args := make([]meta.Type, len(e.args))
		for i, a := range e.args {
			args[i] = s.resolveExpr(a)
		}
		t = s.named(e.segments, len(args))
		if len(args) > 0 {
			t = s.l.instantiate(t, args...)
		}
	}

	for _, sfx := range e.suffixes {
		switch sfx.kind {
		case '?':
			// Nullable reference types keep their identity.
			if c := t.Category(); c == meta.Struct || c == meta.Enum {
				t = s.l.instantiate(s.l.external("System", "Nullable", 1, meta.Struct), t)
			}
		case '*':
			t = s.l.shape(t, meta.Pointer, 0)
		case '[':
			t = s.l.shape(t, meta.Array, sfx.rank)
		}
	}
	return t
}

func (s *scope) named(segments []string, arity int) meta.Type {
	if len(segments) == 1 && arity == 0 {
		name := segments[0]
		if p := s.genericParameter(name); p != nil {
			return p
		}
		if k, ok := predefined[name]; ok {
			return s.l.external("System", k.name, 0, k.category)
		}
	}

	if d := s.declared(segments, arity); d != nil {
		return d
	}

	name := segments[len(segments)-1]
	if len(segments) == 1 {
		if k, ok := wellKnown[name]; ok {
			return s.l.external(k.namespace, name, arity, k.category)
		}
		return s.l.external("", name, arity, meta.Class)
	}
	ns := strings.Join(segments[:len(segments)-1], ".")
	if ns == "System" {
		if k, ok := predefinedByName(name); ok {
			return s.l.external("System", name, arity, k)
		}
	}
	if k, ok := wellKnown[name]; ok && k.namespace == ns {
		return s.l.external(ns, name, arity, k.category)
	}
	return s.l.external(ns, name, arity, meta.Class)
}

func predefinedByName(name string) (meta.Category, bool) {
	for _, k := range predefined {
		if k.name == name {
			return k.category, true
		}
	}
	return "", false
}

// genericParameter finds a type parameter in scope: the method's first,
// then those of each enclosing type.
func (s *scope) genericParameter(name string) meta.Type {
	for i, p := range s.methodParams {
		if p == name {
			return s.method.TypeParameter(i)
		}
	}
	for t := s.owner; t != nil; t = declaringInfo(t) {
		for i := 0; i < t.GenericArity(); i++ {
			if p := t.TypeParameter(i); p.Name() == name {
				return p
			}
		}
	}
	return nil
}

// declared finds a type declared in the loaded sources. Nested scopes are
// searched first, then the namespace and its parents, then a unique simple
// name match anywhere.
func (s *scope) declared(segments []string, arity int) *meta.TypeInfo {
	name := strings.Join(segments, ".") + arityTag(arity)

	for t := s.owner; t != nil; t = declaringInfo(t) {
		if d, ok := s.l.types[s.l.keys[t]+"."+name]; ok {
			return d
		}
	}
	for ns := s.ns; ; ns = parentNamespace(ns) {
		if d, ok := s.l.types[joinName(ns, name)]; ok {
			return d
		}
		if ns == "" {
			break
		}
	}
	if len(segments) == 1 {
		if c := s.l.bySimple[name]; len(c) == 1 {
			return c[0]
		}
	}
	return nil
}

func declaringInfo(t *meta.TypeInfo) *meta.TypeInfo {
	d, _ := t.DeclaringType().(*meta.TypeInfo)
	return d
}

func arityTag(n int) string {
	if n == 0 {
		return ""
	}
	return "`" + strconv.Itoa(n)
}

func joinName(ns, name string) string {
	if ns == "" {
		return name
	}
	return ns + "." + name
}

func parentNamespace(ns string) string {
	if i := strings.LastIndexByte(ns, '.'); i >= 0 {
		return ns[:i]
	}
	return ""
}
