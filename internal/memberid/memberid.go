// Package memberid computes canonical documentation ids for type system
// members and keeps a bidirectional map between ids and descriptors.
//
// Ids take the form "<prefix>:<path>" where prefix is one of T (type),
// F (field), P (property), M (method or constructor) or E (event):
//
//	T:Acme.Collections.Cache`2
//	M:Acme.Collections.Cache`2.TryGet(`0,`1@)
//	M:Acme.Sample.Do``1(``0)
//	P:Acme.Outer.Inner.Value
//
// A Map is not safe for concurrent Register calls. Lookups are safe once
// registration has finished.
package memberid

import (
	"sort"
	"strconv"
	"strings"

	"github.com/phobologic/xmldoc/internal/meta"
)

// Map is the bidirectional id/descriptor table.
type Map struct {
	byID     map[string]meta.Member
	byMember map[meta.Member]string
}

// New returns an empty Map.
func New() *Map {
	return &Map{
		byID:     make(map[string]meta.Member),
		byMember: make(map[meta.Member]string),
	}
}

// Register walks each descriptor and records every eligible member. Types are
// walked recursively through their members and nested types; any type
// reached while rendering a path or parameter list is recorded as well.
// Members the id format cannot represent are skipped silently.
func (m *Map) Register(members ...meta.Member) {
	for _, member := range members {
		if t, ok := member.(meta.Type); ok && member.Kind() == meta.KindType {
			m.registerType(t)
			continue
		}
		m.registerMember(member)
	}
}

func (m *Map) registerType(t meta.Type) {
	r := &renderer{collect: true}
	r.writeType(t)
	m.merge(r.entries)

	for _, member := range t.Members() {
		if nested, ok := member.(meta.Type); ok && member.Kind() == meta.KindType {
			m.registerType(nested)
			continue
		}
		m.registerMember(member)
	}
}

func (m *Map) registerMember(member meta.Member) {
	if !eligible(member) {
		return
	}
	r := &renderer{collect: true}
	if !r.writeMember(member) {
		return
	}
	m.merge(r.entries)
	m.put(r.b.String(), member)
}

func (m *Map) merge(entries []entry) {
	for _, e := range entries {
		m.put(e.id, e.member)
	}
}

func (m *Map) put(id string, member meta.Member) {
	m.byID[id] = member
	m.byMember[member] = id
}

// IDOf returns the id recorded for a registered descriptor.
func (m *Map) IDOf(member meta.Member) (string, bool) {
	id, ok := m.byMember[member]
	return id, ok
}

// DescriptorOf returns the descriptor recorded under id.
func (m *Map) DescriptorOf(id string) (meta.Member, bool) {
	member, ok := m.byID[id]
	return member, ok
}

// Len returns the number of registered ids.
func (m *Map) Len() int {
	return len(m.byID)
}

// IDs returns every registered id in sorted order.
func (m *Map) IDs() []string {
	ids := make([]string, 0, len(m.byID))
	for id := range m.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ID computes the canonical id of a member without registering anything.
// Eligibility rules do not apply: a private field still has an id.
func ID(member meta.Member) (string, bool) {
	r := &renderer{}
	if !r.writeMember(member) {
		return "", false
	}
	return r.b.String(), true
}

// eligible reports whether a member gets its own map entry. Private fields
// and methods are left out, as are accessor and operator methods.
func eligible(member meta.Member) bool {
	switch member.Kind() {
	case meta.KindField:
		return member.Access() != meta.Private
	case meta.KindMethod:
		method, ok := member.(meta.Method)
		return ok && member.Access() != meta.Private && !method.IsSpecialName()
	case meta.KindConstructor, meta.KindProperty, meta.KindEvent, meta.KindType:
		return true
	}
	return false
}

type entry struct {
	id     string
	member meta.Member
}

// renderer builds one id. When collect is set, every named type written
// along the way is queued for registration under its own T: id.
type renderer struct {
	b       strings.Builder
	collect bool
	entries []entry
}

func (r *renderer) writeMember(member meta.Member) bool {
	switch member.Kind() {
	case meta.KindType:
		t, ok := member.(meta.Type)
		if !ok || t.IsGenericParameter() {
			return false
		}
		r.b.WriteString("T:")
		r.writeType(t)
	case meta.KindField:
		r.writeQualified("F:", member)
	case meta.KindProperty:
		r.writeQualified("P:", member)
		// Indexers carry their parameter list.
		if indexer, ok := member.(interface{ Parameters() []meta.Type }); ok {
			r.writeParameters(indexer.Parameters())
		}
	case meta.KindEvent:
		r.writeQualified("E:", member)
	case meta.KindMethod, meta.KindConstructor:
		method, ok := member.(meta.Method)
		if !ok || member.DeclaringType() == nil {
			return false
		}
		r.b.WriteString("M:")
		r.writeType(member.DeclaringType())
		r.b.WriteByte('.')
		r.b.WriteString(methodName(method))
		if n := method.GenericArity(); n > 0 {
			r.b.WriteString("``")
			r.b.WriteString(strconv.Itoa(n))
		}
		r.writeParameters(method.Parameters())
	default:
		return false
	}
	return true
}

func methodName(method meta.Method) string {
	if method.Kind() != meta.KindConstructor {
		return method.Name()
	}
	if method.IsStatic() {
		return "#cctor"
	}
	return "#ctor"
}

func (r *renderer) writeQualified(prefix string, member meta.Member) {
	r.b.WriteString(prefix)
	if dt := member.DeclaringType(); dt != nil {
		r.writeType(dt)
		r.b.WriteByte('.')
	}
	r.b.WriteString(member.Name())
}

// writeParameters appends "(a,b)". Parameterless members get no list.
func (r *renderer) writeParameters(params []meta.Type) {
	if len(params) == 0 {
		return
	}
	r.b.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			r.b.WriteByte(',')
		}
		r.writeType(p)
	}
	r.b.WriteByte(')')
}

func (r *renderer) writeType(t meta.Type) {
	if elem, mod, rank := t.Element(); mod != meta.None && elem != nil {
		r.writeType(elem)
		r.b.WriteString(modifierSuffix(mod, rank))
		return
	}

	// Generic parameters are positional and never recorded: they cannot be
	// referenced on their own.
	if t.IsGenericParameter() {
		if t.DeclaringMethod() != nil {
			r.b.WriteString("``")
		} else {
			r.b.WriteByte('`')
		}
		r.b.WriteString(strconv.Itoa(t.GenericParameterPosition()))
		return
	}

	if dt := t.DeclaringType(); dt != nil {
		r.writeType(dt)
		r.b.WriteByte('.')
	} else if ns := t.Namespace(); ns != "" {
		r.b.WriteString(ns)
		r.b.WriteByte('.')
	}
	r.b.WriteString(t.Name())

	if meta.IsClosedGeneric(t) {
		r.b.WriteByte('{')
		for i, arg := range t.GenericArguments() {
			if i > 0 {
				r.b.WriteByte(',')
			}
			r.writeType(arg)
		}
		r.b.WriteByte('}')
	} else if n := t.GenericArity(); n > 0 {
		r.b.WriteByte('`')
		r.b.WriteString(strconv.Itoa(n))
	}

	if r.collect {
		r.entries = append(r.entries, entry{id: typeID(t), member: t})
	}
}

// typeID renders the bare T: id of a named type with collection suppressed.
func typeID(t meta.Type) string {
	r := &renderer{}
	r.b.WriteString("T:")
	r.writeType(t)
	return r.b.String()
}

func modifierSuffix(mod meta.Modifier, rank int) string {
	switch mod {
	case meta.Array:
		if rank <= 1 {
			return "[]"
		}
		dims := make([]string, rank)
		for i := range dims {
			dims[i] = "0:"
		}
		return "[" + strings.Join(dims, ",") + "]"
	case meta.ByRef:
		return "@"
	case meta.Pointer:
		return "*"
	}
	return ""
}
