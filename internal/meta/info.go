package meta

import (
	"fmt"
	"strings"
)

// TypeInfo is an in-memory Type. The zero value is not usable; build one with
// NewType and the Add* methods.
type TypeInfo struct {
	name      string
	namespace string
	declaring Type
	access    Access
	category  Category
	members   []Member

	typeParams []*TypeInfo
	args       []Type
	def        Type

	isParam  bool
	position int
	method   Method

	elem Type
	mod  Modifier
	rank int
}

// NewType returns a top-level type definition.
func NewType(namespace, name string, category Category, access Access) *TypeInfo {
	t := &TypeInfo{
		name:      name,
		namespace: namespace,
		access:    access,
		category:  category,
	}
	t.def = t
	return t
}

func (t *TypeInfo) Kind() MemberKind              { return KindType }
func (t *TypeInfo) Name() string                  { return t.name }
func (t *TypeInfo) Namespace() string             { return t.namespace }
func (t *TypeInfo) DeclaringType() Type           { return t.declaring }
func (t *TypeInfo) Access() Access                { return t.access }
func (t *TypeInfo) Category() Category            { return t.category }
func (t *TypeInfo) Members() []Member             { return t.members }
func (t *TypeInfo) GenericArity() int             { return len(t.typeParams) }
func (t *TypeInfo) GenericArguments() []Type      { return t.args }
func (t *TypeInfo) Definition() Type              { return t.def }
func (t *TypeInfo) IsGenericParameter() bool      { return t.isParam }
func (t *TypeInfo) GenericParameterPosition() int { return t.position }
func (t *TypeInfo) DeclaringMethod() Method       { return t.method }

func (t *TypeInfo) Element() (Type, Modifier, int) {
	return t.elem, t.mod, t.rank
}

// String returns the dotted name of t, including enclosing types. Generic
// parameters print as their bare name.
func (t *TypeInfo) String() string {
	switch {
	case t.isParam:
		return t.name
	case t.elem != nil:
		return typeString(t.elem) + strings.TrimPrefix(t.name, t.elem.Name())
	case t.declaring != nil:
		return typeString(t.declaring) + "." + t.name
	case t.namespace != "":
		return t.namespace + "." + t.name
	}
	return t.name
}

func typeString(t Type) string {
	if s, ok := t.(fmt.Stringer); ok {
		return s.String()
	}
	if t.Namespace() == "" {
		return t.Name()
	}
	return t.Namespace() + "." + t.Name()
}

// WithTypeParameters declares generic parameters on the type definition.
func (t *TypeInfo) WithTypeParameters(names ...string) *TypeInfo {
	for _, name := range names {
		t.typeParams = append(t.typeParams, &TypeInfo{
			name:      name,
			declaring: t,
			access:    Public,
			isParam:   true,
			position:  len(t.typeParams),
		})
	}
	return t
}

// TypeParameter returns the i-th generic parameter declared by the type.
func (t *TypeInfo) TypeParameter(i int) Type {
	return t.typeParams[i]
}

// AddNested declares a type nested in t.
func (t *TypeInfo) AddNested(name string, category Category, access Access) *TypeInfo {
	n := &TypeInfo{
		name:      name,
		namespace: t.namespace,
		declaring: t,
		access:    access,
		category:  category,
	}
	n.def = n
	t.members = append(t.members, n)
	return n
}

// AddField declares a field of the given type.
func (t *TypeInfo) AddField(name string, typ Type, access Access) *MemberInfo {
	return t.addMember(KindField, name, typ, access)
}

// AddProperty declares a property of the given type.
func (t *TypeInfo) AddProperty(name string, typ Type, access Access) *MemberInfo {
	return t.addMember(KindProperty, name, typ, access)
}

// AddEvent declares an event of the given handler type.
func (t *TypeInfo) AddEvent(name string, typ Type, access Access) *MemberInfo {
	return t.addMember(KindEvent, name, typ, access)
}

func (t *TypeInfo) addMember(kind MemberKind, name string, typ Type, access Access) *MemberInfo {
	m := &MemberInfo{kind: kind, name: name, declaring: t, typ: typ, access: access}
	t.members = append(t.members, m)
	return m
}

// AddMethod declares a method. Parameters are set afterwards with
// WithParameters so they can refer to the method's own type parameters.
func (t *TypeInfo) AddMethod(name string, access Access) *MethodInfo {
	m := &MethodInfo{kind: KindMethod, name: name, declaring: t, access: access}
	t.members = append(t.members, m)
	return m
}

// AddConstructor declares an instance constructor.
func (t *TypeInfo) AddConstructor(access Access) *MethodInfo {
	m := &MethodInfo{kind: KindConstructor, name: ".ctor", declaring: t, access: access}
	t.members = append(t.members, m)
	return m
}

// AddMember appends an arbitrary member implementation.
func (t *TypeInfo) AddMember(m Member) {
	t.members = append(t.members, m)
}

// Instantiate closes a generic definition over concrete arguments.
func Instantiate(def Type, args ...Type) *TypeInfo {
	return &TypeInfo{
		name:      def.Name(),
		namespace: def.Namespace(),
		declaring: def.DeclaringType(),
		access:    def.Access(),
		category:  def.Category(),
		args:      args,
		def:       def,
	}
}

// ArrayOf returns an array of elem with the given rank (at least 1).
func ArrayOf(elem Type, rank int) *TypeInfo {
	if rank < 1 {
		rank = 1
	}
	suffix := "[" + strings.Repeat(",", rank-1) + "]"
	return modified(elem, Array, rank, suffix)
}

// ByRefOf returns a by-reference (ref/out) form of elem.
func ByRefOf(elem Type) *TypeInfo {
	return modified(elem, ByRef, 0, "&")
}

// PointerOf returns an unmanaged pointer to elem.
func PointerOf(elem Type) *TypeInfo {
	return modified(elem, Pointer, 0, "*")
}

func modified(elem Type, mod Modifier, rank int, suffix string) *TypeInfo {
	t := &TypeInfo{
		name:      elem.Name() + suffix,
		namespace: elem.Namespace(),
		access:    elem.Access(),
		category:  elem.Category(),
		elem:      elem,
		mod:       mod,
		rank:      rank,
	}
	t.def = t
	return t
}

// MemberInfo is an in-memory field, property or event.
type MemberInfo struct {
	kind      MemberKind
	name      string
	declaring Type
	typ       Type
	access    Access
	params    []Type
}

func (m *MemberInfo) Kind() MemberKind    { return m.kind }
func (m *MemberInfo) Name() string        { return m.name }
func (m *MemberInfo) DeclaringType() Type { return m.declaring }
func (m *MemberInfo) Access() Access      { return m.access }

// ValueType is the declared type of the field, property or event.
func (m *MemberInfo) ValueType() Type { return m.typ }

// Parameters lists the index parameters of an indexer property.
func (m *MemberInfo) Parameters() []Type { return m.params }

// WithParameters turns a property into an indexer over params.
func (m *MemberInfo) WithParameters(params ...Type) *MemberInfo {
	m.params = append(m.params, params...)
	return m
}

func (m *MemberInfo) String() string {
	return fmt.Sprintf("%s %s.%s", m.kind, m.declaring, m.name)
}

// MethodInfo is an in-memory method or constructor.
type MethodInfo struct {
	kind       MemberKind
	name       string
	declaring  Type
	access     Access
	params     []Type
	typeParams []*TypeInfo
	special    bool
	static     bool
}

func (m *MethodInfo) Kind() MemberKind    { return m.kind }
func (m *MethodInfo) Name() string        { return m.name }
func (m *MethodInfo) DeclaringType() Type { return m.declaring }
func (m *MethodInfo) Access() Access      { return m.access }
func (m *MethodInfo) Parameters() []Type  { return m.params }
func (m *MethodInfo) GenericArity() int   { return len(m.typeParams) }
func (m *MethodInfo) IsSpecialName() bool { return m.special }
func (m *MethodInfo) IsStatic() bool      { return m.static }

func (m *MethodInfo) String() string {
	return fmt.Sprintf("%s %s.%s", m.kind, m.declaring, m.name)
}

// WithTypeParameters declares generic parameters on the method.
func (m *MethodInfo) WithTypeParameters(names ...string) *MethodInfo {
	for _, name := range names {
		m.typeParams = append(m.typeParams, &TypeInfo{
			name:      name,
			declaring: m.declaring,
			access:    Public,
			isParam:   true,
			position:  len(m.typeParams),
			method:    m,
		})
	}
	return m
}

// TypeParameter returns the i-th generic parameter declared by the method.
func (m *MethodInfo) TypeParameter(i int) Type {
	return m.typeParams[i]
}

// WithParameters sets the parameter types in declaration order.
func (m *MethodInfo) WithParameters(params ...Type) *MethodInfo {
	m.params = params
	return m
}

// SpecialName flags the method as a compiler-special accessor or operator.
func (m *MethodInfo) SpecialName() *MethodInfo {
	m.special = true
	return m
}

// Static marks the method as static. A static constructor renders as #cctor.
func (m *MethodInfo) Static() *MethodInfo {
	m.static = true
	return m
}
