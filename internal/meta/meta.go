// Package meta defines the read-only descriptor views over a host type system
// that documentation members are matched against.
package meta

// MemberKind classifies a descriptor.
type MemberKind string

const (
	KindType        MemberKind = "type"
	KindField       MemberKind = "field"
	KindProperty    MemberKind = "property"
	KindMethod      MemberKind = "method"
	KindConstructor MemberKind = "constructor"
	KindEvent       MemberKind = "event"
)

// Access is the declared accessibility of a member.
type Access string

const (
	Public            Access = "public"
	Protected         Access = "protected"
	Internal          Access = "internal"
	ProtectedInternal Access = "protected internal"
	PrivateProtected  Access = "private protected"
	Private           Access = "private"
)

// Category is the flavor of a type declaration.
type Category string

const (
	Class     Category = "class"
	Struct    Category = "struct"
	Interface Category = "interface"
	Enum      Category = "enum"
	Delegate  Category = "delegate"
)

// Modifier describes a type built on top of another type.
type Modifier int

const (
	None Modifier = iota
	Array
	ByRef
	Pointer
)

// Member is one member of a type system. Implementations must be comparable
// (pointers in practice) since descriptors are keyed by identity.
type Member interface {
	Kind() MemberKind
	Name() string
	// DeclaringType is the enclosing type, or nil for top-level types.
	DeclaringType() Type
	Access() Access
}

// Type describes a type, a generic parameter, or a constructed shape such as
// an array.
type Type interface {
	Member
	Namespace() string
	Category() Category
	// Members lists fields, properties, methods, constructors, events and
	// nested types.
	Members() []Member
	// GenericArity is the number of type parameters the definition declares
	// itself, not counting those of enclosing types.
	GenericArity() int
	// GenericArguments is non-empty only for closed instantiations.
	GenericArguments() []Type
	// Definition returns the open definition of a closed instantiation and
	// the type itself otherwise.
	Definition() Type
	IsGenericParameter() bool
	GenericParameterPosition() int
	// DeclaringMethod is non-nil only for generic parameters declared on a
	// method.
	DeclaringMethod() Method
	// Element returns the underlying type and its modifier for arrays,
	// by-ref and pointer types. Rank is only meaningful for arrays.
	Element() (elem Type, mod Modifier, rank int)
}

// Method describes a method or constructor.
type Method interface {
	Member
	Parameters() []Type
	GenericArity() int
	// IsSpecialName reports compiler-generated names: property and event
	// accessors, operators.
	IsSpecialName() bool
	IsStatic() bool
}

// IsClosedGeneric reports whether t is a generic instantiation with concrete
// arguments.
func IsClosedGeneric(t Type) bool {
	return len(t.GenericArguments()) > 0 && t.Definition() != t
}
