// Package element models parsed documentation content as a tree of typed
// elements and provides the visitor protocol used to walk it.
//
// The set of element kinds is closed. Containers produce their children
// lazily from an iterator the first time they are read and cache the result,
// so a tree can be walked any number of times without re-running the
// producer.
package element

import (
	"fmt"
	"iter"
	"slices"
	"sync"
)

// Kind identifies the variant of an element.
type Kind int

const (
	KindDocument Kind = iota

	KindClass
	KindStruct
	KindInterface
	KindEnum
	KindType
	KindField
	KindProperty
	KindMethod
	KindEvent
	KindUnknownMember

	KindSummary
	KindRemarks
	KindExample
	KindPara
	KindReturns
	KindValue
	KindListHeader
	KindItem
	KindTerm
	KindDescription

	KindParam
	KindTypeParam
	KindException
	KindPermission
	KindList
	KindUnknown

	KindText
	KindCode
	KindC
	KindSee
	KindSeeAlso
	KindParamRef
	KindTypeParamRef
)

var kindNames = [...]string{
	KindDocument:      "doc",
	KindClass:         "class",
	KindStruct:        "struct",
	KindInterface:     "interface",
	KindEnum:          "enum",
	KindType:          "type",
	KindField:         "field",
	KindProperty:      "property",
	KindMethod:        "method",
	KindEvent:         "event",
	KindUnknownMember: "unknown member",
	KindSummary:       "summary",
	KindRemarks:       "remarks",
	KindExample:       "example",
	KindPara:          "para",
	KindReturns:       "returns",
	KindValue:         "value",
	KindListHeader:    "listheader",
	KindItem:          "item",
	KindTerm:          "term",
	KindDescription:   "description",
	KindParam:         "param",
	KindTypeParam:     "typeparam",
	KindException:     "exception",
	KindPermission:    "permission",
	KindList:          "list",
	KindUnknown:       "unknown",
	KindText:          "text",
	KindCode:          "code",
	KindC:             "c",
	KindSee:           "see",
	KindSeeAlso:       "seealso",
	KindParamRef:      "paramref",
	KindTypeParamRef:  "typeparamref",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsMember reports whether k is one of the documented member kinds.
func (k Kind) IsMember() bool {
	return k >= KindClass && k <= KindUnknownMember
}

// IsType reports whether k is a type-like member kind.
func (k Kind) IsType() bool {
	return k >= KindClass && k <= KindType
}

// IsBlock reports whether k is a plain content block.
func (k Kind) IsBlock() bool {
	return k >= KindSummary && k <= KindDescription
}

// Attributes holds the markup attributes of an element.
type Attributes map[string]string

// Get returns the value of name, or "" if absent.
func (a Attributes) Get(name string) string {
	return a[name]
}

// Position is a 1-based source location. The zero value means unknown.
type Position struct {
	Line   int
	Column int
}

// IsValid reports whether the position carries a location.
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Markup is what every element keeps from the tag it was built from.
type Markup struct {
	Attrs Attributes
	Pos   Position
}

// Element is a node of the documentation tree.
type Element interface {
	Kind() Kind
	Attributes() Attributes
	Position() Position
	base() *node
}

// Container is an element with ordered children.
type Container interface {
	Element
	// Children returns the cached child sequence. The slice must not be
	// modified.
	Children() []Element
}

type node struct {
	kind  Kind
	attrs Attributes
	pos   Position
}

func newNode(kind Kind, m Markup) node {
	attrs := m.Attrs
	if attrs == nil {
		attrs = Attributes{}
	}
	return node{kind: kind, attrs: attrs, pos: m.Pos}
}

func (n *node) Kind() Kind             { return n.kind }
func (n *node) Attributes() Attributes { return n.attrs }
func (n *node) Position() Position     { return n.pos }
func (n *node) base() *node            { return n }

// lazy holds a child producer until the first read, then the materialized
// children.
type lazy struct {
	once     sync.Once
	produce  iter.Seq[Element]
	children []Element
}

func newLazy(produce iter.Seq[Element]) *lazy {
	return &lazy{produce: produce}
}

func (l *lazy) get() []Element {
	l.once.Do(func() {
		if l.produce != nil {
			for e := range l.produce {
				l.children = append(l.children, e)
			}
		}
		l.produce = nil
	})
	return l.children
}

type container struct {
	node
	kids *lazy
}

func newContainer(kind Kind, m Markup, children iter.Seq[Element]) container {
	return container{node: newNode(kind, m), kids: newLazy(children)}
}

func (c *container) Children() []Element {
	return c.kids.get()
}

// Elements returns a producer over a fixed list of elements.
func Elements(es ...Element) iter.Seq[Element] {
	return slices.Values(es)
}
