package element

import (
	"fmt"
	"iter"

	"github.com/phobologic/xmldoc/internal/meta"
)

// Document is the root of a parsed documentation file. Its children are
// members.
type Document struct {
	container
	Assembly string
}

// NewDocument returns a document for the named assembly.
func NewDocument(assembly string, m Markup, members iter.Seq[Element]) *Document {
	return &Document{container: newContainer(KindDocument, m, members), Assembly: assembly}
}

// Members returns the member children of the document.
func (d *Document) Members() []*Member {
	var members []*Member
	for _, e := range d.Children() {
		if m, ok := e.(*Member); ok {
			members = append(members, m)
		}
	}
	return members
}

// Find returns the member documented under id.
func (d *Document) Find(id string) (*Member, bool) {
	for _, m := range d.Members() {
		if m.id == id {
			return m, true
		}
	}
	return nil, false
}

// Member documents one entity. A member is keyed by its canonical id and
// may carry the descriptor it was matched to.
type Member struct {
	container
	id   string
	desc meta.Member
}

// NewMember returns a member of the given member kind. It panics if kind is
// not a member kind.
func NewMember(kind Kind, id string, m Markup, children iter.Seq[Element]) *Member {
	if !kind.IsMember() {
		panic(fmt.Sprintf("element: %s is not a member kind", kind))
	}
	return &Member{container: newContainer(kind, m, children), id: id}
}

// ID returns the canonical id the member was documented under.
func (m *Member) ID() string { return m.id }

// Descriptor returns the attached descriptor, or nil.
func (m *Member) Descriptor() meta.Member { return m.desc }

// Attach records the descriptor the member documents. Only the first
// attachment succeeds.
func (m *Member) Attach(d meta.Member) bool {
	if m.desc != nil || d == nil {
		return false
	}
	m.desc = d
	return true
}

// WithKind returns a copy of the member with a different member kind. The
// copy shares the children of the original, including their cached state.
func (m *Member) WithKind(kind Kind) *Member {
	if !kind.IsMember() {
		panic(fmt.Sprintf("element: %s is not a member kind", kind))
	}
	cp := &Member{container: m.container, id: m.id, desc: m.desc}
	cp.kind = kind
	return cp
}

// Block is a content section without data of its own: summary, remarks,
// example, para, returns, value and the list parts.
type Block struct {
	container
}

// NewBlock returns a block of the given kind. It panics if kind is not a
// block kind.
func NewBlock(kind Kind, m Markup, children iter.Seq[Element]) *Block {
	if !kind.IsBlock() {
		panic(fmt.Sprintf("element: %s is not a block kind", kind))
	}
	return &Block{container: newContainer(kind, m, children)}
}

// Param documents a method parameter.
type Param struct {
	container
	Name string
}

func NewParam(name string, m Markup, children iter.Seq[Element]) *Param {
	return &Param{container: newContainer(KindParam, m, children), Name: name}
}

// TypeParam documents a generic parameter.
type TypeParam struct {
	container
	Name string
}

func NewTypeParam(name string, m Markup, children iter.Seq[Element]) *TypeParam {
	return &TypeParam{container: newContainer(KindTypeParam, m, children), Name: name}
}

// Exception documents an exception a member may throw.
type Exception struct {
	container
	Cref string
}

func NewException(cref string, m Markup, children iter.Seq[Element]) *Exception {
	return &Exception{container: newContainer(KindException, m, children), Cref: cref}
}

// Permission documents a required permission.
type Permission struct {
	container
	Cref string
}

func NewPermission(cref string, m Markup, children iter.Seq[Element]) *Permission {
	return &Permission{container: newContainer(KindPermission, m, children), Cref: cref}
}

// ListType is the presentation of a list.
type ListType string

const (
	Bullet ListType = "bullet"
	Number ListType = "number"
	Table  ListType = "table"
)

// List is a bullet, numbered or table list. Its children are an optional
// list header followed by items.
type List struct {
	container
	Type ListType
}

func NewList(typ ListType, m Markup, children iter.Seq[Element]) *List {
	if typ == "" {
		typ = Bullet
	}
	return &List{container: newContainer(KindList, m, children), Type: typ}
}

// Unknown is a tag with no dedicated element. Its content is kept as
// children.
type Unknown struct {
	container
	Name string
}

func NewUnknown(name string, m Markup, children iter.Seq[Element]) *Unknown {
	return &Unknown{container: newContainer(KindUnknown, m, children), Name: name}
}

// Text is a run of literal prose.
type Text struct {
	node
	Content string
}

func NewText(content string, m Markup) *Text {
	return &Text{node: newNode(KindText, m), Content: content}
}

// Code is a block of source code.
type Code struct {
	node
	Content string
}

func NewCode(content string, m Markup) *Code {
	return &Code{node: newNode(KindCode, m), Content: content}
}

// C is inline code.
type C struct {
	node
	Content string
}

func NewC(content string, m Markup) *C {
	return &C{node: newNode(KindC, m), Content: content}
}

// See is an inline cross-reference. Cref names a member id, Langword a
// language keyword and Href an external link; Content is the optional link
// text.
type See struct {
	node
	Cref     string
	Langword string
	Href     string
	Content  string
}

func NewSee(cref, langword, href, content string, m Markup) *See {
	return &See{node: newNode(KindSee, m), Cref: cref, Langword: langword, Href: href, Content: content}
}

// Target returns what the reference points at.
func (s *See) Target() string {
	return firstNonEmpty(s.Cref, s.Langword, s.Href)
}

// SeeAlso is a "see also" cross-reference.
type SeeAlso struct {
	node
	Cref    string
	Href    string
	Content string
}

func NewSeeAlso(cref, href, content string, m Markup) *SeeAlso {
	return &SeeAlso{node: newNode(KindSeeAlso, m), Cref: cref, Href: href, Content: content}
}

// Target returns what the reference points at.
func (s *SeeAlso) Target() string {
	return firstNonEmpty(s.Cref, s.Href)
}

// ParamRef refers to a parameter by name.
type ParamRef struct {
	node
	Name string
}

func NewParamRef(name string, m Markup) *ParamRef {
	return &ParamRef{node: newNode(KindParamRef, m), Name: name}
}

// TypeParamRef refers to a generic parameter by name.
type TypeParamRef struct {
	node
	Name string
}

func NewTypeParamRef(name string, m Markup) *TypeParamRef {
	return &TypeParamRef{node: newNode(KindTypeParamRef, m), Name: name}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
