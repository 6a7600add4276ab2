package element

import "fmt"

// Visitor has one handler per element kind plus the general hooks every
// specific handler falls back to by default:
//
//	class, struct, interface, enum  -> type -> member -> container -> element
//	field, property, method, event  -> member
//	document, blocks, param, list.. -> container
//	text, code, see, paramref..     -> element
//
// Embed Base to get that default chain and override only the handlers of
// interest.
type Visitor interface {
	VisitElement(e Element)
	VisitContainer(c Container)
	VisitDocument(d *Document)
	VisitMember(m *Member)
	VisitType(m *Member)
	VisitClass(m *Member)
	VisitStruct(m *Member)
	VisitInterface(m *Member)
	VisitEnum(m *Member)
	VisitField(m *Member)
	VisitProperty(m *Member)
	VisitMethod(m *Member)
	VisitEvent(m *Member)
	VisitUnknownMember(m *Member)
	VisitSummary(b *Block)
	VisitRemarks(b *Block)
	VisitExample(b *Block)
	VisitPara(b *Block)
	VisitReturns(b *Block)
	VisitValue(b *Block)
	VisitListHeader(b *Block)
	VisitItem(b *Block)
	VisitTerm(b *Block)
	VisitDescription(b *Block)
	VisitParam(e *Param)
	VisitTypeParam(e *TypeParam)
	VisitException(e *Exception)
	VisitPermission(e *Permission)
	VisitList(e *List)
	VisitUnknown(e *Unknown)
	VisitText(e *Text)
	VisitCode(e *Code)
	VisitC(e *C)
	VisitSee(e *See)
	VisitSeeAlso(e *SeeAlso)
	VisitParamRef(e *ParamRef)
	VisitTypeParamRef(e *TypeParamRef)
}

// Walk dispatches e to the handler of v matching its kind. It panics on an
// element kind it does not know, which cannot happen for trees built with
// this package.
func Walk(v Visitor, e Element) {
	switch e.Kind() {
	case KindDocument:
		v.VisitDocument(e.(*Document))
	case KindClass:
		v.VisitClass(e.(*Member))
	case KindStruct:
		v.VisitStruct(e.(*Member))
	case KindInterface:
		v.VisitInterface(e.(*Member))
	case KindEnum:
		v.VisitEnum(e.(*Member))
	case KindField:
		v.VisitField(e.(*Member))
	case KindProperty:
		v.VisitProperty(e.(*Member))
	case KindMethod:
		v.VisitMethod(e.(*Member))
	case KindEvent:
		v.VisitEvent(e.(*Member))
	case KindUnknownMember:
		v.VisitUnknownMember(e.(*Member))
	case KindType:
		v.VisitType(e.(*Member))
	case KindSummary:
		v.VisitSummary(e.(*Block))
	case KindRemarks:
		v.VisitRemarks(e.(*Block))
	case KindExample:
		v.VisitExample(e.(*Block))
	case KindPara:
		v.VisitPara(e.(*Block))
	case KindReturns:
		v.VisitReturns(e.(*Block))
	case KindValue:
		v.VisitValue(e.(*Block))
	case KindListHeader:
		v.VisitListHeader(e.(*Block))
	case KindItem:
		v.VisitItem(e.(*Block))
	case KindTerm:
		v.VisitTerm(e.(*Block))
	case KindDescription:
		v.VisitDescription(e.(*Block))
	case KindParam:
		v.VisitParam(e.(*Param))
	case KindTypeParam:
		v.VisitTypeParam(e.(*TypeParam))
	case KindException:
		v.VisitException(e.(*Exception))
	case KindPermission:
		v.VisitPermission(e.(*Permission))
	case KindList:
		v.VisitList(e.(*List))
	case KindUnknown:
		v.VisitUnknown(e.(*Unknown))
	case KindText:
		v.VisitText(e.(*Text))
	case KindCode:
		v.VisitCode(e.(*Code))
	case KindC:
		v.VisitC(e.(*C))
	case KindSee:
		v.VisitSee(e.(*See))
	case KindSeeAlso:
		v.VisitSeeAlso(e.(*SeeAlso))
	case KindParamRef:
		v.VisitParamRef(e.(*ParamRef))
	case KindTypeParamRef:
		v.VisitTypeParamRef(e.(*TypeParamRef))
	default:
		panic(fmt.Sprintf("element: unhandled kind %s", e.Kind()))
	}
}

// Base implements the default handler chain. Handlers re-enter through the
// visitor given to NewBase so that overrides in an embedding type are
// honored. The zero Base walks the tree without doing anything.
type Base struct {
	self Visitor
}

// NewBase returns a Base that dispatches back into self.
func NewBase(self Visitor) Base {
	return Base{self: self}
}

func (b Base) visitor() Visitor {
	if b.self == nil {
		return b
	}
	return b.self
}

// VisitElement is the final hook of every chain. It does nothing.
func (b Base) VisitElement(Element) {}

// VisitContainer visits c as an element, then each child in order.
func (b Base) VisitContainer(c Container) {
	v := b.visitor()
	v.VisitElement(c)
	for _, child := range c.Children() {
		Walk(v, child)
	}
}

func (b Base) VisitDocument(d *Document) { b.visitor().VisitContainer(d) }
func (b Base) VisitMember(m *Member)     { b.visitor().VisitContainer(m) }
func (b Base) VisitType(m *Member)       { b.visitor().VisitMember(m) }

func (b Base) VisitClass(m *Member)         { b.visitor().VisitType(m) }
func (b Base) VisitStruct(m *Member)        { b.visitor().VisitType(m) }
func (b Base) VisitInterface(m *Member)     { b.visitor().VisitType(m) }
func (b Base) VisitEnum(m *Member)          { b.visitor().VisitType(m) }
func (b Base) VisitField(m *Member)         { b.visitor().VisitMember(m) }
func (b Base) VisitProperty(m *Member)      { b.visitor().VisitMember(m) }
func (b Base) VisitMethod(m *Member)        { b.visitor().VisitMember(m) }
func (b Base) VisitEvent(m *Member)         { b.visitor().VisitMember(m) }
func (b Base) VisitUnknownMember(m *Member) { b.visitor().VisitMember(m) }

func (b Base) VisitSummary(x *Block)     { b.visitor().VisitContainer(x) }
func (b Base) VisitRemarks(x *Block)     { b.visitor().VisitContainer(x) }
func (b Base) VisitExample(x *Block)     { b.visitor().VisitContainer(x) }
func (b Base) VisitPara(x *Block)        { b.visitor().VisitContainer(x) }
func (b Base) VisitReturns(x *Block)     { b.visitor().VisitContainer(x) }
func (b Base) VisitValue(x *Block)       { b.visitor().VisitContainer(x) }
func (b Base) VisitListHeader(x *Block)  { b.visitor().VisitContainer(x) }
func (b Base) VisitItem(x *Block)        { b.visitor().VisitContainer(x) }
func (b Base) VisitTerm(x *Block)        { b.visitor().VisitContainer(x) }
func (b Base) VisitDescription(x *Block) { b.visitor().VisitContainer(x) }

func (b Base) VisitParam(x *Param)           { b.visitor().VisitContainer(x) }
func (b Base) VisitTypeParam(x *TypeParam)   { b.visitor().VisitContainer(x) }
func (b Base) VisitException(x *Exception)   { b.visitor().VisitContainer(x) }
func (b Base) VisitPermission(x *Permission) { b.visitor().VisitContainer(x) }
func (b Base) VisitList(x *List)             { b.visitor().VisitContainer(x) }
func (b Base) VisitUnknown(x *Unknown)       { b.visitor().VisitContainer(x) }

func (b Base) VisitText(x *Text)                 { b.visitor().VisitElement(x) }
func (b Base) VisitCode(x *Code)                 { b.visitor().VisitElement(x) }
func (b Base) VisitC(x *C)                       { b.visitor().VisitElement(x) }
func (b Base) VisitSee(x *See)                   { b.visitor().VisitElement(x) }
func (b Base) VisitSeeAlso(x *SeeAlso)           { b.visitor().VisitElement(x) }
func (b Base) VisitParamRef(x *ParamRef)         { b.visitor().VisitElement(x) }
func (b Base) VisitTypeParamRef(x *TypeParamRef) { b.visitor().VisitElement(x) }
