package element

// Funcs is a set of optional per-kind callbacks for a Delegate visitor. Any
// subset may be set.
type Funcs struct {
	Element   func(Element)
	Container func(Container)
	Document  func(*Document)
	Member    func(*Member)
	Type      func(*Member)

	Class         func(*Member)
	Struct        func(*Member)
	Interface     func(*Member)
	Enum          func(*Member)
	Field         func(*Member)
	Property      func(*Member)
	Method        func(*Member)
	Event         func(*Member)
	UnknownMember func(*Member)

	Summary     func(*Block)
	Remarks     func(*Block)
	Example     func(*Block)
	Para        func(*Block)
	Returns     func(*Block)
	Value       func(*Block)
	ListHeader  func(*Block)
	Item        func(*Block)
	Term        func(*Block)
	Description func(*Block)

	Param      func(*Param)
	TypeParam  func(*TypeParam)
	Exception  func(*Exception)
	Permission func(*Permission)
	List       func(*List)
	Unknown    func(*Unknown)

	Text         func(*Text)
	Code         func(*Code)
	C            func(*C)
	See          func(*See)
	SeeAlso      func(*SeeAlso)
	ParamRef     func(*ParamRef)
	TypeParamRef func(*TypeParamRef)
}

// Delegate is a visitor driven by callbacks. For each element it calls the
// matching callback, if any, and then always continues the default
// traversal, so a callback observes a node without cutting off its
// descendants or the more general callbacks.
type Delegate struct {
	Base
	fn Funcs
}

// NewDelegate returns a visitor calling fn.
func NewDelegate(fn Funcs) *Delegate {
	d := &Delegate{fn: fn}
	d.Base = NewBase(d)
	return d
}

// Visit walks e with a Delegate built from fn.
func Visit(e Element, fn Funcs) {
	Walk(NewDelegate(fn), e)
}

func (d *Delegate) VisitElement(e Element) {
	if d.fn.Element != nil {
		d.fn.Element(e)
	}
}

func (d *Delegate) VisitContainer(c Container) {
	if d.fn.Container != nil {
		d.fn.Container(c)
	}
	d.Base.VisitContainer(c)
}

func (d *Delegate) VisitDocument(x *Document) {
	if d.fn.Document != nil {
		d.fn.Document(x)
	}
	d.Base.VisitDocument(x)
}

func (d *Delegate) VisitMember(m *Member) {
	if d.fn.Member != nil {
		d.fn.Member(m)
	}
	d.Base.VisitMember(m)
}

func (d *Delegate) VisitType(m *Member) {
	if d.fn.Type != nil {
		d.fn.Type(m)
	}
	d.Base.VisitType(m)
}

func (d *Delegate) VisitClass(m *Member) {
	if d.fn.Class != nil {
		d.fn.Class(m)
	}
	d.Base.VisitClass(m)
}

func (d *Delegate) VisitStruct(m *Member) {
	if d.fn.Struct != nil {
		d.fn.Struct(m)
	}
	d.Base.VisitStruct(m)
}

func (d *Delegate) VisitInterface(m *Member) {
	if d.fn.Interface != nil {
		d.fn.Interface(m)
	}
	d.Base.VisitInterface(m)
}

func (d *Delegate) VisitEnum(m *Member) {
	if d.fn.Enum != nil {
		d.fn.Enum(m)
	}
	d.Base.VisitEnum(m)
}

func (d *Delegate) VisitField(m *Member) {
	if d.fn.Field != nil {
		d.fn.Field(m)
	}
	d.Base.VisitField(m)
}

func (d *Delegate) VisitProperty(m *Member) {
	if d.fn.Property != nil {
		d.fn.Property(m)
	}
	d.Base.VisitProperty(m)
}

func (d *Delegate) VisitMethod(m *Member) {
	if d.fn.Method != nil {
		d.fn.Method(m)
	}
	d.Base.VisitMethod(m)
}

func (d *Delegate) VisitEvent(m *Member) {
	if d.fn.Event != nil {
		d.fn.Event(m)
	}
	d.Base.VisitEvent(m)
}

func (d *Delegate) VisitUnknownMember(m *Member) {
	if d.fn.UnknownMember != nil {
		d.fn.UnknownMember(m)
	}
	d.Base.VisitUnknownMember(m)
}

func (d *Delegate) VisitSummary(x *Block) {
	if d.fn.Summary != nil {
		d.fn.Summary(x)
	}
	d.Base.VisitSummary(x)
}

func (d *Delegate) VisitRemarks(x *Block) {
	if d.fn.Remarks != nil {
		d.fn.Remarks(x)
	}
	d.Base.VisitRemarks(x)
}

func (d *Delegate) VisitExample(x *Block) {
	if d.fn.Example != nil {
		d.fn.Example(x)
	}
	d.Base.VisitExample(x)
}

func (d *Delegate) VisitPara(x *Block) {
	if d.fn.Para != nil {
		d.fn.Para(x)
	}
	d.Base.VisitPara(x)
}

func (d *Delegate) VisitReturns(x *Block) {
	if d.fn.Returns != nil {
		d.fn.Returns(x)
	}
	d.Base.VisitReturns(x)
}

func (d *Delegate) VisitValue(x *Block) {
	if d.fn.Value != nil {
		d.fn.Value(x)
	}
	d.Base.VisitValue(x)
}

func (d *Delegate) VisitListHeader(x *Block) {
	if d.fn.ListHeader != nil {
		d.fn.ListHeader(x)
	}
	d.Base.VisitListHeader(x)
}

func (d *Delegate) VisitItem(x *Block) {
	if d.fn.Item != nil {
		d.fn.Item(x)
	}
	d.Base.VisitItem(x)
}

func (d *Delegate) VisitTerm(x *Block) {
	if d.fn.Term != nil {
		d.fn.Term(x)
	}
	d.Base.VisitTerm(x)
}

func (d *Delegate) VisitDescription(x *Block) {
	if d.fn.Description != nil {
		d.fn.Description(x)
	}
	d.Base.VisitDescription(x)
}

func (d *Delegate) VisitParam(x *Param) {
	if d.fn.Param != nil {
		d.fn.Param(x)
	}
	d.Base.VisitParam(x)
}

func (d *Delegate) VisitTypeParam(x *TypeParam) {
	if d.fn.TypeParam != nil {
		d.fn.TypeParam(x)
	}
	d.Base.VisitTypeParam(x)
}

func (d *Delegate) VisitException(x *Exception) {
	if d.fn.Exception != nil {
		d.fn.Exception(x)
	}
	d.Base.VisitException(x)
}

func (d *Delegate) VisitPermission(x *Permission) {
	if d.fn.Permission != nil {
		d.fn.Permission(x)
	}
	d.Base.VisitPermission(x)
}

func (d *Delegate) VisitList(x *List) {
	if d.fn.List != nil {
		d.fn.List(x)
	}
	d.Base.VisitList(x)
}

func (d *Delegate) VisitUnknown(x *Unknown) {
	if d.fn.Unknown != nil {
		d.fn.Unknown(x)
	}
	d.Base.VisitUnknown(x)
}

func (d *Delegate) VisitText(x *Text) {
	if d.fn.Text != nil {
		d.fn.Text(x)
	}
	d.Base.VisitText(x)
}

func (d *Delegate) VisitCode(x *Code) {
	if d.fn.Code != nil {
		d.fn.Code(x)
	}
	d.Base.VisitCode(x)
}

func (d *Delegate) VisitC(x *C) {
	if d.fn.C != nil {
		d.fn.C(x)
	}
	d.Base.VisitC(x)
}

func (d *Delegate) VisitSee(x *See) {
	if d.fn.See != nil {
		d.fn.See(x)
	}
	d.Base.VisitSee(x)
}

func (d *Delegate) VisitSeeAlso(x *SeeAlso) {
	if d.fn.SeeAlso != nil {
		d.fn.SeeAlso(x)
	}
	d.Base.VisitSeeAlso(x)
}

func (d *Delegate) VisitParamRef(x *ParamRef) {
	if d.fn.ParamRef != nil {
		d.fn.ParamRef(x)
	}
	d.Base.VisitParamRef(x)
}

func (d *Delegate) VisitTypeParamRef(x *TypeParamRef) {
	if d.fn.TypeParamRef != nil {
		d.fn.TypeParamRef(x)
	}
	d.Base.VisitTypeParamRef(x)
}
