package element

import "strings"

// textVisitor flattens a tree to plain text. Paragraphs and code blocks
// start and end on their own line; a break is never written twice in a row.
type textVisitor struct {
	Base
	b    strings.Builder
	last byte
}

// ToText returns the plain text of e: literal text, code, parameter names
// and cross-reference targets, in document order.
func ToText(e Element) string {
	v := &textVisitor{}
	v.Base = NewBase(v)
	Walk(v, e)
	return v.b.String()
}

func (v *textVisitor) write(s string) {
	if s == "" {
		return
	}
	v.b.WriteString(s)
	v.last = s[len(s)-1]
}

func (v *textVisitor) lineBreak() {
	if v.b.Len() == 0 || v.last != '\n' {
		v.write("\n")
	}
}

func (v *textVisitor) VisitPara(x *Block) {
	v.lineBreak()
	v.Base.VisitPara(x)
	v.lineBreak()
}

func (v *textVisitor) VisitCode(x *Code) {
	v.lineBreak()
	v.write(x.Content)
	v.lineBreak()
}

func (v *textVisitor) VisitText(x *Text) { v.write(x.Content) }
func (v *textVisitor) VisitC(x *C)       { v.write(x.Content) }

func (v *textVisitor) VisitSee(x *See) {
	if x.Content != "" {
		v.write(x.Content)
		return
	}
	v.write(DisplayName(x.Target()))
}

func (v *textVisitor) VisitSeeAlso(x *SeeAlso) {
	if x.Content != "" {
		v.write(x.Content)
		return
	}
	v.write(DisplayName(x.Target()))
}

func (v *textVisitor) VisitParamRef(x *ParamRef)         { v.write(x.Name) }
func (v *textVisitor) VisitTypeParamRef(x *TypeParamRef) { v.write(x.Name) }

// DisplayName drops the kind prefix of a member id: "T:Acme.Bag`1" becomes
// "Acme.Bag`1". Other targets are returned unchanged.
func DisplayName(target string) string {
	if len(target) > 2 && target[1] == ':' {
		return target[2:]
	}
	return target
}

type collector struct {
	Base
	all []Element
}

func (c *collector) VisitElement(e Element) {
	c.all = append(c.all, e)
}

// Traverse returns e and all of its descendants in pre-order.
func Traverse(e Element) []Element {
	c := &collector{}
	c.Base = NewBase(c)
	Walk(c, e)
	return c.all
}
