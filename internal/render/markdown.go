// Package render turns element trees into Markdown and HTML.
package render

import (
	"strconv"
	"strings"

	"github.com/phobologic/xmldoc/internal/element"
)

var escaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
	"|", `\|`,
)

// Markdown renders e as a Markdown document. Each member becomes a second
// level section headed by its id; content sections follow in document order.
func Markdown(e element.Element) string {
	v := newMarkdownVisitor()
	element.Walk(v, e)
	out := strings.TrimRight(v.b.String(), "\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}

type markdownVisitor struct {
	element.Base
	b strings.Builder
	// newlines counts trailing line breaks not yet written.
	newlines int
}

func newMarkdownVisitor() *markdownVisitor {
	v := &markdownVisitor{}
	v.Base = element.NewBase(v)
	return v
}

func (v *markdownVisitor) write(s string) {
	body := strings.TrimRight(s, "\n")
	if body == "" {
		v.newlines += len(s)
		return
	}
	for ; v.newlines > 0; v.newlines-- {
		v.b.WriteByte('\n')
	}
	v.b.WriteString(body)
	v.newlines = len(s) - len(body)
}

// blankLine ends the current block so the output ends in exactly one empty
// line. Nothing is written at the start of the output.
func (v *markdownVisitor) blankLine() {
	if v.b.Len() == 0 && v.newlines == 0 {
		return
	}
	v.newlines = 2
}

// section writes lead and then whatever walk renders as its own block.
func (v *markdownVisitor) section(lead string, walk func()) {
	v.blankLine()
	v.write(lead)
	walk()
	v.blankLine()
}

func (v *markdownVisitor) VisitDocument(d *element.Document) {
	if d.Assembly != "" {
		v.write("# " + escaper.Replace(d.Assembly))
		v.blankLine()
	}
	v.Base.VisitDocument(d)
}

func (v *markdownVisitor) VisitMember(m *element.Member) {
	v.blankLine()
	v.write("## " + escaper.Replace(element.DisplayName(m.ID())) + " (" + m.Kind().String() + ")")
	v.blankLine()
	v.Base.VisitMember(m)
}

func (v *markdownVisitor) VisitSummary(b *element.Block) {
	v.section("", func() { v.Base.VisitSummary(b) })
}

func (v *markdownVisitor) VisitRemarks(b *element.Block) {
	v.section("### Remarks\n\n", func() { v.Base.VisitRemarks(b) })
}

func (v *markdownVisitor) VisitExample(b *element.Block) {
	v.section("### Example\n\n", func() { v.Base.VisitExample(b) })
}

func (v *markdownVisitor) VisitPara(b *element.Block) {
	v.section("", func() { v.Base.VisitPara(b) })
}

func (v *markdownVisitor) VisitReturns(b *element.Block) {
	v.section("**Returns:** ", func() { v.Base.VisitReturns(b) })
}

func (v *markdownVisitor) VisitValue(b *element.Block) {
	v.section("**Value:** ", func() { v.Base.VisitValue(b) })
}

func (v *markdownVisitor) VisitParam(p *element.Param) {
	v.section("**Parameter** "+codeSpan(p.Name)+colon(p), func() { v.Base.VisitParam(p) })
}

func (v *markdownVisitor) VisitTypeParam(p *element.TypeParam) {
	v.section("**Type parameter** "+codeSpan(p.Name)+colon(p), func() { v.Base.VisitTypeParam(p) })
}

func (v *markdownVisitor) VisitException(x *element.Exception) {
	v.section("**Throws** "+codeSpan(element.DisplayName(x.Cref))+colon(x), func() { v.Base.VisitException(x) })
}

func (v *markdownVisitor) VisitPermission(x *element.Permission) {
	v.section("**Permission** "+codeSpan(element.DisplayName(x.Cref))+colon(x), func() { v.Base.VisitPermission(x) })
}

func colon(c element.Container) string {
	if len(c.Children()) == 0 {
		return ""
	}
	return ": "
}

func (v *markdownVisitor) VisitList(l *element.List) {
	v.blankLine()
	if l.Type == element.Table {
		v.table(l)
		v.blankLine()
		return
	}

	n := 0
	for _, c := range l.Children() {
		item, ok := c.(element.Container)
		if !ok || (c.Kind() != element.KindItem && c.Kind() != element.KindListHeader) {
			continue
		}
		n++
		if l.Type == element.Number {
			v.write(strconv.Itoa(n) + ". ")
		} else {
			v.write("- ")
		}
		v.write(listItem(item))
		v.write("\n")
	}
	v.blankLine()
}

// listItem renders an item as one line: "**term**: description".
func listItem(item element.Container) string {
	var term, desc string
	var rest []string
	for _, c := range item.Children() {
		switch c.Kind() {
		case element.KindTerm:
			term = inline(c)
		case element.KindDescription:
			desc = inline(c)
		default:
			rest = append(rest, inline(c))
		}
	}
	if desc == "" {
		desc = strings.Join(rest, " ")
	}
	switch {
	case term == "":
		return desc
	case desc == "":
		return "**" + term + "**"
	}
	return "**" + term + "**: " + desc
}

func (v *markdownVisitor) table(l *element.List) {
	header := []string{"Term", "Description"}
	var rows [][]string
	for _, c := range l.Children() {
		item, ok := c.(element.Container)
		if !ok {
			continue
		}
		row := cells(item)
		switch c.Kind() {
		case element.KindListHeader:
			header = row
		case element.KindItem:
			rows = append(rows, row)
		}
	}

	v.write("| " + strings.Join(header, " | ") + " |\n")
	v.write("|" + strings.Repeat(" --- |", len(header)) + "\n")
	for _, row := range rows {
		for len(row) < len(header) {
			row = append(row, "")
		}
		v.write("| " + strings.Join(row[:len(header)], " | ") + " |\n")
	}
}

func cells(item element.Container) []string {
	var out []string
	for _, c := range item.Children() {
		if c.Kind() == element.KindTerm || c.Kind() == element.KindDescription {
			out = append(out, inline(c))
		}
	}
	return out
}

// inline renders e on a single line.
func inline(e element.Element) string {
	v := newMarkdownVisitor()
	element.Walk(v, e)
	return strings.Join(strings.Fields(v.b.String()), " ")
}

func (v *markdownVisitor) VisitCode(x *element.Code) {
	v.blankLine()
	v.write("```" + x.Attributes().Get("lang") + "\n")
	v.write(x.Content)
	v.write("\n```")
	v.blankLine()
}

func (v *markdownVisitor) VisitText(x *element.Text) {
	v.write(escaper.Replace(x.Content))
}

func (v *markdownVisitor) VisitC(x *element.C) {
	v.write(codeSpan(x.Content))
}

func (v *markdownVisitor) VisitSee(x *element.See) {
	switch {
	case x.Href != "":
		v.write(link(x.Content, x.Href))
	case x.Langword != "":
		v.write(codeSpan(x.Langword))
	case x.Content != "":
		v.write(escaper.Replace(x.Content))
	default:
		v.write(codeSpan(element.DisplayName(x.Cref)))
	}
}

func (v *markdownVisitor) VisitSeeAlso(x *element.SeeAlso) {
	v.write("*See also:* ")
	switch {
	case x.Href != "":
		v.write(link(x.Content, x.Href))
	case x.Content != "":
		v.write(escaper.Replace(x.Content))
	default:
		v.write(codeSpan(element.DisplayName(x.Cref)))
	}
}

func (v *markdownVisitor) VisitParamRef(x *element.ParamRef) {
	v.write(codeSpan(x.Name))
}

func (v *markdownVisitor) VisitTypeParamRef(x *element.TypeParamRef) {
	v.write(codeSpan(x.Name))
}

func link(text, href string) string {
	if text == "" {
		text = href
	}
	return "[" + escaper.Replace(text) + "](" + href + ")"
}

func codeSpan(s string) string {
	if strings.Contains(s, "`") {
		return "`` " + s + " ``"
	}
	return "`" + s + "`"
}
