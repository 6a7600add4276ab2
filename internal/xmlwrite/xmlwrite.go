// Package xmlwrite serializes an element tree back to documentation XML.
package xmlwrite

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/beevik/etree"

	"github.com/phobologic/xmldoc/internal/element"
)

// Write encodes doc as a <doc> file. Each member sits on its own line;
// member content is written as-is so mixed text keeps its spacing.
func Write(w io.Writer, doc *element.Document) error {
	out := Build(doc)
	if _, err := out.WriteTo(w); err != nil {
		return fmt.Errorf("writing xml: %w", err)
	}
	return nil
}

// Build returns the XML document for doc.
func Build(doc *element.Document) *etree.Document {
	out := etree.NewDocument()
	out.CreateProcInst("xml", `version="1.0"`)
	out.CreateText("\n")

	root := out.CreateElement("doc")
	if doc.Assembly != "" {
		root.CreateText("\n  ")
		root.CreateElement("assembly").CreateElement("name").CreateText(doc.Assembly)
	}

	root.CreateText("\n  ")
	members := root.CreateElement("members")
	for _, m := range doc.Members() {
		members.CreateText("\n    ")
		appendElement(members, m)
	}
	if len(doc.Members()) > 0 {
		members.CreateText("\n  ")
	}
	root.CreateText("\n")
	out.CreateText("\n")
	return out
}

func appendElement(parent *etree.Element, e element.Element) {
	switch x := e.(type) {
	case *element.Text:
		parent.CreateText(x.Content)
		return
	case *element.Code:
		tag(parent, "code", x).CreateText(x.Content)
		return
	case *element.C:
		tag(parent, "c", x).CreateText(x.Content)
		return
	case *element.See:
		el := tag(parent, "see", x, "cref", x.Cref, "langword", x.Langword, "href", x.Href)
		if x.Content != "" {
			el.CreateText(x.Content)
		}
		return
	case *element.SeeAlso:
		el := tag(parent, "seealso", x, "cref", x.Cref, "href", x.Href)
		if x.Content != "" {
			el.CreateText(x.Content)
		}
		return
	case *element.ParamRef:
		tag(parent, "paramref", x, "name", x.Name)
		return
	case *element.TypeParamRef:
		tag(parent, "typeparamref", x, "name", x.Name)
		return
	}

	c, ok := e.(element.Container)
	if !ok {
		return
	}

	var el *etree.Element
	switch x := c.(type) {
	case *element.Member:
		el = tag(parent, "member", x, "name", x.ID())
	case *element.Param:
		el = tag(parent, "param", x, "name", x.Name)
	case *element.TypeParam:
		el = tag(parent, "typeparam", x, "name", x.Name)
	case *element.Exception:
		el = tag(parent, "exception", x, "cref", x.Cref)
	case *element.Permission:
		el = tag(parent, "permission", x, "cref", x.Cref)
	case *element.List:
		el = tag(parent, "list", x, "type", string(x.Type))
	case *element.Unknown:
		el = tag(parent, x.Name, x)
	default:
		el = tag(parent, c.Kind().String(), c)
	}

	for _, child := range c.Children() {
		appendElement(el, child)
	}
}

// tag creates a child element named name. The attribute pairs in fields are
// written first and skipped when empty; the element's remaining markup
// attributes follow in name order.
func tag(parent *etree.Element, name string, e element.Element, fields ...string) *etree.Element {
	el := parent.CreateElement(name)
	set := make(map[string]struct{}, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		set[fields[i]] = struct{}{}
		if fields[i+1] != "" {
			el.CreateAttr(fields[i], fields[i+1])
		}
	}
	attrs := e.Attributes()
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		if _, ok := set[k]; ok {
			continue
		}
		el.CreateAttr(k, attrs[k])
	}
	return el
}
