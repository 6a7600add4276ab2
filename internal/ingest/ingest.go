// Package ingest reads documentation files into element trees and matches
// their members against introspected descriptors.
package ingest

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/phobologic/xmldoc/internal/element"
	"github.com/phobologic/xmldoc/internal/normalize"
)

// Options controls how text content is normalized.
type Options struct {
	// KeepNewLines joins prose lines with "\n" instead of a single space.
	KeepNewLines bool
}

// Read parses a documentation file. Member content is mapped to elements
// lazily, the first time each container's children are read.
func Read(r io.Reader, opts Options) (*element.Document, error) {
	root, err := decode(r)
	if err != nil {
		return nil, err
	}
	if root.tag != "doc" {
		return nil, fmt.Errorf("root element is <%s>, want <doc>", root.tag)
	}

	var assembly string
	if a := root.child("assembly"); a != nil {
		if n := a.child("name"); n != nil {
			assembly = strings.TrimSpace(n.innerText())
		}
	}

	var members []*rawNode
	if ms := root.child("members"); ms != nil {
		for _, c := range ms.children {
			if c.tag == "member" {
				members = append(members, c)
			}
		}
	}

	b := &builder{opts: opts}
	return element.NewDocument(assembly, markup(root), b.members(members)), nil
}

type builder struct {
	opts Options
}

func markup(n *rawNode) element.Markup {
	return element.Markup{Attrs: n.attrs, Pos: n.pos}
}

func (b *builder) members(nodes []*rawNode) iter.Seq[element.Element] {
	return func(yield func(element.Element) bool) {
		for _, n := range nodes {
			id := n.attrs.Get("name")
			m := element.NewMember(memberKind(id), id, markup(n), b.children(n.children))
			if !yield(m) {
				return
			}
		}
	}
}

// memberKind maps the one-letter prefix of a member id to its element kind.
func memberKind(id string) element.Kind {
	if len(id) < 3 || id[1] != ':' {
		return element.KindUnknownMember
	}
	switch id[0] {
	case 'T':
		return element.KindType
	case 'F':
		return element.KindField
	case 'P':
		return element.KindProperty
	case 'M':
		return element.KindMethod
	case 'E':
		return element.KindEvent
	}
	return element.KindUnknownMember
}

func (b *builder) children(nodes []*rawNode) iter.Seq[element.Element] {
	return func(yield func(element.Element) bool) {
		for i, n := range nodes {
			var e element.Element
			if n.isText() {
				e = b.text(n, i > 0, i < len(nodes)-1)
			} else {
				e = b.element(n)
			}
			if e == nil {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// text normalizes a run of character data. Line breaks that separate the
// run from a neighboring inline element collapse to a single separator.
func (b *builder) text(n *rawNode, after, before bool) element.Element {
	s := normalize.Prose(n.text, b.opts.KeepNewLines)
	if s == "" {
		// Whitespace between two inline elements on the same line.
		if after && before && n.text != "" && !strings.Contains(n.text, "\n") {
			return element.NewText(" ", markup(n))
		}
		return nil
	}

	sep := " "
	if b.opts.KeepNewLines {
		sep = "\n"
	}
	if after && breaksAt(n.text, true) {
		s = sep + s
	}
	if before && breaksAt(n.text, false) {
		s += sep
	}
	return element.NewText(s, markup(n))
}

// breaksAt reports whether the leading (or trailing) whitespace of s holds
// a line break.
func breaksAt(s string, leading bool) bool {
	var ws string
	if leading {
		ws = s[:len(s)-len(strings.TrimLeft(s, " \t\r\n"))]
	} else {
		ws = s[len(strings.TrimRight(s, " \t\r\n")):]
	}
	return strings.Contains(ws, "\n")
}

func (b *builder) prose(n *rawNode) string {
	return normalize.Prose(n.innerText(), b.opts.KeepNewLines)
}

func (b *builder) element(n *rawNode) element.Element {
	m := markup(n)
	a := n.attrs
	kids := b.children(n.children)

	switch n.tag {
	case "summary":
		return element.NewBlock(element.KindSummary, m, kids)
	case "remarks":
		return element.NewBlock(element.KindRemarks, m, kids)
	case "example":
		return element.NewBlock(element.KindExample, m, kids)
	case "para":
		return element.NewBlock(element.KindPara, m, kids)
	case "returns":
		return element.NewBlock(element.KindReturns, m, kids)
	case "value":
		return element.NewBlock(element.KindValue, m, kids)
	case "listheader":
		return element.NewBlock(element.KindListHeader, m, kids)
	case "item":
		return element.NewBlock(element.KindItem, m, kids)
	case "term":
		return element.NewBlock(element.KindTerm, m, kids)
	case "description":
		return element.NewBlock(element.KindDescription, m, kids)
	case "param":
		return element.NewParam(a.Get("name"), m, kids)
	case "typeparam":
		return element.NewTypeParam(a.Get("name"), m, kids)
	case "exception":
		return element.NewException(a.Get("cref"), m, kids)
	case "permission":
		return element.NewPermission(a.Get("cref"), m, kids)
	case "list":
		return element.NewList(element.ListType(a.Get("type")), m, kids)
	case "code":
		return element.NewCode(normalize.Code(n.innerText()), m)
	case "c":
		return element.NewC(b.prose(n), m)
	case "see":
		return element.NewSee(a.Get("cref"), a.Get("langword"), a.Get("href"), b.prose(n), m)
	case "seealso":
		return element.NewSeeAlso(a.Get("cref"), a.Get("href"), b.prose(n), m)
	case "paramref":
		return element.NewParamRef(a.Get("name"), m)
	case "typeparamref":
		return element.NewTypeParamRef(a.Get("name"), m)
	}
	return element.NewUnknown(n.tag, m, kids)
}
