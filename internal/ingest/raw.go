package ingest

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/phobologic/xmldoc/internal/element"
)

// rawNode is one markup node as read from the file: a tag with attributes
// and children, or a run of character data when tag is empty.
type rawNode struct {
	tag      string
	attrs    element.Attributes
	pos      element.Position
	text     string
	children []*rawNode
}

func (n *rawNode) isText() bool {
	return n.tag == ""
}

// child returns the first child element named tag.
func (n *rawNode) child(tag string) *rawNode {
	for _, c := range n.children {
		if c.tag == tag {
			return c
		}
	}
	return nil
}

// innerText concatenates all character data below n.
func (n *rawNode) innerText() string {
	var b strings.Builder
	var walk func(*rawNode)
	walk = func(r *rawNode) {
		if r.isText() {
			b.WriteString(r.text)
			return
		}
		for _, c := range r.children {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// decode reads the whole markup document into a rawNode tree and returns
// its root element.
func decode(r io.Reader) (*rawNode, error) {
	dec := xml.NewDecoder(r)

	var root *rawNode
	var stack []*rawNode

	for {
		line, col := dec.InputPos()
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading markup: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &rawNode{
				tag:   t.Name.Local,
				attrs: attributes(t.Attr),
				pos:   element.Position{Line: line, Column: col},
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("reading markup: multiple root elements at %d:%d", line, col)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			parent := stack[len(stack)-1]
			// Adjacent runs (text followed by CDATA) are merged.
			if k := len(parent.children); k > 0 && parent.children[k-1].isText() {
				parent.children[k-1].text += string(t)
				continue
			}
			parent.children = append(parent.children, &rawNode{
				text: string(t),
				pos:  element.Position{Line: line, Column: col},
			})
		}
	}

	if root == nil {
		return nil, fmt.Errorf("reading markup: no root element")
	}
	return root, nil
}

func attributes(attrs []xml.Attr) element.Attributes {
	out := make(element.Attributes, len(attrs))
	for _, a := range attrs {
		out[a.Name.Local] = a.Value
	}
	return out
}
