package introspect

import (
	"regexp"
	"strconv"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// collapseWhitespace replaces runs of whitespace with a single space and trims.
func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// typeExpr is a parsed type reference as written in source.
type typeExpr struct {
	segments []string
	args     []*typeExpr
	tuple    []*typeExpr
	suffixes []suffix
}

// suffix is a trailing shape: '?', '*' or '[' with its rank.
type suffix struct {
	kind byte
	rank int
}

// parseTypeExpr parses a type reference such as "Dictionary<string, int[]>?".
func parseTypeExpr(s string) (*typeExpr, bool) {
	p := &typeParser{toks: tokenize(s)}
	e := p.parse()
	if e == nil || p.pos != len(p.toks) {
		return nil, false
	}
	return e, true
}

func tokenize(s string) []string {
	var toks []string
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isIdentByte(c):
			j := i
			for j < len(s) && isIdentByte(s[j]) {
				j++
			}
			toks = append(toks, strings.TrimPrefix(s[i:j], "@"))
			i = j
		case c == ':' && i+1 < len(s) && s[i+1] == ':':
			// global::System.Int32
			toks = append(toks, ".")
			i += 2
		default:
			toks = append(toks, string(c))
			i++
		}
	}
	return toks
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '@' || c >= 0x80 ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func isIdent(tok string) bool {
	return tok != "" && isIdentByte(tok[0])
}

// typePrefixes may precede a type without changing its identity.
var typePrefixes = map[string]bool{
	"ref":      true,
	"readonly": true,
	"scoped":   true,
}

type typeParser struct {
	toks []string
	pos  int
}

func (p *typeParser) peek() string {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	return ""
}

func (p *typeParser) next() string {
	tok := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return tok
}

func (p *typeParser) parse() *typeExpr {
	for typePrefixes[p.peek()] {
		p.next()
	}

	e := &typeExpr{}
	if p.peek() == "(" {
		p.next()
		for {
			el := p.parse()
			if el == nil {
				return nil
			}
			e.tuple = append(e.tuple, el)
			// Element names are not part of the type.
			if isIdent(p.peek()) {
				p.next()
			}
			if p.peek() != "," {
				break
			}
			p.next()
		}
		if p.next() != ")" {
			return nil
		}
	} else {
		if !isIdent(p.peek()) {
			return nil
		}
		e.segments = append(e.segments, p.next())
		for {
			if p.peek() == "<" {
				args := p.arguments()
				if args == nil {
					return nil
				}
				e.args = args
			}
			if p.peek() != "." {
				break
			}
			p.next()
			if !isIdent(p.peek()) {
				return nil
			}
			e.segments = append(e.segments, p.next())
		}
	}

	for {
		switch p.peek() {
		case "?":
			p.next()
			e.suffixes = append(e.suffixes, suffix{kind: '?'})
		case "*":
			p.next()
			e.suffixes = append(e.suffixes, suffix{kind: '*'})
		case "[":
			p.next()
			rank := 1
			for p.peek() == "," {
				p.next()
				rank++
			}
			if p.next() != "]" {
				return nil
			}
			e.suffixes = append(e.suffixes, suffix{kind: '[', rank: rank})
		default:
			return e
		}
	}
}

func (p *typeParser) arguments() []*typeExpr {
	p.next() // <
	var args []*typeExpr
	for {
		arg := p.parse()
		if arg == nil {
			return nil
		}
		args = append(args, arg)
		if p.peek() != "," {
			break
		}
		p.next()
	}
	if p.next() != ">" {
		return nil
	}
	return args
}

func (e *typeExpr) String() string {
	var b strings.Builder
	if e.tuple != nil {
		b.WriteByte('(')
		for i, el := range e.tuple {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(el.String())
		}
		b.WriteByte(')')
	} else {
		b.WriteString(strings.Join(e.segments, "."))
		if len(e.args) > 0 {
			b.WriteByte('<')
			for i, a := range e.args {
				if i > 0 {
					b.WriteByte(',')
				}
				b.WriteString(a.String())
			}
			b.WriteByte('>')
		}
	}
	for _, s := range e.suffixes {
		if s.kind == '[' {
			b.WriteString("[" + strconv.Itoa(s.rank) + "]")
			continue
		}
		b.WriteByte(s.kind)
	}
	return b.String()
}
