package introspect

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phobologic/xmldoc/internal/meta"
)

// typeDeclarations maps declaration node types to their category.
var typeDeclarations = map[string]meta.Category{
	"class_declaration":         meta.Class,
	"struct_declaration":        meta.Struct,
	"interface_declaration":     meta.Interface,
	"enum_declaration":          meta.Enum,
	"record_declaration":        meta.Class,
	"record_struct_declaration": meta.Struct,
	"delegate_declaration":      meta.Delegate,
}

var modifierWords = map[string]bool{
	"public": true, "private": true, "protected": true, "internal": true, "file": true,
	"static": true, "const": true, "readonly": true, "volatile": true,
	"abstract": true, "sealed": true, "virtual": true, "override": true, "new": true,
	"partial": true, "async": true, "extern": true, "unsafe": true, "required": true,
}

// declare records every type declared below n. A file-scoped namespace
// applies to the declarations that follow it.
func (l *loader) declare(n *sitter.Node, src []byte, ns string, outer *meta.TypeInfo) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "namespace_declaration":
			name := child.ChildByFieldName("name")
			body := child.ChildByFieldName("body")
			if name == nil || body == nil {
				continue
			}
			l.declare(body, src, joinName(ns, collapseWhitespace(name.Content(src))), nil)
		case "file_scoped_namespace_declaration":
			if name := child.ChildByFieldName("name"); name != nil {
				ns = joinName(ns, collapseWhitespace(name.Content(src)))
			}
			l.declare(child, src, ns, nil)
		case "declaration_list":
			l.declare(child, src, ns, outer)
		default:
			category, ok := typeDeclarations[child.Type()]
			if !ok {
				continue
			}
			if child.Type() == "record_declaration" && hasToken(child, "struct") {
				category = meta.Struct
			}
			l.declareType(child, src, ns, outer, category)
		}
	}
}

func (l *loader) declareType(n *sitter.Node, src []byte, ns string, outer *meta.TypeInfo, category meta.Category) {
	nameNode := nameOf(n)
	if nameNode == nil {
		return
	}
	name := nameNode.Content(src)
	params := typeParameterNames(n, src)

	key := joinName(ns, name) + arityTag(len(params))
	if outer != nil {
		key = l.keys[outer] + "." + name + arityTag(len(params))
	}

	t, ok := l.types[key]
	if !ok {
		access := meta.Internal
		if outer != nil {
			access = memberDefault(outer)
		}
		access = accessOf(modifiers(n, src), access)

		if outer != nil {
			t = outer.AddNested(name, category, access)
		} else {
			t = meta.NewType(ns, name, category, access)
			l.top = append(l.top, t)
		}
		t.WithTypeParameters(params...)

		l.types[key] = t
		l.keys[t] = key
		simple := name + arityTag(len(params))
		l.bySimple[simple] = append(l.bySimple[simple], t)
	}

	l.pending = append(l.pending, pendingType{
		typ:    t,
		node:   n,
		src:    src,
		ns:     ns,
		isEnum: category == meta.Enum,
	})

	if body := n.ChildByFieldName("body"); body != nil && category != meta.Enum {
		l.declare(body, src, ns, t)
	}
}

// readMembers adds the fields, properties, events, methods and
// constructors of one declaration to its type.
func (l *loader) readMembers(p pendingType) {
	t, n, src := p.typ, p.node, p.src
	sc := &scope{l: l, ns: p.ns, owner: t}

	switch {
	case t.Category() == meta.Delegate:
		invoke := t.AddMethod("Invoke", meta.Public)
		invoke.WithParameters(sc.parameters(parameterList(n), src)...)
		return
	case p.isEnum:
		if body := n.ChildByFieldName("body"); body != nil {
			for i := 0; i < int(body.NamedChildCount()); i++ {
				c := body.NamedChild(i)
				if c.Type() != "enum_member_declaration" {
					continue
				}
				if name := nameOf(c); name != nil {
					t.AddField(name.Content(src), t, meta.Public)
				}
			}
		}
		return
	}

	// Positional records get a primary constructor and a property per
	// parameter.
	if list := parameterList(n); list != nil {
		params := sc.parameters(list, src)
		t.AddConstructor(meta.Public).WithParameters(params...)
		for i, name := range parameterNames(list, src) {
			if i < len(params) {
				t.AddProperty(name, params[i], meta.Public)
			}
		}
	}

	body := n.ChildByFieldName("body")
	if body == nil {
		return
	}
	def := memberDefault(t)
	for i := 0; i < int(body.NamedChildCount()); i++ {
		l.readMember(sc, body.NamedChild(i), src, def)
	}
}

func (l *loader) readMember(sc *scope, n *sitter.Node, src []byte, def meta.Access) {
	t := sc.owner
	mods := modifiers(n, src)
	access := accessOf(mods, def)

	switch n.Type() {
	case "field_declaration":
		typ, names := variables(sc, n, src)
		for _, name := range names {
			t.AddField(name, typ, access)
		}
	case "event_field_declaration":
		typ, names := variables(sc, n, src)
		for _, name := range names {
			t.AddEvent(name, typ, access)
		}
	case "event_declaration":
		if name := nameOf(n); name != nil {
			t.AddEvent(name.Content(src), sc.typeOf(n, src), access)
		}
	case "property_declaration":
		name := nameOf(n)
		if name == nil {
			return
		}
		typ := sc.typeOf(n, src)
		t.AddProperty(name.Content(src), typ, access)
		for _, acc := range accessors(n, src) {
			t.AddMethod(acc+"_"+name.Content(src), access).SpecialName()
		}
	case "indexer_declaration":
		typ := sc.typeOf(n, src)
		t.AddProperty("Item", typ, access).WithParameters(sc.parameters(parameterList(n), src)...)
	case "method_declaration":
		name := nameOf(n)
		if name == nil {
			return
		}
		m := t.AddMethod(name.Content(src), access)
		params := typeParameterNames(n, src)
		m.WithTypeParameters(params...)
		msc := &scope{l: l, ns: sc.ns, owner: t, method: m, methodParams: params}
		m.WithParameters(msc.parameters(parameterList(n), src)...)
		if hasWord(mods, "static") {
			m.Static()
		}
	case "constructor_declaration":
		m := t.AddConstructor(access)
		m.WithParameters(sc.parameters(parameterList(n), src)...)
		if hasWord(mods, "static") {
			m.Static()
		}
	case "destructor_declaration":
		t.AddMethod("Finalize", meta.Protected)
	case "operator_declaration", "conversion_operator_declaration":
		params := sc.parameters(parameterList(n), src)
		name := operatorName(n, src, len(params))
		t.AddMethod(name, meta.Public).WithParameters(params...).SpecialName().Static()
	}
}

// variables returns the declared type and names of a field or event field
// declaration.
func variables(sc *scope, n *sitter.Node, src []byte) (meta.Type, []string) {
	decl := childOfType(n, "variable_declaration")
	if decl == nil {
		return nil, nil
	}
	var typ meta.Type
	if tn := decl.ChildByFieldName("type"); tn != nil {
		typ = sc.resolve(tn.Content(src))
	}
	var names []string
	for i := 0; i < int(decl.NamedChildCount()); i++ {
		c := decl.NamedChild(i)
		if c.Type() != "variable_declarator" {
			continue
		}
		name := nameOf(c)
		if name == nil && c.NamedChildCount() > 0 {
			name = c.NamedChild(0)
		}
		if name != nil {
			names = append(names, name.Content(src))
		}
	}
	return typ, names
}

// typeOf resolves the declared type of a property, event or indexer.
func (sc *scope) typeOf(n *sitter.Node, src []byte) meta.Type {
	tn := n.ChildByFieldName("type")
	if tn == nil {
		return nil
	}
	return sc.resolve(tn.Content(src))
}

// parameters resolves the types of a parameter list. Parameters passed by
// reference become by-ref types.
func (sc *scope) parameters(list *sitter.Node, src []byte) []meta.Type {
	if list == nil {
		return nil
	}
	var types []meta.Type
	for i := 0; i < int(list.NamedChildCount()); i++ {
		p := list.NamedChild(i)
		if p.Type() != "parameter" && p.Type() != "parameter_array" {
			continue
		}
		text, byRef := parameterType(p, src)
		if text == "" {
			continue
		}
		typ := sc.resolve(text)
		if byRef {
			typ = sc.l.shape(typ, meta.ByRef, 0)
		}
		types = append(types, typ)
	}
	return types
}

// parameterType returns the type text of a parameter and whether it is
// passed by reference.
func parameterType(p *sitter.Node, src []byte) (string, bool) {
	tn := p.ChildByFieldName("type")
	if tn == nil {
		return "", false
	}
	byRef := false
	for i := 0; i < int(p.ChildCount()); i++ {
		c := p.Child(i)
		if c.StartByte() >= tn.StartByte() {
			break
		}
		for _, w := range strings.Fields(c.Content(src)) {
			if w == "ref" || w == "out" || w == "in" {
				byRef = true
			}
		}
	}
	return tn.Content(src), byRef
}

func parameterNames(list *sitter.Node, src []byte) []string {
	var names []string
	for i := 0; i < int(list.NamedChildCount()); i++ {
		p := list.NamedChild(i)
		if p.Type() != "parameter" {
			continue
		}
		if name := nameOf(p); name != nil {
			names = append(names, name.Content(src))
		}
	}
	return names
}

func parameterList(n *sitter.Node) *sitter.Node {
	if list := n.ChildByFieldName("parameters"); list != nil {
		return list
	}
	if list := childOfType(n, "parameter_list"); list != nil {
		return list
	}
	return childOfType(n, "bracketed_parameter_list")
}

func typeParameterNames(n *sitter.Node, src []byte) []string {
	list := n.ChildByFieldName("type_parameters")
	if list == nil {
		list = childOfType(n, "type_parameter_list")
	}
	if list == nil {
		return nil
	}
	var names []string
	for i := 0; i < int(list.NamedChildCount()); i++ {
		p := list.NamedChild(i)
		if p.Type() != "type_parameter" {
			continue
		}
		if name := nameOf(p); name != nil {
			names = append(names, name.Content(src))
		}
	}
	return names
}

// accessors lists the accessor method prefixes of a property: get, set.
func accessors(n *sitter.Node, src []byte) []string {
	// Expression-bodied properties only read.
	list := childOfType(n, "accessor_list")
	if list == nil {
		return []string{"get"}
	}
	var out []string
	for i := 0; i < int(list.NamedChildCount()); i++ {
		acc := list.NamedChild(i)
		if acc.Type() != "accessor_declaration" {
			continue
		}
		for _, w := range strings.FieldsFunc(acc.Content(src), isAccessorSep) {
			if w == "get" || w == "set" || w == "init" {
				if w == "init" {
					w = "set"
				}
				out = append(out, w)
				break
			}
		}
	}
	return out
}

func isAccessorSep(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ';' || r == '{' || r == '='
}

var operatorNames = map[string][2]string{
	"+":     {"op_UnaryPlus", "op_Addition"},
	"-":     {"op_UnaryNegation", "op_Subtraction"},
	"*":     {"", "op_Multiply"},
	"/":     {"", "op_Division"},
	"%":     {"", "op_Modulus"},
	"&":     {"", "op_BitwiseAnd"},
	"|":     {"", "op_BitwiseOr"},
	"^":     {"", "op_ExclusiveOr"},
	"<<":    {"", "op_LeftShift"},
	">>":    {"", "op_RightShift"},
	"==":    {"", "op_Equality"},
	"!=":    {"", "op_Inequality"},
	"<":     {"", "op_LessThan"},
	">":     {"", "op_GreaterThan"},
	"<=":    {"", "op_LessThanOrEqual"},
	">=":    {"", "op_GreaterThanOrEqual"},
	"!":     {"op_LogicalNot", ""},
	"~":     {"op_OnesComplement", ""},
	"++":    {"op_Increment", ""},
	"--":    {"op_Decrement", ""},
	"true":  {"op_True", ""},
	"false": {"op_False", ""},
}

// operatorName returns the runtime name of a user-defined operator.
func operatorName(n *sitter.Node, src []byte, arity int) string {
	text := n.Content(src)
	if n.Type() == "conversion_operator_declaration" {
		if strings.Contains(text, "implicit") {
			return "op_Implicit"
		}
		return "op_Explicit"
	}
	i := strings.Index(text, "operator")
	if i < 0 {
		return "op_Unknown"
	}
	rest := text[i+len("operator"):]
	if j := strings.IndexByte(rest, '('); j >= 0 {
		rest = rest[:j]
	}
	names, ok := operatorNames[strings.TrimSpace(rest)]
	if !ok {
		return "op_Unknown"
	}
	if arity == 1 && names[0] != "" {
		return names[0]
	}
	if names[1] != "" {
		return names[1]
	}
	return names[0]
}

// modifiers collects the modifier keywords of a declaration.
func modifiers(n *sitter.Node, src []byte) []string {
	var mods []string
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		switch {
		case c.Type() == "modifier":
			mods = append(mods, strings.Fields(c.Content(src))...)
		case !c.IsNamed() && modifierWords[c.Type()]:
			mods = append(mods, c.Type())
		}
	}
	return mods
}

func accessOf(mods []string, def meta.Access) meta.Access {
	has := func(w string) bool { return hasWord(mods, w) }
	switch {
	case has("protected") && has("internal"):
		return meta.ProtectedInternal
	case has("private") && has("protected"):
		return meta.PrivateProtected
	case has("public"):
		return meta.Public
	case has("protected"):
		return meta.Protected
	case has("internal"), has("file"):
		return meta.Internal
	case has("private"):
		return meta.Private
	}
	return def
}

// memberDefault is the access of an undecorated member of t.
func memberDefault(t *meta.TypeInfo) meta.Access {
	if t.Category() == meta.Interface {
		return meta.Public
	}
	return meta.Private
}

func hasWord(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}
	return false
}

func hasToken(n *sitter.Node, token string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); !c.IsNamed() && c.Type() == token {
			return true
		}
	}
	return false
}

func nameOf(n *sitter.Node) *sitter.Node {
	if name := n.ChildByFieldName("name"); name != nil {
		return name
	}
	return childOfType(n, "identifier")
}

func childOfType(n *sitter.Node, typ string) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() == typ {
			return c
		}
	}
	return nil
}
