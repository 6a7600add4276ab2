// Package introspect builds type descriptors from C# source using
// tree-sitter. Only declarations are read; method bodies are ignored.
package introspect

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"

	"github.com/phobologic/xmldoc/internal/meta"
)

// Source is one C# compilation unit. Path is only matched against exclude
// patterns and reported in logs.
type Source struct {
	Path string
	Data []byte
}

// Options controls which sources are read.
type Options struct {
	// Exclude holds gitignore-style patterns matched against Source.Path.
	Exclude []string
	Logger  *logrus.Logger
}

// Result holds the descriptors found in a set of sources.
type Result struct {
	// Types are the top-level types in declaration order.
	Types []*meta.TypeInfo
	// Skipped lists the paths of excluded sources.
	Skipped []string
}

// Members returns the top-level types as members, ready for registration.
func (r *Result) Members() []meta.Member {
	members := make([]meta.Member, len(r.Types))
	for i, t := range r.Types {
		members[i] = t
	}
	return members
}

// Load parses sources and returns their type descriptors. Types are
// declared across all sources before members are read, so references
// between files resolve. Partial declarations merge into one type.
func Load(ctx context.Context, sources []Source, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = logrus.New()
	}

	l := &loader{
		log:       log,
		types:     make(map[string]*meta.TypeInfo),
		keys:      make(map[*meta.TypeInfo]string),
		bySimple:  make(map[string][]*meta.TypeInfo),
		externals: make(map[string]*meta.TypeInfo),
		instances: make(map[meta.Type][]*meta.TypeInfo),
		shapes:    make(map[shapeKey]*meta.TypeInfo),
	}

	var gi *ignore.GitIgnore
	if len(opts.Exclude) > 0 {
		gi = ignore.CompileIgnoreLines(opts.Exclude...)
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(csharp.GetLanguage())

	result := &Result{}
	var trees []*sitter.Tree
	defer func() {
		for _, t := range trees {
			t.Close()
		}
	}()

	for _, src := range sources {
		if gi != nil {
			if ok, how := gi.MatchesPathHow(src.Path); ok {
				log.WithFields(logrus.Fields{
					"path":    src.Path,
					"pattern": how.Line,
				}).Debug("skipping excluded source")
				result.Skipped = append(result.Skipped, src.Path)
				continue
			}
		}
		if len(src.Data) == 0 {
			continue
		}

		tree, err := parser.ParseCtx(ctx, nil, src.Data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", src.Path, err)
		}
		trees = append(trees, tree)

		root := tree.RootNode()
		if root.HasError() {
			log.WithField("path", src.Path).Warn("source has syntax errors; reading what parsed")
		}
		l.declare(root, src.Data, "", nil)
	}

	for _, p := range l.pending {
		l.readMembers(p)
	}

	result.Types = l.top
	log.WithFields(logrus.Fields{
		"sources": len(sources),
		"skipped": len(result.Skipped),
		"types":   len(l.keys),
	}).Debug("introspected sources")
	return result, nil
}

// pendingType is a declaration whose members are read once every type is
// known.
type pendingType struct {
	typ    *meta.TypeInfo
	node   *sitter.Node
	src    []byte
	ns     string
	isEnum bool
}

type loader struct {
	log *logrus.Logger

	// types is keyed by full name with arity tags, e.g. "Acme.Bag`1.Node".
	types     map[string]*meta.TypeInfo
	keys      map[*meta.TypeInfo]string
	bySimple  map[string][]*meta.TypeInfo
	externals map[string]*meta.TypeInfo
	// instances and shapes intern constructed types so one spelling maps
	// to one descriptor.
	instances map[meta.Type][]*meta.TypeInfo
	shapes    map[shapeKey]*meta.TypeInfo

	top     []*meta.TypeInfo
	pending []pendingType
}

// external returns the shared descriptor for a type not declared in the
// sources.
func (l *loader) external(ns, name string, arity int, category meta.Category) *meta.TypeInfo {
	key := joinName(ns, name) + arityTag(arity)
	if t, ok := l.externals[key]; ok {
		return t
	}
	t := meta.NewType(ns, name, category, meta.Public)
	if arity > 0 {
		names := make([]string, arity)
		for i := range names {
			names[i] = "T" + strconv.Itoa(i+1)
		}
		t.WithTypeParameters(names...)
	}
	l.externals[key] = t
	return t
}

type shapeKey struct {
	elem meta.Type
	mod  meta.Modifier
	rank int
}

// instantiate returns the shared closed form of def over args.
func (l *loader) instantiate(def meta.Type, args ...meta.Type) *meta.TypeInfo {
	for _, t := range l.instances[def] {
		if slices.Equal(t.GenericArguments(), args) {
			return t
		}
	}
	t := meta.Instantiate(def, args...)
	l.instances[def] = append(l.instances[def], t)
	return t
}

// shape returns the shared array, by-ref or pointer form of elem.
func (l *loader) shape(elem meta.Type, mod meta.Modifier, rank int) *meta.TypeInfo {
	key := shapeKey{elem, mod, rank}
	if t, ok := l.shapes[key]; ok {
		return t
	}
	var t *meta.TypeInfo
	switch mod {
	case meta.Pointer:
		t = meta.PointerOf(elem)
	case meta.ByRef:
		t = meta.ByRefOf(elem)
	default:
		t = meta.ArrayOf(elem, rank)
	}
	l.shapes[key] = t
	return t
}
