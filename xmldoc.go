// Package xmldoc reads XML documentation files into a typed element tree,
// cross-references documented members against type descriptors and renders
// the result.
//
// A typical pipeline reads a documentation file, resolves it against
// descriptors introspected from C# sources and renders the tree:
//
//	cfg := xmldoc.NewConfig()
//	doc, err := xmldoc.Open(ctx, r, sources, cfg, nil)
//	md := xmldoc.Markdown(doc)
package xmldoc

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/phobologic/xmldoc/internal/config"
	"github.com/phobologic/xmldoc/internal/element"
	"github.com/phobologic/xmldoc/internal/graph"
	"github.com/phobologic/xmldoc/internal/ingest"
	"github.com/phobologic/xmldoc/internal/introspect"
	"github.com/phobologic/xmldoc/internal/memberid"
	"github.com/phobologic/xmldoc/internal/model"
	"github.com/phobologic/xmldoc/internal/ranking"
	"github.com/phobologic/xmldoc/internal/render"
	"github.com/phobologic/xmldoc/internal/toon"
	"github.com/phobologic/xmldoc/internal/xmlwrite"
)

type (
	Element   = element.Element
	Container = element.Container
	Document  = element.Document
	Member    = element.Member
	Kind      = element.Kind
	Visitor   = element.Visitor
	Base      = element.Base
	Funcs     = element.Funcs
	Source    = introspect.Source
	Report    = ingest.Report
	Lookup    = ingest.Lookup
	Index     = model.Index
	Config    = config.Config
)

// NewConfig returns the default configuration. Overlay YAML with its Parse
// or Load methods.
func NewConfig() *Config {
	return config.New()
}

// Read parses a documentation file. Member contents are built on first
// access.
func Read(r io.Reader, cfg *Config) (*Document, error) {
	if cfg == nil {
		cfg = config.New()
	}
	return ingest.Read(r, ingest.Options{KeepNewLines: cfg.KeepNewLines})
}

// Introspect loads type descriptors from sources and returns the id map
// over them.
func Introspect(ctx context.Context, sources []Source, cfg *Config, log *logrus.Logger) (*memberid.Map, error) {
	if cfg == nil {
		cfg = config.New()
	}
	result, err := introspect.Load(ctx, sources, introspect.Options{
		Exclude: cfg.Exclude,
		Logger:  log,
	})
	if err != nil {
		return nil, fmt.Errorf("introspecting sources: %w", err)
	}
	ids := memberid.New()
	ids.Register(result.Members()...)
	return ids, nil
}

// Resolve attaches to each member of doc the descriptor registered under
// its id. doc itself is not modified.
func Resolve(doc *Document, ids Lookup, log *logrus.Logger) (*Document, Report) {
	return ingest.Resolve(doc, ids, log)
}

// Open reads a documentation file and, when cfg enables it and sources are
// given, resolves its members against the descriptors found in sources.
func Open(ctx context.Context, r io.Reader, sources []Source, cfg *Config, log *logrus.Logger) (*Document, error) {
	if cfg == nil {
		cfg = config.New()
	}
	if log == nil {
		log = logrus.New()
	}

	doc, err := Read(r, cfg)
	if err != nil {
		return nil, err
	}
	if !cfg.Resolve || len(sources) == 0 {
		return doc, nil
	}

	ids, err := Introspect(ctx, sources, cfg, log)
	if err != nil {
		return nil, err
	}
	resolved, report := Resolve(doc, ids, log)
	if len(report.Unresolved) > 0 {
		log.WithFields(logrus.Fields{
			"matched":    report.Matched,
			"unresolved": len(report.Unresolved),
		}).Info("some documented members have no declaration")
	}
	return resolved, nil
}

// ToText returns the plain text of e.
func ToText(e Element) string {
	return element.ToText(e)
}

// Traverse returns e and all of its descendants in pre-order.
func Traverse(e Element) []Element {
	return element.Traverse(e)
}

// Walk dispatches e to the matching method of v.
func Walk(v Visitor, e Element) {
	element.Walk(v, e)
}

// Visit walks e calling the non-nil callbacks of fn.
func Visit(e Element, fn Funcs) {
	element.Visit(e, fn)
}

// BuildIndex ranks the members of doc by how often they are referenced,
// narrows them to cfg.Index.Kinds and cfg.Index.Focus when set, and keeps
// at most cfg.Index.MaxMembers of them.
func BuildIndex(doc *Document, cfg *Config) *Index {
	if cfg == nil {
		cfg = config.New()
	}
	idx := graph.BuildIndex(doc)
	idx.Sites = graph.BuildSites(doc)
	idx = FilterIndex(idx, cfg.Index.Focus, cfg.Index.Kinds...)
	return ranking.SelectMembers(idx, cfg.Index.MaxMembers)
}

// FilterIndex narrows idx to members of the given kinds, then to members
// whose id contains focus and their direct neighbours. An empty focus or
// kind list skips that step.
func FilterIndex(idx *Index, focus string, kinds ...string) *Index {
	if len(kinds) > 0 {
		idx = ranking.FilterByKind(idx, kinds...)
	}
	if focus != "" {
		idx = ranking.FilterByID(idx, focus)
	}
	return idx
}

// EncodeIndex returns idx in TOON format.
func EncodeIndex(idx *Index) string {
	return toon.Encode(idx)
}

// Markdown renders e as Markdown.
func Markdown(e Element) string {
	return render.Markdown(e)
}

// HTML renders e as HTML using the markdown settings of cfg.
func HTML(e Element, cfg *Config) ([]byte, error) {
	if cfg == nil {
		cfg = config.New()
	}
	return render.HTML(e, render.Options{
		Extensions: cfg.Markdown.Extensions,
		HardWraps:  cfg.Markdown.HardWraps,
	})
}

// WriteXML writes doc back out as a documentation file.
func WriteXML(w io.Writer, doc *Document) error {
	return xmlwrite.Write(w, doc)
}
