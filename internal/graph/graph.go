// Package graph builds the cross-reference graph between documented members
// and ranks them with PageRank.
package graph

import (
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/phobologic/xmldoc/internal/element"
	"github.com/phobologic/xmldoc/internal/model"
)

// BuildIndex returns the ranked member index of doc, best-ranked first.
func BuildIndex(doc *element.Document) *model.Index {
	idx := &model.Index{
		Assembly:   doc.Assembly,
		Members:    Entries(doc),
		References: BuildGraph(doc),
	}
	Rank(idx.Members, idx.References)
	return idx
}

// Entries lists the documented members in document order with their
// flattened summaries.
func Entries(doc *element.Document) []model.Entry {
	var entries []model.Entry
	for _, m := range doc.Members() {
		entries = append(entries, model.Entry{
			ID:      m.ID(),
			Kind:    m.Kind().String(),
			Summary: summaryOf(m),
		})
	}
	return entries
}

func summaryOf(m *element.Member) string {
	for _, c := range m.Children() {
		if c.Kind() == element.KindSummary {
			return strings.Join(strings.Fields(element.ToText(c)), " ")
		}
	}
	return ""
}

// crefs calls fn for every cross-reference below e.
func crefs(e element.Element, fn func(target, tag string, pos element.Position)) {
	element.Visit(e, element.Funcs{
		See: func(x *element.See) {
			if x.Cref != "" {
				fn(x.Cref, "see", x.Position())
			}
		},
		SeeAlso: func(x *element.SeeAlso) {
			if x.Cref != "" {
				fn(x.Cref, "seealso", x.Position())
			}
		},
		Exception: func(x *element.Exception) {
			if x.Cref != "" {
				fn(x.Cref, "exception", x.Position())
			}
		},
		Permission: func(x *element.Permission) {
			if x.Cref != "" {
				fn(x.Cref, "permission", x.Position())
			}
		},
	})
}

func documented(doc *element.Document) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, m := range doc.Members() {
		ids[m.ID()] = struct{}{}
	}
	return ids
}

// BuildGraph creates an edge from each member to every documented member
// its content references. References to undocumented ids and to the member
// itself are dropped. Edges are deduplicated and sorted.
func BuildGraph(doc *element.Document) []model.Reference {
	known := documented(doc)

	type edgeKey struct{ src, tgt string }
	via := make(map[edgeKey][]string)

	for _, m := range doc.Members() {
		src := m.ID()
		crefs(m, func(target, tag string, _ element.Position) {
			if target == src {
				return
			}
			if _, ok := known[target]; !ok {
				return
			}
			key := edgeKey{src, target}
			if !slices.Contains(via[key], tag) {
				via[key] = append(via[key], tag)
			}
		})
	}

	refs := make([]model.Reference, 0, len(via))
	for key, tags := range via {
		refs = append(refs, model.Reference{Source: key.src, Target: key.tgt, Via: tags})
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Source != refs[j].Source {
			return refs[i].Source < refs[j].Source
		}
		return refs[i].Target < refs[j].Target
	})
	return refs
}

// BuildSites returns every cross-reference occurrence, including those to
// undocumented ids. Unlike BuildGraph it does not deduplicate: a member that
// names another three times yields three sites.
func BuildSites(doc *element.Document) []model.Site {
	var sites []model.Site
	for _, m := range doc.Members() {
		src := m.ID()
		crefs(m, func(target, tag string, pos element.Position) {
			sites = append(sites, model.Site{Source: src, Target: target, Tag: tag, Line: pos.Line})
		})
	}

	sort.SliceStable(sites, func(i, j int) bool {
		if sites[i].Source != sites[j].Source {
			return sites[i].Source < sites[j].Source
		}
		if sites[i].Target != sites[j].Target {
			return sites[i].Target < sites[j].Target
		}
		return sites[i].Line < sites[j].Line
	})
	return sites
}

// Rank applies PageRank to entries and sorts them by rank descending. Ties
// keep document order.
func Rank(entries []model.Entry, refs []model.Reference) {
	if len(entries) == 0 {
		return
	}

	if len(refs) == 0 {
		uniform := 1.0 / float64(len(entries))
		for i := range entries {
			entries[i].Rank = uniform
		}
		return
	}

	index := make(map[string]int, len(entries))
	for i := range entries {
		index[entries[i].ID] = i
	}

	// Each tag carrying a reference counts as one edge.
	out := make([][]int, len(entries))
	for _, r := range refs {
		src, ok := index[r.Source]
		if !ok {
			continue
		}
		tgt, ok := index[r.Target]
		if !ok {
			continue
		}
		for range r.Via {
			out[src] = append(out[src], tgt)
		}
	}

	ranks := pageRank(out, 0.85, 100, 1e-6)
	for i := range entries {
		entries[i].Rank = ranks[i]
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Rank > entries[j].Rank
	})
}

// pageRank runs the power iteration over an adjacency list where out[i]
// holds the targets of node i, with repeats for parallel edges.
func pageRank(out [][]int, alpha float64, maxIter int, tol float64) []float64 {
	n := len(out)
	rank := make([]float64, n)
	for i := range rank {
		rank[i] = 1.0 / float64(n)
	}
	teleport := (1.0 - alpha) / float64(n)

	for iter := 0; iter < maxIter; iter++ {
		// Dangling nodes spread their rank evenly.
		var dangling float64
		for i, targets := range out {
			if len(targets) == 0 {
				dangling += rank[i]
			}
		}
		base := teleport + alpha*dangling/float64(n)

		next := make([]float64, n)
		for i := range next {
			next[i] = base
		}
		for i, targets := range out {
			if len(targets) == 0 {
				continue
			}
			share := alpha * rank[i] / float64(len(targets))
			for _, t := range targets {
				next[t] += share
			}
		}

		var diff float64
		for i := range rank {
			diff += math.Abs(next[i] - rank[i])
		}
		rank = next
		if diff < tol {
			break
		}
	}
	return rank
}
