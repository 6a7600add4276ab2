// Package ranking narrows a ranked member index down to what a reader asked
// for.
package ranking

import (
	"strings"

	"github.com/phobologic/xmldoc/internal/model"
)

// SelectMembers returns a new Index with only the top-ranked members and the
// references between them. If maxMembers is <= 0 or >= len(members), the
// index is returned unchanged.
func SelectMembers(idx *model.Index, maxMembers int) *model.Index {
	if maxMembers <= 0 || maxMembers >= len(idx.Members) {
		return idx
	}

	selected := idx.Members[:maxMembers]
	ids := make(map[string]struct{}, maxMembers)
	for i := range selected {
		ids[selected[i].ID] = struct{}{}
	}

	var refs []model.Reference
	for i := range idx.References {
		r := &idx.References[i]
		_, srcOK := ids[r.Source]
		_, tgtOK := ids[r.Target]
		if srcOK && tgtOK {
			refs = append(refs, *r)
		}
	}

	var sites []model.Site
	for i := range idx.Sites {
		if _, ok := ids[idx.Sites[i].Source]; ok {
			sites = append(sites, idx.Sites[i])
		}
	}

	return &model.Index{
		Assembly:   idx.Assembly,
		Members:    selected,
		References: refs,
		Sites:      sites,
	}
}

// FilterByID returns a new Index holding the members whose id contains
// substr (case-insensitive), the members they reference or are referenced
// by, and the references touching a matched member.
func FilterByID(idx *model.Index, substr string) *model.Index {
	lower := strings.ToLower(substr)

	matched := make(map[string]struct{})
	for i := range idx.Members {
		if strings.Contains(strings.ToLower(idx.Members[i].ID), lower) {
			matched[idx.Members[i].ID] = struct{}{}
		}
	}

	related := make(map[string]struct{})
	var refs []model.Reference
	for i := range idx.References {
		r := &idx.References[i]
		_, srcOK := matched[r.Source]
		_, tgtOK := matched[r.Target]
		if srcOK {
			related[r.Target] = struct{}{}
		}
		if tgtOK {
			related[r.Source] = struct{}{}
		}
		if srcOK || tgtOK {
			refs = append(refs, *r)
		}
	}

	var members []model.Entry
	for i := range idx.Members {
		_, isMatched := matched[idx.Members[i].ID]
		_, isRelated := related[idx.Members[i].ID]
		if isMatched || isRelated {
			members = append(members, idx.Members[i])
		}
	}

	var sites []model.Site
	for i := range idx.Sites {
		s := &idx.Sites[i]
		_, srcOK := matched[s.Source]
		_, tgtOK := matched[s.Target]
		if srcOK || tgtOK {
			sites = append(sites, *s)
		}
	}

	return &model.Index{
		Assembly:   idx.Assembly,
		Members:    members,
		References: refs,
		Sites:      sites,
	}
}

// FilterByKind returns a new Index containing only members of the given
// kinds, with the references that leave them.
func FilterByKind(idx *model.Index, kinds ...string) *model.Index {
	want := make(map[string]struct{}, len(kinds))
	for _, k := range kinds {
		want[strings.ToLower(k)] = struct{}{}
	}

	ids := make(map[string]struct{})
	var members []model.Entry
	for i := range idx.Members {
		if _, ok := want[idx.Members[i].Kind]; ok {
			ids[idx.Members[i].ID] = struct{}{}
			members = append(members, idx.Members[i])
		}
	}

	var refs []model.Reference
	for i := range idx.References {
		if _, ok := ids[idx.References[i].Source]; ok {
			refs = append(refs, idx.References[i])
		}
	}

	var sites []model.Site
	for i := range idx.Sites {
		if _, ok := ids[idx.Sites[i].Source]; ok {
			sites = append(sites, idx.Sites[i])
		}
	}

	return &model.Index{
		Assembly:   idx.Assembly,
		Members:    members,
		References: refs,
		Sites:      sites,
	}
}
