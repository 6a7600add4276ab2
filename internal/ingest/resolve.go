package ingest

import (
	"github.com/sirupsen/logrus"

	"github.com/phobologic/xmldoc/internal/element"
	"github.com/phobologic/xmldoc/internal/meta"
)

// Lookup finds the descriptor registered under a member id.
type Lookup interface {
	DescriptorOf(id string) (meta.Member, bool)
}

type noLookup struct{}

func (noLookup) DescriptorOf(string) (meta.Member, bool) { return nil, false }

// Report summarizes a Resolve pass.
type Report struct {
	Matched    int
	Unresolved []string
}

// Resolve returns a copy of doc whose members carry the descriptors found
// in ids. Type members are refined to their class, struct, interface or
// enum kind. Members without a descriptor are kept unchanged and listed in
// the report. A nil ids resolves nothing.
func Resolve(doc *element.Document, ids Lookup, log *logrus.Logger) (*element.Document, Report) {
	if log == nil {
		log = logrus.New()
	}
	if ids == nil {
		ids = noLookup{}
	}

	var report Report
	children := doc.Children()
	out := make([]element.Element, 0, len(children))

	for _, e := range children {
		m, ok := e.(*element.Member)
		if !ok {
			out = append(out, e)
			continue
		}

		desc, found := ids.DescriptorOf(m.ID())
		if !found {
			log.WithFields(logrus.Fields{
				"id":       m.ID(),
				"position": m.Position().String(),
			}).Debug("no descriptor for documented member")
			report.Unresolved = append(report.Unresolved, m.ID())
			out = append(out, m)
			continue
		}

		kind := m.Kind()
		if kind == element.KindType {
			if t, ok := desc.(meta.Type); ok {
				if refined, ok := typeKind(t.Category()); ok {
					kind = refined
				}
			}
		}
		// The copy leaves the input document untouched.
		m = m.WithKind(kind)
		m.Attach(desc)
		report.Matched++
		out = append(out, m)
	}

	log.WithFields(logrus.Fields{
		"assembly":   doc.Assembly,
		"matched":    report.Matched,
		"unresolved": len(report.Unresolved),
	}).Debug("resolved members")

	m := element.Markup{Attrs: doc.Attributes(), Pos: doc.Position()}
	return element.NewDocument(doc.Assembly, m, element.Elements(out...)), report
}

// typeKind maps a type category to its element kind. Delegates have no
// dedicated kind and stay plain types.
func typeKind(c meta.Category) (element.Kind, bool) {
	switch c {
	case meta.Class:
		return element.KindClass, true
	case meta.Struct:
		return element.KindStruct, true
	case meta.Interface:
		return element.KindInterface, true
	case meta.Enum:
		return element.KindEnum, true
	}
	return 0, false
}
