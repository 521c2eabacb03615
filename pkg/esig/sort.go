package esig

import (
	"cmp"
	"slices"
)

// SortPackage puts the lists of p in a deterministic order so that two
// reads of the same package can be compared. Documents, their elements,
// stakeholders and actor elements are ordered by ExternalReference, with
// null first; actors are ordered by Type. The sort is stable.
func SortPackage(p *Package) {
	if p == nil {
		return
	}

	slices.SortStableFunc(p.Documents, func(a, b Document) int {
		return compareReference(a.ExternalReference, b.ExternalReference)
	})

	for i := range p.Documents {
		sortElements(p.Documents[i].Elements)
	}

	slices.SortStableFunc(p.Stakeholders, func(a, b Stakeholder) int {
		return compareReference(a.ExternalReference, b.ExternalReference)
	})

	for i := range p.Stakeholders {
		actors := p.Stakeholders[i].Actors
		slices.SortStableFunc(actors, func(a, b Actor) int {
			return cmp.Compare(a.Type, b.Type)
		})

		for j := range actors {
			sortElements(actors[j].Elements)
		}
	}
}

func sortElements(elements []Element) {
	slices.SortStableFunc(elements, func(a, b Element) int {
		return compareReference(a.ExternalReference, b.ExternalReference)
	})
}

func compareReference(a, b Nullable[string]) int {
	switch {
	case !a.Valid && !b.Valid:
		return 0
	case !a.Valid:
		return -1
	case !b.Valid:
		return 1
	}

	return cmp.Compare(a.Value, b.Value)
}
