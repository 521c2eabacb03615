package esig_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fivetwenty-io/esig/pkg/esig"
)

func ref(s string) esig.Nullable[string] { return esig.NewNullable(s) }

func TestSortPackage(t *testing.T) {
	t.Parallel()

	pkg := &esig.Package{
		Documents: []esig.Document{
			{ID: "d2", ExternalReference: ref("2"), Elements: []esig.Element{
				{ID: "e2", ExternalReference: ref("2")},
				{ID: "e1", ExternalReference: ref("1")},
			}},
			{ID: "d1", ExternalReference: ref("1")},
			{ID: "dnull", ExternalReference: esig.Null[string]()},
		},
		Stakeholders: []esig.Stakeholder{
			{ID: "s2", ExternalReference: ref("2"), Actors: []esig.Actor{
				{ID: "a-receiver", Type: esig.ActorTypeReceiver},
				{ID: "a-filler", Type: esig.ActorTypeFormFiller, Elements: []esig.Element{
					{ID: "f2", ExternalReference: ref("b")},
					{ID: "f1", ExternalReference: ref("a")},
				}},
			}},
			{ID: "s1", ExternalReference: ref("1")},
		},
	}

	esig.SortPackage(pkg)

	expected := &esig.Package{
		Documents: []esig.Document{
			{ID: "dnull", ExternalReference: esig.Null[string]()},
			{ID: "d1", ExternalReference: ref("1")},
			{ID: "d2", ExternalReference: ref("2"), Elements: []esig.Element{
				{ID: "e1", ExternalReference: ref("1")},
				{ID: "e2", ExternalReference: ref("2")},
			}},
		},
		Stakeholders: []esig.Stakeholder{
			{ID: "s1", ExternalReference: ref("1")},
			{ID: "s2", ExternalReference: ref("2"), Actors: []esig.Actor{
				{ID: "a-filler", Type: esig.ActorTypeFormFiller, Elements: []esig.Element{
					{ID: "f1", ExternalReference: ref("a")},
					{ID: "f2", ExternalReference: ref("b")},
				}},
				{ID: "a-receiver", Type: esig.ActorTypeReceiver},
			}},
		},
	}

	if diff := cmp.Diff(expected, pkg); diff != "" {
		t.Errorf("SortPackage mismatch (-want +got):\n%s", diff)
	}
}

func TestSortPackage_Nil(t *testing.T) {
	t.Parallel()

	esig.SortPackage(nil)
}
