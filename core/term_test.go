package core

import "testing"

func TestTerm_StructuralEquality(t *testing.T) {
	a := Explains{Explanans: Not{Content: LackKnowledge{}}, Explanandum: Truth{Value: true}}
	b := Explains{Explanans: Not{Content: LackKnowledge{}}, Explanandum: Truth{Value: true}}
	if a != b {
		t.Error("structurally identical propositions must compare equal")
	}
	if (Ask{Question: Why{}}) != (Ask{Question: Why{}}) {
		t.Error("structurally identical moves must compare equal")
	}
	if (Why{}) == (Why{Explanandum: LackKnowledge{}}) {
		t.Error("elliptical and resolved Why must differ")
	}
}

func TestSymbol_IdentityEquality(t *testing.T) {
	if Understanding == Acceptance {
		t.Error("distinct individuals must not be equal")
	}
	if Understanding.Sort() != ICMLevelSort {
		t.Error("individual must belong to its declaring sort")
	}
	// A same-named symbol of another sort is a different identity.
	other := NewSort("Other").Individual("understanding")
	if other == Understanding {
		t.Error("name collision across sorts must not imply identity")
	}
	left := ICM{Level: Understanding, Polarity: Negative}
	right := ICM{Level: Understanding, Polarity: Negative}
	if left != right {
		t.Error("moves holding the same singletons must compare equal")
	}
}

func TestPredicate_Instance(t *testing.T) {
	pred := KindOf[Not]()
	if !pred.Instance(Not{Content: LackKnowledge{}}) {
		t.Error("expected instance of predicate's category")
	}
	if pred.Instance(LackKnowledge{}) {
		t.Error("unrelated proposition is not an instance")
	}
	if (WhQuestion{Predicate: KindOf[Not]()}) != (WhQuestion{Predicate: KindOf[Not]()}) {
		t.Error("wh-questions over the same predicate must compare equal")
	}
}
