package core

import (
	"iter"
	"testing"
)

type planOnlyDomain struct{ plan []PlanItem }

func (d planOnlyDomain) InitialPlan() []PlanItem                     { return d.plan }
func (d planOnlyDomain) Answer(Question) (Belief, bool)              { return Belief{}, false }
func (d planOnlyDomain) IsRelevantAnswer(Question, Proposition) bool { return false }
func (d planOnlyDomain) Support(Proposition) iter.Seq[Proposition] {
	return func(func(Proposition) bool) {}
}

func TestNewState_SeedsPlanFromDomain(t *testing.T) {
	plan := []PlanItem{Respond{Question: Why{}}}
	s := NewState(planOnlyDomain{plan: plan})
	if len(s.Private.Plan) != 1 {
		t.Fatalf("expected seeded plan of length 1, got %d", len(s.Private.Plan))
	}
	if s.NextSystemMove != nil || s.PreviousSystemMove != nil {
		t.Error("fresh state should have no system moves")
	}
	if len(s.Private.Beliefs) != 0 || len(s.Shared.QUD) != 0 {
		t.Error("fresh state should have empty beliefs and QUD")
	}
}

func TestPrivate_PlanStackDiscipline(t *testing.T) {
	var p Private
	first := Respond{Question: Why{}}
	second := Respond{Question: BooleanQuestion{Proposition: LackKnowledge{}}}
	p.PushPlan(first)
	p.PushPlan(second)

	front, ok := p.PeekPlan()
	if !ok || front != PlanItem(second) {
		t.Fatalf("expected most recently pushed item at front, got %v", front)
	}
	popped, _ := p.PopPlan()
	if popped != PlanItem(second) {
		t.Fatalf("expected LIFO pop, got %v", popped)
	}
	popped, _ = p.PopPlan()
	if popped != PlanItem(first) {
		t.Fatalf("expected first item after second pop, got %v", popped)
	}
	if _, ok := p.PopPlan(); ok {
		t.Error("pop on empty plan should report no item")
	}
}

func TestPrivate_MoveQueueDiscipline(t *testing.T) {
	var p Private
	first := Ask{Question: Why{}}
	second := Assert{Proposition: LackKnowledge{}}
	p.EnqueueMove(first)
	p.EnqueueMove(second)

	front, ok := p.PeekMove()
	if !ok || front != Move(first) {
		t.Fatalf("expected first enqueued move at front, got %v", front)
	}
	got, _ := p.DequeueMove()
	if got != Move(first) {
		t.Fatalf("expected FIFO dequeue, got %v", got)
	}
	got, _ = p.DequeueMove()
	if got != Move(second) {
		t.Fatalf("expected second move, got %v", got)
	}
}

func TestPrivate_AddBeliefIsIdempotentPerProposition(t *testing.T) {
	var p Private
	prop := Not{Content: LackKnowledge{}}
	p.AddBelief(Confident(prop, 0.8))
	p.AddBelief(Confident(prop, 0.2)) // same proposition, different confidence
	p.AddBelief(Belief{Proposition: prop})
	if len(p.Beliefs) != 1 {
		t.Fatalf("expected a single belief, got %d", len(p.Beliefs))
	}
	if !p.HoldsProposition(prop) {
		t.Error("expected proposition to be held")
	}
	if p.HoldsProposition(LackKnowledge{}) {
		t.Error("unrelated proposition should not be held")
	}
}

func TestShared_QUDStack(t *testing.T) {
	var s Shared
	s.PushQUD(Why{})
	inner := Why{Explanandum: LackKnowledge{}}
	s.PushQUD(inner)
	top, ok := s.TopQUD()
	if !ok || top != Question(inner) {
		t.Fatalf("expected most recently raised question on top, got %v", top)
	}
}
