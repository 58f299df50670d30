package core

// UserInput carries the current turn's raw utterance and/or its interpreted
// move. A nil Move on a non-nil UserInput signals that interpretation failed.
type UserInput struct {
	Utterance string
	Move      Move
}

// Private is the participant's own view: the plan of pending obligations
// (stack discipline), the growing belief store and the queue of moves
// awaiting integration this turn.
type Private struct {
	Plan               []PlanItem
	Beliefs            []Belief
	NonIntegratedMoves []Move
}

// PushPlan pushes an obligation onto the front of the plan.
func (p *Private) PushPlan(item PlanItem) {
	p.Plan = append([]PlanItem{item}, p.Plan...)
}

// PeekPlan returns the front of the plan without removing it.
func (p *Private) PeekPlan() (PlanItem, bool) {
	if len(p.Plan) == 0 {
		return nil, false
	}
	return p.Plan[0], true
}

// PopPlan removes and returns the front of the plan.
func (p *Private) PopPlan() (PlanItem, bool) {
	if len(p.Plan) == 0 {
		return nil, false
	}
	item := p.Plan[0]
	p.Plan = p.Plan[1:]
	return item, true
}

// HoldsProposition reports whether a belief with the given proposition is
// already held, by structural equality.
func (p *Private) HoldsProposition(prop Proposition) bool {
	for _, b := range p.Beliefs {
		if b.Proposition == prop {
			return true
		}
	}
	return false
}

// AddBelief appends a belief unless its proposition is already held, keeping
// the belief store free of structural duplicates.
func (p *Private) AddBelief(b Belief) {
	if p.HoldsProposition(b.Proposition) {
		return
	}
	p.Beliefs = append(p.Beliefs, b)
}

// EnqueueMove appends a move to the back of the integration queue.
func (p *Private) EnqueueMove(m Move) {
	p.NonIntegratedMoves = append(p.NonIntegratedMoves, m)
}

// PeekMove returns the front of the integration queue without removing it.
func (p *Private) PeekMove() (Move, bool) {
	if len(p.NonIntegratedMoves) == 0 {
		return nil, false
	}
	return p.NonIntegratedMoves[0], true
}

// DequeueMove removes and returns the front of the integration queue.
func (p *Private) DequeueMove() (Move, bool) {
	if len(p.NonIntegratedMoves) == 0 {
		return nil, false
	}
	m := p.NonIntegratedMoves[0]
	p.NonIntegratedMoves = p.NonIntegratedMoves[1:]
	return m, true
}

// Shared is the view common to both participants: the moves of the current
// turn and the stack of questions under discussion.
type Shared struct {
	LatestMoves []Move
	QUD         []Question
}

// PushQUD raises a question, making it topmost.
func (s *Shared) PushQUD(q Question) {
	s.QUD = append([]Question{q}, s.QUD...)
}

// TopQUD returns the most recently raised question.
func (s *Shared) TopQUD() (Question, bool) {
	if len(s.QUD) == 0 {
		return nil, false
	}
	return s.QUD[0], true
}

// State is the information state of one dialogue session. It is created once
// per session, mutated in place by the engine exactly once per turn and owned
// exclusively by the calling turn driver for the duration of a turn. No other
// entity is ever mutated after construction; rules that "modify" a
// proposition construct new values instead.
type State struct {
	Private            Private
	Shared             Shared
	UserInput          *UserInput
	PreviousSystemMove Move
	NextSystemMove     Move

	// Domain is referenced, never owned; the state only hands it to the
	// engine and the pragmatic reasoner.
	Domain Domain
}

// NewState creates a session's information state with the plan seeded from
// the domain's initial plan and everything else empty.
func NewState(domain Domain) *State {
	return &State{
		Private: Private{Plan: domain.InitialPlan()},
		Domain:  domain,
	}
}
