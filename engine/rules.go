package engine

import (
	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/pragmatics"
)

// Rules returns the update and selection rules in their required order.
// Ordering constraints: GetLatestMoves must run first to seed the per-turn
// lists; IntegrateUserNegativeUnderstanding may re-seed plan and QUD and so
// precedes every rule that consumes them; the two reject rules run after
// IntegrateUserAsk but before GetAnswer/SelectAssert consume the same plan
// front.
func Rules() []Rule {
	return []Rule{
		getLatestMoves(),
		selectNegativeUnderstandingICM(),
		integrateUserAsk(),
		integrateUserNegativeUnderstanding(),
		acknowledgeUserAssertion(),
		rejectQuestionWithIncompatiblePresupposition(),
		rejectUnanswerableQuestion(),
		getAnswer(),
		selectAssert(),
	}
}

// getLatestMoves resets the per-turn move lists and feeds the interpreted
// user move, if any, into both.
func getLatestMoves() Rule {
	return Rule{
		Name: "GetLatestMoves",
		Precondition: func(s *core.State) *Match {
			return Matched()
		},
		Effect: func(s *core.State, _ *Match) {
			s.Private.NonIntegratedMoves = nil
			s.Shared.LatestMoves = nil
			if s.UserInput != nil && s.UserInput.Move != nil {
				s.Private.EnqueueMove(s.UserInput.Move)
				s.Shared.LatestMoves = append(s.Shared.LatestMoves, s.UserInput.Move)
			}
		},
	}
}

// selectNegativeUnderstandingICM reacts to a failed interpretation.
func selectNegativeUnderstandingICM() Rule {
	return Rule{
		Name: "SelectNegativeUnderstandingICM",
		Precondition: func(s *core.State) *Match {
			if s.UserInput != nil && s.UserInput.Move == nil {
				return Matched()
			}
			return nil
		},
		Effect: func(s *core.State, _ *Match) {
			s.NextSystemMove = core.ICM{Level: core.Understanding, Polarity: core.Negative}
		},
	}
}

// integrateUserAsk accepts a user question whose presupposition, if any, is
// compatible with the held beliefs, raising it on the QUD and planning a
// response. An elliptical why-question is resolved against the previous
// system assertion first; if resolution fails the obligation is planned
// unresolved and later rejected for lack of knowledge.
func integrateUserAsk() Rule {
	return Rule{
		Name: "IntegrateUserAsk",
		Precondition: func(s *core.State) *Match {
			move, ok := s.Private.PeekMove()
			if !ok {
				return nil
			}
			ask, ok := move.(core.Ask)
			if !ok {
				return nil
			}
			if why, ok := ask.Question.(core.Why); ok && why.Explanandum != nil {
				if pragmatics.CompatibleWithBeliefs(why.Explanandum, s.Private.Beliefs, s.Domain) {
					return Matched()
				}
				return nil
			}
			return Matched()
		},
		Effect: func(s *core.State, _ *Match) {
			move, _ := s.Private.DequeueMove()
			question := move.(core.Ask).Question
			if pragmatics.IsElliptical(question) {
				question, _ = pragmatics.ResolveElliptical(question, s.PreviousSystemMove)
			}
			s.Shared.PushQUD(question)
			s.Private.PushPlan(core.Respond{Question: question})
		},
	}
}

// integrateUserNegativeUnderstanding consumes the user's "I don't
// understand". If a why-question is topmost on the QUD and the system just
// asserted something, the system plans a self-explanation of that assertion.
func integrateUserNegativeUnderstanding() Rule {
	return Rule{
		Name: "IntegrateUserNegativeUnderstanding",
		Precondition: func(s *core.State) *Match {
			move, ok := s.Private.PeekMove()
			if !ok {
				return nil
			}
			icm, ok := move.(core.ICM)
			if ok && icm.Level == core.Understanding && icm.Polarity == core.Negative {
				return Matched()
			}
			return nil
		},
		Effect: func(s *core.State, _ *Match) {
			s.Private.DequeueMove()
			top, ok := s.Shared.TopQUD()
			if !ok {
				return
			}
			assert, ok := s.PreviousSystemMove.(core.Assert)
			if !ok {
				return
			}
			why, ok := top.(core.Why)
			if !ok {
				return
			}
			resolved := core.Why{Explanandum: core.Explains{
				Explanans:   assert.Proposition,
				Explanandum: why.Explanandum,
			}}
			s.Shared.PushQUD(resolved)
			s.Private.PushPlan(core.Respond{Question: resolved})
		},
	}
}

// acknowledgeUserAssertion accepts a user assertion with a positive ICM.
func acknowledgeUserAssertion() Rule {
	return Rule{
		Name: "AcknowledgeUserAssertion",
		Precondition: func(s *core.State) *Match {
			move, ok := s.Private.PeekMove()
			if !ok {
				return nil
			}
			if _, ok := move.(core.Assert); ok {
				return Matched()
			}
			return nil
		},
		Effect: func(s *core.State, _ *Match) {
			s.Private.DequeueMove()
			s.NextSystemMove = core.ICM{Level: core.Acceptance, Polarity: core.Positive}
		},
	}
}

// rejectQuestionWithIncompatiblePresupposition refuses a why-question whose
// explanandum contradicts the held beliefs, citing the explanandum.
func rejectQuestionWithIncompatiblePresupposition() Rule {
	return Rule{
		Name: "RejectQuestionWithIncompatiblePresupposition",
		Precondition: func(s *core.State) *Match {
			move, ok := s.Private.PeekMove()
			if !ok {
				return nil
			}
			ask, ok := move.(core.Ask)
			if !ok {
				return nil
			}
			why, ok := ask.Question.(core.Why)
			if !ok || why.Explanandum == nil {
				return nil
			}
			if !pragmatics.CompatibleWithBeliefs(why.Explanandum, s.Private.Beliefs, s.Domain) {
				return Matched()
			}
			return nil
		},
		Effect: func(s *core.State, _ *Match) {
			move, _ := s.Private.DequeueMove()
			why := move.(core.Ask).Question.(core.Why)
			s.NextSystemMove = core.ICM{
				Level:    core.Acceptance,
				Polarity: core.Negative,
				Reason:   why.Explanandum,
			}
		},
	}
}

// rejectUnanswerableQuestion abandons a planned response the system cannot
// give, signaling lack of knowledge.
func rejectUnanswerableQuestion() Rule {
	return Rule{
		Name: "RejectUnanswerableQuestion",
		Precondition: func(s *core.State) *Match {
			respond, ok := planFrontRespond(s)
			if !ok {
				return nil
			}
			if _, ok := pragmatics.Answer(respond.Question, s.Private.Beliefs, s.Domain); ok {
				return nil
			}
			return Matched()
		},
		Effect: func(s *core.State, _ *Match) {
			s.Private.PopPlan()
			s.NextSystemMove = core.ICM{
				Level:    core.Acceptance,
				Polarity: core.Negative,
				Reason:   core.LackKnowledge{},
			}
		},
	}
}

// getAnswer retrieves an answer for the planned question and commits it to
// the private beliefs, unless the proposition is already held.
func getAnswer() Rule {
	return Rule{
		Name: "GetAnswer",
		Precondition: func(s *core.State) *Match {
			respond, ok := planFrontRespond(s)
			if !ok {
				return nil
			}
			belief, ok := pragmatics.Answer(respond.Question, s.Private.Beliefs, s.Domain)
			if !ok || s.Private.HoldsProposition(belief.Proposition) {
				return nil
			}
			return Matched(belief)
		},
		Effect: func(s *core.State, m *Match) {
			s.Private.AddBelief(m.Values[0].(core.Belief))
		},
	}
}

// selectAssert answers the planned question from the first relevant held
// belief, discharging the obligation.
func selectAssert() Rule {
	return Rule{
		Name: "SelectAssert",
		Precondition: func(s *core.State) *Match {
			respond, ok := planFrontRespond(s)
			if !ok {
				return nil
			}
			for _, belief := range s.Private.Beliefs {
				if pragmatics.IsRelevantAnswer(respond.Question, belief.Proposition, s.Domain) {
					return Matched(belief)
				}
			}
			return nil
		},
		Effect: func(s *core.State, m *Match) {
			s.Private.PopPlan()
			belief := m.Values[0].(core.Belief)
			s.NextSystemMove = pragmatics.SelectAnswerMove(belief, s.Shared.LatestMoves, s.Domain)
		},
	}
}

// planFrontRespond returns the plan front if it is a pending response.
func planFrontRespond(s *core.State) (core.Respond, bool) {
	item, ok := s.Private.PeekPlan()
	if !ok {
		return core.Respond{}, false
	}
	respond, ok := item.(core.Respond)
	return respond, ok
}
