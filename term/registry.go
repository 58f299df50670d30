package term

import (
	"fmt"
	"reflect"

	"github.com/hupe1980/dialogmesh/core"
)

// Builder constructs a term value from already-built positional arguments.
// Builders must validate arity and argument kinds, wrapping failures in
// ErrBadArguments.
type Builder func(args []any) (any, error)

// Registry is an explicit registration context mapping constructor names and
// symbolic-constant names to the values they may denote. Build one per
// domain and pass it wherever term text is parsed or rendered; there is no
// implicit global registry.
type Registry struct {
	builders  map[string]Builder
	typeNames map[reflect.Type]string
	types     map[string]reflect.Type
	symbols   map[string]*core.Symbol
}

// NewRegistry returns a registry preloaded with the base vocabulary from
// core. Domains add their own constructors and symbols on top.
func NewRegistry() *Registry {
	r := &Registry{
		builders:  map[string]Builder{},
		typeNames: map[reflect.Type]string{},
		types:     map[string]reflect.Type{},
		symbols:   map[string]*core.Symbol{},
	}
	registerBase(r)
	return r
}

// RegisterType allows term text to construct values of prototype's type
// under the given name. The prototype's concrete type is also what the name
// denotes when used bare (as a predicate).
func (r *Registry) RegisterType(name string, prototype any, build Builder) {
	t := reflect.TypeOf(prototype)
	r.builders[name] = build
	r.typeNames[t] = name
	r.types[name] = t
}

// RegisterSymbol allows term text to reference the singleton by name.
func (r *Registry) RegisterSymbol(sym *core.Symbol) {
	r.symbols[sym.Name()] = sym
}

// RegisterSymbols registers several singletons at once.
func (r *Registry) RegisterSymbols(syms ...*core.Symbol) {
	for _, s := range syms {
		r.RegisterSymbol(s)
	}
}

func (r *Registry) builder(name string) (Builder, bool) {
	b, ok := r.builders[name]
	return b, ok
}

// resolveName resolves a bare name to a registered symbol or, for a
// registered type name, the predicate identifying that type's category.
func (r *Registry) resolveName(name string) (any, bool) {
	if sym, ok := r.symbols[name]; ok {
		return sym, true
	}
	if t, ok := r.types[name]; ok {
		return core.PredicateForType(t), true
	}
	return nil, false
}

func (r *Registry) nameOf(t reflect.Type) (string, bool) {
	name, ok := r.typeNames[t]
	return name, ok
}

// registerBase installs the engine-visible vocabulary: the base move,
// proposition, question and plan-item variants plus the ICM level, polarity
// and hedge singletons.
func registerBase(r *Registry) {
	r.RegisterType("Assert", core.Assert{}, func(args []any) (any, error) {
		if len(args) < 1 || len(args) > 2 {
			return nil, fmt.Errorf("%w: Assert takes 1 or 2 arguments, got %d", ErrBadArguments, len(args))
		}
		prop, err := asProposition(args[0])
		if err != nil {
			return nil, err
		}
		m := core.Assert{Proposition: prop}
		if len(args) == 2 {
			hedge, err := asSymbol(args[1], core.HedgeSort)
			if err != nil {
				return nil, err
			}
			m.Hedge = hedge
		}
		return m, nil
	})
	r.RegisterType("Ask", core.Ask{}, func(args []any) (any, error) {
		q, err := oneQuestion("Ask", args)
		if err != nil {
			return nil, err
		}
		return core.Ask{Question: q}, nil
	})
	r.RegisterType("ICM", core.ICM{}, func(args []any) (any, error) {
		if len(args) < 2 || len(args) > 3 {
			return nil, fmt.Errorf("%w: ICM takes 2 or 3 arguments, got %d", ErrBadArguments, len(args))
		}
		level, err := asSymbol(args[0], core.ICMLevelSort)
		if err != nil {
			return nil, err
		}
		polarity, err := asSymbol(args[1], core.PolaritySort)
		if err != nil {
			return nil, err
		}
		m := core.ICM{Level: level, Polarity: polarity}
		if len(args) == 3 && args[2] != nil {
			reason, err := asProposition(args[2])
			if err != nil {
				return nil, err
			}
			m.Reason = reason
		}
		return m, nil
	})
	r.RegisterType("Not", core.Not{}, func(args []any) (any, error) {
		p, err := oneProposition("Not", args)
		if err != nil {
			return nil, err
		}
		return core.Not{Content: p}, nil
	})
	r.RegisterType("Supports", core.Supports{}, func(args []any) (any, error) {
		a, c, err := twoPropositions("Supports", args)
		if err != nil {
			return nil, err
		}
		return core.Supports{Antecedent: a, Consequent: c}, nil
	})
	r.RegisterType("Explains", core.Explains{}, func(args []any) (any, error) {
		a, b, err := twoPropositions("Explains", args)
		if err != nil {
			return nil, err
		}
		return core.Explains{Explanans: a, Explanandum: b}, nil
	})
	r.RegisterType("LackKnowledge", core.LackKnowledge{}, func(args []any) (any, error) {
		if len(args) != 0 {
			return nil, fmt.Errorf("%w: LackKnowledge takes no arguments", ErrBadArguments)
		}
		return core.LackKnowledge{}, nil
	})
	r.RegisterType("BooleanQuestion", core.BooleanQuestion{}, func(args []any) (any, error) {
		p, err := oneProposition("BooleanQuestion", args)
		if err != nil {
			return nil, err
		}
		return core.BooleanQuestion{Proposition: p}, nil
	})
	r.RegisterType("Why", core.Why{}, func(args []any) (any, error) {
		switch len(args) {
		case 0:
			return core.Why{}, nil
		case 1:
			if args[0] == nil {
				return core.Why{}, nil
			}
			p, err := asProposition(args[0])
			if err != nil {
				return nil, err
			}
			return core.Why{Explanandum: p}, nil
		default:
			return nil, fmt.Errorf("%w: Why takes at most 1 argument, got %d", ErrBadArguments, len(args))
		}
	})
	r.RegisterType("WhQuestion", core.WhQuestion{}, func(args []any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: WhQuestion takes 1 argument, got %d", ErrBadArguments, len(args))
		}
		pred, ok := args[0].(core.Predicate)
		if !ok {
			return nil, fmt.Errorf("%w: WhQuestion takes a predicate, got %T", ErrBadArguments, args[0])
		}
		return core.WhQuestion{Predicate: pred}, nil
	})
	r.RegisterType("Respond", core.Respond{}, func(args []any) (any, error) {
		q, err := oneQuestion("Respond", args)
		if err != nil {
			return nil, err
		}
		return core.Respond{Question: q}, nil
	})
	r.RegisterType("Belief", core.Belief{}, func(args []any) (any, error) {
		if len(args) < 1 || len(args) > 2 {
			return nil, fmt.Errorf("%w: Belief takes 1 or 2 arguments, got %d", ErrBadArguments, len(args))
		}
		p, err := asProposition(args[0])
		if err != nil {
			return nil, err
		}
		if len(args) == 2 && args[1] != nil {
			c, ok := args[1].(float64)
			if !ok {
				return nil, fmt.Errorf("%w: Belief confidence must be a number, got %T", ErrBadArguments, args[1])
			}
			return core.Confident(p, c), nil
		}
		return core.Belief{Proposition: p}, nil
	})

	r.RegisterSymbols(
		core.Understanding, core.Acceptance,
		core.Positive, core.Negative,
		core.Strong, core.Medium, core.Weak,
	)
}

// asProposition coerces a built argument into a proposition. Boolean
// literals become polar Truth propositions.
func asProposition(arg any) (core.Proposition, error) {
	switch v := arg.(type) {
	case core.Proposition:
		return v, nil
	case bool:
		return core.Truth{Value: v}, nil
	default:
		return nil, fmt.Errorf("%w: expected a proposition, got %T", ErrBadArguments, arg)
	}
}

func asSymbol(arg any, sort *core.Sort) (*core.Symbol, error) {
	sym, ok := arg.(*core.Symbol)
	if !ok {
		return nil, fmt.Errorf("%w: expected a symbol of sort %s, got %T", ErrBadArguments, sort.Name(), arg)
	}
	if sym.Sort() != sort {
		return nil, fmt.Errorf("%w: expected a symbol of sort %s, got %s of sort %s",
			ErrBadArguments, sort.Name(), sym.Name(), sym.Sort().Name())
	}
	return sym, nil
}

func oneProposition(head string, args []any) (core.Proposition, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: %s takes 1 argument, got %d", ErrBadArguments, head, len(args))
	}
	return asProposition(args[0])
}

func twoPropositions(head string, args []any) (core.Proposition, core.Proposition, error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("%w: %s takes 2 arguments, got %d", ErrBadArguments, head, len(args))
	}
	first, err := asProposition(args[0])
	if err != nil {
		return nil, nil, err
	}
	second, err := asProposition(args[1])
	if err != nil {
		return nil, nil, err
	}
	return first, second, nil
}

func oneQuestion(head string, args []any) (core.Question, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: %s takes 1 argument, got %d", ErrBadArguments, head, len(args))
	}
	q, ok := args[0].(core.Question)
	if !ok {
		return nil, fmt.Errorf("%w: %s takes a question, got %T", ErrBadArguments, head, args[0])
	}
	return q, nil
}
