package constraint

// Step is one link of a weakening chain.
type Step int

const (
	StepLeft  Step = iota // P && Q to P
	StepRight             // P && Q to Q
	StepTop               // anything to Top
)

func (s Step) String() string {
	switch s {
	case StepLeft:
		return "left"
	case StepRight:
		return "right"
	case StepTop:
		return "top"
	}
	return "unknown"
}

// Weakening proves that every type satisfying Sup satisfies Sub.
type Weakening[Sub, Sup Predicate] struct {
	steps []Step
}

// Subset derives Sub from Sup: immediately when they are the same predicate,
// by dropping the right part when Sup is Sub && Q, and otherwise by dropping
// the left part of Sup = P && Q and continuing with Q. Top is derivable from
// everything. The derivation is done once, when domains are composed.
func Subset[Sub, Sup Predicate]() (Weakening[Sub, Sup], error) {
	steps, ok := derive(zero[Sub](), zero[Sup]())
	if !ok {
		return Weakening[Sub, Sup]{}, NewSubsetError(zero[Sub](), zero[Sup]())
	}
	return Weakening[Sub, Sup]{steps: steps}, nil
}

// MustSubset is Subset for package level composition.
func MustSubset[Sub, Sup Predicate]() Weakening[Sub, Sup] {
	w, err := Subset[Sub, Sup]()
	if err != nil {
		panic(err)
	}
	return w
}

// Apply weakens e.
func (w Weakening[Sub, Sup]) Apply(e Evidence[Sup]) Evidence[Sub] {
	return Evidence[Sub]{typ: e.typ}
}

// Steps lists the weakenings applied, outermost first.
func (w Weakening[Sub, Sup]) Steps() []Step {
	return append([]Step(nil), w.steps...)
}

func derive(sub, sup Predicate) ([]Step, bool) {
	if samePredicate(sub, sup) {
		return nil, true
	}
	if _, ok := sub.(Top); ok {
		return []Step{StepTop}, true
	}
	c, ok := sup.(Conjunction)
	if !ok {
		return nil, false
	}
	left, right := c.Parts()
	if samePredicate(sub, left) {
		return []Step{StepLeft}, true
	}
	rest, ok := derive(sub, right)
	if !ok {
		return nil, false
	}
	return append([]Step{StepRight}, rest...), true
}
