// Package samples is a catalogue of programs over the language composed
// of arithmetic, logic and comparisons.
package samples

import (
	"slices"

	"github.com/funvibe/syntactic/internal/lang/arith"
	"github.com/funvibe/syntactic/internal/lang/compare"
	"github.com/funvibe/syntactic/internal/lang/logic"
	"github.com/funvibe/syntactic/pkg/constraint"
	"github.com/funvibe/syntactic/pkg/syntax"
)

// Lang is Arith ∪ (Logic ∪ Compare).
type Lang = syntax.Sum[arith.Arith, syntax.Sum[logic.Logic, compare.Compare]]

var (
	Arith   = arith.MustFor[Lang]()
	Logic   = logic.MustFor[Lang]()
	Compare = compare.MustFor[Lang]()

	// Shown proves at start up that every program of Lang can be shown.
	Shown = constraint.MustDomain[constraint.Show, Lang]()
)

type Sample struct {
	Name    string
	Summary string
	Program syntax.Some[Lang]
}

// Evidence proves that the result of the program can be shown.
func (s Sample) Evidence() (constraint.Evidence[constraint.Show], error) {
	return Shown.Evidence(s.Program.Node())
}

var catalogue = []Sample{
	{
		Name:    "lit",
		Summary: "a single literal",
		Program: syntax.Wrap(Arith.Lit(42)),
	},
	{
		Name:    "add",
		Summary: "addition of two literals",
		Program: syntax.Wrap(Arith.Add(Arith.Lit(2), Arith.Lit(3))),
	},
	{
		Name:    "arith",
		Summary: "product of a sum and a negation",
		Program: syntax.Wrap(Arith.Mul(Arith.Add(Arith.Lit(1), Arith.Lit(2)), Arith.Neg(Arith.Lit(4)))),
	},
	{
		Name:    "sum",
		Summary: "left fold of additions",
		Program: syntax.Wrap(Arith.Sum(Arith.Lit(1), Arith.Lit(2), Arith.Lit(3), Arith.Lit(4))),
	},
	{
		Name:    "not",
		Summary: "negated boolean",
		Program: syntax.Wrap(Logic.Not(Logic.Bool(true))),
	},
	{
		Name:    "cmp",
		Summary: "equality of two arithmetic results",
		Program: syntax.Wrap(compare.Eq(Compare, Arith.Add(Arith.Lit(2), Arith.Lit(2)), Arith.Mul(Arith.Lit(2), Arith.Lit(2)))),
	},
	{
		Name:    "cond",
		Summary: "integer conditional on a comparison",
		Program: syntax.Wrap(logic.Cond(Logic, compare.Lt(Compare, Arith.Lit(2), Arith.Lit(3)), Arith.Lit(10), Arith.Lit(20))),
	},
	{
		Name:    "choose",
		Summary: "boolean conditional",
		Program: syntax.Wrap(logic.Cond(Logic, Logic.Bool(false), Logic.Bool(true), compare.Lt(Compare, Arith.Lit(5), Arith.Lit(4)))),
	},
	{
		Name:    "nested",
		Summary: "conditional mixing all three domains",
		Program: syntax.Wrap(logic.Cond(Logic,
			Logic.And(compare.Lt(Compare, Arith.Lit(1), Arith.Lit(2)), Logic.Not(compare.Eq(Compare, Logic.Bool(true), Logic.Bool(false)))),
			Arith.Sum(Arith.Lit(1), Arith.Lit(2), Arith.Lit(3)),
			Arith.Neg(Arith.Lit(1)),
		)),
	},
}

// All returns the catalogue in definition order.
func All() []Sample {
	return slices.Clone(catalogue)
}

// Names lists the sample names in definition order.
func Names() []string {
	names := make([]string, len(catalogue))
	for i, s := range catalogue {
		names[i] = s.Name
	}
	return names
}

func Lookup(name string) (Sample, bool) {
	i := slices.IndexFunc(catalogue, func(s Sample) bool { return s.Name == name })
	if i < 0 {
		return Sample{}, false
	}
	return catalogue[i], true
}
