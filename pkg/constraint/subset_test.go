package constraint

import (
	"errors"
	"reflect"
	"slices"
	"strconv"
	"testing"

	"github.com/funvibe/syntactic/pkg/syntax"
)

func stepsOf(w interface{ Steps() []Step }, err error) ([]Step, error) {
	return w.Steps(), err
}

func TestSubsetDerivation(t *testing.T) {
	tests := []struct {
		name  string
		steps func() ([]Step, error)
		want  []Step
	}{
		{"same", func() ([]Step, error) { return stepsOf(Subset[Show, Show]()) }, nil},
		{"left", func() ([]Step, error) { return stepsOf(Subset[Ord, And[Ord, Show]]()) }, []Step{StepLeft}},
		{"right", func() ([]Step, error) { return stepsOf(Subset[Show, And[Ord, Show]]()) }, []Step{StepRight}},
		{"right right", func() ([]Step, error) { return stepsOf(Subset[Num, And[Eq, And[Ord, Num]]]()) }, []Step{StepRight, StepRight}},
		{"right left", func() ([]Step, error) { return stepsOf(Subset[Ord, And[Eq, And[Ord, Num]]]()) }, []Step{StepRight, StepLeft}},
		{"conjunction head", func() ([]Step, error) { return stepsOf(Subset[And[Ord, Num], And[Eq, And[Ord, Num]]]()) }, []Step{StepRight}},
		{"top", func() ([]Step, error) { return stepsOf(Subset[Top, Eq]()) }, []Step{StepTop}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.steps()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("steps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubsetFailure(t *testing.T) {
	_, err := Subset[Num, And[Eq, Show]]()
	var se *SubsetError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SubsetError, got %v", err)
	}
	if want := "cannot derive Num from (Eq && Show)"; err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}

	// conjunctions are not split on the left of the derivation
	if _, err := Subset[And[Ord, Show], And[Show, Ord]](); err == nil {
		t.Errorf("And[Ord, Show] should not be derivable from And[Show, Ord]")
	}
	if _, err := Subset[Eq, Top](); err == nil {
		t.Errorf("Eq should not be derivable from Top")
	}

	defer func() {
		if recover() == nil {
			t.Errorf("MustSubset did not panic")
		}
	}()
	MustSubset[Ord, Show]()
}

func TestWeakeningApply(t *testing.T) {
	both, err := Both(OrdFor[int](), ShowFor[int]())
	if err != nil {
		t.Fatalf("Both: %v", err)
	}
	w := MustSubset[Show, And[Ord, Show]]()
	got := w.Apply(both)
	if got.Type() != reflect.TypeFor[int]() {
		t.Errorf("weakened evidence is for %v", got.Type())
	}
	if WeakenLeft(both).Type() != got.Type() || WeakenRight(both).Type() != got.Type() {
		t.Errorf("weakening changed the certified type")
	}
	if got.String() != "Show(int)" {
		t.Errorf("String() = %q", got.String())
	}
}

type celsius float64

func (c celsius) String() string { return strconv.FormatFloat(float64(c), 'f', 1, 64) + "C" }

func TestProve(t *testing.T) {
	if _, err := Prove[Num](syntax.TypeOf[string]()); err == nil {
		t.Errorf("Num proved for string")
	} else {
		var ee *EvidenceError
		if !errors.As(err, &ee) || ee.Predicate != "Num" {
			t.Errorf("unexpected error %v", err)
		}
	}
	if _, err := ProveFor[Show, []int](); err == nil {
		t.Errorf("Show proved for []int")
	}
	if _, err := ProveFor[Show, celsius](); err != nil {
		t.Errorf("Show for a Stringer: %v", err)
	}
	if _, err := ProveFor[Eq, map[string]int](); err == nil {
		t.Errorf("Eq proved for a map")
	}
	if _, err := Prove[Top](nil); err == nil {
		t.Errorf("evidence for a nil type")
	}
	if (Evidence[Eq]{}).Valid() {
		t.Errorf("zero evidence is valid")
	}
}

func TestStaticEvidence(t *testing.T) {
	type evidence interface {
		Type() reflect.Type
		String() string
	}
	tests := []struct {
		name  string
		ev    evidence
		want  string
		prove func(reflect.Type) error
	}{
		{"top for slices", Trivial[[]int](), "Top([]int)", func(typ reflect.Type) error { _, err := Prove[Top](typ); return err }},
		{"eq for strings", EqFor[string](), "Eq(string)", func(typ reflect.Type) error { _, err := Prove[Eq](typ); return err }},
		{"ord for int8", OrdFor[int8](), "Ord(int8)", func(typ reflect.Type) error { _, err := Prove[Ord](typ); return err }},
		{"num for floats", NumFor[float64](), "Num(float64)", func(typ reflect.Type) error { _, err := Prove[Num](typ); return err }},
		{"num for named floats", NumFor[celsius](), "Num(constraint.celsius)", func(typ reflect.Type) error { _, err := Prove[Num](typ); return err }},
		{"show for bools", ShowFor[bool](), "Show(bool)", func(typ reflect.Type) error { _, err := Prove[Show](typ); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.String(); got != tt.want {
				t.Errorf("evidence = %s, want %s", got, tt.want)
			}
			if err := tt.prove(tt.ev.Type()); err != nil {
				t.Errorf("Prove disagrees with the static evidence: %v", err)
			}
		})
	}

	w, err := Subset[Num, And[Eq, Num]]()
	if err != nil {
		t.Fatalf("Subset: %v", err)
	}
	both, err := Both(EqFor[int](), NumFor[int]())
	if err != nil {
		t.Fatalf("Both: %v", err)
	}
	if got := w.Apply(both); got.Type() != reflect.TypeFor[int]() {
		t.Errorf("weakened evidence for %v, want int", got.Type())
	}
}

func TestBothMismatch(t *testing.T) {
	if _, err := Both(EqFor[int](), ShowFor[string]()); err == nil {
		t.Errorf("Both joined evidence for different types")
	}
	if _, err := Both(Evidence[Eq]{}, Evidence[Show]{}); err == nil {
		t.Errorf("Both joined empty evidence")
	}
}
