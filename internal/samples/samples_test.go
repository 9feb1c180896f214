package samples

import (
	"reflect"
	"testing"

	"github.com/funvibe/syntactic/pkg/interp"
	"github.com/funvibe/syntactic/pkg/syntax"
)

func TestCatalogue(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		result reflect.Type
		value  any
		render string
	}{
		{"lit", 1, reflect.TypeFor[int](), 42, "42"},
		{"add", 3, reflect.TypeFor[int](), 5, "(2 + 3)"},
		{"arith", 6, reflect.TypeFor[int](), -12, "((1 + 2) * -4)"},
		{"sum", 7, reflect.TypeFor[int](), 10, "(((1 + 2) + 3) + 4)"},
		{"not", 2, reflect.TypeFor[bool](), false, "!true"},
		{"cmp", 7, reflect.TypeFor[bool](), true, "((2 + 2) == (2 * 2))"},
		{"cond", 6, reflect.TypeFor[int](), 10, "(if (2 < 3) then 10 else 20)"},
		{"choose", 6, reflect.TypeFor[bool](), false, "(if false then true else (5 < 4))"},
		{"nested", 16, reflect.TypeFor[int](), 6, "(if ((1 < 2) && !(true == false)) then ((1 + 2) + 3) else -1)"},
	}
	if got := len(All()); got != len(tests) {
		t.Fatalf("catalogue has %d samples, want %d", got, len(tests))
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := Lookup(tt.name)
			if !ok {
				t.Fatalf("sample %q not found", tt.name)
			}
			n := s.Program.Node()
			if n.Size() != tt.size {
				t.Errorf("Size = %d, want %d", n.Size(), tt.size)
			}
			if s.Program.ResultType() != tt.result {
				t.Errorf("ResultType = %v, want %v", s.Program.ResultType(), tt.result)
			}
			if got := interp.Render(n); got != tt.render {
				t.Errorf("Render = %q, want %q", got, tt.render)
			}
			v, err := interp.EvalSome(s.Program)
			if err != nil {
				t.Fatalf("EvalSome: %v", err)
			}
			if v != tt.value {
				t.Errorf("value = %v, want %v", v, tt.value)
			}
			ev, err := s.Evidence()
			if err != nil {
				t.Fatalf("Evidence: %v", err)
			}
			if ev.Type() != tt.result {
				t.Errorf("evidence for %v, want %v", ev.Type(), tt.result)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("missing"); ok {
		t.Errorf("Lookup found a missing sample")
	}
	seen := map[string]bool{}
	for _, name := range Names() {
		if seen[name] {
			t.Errorf("duplicate sample %q", name)
		}
		seen[name] = true
	}
	all := All()
	all[0].Name = "changed"
	if Names()[0] == "changed" {
		t.Errorf("All exposes the catalogue")
	}
}

func TestOpen(t *testing.T) {
	s, _ := Lookup("add")
	e, ok := syntax.Open[int](s.Program)
	if !ok {
		t.Fatalf("Open[int] failed")
	}
	v, err := interp.Evaluate(e)
	if err != nil || v != 5 {
		t.Errorf("Evaluate = %d, %v", v, err)
	}
	if _, ok := syntax.Open[bool](s.Program); ok {
		t.Errorf("Open[bool] succeeded on an int program")
	}
}
