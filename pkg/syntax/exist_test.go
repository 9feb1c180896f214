package syntax

import (
	"errors"
	"testing"
)

func TestExistential(t *testing.T) {
	trees := []Some[lang]{
		Wrap(litE(1)),
		Wrap(boolE(true)),
		Wrap(strE("s")),
		Wrap(addE(litE(1), litE(2))),
	}

	sizes := make([]int, len(trees))
	for i, s := range trees {
		sizes[i] = With(s, func(n Node[lang]) int { return n.Size() })
	}
	want := []int{1, 1, 1, 3}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("trees[%d] size = %d, want %d", i, sizes[i], want[i])
		}
	}

	if e, ok := Open[int](trees[3]); !ok || e.Size() != 3 {
		t.Errorf("Open[int] = %v, %v", e.Size(), ok)
	}
	if _, ok := Open[bool](trees[0]); ok {
		t.Errorf("Open[bool] on an int tree should fail")
	}
	if _, ok := Open[int](Some[lang]{}); ok {
		t.Errorf("Open on an empty wrapper should fail")
	}
	if got := trees[2].ResultType(); got != TypeOf[string]() {
		t.Errorf("ResultType() = %v, want string", got)
	}
}

func TestExistentialPairs(t *testing.T) {
	sameResult := func(x, y Node[lang]) bool {
		return x.Sig().Result() == y.Sig().Result()
	}
	a := Wrap(litE(1))
	b := Wrap(addE(litE(2), litE(3)))
	c := Wrap(boolE(false))

	if !With2(a, b, sameResult) {
		t.Errorf("int trees should share a result type")
	}
	if With2(a, c, sameResult) {
		t.Errorf("int and bool trees should not share a result type")
	}
}

func TestWrapNode(t *testing.T) {
	partial := Inj[Arrow[int, Full[int]]](numIn, neg{}).Node()
	_, err := WrapNode(partial)
	var ae *ArityError
	if !errors.As(err, &ae) {
		t.Fatalf("WrapNode on a partial application: expected *ArityError, got %v", err)
	}
	if ae.Want != 1 || ae.Got != 0 {
		t.Errorf("arity error %+v, want 1 missing argument", ae)
	}
	s, err := WrapNode(litE(9).Node())
	if err != nil {
		t.Fatalf("WrapNode() error = %v", err)
	}
	if got, ok := ProjectNode[num](s.Node()); !ok || got != (lit{v: 9}) {
		t.Errorf("wrapped leaf projects to %v, %v", got, ok)
	}
}
