package symtab

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/nalgeon/be"
)

func TestScopesShadowing(t *testing.T) {
	s := NewScopes[string]()
	s.PushFrame()
	s.Insert("x", "outer")

	s.PushFrame()
	s.Insert("x", "inner")

	v, ok := s.Find("x")
	be.True(t, ok)
	be.Equal(t, v, "inner")

	s.PopFrame()
	v, ok = s.Find("x")
	be.True(t, ok)
	be.Equal(t, v, "outer")
	be.Equal(t, s.Depth(), 1)
}

func TestScopesPopDiscardsBindings(t *testing.T) {
	s := NewScopes[int]()
	s.PushFrame()
	s.PushFrame()
	s.Insert("y", 1)
	s.PopFrame()

	_, ok := s.Find("y")
	be.True(t, !ok)
}

func TestScopesFindInFrame(t *testing.T) {
	s := NewScopes[int]()
	_, ok := s.FindInFrame("a")
	be.True(t, !ok)

	s.PushFrame()
	s.Insert("a", 1)
	s.PushFrame()

	_, ok = s.FindInFrame("a")
	be.True(t, !ok)

	_, ok = s.Find("a")
	be.True(t, ok)
}

func TestScopesPopEmptyPanics(t *testing.T) {
	defer func() {
		be.True(t, recover() != nil)
	}()

	NewScopes[int]().PopFrame()
}

func TestQueueOrder(t *testing.T) {
	q := NewQueue()
	_, ok := q.Pop()
	be.True(t, !ok)

	for _, name := range []string{"a", "b", "a", "c"} {
		q.Push(name)
	}
	be.Equal(t, q.Len(), 4)

	var got []string
	for {
		name, ok := q.Pop()
		if !ok {
			break
		}
		got = append(got, name)
	}

	if diff := deep.Equal(got, []string{"a", "b", "a", "c"}); diff != nil {
		t.Error(diff)
	}
	be.Equal(t, q.Len(), 0)
}

func TestQueueInterleaved(t *testing.T) {
	q := NewQueue()
	var got []string

	q.Push("f0")
	for i := 1; i < 50; i++ {
		q.Push("f" + string(rune('0'+i%10)))
		name, ok := q.Pop()
		be.True(t, ok)
		got = append(got, name)
	}

	be.Equal(t, len(got), 49)
	be.Equal(t, got[0], "f0")
	be.Equal(t, got[1], "f1")
	be.Equal(t, q.Len(), 1)
}
