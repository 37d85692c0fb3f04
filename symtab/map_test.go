package symtab

import (
	"fmt"
	"testing"

	"github.com/nalgeon/be"
)

func TestMapInsertFind(t *testing.T) {
	m := NewMap[int]()
	be.Equal(t, m.Cap(), 0)
	be.Equal(t, m.Find("x"), m.Cap())

	i := m.Insert("x")
	*m.Value(i) = 7

	be.Equal(t, m.Cap(), MinCapacity)
	be.Equal(t, m.Len(), 1)
	be.Equal(t, m.Find("x"), i)
	be.Equal(t, m.Key(i), "x")
	be.Equal(t, *m.Value(i), 7)
	be.Equal(t, m.Find("y"), m.Cap())
}

func TestMapInsertDuplicate(t *testing.T) {
	m := NewMap[string]()
	m.Set("a", "first")

	i := m.Insert("a")
	be.Equal(t, m.Len(), 1)
	be.Equal(t, *m.Value(i), "first")

	m.Set("a", "second")
	v, ok := m.Get("a")
	be.True(t, ok)
	be.Equal(t, v, "second")
	be.Equal(t, m.Len(), 1)
}

func TestMapGrowth(t *testing.T) {
	m := NewMap[int]()

	// 13 entries fit in 16 slots: the check before each insert uses the
	// count prior to the insert.
	for i := 0; i < 13; i++ {
		m.Set(fmt.Sprintf("k%d", i), i)
	}
	be.Equal(t, m.Cap(), 16)

	m.Set("k13", 13)
	be.Equal(t, m.Cap(), 32)
	be.Equal(t, m.Len(), 14)

	for i := 0; i < 14; i++ {
		v, ok := m.Get(fmt.Sprintf("k%d", i))
		be.True(t, ok)
		be.Equal(t, v, i)
	}
}

func TestMapRemove(t *testing.T) {
	m := NewMap[int]()
	m.Set("a", 1)
	m.Set("b", 2)

	i := m.Find("a")
	m.Remove(i)

	be.Equal(t, m.Len(), 1)
	be.True(t, !m.Exists(i))
	be.Equal(t, m.Find("a"), m.Cap())

	v, ok := m.Get("b")
	be.True(t, ok)
	be.Equal(t, v, 2)

	// Removing a dead slot is a no-op.
	m.Remove(i)
	be.Equal(t, m.Len(), 1)
}

func TestMapRemoveThenInsertAgain(t *testing.T) {
	m := NewMap[int]()
	for round := 0; round < 5; round++ {
		m.Set("k", round)
		m.Delete("k")
	}

	be.Equal(t, m.Len(), 0)
	be.Equal(t, m.Find("k"), m.Cap())

	m.Set("k", 42)
	v, ok := m.Get("k")
	be.True(t, ok)
	be.Equal(t, v, 42)
}

func TestMapShrink(t *testing.T) {
	m := NewMap[int]()
	for i := 0; i < 40; i++ {
		m.Set(fmt.Sprintf("k%d", i), i)
	}
	be.Equal(t, m.Cap(), 64)

	for i := 0; i < 40; i++ {
		m.Delete(fmt.Sprintf("k%d", i))
		be.True(t, m.Cap() >= MinCapacity)
		be.True(t, m.Len() <= m.Cap())
	}

	be.Equal(t, m.Len(), 0)
	be.Equal(t, m.Cap(), MinCapacity)
}

func TestMapSurvivesChurn(t *testing.T) {
	m := NewMap[int]()
	want := map[string]int{}

	for i := 0; i < 500; i++ {
		key := fmt.Sprintf("k%d", i%37)
		if i%3 == 0 {
			m.Delete(key)
			delete(want, key)
		} else {
			m.Set(key, i)
			want[key] = i
		}

		be.Equal(t, m.Len(), len(want))
	}

	for key, wantValue := range want {
		v, ok := m.Get(key)
		be.True(t, ok)
		be.Equal(t, v, wantValue)
	}

	seen := 0
	m.Each(func(key string, value int) {
		be.Equal(t, want[key], value)
		seen++
	})
	be.Equal(t, seen, len(want))
}

func TestMapTombstonesWithoutEmptySlots(t *testing.T) {
	m := NewMap[int]()

	// Fill and drain enough keys at minimum capacity that every slot has
	// been used at least once.
	for i := 0; i < 200; i++ {
		m.Set(fmt.Sprintf("t%d", i), i)
		if m.Len() > 4 {
			m.Delete(fmt.Sprintf("t%d", i-4))
		}
	}

	be.Equal(t, m.Cap(), MinCapacity)
	be.Equal(t, m.Find("missing"), m.Cap())

	m.Set("fresh", 1)
	v, ok := m.Get("fresh")
	be.True(t, ok)
	be.Equal(t, v, 1)
}
