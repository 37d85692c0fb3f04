package symtab

import "hash/fnv"

// MinCapacity is the smallest slot count a non-empty map will ever have.  The
// map never shrinks below it.
const MinCapacity = 16

// slotState is the occupancy state of a single map slot.
type slotState uint8

// Enumeration of slot states.
const (
	slotEmpty     slotState = iota // Never used: ends a probe sequence.
	slotValid                      // Holds a live entry.
	slotTombstone                  // Held an entry that was removed.
)

// slot is a single cell of the open-addressing table.
type slot[V any] struct {
	state slotState
	key   string
	value V
}

// Map is a string-keyed open-addressing hash table with linear probing.
// Removed entries leave tombstones so that probe chains stay intact; rebuilding
// the table on resize drops them.  The zero value is an empty map ready for
// use.
type Map[V any] struct {
	slots []slot[V]

	// The number of live (valid) entries.
	live int
}

// NewMap creates a new, empty symbol map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{}
}

// hashKey computes the table hash of a key.
func hashKey(key string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(key))
	return h.Sum64()
}

// Len returns the number of live entries in the map.
func (m *Map[V]) Len() int {
	return m.live
}

// Cap returns the number of slots in the map.  It is also the "not found"
// index returned by Find.
func (m *Map[V]) Cap() int {
	return len(m.slots)
}

// Insert adds key to the map, returning the index of its slot.  If the key is
// already present, the index of the existing entry is returned and its value
// is left untouched.
func (m *Map[V]) Insert(key string) int {
	m.resize()

	capacity := len(m.slots)
	start := int(hashKey(key) % uint64(capacity))

	// The first tombstone passed over; reused for a fresh key.
	freeIndex := -1
	for n, i := 0, start; n < capacity; n, i = n+1, (i+1)%capacity {
		s := &m.slots[i]

		switch s.state {
		case slotEmpty:
			if freeIndex == -1 {
				freeIndex = i
			}

			return m.occupy(freeIndex, key)
		case slotValid:
			if s.key == key {
				return i
			}
		case slotTombstone:
			if freeIndex == -1 {
				freeIndex = i
			}
		}
	}

	// Every slot was visited without finding an empty one.  The resize
	// policy keeps live entries below capacity, so a tombstone was passed.
	return m.occupy(freeIndex, key)
}

// occupy stores a fresh key in the slot at index.
func (m *Map[V]) occupy(index int, key string) int {
	var zero V
	m.slots[index] = slot[V]{state: slotValid, key: key, value: zero}
	m.live++
	return index
}

// Find returns the slot index of key, or Cap() if key is not in the map.
func (m *Map[V]) Find(key string) int {
	capacity := len(m.slots)
	if capacity == 0 {
		return 0
	}

	start := int(hashKey(key) % uint64(capacity))
	for n, i := 0, start; n < capacity; n, i = n+1, (i+1)%capacity {
		s := &m.slots[i]

		if s.state == slotEmpty {
			break
		}

		if s.state == slotValid && s.key == key {
			return i
		}
	}

	return capacity
}

// Remove deletes the entry at index.  Removing an index that does not hold a
// live entry does nothing.  The map may shrink as a result.
func (m *Map[V]) Remove(index int) {
	if !m.Exists(index) {
		return
	}

	var zero V
	m.slots[index] = slot[V]{state: slotTombstone, value: zero}
	m.live--

	m.resize()
}

// Exists returns whether index refers to a live entry.
func (m *Map[V]) Exists(index int) bool {
	return 0 <= index && index < len(m.slots) && m.slots[index].state == slotValid
}

// Key returns the key stored at index.
func (m *Map[V]) Key(index int) string {
	return m.slots[index].key
}

// Value returns a pointer to the value stored at index.  The pointer is only
// valid until the next Insert or Remove.
func (m *Map[V]) Value(index int) *V {
	return &m.slots[index].value
}

// Get looks up the value bound to key.
func (m *Map[V]) Get(key string) (V, bool) {
	if i := m.Find(key); m.Exists(i) {
		return m.slots[i].value, true
	}

	var zero V
	return zero, false
}

// Set binds key to value, overwriting any previous binding.
func (m *Map[V]) Set(key string, value V) {
	i := m.Insert(key)
	m.slots[i].value = value
}

// Delete removes key from the map if it is present.
func (m *Map[V]) Delete(key string) {
	if i := m.Find(key); m.Exists(i) {
		m.Remove(i)
	}
}

// Each calls f for every live entry in slot order.
func (m *Map[V]) Each(f func(key string, value V)) {
	for _, s := range m.slots {
		if s.state == slotValid {
			f(s.key, s.value)
		}
	}
}

// -----------------------------------------------------------------------------

// resize applies the growth and shrink policy: grow when the table is more
// than three quarters full, shrink by half when it is less than a quarter full
// and larger than the minimum capacity.
func (m *Map[V]) resize() {
	capacity := len(m.slots)

	if capacity == 0 || m.live*4 > capacity*3 {
		m.rebuild(max(capacity*2, MinCapacity))
	} else if capacity > MinCapacity && m.live*4 < capacity {
		m.rebuild(capacity / 2)
	}
}

// rebuild re-inserts every live entry into a fresh table of the given
// capacity, discarding tombstones.
func (m *Map[V]) rebuild(capacity int) {
	old := m.slots
	m.slots = make([]slot[V], capacity)

	for _, s := range old {
		if s.state != slotValid {
			continue
		}

		i := int(hashKey(s.key) % uint64(capacity))
		for m.slots[i].state == slotValid {
			i = (i + 1) % capacity
		}

		m.slots[i] = s
	}
}
