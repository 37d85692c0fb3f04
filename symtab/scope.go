package symtab

// Scopes is a stack of symbol maps used for lexical scoping.  Lookups search
// from the innermost frame outward so inner bindings shadow outer ones;
// bindings are only ever added to the innermost frame.
type Scopes[V any] struct {
	frames []*Map[V]
}

// NewScopes creates a new scope stack with no frames.
func NewScopes[V any]() *Scopes[V] {
	return &Scopes[V]{}
}

// PushFrame pushes a new, empty frame.
func (s *Scopes[V]) PushFrame() {
	s.frames = append(s.frames, NewMap[V]())
}

// PopFrame discards the innermost frame and all of its bindings.  Frames must
// be popped in the reverse of the order they were pushed: popping an empty
// stack is a programming error.
func (s *Scopes[V]) PopFrame() {
	if len(s.frames) == 0 {
		panic("symtab: pop of empty scope stack")
	}

	s.frames[len(s.frames)-1] = nil
	s.frames = s.frames[:len(s.frames)-1]
}

// Depth returns the number of frames on the stack.
func (s *Scopes[V]) Depth() int {
	return len(s.frames)
}

// Find looks up name in every frame, innermost first.
func (s *Scopes[V]) Find(name string) (V, bool) {
	for i := len(s.frames) - 1; i > -1; i-- {
		if v, ok := s.frames[i].Get(name); ok {
			return v, true
		}
	}

	var zero V
	return zero, false
}

// FindInFrame looks up name in the innermost frame only.
func (s *Scopes[V]) FindInFrame(name string) (V, bool) {
	if len(s.frames) == 0 {
		var zero V
		return zero, false
	}

	return s.frames[len(s.frames)-1].Get(name)
}

// Insert binds name to value in the innermost frame.  There must be at least
// one frame on the stack.
func (s *Scopes[V]) Insert(name string, value V) {
	if len(s.frames) == 0 {
		panic("symtab: insert into empty scope stack")
	}

	s.frames[len(s.frames)-1].Set(name, value)
}
