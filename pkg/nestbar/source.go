package nestbar

// Source is a pull iterator over an arbitrary sequence. Next returns the
// next element and true, or a zero value and false once the sequence is
// exhausted. After reporting exhaustion a Source must keep reporting it.
type Source interface {
	Next() (any, bool)
}

// Sized is implemented by sources that know how many elements they yield.
// A sized source always wins over the Length option.
type Sized interface {
	Len() int
}

type rangeSource struct {
	next, n int
}

// Range returns a sized Source yielding the integers 0 through n-1.
func Range(n int) Source {
	return &rangeSource{n: n}
}

func (r *rangeSource) Next() (any, bool) {
	if r.next >= r.n {
		return nil, false
	}
	v := r.next
	r.next++
	return v, true
}

func (r *rangeSource) Len() int {
	return r.n
}

type sliceSource[T any] struct {
	next  int
	items []T
}

// Slice returns a sized Source yielding the elements of items in order.
func Slice[T any](items []T) Source {
	return &sliceSource[T]{items: items}
}

func (s *sliceSource[T]) Next() (any, bool) {
	if s.next >= len(s.items) {
		return nil, false
	}
	v := s.items[s.next]
	s.next++
	return v, true
}

func (s *sliceSource[T]) Len() int {
	return len(s.items)
}

type funcSource func() (any, bool)

// Func adapts a closure into an unsized Source, the generator case: the
// element count is unknowable unless a Length option supplies a hint.
func Func(next func() (any, bool)) Source {
	return funcSource(next)
}

func (f funcSource) Next() (any, bool) {
	return f()
}
