package nestbar

import "iter"

// Each returns an iterator that drives src through the stack, keeping a bar
// on screen for the duration of the loop. Breaking out of the loop early
// cancels the tracker. With opts.Disable set the source is drained raw with
// no stack interaction at all.
//
// Range-over-func cannot surface errors, so a construction or render
// failure simply ends the loop; check Err afterwards when the distinction
// from normal exhaustion matters.
func (s *Stack) Each(src Source, opts Options) iter.Seq[any] {
	return func(yield func(any) bool) {
		if opts.Disable {
			for item, ok := src.Next(); ok; item, ok = src.Next() {
				if !yield(item) {
					return
				}
			}
			return
		}

		if _, err := s.Wrap(src, opts); err != nil {
			s.err = err
			return
		}
		for {
			item, err := s.Advance()
			if err != nil {
				return
			}
			if !yield(item) {
				s.Cancel()
				return
			}
		}
	}
}

// EachN tracks the integers 0 through n-1, the shorthand for
// Each(Range(n), opts).
func (s *Stack) EachN(n int, opts Options) iter.Seq[int] {
	return func(yield func(int) bool) {
		for item := range s.Each(Range(n), opts) {
			if !yield(item.(int)) {
				return
			}
		}
	}
}

// Each drives src through the default stack.
func Each(src Source, opts Options) iter.Seq[any] {
	return Default.Each(src, opts)
}

// EachN tracks the integers 0 through n-1 on the default stack.
func EachN(n int, opts Options) iter.Seq[int] {
	return Default.EachN(n, opts)
}
