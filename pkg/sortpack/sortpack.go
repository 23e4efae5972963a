// Package sortpack implements ordered insertion and insertion sort over
// immutable sequences.
//
// The package knows nothing about dimensions. Any slice shape and any strict
// weak order can be plugged in: a Comparator reports whether x must precede y,
// and every operation returns a freshly allocated sequence instead of
// modifying its input.
package sortpack

// Comparator decides ordering between two elements.
// Compare(x, y) returns true iff x must precede y.
type Comparator[E any] interface {
	Compare(x, y E) bool
}

// Less adapts a plain function to Comparator.
type Less[E any] func(x, y E) bool

func (f Less[E]) Compare(x, y E) bool { return f(x, y) }

// Prepend returns a new sequence with head in front of s.
func Prepend[S ~[]E, E any](s S, head E) S {
	out := make(S, 0, len(s)+1)
	out = append(out, head)
	return append(out, s...)
}

// InsertSorted inserts e into a sequence already sorted under cmp. The element
// lands at the first position whose occupant it must precede, so ties are
// placed after existing equal elements.
func InsertSorted[S ~[]E, E any](sorted S, e E, cmp Comparator[E]) S {
	at := len(sorted)
	for i, x := range sorted {
		if cmp.Compare(e, x) {
			at = i
			break
		}
	}
	out := make(S, 0, len(sorted)+1)
	out = append(out, sorted[:at]...)
	out = append(out, e)
	return append(out, sorted[at:]...)
}

// Sort returns the elements of s sorted under cmp. The tail is sorted first
// and the head inserted into it; since insertion goes after equal elements,
// ties come out in reverse input order.
func Sort[S ~[]E, E any](s S, cmp Comparator[E]) S {
	out := make(S, 0, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		out = InsertSorted(out, s[i], cmp)
	}
	return out
}

// IsSorted reports whether no adjacent pair of s is inverted under cmp.
func IsSorted[S ~[]E, E any](s S, cmp Comparator[E]) bool {
	for i := 1; i < len(s); i++ {
		if cmp.Compare(s[i], s[i-1]) {
			return false
		}
	}
	return true
}
