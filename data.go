package loom

// Data is the structural-sameness contract every piece of application
// state must satisfy. The runtime uses Same to decide whether a subtree
// needs reprocessing, and Clone to snapshot the state before an event so
// the update pass can diff old against new.
//
// Same must be reflexive: Same(x, x) is always true. It may be
// conservative: reporting false for values that are actually equal only
// costs a redundant update pass. Reporting true for values that differ
// observably is a bug that causes stale rendering.
//
// A field that should not affect rendering can simply be left out of a
// hand-written Same; a field needing special treatment gets a custom
// comparison inline. This is the escape hatch the contract offers in
// place of derive tooling.
type Data[T any] interface {
	// Same reports whether the receiver and other are observably
	// interchangeable for rendering purposes.
	Same(other T) bool

	// Clone returns a copy deep enough that mutating the original does
	// not change the copy's observable value. Share-on-read containers
	// make this cheap.
	Clone() T
}

// Value adapts any comparable type to the Data contract. Handy for leaf
// state like counters and flags.
//
//	type counter = loom.Value[int]
type Value[T comparable] struct {
	V T
}

// Val wraps v in a Value.
func Val[T comparable](v T) Value[T] {
	return Value[T]{V: v}
}

// Same reports whether both wrapped values compare equal.
func (v Value[T]) Same(other Value[T]) bool {
	return v.V == other.V
}

// Clone returns a copy of the value.
func (v Value[T]) Clone() Value[T] {
	return v
}

// SameSlice compares two slices element-wise using the elements' Same.
// A cheap length-and-identity check runs first.
func SameSlice[T Data[T]](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Same(b[i]) {
			return false
		}
	}
	return true
}

// CloneSlice clones every element of the slice.
func CloneSlice[T Data[T]](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	for i := range s {
		out[i] = s[i].Clone()
	}
	return out
}
