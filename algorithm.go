package u8scan

import "iter"

// Predicate classifies a character.
type Predicate func(c Char) bool

// Count returns how many characters of r satisfy pred.
func Count(r Range, pred Predicate) int {
	n := 0
	for c := range r.All() {
		if pred(c) {
			n++
		}
	}
	return n
}

// Find returns an iterator at the first character satisfying pred, or
// r.End() if there is none.
func Find(r Range, pred Predicate) Iterator {
	it, end := r.Begin(), r.End()
	for ; !it.Equal(end); it.Next() {
		if pred(it.Char()) {
			break
		}
	}
	return it
}

// Filter yields the characters of r that satisfy pred.
func Filter(r Range, pred Predicate) iter.Seq[Char] {
	return func(yield func(Char) bool) {
		for c := range r.All() {
			if pred(c) && !yield(c) {
				return
			}
		}
	}
}

// Map yields fn applied to every character of r.
func Map[T any](r Range, fn func(Char) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := range r.All() {
			if !yield(fn(c)) {
				return
			}
		}
	}
}

// Collect returns the characters of r as a slice.
func Collect(r Range) []Char {
	var chars []Char
	for c := range r.All() {
		chars = append(chars, c)
	}
	return chars
}

// AnyOf reports whether some character of r satisfies pred.
func AnyOf(r Range, pred Predicate) bool {
	it, end := Find(r, pred), r.End()
	return !it.Equal(end)
}

// AllOf reports whether every character of r satisfies pred. It is true for
// an empty range.
func AllOf(r Range, pred Predicate) bool {
	return !AnyOf(r, Not(pred))
}

// NoneOf reports whether no character of r satisfies pred.
func NoneOf(r Range, pred Predicate) bool {
	return !AnyOf(r, pred)
}
