package zipper

// List is a persistent singly linked list; nil is the empty list.
// Pushing allocates a single node and never mutates existing ones,
// so any number of lists may share a common tail. This is what makes
// zipper navigation O(1) per step without invalidating older zippers.
type List[T any] struct {
	Head T
	Tail *List[T]
}

// Push returns a new list with head prepended to tail.
func Push[T any](head T, tail *List[T]) *List[T] {
	return &List[T]{Head: head, Tail: tail}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	n := 0
	for ; l != nil; l = l.Tail {
		n++
	}
	return n
}

// Slice collects the list elements into a slice, head first.
func (l *List[T]) Slice() []T {
	var out []T
	for ; l != nil; l = l.Tail {
		out = append(out, l.Head)
	}
	return out
}
