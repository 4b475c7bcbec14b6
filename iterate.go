package avlset

import (
	"context"

	"golang.org/x/exp/constraints"
)

type (
	FilterFn[T constraints.Ordered]       func(element T, order int) bool
	ForEachFn[T constraints.Ordered]      func(element T, order int)
	ForEachUntilFn[T constraints.Ordered] func(element T, order int) bool
)

// ForEach visits every element in ascending order. The order argument
// is the zero-based position of the element in that walk. The set must
// not be mutated from inside f.
func (s *OrderedSet[T]) ForEach(f ForEachFn[T]) {
	order := 0
	inorder(s.root, func(element T) bool {
		f(element, order)
		order++
		return true
	})
}

// ForEachUntil walks in ascending order until f returns false.
func (s *OrderedSet[T]) ForEachUntil(f ForEachUntilFn[T]) {
	order := 0
	inorder(s.root, func(element T) bool {
		canGoOn := f(element, order)
		order++
		return canGoOn
	})
}

// Filter returns a new set holding the elements f accepts.
func (s *OrderedSet[T]) Filter(f FilterFn[T]) *OrderedSet[T] {
	result := New[T]()
	order := 0
	inorder(s.root, func(element T) bool {
		if f(element, order) {
			result.Add(element)
		}
		order++
		return true
	})
	return result
}

// Elements streams the set in ascending order over a channel until the
// walk finishes or ctx is cancelled. The set must not be mutated while
// the channel is being drained.
func (s *OrderedSet[T]) Elements(ctx context.Context) <-chan T {
	resultCh := make(chan T)

	go func() {
		defer close(resultCh)

		var stack []*node[T]
		current := s.root
		for current != nil || len(stack) > 0 {
			for current != nil {
				stack = append(stack, current)
				current = current.left
			}

			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			select {
			case resultCh <- current.element:
			case <-ctx.Done():
				return
			}

			current = current.right
		}
	}()

	return resultCh
}
