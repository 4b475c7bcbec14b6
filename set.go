package avlset

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// OrderedSet stores unique elements sorted by their natural order,
// backed by a height-balanced binary search tree. Use New or From to
// construct one. A set is not safe for concurrent mutation; callers
// needing that must serialize access externally.
type OrderedSet[T constraints.Ordered] struct {
	root *node[T]
	size int
}

func New[T constraints.Ordered]() *OrderedSet[T] {
	return &OrderedSet[T]{}
}

// From seeds a new set with a single element.
func From[T constraints.Ordered](element T) *OrderedSet[T] {
	return &OrderedSet[T]{root: newNode(element), size: 1}
}

// Add is idempotent: inserting an element that is already present
// leaves the set unchanged.
func (s *OrderedSet[T]) Add(element T) (added bool) {
	s.root, added = insertNode(s.root, element)
	if added {
		s.size++
	}
	return added
}

func (s *OrderedSet[T]) AddSlice(elements []T) (modified bool) {
	for _, element := range elements {
		if s.Add(element) {
			modified = true
		}
	}
	return modified
}

// AddSet inserts every element of other into the receiver, an in-place
// union. Other is only read.
func (s *OrderedSet[T]) AddSet(other *OrderedSet[T]) (modified bool) {
	inorder(other.root, func(element T) bool {
		if s.Add(element) {
			modified = true
		}
		return true
	})
	return modified
}

// Remove is a no-op when the element is absent.
func (s *OrderedSet[T]) Remove(element T) (removed bool) {
	s.root, removed = removeNode(s.root, element)
	if removed {
		s.size--
	}
	return removed
}

// Find returns the stored element equal to the given one. Useful when
// the stored value carries more than the ordering key.
func (s *OrderedSet[T]) Find(element T) (T, bool) {
	n := s.root
	for n != nil {
		switch {
		case element < n.element:
			n = n.left
		case element > n.element:
			n = n.right
		default:
			return n.element, true
		}
	}
	return getZero[T](), false
}

func (s *OrderedSet[T]) Has(element T) bool {
	_, found := s.Find(element)
	return found
}

// Min fails with ErrEmptySet on an empty set; there is no zero-value
// answer distinguishable from a stored element.
func (s *OrderedSet[T]) Min() (T, error) {
	if s.root == nil {
		return getZero[T](), ErrEmptySet
	}
	return s.root.leftmost().element, nil
}

func (s *OrderedSet[T]) Max() (T, error) {
	if s.root == nil {
		return getZero[T](), ErrEmptySet
	}
	return s.root.rightmost().element, nil
}

// MinWith returns the smallest element across the receiver and other.
// It fails if either set is empty.
func (s *OrderedSet[T]) MinWith(other *OrderedSet[T]) (T, error) {
	ownMin, err := s.Min()
	if err != nil {
		return getZero[T](), errors.Wrap(err, "receiver set")
	}

	otherMin, err := other.Min()
	if err != nil {
		return getZero[T](), errors.Wrap(err, "other set")
	}

	if otherMin < ownMin {
		return otherMin, nil
	}
	return ownMin, nil
}

// MaxWith returns the largest element across the receiver and other.
// It fails if either set is empty.
func (s *OrderedSet[T]) MaxWith(other *OrderedSet[T]) (T, error) {
	ownMax, err := s.Max()
	if err != nil {
		return getZero[T](), errors.Wrap(err, "receiver set")
	}

	otherMax, err := other.Max()
	if err != nil {
		return getZero[T](), errors.Wrap(err, "other set")
	}

	if otherMax > ownMax {
		return otherMax, nil
	}
	return ownMax, nil
}

// Items returns the elements as a freshly allocated ascending slice.
func (s *OrderedSet[T]) Items() []T {
	items := make([]T, 0, s.size)
	inorder(s.root, func(element T) bool {
		items = append(items, element)
		return true
	})
	return items
}

// Clone builds an independent set with the same elements. No nodes are
// shared with the receiver.
func (s *OrderedSet[T]) Clone() *OrderedSet[T] {
	clone := New[T]()
	clone.AddSet(s)
	return clone
}

func (s *OrderedSet[T]) Clear() {
	s.root = nil
	s.size = 0
}

func (s *OrderedSet[T]) Len() int {
	return s.size
}

func (s *OrderedSet[T]) IsEmpty() bool {
	return s.size == 0
}

// Height reports the height of the underlying tree, 0 when empty. For
// n elements it stays within the AVL bound of roughly 1.44*log2(n).
func (s *OrderedSet[T]) Height() int {
	return s.root.subtreeHeight()
}

func (s *OrderedSet[T]) String() string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	inorder(s.root, func(element T) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(fmt.Sprintf("%v", element))
		return true
	})
	b.WriteString("}")
	return b.String()
}
