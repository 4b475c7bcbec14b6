package avlset

// The set-algebra combinators always build a brand new set from fresh
// nodes; neither operand is ever mutated or shares structure with the
// result.

// Union returns a new set holding every element of the receiver and of
// other. Duplicates collapse through Add's idempotence.
func (s *OrderedSet[T]) Union(other *OrderedSet[T]) *OrderedSet[T] {
	union := New[T]()
	union.AddSet(s)
	union.AddSet(other)
	return union
}

// Intersect returns a new set holding the elements present in both the
// receiver and other. Other is walked and the receiver probed; the
// result is the same either way round since membership alone decides
// inclusion.
func (s *OrderedSet[T]) Intersect(other *OrderedSet[T]) *OrderedSet[T] {
	intersection := New[T]()
	inorder(other.root, func(element T) bool {
		if s.Has(element) {
			intersection.Add(element)
		}
		return true
	})
	return intersection
}

// RelativeComplement returns receiver minus other as a new set: a full
// copy of the receiver with every element of other deleted from it.
func (s *OrderedSet[T]) RelativeComplement(other *OrderedSet[T]) *OrderedSet[T] {
	complement := s.Clone()
	inorder(other.root, func(element T) bool {
		complement.Remove(element)
		return true
	})
	return complement
}

// SymmetricDifference returns the elements present in exactly one of
// the two sets, computed as the union minus the shared elements.
func (s *OrderedSet[T]) SymmetricDifference(other *OrderedSet[T]) *OrderedSet[T] {
	symmetric := s.Union(other)
	inorder(other.root, func(element T) bool {
		if s.Has(element) {
			symmetric.Remove(element)
		}
		return true
	})
	return symmetric
}
