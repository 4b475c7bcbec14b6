package avlset

import "golang.org/x/exp/constraints"

// node holds a single stored element. Every node exclusively owns its
// children; there are no parent links and no node is ever shared
// between two sets. A leaf has height 1, a nil subtree counts as 0.
type node[T constraints.Ordered] struct {
	element T
	height  int
	left    *node[T]
	right   *node[T]
}

func newNode[T constraints.Ordered](element T) *node[T] {
	return &node[T]{element: element, height: 1}
}

func (n *node[T]) subtreeHeight() int {
	if n == nil {
		return 0
	}
	return n.height
}

// balanceFactor is height(right) - height(left). A node is balanced
// when the factor is in {-1, 0, 1}.
func (n *node[T]) balanceFactor() int {
	if n == nil {
		return 0
	}
	return n.right.subtreeHeight() - n.left.subtreeHeight()
}

func (n *node[T]) recomputeHeight() {
	lh, rh := n.left.subtreeHeight(), n.right.subtreeHeight()
	if lh > rh {
		n.height = lh + 1
	} else {
		n.height = rh + 1
	}
}

func (n *node[T]) leftmost() *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[T]) rightmost() *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// rotateLeft promotes the right child to subtree root and returns it.
// The caller must relink the returned node in place of n.
func (n *node[T]) rotateLeft() *node[T] {
	r := n.right
	n.right = r.left
	r.left = n
	n.recomputeHeight()
	r.recomputeHeight()
	return r
}

func (n *node[T]) rotateRight() *node[T] {
	l := n.left
	n.left = l.right
	l.right = n
	n.recomputeHeight()
	l.recomputeHeight()
	return l
}

// rebalance applies the four AVL rotation cases to a node whose
// children just changed. An already balanced node is returned as is.
func (n *node[T]) rebalance() *node[T] {
	bf := n.balanceFactor()

	if bf > 1 {
		if n.right.balanceFactor() < 0 {
			n.right = n.right.rotateRight()
		}
		return n.rotateLeft()
	}

	if bf < -1 {
		if n.left.balanceFactor() > 0 {
			n.left = n.left.rotateLeft()
		}
		return n.rotateRight()
	}

	return n
}

// insertNode descends to the sorted position of element and grows a new
// leaf there, rebalancing every node on the way back up. It returns the
// new subtree root, which may differ from n after a rotation, and
// whether a node was actually added.
func insertNode[T constraints.Ordered](n *node[T], element T) (*node[T], bool) {
	if n == nil {
		return newNode(element), true
	}

	var added bool
	switch {
	case element < n.element:
		n.left, added = insertNode(n.left, element)
	case element > n.element:
		n.right, added = insertNode(n.right, element)
	default:
		return n, false
	}

	n.recomputeHeight()
	return n.rebalance(), added
}

// removeNode excises element from the subtree rooted at n. A node with
// two children swaps its element with the maximum of its left subtree
// and the removal recurses on that maximum. Every node on the unwind is
// rebalanced, and the new subtree root is returned together with
// whether anything was removed.
func removeNode[T constraints.Ordered](n *node[T], element T) (*node[T], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch {
	case element < n.element:
		n.left, removed = removeNode(n.left, element)
	case element > n.element:
		n.right, removed = removeNode(n.right, element)
	default:
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		n.element = n.left.rightmost().element
		n.left, _ = removeNode(n.left, n.element)
		removed = true
	}

	n.recomputeHeight()
	return n.rebalance(), removed
}

// inorder walks the subtree rooted at n in ascending order with an
// explicit stack, so bulk walks never recurse. Visiting stops early
// when visit returns false.
func inorder[T constraints.Ordered](n *node[T], visit func(element T) bool) {
	var stack []*node[T]

	current := n
	for current != nil || len(stack) > 0 {
		for current != nil {
			stack = append(stack, current)
			current = current.left
		}

		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(current.element) {
			return
		}

		current = current.right
	}
}
