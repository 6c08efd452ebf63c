package Trees

import "golang.org/x/exp/constraints"

// Node of an unbalanced binary search tree. A nil *Node is the empty tree;
// every non-nil node holds exactly one value.
// Values in l are <= v, values in r are > v, so duplicates go left.
// A node never refers to its parent. Operations that relink a parent's
// child pointer receive that pointer's address instead.
type Node[T constraints.Ordered] struct {
	v    T
	l, r *Node[T]
}

// NewNode returns a single node tree holding v.
func NewNode[T constraints.Ordered](v T) *Node[T] {
	return &Node[T]{v: v}
}

func (n *Node[T]) Value() T {
	return n.v
}

func (n *Node[T]) Left() *Node[T] {
	return n.l
}

func (n *Node[T]) Right() *Node[T] {
	return n.r
}

// Insert v into the tree rooting at root and returns the root, which is
// a new node if root is nil. No rebalancing is done. Equal values are
// kept and placed in the left subtree.
// Time: O(D); Space: O(1)
func Insert[T constraints.Ordered](root *Node[T], v T) *Node[T] {
	slot := &root
	for cur := *slot; cur != nil; cur = *slot {
		if v <= cur.v {
			slot = &cur.l
		} else {
			slot = &cur.r
		}
	}
	*slot = &Node[T]{v: v}
	return root
}

// Find reports whether v is in the tree rooting at root.
// Time: O(D); Space: O(1)
func Find[T constraints.Ordered](root *Node[T], v T) bool {
	if root == nil {
		return false
	}
	cur := root
	for {
		if v < cur.v && cur.l != nil {
			cur = cur.l
		} else if v > cur.v && cur.r != nil {
			cur = cur.r
		} else {
			return v == cur.v
		}
	}
}

// FindMinimum returns the smallest value under n, or *EmptyTreeError if n is nil.
// Time: O(D); Space: O(1)
func FindMinimum[T constraints.Ordered](n *Node[T]) (T, error) {
	if n == nil {
		return *new(T), &EmptyTreeError{"FindMinimum"}
	}
	for n.l != nil {
		n = n.l
	}
	return n.v, nil
}

// FindMaximum returns the largest value under n, or *EmptyTreeError if n is nil.
// Time: O(D); Space: O(1)
func FindMaximum[T constraints.Ordered](n *Node[T]) (T, error) {
	if n == nil {
		return *new(T), &EmptyTreeError{"FindMaximum"}
	}
	for n.r != nil {
		n = n.r
	}
	return n.v, nil
}

// Delete one occurrence of v from the tree rooting at root. Returns the new
// root, which differs from root only when the root node itself was spliced
// out, and whether v was found. A tree without v is returned untouched.
// Recursive.
// Time: O(D)
func Delete[T constraints.Ordered](root *Node[T], v T) (*Node[T], bool) {
	found := remove(&root, v)
	return root, found
}

// remove v from the subtree *slot points to. slot is the parent's child
// pointer (or the root variable), so splicing is done by rewriting *slot.
func remove[T constraints.Ordered](slot **Node[T], v T) bool {
	cur := *slot
	if cur == nil {
		return false
	} else if v < cur.v {
		return remove(&cur.l, v)
	} else if v > cur.v {
		return remove(&cur.r, v)
	}
	switch {
	case cur.l == nil && cur.r == nil:
		*slot = nil
	case cur.r == nil:
		*slot = cur.l
	case cur.l == nil:
		*slot = cur.r
	default:
		// cur takes the minimum m of cur.r. The topmost node holding m is
		// unlinked; anything left of it is also m, which must now be on the
		// left of cur, so it goes to the rightmost slot of cur.l.
		m, _ := FindMinimum(cur.r)
		s := &cur.r
		for (*s).v != m {
			s = &(*s).l
		}
		succ := *s
		cur.v, *s = m, succ.r
		if succ.l != nil {
			t := &cur.l
			for *t != nil {
				t = &(*t).r
			}
			*t = succ.l
		}
		succ.l, succ.r = nil, nil
		return true
	}
	cur.l, cur.r = nil, nil
	return true
}

// Height of the tree rooting at n. 0 for nil, 1 for a leaf. Recursive.
// Time: O(n)
func Height[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return max(Height(n.l), Height(n.r)) + 1
}

// Verify the ordering of the tree rooting at n. Returns *OrderError for the
// first violation found in pre-order, nil otherwise. Recursive.
// Time: O(n)
func Verify[T constraints.Ordered](n *Node[T]) error {
	return verify(n, nil, nil)
}

// verify n against its closest ancestors bounding it from below(lo, exclusive)
// and above(hi, inclusive).
func verify[T constraints.Ordered](n, lo, hi *Node[T]) error {
	if n == nil {
		return nil
	}
	if lo != nil && n.v <= lo.v {
		return &OrderError[T]{Parent: lo.v, Child: n.v, Left: false}
	}
	if hi != nil && n.v > hi.v {
		return &OrderError[T]{Parent: hi.v, Child: n.v, Left: true}
	}
	if err := verify(n.l, lo, n); err != nil {
		return err
	}
	return verify(n.r, n, hi)
}
