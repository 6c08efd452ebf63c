package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/go-bst/Queues"
	"golang.org/x/exp/constraints"
)

// popNode from a stack only ever holding *Node[T].
func popNode[T constraints.Ordered](st *arraystack.Stack) (*Node[T], bool) {
	if x, ok := st.Pop(); ok {
		return x.(*Node[T]), true
	}
	return nil, false
}

// PreOrder returns an iterator over the values under root as node, left
// subtree, right subtree. See [Tree.PreOrder] for the iterator protocol.
// Time: f(): O(1). Space: O(D)
func PreOrder[T constraints.Ordered](root *Node[T]) func() (T, bool) {
	st := arraystack.New()
	if root != nil {
		st.Push(root)
	}
	return func() (r T, has bool) {
		n, has := popNode[T](st)
		if !has {
			return
		}
		if n.r != nil {
			st.Push(n.r)
		}
		if n.l != nil {
			st.Push(n.l)
		}
		return n.v, true
	}
}

// InOrder returns an iterator over the values under root in ascending order.
// Only the path to the next value is kept on the stack, so stopping early
// costs nothing for the rest of the tree.
// Time: f(): amortized O(1). Space: O(D)
func InOrder[T constraints.Ordered](root *Node[T]) func() (T, bool) {
	st := arraystack.New()
	cur := root
	return func() (r T, has bool) {
		for ; cur != nil; cur = cur.l {
			st.Push(cur)
		}
		n, has := popNode[T](st)
		if !has {
			return
		}
		cur = n.r
		return n.v, true
	}
}

// PostOrder returns an iterator over the values under root as left subtree,
// right subtree, node.
// Time: f(): amortized O(1). Space: O(D)
func PostOrder[T constraints.Ordered](root *Node[T]) func() (T, bool) {
	st := arraystack.New()
	cur := root
	var last *Node[T] // last node given out, tells whether top's right subtree is done.
	return func() (r T, has bool) {
		for {
			for ; cur != nil; cur = cur.l {
				st.Push(cur)
			}
			x, ok := st.Peek()
			if !ok {
				return
			}
			n := x.(*Node[T])
			if n.r != nil && n.r != last {
				cur = n.r
				continue
			}
			st.Pop()
			last = n
			return n.v, true
		}
	}
}

// BreadthFirst returns an iterator over the values under root level by
// level, left to right.
// Time: f(): amortized O(1). Space: O(width of the tree)
func BreadthFirst[T constraints.Ordered](root *Node[T]) func() (T, bool) {
	q := Queues.MakeArrayQueue[*Node[T]](4)
	if root != nil {
		q.Push(root)
	}
	return func() (r T, has bool) {
		n, err := q.Pop()
		if err != nil {
			return
		}
		if n.l != nil {
			q.Push(n.l)
		}
		if n.r != nil {
			q.Push(n.r)
		}
		return n.v, true
	}
}

// Collect drains next into a slice.
func Collect[T any](next func() (T, bool)) []T {
	var all []T
	for v, ok := next(); ok; v, ok = next() {
		all = append(all, v)
	}
	return all
}
