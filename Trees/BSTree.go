package Trees

import (
	"io"

	"golang.org/x/exp/constraints"
)

// BSTree is an unbalanced binary search tree that allows repeated values.
// It owns a root node and counts the values it holds; all the work is done by
// the functions on *Node. The zero value is an empty tree ready to use.
// The worst case height of the tree is its size, e.g. after inserting values in
// sorted order. A BSTree must not be used by multiple goroutines concurrently
// if any of them modifies it.
type BSTree[T constraints.Ordered] struct {
	root *Node[T]
	size uint
}

// New returns a BSTree holding vs, inserted in the order given.
func New[T constraints.Ordered](vs ...T) *BSTree[T] {
	u := new(BSTree[T])
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

// Root node of the tree, nil when empty. The node belongs to u.
func (u *BSTree[T]) Root() *Node[T] {
	return u.root
}

// Insert [Tree.Insert]. Equal values are all kept.
// Time: O(D)
func (u *BSTree[T]) Insert(v T) {
	u.root = Insert(u.root, v)
	u.size++
}

// Remove [Tree.Remove]. Recursive.
// Time: O(D)
func (u *BSTree[T]) Remove(v T) bool {
	var found bool
	if u.root, found = Delete(u.root, v); found {
		u.size--
	}
	return found
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	return Find(u.root, v)
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, error) {
	return FindMinimum(u.root)
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, error) {
	return FindMaximum(u.root)
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *BSTree[T]) Size() uint {
	return u.size
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (u *BSTree[T]) Height() int {
	return Height(u.root)
}

func (u *BSTree[T]) PreOrder() func() (T, bool) {
	return PreOrder(u.root)
}

func (u *BSTree[T]) InOrder() func() (T, bool) {
	return InOrder(u.root)
}

func (u *BSTree[T]) PostOrder() func() (T, bool) {
	return PostOrder(u.root)
}

func (u *BSTree[T]) BreadthFirst() func() (T, bool) {
	return BreadthFirst(u.root)
}

// Corrupt [Tree.Corrupt]. Use Verify on Root to find the offending values.
// Time: O(n)
func (u *BSTree[T]) Corrupt() bool {
	return Verify(u.root) != nil
}

// Render the tree to w, see Render.
func (u *BSTree[T]) Render(w io.Writer) error {
	return Render(w, u.root)
}

var _ Tree[int] = (*BSTree[int])(nil)
