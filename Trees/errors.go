package Trees

import "fmt"

// EmptyTreeError is returned by queries that need at least one node.
type EmptyTreeError struct {
	Op string
}

func (e *EmptyTreeError) Error() string {
	return "Tree is Empty: cannot " + e.Op + "."
}

// OrderError reports a node whose value is out of order with respect to one
// of its ancestors. Parent is the ancestor's value, Child the offending value,
// and Left tells which subtree of Parent the child is in.
type OrderError[T any] struct {
	Parent, Child T
	Left          bool
}

func (e *OrderError[T]) Error() string {
	if e.Left {
		return fmt.Sprintf("Tree is corrupt: %v in the left subtree of %v", e.Child, e.Parent)
	}
	return fmt.Sprintf("Tree is corrupt: %v in the right subtree of %v", e.Child, e.Parent)
}
