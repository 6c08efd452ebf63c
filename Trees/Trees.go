package Trees

// Tree represents A tree like structure implemented using nodes.
// Receivers that return an error as A second return value report
// precondition violations through it. For example, calling Minimum on
// an empty tree returns (x T, *EmptyTreeError). In this case the value
// of x is the zero value of T and shouldn't be used.
// Absence of a value is not an error: Has and Remove report it through
// their bool return value.
// Methods implemented recursively should be noted, otherwise functions
// are implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Exact behavior on duplicates depend on implementation.
	Insert(v T)
	//Remove one occurrence of v from the Tree. Returning true if v was found.
	Remove(v T) bool
	//Minimum element of the tree.
	Minimum() (T, error)
	//Maximum element of the tree.
	Maximum() (T, error)
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//Height of the tree, 0 when empty.
	Height() int
	//PreOrder, InOrder, PostOrder and BreadthFirst return A closure function
	//f acting like an iterator. Calling f is like calling "Next()" of
	//iterators: val, valid=f(). val is meaningful only if valid is true.
	//When valid==false, then f is exhausted. valid can't turn true after it
	//first became false. Every call returns A new, independent f.
	//The tree must not be modified during the iteration of f. There will be
	//no panic if such cases happens, but the values given are undefined.
	PreOrder() func() (T, bool)
	InOrder() func() (T, bool)
	PostOrder() func() (T, bool)
	BreadthFirst() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	Corrupt() bool
}
