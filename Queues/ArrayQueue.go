package Queues

// circArrQ is a FIFO queue in a circular slice. Elements live in
// content[head], content[(head+1)%len], ... for sz elements.
type circArrQ[T any] struct {
	sz, head uint
	content  []T
}

// MakeArrayQueue with room for initCap elements before the first resize.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, make([]T, initCap)}
}

func (this circArrQ[T]) Empty() bool {
	return this.sz == 0
}

// resize moves the elements to a new slice of newLen>=sz, starting at index 0.
func (this *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if this.sz > 0 {
		if end := this.head + this.sz; end <= uint(len(this.content)) {
			copy(nc, this.content[this.head:end])
		} else {
			n := copy(nc, this.content[this.head:])
			copy(nc[n:], this.content[:end-uint(len(this.content))])
		}
	}
	this.content, this.head = nc, 0
}

func (this *circArrQ[T]) Shrink() {
	this.resize(this.sz | 1)
}

func (this *circArrQ[T]) Clear() {
	clear(this.content)
	this.head, this.sz = 0, 0
}

func (this circArrQ[T]) Size() uint {
	return this.sz
}

func (this *circArrQ[T]) Push(item T) {
	if this.sz == uint(len(this.content)) {
		this.resize(this.sz*3/2 + 1)
	}
	this.content[(this.head+this.sz)%uint(len(this.content))] = item
	this.sz++
}

func (this *circArrQ[T]) Pop() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := this.content[this.head]
	this.content[this.head] = *new(T)
	this.head = (this.head + 1) % uint(len(this.content))
	this.sz--
	return t, nil
}

func (this circArrQ[T]) Peek() (item T) {
	if this.Empty() {
		return *new(T)
	}
	return this.content[this.head]
}
