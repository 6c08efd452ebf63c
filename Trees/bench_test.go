package Trees

import (
	"math/rand"
	"testing"
)

const size = 1 << 15

func BenchmarkBSTree_Insert(b *testing.B) {
	var t *BSTree[int]
	for i := 0; i < b.N; i++ {
		t = New[int]()
		for _, j := range rand.Perm(size) {
			t.Insert(j)
		}
	}
	b.Log(t.Height())
}

func BenchmarkBSTree_Remove(b *testing.B) {
	var t Tree[int]
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t = New[int]()
		for _, j := range rand.Perm(size) {
			t.Insert(j)
		}
		b.StartTimer()
		for j := 0; j < size; j++ {
			t.Remove(j)
		}
	}
}

var sideEff int

func BenchmarkBSTree_InOrder(b *testing.B) {
	t := New[int]()
	for _, j := range rand.Perm(size) {
		t.Insert(j)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		next := t.InOrder()
		for v, ok := next(); ok; v, ok = next() {
			sideEff = v
		}
	}
}

func BenchmarkBSTree_BreadthFirst(b *testing.B) {
	t := New[int]()
	for _, j := range rand.Perm(size) {
		t.Insert(j)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		next := t.BreadthFirst()
		for v, ok := next(); ok; v, ok = next() {
			sideEff = v
		}
	}
}
