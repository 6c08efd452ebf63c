package comparisons

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// The BST is unbalanced, so all trees get the same shuffled keys; sorted keys
// would make it a linked list.
const (
	elementNum = 1 << 14
	queryNum   = elementNum * 2
)

var (
	keys    = rand.New(rand.NewSource(0)).Perm(elementNum)
	queries = func() []int {
		r := rand.New(rand.NewSource(1))
		q := make([]int, queryNum)
		for i := range q {
			q[i] = r.Intn(elementNum * 2)
		}
		return q
	}()
)

func BenchmarkBSTree_Case1(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var root *Trees.Node[int]
		for _, k := range keys {
			root = Trees.Insert(root, k)
		}
		for _, k := range keys {
			if !Trees.Find(root, k) {
				b.Error("key doesn't exist", k)
			}
		}
		for _, k := range queries {
			Trees.Find(root, k)
		}
		for _, k := range keys {
			root, _ = Trees.Delete(root, k)
		}
		if root != nil {
			b.Error("tree isn't empty")
		}
	}
}

func BenchmarkBTree_Case1(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := btree.NewOrderedG[int](32)
		for _, k := range keys {
			t.ReplaceOrInsert(k)
		}
		for _, k := range keys {
			if !t.Has(k) {
				b.Error("key doesn't exist", k)
			}
		}
		for _, k := range queries {
			t.Has(k)
		}
		for _, k := range keys {
			t.Delete(k)
		}
		if t.Len() != 0 {
			b.Error("tree isn't empty")
		}
	}
}

func BenchmarkLLRB_Case1(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := llrb.New()
		for _, k := range keys {
			t.InsertNoReplace(llrb.Int(k))
		}
		for _, k := range keys {
			if !t.Has(llrb.Int(k)) {
				b.Error("key doesn't exist", k)
			}
		}
		for _, k := range queries {
			t.Has(llrb.Int(k))
		}
		for _, k := range keys {
			t.Delete(llrb.Int(k))
		}
		if t.Len() != 0 {
			b.Error("tree isn't empty")
		}
	}
}

func BenchmarkRedBlack_Case1(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := redblacktree.NewWithIntComparator()
		for _, k := range keys {
			t.Put(k, struct{}{})
		}
		for _, k := range keys {
			if _, ok := t.Get(k); !ok {
				b.Error("key doesn't exist", k)
			}
		}
		for _, k := range queries {
			t.Get(k)
		}
		for _, k := range keys {
			t.Remove(k)
		}
		if !t.Empty() {
			b.Error("tree isn't empty")
		}
	}
}

// Hash maps have no order; these only show what ordered membership costs.
func BenchmarkHaxMap_Case1(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m := haxmap.New[int, struct{}]()
		for _, k := range keys {
			m.Set(k, struct{}{})
		}
		for _, k := range keys {
			if _, ok := m.Get(k); !ok {
				b.Error("key doesn't exist", k)
			}
		}
		for _, k := range queries {
			m.Get(k)
		}
		for _, k := range keys {
			m.Del(k)
		}
	}
}

func BenchmarkHashMap_Case1(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m := hashmap.New[int, struct{}]()
		for _, k := range keys {
			m.Set(k, struct{}{})
		}
		for _, k := range keys {
			if _, ok := m.Get(k); !ok {
				b.Error("key doesn't exist", k)
			}
		}
		for _, k := range queries {
			m.Get(k)
		}
		for _, k := range keys {
			m.Del(k)
		}
	}
}

// BSTree in-order must agree with the ordered containers on the same keys.
func TestOrderAgrees(t *testing.T) {
	tree := Trees.New(keys...)
	bt := btree.NewOrderedG[int](32)
	rb := redblacktree.NewWithIntComparator()
	for _, k := range keys {
		bt.ReplaceOrInsert(k)
		rb.Put(k, nil)
	}
	next := tree.InOrder()
	it := rb.Iterator()
	bt.Ascend(func(k int) bool {
		v, ok := next()
		if !ok || v != k {
			t.Errorf("btree gave %d, BSTree gave (%d, %v)", k, v, ok)
			return false
		}
		if !it.Next() || it.Key().(int) != k {
			t.Errorf("redblacktree disagrees at %d", k)
			return false
		}
		return true
	})
	if _, ok := next(); ok {
		t.Error("BSTree has extra values")
	}
}
