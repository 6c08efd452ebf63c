package Trees

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"
	"golang.org/x/exp/constraints"
)

// Render writes the tree rooting at root as indented text, one node per line.
// Children are tagged L or R since a lone child could be either. An empty tree
// renders as nothing. Recursive.
func Render[T constraints.Ordered](w io.Writer, root *Node[T]) error {
	if root == nil {
		return nil
	}
	var buf bytes.Buffer
	// lipgloss pads every line to the widest one.
	for _, line := range strings.Split(textTree(root, "").String(), "\n") {
		buf.WriteString(strings.TrimRight(line, " "))
		buf.WriteByte('\n')
	}
	_, err := buf.WriteTo(w)
	return err
}

// textTree mirrors n as a lipgloss tree whose labels are tag followed by the value.
func textTree[T constraints.Ordered](n *Node[T], tag string) *tree.Tree {
	t := tree.Root(tag + fmt.Sprint(n.v))
	if n.l != nil {
		t.Child(textTree(n.l, "L: "))
	}
	if n.r != nil {
		t.Child(textTree(n.r, "R: "))
	}
	return t
}

// WriteDot writes the tree rooting at root as a Graphviz digraph. Nodes are
// numbered in pre-order and edges are labeled with the side of the child.
func WriteDot[T constraints.Ordered](w io.Writer, root *Node[T]) error {
	var buf bytes.Buffer
	buf.WriteString("digraph tree {\n")
	if root != nil {
		id := 0
		var walk func(n *Node[T]) int
		walk = func(n *Node[T]) int {
			me := id
			id++
			fmt.Fprintf(&buf, "\tn%d [label=%s];\n", me, strconv.Quote(fmt.Sprint(n.v)))
			if n.l != nil {
				fmt.Fprintf(&buf, "\tn%d -> n%d [label=\"L\"];\n", me, walk(n.l))
			}
			if n.r != nil {
				fmt.Fprintf(&buf, "\tn%d -> n%d [label=\"R\"];\n", me, walk(n.r))
			}
			return me
		}
		walk(root)
	}
	buf.WriteString("}\n")
	_, err := buf.WriteTo(w)
	return err
}
