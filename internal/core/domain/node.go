package domain

import (
	"fmt"
	"io"
	"strings"
)

// Node is one node of the instantiated geometry tree.
type Node struct {
	Name     string
	Args     []string
	Children []*Node
}

// NewRootNode creates the fresh root a file's instantiation collects its
// children under.
func NewRootNode() *Node {
	return &Node{Name: "root"}
}

// Dump writes an indented tree representation of the node to w.
func (n *Node) Dump(w io.Writer) {
	n.dump(w, "")
}

func (n *Node) dump(w io.Writer, indent string) {
	if len(n.Args) > 0 {
		fmt.Fprintf(w, "%s%s(%s)\n", indent, n.Name, strings.Join(n.Args, ", "))
	} else {
		fmt.Fprintf(w, "%s%s\n", indent, n.Name)
	}
	for _, child := range n.Children {
		child.dump(w, indent+"  ")
	}
}

// Count returns the number of nodes in the tree rooted at n, including n.
func (n *Node) Count() int {
	count := 1
	for _, child := range n.Children {
		count += child.Count()
	}
	return count
}
