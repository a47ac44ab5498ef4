package markup

import (
	"fmt"

	"github.com/npillmayer/webdoc/render"
)

// NodeList is an ordered collection of nodes, grouping siblings without a
// wrapping element. It may contain the same node more than once.
//
// Rendering a NodeList does not add a level of indentation: the compact
// form concatenates the nodes, the pretty form puts every node on a line
// of its own.
//
// The zero value is an empty list, ready to use.
type NodeList struct {
	nodes []Node
}

// NewNodeList creates a list from nodes. nil nodes are skipped.
func NewNodeList(nodes ...Node) *NodeList {
	l := &NodeList{}
	l.Append(nodes...)
	return l
}

// Len returns the number of nodes.
func (l *NodeList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.nodes)
}

// IsEmpty is true for a list without nodes.
func (l *NodeList) IsEmpty() bool {
	return l.Len() == 0
}

// At returns the node at position i. It panics if i is out of range.
func (l *NodeList) At(i int) Node {
	l.check(i, len(l.nodes))
	return l.nodes[i]
}

// Set replaces the node at position i and returns the node previously
// stored there. It panics if i is out of range. If n is nil or would
// introduce a cycle, the list is left unchanged and Set returns nil.
func (l *NodeList) Set(i int, n Node) Node {
	l.check(i, len(l.nodes))
	if !l.accepts(n) {
		return nil
	}
	old := l.nodes[i]
	l.nodes[i] = n
	return old
}

// Append adds nodes to the end of the list. nil nodes are skipped, as are
// nodes which would introduce a cycle, i.e. the list itself or a node
// containing it. It returns the list to allow for chaining.
func (l *NodeList) Append(nodes ...Node) *NodeList {
	for _, n := range nodes {
		if l.accepts(n) {
			l.nodes = append(l.nodes, n)
		}
	}
	return l
}

// Insert inserts a node at position i, shifting the nodes at i and later
// positions. i may be equal to Len, which appends n.
func (l *NodeList) Insert(i int, n Node) *NodeList {
	return l.InsertAll(i, n)
}

// InsertAll inserts nodes at position i, keeping their order.
func (l *NodeList) InsertAll(i int, nodes ...Node) *NodeList {
	l.check(i, len(l.nodes)+1)
	ins := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if l.accepts(n) {
			ins = append(ins, n)
		}
	}
	if len(ins) == 0 {
		return l
	}
	l.nodes = append(l.nodes[:i], append(ins, l.nodes[i:]...)...)
	return l
}

// RemoveAt deletes the node at position i and returns it.
func (l *NodeList) RemoveAt(i int) Node {
	l.check(i, len(l.nodes))
	n := l.nodes[i]
	l.nodes = append(l.nodes[:i], l.nodes[i+1:]...)
	return n
}

// Remove deletes the first occurence of n. It returns false if n is not
// contained in the list.
func (l *NodeList) Remove(n Node) bool {
	i := l.IndexOf(n)
	if i < 0 {
		return false
	}
	l.RemoveAt(i)
	return true
}

// RemoveAll deletes all occurences of all of nodes. It returns true if the
// list has been changed.
func (l *NodeList) RemoveAll(nodes ...Node) bool {
	return l.filter(func(n Node) bool {
		return !contains(nodes, n)
	})
}

// RetainAll deletes all nodes not contained in nodes. It returns true if
// the list has been changed.
func (l *NodeList) RetainAll(nodes ...Node) bool {
	return l.filter(func(n Node) bool {
		return contains(nodes, n)
	})
}

// Clear removes all nodes.
func (l *NodeList) Clear() {
	l.nodes = nil
}

// IndexOf returns the position of the first occurence of n, or -1.
func (l *NodeList) IndexOf(n Node) int {
	for i, node := range l.Nodes() {
		if node == n {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the position of the last occurence of n, or -1.
func (l *NodeList) LastIndexOf(n Node) int {
	for i := l.Len() - 1; i >= 0; i-- {
		if l.nodes[i] == n {
			return i
		}
	}
	return -1
}

// Contains checks if n is an element of the list.
func (l *NodeList) Contains(n Node) bool {
	return l.IndexOf(n) >= 0
}

// ContainsAll checks if all of nodes are elements of the list.
func (l *NodeList) ContainsAll(nodes ...Node) bool {
	for _, n := range nodes {
		if !l.Contains(n) {
			return false
		}
	}
	return true
}

// Slice returns a new list with the nodes from position i up to, but
// excluding, position j.
func (l *NodeList) Slice(i, j int) *NodeList {
	if i < 0 || j > l.Len() || i > j {
		panic(fmt.Sprintf("markup: slice [%d:%d] out of range for node list of length %d", i, j, l.Len()))
	}
	return NewNodeList(l.nodes[i:j]...)
}

// Nodes returns a copy of the nodes of the list.
func (l *NodeList) Nodes() []Node {
	if l == nil {
		return nil
	}
	nodes := make([]Node, len(l.nodes))
	copy(nodes, l.nodes)
	return nodes
}

// Render concatenates the compact renderings of all nodes.
func (l *NodeList) Render() string {
	return render.JoinCompact(l.Nodes())
}

// RenderPretty joins the pretty renderings of all nodes with newlines.
func (l *NodeList) RenderPretty() string {
	return render.JoinPretty(l.Nodes(), "\n")
}

func (l *NodeList) String() string {
	return l.Render()
}

func (l *NodeList) filter(keep func(Node) bool) bool {
	if l.Len() == 0 {
		return false
	}
	kept := l.nodes[:0]
	for _, n := range l.nodes {
		if keep(n) {
			kept = append(kept, n)
		}
	}
	changed := len(kept) != len(l.nodes)
	for i := len(kept); i < len(l.nodes); i++ {
		l.nodes[i] = nil
	}
	l.nodes = kept
	return changed
}

// accepts checks if n may become an element of the list. Markup nodes form
// a tree, so n must not contain l.
func (l *NodeList) accepts(n Node) bool {
	if n == nil {
		return false
	}
	if reaches(n, l) {
		tracer().Debugf("markup: refusing to insert %T into its own subtree", n)
		return false
	}
	return true
}

// reaches checks if target is n or one of its descendants.
func reaches(n, target Node) bool {
	if n == target {
		return true
	}
	switch x := n.(type) {
	case *ContentTag:
		return reaches(&x.content, target)
	case *NodeList:
		for _, ch := range x.nodes {
			if reaches(ch, target) {
				return true
			}
		}
	}
	return false
}

func (l *NodeList) check(i, limit int) {
	if i < 0 || i >= limit {
		panic(fmt.Sprintf("markup: index %d out of range for node list of length %d", i, l.Len()))
	}
}

func contains(nodes []Node, n Node) bool {
	for _, node := range nodes {
		if node == n {
			return true
		}
	}
	return false
}

var _ Node = &NodeList{}
