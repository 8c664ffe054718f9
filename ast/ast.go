// Package ast defines the Org syntax tree: the node kinds, their
// payload data, the classification predicates and the object
// containment rules the parser dispatches on.
//
// A parse tree owns its nodes top-down through Children; Parent is a
// plain back-reference. Node locations are byte intervals into the
// parsed buffer, so node text is always recovered by slicing, never by
// copying.
package ast

import "github.com/robinvdvleuten/orgmode/cursor"

// Node is a single parse tree node.
type Node struct {
	// Parent is the enclosing node, nil for the root.
	Parent *Node

	// Children in document order.
	Children []*Node

	// Kind discriminates the node. Containment and classification
	// depend on it alone.
	Kind Kind

	// Data holds the kind-specific payload (*HeadlineData for a
	// Headline, KeywordData for a Keyword, a plain string for
	// PlainText). Nil for kinds that carry no payload.
	Data any

	// Location spans the whole construct, including the affiliated
	// keywords above it and the trailing blank lines it owns. The End
	// of one node equals the Start of its next sibling.
	Location cursor.Interval

	// ContentLocation bounds the nested elements or objects, nil for
	// leaf nodes.
	ContentLocation *cursor.Interval

	// PostBlank counts the blank lines absorbed at the node's end.
	PostBlank int

	// Affiliated holds keyword metadata attached above the node.
	Affiliated *Affiliated
}

// NewRoot creates the synthetic root of a parse tree.
func NewRoot() *Node {
	return &Node{Kind: OrgData}
}

// AppendChild adds child at the end of n's children and sets the
// child's parent.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// SetChildren replaces n's children, reparenting each one.
func (n *Node) SetChildren(children []*Node) {
	for _, c := range children {
		c.Parent = n
	}
	n.Children = children
}

// Text returns the raw source text covered by the node.
func (n *Node) Text(source string) string {
	return n.Location.Text(source)
}

// ContentText returns the source text of the node's contents, or ""
// for leaf nodes.
func (n *Node) ContentText(source string) string {
	if n.ContentLocation == nil {
		return ""
	}
	return n.ContentLocation.Text(source)
}

// Walk visits n and every descendant in document order. Returning
// false from fn prunes the subtree below the current node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
