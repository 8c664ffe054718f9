// Package orgmode parses Org documents into a parent-linked syntax tree.
//
// The root package is a thin facade over the parser package. Parse
// covers the common case; reach for parser.New directly to control the
// parse granularity or the syntax environment.
package orgmode

import (
	"github.com/robinvdvleuten/orgmode/ast"
	"github.com/robinvdvleuten/orgmode/parser"
)

// Parse parses an Org document down to object granularity using the
// default syntax environment. It always returns a tree rooted at an
// OrgData node, empty input included.
func Parse(input string) *ast.Node {
	return parser.ParseString(input)
}
