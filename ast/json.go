package ast

import "encoding/json"

// nodeJSON mirrors Node for serialization. The parent link stays out so
// the tree encodes without cycles.
type nodeJSON struct {
	Kind            string  `json:"kind"`
	Data            any     `json:"data,omitempty"`
	Location        [2]int  `json:"location"`
	ContentLocation *[2]int `json:"contentLocation,omitempty"`
	PostBlank       int     `json:"postBlank,omitempty"`
	Children        []*Node `json:"children,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (n *Node) MarshalJSON() ([]byte, error) {
	out := nodeJSON{
		Kind:      n.Kind.String(),
		Data:      n.Data,
		Location:  [2]int{n.Location.Start, n.Location.End},
		PostBlank: n.PostBlank,
		Children:  n.Children,
	}
	if n.ContentLocation != nil {
		cl := [2]int{n.ContentLocation.Start, n.ContentLocation.End}
		out.ContentLocation = &cl
	}
	return json.Marshal(out)
}
