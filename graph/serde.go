package graph

import (
	"bytes"
	"encoding/json"
	"fmt"

	"oss.terrastruct.com/xdefer"
)

// Decode parses the JSON interchange format. Edge endpoints that are not
// declared as nodes are created as rectangles labeled with their id.
func Decode(b []byte) (g *Graph, err error) {
	defer xdefer.Errorf(&err, "failed to decode graph")

	var sg serializedGraph
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sg); err != nil {
		return nil, err
	}

	g = New(sg.Direction)
	for _, sn := range sg.Nodes {
		n, err := g.AddNode(sn.ID, sn.Label, sn.Shape)
		if err != nil {
			return nil, err
		}
		n.Terminal = sn.Terminal
		n.Fill = sn.Fill
	}
	for i, se := range sg.Edges {
		if se.From == "" || se.To == "" {
			return nil, fmt.Errorf("edge %d is missing an endpoint", i)
		}
		g.AddEdge(se.From, se.To, se.Kind, se.Label)
	}
	for _, sc := range sg.Containers {
		g.AddContainer(sc.Title, sc.Members...)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

type serializedGraph Graph

func (g *Graph) MarshalJSON() ([]byte, error) {
	sg := serializedGraph(*g)
	if sg.Nodes == nil {
		sg.Nodes = []*Node{}
	}
	if sg.Edges == nil {
		sg.Edges = []*Edge{}
	}
	return json.Marshal(sg)
}
