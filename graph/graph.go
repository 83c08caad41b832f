// Package graph is the input model of the renderer: an ordered set of nodes,
// edges and containers plus a flow direction.
//
// Every collection is a slice in insertion order. The id index exists only for
// lookups and is never iterated.
package graph

import (
	"errors"
	"fmt"
	"strings"
)

var ErrDuplicateNode = errors.New("duplicate node")

type Graph struct {
	Direction  Direction    `json:"direction"`
	Nodes      []*Node      `json:"nodes"`
	Edges      []*Edge      `json:"edges"`
	Containers []*Container `json:"containers,omitempty"`

	index map[string]int
}

type Node struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Shape    Shape    `json:"shape"`
	Terminal Terminal `json:"terminal,omitempty"`
	// Fill is a CSS color only the colorizer reads.
	Fill string `json:"fill,omitempty"`
}

type Edge struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Kind  EdgeKind `json:"kind"`
	Label string   `json:"label,omitempty"`
}

type Container struct {
	Title   string   `json:"title"`
	Members []string `json:"members"`
}

func New(dir Direction) *Graph {
	return &Graph{
		Direction: dir,
		index:     make(map[string]int),
	}
}

func (g *Graph) reindex() {
	if g.index != nil && len(g.index) == len(g.Nodes) {
		return
	}
	g.index = make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		if _, ok := g.index[n.ID]; !ok {
			g.index[n.ID] = i
		}
	}
}

// Node returns the node with the given id or nil.
func (g *Graph) Node(id string) *Node {
	g.reindex()
	i, ok := g.index[id]
	if !ok {
		return nil
	}
	return g.Nodes[i]
}

// NodeIndex returns the position of id in Nodes or -1.
func (g *Graph) NodeIndex(id string) int {
	g.reindex()
	i, ok := g.index[id]
	if !ok {
		return -1
	}
	return i
}

func (g *Graph) HasNode(id string) bool {
	return g.NodeIndex(id) >= 0
}

// AddNode appends a node. An empty label defaults to the id.
func (g *Graph) AddNode(id, label string, shape Shape) (*Node, error) {
	if id == "" {
		return nil, errors.New("node id must not be empty")
	}
	if g.HasNode(id) {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}
	if label == "" {
		label = id
	}
	n := &Node{
		ID:    id,
		Label: label,
		Shape: shape,
	}
	g.index[id] = len(g.Nodes)
	g.Nodes = append(g.Nodes, n)
	return n, nil
}

func (g *Graph) ensureNode(id string) {
	if !g.HasNode(id) {
		g.AddNode(id, id, Rectangle)
	}
}

// AddEdge appends an edge, creating rectangle nodes for endpoints not seen yet.
func (g *Graph) AddEdge(from, to string, kind EdgeKind, label string) *Edge {
	g.ensureNode(from)
	g.ensureNode(to)
	e := &Edge{
		From:  from,
		To:    to,
		Kind:  kind,
		Label: label,
	}
	g.Edges = append(g.Edges, e)
	return e
}

func (g *Graph) AddContainer(title string, members ...string) *Container {
	c := &Container{
		Title:   title,
		Members: append([]string(nil), members...),
	}
	g.Containers = append(g.Containers, c)
	return c
}

// NodeIDs returns every node id in insertion order.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		ids = append(ids, n.ID)
	}
	return ids
}

// Successors returns the targets of id's out-edges in edge order.
// A target reached by several edges appears once.
func (g *Graph) Successors(id string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, e := range g.Edges {
		if e.From != id {
			continue
		}
		if _, ok := seen[e.To]; ok {
			continue
		}
		seen[e.To] = struct{}{}
		out = append(out, e.To)
	}
	return out
}

// Predecessors returns the sources of id's in-edges in edge order.
func (g *Graph) Predecessors(id string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, e := range g.Edges {
		if e.To != id {
			continue
		}
		if _, ok := seen[e.From]; ok {
			continue
		}
		seen[e.From] = struct{}{}
		out = append(out, e.From)
	}
	return out
}

// ValidEdges returns the edges whose endpoints both exist.
func (g *Graph) ValidEdges() []*Edge {
	out := make([]*Edge, 0, len(g.Edges))
	for _, e := range g.Edges {
		if g.HasNode(e.From) && g.HasNode(e.To) {
			out = append(out, e)
		}
	}
	return out
}

// ResolvedContainers returns the containers with unknown members dropped and
// each node kept only in the first container that lists it. Containers left
// without members are omitted.
func (g *Graph) ResolvedContainers() []*Container {
	claimed := make(map[string]struct{})
	var out []*Container
	for _, c := range g.Containers {
		rc := &Container{Title: c.Title}
		for _, m := range c.Members {
			if !g.HasNode(m) {
				continue
			}
			if _, ok := claimed[m]; ok {
				continue
			}
			claimed[m] = struct{}{}
			rc.Members = append(rc.Members, m)
		}
		if len(rc.Members) > 0 {
			out = append(out, rc)
		}
	}
	return out
}

type ValidationError struct {
	Errors []string
}

func (ve ValidationError) Error() string {
	return strings.Join(ve.Errors, "\n")
}

// Validate reports edges and container members that reference unknown ids.
func (g *Graph) Validate() error {
	var ve ValidationError
	seen := make(map[string]struct{})
	for i, n := range g.Nodes {
		if n.ID == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("node %d has an empty id", i))
			continue
		}
		if _, ok := seen[n.ID]; ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%v: %q", ErrDuplicateNode, n.ID))
		}
		seen[n.ID] = struct{}{}
	}
	for i, e := range g.Edges {
		if !g.HasNode(e.From) {
			ve.Errors = append(ve.Errors, fmt.Sprintf("edge %d (%s %s %s) references unknown node %q", i, e.From, e.Kind, e.To, e.From))
		}
		if !g.HasNode(e.To) {
			ve.Errors = append(ve.Errors, fmt.Sprintf("edge %d (%s %s %s) references unknown node %q", i, e.From, e.Kind, e.To, e.To))
		}
	}
	for _, c := range g.Containers {
		for _, m := range c.Members {
			if !g.HasNode(m) {
				ve.Errors = append(ve.Errors, fmt.Sprintf("container %q references unknown node %q", c.Title, m))
			}
		}
	}
	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}
