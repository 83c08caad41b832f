// Package asciiroute routes edges orthogonally between laid out nodes and
// draws them with box-drawing glyphs.
//
// A Route is a list of drawing primitives rather than a polyline: straight runs
// of line glyphs, marks where lines turn or meet, one optional arrowhead and
// the label text. Structures shared by a group of edges, such as the bar of a
// split, are attached to the first route of the group only.
package asciiroute

import (
	"oss.terrastruct.com/textgraph/graph"
	"oss.terrastruct.com/textgraph/lib/geo"
)

// Run is a straight line of cells between two inclusive endpoints.
type Run struct {
	From geo.Point `json:"from"`
	To   geo.Point `json:"to"`
	// Horizontal is set for runs along the canvas rows. A single cell run
	// has no other way to tell its axis.
	Horizontal bool           `json:"horizontal"`
	Kind       graph.EdgeKind `json:"kind"`
}

// Mark is a corner or junction: the cell connects in every direction of Dirs.
type Mark struct {
	At   geo.Point      `json:"at"`
	Dirs geo.Dirs       `json:"dirs"`
	Kind graph.EdgeKind `json:"kind"`
}

type Arrow struct {
	At geo.Point `json:"at"`
	// Travel is the direction the edge moves when it enters At.
	Travel geo.Dirs       `json:"travel"`
	Kind   graph.EdgeKind `json:"kind"`
}

// Text is one line of an edge label starting at At.
type Text struct {
	At   geo.Point `json:"at"`
	Text string    `json:"text"`
}

type Route struct {
	Edge      *graph.Edge `json:"edge"`
	Waypoints []geo.Point `json:"waypoints"`
	// Junction is where a split leaves its shared source.
	Junction *geo.Point `json:"junction,omitempty"`
	// MergeJunction is where a merge joins before its shared target.
	MergeJunction *geo.Point `json:"mergeJunction,omitempty"`
	GroupIndex    int        `json:"groupIndex"`
	GroupSize     int        `json:"groupSize"`

	Runs  []Run  `json:"runs,omitempty"`
	Marks []Mark `json:"marks,omitempty"`
	Arrow *Arrow `json:"arrow,omitempty"`
	Label []Text `json:"label,omitempty"`
}

// Translate moves every primitive of r by dx, dy.
func (r *Route) Translate(dx, dy int) {
	for i := range r.Waypoints {
		r.Waypoints[i] = r.Waypoints[i].Add(dx, dy)
	}
	if r.Junction != nil {
		j := r.Junction.Add(dx, dy)
		r.Junction = &j
	}
	if r.MergeJunction != nil {
		j := r.MergeJunction.Add(dx, dy)
		r.MergeJunction = &j
	}
	for i := range r.Runs {
		r.Runs[i].From = r.Runs[i].From.Add(dx, dy)
		r.Runs[i].To = r.Runs[i].To.Add(dx, dy)
	}
	for i := range r.Marks {
		r.Marks[i].At = r.Marks[i].At.Add(dx, dy)
	}
	if r.Arrow != nil {
		r.Arrow.At = r.Arrow.At.Add(dx, dy)
	}
	for i := range r.Label {
		r.Label[i].At = r.Label[i].At.Add(dx, dy)
	}
}

// Overhang returns how many columns and rows the labels of routes reach past
// the left and top edges of the canvas.
func Overhang(routes []*Route) (dx, dy int) {
	for _, r := range routes {
		for _, t := range r.Label {
			dx = geo.Max(dx, -t.At.X)
			dy = geo.Max(dy, -t.At.Y)
		}
	}
	return dx, dy
}
