package linkgraph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Metadata stores arbitrary key-value pairs attached to nodes or the graph.
// Metadata maps are never nil after a node is added.
type Metadata map[string]any

// Node is one panel in the link graph.
type Node struct {
	ID    string   // Panel identifier
	Type  string   // Panel type
	Color string   // Registry color; empty when the type is unknown
	Width int      // Panel width, kept for renderers that size nodes
	Meta  Metadata // Arbitrary metadata (never nil after AddNode)
}

// Edge is a selection link. From is the panel making selections, To the
// panel receiving them.
type Edge struct {
	From string
	To   string
}

// IsSelfLoop reports whether the edge links a panel to itself.
func (e Edge) IsSelfLoop() bool { return e.From == e.To }

// Graph is a directed graph of panels and selection links. Unlike a DAG it
// accepts cycles and self-loops, since selection links come from arbitrary
// user configuration.
//
// The zero value is not usable; use New. Graph is not safe for concurrent
// modification.
type Graph struct {
	nodes    map[string]*Node
	order    []string // insertion order of node IDs
	edges    []Edge
	outgoing map[string][]string
	incoming map[string][]string
	meta     Metadata
}

// New creates an empty graph with optional graph-level metadata.
func New(meta Metadata) *Graph {
	if meta == nil {
		meta = Metadata{}
	}
	return &Graph{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
		meta:     meta,
	}
}

// Meta returns the graph-level metadata map. It is never nil.
func (g *Graph) Meta() Metadata { return g.meta }

// AddNode adds a node. Returns ErrInvalidNodeID for an empty ID and
// ErrDuplicateNodeID if the ID is taken.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	if n.Meta == nil {
		n.Meta = Metadata{}
	}
	node := &n
	g.nodes[node.ID] = node
	g.order = append(g.order, node.ID)
	return nil
}

// AddEdge adds a directed edge between two existing nodes. Self-loops are
// allowed. Adding an edge that already exists is a no-op.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	if g.HasEdge(e.From, e.To) {
		return nil
	}
	g.edges = append(g.edges, e)
	g.outgoing[e.From] = append(g.outgoing[e.From], e.To)
	g.incoming[e.To] = append(g.incoming[e.To], e.From)
	return nil
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	return slices.Contains(g.outgoing[from], to)
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order. The pointers refer to the
// nodes held by the graph.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, len(g.order))
	for i, id := range g.order {
		nodes[i] = g.nodes[id]
	}
	return nodes
}

// NodeIDs returns all node IDs in insertion order.
func (g *Graph) NodeIDs() []string { return slices.Clone(g.order) }

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Children returns the IDs of panels receiving selections from id.
// The returned slice should be treated as read-only.
func (g *Graph) Children(id string) []string { return g.outgoing[id] }

// Parents returns the IDs of panels sending selections to id.
// The returned slice should be treated as read-only.
func (g *Graph) Parents(id string) []string { return g.incoming[id] }

// Sources returns the nodes without incoming edges, in insertion order.
// These are the panels that drive selections without receiving any.
func (g *Graph) Sources() []*Node {
	var out []*Node
	for _, id := range g.order {
		if len(g.incoming[id]) == 0 {
			out = append(out, g.nodes[id])
		}
	}
	return out
}

// Isolated returns the nodes with neither incoming nor outgoing edges.
func (g *Graph) Isolated() []*Node {
	var out []*Node
	for _, id := range g.order {
		if len(g.incoming[id]) == 0 && len(g.outgoing[id]) == 0 {
			out = append(out, g.nodes[id])
		}
	}
	return out
}

// HasCycle reports whether following selection links can lead back to the
// starting panel. Self-loops count as cycles.
func (g *Graph) HasCycle() bool {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(g.nodes))
	var found bool

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, child := range g.outgoing[id] {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				found = true
			}
			if found {
				return
			}
		}
		color[id] = black
	}

	for _, id := range g.order {
		if color[id] == white {
			dfs(id)
			if found {
				return true
			}
		}
	}
	return false
}
