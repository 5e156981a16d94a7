package nodelink

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/matzehuels/initstate/pkg/linkgraph"
	"github.com/matzehuels/initstate/pkg/render"
)

// VisNetworkURL is the script the interactive page loads the network widget
// from.
const VisNetworkURL = "https://unpkg.com/vis-network@9.1.9/standalone/umd/vis-network.min.js"

type visNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Title string `json:"title"`
	Color string `json:"color,omitempty"`
	Font  string `json:"font,omitempty"`
	Shape string `json:"shape"`
}

type visEdge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Arrows string `json:"arrows"`
}

type pageData struct {
	Title     string
	ScriptURL string
	Nodes     []visNode
	Edges     []visEdge
}

var page = template.Must(template.New("network").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.ScriptURL}}"></script>
<style>
  html, body { margin: 0; height: 100%; font-family: sans-serif; }
  #network { width: 100%; height: 100%; }
</style>
</head>
<body>
<div id="network"></div>
<script>
  const nodes = new vis.DataSet({{.Nodes}});
  const edges = new vis.DataSet({{.Edges}});
  new vis.Network(document.getElementById("network"), { nodes, edges }, {
    layout: { hierarchical: { direction: "UD", sortMethod: "directed" } },
    physics: false,
    nodes: { borderWidth: 1, margin: 10 },
    edges: { smooth: true }
  });
</script>
</body>
</html>
`))

// RenderHTML writes a standalone HTML page showing g as an interactive
// network. Hovering a node shows its type and width.
func RenderHTML(g *linkgraph.Graph, opts Options) ([]byte, error) {
	data := pageData{
		Title:     opts.Title,
		ScriptURL: VisNetworkURL,
		Nodes:     make([]visNode, 0, g.NodeCount()),
		Edges:     make([]visEdge, 0, g.EdgeCount()),
	}
	if data.Title == "" {
		data.Title = "Panel links"
	}

	for _, n := range g.Nodes() {
		vn := visNode{
			ID:    n.ID,
			Label: n.ID,
			Title: fmt.Sprintf("%s (width %d)", n.Type, n.Width),
			Shape: "box",
		}
		if n.Color != "" {
			vn.Color = n.Color
			vn.Font = render.TextColor(n.Color)
		}
		data.Nodes = append(data.Nodes, vn)
	}
	for _, e := range g.Edges() {
		data.Edges = append(data.Edges, visEdge{From: e.From, To: e.To, Arrows: "to"})
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}
