package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/initstate/pkg/layout"
	"github.com/matzehuels/initstate/pkg/linkgraph"
	"github.com/matzehuels/initstate/pkg/panel"
)

func toDocs(seq panel.Sequence) []panelDoc {
	docs := make([]panelDoc, len(seq))
	for i, p := range seq {
		width := p.Width
		docs[i] = panelDoc{
			ID:              p.ID,
			Type:            p.Type,
			Width:           &width,
			SelectionSource: p.SelectionSource,
			Params:          p.Params,
		}
	}
	return docs
}

// WriteJSON encodes seq as an indented JSON list and writes it to w.
func WriteJSON(seq panel.Sequence, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toDocs(seq)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteYAML encodes seq as a YAML list and writes it to w.
func WriteYAML(seq panel.Sequence, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toDocs(seq)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}

// WriteTOML encodes seq as a TOML "panels" array of tables.
func WriteTOML(seq panel.Sequence, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(tomlDoc{Panels: toDocs(seq)}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Write encodes seq in the given format.
func Write(seq panel.Sequence, w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(seq, w)
	case FormatYAML:
		return WriteYAML(seq, w)
	case FormatTOML:
		return WriteTOML(seq, w)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// ExportFile writes seq to path in the format implied by its extension.
func ExportFile(seq panel.Sequence, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(seq, f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteGridJSON writes a packed grid as indented JSON.
func WriteGridJSON(g layout.Grid, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

type graphDoc struct {
	Nodes []graphNode `json:"nodes"`
	Edges []graphEdge `json:"edges"`
}

type graphNode struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Color string `json:"color,omitempty"`
	Width int    `json:"width,omitempty"`
}

type graphEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WriteGraphJSON writes a link graph as {"nodes": [...], "edges": [...]}.
// Nodes keep insertion order, which is panel order.
func WriteGraphJSON(g *linkgraph.Graph, w io.Writer) error {
	out := graphDoc{
		Nodes: make([]graphNode, 0, g.NodeCount()),
		Edges: make([]graphEdge, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		out.Nodes = append(out.Nodes, graphNode{ID: n.ID, Type: n.Type, Color: n.Color, Width: n.Width})
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, graphEdge{From: e.From, To: e.To})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
