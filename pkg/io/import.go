package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/initstate/pkg/errors"
	"github.com/matzehuels/initstate/pkg/panel"
)

// Format names a sequence file format.
type Format string

// Supported sequence file formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath infers the file format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"unsupported file extension %q (want .json, .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// panelDoc is the on-disk shape of a panel.
type panelDoc struct {
	ID              string         `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Type            string         `json:"type" yaml:"type" toml:"type"`
	Width           *int           `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty"`
	SelectionSource string         `json:"selection_source,omitempty" yaml:"selection_source,omitempty" toml:"selection_source,omitempty"`
	Params          map[string]any `json:"params,omitempty" yaml:"params,omitempty" toml:"params,omitempty"`
}

// tomlDoc wraps the panel list, since TOML documents must be tables.
type tomlDoc struct {
	Panels []panelDoc `toml:"panels"`
}

// ReadJSON decodes a JSON list of panels from r.
// It returns an INVALID_INPUT error if the document is not a list of panel
// objects or a panel lacks a type. ReadJSON does not close r.
func ReadJSON(r io.Reader) (panel.Sequence, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.New(errors.ErrCodeInvalidInput, "document is not a list of panels")
	}

	var docs []panelDoc
	if err := json.Unmarshal(trimmed, &docs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode panels")
	}
	return fromDocs(docs)
}

// ReadYAML decodes a YAML list of panels from r.
// The same validation rules as [ReadJSON] apply.
func ReadYAML(r io.Reader) (panel.Sequence, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if err == io.EOF {
			return nil, errors.New(errors.ErrCodeInvalidInput, "document is empty")
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode panels")
	}

	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.SequenceNode {
		return nil, errors.New(errors.ErrCodeInvalidInput, "document is not a list of panels")
	}

	var docs []panelDoc
	if err := node.Decode(&docs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode panels")
	}
	return fromDocs(docs)
}

// ReadTOML decodes a TOML document holding a "panels" array of tables.
// The same validation rules as [ReadJSON] apply.
func ReadTOML(r io.Reader) (panel.Sequence, error) {
	var doc tomlDoc
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode panels")
	}
	if !md.IsDefined("panels") {
		return nil, errors.New(errors.ErrCodeInvalidInput, "document has no panels array")
	}
	return fromDocs(doc.Panels)
}

// Read decodes a sequence in the given format.
func Read(r io.Reader, format Format) (panel.Sequence, error) {
	switch format {
	case FormatJSON:
		return ReadJSON(r)
	case FormatYAML:
		return ReadYAML(r)
	case FormatTOML:
		return ReadTOML(r)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
}

// ImportFile reads the sequence file at path, choosing the decoder from the
// file extension. Errors are wrapped with the path for context.
func ImportFile(path string) (panel.Sequence, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	seq, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seq, nil
}

// ImportFiles reads several sequence files in order.
func ImportFiles(paths []string) ([]panel.Sequence, error) {
	out := make([]panel.Sequence, 0, len(paths))
	for _, p := range paths {
		seq, err := ImportFile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, seq)
	}
	return out, nil
}

func fromDocs(docs []panelDoc) (panel.Sequence, error) {
	seq := make(panel.Sequence, 0, len(docs))
	for i, d := range docs {
		if d.Type == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "panel %d: missing type", i+1)
		}
		if err := errors.ValidatePanelID(d.ID); err != nil {
			return nil, fmt.Errorf("panel %d: %w", i+1, err)
		}
		width := panel.DefaultWidth
		if d.Width != nil {
			width = *d.Width
		}
		params, err := normalizeParams(d.Params)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "panel %d: params", i+1)
		}
		seq = append(seq, panel.Panel{
			ID:              d.ID,
			Type:            d.Type,
			Width:           width,
			SelectionSource: d.SelectionSource,
			Params:          params,
		})
	}
	return seq, nil
}

// normalizeParams gives params the shape encoding/json would produce:
// numbers become float64, nested tables map[string]any, times strings.
// Without it the same panel read from YAML (int) and JSON (float64)
// would not compare equal.
func normalizeParams(params map[string]any) (map[string]any, error) {
	if len(params) == 0 {
		return params, nil
	}
	data, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
