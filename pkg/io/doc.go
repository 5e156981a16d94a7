// Package io reads and writes panel sequences, packed grids and link graphs.
//
// # Sequence Files
//
// A sequence file is a list of panel objects. JSON and YAML files hold the
// list at the top level; TOML files, which cannot, use a "panels" array of
// tables:
//
//	[
//	  {"id": "p1", "type": "ReducedDimensionPlot", "width": 6},
//	  {"id": "p2", "type": "FeatureAssayPlot", "width": 8, "selection_source": "p1"}
//	]
//
//	[[panels]]
//	id = "p1"
//	type = "ReducedDimensionPlot"
//	width = 6
//
// # Panel Fields
//
// Required:
//   - type: the panel kind
//
// Optional:
//   - id: identifier (derived from the type when omitted)
//   - width: 1 to 12, defaults to 4
//   - selection_source: ID of the panel driving this one; "---" for none
//   - params: free-form attributes passed through untouched
//
// A document that is not a list of panel objects is rejected with an
// INVALID_INPUT error; widths are not range checked here, the packer does
// that.
//
// # Import and Export
//
// Use [ImportFile] to read a file (the format follows the extension) or
// [ReadJSON], [ReadYAML] and [ReadTOML] to read from an io.Reader.
// [ExportFile], [WriteJSON], [WriteYAML] and [WriteTOML] write sequences
// back out; output re-imports to an equal sequence.
//
// [WriteGridJSON] and [WriteGraphJSON] export packed grids and link graphs
// for external renderers.
package io
