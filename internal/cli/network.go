package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/initstate/pkg/io"
	"github.com/matzehuels/initstate/pkg/pipeline"
	"github.com/matzehuels/initstate/pkg/render"
	"github.com/matzehuels/initstate/pkg/render/nodelink"
)

// Network formats handled by the CLI on top of the render formats.
const (
	networkDOT  = "dot"
	networkPNG  = "png"
	networkJSON = "json"
)

// networkCommand creates the network command that draws selection links.
func (c *CLI) networkCommand() *cobra.Command {
	var (
		in      inputFlags
		output  string
		format  string
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "network FILE...",
		Short: "Draw the selection-link graph of an initial state",
		Long: `Draw the directed graph of selection links: an edge A -> B means panel A
drives the selection of panel B.

Formats:
  static       SVG rendered with Graphviz (default, cached)
  interactive  self-contained HTML page with a vis-network widget
  none         build the graph and print its size only
  dot          Graphviz DOT source
  png          PNG rendered with Graphviz
  json         nodes and edges as JSON

Links to panels that do not exist are dropped with a warning.`,
		Example: `  initstate network state.json -o links.svg
  initstate network a.json b.json --format interactive -o links.html`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = networkFormatFor(output)
			}
			if format == "" {
				format = c.config().Render.Format
			}
			return c.runNetwork(cmd, args, in, output, strings.ToLower(format), refresh)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: static, interactive, none, dot, png, json")
	cmd.Flags().Bool("detailed", false, "show type, width and parameters in node labels")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "re-render even if a cached result exists")
	addInputFlags(cmd, &in)

	return cmd
}

func (c *CLI) runNetwork(cmd *cobra.Command, files []string, in inputFlags, output, format string, refresh bool) error {
	runner, err := c.newRunner()
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Cache.Close()

	opts := c.pipelineOptions(files, in)
	opts.Refresh = refresh
	opts.Format = render.FormatNone
	if f, err := render.ParseFormat(format); err == nil {
		opts.Format = f
	} else if format != networkDOT && format != networkPNG && format != networkJSON {
		return err
	}

	var spinner *Spinner
	if opts.Format == render.FormatStatic || format == networkPNG {
		spinner = c.startSpinner(cmd, "Rendering network...")
	}
	data, res, err := renderNetwork(cmd.Context(), runner, opts, format)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}
	g := res.Graph

	if data != nil {
		if err := writeOutput(cmd.OutOrStdout(), output, data); err != nil {
			return err
		}
	}

	if data == nil || (output != "" && output != "-") {
		printSuccess(c.Err, "Built link graph")
		printStats(c.Err, []string{
			fmt.Sprintf("%d panels", g.NodeCount()),
			fmt.Sprintf("%d links", g.EdgeCount()),
		}, cachedStatus(opts.Format, res.CacheInfo.NetworkHit))
		if data != nil {
			printFile(c.Err, output)
		}
	}
	return nil
}

// renderNetwork runs the pipeline and returns the bytes for format. Data is
// nil for render.FormatNone.
func renderNetwork(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options, format string) ([]byte, *pipeline.Result, error) {
	res, err := runner.Execute(ctx, opts)
	if err != nil {
		return nil, nil, err
	}
	g := res.Graph

	switch format {
	case networkDOT:
		return []byte(nodelink.ToDOT(g, nodelink.Options{Detailed: opts.Detailed})), res, nil
	case networkPNG:
		png, err := nodelink.RenderPNG(ctx, nodelink.ToDOT(g, nodelink.Options{Detailed: opts.Detailed}))
		if err != nil {
			return nil, nil, fmt.Errorf("render png: %w", err)
		}
		return png, res, nil
	case networkJSON:
		var buf bytes.Buffer
		if err := io.WriteGraphJSON(g, &buf); err != nil {
			return nil, nil, err
		}
		return buf.Bytes(), res, nil
	}
	return res.Network.Data, res, nil
}

// networkFormatFor infers the format from an output file extension.
func networkFormatFor(output string) string {
	switch extFormat(output) {
	case "svg":
		return string(render.FormatStatic)
	case "html", "htm":
		return string(render.FormatInteractive)
	case "dot", "gv":
		return networkDOT
	case "png":
		return networkPNG
	case "json":
		return networkJSON
	}
	return ""
}

// cachedStatus returns the cache status to print, or nil for formats that
// never touch the cache.
func cachedStatus(f render.Format, hit bool) *bool {
	if f != render.FormatStatic {
		return nil
	}
	return &hit
}
