package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/initstate/pkg/io"
	"github.com/matzehuels/initstate/pkg/render/tiles"
	"github.com/matzehuels/initstate/pkg/report"
)

// Tile output formats.
const (
	tilesSVG  = "svg"
	tilesJSON = "json"
	tilesTerm = "term"
)

// tilesCommand creates the tiles command that packs panels into the grid.
func (c *CLI) tilesCommand() *cobra.Command {
	var (
		in     inputFlags
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "tiles FILE...",
		Short: "Pack panels into the 12-column grid and draw it",
		Long: `Pack the panels of one or more initial states into rows of 12 columns.

Several files are merged first. Panels are placed in order; a panel that
does not fit the rest of the current row starts a new one, and earlier gaps
are never backfilled.

Without --output the grid is drawn in the terminal. With --output the
format follows the file extension (.svg or .json) unless --format is set.`,
		Example: `  initstate tiles state.json
  initstate tiles a.yaml b.yaml -o preview.svg --invert`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = tilesTerm
				if output != "" && output != "-" {
					format = tilesSVG
					if extFormat(output) == tilesJSON {
						format = tilesJSON
					}
				}
			}
			return c.runTiles(cmd, args, in, output, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: svg, json, term")
	cmd.Flags().Bool("invert", false, "draw the first row at the bottom")
	cmd.Flags().Bool("legend", true, "add a legend of panel types")
	addInputFlags(cmd, &in)

	return cmd
}

func (c *CLI) runTiles(cmd *cobra.Command, files []string, in inputFlags, output, format string) error {
	runner, err := c.newRunner()
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Cache.Close()

	opts := c.pipelineOptions(files, in)
	opts.Reporter = report.NewLogReporter(c.Logger)
	if err := opts.Validate(); err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	seq, err := runner.Load(cmd.Context(), opts)
	if err != nil {
		return err
	}
	grid, _, err := runner.Layout(seq, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("packed %d panels", len(seq)))

	var data []byte
	switch format {
	case tilesSVG:
		data = runner.RenderTiles(grid, opts)
	case tilesJSON:
		var buf bytes.Buffer
		if err := io.WriteGridJSON(grid, &buf); err != nil {
			return err
		}
		data = buf.Bytes()
	case tilesTerm:
		var tileOpts []tiles.Option
		if opts.InvertRows {
			tileOpts = append(tileOpts, tiles.WithInvertRows())
		}
		if opts.Legend {
			tileOpts = append(tileOpts, tiles.WithLegend())
		}
		data = []byte(tiles.RenderTerminal(grid, tileOpts...) + "\n")
	default:
		return fmt.Errorf("invalid format: %s (must be 'svg', 'json' or 'term')", format)
	}

	if err := writeOutput(cmd.OutOrStdout(), output, data); err != nil {
		return err
	}
	if output != "" && output != "-" {
		printSuccess(c.Err, "Packed %d panels into %d rows", len(seq), grid.Rows)
		printFile(c.Err, output)
	}
	return nil
}
