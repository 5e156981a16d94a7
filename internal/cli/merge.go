package cli

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/matzehuels/initstate/pkg/errors"
	"github.com/matzehuels/initstate/pkg/io"
	"github.com/matzehuels/initstate/pkg/merge"
	"github.com/matzehuels/initstate/pkg/report"
)

// mergeCommand creates the merge command that combines initial states.
func (c *CLI) mergeCommand() *cobra.Command {
	var (
		in     inputFlags
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "merge FILE...",
		Short: "Combine several initial states into one",
		Long: `Concatenate the panels of several initial states in argument order.

Every panel type must be known: built in, listed under "types" in the
configuration, or passed with --allow-type. A single unknown type rejects
the whole merge.

Panels identical to an earlier one are dropped unless --no-dedup is set.
Panels that only share an ID are kept and reported.

Without --output the merged state is written to stdout as JSON (or as
--format). With --output the format follows the file extension.`,
		Example: `  initstate merge base.json extra.yaml -o merged.json
  initstate merge a.json b.json --allow-type MyCustomPlot --format yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMerge(cmd, args, in, output, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: json, yaml, toml (default: from --output, else json)")
	addInputFlags(cmd, &in)

	return cmd
}

func (c *CLI) runMerge(cmd *cobra.Command, files []string, in inputFlags, output, format string) error {
	outFormat, err := mergeFormat(output, format)
	if err != nil {
		return err
	}

	inputs, err := io.ImportFiles(files)
	if err != nil {
		return err
	}

	cfg := c.config()
	var diags report.Collector
	merged, err := merge.Merge(inputs, merge.Options{
		Deduplicate: cfg.Deduplicate,
		Registry:    cfg.Registry(),
		ExtraTypes:  in.allowTypes,
		Reporter:    report.Tee{&diags, report.NewLogReporter(c.Logger)},
	})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := io.Write(merged, &buf, outFormat); err != nil {
		return err
	}
	if err := writeOutput(cmd.OutOrStdout(), output, buf.Bytes()); err != nil {
		return err
	}

	printMergeSummary(c.Err, files, inputs, merged)
	if dups := diags.WithCode(errors.ErrCodeDuplicateID); len(dups) > 0 {
		printWarning(c.Err, "%d panel IDs are used more than once", len(dups))
	}
	if output != "" && output != "-" {
		printSuccess(c.Err, "Merged %d files into %d panels", len(files), len(merged))
		printFile(c.Err, output)
		printNextStep(c.Err, "Preview it", "initstate tiles "+output)
	}
	return nil
}

// mergeFormat picks the output format: explicit, else from the output
// extension, else JSON.
func mergeFormat(output, format string) (io.Format, error) {
	switch {
	case format != "":
		f := io.Format(format)
		if f == "yml" {
			f = io.FormatYAML
		}
		if f != io.FormatJSON && f != io.FormatYAML && f != io.FormatTOML {
			return "", errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (must be json, yaml or toml)", format)
		}
		return f, nil
	case output != "" && output != "-":
		return io.FormatFromPath(output)
	default:
		return io.FormatJSON, nil
	}
}
