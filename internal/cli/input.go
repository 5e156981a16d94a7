package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// inputFlags are the flags shared by every command that reads sequence
// files. --no-dedup is read through the configuration layer.
type inputFlags struct {
	allowTypes []string
}

func addInputFlags(cmd *cobra.Command, in *inputFlags) {
	cmd.Flags().Bool("no-dedup", false, "keep panels identical to an earlier one")
	cmd.Flags().StringArrayVar(&in.allowTypes, "allow-type", nil, "also accept this panel type (repeatable)")
}

// writeOutput writes data to path, or to w when path is empty or "-".
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := w.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// extFormat returns the lowercase extension of path without the dot.
func extFormat(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// startSpinner starts a spinner on c.Err when it is an interactive terminal.
func (c *CLI) startSpinner(cmd *cobra.Command, message string) *Spinner {
	w := io.Discard
	if termenv.NewOutput(c.Err).EnvColorProfile() != termenv.Ascii {
		w = c.Err
	}
	s := newSpinner(cmd.Context(), w, message)
	s.Start()
	return s
}
