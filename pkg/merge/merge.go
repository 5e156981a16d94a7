// Package merge combines several panel sequences into one initial state.
//
// Inputs are concatenated in order, validated against the allowed panel
// types and, by default, stripped of panels identical to an earlier one:
//
//	merged, err := merge.Merge([]panel.Sequence{a, b}, merge.DefaultOptions())
//
// Validation is all or nothing. If any panel has an unknown type the merge
// fails and no sequence is returned. Panels that only share an identifier
// are not duplicates; they are kept and reported.
package merge

import (
	"slices"
	"strings"

	"github.com/matzehuels/initstate/pkg/errors"
	"github.com/matzehuels/initstate/pkg/panel"
	"github.com/matzehuels/initstate/pkg/report"
)

// Options configures Merge.
type Options struct {
	// Deduplicate drops panels equal to an earlier panel (first wins).
	Deduplicate bool
	// Registry lists the allowed panel types.
	Registry panel.Registry
	// ExtraTypes are additionally allowed type names.
	ExtraTypes []string
	// Reporter receives the merge summary. Nil discards it.
	Reporter report.Reporter
}

// DefaultOptions returns options that deduplicate and allow the built-in
// panel types.
func DefaultOptions() Options {
	return Options{
		Deduplicate: true,
		Registry:    panel.DefaultRegistry(),
	}
}

// Merge concatenates inputs, validates panel types and optionally removes
// duplicate panels. The inputs are not modified.
//
// A nil input is not a sequence and fails with [errors.ErrCodeInvalidInput];
// an empty, non-nil sequence is fine. Panels with types outside
// Registry ∪ ExtraTypes fail the merge with an [errors.PanelError] coded
// [errors.ErrCodeUnrecognizedType].
//
// Counts (panels per input, duplicates removed, final size) are reported
// through opts.Reporter.
func Merge(inputs []panel.Sequence, opts Options) (panel.Sequence, error) {
	rep := report.OrDiscard(opts.Reporter)

	for i, in := range inputs {
		if in == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "input %d is not a panel sequence", i+1)
		}
	}

	allowed := opts.Registry.WithTypes(opts.ExtraTypes...)

	total := 0
	for _, in := range inputs {
		total += len(in)
	}
	combined := make(panel.Sequence, 0, total)
	for i, in := range inputs {
		report.Infof(rep, "input %d: %d panels", i+1, len(in))
		combined = append(combined, in.Clone()...)
	}

	if err := checkTypes(combined, allowed); err != nil {
		return nil, err
	}

	removed := 0
	if opts.Deduplicate {
		combined, removed = Deduplicate(combined)
		report.Infof(rep, "removed %d duplicate panels", removed)
	}

	for _, id := range combined.DuplicateIDs() {
		report.Warn(rep, errors.ErrCodeDuplicateID, id,
			"panel id used by distinct panels; kept all of them")
	}

	report.Infof(rep, "merged %d inputs into %d panels", len(inputs), len(combined))
	return combined, nil
}

// Deduplicate returns seq without panels equal (see [panel.Equal]) to an
// earlier panel, and the number of panels removed.
func Deduplicate(seq panel.Sequence) (panel.Sequence, int) {
	out := make(panel.Sequence, 0, len(seq))
	for _, p := range seq {
		dup := slices.ContainsFunc(out, func(q panel.Panel) bool { return panel.Equal(p, q) })
		if !dup {
			out = append(out, p)
		}
	}
	return out, len(seq) - len(out)
}

func checkTypes(seq panel.Sequence, allowed panel.Registry) error {
	unknown := allowed.Unknown(seq)
	if len(unknown) == 0 {
		return nil
	}

	var labels, types []string
	for _, p := range unknown {
		labels = append(labels, p.Label())
		if !slices.Contains(types, p.Type) {
			types = append(types, p.Type)
		}
	}
	return &errors.PanelError{
		Code:   errors.ErrCodeUnrecognizedType,
		Panels: labels,
		Detail: "unrecognized panel types: " + strings.Join(types, ", "),
	}
}
