package panel

import (
	"maps"
	"reflect"
	"strconv"
)

// NoSource is the sentinel selection source meaning "not linked".
// An empty SelectionSource is treated the same way.
const NoSource = "---"

// DefaultWidth is the width decoders assign when a panel omits it.
const DefaultWidth = 4

// Columns is the number of width units in one grid row.
const Columns = 12

// Panel describes one panel of an initial state.
type Panel struct {
	ID              string         // Identifier; empty means "derive from type"
	Type            string         // Panel kind, looked up in a Registry
	Width           int            // Horizontal span in [1, Columns]
	SelectionSource string         // NoSource, "" or the ID of another panel
	Params          map[string]any // Opaque attributes carried through untouched
}

// HasSource reports whether the panel receives selections from another panel.
func (p Panel) HasSource() bool {
	return p.SelectionSource != "" && p.SelectionSource != NoSource
}

// Label returns the ID, or the type for unnamed panels.
func (p Panel) Label() string {
	if p.ID != "" {
		return p.ID
	}
	return p.Type
}

// Equal reports whether two panels are structurally identical: every field,
// including the identifier, is equal and Params are deeply equal.
// This is the one comparison used for duplicate detection.
func Equal(a, b Panel) bool {
	if a.ID != b.ID || a.Type != b.Type || a.Width != b.Width {
		return false
	}
	if sourceKey(a) != sourceKey(b) {
		return false
	}
	return maps.EqualFunc(a.Params, b.Params, func(x, y any) bool {
		return reflect.DeepEqual(x, y)
	})
}

// sourceKey folds the two spellings of "no source" together.
func sourceKey(p Panel) string {
	if !p.HasSource() {
		return NoSource
	}
	return p.SelectionSource
}

// Sequence is an ordered list of panels. Order drives layout and default
// naming. Identifiers are expected to be unique but duplicates are tolerated.
type Sequence []Panel

// Clone returns a copy of the sequence. Params maps are copied shallowly.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	for i, p := range s {
		if p.Params != nil {
			p.Params = maps.Clone(p.Params)
		}
		out[i] = p
	}
	return out
}

// Named returns a copy of the sequence in which every empty ID is replaced by
// "<Type><n>", n being the smallest positive integer that yields a name not
// already used in the sequence. Names are assigned in sequence order.
func (s Sequence) Named() Sequence {
	out := s.Clone()

	used := make(map[string]bool, len(out))
	for _, p := range out {
		if p.ID != "" {
			used[p.ID] = true
		}
	}

	next := make(map[string]int)
	for i := range out {
		if out[i].ID != "" {
			continue
		}
		n := next[out[i].Type]
		for {
			n++
			name := out[i].Type + strconv.Itoa(n)
			if !used[name] {
				out[i].ID = name
				used[name] = true
				break
			}
		}
		next[out[i].Type] = n
	}
	return out
}

// IDs returns the panel identifiers in order. Unnamed panels yield "".
func (s Sequence) IDs() []string {
	ids := make([]string, len(s))
	for i, p := range s {
		ids[i] = p.ID
	}
	return ids
}

// Index returns the position of the first panel with the given ID, or -1.
func (s Sequence) Index(id string) int {
	for i, p := range s {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// DuplicateIDs returns every non-empty identifier used more than once, in
// order of its second occurrence.
func (s Sequence) DuplicateIDs() []string {
	seen := make(map[string]int, len(s))
	var dups []string
	for _, p := range s {
		if p.ID == "" {
			continue
		}
		seen[p.ID]++
		if seen[p.ID] == 2 {
			dups = append(dups, p.ID)
		}
	}
	return dups
}

// TotalWidth returns the sum of all panel widths.
func (s Sequence) TotalWidth() int {
	total := 0
	for _, p := range s {
		total += p.Width
	}
	return total
}
