package render

import (
	"strings"

	"github.com/matzehuels/initstate/pkg/errors"
)

// Format selects how a link graph is drawn.
type Format string

const (
	// FormatStatic renders a static SVG image.
	FormatStatic Format = "static"
	// FormatInteractive renders a self-contained HTML page.
	FormatInteractive Format = "interactive"
	// FormatNone returns the graph without drawing it.
	FormatNone Format = "none"
)

// Formats lists the accepted formats in display order.
var Formats = []Format{FormatStatic, FormatInteractive, FormatNone}

// ParseFormat converts a user-supplied name into a Format. Matching is case
// insensitive; unknown names yield an INVALID_FORMAT error.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatStatic, FormatInteractive, FormatNone:
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"unknown render format %q (want static, interactive or none)", s)
}

// MediaType returns the MIME type of the bytes produced for f, or "" for
// FormatNone.
func (f Format) MediaType() string {
	switch f {
	case FormatStatic:
		return "image/svg+xml"
	case FormatInteractive:
		return "text/html; charset=utf-8"
	}
	return ""
}

// Extension returns the conventional file extension for f, with the dot.
func (f Format) Extension() string {
	switch f {
	case FormatStatic:
		return ".svg"
	case FormatInteractive:
		return ".html"
	}
	return ""
}
