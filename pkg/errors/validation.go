package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxWidth is the number of columns in a row of the panel grid.
const MaxWidth = 12

// ValidatePanelID validates an explicit panel identifier.
// Empty identifiers are allowed by the data model (a default is derived), so
// callers only run this on identifiers that were actually supplied.
//
// The validation rules are intentionally conservative:
//   - Maximum length of 256 characters
//   - No control characters or null bytes
//   - No leading or trailing whitespace
func ValidatePanelID(id string) error {
	if len(id) > 256 {
		return New(ErrCodeInvalidPanelID, "panel id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPanelID, "panel id contains invalid control characters")
		}
	}

	if strings.TrimSpace(id) != id {
		return New(ErrCodeInvalidPanelID, "panel id %q has surrounding whitespace", id)
	}

	return nil
}

// ValidateWidth checks that a panel width fits in a single grid row.
// Widths below one are malformed input; widths above [MaxWidth] get their
// own code because they are well-formed but cannot be laid out.
func ValidateWidth(width int) error {
	if width < 1 {
		return New(ErrCodeInvalidInput, "panel width must be at least 1, got %d", width)
	}
	if width > MaxWidth {
		return New(ErrCodeOversizedPanel, "panel width %d exceeds row capacity of %d", width, MaxWidth)
	}
	return nil
}

// ValidatePath validates a sequence file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// hexColorRegex matches #rgb, #rrggbb and #rrggbbaa colors.
var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// namedColorRegex matches CSS/Graphviz style color names like "black" or "steelblue".
var namedColorRegex = regexp.MustCompile(`^[a-zA-Z]+[0-9]{0,3}$`)

// ValidateColor validates a registry color. An empty color is allowed and
// means the type is known but drawn uncolored.
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}
	if strings.HasPrefix(color, "#") {
		if !hexColorRegex.MatchString(color) {
			return New(ErrCodeInvalidColor, "invalid hex color: %q", color)
		}
		return nil
	}
	if !namedColorRegex.MatchString(color) {
		return New(ErrCodeInvalidColor, "invalid color name: %q", color)
	}
	return nil
}
