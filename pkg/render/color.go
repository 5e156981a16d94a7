package render

import (
	"strconv"
	"strings"
)

// RGB parses #rgb, #rrggbb and #rrggbbaa colors. Alpha is ignored.
// Named colors are not resolved and report ok == false.
func RGB(color string) (r, g, b uint8, ok bool) {
	s, found := strings.CutPrefix(color, "#")
	if !found {
		return 0, 0, 0, false
	}
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	case 8:
		s = s[:6]
	default:
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// TextColor returns black or white, whichever reads better on bg.
// Unparseable backgrounds get black.
func TextColor(bg string) string {
	r, g, b, ok := RGB(bg)
	// Rec. 601 luma
	if ok && 0.299*float64(r)+0.587*float64(g)+0.114*float64(b) < 140 {
		return "#ffffff"
	}
	return "#000000"
}

// Opaque drops the alpha channel of an 8-digit hex color and expands short
// forms, for consumers that only accept #rrggbb.
func Opaque(color string) string {
	r, g, b, ok := RGB(color)
	if !ok {
		return color
	}
	const digits = "0123456789abcdef"
	return string([]byte{'#',
		digits[r>>4], digits[r&0x0f],
		digits[g>>4], digits[g&0x0f],
		digits[b>>4], digits[b&0x0f],
	})
}
