package render

import "testing"

func TestRGB(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
		ok      bool
	}{
		{"#000", 0, 0, 0, true},
		{"#fff", 255, 255, 255, true},
		{"#3565AA", 0x35, 0x65, 0xAA, true},
		{"#440154FF", 0x44, 0x01, 0x54, true},
		{"steelblue", 0, 0, 0, false},
		{"#12", 0, 0, 0, false},
		{"#zzzzzz", 0, 0, 0, false},
	}
	for _, tt := range tests {
		r, g, b, ok := RGB(tt.in)
		if ok != tt.ok || r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("RGB(%q) = %d,%d,%d,%v", tt.in, r, g, b, ok)
		}
	}
}

func TestTextColor(t *testing.T) {
	tests := map[string]string{
		"#000":      "#ffffff",
		"#ffffff":   "#000000",
		"#440154FF": "#ffffff",
		"#E47E04":   "#000000",
		"steelblue": "#000000",
		"":          "#000000",
	}
	for in, want := range tests {
		if got := TextColor(in); got != want {
			t.Errorf("TextColor(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOpaque(t *testing.T) {
	tests := map[string]string{
		"#440154FF": "#440154",
		"#ABC":      "#aabbcc",
		"#3565AA":   "#3565aa",
		"red":       "red",
	}
	for in, want := range tests {
		if got := Opaque(in); got != want {
			t.Errorf("Opaque(%q) = %q, want %q", in, got, want)
		}
	}
}
