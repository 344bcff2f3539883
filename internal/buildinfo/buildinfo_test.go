package buildinfo

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"v1.2.3", "1.2.3"},
		{"1.2.3", "1.2.3"},
		{"1.2", "1.2.0"},
		{"v0.4.0-rc.1", "0.4.0-rc.1"},
		{"dev", "0.0.0-dev"},
		{"", "0.0.0-dev"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
