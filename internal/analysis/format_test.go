package analysis

import "testing"

func TestPercent(t *testing.T) {
	tests := []struct {
		part  int
		total int
		want  int
	}{
		{0, 0, 0},
		{1, 4, 25},
		{3, 3, 100},
		{1, 3, 33},
		{2, 3, 67},
		{0, 10, 0},
	}
	for _, tt := range tests {
		if got := Percent(tt.part, tt.total); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.part, tt.total, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		part  int
		total int
		want  string
	}{
		{0, 0, "0%"},
		{1, 4, "25%"},
		{3, 3, "100%"},
	}
	for _, tt := range tests {
		if got := FormatPercent(tt.part, tt.total); got != tt.want {
			t.Errorf("FormatPercent(%d, %d) = %q, want %q", tt.part, tt.total, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{950, "950"},
		{1000, "1.0K"},
		{1500, "1.5K"},
		{999999, "1000.0K"},
		{2300000, "2.3M"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
