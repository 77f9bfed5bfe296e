package viewer

import "testing"

func TestEdgeWidth(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 0},
		{-5, 0},
		{1, 0},
		{4, 2},
		{40, 6},
		{64, 6},
		{120, 34},
	}
	for _, tt := range tests {
		if got := EdgeWidth(tt.width); got != tt.want {
			t.Errorf("EdgeWidth(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestHitRegion(t *testing.T) {
	tests := []struct {
		x, width int
		want     Region
	}{
		{0, 120, RegionLeft},
		{33, 120, RegionLeft},
		{34, 120, RegionNone},
		{85, 120, RegionNone},
		{86, 120, RegionRight},
		{119, 120, RegionRight},
		{120, 120, RegionNone},
		{-1, 120, RegionNone},
		{0, 0, RegionNone},
		{5, 40, RegionLeft},
		{20, 40, RegionNone},
		{34, 40, RegionRight},
	}
	for _, tt := range tests {
		if got := HitRegion(tt.x, tt.width); got != tt.want {
			t.Errorf("HitRegion(%d, %d) = %d, want %d", tt.x, tt.width, got, tt.want)
		}
	}
}
