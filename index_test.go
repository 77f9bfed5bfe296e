package carousel

import (
	"math"
	"testing"
)

func TestResolveInitialIndex_ActiveWins(t *testing.T) {
	for _, active := range []int{0, 1, 3, 7} {
		for _, initial := range []Index{NoIndex, At(0), At(2), Raw(math.NaN())} {
			if got := ResolveInitialIndex(At(active), initial); got != active {
				t.Errorf("ResolveInitialIndex(%d, %+v) = %d, want %d", active, initial, got, active)
			}
		}
	}
}

func TestResolveInitialIndex_FallsBackToInitial(t *testing.T) {
	invalid := []Index{NoIndex, Raw(math.NaN()), Raw(math.Inf(1)), Raw(math.Inf(-1))}
	for _, active := range invalid {
		if got := ResolveInitialIndex(active, At(4)); got != 4 {
			t.Errorf("ResolveInitialIndex(%+v, 4) = %d, want 4", active, got)
		}
	}
}

func TestResolveInitialIndex_FallsBackToZero(t *testing.T) {
	invalid := []Index{NoIndex, Raw(math.NaN()), Raw(math.Inf(1))}
	for _, active := range invalid {
		for _, initial := range invalid {
			if got := ResolveInitialIndex(active, initial); got != 0 {
				t.Errorf("ResolveInitialIndex(%+v, %+v) = %d, want 0", active, initial, got)
			}
		}
	}
}

func TestIndex_Valid(t *testing.T) {
	tests := []struct {
		name  string
		index Index
		want  bool
	}{
		{"absent", NoIndex, false},
		{"zero", At(0), true},
		{"positive", At(5), true},
		{"raw finite", Raw(2.0), true},
		{"nan", Raw(math.NaN()), false},
		{"pos inf", Raw(math.Inf(1)), false},
		{"neg inf", Raw(math.Inf(-1)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.index.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIndex_IntTruncates(t *testing.T) {
	if got := Raw(2.9).Int(); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if got := Raw(math.NaN()).Int(); got != 0 {
		t.Errorf("expected 0 for NaN, got %d", got)
	}
}

func TestNormalizeIdentifier(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"about", "about"},
		{"/about", "about"},
		{"//about", "/about"},
		{"", ""},
		{"/", ""},
		{"a/b", "a/b"},
	}
	for _, tt := range tests {
		if got := NormalizeIdentifier(tt.in); got != tt.want {
			t.Errorf("NormalizeIdentifier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveIndexFromToken(t *testing.T) {
	ids := []string{"a", "/b", "", "c", "b"}

	tests := []struct {
		token string
		want  int
	}{
		{"a", 0},
		{"b", 1},
		{"c", 3},
		{"z", -1},
		{"", -1},
		{"/b", -1},
	}
	for _, tt := range tests {
		if got := ResolveIndexFromToken(ids, tt.token); got != tt.want {
			t.Errorf("ResolveIndexFromToken(%q) = %d, want %d", tt.token, got, tt.want)
		}
	}
}

func TestResolveIndexFromToken_Empty(t *testing.T) {
	if got := ResolveIndexFromToken(nil, "a"); got != -1 {
		t.Errorf("expected -1 for no slides, got %d", got)
	}
}

func TestClampIndex(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{-1, 3, 0},
		{1, 3, 1},
		{3, 3, 2},
		{9, 3, 2},
	}
	for _, tt := range tests {
		if got := clampIndex(tt.i, tt.n); got != tt.want {
			t.Errorf("clampIndex(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestStep(t *testing.T) {
	if got := step(2, 3, DirectionNext); got != 0 {
		t.Errorf("expected wrap to 0, got %d", got)
	}
	if got := step(0, 3, DirectionPrev); got != 2 {
		t.Errorf("expected wrap to 2, got %d", got)
	}
	if got := step(0, 1, DirectionNext); got != 0 {
		t.Errorf("expected single slide to stay at 0, got %d", got)
	}
	if got := step(1, 3, DirectionNext); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
}

func TestIndex_IntBoundsHugeValues(t *testing.T) {
	if got := Raw(1e300).Int(); got != math.MaxInt {
		t.Errorf("expected MaxInt, got %d", got)
	}
	if got := Raw(-1e300).Int(); got != math.MinInt {
		t.Errorf("expected MinInt, got %d", got)
	}
	if got := ResolveInitialIndex(Raw(1e300), NoIndex); clampIndex(got, 4) != 3 {
		t.Errorf("expected huge index to clamp to last slide, got %d", clampIndex(got, 4))
	}
	if got := ResolveInitialIndex(Raw(-1e300), NoIndex); clampIndex(got, 4) != 0 {
		t.Errorf("expected huge negative index to clamp to 0, got %d", clampIndex(got, 4))
	}
}
