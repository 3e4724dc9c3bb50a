package engine

import "testing"

func TestAbsSign(t *testing.T) {
	tests := []struct {
		x, wantAbs, wantSign int
	}{
		{-3, 3, -1},
		{0, 0, 0},
		{2, 2, 1},
	}
	for _, tt := range tests {
		if got := abs(tt.x); got != tt.wantAbs {
			t.Errorf("abs(%d) = %d; want %d", tt.x, got, tt.wantAbs)
		}
		if got := sign(tt.x); got != tt.wantSign {
			t.Errorf("sign(%d) = %d; want %d", tt.x, got, tt.wantSign)
		}
	}
	if got := sign(int8(-7)); got != -1 {
		t.Errorf("sign(int8(-7)) = %d; want -1", got)
	}
}
