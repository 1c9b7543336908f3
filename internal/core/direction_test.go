package core

import "testing"

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
	}

	for _, tc := range tests {
		dx, dy := tc.dir.Delta()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%v.Delta() = (%d, %d), expected (%d, %d)", tc.dir, dx, dy, tc.dx, tc.dy)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir, expected Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
	}

	for _, tc := range tests {
		if got := tc.dir.Opposite(); got != tc.expected {
			t.Errorf("%v.Opposite() = %v, expected %v", tc.dir, got, tc.expected)
		}
		// A double reversal lands back on the original.
		if got := tc.dir.Opposite().Opposite(); got != tc.dir {
			t.Errorf("%v.Opposite().Opposite() = %v", tc.dir, got)
		}
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected string
	}{
		{DirUp, "up"},
		{DirDown, "down"},
		{DirLeft, "left"},
		{DirRight, "right"},
		{Direction(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.dir.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}
