package formation

import "testing"

func TestNextDirection(t *testing.T) {
	const width, eps = 480.0, 1.0

	middle := Extent{MinX: 100, MaxX: 290, MinY: 300, MaxY: 372}
	atRight := Extent{MinX: 290, MaxX: 479, MinY: 300, MaxY: 372}
	atLeft := Extent{MinX: 1, MaxX: 191, MinY: 300, MaxY: 372}
	tooWide := Extent{MinX: 0, MaxX: 478, MinY: 300, MaxY: 372}

	tests := []struct {
		name     string
		current  Direction
		ext      Extent
		expected Direction
	}{
		{"right in the open", Right, middle, Right},
		{"right within tolerance of wall", Right, atRight, DescendThenLeft},
		{"right ignores left wall", Right, atLeft, Right},
		{"left in the open", Left, middle, Left},
		{"left within tolerance of wall", Left, atLeft, DescendThenRight},
		{"left ignores right wall", Left, atRight, Left},
		{"descend then left", DescendThenLeft, atRight, Left},
		{"descend then right", DescendThenRight, atLeft, Right},
		{"idle stays idle", Idle, atRight, Idle},
		{"no room to move", Right, tooWide, Idle},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			first := nextDirection(tc.current, tc.ext, width, eps)
			second := nextDirection(tc.current, tc.ext, width, eps)
			if first != tc.expected {
				t.Errorf("nextDirection(%v) = %v, expected %v", tc.current, first, tc.expected)
			}
			if first != second {
				t.Errorf("nextDirection is not stable: %v then %v", first, second)
			}
		})
	}
}

func TestDisplacement(t *testing.T) {
	tests := []struct {
		d        Direction
		expected Vec
	}{
		{Right, Vec{X: 10}},
		{Left, Vec{X: -10}},
		{DescendThenLeft, Vec{Y: -5}},
		{DescendThenRight, Vec{Y: -5}},
		{Idle, Vec{}},
	}

	for _, tc := range tests {
		if got := tc.d.Displacement(10, 5); got != tc.expected {
			t.Errorf("%v.Displacement() = %+v, expected %+v", tc.d, got, tc.expected)
		}
	}
}
