package core

import "testing"

func TestFRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     FRect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewFRect(0, 0, 10, 10),
			b:        NewFRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewFRect(0, 0, 10, 10),
			b:        NewFRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewFRect(0, 0, 10, 10),
			b:        NewFRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "partially offscreen",
			a:        NewFRect(-5, -5, 10, 10),
			b:        NewFRect(0, 0, 800, 600),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestFRectEdges(t *testing.T) {
	r := NewFRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
}

func TestFRectScale(t *testing.T) {
	r := NewFRect(100, 60, 120, 90).Scale(0.1, 0.5)
	expected := NewFRect(10, 30, 12, 45)
	if r != expected {
		t.Errorf("Scale() = %+v, expected %+v", r, expected)
	}
}
