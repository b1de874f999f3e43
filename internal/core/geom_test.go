package core

import (
	"math/rand"
	"testing"
)

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching horizontally counts",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: true,
		},
		{
			name:     "touching vertically counts",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 10, 10, 10),
			expected: true,
		},
		{
			name:     "touching corners counts",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 10, 10, 10),
			expected: true,
		},
		{
			name:     "just apart",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10.01, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "overlap on x only",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 30, 10, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxOverlapsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randBox := func() Box {
		return NewBox(
			float64(rng.Intn(100)),
			float64(rng.Intn(100)),
			float64(rng.Intn(40)),
			float64(rng.Intn(40)),
		)
	}

	for i := 0; i < 5000; i++ {
		a, b := randBox(), randBox()
		if a.Overlaps(b) != b.Overlaps(a) {
			t.Fatalf("asymmetric result for %+v and %+v", a, b)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
