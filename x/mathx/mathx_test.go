package mathx

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct{ v, lo, hi, want int32 }{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{5, 10, 0, 5}, // swapped bounds
		{12, 10, 0, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Fatalf("Clamp(%d,%d,%d)=%d want %d", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min[uint16](3, 9) != 3 || Max[uint16](3, 9) != 9 {
		t.Fatalf("min/max wrong")
	}
}

func TestMapU16(t *testing.T) {
	if got := MapU16(0, 0, 100, 0, 0xFFFF); got != 0 {
		t.Fatalf("low end = %d", got)
	}
	if got := MapU16(100, 0, 100, 0, 0xFFFF); got != 0xFFFF {
		t.Fatalf("high end = %d", got)
	}
	if got := MapU16(50, 0, 100, 0, 1000); got != 500 {
		t.Fatalf("mid = %d", got)
	}
	if got := MapU16(200, 0, 100, 0, 1000); got != 1000 {
		t.Fatalf("above range not clamped: %d", got)
	}
	if got := MapU16(7, 5, 5, 3, 9); got != 3 {
		t.Fatalf("degenerate input range = %d", got)
	}
}
