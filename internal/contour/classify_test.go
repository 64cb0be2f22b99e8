package contour

import "testing"

// corners of the unit cell in cyclic order
var unitCorners = [4]Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}

// cellFromMask sets corner k Above when bit k of mask is set.
func cellFromMask(mask int) Cell {
	var c Cell
	for k := 0; k < 4; k++ {
		c[k] = GridPoint{Pos: unitCorners[k], Class: Classification(mask&(1<<k) != 0)}
	}
	return c
}

func TestClassify_AllPatterns(t *testing.T) {
	want := map[int]Case{
		0b0000: CaseNone,
		0b1111: CaseNone,
		0b0001: CaseCorner,
		0b0010: CaseCorner,
		0b0100: CaseCorner,
		0b1000: CaseCorner,
		0b1110: CaseInverseCorner,
		0b1101: CaseInverseCorner,
		0b1011: CaseInverseCorner,
		0b0111: CaseInverseCorner,
		0b0011: CaseEdge,
		0b0110: CaseEdge,
		0b1100: CaseEdge,
		0b1001: CaseEdge,
		0b0101: CaseSaddle,
		0b1010: CaseSaddle,
	}

	for mask := 0; mask < 16; mask++ {
		if got := Classify(cellFromMask(mask)); got != want[mask] {
			t.Errorf("mask %04b: expected %s, got %s", mask, want[mask], got)
		}
	}
}

func TestCase_String(t *testing.T) {
	if CaseSaddle.String() != "saddle" {
		t.Errorf("unexpected name %q", CaseSaddle.String())
	}
	if Case(42).String() != "case(42)" {
		t.Errorf("unexpected name %q", Case(42).String())
	}
}

func TestParseSaddleMode(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want SaddleMode
	}{
		{"", SaddleIndependent},
		{"independent", SaddleIndependent},
		{"center", SaddleCenter},
	} {
		got, err := ParseSaddleMode(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseSaddleMode(%q) = %v, %v", tt.in, got, err)
		}
	}

	if _, err := ParseSaddleMode("bilinear"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
