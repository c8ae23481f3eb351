package world

import (
	"errors"
	"testing"
)

func TestDirectionRotateFullCircleIsIdentity(t *testing.T) {
	for _, d := range Directions() {
		got, err := d.Rotate(360)
		if err != nil {
			t.Fatalf("rotate %s by 360: %v", d, err)
		}
		if got != d {
			t.Fatalf("rotate %s by 360 = %s, want %s", d, got, d)
		}
	}
}

func TestDirectionRotateCyclesWithPeriodEight(t *testing.T) {
	for _, d := range Directions() {
		for k := -16; k <= 16; k++ {
			a, err := d.Rotate(45 * k)
			if err != nil {
				t.Fatalf("rotate %s by %d: %v", d, 45*k, err)
			}
			b, err := d.Rotate(45 * (k + 8))
			if err != nil {
				t.Fatalf("rotate %s by %d: %v", d, 45*(k+8), err)
			}
			if a != b {
				t.Fatalf("rotate %s: k=%d gives %s, k+8 gives %s", d, k, a, b)
			}
		}
	}
}

func TestDirectionRotateSigns(t *testing.T) {
	cases := []struct {
		from    Direction
		degrees int
		want    Direction
	}{
		{North, 45, NorthEast},
		{North, -45, NorthWest},
		{South, -90, East},
		{South, -135, NorthEast},
		{West, 90, North},
		{NorthWest, 45, North},
		{East, 180, West},
	}
	for _, tc := range cases {
		got, err := tc.from.Rotate(tc.degrees)
		if err != nil {
			t.Fatalf("rotate %s by %d: %v", tc.from, tc.degrees, err)
		}
		if got != tc.want {
			t.Fatalf("rotate %s by %d = %s, want %s", tc.from, tc.degrees, got, tc.want)
		}
	}
}

func TestDirectionRotateRejectsNonMultiple(t *testing.T) {
	if _, err := North.Rotate(30); !errors.Is(err, ErrInvalidRotation) {
		t.Fatalf("expected ErrInvalidRotation, got %v", err)
	}
	if _, err := NoDirection.Rotate(45); !errors.Is(err, ErrUnknownDirection) {
		t.Fatalf("expected ErrUnknownDirection, got %v", err)
	}
}

func TestDirectionOffsetsAreUnitSteps(t *testing.T) {
	want := map[string]Point{
		"n": {0, -1}, "ne": {1, -1}, "e": {1, 0}, "se": {1, 1},
		"s": {0, 1}, "sw": {-1, 1}, "w": {-1, 0}, "nw": {-1, -1},
	}
	for name, offset := range want {
		d, ok := ParseDirection(name)
		if !ok {
			t.Fatalf("ParseDirection(%q) failed", name)
		}
		got, ok := d.Offset()
		if !ok || got != offset {
			t.Fatalf("offset of %s = %v (ok=%v), want %v", name, got, ok, offset)
		}
	}
	if _, ok := Direction(42).Offset(); ok {
		t.Fatalf("expected unknown direction to have no offset")
	}
	if _, ok := ParseDirection("up"); ok {
		t.Fatalf("expected ParseDirection to reject unknown name")
	}
}

func TestDirectionTextRoundTrip(t *testing.T) {
	b, err := SouthWest.MarshalText()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var d Direction
	if err := d.UnmarshalText(b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d != SouthWest {
		t.Fatalf("round trip = %s, want sw", d)
	}
	if err := d.UnmarshalText([]byte("up")); !errors.Is(err, ErrUnknownDirection) {
		t.Fatalf("expected ErrUnknownDirection, got %v", err)
	}
}

func TestPointPlus(t *testing.T) {
	got := Point{X: 2, Y: 3}.Plus(Point{X: -1, Y: 1})
	if got != (Point{X: 1, Y: 4}) {
		t.Fatalf("Plus = %v, want (1, 4)", got)
	}
	if got.String() != "(1, 4)" {
		t.Fatalf("String = %q", got.String())
	}
}
