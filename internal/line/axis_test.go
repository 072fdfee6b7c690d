package line

import (
	"image"
	"reflect"
	"testing"
)

func TestAxis(t *testing.T) {
	cases := []struct {
		name string
		a, b image.Point
		want []image.Point
		ok   bool
	}{
		{"point", image.Pt(2, 2), image.Pt(2, 2), []image.Point{{2, 2}}, true},
		{"horizontal", image.Pt(0, 0), image.Pt(3, 0), []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, true},
		{"horizontal reversed", image.Pt(3, 1), image.Pt(1, 1), []image.Point{{1, 1}, {2, 1}, {3, 1}}, true},
		{"vertical", image.Pt(5, -1), image.Pt(5, 1), []image.Point{{5, -1}, {5, 0}, {5, 1}}, true},
		{"vertical reversed", image.Pt(0, 2), image.Pt(0, 0), []image.Point{{0, 0}, {0, 1}, {0, 2}}, true},
		{"diagonal", image.Pt(0, 0), image.Pt(1, 1), nil, false},
	}
	for _, c := range cases {
		got, ok := Axis(c.a, c.b)
		if ok != c.ok {
			t.Fatalf("%s: ok=%v want %v", c.name, ok, c.ok)
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Fatalf("%s: Axis(%v,%v)=%v want %v", c.name, c.a, c.b, got, c.want)
		}
	}
}

func TestReverse(t *testing.T) {
	pts := []image.Point{{0, 0}, {1, 0}, {2, 0}}
	Reverse(pts)
	want := []image.Point{{2, 0}, {1, 0}, {0, 0}}
	if !reflect.DeepEqual(pts, want) {
		t.Fatalf("Reverse=%v want %v", pts, want)
	}
}
