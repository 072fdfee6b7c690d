package electropolis

import (
	"image"
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

func sameColour(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

func TestNewImageRendererMissingColour(t *testing.T) {
	scheme := DefaultScheme()
	delete(scheme.Roads, Straight)

	_, err := NewImageRenderer(image.Rect(0, 0, 4, 4), 1, scheme)
	if !errors.Is(err, ErrMissingRoadVisual) {
		t.Fatalf("expected ErrMissingRoadVisual, got %v", err)
	}
}

func TestImageRenderer(t *testing.T) {
	bounds := image.Rect(0, 0, 8, 4)
	r, err := NewImageRenderer(bounds, 3, nil)
	if err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.Area = bounds
	b, err := New(cfg, nil, nil, r)
	if err != nil {
		t.Fatal(err)
	}

	b.SetMode(ZonePainting)
	b.Start(image.Pt(0, 0))
	b.End(image.Pt(1, 1))

	b.SetMode(RoadPlacement)
	b.Start(image.Pt(4, 3))
	b.End(image.Pt(7, 3))

	im := r.Image()
	if im.Bounds().Dx() != 24 || im.Bounds().Dy() != 12 {
		t.Fatalf("expected 24x12 image, got %v", im.Bounds())
	}

	scheme := DefaultScheme()
	cases := []struct {
		Name   string
		Pixel  image.Point
		Expect color.Color
	}{
		// grid y runs up, image y runs down
		{"zone bottom left", image.Pt(1, 10), scheme.Tiles[KindZone]},
		{"road top right", image.Pt(22, 1), scheme.Roads[End]},
		{"road straight", image.Pt(16, 1), scheme.Roads[Straight]},
		{"empty", image.Pt(10, 7), scheme.Background},
	}

	for _, tt := range cases {
		t.Run(tt.Name, func(t *testing.T) {
			got := im.At(tt.Pixel.X, tt.Pixel.Y)
			if !sameColour(got, tt.Expect) {
				t.Fatalf("expected %v got %v", tt.Expect, got)
			}
		})
	}

	if !sameColour(scheme.Background, colornames.Darkolivegreen) {
		t.Fatalf("unexpected background")
	}
}
