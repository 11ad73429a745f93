package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ffffff", Color{1, 1, 1, 1}, false},
		{"#000000", Color{0, 0, 0, 1}, false},
		{"ff0000", Color{1, 0, 0, 1}, false},
		{"#gg0000", Color{}, true},
		{"", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHexColor(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#336699", "#ff8000", "#000000", "#ffffff"} {
		c, err := ParseHexColor(hex)
		if err != nil {
			t.Fatalf("ParseHexColor(%q): %v", hex, err)
		}
		if got := c.Hex(); got != hex {
			t.Errorf("round trip %q -> %q", hex, got)
		}
	}
}

func TestTransformMatrixIdentity(t *testing.T) {
	m := NewTransform().Matrix()
	if !m.ApproxEqualThreshold(mgl32.Ident4(), 0.0001) {
		t.Errorf("identity transform matrix = %v", m)
	}
}

func TestTransformMatrixTranslate(t *testing.T) {
	tr := NewTransform()
	tr.Position = mgl32.Vec3{1, 2, 3}
	p := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 0}, tr.Matrix())
	if !p.ApproxEqualThreshold(mgl32.Vec3{1, 2, 3}, 0.0001) {
		t.Errorf("translated origin = %v", p)
	}
}

func TestTransformMatrixScaleThenTranslate(t *testing.T) {
	tr := NewTransform()
	tr.Position = mgl32.Vec3{10, 0, 0}
	tr.Scale = mgl32.Vec3{2, 2, 2}
	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, tr.Matrix())
	// Scale applies before translation
	if !p.ApproxEqualThreshold(mgl32.Vec3{12, 0, 0}, 0.0001) {
		t.Errorf("transformed point = %v, want (12, 0, 0)", p)
	}
}
