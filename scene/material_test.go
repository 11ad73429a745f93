package scene

import (
	"testing"
)

func TestMaterialSetBaseColorHex(t *testing.T) {
	m := DefaultMaterial()
	if err := m.SetBaseColorHex("#336699"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.BaseColorHex(); got != "#336699" {
		t.Errorf("round trip = %q, want %q", got, "#336699")
	}
	if m.BaseColor.A != 1 {
		t.Errorf("alpha = %f, want preserved 1", m.BaseColor.A)
	}
}

func TestMaterialSetBaseColorHexNoHash(t *testing.T) {
	m := DefaultMaterial()
	if err := m.SetBaseColorHex("ff0000"); err != nil {
		t.Fatalf("bare hex should be accepted: %v", err)
	}
	if got := m.BaseColorHex(); got != "#ff0000" {
		t.Errorf("got %q, want %q", got, "#ff0000")
	}
}

func TestMaterialSetBaseColorHexInvalid(t *testing.T) {
	m := DefaultMaterial()
	before := m.BaseColor
	if err := m.SetBaseColorHex("#zzz"); err == nil {
		t.Fatal("expected parse error")
	}
	if m.BaseColor != before {
		t.Error("failed parse must not modify the material")
	}
}

func TestMaterialSetOpacityClamps(t *testing.T) {
	m := DefaultMaterial()

	m.SetOpacity(2.5)
	if m.Opacity != 1 {
		t.Errorf("opacity = %f, want clamped to 1", m.Opacity)
	}

	m.SetOpacity(-1)
	if m.Opacity != 0 {
		t.Errorf("opacity = %f, want clamped to 0", m.Opacity)
	}

	m.SetOpacity(0.37)
	if m.Opacity != 0.37 {
		t.Errorf("opacity = %f, want 0.37", m.Opacity)
	}
}

func TestDefaultMaterial(t *testing.T) {
	m := DefaultMaterial()
	if m.Opacity != 1 || m.Transparent || m.Wireframe {
		t.Errorf("unexpected defaults: %+v", m)
	}
}
