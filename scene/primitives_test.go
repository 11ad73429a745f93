package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCreateQuad(t *testing.T) {
	q := CreateQuad()

	if len(q.Vertices) != 4 {
		t.Errorf("vertices = %d, want 4", len(q.Vertices))
	}
	if len(q.Indices) != 6 {
		t.Errorf("indices = %d, want 6", len(q.Indices))
	}
	if got := q.Stats().Triangles; got != 2 {
		t.Errorf("triangles = %d, want 2", got)
	}
	want := AABB{Min: mgl32.Vec3{-0.5, -0.5, 0}, Max: mgl32.Vec3{0.5, 0.5, 0}}
	if q.LocalAABB != want {
		t.Errorf("AABB = %+v, want %+v", q.LocalAABB, want)
	}
}

func TestCreateSphere(t *testing.T) {
	const (
		radius   = 2.0
		segments = 16
		rings    = 8
	)
	s := CreateSphere(radius, segments, rings)

	if want := (rings + 1) * (segments + 1); len(s.Vertices) != want {
		t.Errorf("vertices = %d, want %d", len(s.Vertices), want)
	}
	if want := 6 * rings * segments; len(s.Indices) != want {
		t.Errorf("indices = %d, want %d", len(s.Indices), want)
	}

	for i, v := range s.Vertices {
		if r := v.Position.Len(); r < radius-0.001 || r > radius+0.001 {
			t.Fatalf("vertex %d at distance %f from center, want %f", i, r, radius)
		}
		if l := v.Normal.Len(); l < 0.999 || l > 1.001 {
			t.Fatalf("vertex %d normal length %f, want 1", i, l)
		}
	}
}

func TestCreateSphereClampsDegenerateArgs(t *testing.T) {
	s := CreateSphere(1, 1, 1)
	// Clamped to 3 segments and 2 rings
	if want := (2 + 1) * (3 + 1); len(s.Vertices) != want {
		t.Errorf("vertices = %d, want %d", len(s.Vertices), want)
	}
}

func TestCreateGridIsUnlitLines(t *testing.T) {
	g := CreateGrid(10, 20)
	if g.DrawMode != DrawLines {
		t.Errorf("draw mode = %v, want DrawLines", g.DrawMode)
	}
	if g.Material == nil || !g.Material.Unlit {
		t.Error("grid material should be unlit")
	}
}
