package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"glbview/core"
)

func TestStatsIndexed(t *testing.T) {
	cube := CreateCube(1)
	stats := cube.Stats()

	if stats.Vertices != 24 {
		t.Errorf("vertices = %d, want 24", stats.Vertices)
	}
	if stats.Triangles != 12 {
		t.Errorf("triangles = %d, want 12 (from index buffer)", stats.Triangles)
	}
	if stats.Polygons != stats.Triangles {
		t.Errorf("polygons = %d, want %d", stats.Polygons, stats.Triangles)
	}
}

func TestStatsNonIndexed(t *testing.T) {
	verts := make([]core.Vertex, 9) // three triangles of soup
	for i := range verts {
		verts[i].Position = mgl32.Vec3{float32(i), 0, 0}
	}
	m := CreateMeshFromData("soup", verts, nil)
	stats := m.Stats()

	if stats.Vertices != 9 {
		t.Errorf("vertices = %d, want 9", stats.Vertices)
	}
	if stats.Triangles != 3 {
		t.Errorf("triangles = %d, want 3 (vertices / 3)", stats.Triangles)
	}
}

func TestStatsEmptyMesh(t *testing.T) {
	m := NewMesh("empty")
	stats := m.Stats()
	if stats.Vertices != 0 || stats.Triangles != 0 || stats.Polygons != 0 {
		t.Errorf("empty mesh stats = %+v, want zeros", stats)
	}
}

func TestLocalAABB(t *testing.T) {
	cube := CreateCube(2)
	if !cube.HasLocalAABB {
		t.Fatal("expected cached AABB")
	}
	want := AABB{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}}
	if cube.LocalAABB != want {
		t.Errorf("AABB = %+v, want %+v", cube.LocalAABB, want)
	}
}

func TestAABBCorners(t *testing.T) {
	b := AABB{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 2, 3}}
	corners := b.Corners()
	if len(corners) != 8 {
		t.Fatalf("got %d corners", len(corners))
	}
	seen := make(map[mgl32.Vec3]bool)
	for _, c := range corners {
		seen[c] = true
		for a := 0; a < 3; a++ {
			if c[a] != b.Min[a] && c[a] != b.Max[a] {
				t.Errorf("corner %v has component outside box extremes", c)
			}
		}
	}
	if len(seen) != 8 {
		t.Errorf("corners not distinct: %v", corners)
	}
}
