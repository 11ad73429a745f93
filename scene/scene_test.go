package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNodeWorldMatrix(t *testing.T) {
	parent := NewNode("parent")
	parent.SetPosition(mgl32.Vec3{1, 0, 0})
	child := NewNode("child")
	child.SetPosition(mgl32.Vec3{0, 2, 0})
	parent.AddChild(child)

	world := child.GetWorldMatrix()
	origin := mgl32.TransformCoordinate(mgl32.Vec3{}, world)

	want := mgl32.Vec3{1, 2, 0}
	if !origin.ApproxEqualThreshold(want, 0.0001) {
		t.Errorf("child world origin = %v, want %v", origin, want)
	}
}

func TestNodeWorldMatrixInvalidatedByParentMove(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)
	_ = child.GetWorldMatrix() // prime the cache

	parent.SetPosition(mgl32.Vec3{0, 0, 5})
	origin := mgl32.TransformCoordinate(mgl32.Vec3{}, child.GetWorldMatrix())

	want := mgl32.Vec3{0, 0, 5}
	if !origin.ApproxEqualThreshold(want, 0.0001) {
		t.Errorf("child world origin = %v, want %v", origin, want)
	}
}

func TestSceneSetModelReplacesWholesale(t *testing.T) {
	s := NewScene()
	backdrop := NewNode("grid")
	s.AddNode(backdrop)

	first := NewNode("first")
	s.SetModel("a.glb", []*Node{first})
	if s.Root.Find("first") == nil {
		t.Fatal("first model not installed")
	}

	second := NewNode("second")
	s.SetModel("b.glb", []*Node{second})

	if s.Root.Find("first") != nil {
		t.Error("previous model subtree must be discarded")
	}
	if s.Root.Find("second") == nil {
		t.Error("new model subtree missing")
	}
	if s.Root.Find("grid") == nil {
		t.Error("backdrop must survive model replacement")
	}
}

func TestSceneSetModelEmptyClears(t *testing.T) {
	s := NewScene()
	s.SetModel("a.glb", []*Node{NewNode("only")})
	s.SetModel("", nil)

	if s.ModelRoot() != nil {
		t.Error("model root should be nil after clearing")
	}
	if s.Root.Find("only") != nil {
		t.Error("old model still present")
	}
}

func TestVisibleNodesFiltersMeshAndVisibility(t *testing.T) {
	s := NewScene()

	withMesh := NewNode("withMesh")
	withMesh.Mesh = CreateCube(1)
	s.AddNode(withMesh)

	hidden := NewNode("hidden")
	hidden.Mesh = CreateCube(1)
	hidden.Visible = false
	s.AddNode(hidden)

	empty := NewNode("empty")
	s.AddNode(empty)

	visible := s.VisibleNodes()
	if len(visible) != 1 || visible[0] != withMesh {
		t.Errorf("visible nodes = %v, want only %q", visible, withMesh.Name)
	}
}

func TestNodeFind(t *testing.T) {
	root := NewNode("root")
	mid := NewNode("mid")
	leaf := NewNode("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)

	if root.Find("leaf") != leaf {
		t.Error("Find failed to locate nested node")
	}
	if root.Find("missing") != nil {
		t.Error("Find should return nil for unknown names")
	}
}
