package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"glbview/core"
)

// Scene manages a collection of nodes and the active camera. The loaded
// model lives under its own subtree so a new model can replace the previous
// one wholesale without touching backdrop geometry or lights.
type Scene struct {
	Root     *Node
	Camera   *Camera
	Lights   []*Light
	Ambient  core.Color
	SkyColor core.Color

	modelRoot *Node
}

// Light types
const (
	LightTypeDirectional = iota
	LightTypePoint
)

// Light represents a light source
type Light struct {
	Type      int
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Color     core.Color
	Intensity float32
}

func NewScene() *Scene {
	return &Scene{
		Root:     NewNode("Root"),
		Lights:   make([]*Light, 0),
		Ambient:  core.Color{R: 0.2, G: 0.2, B: 0.2, A: 1.0},
		SkyColor: core.Color{R: 0.13, G: 0.14, B: 0.16, A: 1.0},
	}
}

func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

func (s *Scene) AddNode(node *Node) {
	s.Root.AddChild(node)
}

func (s *Scene) RemoveNode(node *Node) {
	s.Root.RemoveChild(node)
}

func (s *Scene) AddLight(light *Light) {
	s.Lights = append(s.Lights, light)
}

// SetModel discards the current model subtree and installs the given roots
// under a fresh one. Passing no roots just clears the model.
func (s *Scene) SetModel(name string, roots []*Node) {
	if s.modelRoot != nil {
		s.Root.RemoveChild(s.modelRoot)
		s.modelRoot = nil
	}
	if len(roots) == 0 {
		return
	}
	s.modelRoot = NewNode(name)
	for _, r := range roots {
		s.modelRoot.AddChild(r)
	}
	s.Root.AddChild(s.modelRoot)
}

// ModelRoot returns the subtree of the currently loaded model, or nil.
func (s *Scene) ModelRoot() *Node {
	return s.modelRoot
}

// VisibleNodes returns all visible nodes that carry a mesh.
func (s *Scene) VisibleNodes() []*Node {
	var visible []*Node
	s.Root.Traverse(func(node *Node) {
		if node.Visible && node.Mesh != nil {
			visible = append(visible, node)
		}
	})
	return visible
}
