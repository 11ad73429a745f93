package viewer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"glbview/core"
	"glbview/scene"
)

// headless builds a viewer with no window; input and picking methods that
// need a surface are exercised directly.
func headless() *Viewer {
	return New(scene.NewScene(), nil, nil)
}

func TestClickWithHoverSelects(t *testing.T) {
	v := headless()
	n := meshNode("target")
	v.Scene.AddNode(n)

	v.Hover.Update(n)
	v.clickSelect()

	assert.Same(t, n, v.Selected())
	assert.Same(t, n, v.Panel.Selected())
}

func TestClickWithEmptyHoverKeepsSelection(t *testing.T) {
	v := headless()
	n := meshNode("target")
	v.Scene.AddNode(n)

	v.Hover.Update(n)
	v.clickSelect()
	assert.Same(t, n, v.Selected())

	// Pointer moved off every object, then a click lands
	v.Hover.Update(nil)
	v.clickSelect()

	assert.Same(t, n, v.Selected(), "selection must survive a click with no hover target")
}

func TestSelectRebindsPanel(t *testing.T) {
	v := headless()
	a := meshNode("a")
	b := meshNode("b")
	b.Mesh.Material.Wireframe = true

	v.Select(a)
	v.Panel.SetOpacity(0.1)

	v.Select(b)
	assert.True(t, v.Panel.Wireframe)
	assert.InDelta(t, 1.0, v.Panel.Opacity, 1e-6, "edits made while a was selected are gone")
}

func TestInstallModelClearsInteractionState(t *testing.T) {
	v := headless()
	old := meshNode("old")
	original := core.Color{R: 0.2, G: 0.2, B: 0.2, A: 1}
	old.Mesh.Material.Emissive = original
	v.installModel(&scene.Model{Name: "first.glb", Roots: []*scene.Node{old}})

	v.Hover.Update(old)
	v.Select(old)

	next := meshNode("new")
	v.installModel(&scene.Model{Name: "second.glb", Roots: []*scene.Node{next}})

	assert.Nil(t, v.Hover.Current())
	assert.Nil(t, v.Selected())
	assert.Equal(t, original, old.Mesh.Material.Emissive, "tint restored before the node is discarded")
	assert.Equal(t, "second.glb", v.Model().Name)

	// Only the new model's subtree remains in the scene
	assert.Nil(t, v.Scene.Root.Find("old"))
	assert.NotNil(t, v.Scene.Root.Find("new"))
}

func TestInstallModelInvokesCallback(t *testing.T) {
	v := headless()
	var got *scene.Model
	v.OnInstall = func(m *scene.Model) { got = m }

	m := &scene.Model{Name: "m.glb", Roots: []*scene.Node{meshNode("root")}}
	v.installModel(m)

	assert.Same(t, m, got)
}

func TestStatsAggregatesModelSubtreeOnly(t *testing.T) {
	v := headless()

	backdrop := scene.NewNode("grid")
	backdrop.Mesh = scene.CreateGrid(10, 10)
	backdrop.Pickable = false
	v.Scene.AddNode(backdrop)

	root := meshNode("root")
	child := meshNode("child")
	root.AddChild(child)
	v.installModel(&scene.Model{Name: "m.glb", Roots: []*scene.Node{root}})

	stats := v.Stats()
	assert.Equal(t, 48, stats.Vertices, "two cubes, backdrop excluded")
	assert.Equal(t, 24, stats.Triangles)
}

func TestExportWritesOriginalBytes(t *testing.T) {
	v := headless()
	v.ExportDir = t.TempDir()

	source := []byte("glTF\x02\x00\x00\x00fake-binary-payload")
	v.installModel(&scene.Model{Name: "in.glb", Source: source, Roots: []*scene.Node{meshNode("n")}})

	// Edits between load and export must not leak into the output
	v.Select(v.Scene.Root.Find("n"))
	v.Panel.SetOpacity(0.37)
	_ = v.Panel.SetBaseColor("#123456")

	assert.NoError(t, v.Export())

	data, err := os.ReadFile(filepath.Join(v.ExportDir, "model.glb"))
	assert.NoError(t, err)
	assert.Equal(t, source, data)
}

func TestExportWithoutModelIsNoOp(t *testing.T) {
	v := headless()
	v.ExportDir = t.TempDir()
	assert.NoError(t, v.Export())
}
