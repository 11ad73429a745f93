package viewer

import (
	"fmt"
	"log"

	"glbview/core"
	"glbview/picking"
	"glbview/scene"
)

// Viewer owns the interaction loop: per-frame picking and hover, click
// selection, the material panel, camera controls, and async model loading.
type Viewer struct {
	Scene  *scene.Scene
	Window *core.Window
	Input  *Input
	Orbit  *scene.OrbitCamera
	Hover  *picking.Highlighter
	Panel  *MaterialPanel
	Loader *Loader

	// ExportDir receives model.glb on export. Defaults to ".".
	ExportDir string

	model    *scene.Model
	selected *scene.Node

	// OnInstall runs after a loaded model is placed in the scene, on the
	// main thread. The entry point uses it to upload textures and release
	// the previous model's GPU buffers.
	OnInstall func(*scene.Model)

	lastCursorX float64
	lastCursorY float64
}

func New(s *scene.Scene, w *core.Window, orbit *scene.OrbitCamera) *Viewer {
	v := &Viewer{
		Scene:     s,
		Window:    w,
		Input:     NewInput(),
		Orbit:     orbit,
		Hover:     picking.NewHighlighter(picking.DefaultTint),
		Panel:     NewMaterialPanel(),
		Loader:    NewLoader(),
		ExportDir: ".",
	}
	if w != nil {
		v.Input.Attach(w)
		w.SetDropCallback(func(paths []string) {
			if len(paths) == 0 {
				return
			}
			v.OpenModel(paths[0])
		})
	}
	return v
}

// Model returns the currently installed model, or nil.
func (v *Viewer) Model() *scene.Model {
	return v.model
}

// Selected returns the currently selected node, or nil.
func (v *Viewer) Selected() *scene.Node {
	return v.selected
}

// OpenModel starts an asynchronous load of the given .glb file. The current
// scene stays in place until the load finishes; a failure leaves it
// untouched.
func (v *Viewer) OpenModel(path string) {
	log.Printf("loading %q", path)
	v.Loader.Load(path)
}

// Update advances the interaction loop by one frame.
func (v *Viewer) Update(dt float32) {
	if model := v.Loader.Poll(); model != nil {
		v.installModel(model)
	}

	v.updateCamera(dt)
	v.updateHover()

	if v.Input.Clicked() {
		v.clickSelect()
	}

	v.handleKeys()
}

// installModel replaces the model subtree wholesale. Hover and selection
// refer to nodes of the outgoing model, so both are cleared first — clearing
// the hover also restores its emissive tint.
func (v *Viewer) installModel(model *scene.Model) {
	v.Hover.Clear()
	v.Select(nil)
	v.Scene.SetModel(model.Name, model.Roots)
	v.model = model
	log.Printf("installed %q (%d root nodes)", model.Name, len(model.Roots))
	if v.OnInstall != nil {
		v.OnInstall(model)
	}
}

// updateHover runs the per-frame pick from the latest pointer position.
func (v *Viewer) updateHover() {
	if v.Window == nil || v.Scene.Camera == nil {
		return
	}
	width, height := float32(v.Window.Width), float32(v.Window.Height)
	if width <= 0 || height <= 0 {
		return
	}
	ray := picking.ScreenToRay(
		float32(v.Input.CursorX), float32(v.Input.CursorY),
		width, height, v.Scene.Camera,
	)
	hit := picking.Pick(ray, v.Scene)
	v.Hover.Update(hit.Node)
}

// clickSelect captures the hovered node as the selection. A click with no
// hover target is ignored and the selection stays as it was.
func (v *Viewer) clickSelect() {
	hovered := v.Hover.Current()
	if hovered == nil {
		return
	}
	v.Select(hovered)
}

// Select binds the panel to the node, discarding unsaved panel edits.
func (v *Viewer) Select(n *scene.Node) {
	v.selected = n
	v.Panel.SetSelected(n)
	if n != nil {
		log.Printf("selected %q (%d vertices, %d triangles)",
			n.Name, v.Panel.Stats.Vertices, v.Panel.Stats.Triangles)
	}
}

// Export writes the loaded model's original bytes to ExportDir/model.glb.
func (v *Viewer) Export() error {
	if v.model == nil {
		return nil
	}
	out, err := v.model.Export(v.ExportDir)
	if err != nil {
		return err
	}
	log.Printf("exported %s", out)
	return nil
}

func (v *Viewer) updateCamera(dt float32) {
	if v.Orbit == nil {
		return
	}

	dx := v.Input.CursorX - v.lastCursorX
	dy := v.Input.CursorY - v.lastCursorY
	v.lastCursorX = v.Input.CursorX
	v.lastCursorY = v.Input.CursorY

	if v.Input.IsButtonDown(core.MouseButtonRight) {
		v.Orbit.Orbit(float32(-dx)*0.005, float32(dy)*0.005)
	}
	if v.Input.IsButtonDown(core.MouseButtonMiddle) {
		panScale := v.Orbit.Distance * 0.002
		v.Orbit.Pan(float32(-dx)*panScale, float32(dy)*panScale)
	}
	if scroll := v.Input.ScrollDelta(); scroll != 0 {
		v.Orbit.Zoom(float32(-scroll) * v.Orbit.Distance * 0.1)
	}
}

// handleKeys applies the keyboard surface of the material panel:
//
//	Z — toggle wireframe       T — toggle transparency
//	C — cycle base color       0-9 — opacity from 0.0 to 1.0
//	E — export model.glb       R — reset camera
func (v *Viewer) handleKeys() {
	in := v.Input
	if in.KeyPressed(core.KeyZ) {
		v.Panel.ToggleWireframe()
	}
	if in.KeyPressed(core.KeyT) {
		v.Panel.ToggleTransparency()
	}
	if in.KeyPressed(core.KeyC) {
		v.Panel.CycleColor()
	}
	for d := 0; d <= 9; d++ {
		if in.KeyPressed(core.Key0 + d) {
			v.Panel.SetOpacity(float32(d) / 9.0)
		}
	}
	if in.KeyPressed(core.KeyE) {
		if err := v.Export(); err != nil {
			log.Printf("export: %v", err)
		}
	}
	if in.KeyPressed(core.KeyR) && v.Orbit != nil {
		v.Orbit.Yaw = 0
		v.Orbit.Pitch = 0.3
		v.Orbit.UpdatePosition()
	}
}

// Stats aggregates mesh statistics over the loaded model.
func (v *Viewer) Stats() scene.MeshStats {
	var total scene.MeshStats
	root := v.Scene.ModelRoot()
	if root == nil {
		return total
	}
	root.Traverse(func(n *scene.Node) {
		if n.Mesh == nil {
			return
		}
		s := n.Mesh.Stats()
		total.Vertices += s.Vertices
		total.Triangles += s.Triangles
		total.Polygons += s.Polygons
	})
	return total
}

// StatusLine is the window-title summary shown once per second.
func (v *Viewer) StatusLine(fps float64) string {
	name := "no model"
	if v.model != nil {
		name = v.model.Name
	}
	stats := v.Stats()
	line := fmt.Sprintf("glbview — %s — %d verts, %d tris — %.0f fps",
		name, stats.Vertices, stats.Triangles, fps)
	if v.selected != nil {
		line += fmt.Sprintf(" — selected: %s", v.selected.Name)
	}
	return line
}
