package viewer

import (
	"glbview/scene"
)

// MaterialPanel mirrors the selected node's material for display and applies
// edits straight back to it. Every mutation is immediate; there is no
// transaction and no undo. With no selection, all operations are no-ops.
type MaterialPanel struct {
	BaseColorHex string
	Wireframe    bool
	Transparent  bool
	Opacity      float32
	Stats        scene.MeshStats

	// Palette cycled by CycleColor, for keyboard-driven color edits.
	Palette    []string
	paletteIdx int

	selected *scene.Node
}

// DefaultPalette is a small set of distinct base colors.
var DefaultPalette = []string{
	"#ffffff", "#e74c3c", "#2ecc71", "#3498db", "#f1c40f", "#9b59b6",
}

func NewMaterialPanel() *MaterialPanel {
	return &MaterialPanel{
		BaseColorHex: "#ffffff",
		Opacity:      1,
		Palette:      DefaultPalette,
	}
}

// Selected returns the node the panel is bound to, or nil.
func (p *MaterialPanel) Selected() *scene.Node {
	return p.selected
}

// SetSelected rebinds the panel to a node, re-reading its live material
// values and statistics. Any unsaved edits from the previous binding are
// discarded. A nil node clears the panel.
func (p *MaterialPanel) SetSelected(n *scene.Node) {
	p.selected = n
	p.paletteIdx = 0
	if n == nil || n.Mesh == nil {
		p.BaseColorHex = "#ffffff"
		p.Wireframe = false
		p.Transparent = false
		p.Opacity = 1
		p.Stats = scene.MeshStats{}
		return
	}
	p.Stats = n.Mesh.Stats()
	mat := n.Mesh.Material
	if mat == nil {
		p.BaseColorHex = "#ffffff"
		p.Wireframe = false
		p.Transparent = false
		p.Opacity = 1
		return
	}
	p.BaseColorHex = mat.BaseColorHex()
	p.Wireframe = mat.Wireframe
	p.Transparent = mat.Transparent
	p.Opacity = mat.Opacity
}

func (p *MaterialPanel) material() *scene.Material {
	if p.selected == nil || p.selected.Mesh == nil {
		return nil
	}
	return p.selected.Mesh.Material
}

// SetBaseColor parses a "#rrggbb" value and applies it to the selected
// material.
func (p *MaterialPanel) SetBaseColor(hex string) error {
	mat := p.material()
	if mat == nil {
		return nil
	}
	if err := mat.SetBaseColorHex(hex); err != nil {
		return err
	}
	p.BaseColorHex = mat.BaseColorHex()
	return nil
}

// CycleColor advances through the palette and applies the next color.
func (p *MaterialPanel) CycleColor() {
	if p.material() == nil || len(p.Palette) == 0 {
		return
	}
	p.paletteIdx = (p.paletteIdx + 1) % len(p.Palette)
	// Palette entries are fixed hex strings, so this cannot fail.
	_ = p.SetBaseColor(p.Palette[p.paletteIdx])
}

func (p *MaterialPanel) ToggleWireframe() {
	mat := p.material()
	if mat == nil {
		return
	}
	mat.Wireframe = !mat.Wireframe
	p.Wireframe = mat.Wireframe
}

func (p *MaterialPanel) ToggleTransparency() {
	mat := p.material()
	if mat == nil {
		return
	}
	mat.Transparent = !mat.Transparent
	p.Transparent = mat.Transparent
}

// SetOpacity clamps to [0, 1] and applies to the selected material.
func (p *MaterialPanel) SetOpacity(v float32) {
	mat := p.material()
	if mat == nil {
		return
	}
	mat.SetOpacity(v)
	p.Opacity = mat.Opacity
}
