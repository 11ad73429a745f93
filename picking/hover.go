package picking

import (
	"glbview/core"
	"glbview/scene"
)

// Highlighter tracks the hovered node and owns the emissive save/restore
// discipline. It is a two-state machine: either idle, or highlighting
// exactly one node whose original emissive value it holds.
//
// A node without a material is still tracked as hovered, but its (absent)
// emissive is never touched.
type Highlighter struct {
	// Tint is the emissive color applied to the hovered node.
	Tint core.Color

	node   *scene.Node
	saved  core.Color
	tinted bool
}

// DefaultTint is a warm highlight that reads well on most materials.
var DefaultTint = core.Color{R: 0.35, G: 0.27, B: 0.05, A: 1}

func NewHighlighter(tint core.Color) *Highlighter {
	return &Highlighter{Tint: tint}
}

// Current returns the hovered node, or nil.
func (h *Highlighter) Current() *scene.Node {
	return h.node
}

// Update moves the machine to the given hover candidate. Passing nil clears
// the hover. Transitions:
//
//   - candidate == current: re-apply the tint (idempotent)
//   - candidate != current: restore the previous node's emissive, save the
//     candidate's, then tint the candidate
//   - candidate == nil: restore and clear
func (h *Highlighter) Update(candidate *scene.Node) {
	if candidate == h.node {
		h.apply()
		return
	}

	h.restore()
	h.node = candidate
	if candidate == nil {
		return
	}
	if mat := materialOf(candidate); mat != nil {
		h.saved = mat.Emissive
		h.tinted = true
	}
	h.apply()
}

// Clear restores any applied tint and resets to idle.
func (h *Highlighter) Clear() {
	h.restore()
	h.node = nil
}

func (h *Highlighter) apply() {
	if h.node == nil || !h.tinted {
		return
	}
	if mat := materialOf(h.node); mat != nil {
		mat.Emissive = h.Tint
	}
}

func (h *Highlighter) restore() {
	if !h.tinted {
		return
	}
	if mat := materialOf(h.node); mat != nil {
		mat.Emissive = h.saved
	}
	h.tinted = false
}

func materialOf(n *scene.Node) *scene.Material {
	if n == nil || n.Mesh == nil {
		return nil
	}
	return n.Mesh.Material
}
