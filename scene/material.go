package scene

import (
	"glbview/core"
)

// Material describes surface appearance for a mesh. The emissive channel is
// also the highlight overlay used while an object is hovered, so it must be
// readable and writable independently of the lit color.
type Material struct {
	Name        string
	BaseColor   core.Color // base diffuse color (multiplied with texture if set)
	Opacity     float32    // alpha scalar in [0, 1]; applied only when Transparent
	Transparent bool       // enable alpha blending
	Wireframe   bool       // render as lines instead of filled triangles
	Emissive    core.Color // self-emitted color, additive, independent of lighting
	Specular    core.Color // Phong specular highlight color
	Shininess   float32    // Phong shininess exponent
	Unlit       bool       // skip lighting, output raw base color/texture
	DoubleSided bool       // disable back-face culling

	// Optional base color texture; if set, multiplied with BaseColor.
	// Upload via opengl.UploadTexture before rendering.
	BaseColorTexture *Texture
}

// DefaultMaterial returns a plain white matte material.
func DefaultMaterial() *Material {
	return &Material{
		Name:      "Default",
		BaseColor: core.ColorWhite,
		Opacity:   1,
		Specular:  core.Color{R: 0.3, G: 0.3, B: 0.3, A: 1},
		Shininess: 32,
	}
}

// NewMaterial creates a material with the given base color.
func NewMaterial(name string, baseColor core.Color) *Material {
	return &Material{
		Name:      name,
		BaseColor: baseColor,
		Opacity:   1,
		Specular:  core.Color{R: 0.5, G: 0.5, B: 0.5, A: 1},
		Shininess: 32,
	}
}

// SetBaseColorHex sets the base color from a "#rrggbb" string, preserving
// the current alpha.
func (m *Material) SetBaseColorHex(hex string) error {
	c, err := core.ParseHexColor(hex)
	if err != nil {
		return err
	}
	c.A = m.BaseColor.A
	m.BaseColor = c
	return nil
}

// BaseColorHex returns the base color as "#rrggbb".
func (m *Material) BaseColorHex() string {
	return m.BaseColor.Hex()
}

// SetOpacity clamps the value to [0, 1] before storing it.
func (m *Material) SetOpacity(v float32) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	m.Opacity = v
}
