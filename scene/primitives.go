package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"glbview/core"
)

var vec3Up = mgl32.Vec3{0, 1, 0}

func CreateTriangle() *Mesh {
	vertices := []core.Vertex{
		{
			Position: mgl32.Vec3{0, -0.5, 0},
			Normal:   mgl32.Vec3{0, 0, 1},
			UV:       mgl32.Vec2{0.5, 0},
			Color:    core.Color{R: 1, G: 0, B: 0, A: 1},
		},
		{
			Position: mgl32.Vec3{0.5, 0.5, 0},
			Normal:   mgl32.Vec3{0, 0, 1},
			UV:       mgl32.Vec2{1, 1},
			Color:    core.Color{R: 0, G: 1, B: 0, A: 1},
		},
		{
			Position: mgl32.Vec3{-0.5, 0.5, 0},
			Normal:   mgl32.Vec3{0, 0, 1},
			UV:       mgl32.Vec2{0, 1},
			Color:    core.Color{R: 0, G: 0, B: 1, A: 1},
		},
	}
	indices := []uint32{0, 1, 2}
	return CreateMeshFromData("Triangle", vertices, indices)
}

func CreateQuad() *Mesh {
	vertices := []core.Vertex{
		{Position: mgl32.Vec3{-0.5, -0.5, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{0, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{0.5, -0.5, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{1, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{0.5, 0.5, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{1, 1}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{-0.5, 0.5, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{0, 1}, Color: core.ColorWhite},
	}
	indices := []uint32{0, 1, 2, 2, 3, 0}
	return CreateMeshFromData("Quad", vertices, indices)
}

func CreateCube(size float32) *Mesh {
	s := size / 2

	vertices := []core.Vertex{
		// Front face
		{Position: mgl32.Vec3{-s, -s, s}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{0, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{s, -s, s}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{1, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{s, s, s}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{1, 1}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{-s, s, s}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{0, 1}, Color: core.ColorWhite},
		// Back face
		{Position: mgl32.Vec3{-s, -s, -s}, Normal: mgl32.Vec3{0, 0, -1}, UV: mgl32.Vec2{1, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{s, -s, -s}, Normal: mgl32.Vec3{0, 0, -1}, UV: mgl32.Vec2{0, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{s, s, -s}, Normal: mgl32.Vec3{0, 0, -1}, UV: mgl32.Vec2{0, 1}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{-s, s, -s}, Normal: mgl32.Vec3{0, 0, -1}, UV: mgl32.Vec2{1, 1}, Color: core.ColorWhite},
		// Top face
		{Position: mgl32.Vec3{-s, s, -s}, Normal: mgl32.Vec3{0, 1, 0}, UV: mgl32.Vec2{0, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{s, s, -s}, Normal: mgl32.Vec3{0, 1, 0}, UV: mgl32.Vec2{1, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{s, s, s}, Normal: mgl32.Vec3{0, 1, 0}, UV: mgl32.Vec2{1, 1}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{-s, s, s}, Normal: mgl32.Vec3{0, 1, 0}, UV: mgl32.Vec2{0, 1}, Color: core.ColorWhite},
		// Bottom face
		{Position: mgl32.Vec3{-s, -s, -s}, Normal: mgl32.Vec3{0, -1, 0}, UV: mgl32.Vec2{0, 1}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{s, -s, -s}, Normal: mgl32.Vec3{0, -1, 0}, UV: mgl32.Vec2{1, 1}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{s, -s, s}, Normal: mgl32.Vec3{0, -1, 0}, UV: mgl32.Vec2{1, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{-s, -s, s}, Normal: mgl32.Vec3{0, -1, 0}, UV: mgl32.Vec2{0, 0}, Color: core.ColorWhite},
		// Right face
		{Position: mgl32.Vec3{s, -s, -s}, Normal: mgl32.Vec3{1, 0, 0}, UV: mgl32.Vec2{0, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{s, -s, s}, Normal: mgl32.Vec3{1, 0, 0}, UV: mgl32.Vec2{1, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{s, s, s}, Normal: mgl32.Vec3{1, 0, 0}, UV: mgl32.Vec2{1, 1}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{s, s, -s}, Normal: mgl32.Vec3{1, 0, 0}, UV: mgl32.Vec2{0, 1}, Color: core.ColorWhite},
		// Left face
		{Position: mgl32.Vec3{-s, -s, -s}, Normal: mgl32.Vec3{-1, 0, 0}, UV: mgl32.Vec2{1, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{-s, -s, s}, Normal: mgl32.Vec3{-1, 0, 0}, UV: mgl32.Vec2{0, 0}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{-s, s, s}, Normal: mgl32.Vec3{-1, 0, 0}, UV: mgl32.Vec2{0, 1}, Color: core.ColorWhite},
		{Position: mgl32.Vec3{-s, s, -s}, Normal: mgl32.Vec3{-1, 0, 0}, UV: mgl32.Vec2{1, 1}, Color: core.ColorWhite},
	}

	indices := []uint32{
		0, 1, 2, 2, 3, 0,
		4, 5, 6, 6, 7, 4,
		8, 9, 10, 10, 11, 8,
		12, 13, 14, 14, 15, 12,
		16, 17, 18, 18, 19, 16,
		20, 21, 22, 22, 23, 20,
	}

	return CreateMeshFromData("Cube", vertices, indices)
}

// CreateSphere generates a UV-sphere mesh
func CreateSphere(radius float32, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	var vertices []core.Vertex
	var indices []uint32

	for ring := 0; ring <= rings; ring++ {
		phi := float32(ring) * math32.Pi / float32(rings)
		sinPhi := math32.Sin(phi)
		cosPhi := math32.Cos(phi)

		for seg := 0; seg <= segments; seg++ {
			theta := float32(seg) * 2.0 * math32.Pi / float32(segments)
			sinTheta := math32.Sin(theta)
			cosTheta := math32.Cos(theta)

			normal := mgl32.Vec3{sinPhi * cosTheta, cosPhi, sinPhi * sinTheta}
			position := normal.Mul(radius)
			uv := mgl32.Vec2{float32(seg) / float32(segments), float32(ring) / float32(rings)}

			vertices = append(vertices, core.Vertex{
				Position: position,
				Normal:   normal,
				UV:       uv,
				Color:    core.Color{R: 0.8, G: 0.8, B: 0.8, A: 1.0},
			})
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return CreateMeshFromData("Sphere", vertices, indices)
}

// CreateGrid builds a flat grid mesh rendered as GL_LINES.
//
//	size      — total world-space extent (grid goes from -size/2 to +size/2)
//	divisions — number of cells along each axis
//
// The X-axis centre line is red, the Z-axis centre line is blue,
// and all other lines are dark gray.
func CreateGrid(size float32, divisions int) *Mesh {
	if divisions < 1 {
		divisions = 1
	}

	half := size / 2.0
	step := size / float32(divisions)

	gray := core.Color{R: 0.35, G: 0.35, B: 0.35, A: 1}
	red := core.Color{R: 0.8, G: 0.15, B: 0.15, A: 1}  // X axis
	blue := core.Color{R: 0.15, G: 0.35, B: 0.9, A: 1} // Z axis

	var vertices []core.Vertex
	var indices []uint32

	addLine := func(a, b mgl32.Vec3, c core.Color) {
		base := uint32(len(vertices))
		vertices = append(vertices,
			core.Vertex{Position: a, Normal: vec3Up, Color: c},
			core.Vertex{Position: b, Normal: vec3Up, Color: c},
		)
		indices = append(indices, base, base+1)
	}

	// Lines parallel to Z (vary X)
	for i := 0; i <= divisions; i++ {
		x := -half + float32(i)*step
		c := gray
		if i == divisions/2 {
			c = blue // Z axis at x=0
		}
		addLine(mgl32.Vec3{x, 0, -half}, mgl32.Vec3{x, 0, half}, c)
	}

	// Lines parallel to X (vary Z)
	for i := 0; i <= divisions; i++ {
		z := -half + float32(i)*step
		c := gray
		if i == divisions/2 {
			c = red // X axis at z=0
		}
		addLine(mgl32.Vec3{-half, 0, z}, mgl32.Vec3{half, 0, z}, c)
	}

	m := CreateMeshFromData("Grid", vertices, indices)
	m.DrawMode = DrawLines

	unlitMat := DefaultMaterial()
	unlitMat.Name = "GridMaterial"
	unlitMat.Unlit = true
	m.Material = unlitMat

	return m
}
