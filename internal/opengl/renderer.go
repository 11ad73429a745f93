package opengl

import (
	"fmt"
	"sort"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"glbview/core"
	"glbview/scene"
)

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
	HasIndices bool
}

// Renderer is the OpenGL rendering backend: a forward renderer with one
// directional light, flat ambient, base-color textures, and an additive
// emissive term used by the hover highlight.
type Renderer struct {
	program uint32

	// Vertex transform uniforms
	mvpLoc   int32
	modelLoc int32

	// Lighting uniforms
	lightDirLoc       int32
	lightColorLoc     int32
	lightIntensityLoc int32
	ambientColorLoc   int32

	// Camera uniform (for specular)
	cameraPosLoc int32

	// Material uniforms
	matBaseColorLoc int32
	matOpacityLoc   int32
	matSpecularLoc  int32
	matShininessLoc int32
	matEmissiveLoc  int32
	unlitLoc        int32

	// Texture uniforms
	baseColorTexLoc int32
	hasTextureLoc   int32

	gpuMeshes map[*scene.Mesh]*GPUMesh
}

// NewRenderer initialises OpenGL.
// Must be called after the GLFW window context is made current.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Printf("OpenGL version: %s\n", version)

	prog, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("shader compile: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)

	r := &Renderer{
		program: prog,

		mvpLoc:   gl.GetUniformLocation(prog, gl.Str("mvp\x00")),
		modelLoc: gl.GetUniformLocation(prog, gl.Str("model\x00")),

		lightDirLoc:       gl.GetUniformLocation(prog, gl.Str("lightDir\x00")),
		lightColorLoc:     gl.GetUniformLocation(prog, gl.Str("lightColor\x00")),
		lightIntensityLoc: gl.GetUniformLocation(prog, gl.Str("lightIntensity\x00")),
		ambientColorLoc:   gl.GetUniformLocation(prog, gl.Str("ambientColor\x00")),
		cameraPosLoc:      gl.GetUniformLocation(prog, gl.Str("cameraPos\x00")),

		matBaseColorLoc: gl.GetUniformLocation(prog, gl.Str("matBaseColor\x00")),
		matOpacityLoc:   gl.GetUniformLocation(prog, gl.Str("matOpacity\x00")),
		matSpecularLoc:  gl.GetUniformLocation(prog, gl.Str("matSpecular\x00")),
		matShininessLoc: gl.GetUniformLocation(prog, gl.Str("matShininess\x00")),
		matEmissiveLoc:  gl.GetUniformLocation(prog, gl.Str("matEmissive\x00")),
		unlitLoc:        gl.GetUniformLocation(prog, gl.Str("unlit\x00")),

		baseColorTexLoc: gl.GetUniformLocation(prog, gl.Str("baseColorTex\x00")),
		hasTextureLoc:   gl.GetUniformLocation(prog, gl.Str("hasTexture\x00")),

		gpuMeshes: make(map[*scene.Mesh]*GPUMesh),
	}

	// Base color texture on unit 0
	gl.UseProgram(prog)
	gl.Uniform1i(r.baseColorTexLoc, 0)

	return r, nil
}

// SetViewport resizes the OpenGL viewport.
func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// BeginFrame clears the framebuffer and sets per-frame lighting and camera
// uniforms.
func (r *Renderer) BeginFrame(sky core.Color, lights []*scene.Light, ambient core.Color, camPos mgl32.Vec3) {
	gl.ClearColor(sky.R, sky.G, sky.B, sky.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)

	gl.Uniform3f(r.ambientColorLoc, ambient.R, ambient.G, ambient.B)
	gl.Uniform3f(r.cameraPosLoc, camPos.X(), camPos.Y(), camPos.Z())

	// Defaults for the directional light
	dirLight := mgl32.Vec3{0.5, -1, -0.5}.Normalize()
	dirColor := core.ColorWhite
	dirIntensity := float32(0.8)

	for _, l := range lights {
		if l != nil && l.Type == scene.LightTypeDirectional {
			dirLight = l.Direction.Normalize()
			dirColor = l.Color
			dirIntensity = l.Intensity
		}
	}

	gl.Uniform3f(r.lightDirLoc, dirLight.X(), dirLight.Y(), dirLight.Z())
	gl.Uniform3f(r.lightColorLoc, dirColor.R, dirColor.G, dirColor.B)
	gl.Uniform1f(r.lightIntensityLoc, dirIntensity)
}

// RenderScene draws all visible nodes. Opaque nodes draw first; transparent
// nodes follow back-to-front with blending on and depth writes off, so they
// layer correctly over the opaque pass.
func (r *Renderer) RenderScene(s *scene.Scene) {
	cam := s.Camera
	if cam == nil {
		return
	}
	viewProj := cam.GetViewProjectionMatrix()

	nodes := s.VisibleNodes()
	var opaque, transparent []*scene.Node
	for _, n := range nodes {
		mat := n.Mesh.Material
		if mat != nil && mat.Transparent {
			transparent = append(transparent, n)
		} else {
			opaque = append(opaque, n)
		}
	}

	for _, n := range opaque {
		r.drawNode(n, viewProj)
	}

	if len(transparent) > 0 {
		sort.Slice(transparent, func(i, j int) bool {
			di := nodeDepth(transparent[i], cam.Position)
			dj := nodeDepth(transparent[j], cam.Position)
			return di > dj // farthest first
		})
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		gl.DepthMask(false)
		for _, n := range transparent {
			r.drawNode(n, viewProj)
		}
		gl.DepthMask(true)
		gl.Disable(gl.BLEND)
	}
}

func nodeDepth(n *scene.Node, camPos mgl32.Vec3) float32 {
	world := n.GetWorldMatrix()
	origin := mgl32.TransformCoordinate(mgl32.Vec3{}, world)
	return origin.Sub(camPos).Len()
}

func (r *Renderer) drawNode(n *scene.Node, viewProj mgl32.Mat4) {
	model := n.GetWorldMatrix()
	mvp := viewProj.Mul4(model)
	r.DrawMesh(n.Mesh, mvp, model)
}

// DrawMesh draws a mesh with the given MVP and model matrices. Material
// properties are read from mesh.Material; a wireframe material switches the
// polygon mode around its own draw call only.
func (r *Renderer) DrawMesh(mesh *scene.Mesh, mvp, model mgl32.Mat4) {
	gpu := r.ensureUploaded(mesh)
	if gpu == nil {
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, &mvp[0])
	gl.UniformMatrix4fv(r.modelLoc, 1, false, &model[0])

	mat := mesh.Material
	if mat == nil {
		mat = scene.DefaultMaterial()
	}
	r.applyMaterial(mat)

	// Resolve draw primitive from mesh.DrawMode
	primitive := uint32(gl.TRIANGLES)
	switch mesh.DrawMode {
	case scene.DrawLines:
		primitive = gl.LINES
	case scene.DrawPoints:
		primitive = gl.POINTS
	}

	if mat.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	gl.BindVertexArray(gpu.VAO)
	if gpu.HasIndices {
		gl.DrawElements(primitive, gpu.IndexCount, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(primitive, 0, int32(len(mesh.Vertices)))
	}
	gl.BindVertexArray(0)

	if mat.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// applyMaterial sets all material-related shader uniforms and binds textures.
// Must be called while r.program is active.
func (r *Renderer) applyMaterial(mat *scene.Material) {
	gl.Uniform3f(r.matBaseColorLoc, mat.BaseColor.R, mat.BaseColor.G, mat.BaseColor.B)
	gl.Uniform3f(r.matSpecularLoc, mat.Specular.R, mat.Specular.G, mat.Specular.B)
	gl.Uniform1f(r.matShininessLoc, mat.Shininess)
	gl.Uniform3f(r.matEmissiveLoc, mat.Emissive.R, mat.Emissive.G, mat.Emissive.B)

	opacity := float32(1)
	if mat.Transparent {
		opacity = mat.Opacity
	}
	gl.Uniform1f(r.matOpacityLoc, opacity)

	if mat.Unlit {
		gl.Uniform1i(r.unlitLoc, 1)
	} else {
		gl.Uniform1i(r.unlitLoc, 0)
	}

	if mat.DoubleSided {
		gl.Disable(gl.CULL_FACE)
	} else {
		gl.Enable(gl.CULL_FACE)
	}

	// Base color texture (unit 0)
	if tex := mat.BaseColorTexture; tex != nil && tex.GLID != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, tex.GLID)
		gl.Uniform1i(r.hasTextureLoc, 1)
	} else {
		gl.Uniform1i(r.hasTextureLoc, 0)
	}
}

// ── Resource management ───────────────────────────────────────────────────────

// ReleaseMesh frees GPU buffers for the given mesh.
func (r *Renderer) ReleaseMesh(mesh *scene.Mesh) {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		gl.DeleteVertexArrays(1, &gpu.VAO)
		gl.DeleteBuffers(1, &gpu.VBO)
		if gpu.HasIndices {
			gl.DeleteBuffers(1, &gpu.EBO)
		}
		delete(r.gpuMeshes, mesh)
		mesh.GPUData = nil
	}
}

// ReleaseNodeTree frees GPU buffers for every mesh under the given node.
// Called when a model is replaced.
func (r *Renderer) ReleaseNodeTree(root *scene.Node) {
	if root == nil {
		return
	}
	root.Traverse(func(n *scene.Node) {
		if n.Mesh != nil {
			r.ReleaseMesh(n.Mesh)
		}
	})
}

// Destroy releases all GPU resources.
func (r *Renderer) Destroy() {
	for mesh := range r.gpuMeshes {
		r.ReleaseMesh(mesh)
	}
	gl.DeleteProgram(r.program)
}

// ── Internal helpers ──────────────────────────────────────────────────────────

// ensureUploaded uploads vertex/index data if not already done.
func (r *Renderer) ensureUploaded(mesh *scene.Mesh) *GPUMesh {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		return gpu
	}
	if len(mesh.Vertices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))

	gpu := &GPUMesh{
		IndexCount: int32(len(mesh.Indices)),
		HasIndices: len(mesh.Indices) > 0,
	}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	normOff := int(unsafe.Offsetof(v.Normal))
	uvOff := int(unsafe.Offsetof(v.UV))
	colorOff := int(unsafe.Offsetof(v.Color))

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))

	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 4, gl.FLOAT, false, stride, gl.PtrOffset(colorOff))

	if gpu.HasIndices {
		gl.GenBuffers(1, &gpu.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
			len(mesh.Indices)*4,
			gl.Ptr(mesh.Indices),
			gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)

	r.gpuMeshes[mesh] = gpu
	mesh.GPUData = gpu
	return gpu
}

// ── Shader helpers ────────────────────────────────────────────────────────────

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
