package picking

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"glbview/scene"
)

// Ray represents a ray in 3D space
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// Hit stores the result of a ray intersection test
type Hit struct {
	Ok       bool
	Distance float32
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Node     *scene.Node
	Triangle int // triangle index in the mesh
}

// ScreenToRay converts a screen-space pointer position to a world-space ray
func ScreenToRay(pointerX, pointerY, screenWidth, screenHeight float32, camera *scene.Camera) Ray {
	// Convert to normalized device coordinates (-1 to 1)
	ndcX := (2.0*pointerX)/screenWidth - 1.0
	ndcY := 1.0 - (2.0*pointerY)/screenHeight // flip Y

	clipNear := mgl32.Vec4{ndcX, ndcY, 0.0, 1.0}

	invProj := camera.GetProjectionMatrix().Inv()
	invView := camera.GetViewMatrix().Inv()

	// Transform to view space
	viewNear := invProj.Mul4x1(clipNear)
	viewNear = viewNear.Mul(1.0 / viewNear.W())

	// Transform to world space
	worldNear := invView.Mul4x1(mgl32.Vec4{viewNear.X(), viewNear.Y(), viewNear.Z(), 1.0})

	direction := mgl32.Vec3{
		worldNear.X() - camera.Position.X(),
		worldNear.Y() - camera.Position.Y(),
		worldNear.Z() - camera.Position.Z(),
	}.Normalize()

	return Ray{
		Origin:    camera.Position,
		Direction: direction,
	}
}

// Pick tests a ray against all visible, pickable triangle meshes in the
// scene and returns the closest hit. An empty Hit is a normal outcome, not
// an error.
func Pick(ray Ray, s *scene.Scene) Hit {
	closest := Hit{Distance: math32.MaxFloat32}

	for _, node := range s.VisibleNodes() {
		if !node.Pickable || node.Mesh.DrawMode != scene.DrawTriangles {
			continue
		}

		worldMatrix := node.GetWorldMatrix()
		aabb := worldAABB(node.Mesh, worldMatrix)

		// Broad phase: AABB test
		t, hit := rayAABBIntersect(ray, aabb)
		if !hit || t > closest.Distance {
			continue
		}

		// Narrow phase: triangle test
		result := rayMeshIntersect(ray, node)
		if result.Ok && result.Distance < closest.Distance {
			closest = result
		}
	}

	if !closest.Ok {
		return Hit{}
	}
	return closest
}

// worldAABB transforms the mesh's cached local AABB into world space by its
// 8 corners. The result is conservative, which is all the broad phase needs.
func worldAABB(mesh *scene.Mesh, worldMatrix mgl32.Mat4) scene.AABB {
	local := mesh.LocalAABB
	if !mesh.HasLocalAABB {
		return scene.AABB{}
	}

	aabb := scene.AABB{
		Min: mgl32.Vec3{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32},
		Max: mgl32.Vec3{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32},
	}
	for _, corner := range local.Corners() {
		p := mgl32.TransformCoordinate(corner, worldMatrix)
		for a := 0; a < 3; a++ {
			if p[a] < aabb.Min[a] {
				aabb.Min[a] = p[a]
			}
			if p[a] > aabb.Max[a] {
				aabb.Max[a] = p[a]
			}
		}
	}
	return aabb
}

// rayAABBIntersect tests ray-AABB intersection with the slab method
func rayAABBIntersect(ray Ray, aabb scene.AABB) (float32, bool) {
	invDir := mgl32.Vec3{
		1.0 / ray.Direction.X(),
		1.0 / ray.Direction.Y(),
		1.0 / ray.Direction.Z(),
	}

	t1 := (aabb.Min.X() - ray.Origin.X()) * invDir.X()
	t2 := (aabb.Max.X() - ray.Origin.X()) * invDir.X()
	t3 := (aabb.Min.Y() - ray.Origin.Y()) * invDir.Y()
	t4 := (aabb.Max.Y() - ray.Origin.Y()) * invDir.Y()
	t5 := (aabb.Min.Z() - ray.Origin.Z()) * invDir.Z()
	t6 := (aabb.Max.Z() - ray.Origin.Z()) * invDir.Z()

	tmin := math32.Max(math32.Max(math32.Min(t1, t2), math32.Min(t3, t4)), math32.Min(t5, t6))
	tmax := math32.Min(math32.Min(math32.Max(t1, t2), math32.Max(t3, t4)), math32.Max(t5, t6))

	if tmax < 0 || tmin > tmax {
		return 0, false
	}

	return tmin, true
}

// rayMeshIntersect performs per-triangle intersection using the
// Möller–Trumbore algorithm. Indexed meshes walk the index buffer; soup
// meshes walk consecutive vertex triples.
func rayMeshIntersect(ray Ray, node *scene.Node) Hit {
	mesh := node.Mesh
	worldMatrix := node.GetWorldMatrix()
	closest := Hit{Distance: math32.MaxFloat32}

	triangle := func(idx int, v0, v1, v2 mgl32.Vec3) {
		t, hit := mollerTrumbore(ray, v0, v1, v2)
		if hit && t > 0 && t < closest.Distance {
			closest.Ok = true
			closest.Distance = t
			closest.Point = ray.Origin.Add(ray.Direction.Mul(t))
			closest.Normal = v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
			closest.Node = node
			closest.Triangle = idx
		}
	}

	if len(mesh.Indices) > 0 {
		for i := 0; i+2 < len(mesh.Indices); i += 3 {
			i0, i1, i2 := mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]
			v0 := mgl32.TransformCoordinate(mesh.Vertices[i0].Position, worldMatrix)
			v1 := mgl32.TransformCoordinate(mesh.Vertices[i1].Position, worldMatrix)
			v2 := mgl32.TransformCoordinate(mesh.Vertices[i2].Position, worldMatrix)
			triangle(i/3, v0, v1, v2)
		}
	} else {
		for i := 0; i+2 < len(mesh.Vertices); i += 3 {
			v0 := mgl32.TransformCoordinate(mesh.Vertices[i].Position, worldMatrix)
			v1 := mgl32.TransformCoordinate(mesh.Vertices[i+1].Position, worldMatrix)
			v2 := mgl32.TransformCoordinate(mesh.Vertices[i+2].Position, worldMatrix)
			triangle(i/3, v0, v1, v2)
		}
	}

	return closest
}

// mollerTrumbore implements the Möller–Trumbore ray-triangle intersection algorithm
func mollerTrumbore(ray Ray, v0, v1, v2 mgl32.Vec3) (float32, bool) {
	const epsilon = 0.0000001

	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	if a > -epsilon && a < epsilon {
		return 0, false // parallel
	}

	f := 1.0 / a
	s := ray.Origin.Sub(v0)
	u := f * s.Dot(h)

	if u < 0.0 || u > 1.0 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)

	if v < 0.0 || u+v > 1.0 {
		return 0, false
	}

	t := f * edge2.Dot(q)
	return t, t > epsilon
}
