package picking

import (
	"testing"

	"github.com/Faultbox/vantage/internal/engine/camera"
	"github.com/Faultbox/vantage/internal/engine/mesh"
	"github.com/Faultbox/vantage/internal/engine/scene"
	"github.com/Faultbox/vantage/internal/engine/scenegraph"
	"github.com/Faultbox/vantage/pkg/math"
)

func TestScreenCenterRayMatchesCameraForward(t *testing.T) {
	cam := camera.NewCamera(camera.Perspective(math.Pi/2, 1, 0.1, 100))
	cam.Position = math.Vec3{X: 1, Y: 2, Z: -5}

	inv := cam.ViewProjection().Inverse()
	r := ScreenToRay(400, 300, 800, 600, inv)

	if !r.Direction.ApproxEqual(cam.Forward(), 0.01) {
		t.Errorf("center ray direction = %v, want %v", r.Direction, cam.Forward())
	}
	// The origin sits on the near plane in front of the camera.
	if d := r.Origin.Sub(cam.Position).Length(); d > 0.2 {
		t.Errorf("ray origin %v too far from the camera", r.Origin)
	}
}

func TestScreenEdgeRaysDiverge(t *testing.T) {
	cam := camera.NewCamera(camera.Perspective(math.Pi/2, 1, 0.1, 100))

	inv := cam.ViewProjection().Inverse()
	left := ScreenToRay(0, 300, 800, 600, inv)
	right := ScreenToRay(800, 300, 800, 600, inv)

	if left.Direction.X >= 0 {
		t.Errorf("left edge ray direction = %v, want negative X", left.Direction)
	}
	if right.Direction.X <= 0 {
		t.Errorf("right edge ray direction = %v, want positive X", right.Direction)
	}
}

func TestIntersectPlaneY(t *testing.T) {
	r := Ray{
		Origin:    math.Vec3{Y: 10},
		Direction: math.Vec3{Y: -1},
	}

	p, ok := r.IntersectPlaneY(0)
	if !ok {
		t.Fatal("downward ray missed the ground plane")
	}
	if !p.ApproxEqual(math.Vec3{}, 0.001) {
		t.Errorf("intersection = %v, want origin", p)
	}

	// Ray pointing away from the plane.
	r.Direction = math.Vec3{Y: 1}
	if _, ok := r.IntersectPlaneY(0); ok {
		t.Error("upward ray should miss a plane below it")
	}

	// Ray parallel to the plane.
	r.Direction = math.Vec3{X: 1}
	if _, ok := r.IntersectPlaneY(0); ok {
		t.Error("parallel ray should miss the plane")
	}
}

func TestIntersectSphere(t *testing.T) {
	r := Ray{
		Origin:    math.Vec3{},
		Direction: math.Vec3{Z: 1},
	}

	t1, hit := r.IntersectSphere(math.Vec3{Z: 10}, 2)
	if !hit {
		t.Fatal("ray through sphere center missed")
	}
	if t1 < 7.999 || t1 > 8.001 {
		t.Errorf("hit distance = %v, want 8", t1)
	}

	if _, hit := r.IntersectSphere(math.Vec3{X: 10, Z: 10}, 2); hit {
		t.Error("ray should miss an offset sphere")
	}
	if _, hit := r.IntersectSphere(math.Vec3{Z: -10}, 2); hit {
		t.Error("ray should miss a sphere behind it")
	}

	// Origin inside the sphere reports the exit distance.
	t2, hit := r.IntersectSphere(math.Vec3{}, 3)
	if !hit {
		t.Fatal("ray from sphere center missed")
	}
	if t2 < 2.999 || t2 > 3.001 {
		t.Errorf("exit distance = %v, want 3", t2)
	}
}

func TestNearestMeshNodePicksClosest(t *testing.T) {
	cam := camera.NewCamera(camera.Perspective(math.Pi/2, 1, 0.1, 100))
	s := scene.New(cam)
	mh := s.Meshes.AddMesh(&mesh.Mesh{Bounds: mesh.Sphere{Radius: 1}})

	near := s.CreateNode(scenegraph.Nil)
	s.Node(near).Transform.Position = math.Vec3{Z: 5}
	s.AttachStaticMesh(near, mh)

	far := s.CreateNode(scenegraph.Nil)
	s.Node(far).Transform.Position = math.Vec3{Z: 20}
	s.AttachStaticMesh(far, mh)

	r := Ray{Origin: math.Vec3{}, Direction: math.Vec3{Z: 1}}
	h, dist, ok := NearestMeshNode(s, r)
	if !ok {
		t.Fatal("pick ray missed both nodes")
	}
	if h != near {
		t.Errorf("picked %v, want the nearer node %v", h, near)
	}
	if dist < 3.999 || dist > 4.001 {
		t.Errorf("pick distance = %v, want 4", dist)
	}

	miss := Ray{Origin: math.Vec3{}, Direction: math.Vec3{Y: 1}}
	if _, _, ok := NearestMeshNode(s, miss); ok {
		t.Error("upward ray should miss every node")
	}
}
