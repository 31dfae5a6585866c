// Package viewer implements the interactive scene viewer: it owns the
// window, the demo scene and the main loop.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/vantage/internal/config"
	"github.com/Faultbox/vantage/internal/engine/camera"
	"github.com/Faultbox/vantage/internal/engine/input"
	"github.com/Faultbox/vantage/internal/engine/lighting"
	"github.com/Faultbox/vantage/internal/engine/mesh"
	"github.com/Faultbox/vantage/internal/engine/picking"
	"github.com/Faultbox/vantage/internal/engine/renderer"
	"github.com/Faultbox/vantage/internal/engine/scene"
	"github.com/Faultbox/vantage/internal/engine/scenegraph"
	"github.com/Faultbox/vantage/internal/engine/window"
	"github.com/Faultbox/vantage/internal/logger"
	"github.com/Faultbox/vantage/pkg/math"
)

const freeMoveSpeed = 8.0 // World units per second

// Viewer is the running application.
type Viewer struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	scene *scene.Scene

	// Demo scene nodes
	spinner  scenegraph.Handle
	selected scenegraph.Handle
}

// New creates the window, renderer and demo scene.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{cfg: cfg}

	// Create window (this also creates the OpenGL context)
	var err error
	v.window, err = window.New(window.Config{
		Title:      "Vantage",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since the OpenGL context must exist)
	rcfg := renderer.DefaultConfig()
	rcfg.Width = cfg.Graphics.Width
	rcfg.Height = cfg.Graphics.Height
	v.renderer, err = renderer.New(rcfg)
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.input = input.New()
	v.scene = scene.New(v.newCamera())
	v.buildDemoScene()

	logger.Info("viewer initialized",
		zap.String("camera", cfg.Camera.Mode),
		zap.Int("nodes", v.scene.Len()),
	)
	return v, nil
}

func (v *Viewer) newCamera() *camera.Camera {
	g := v.cfg.Graphics
	proj := camera.Perspective(
		g.FovDegrees*math.Pi/180,
		float32(g.Width)/float32(g.Height),
		g.NearClip,
		g.FarClip,
	)

	c := v.cfg.Camera
	var cam *camera.Camera
	if c.Mode == "free" {
		cam = camera.NewCamera(proj)
		cam.Position = math.Vec3{Y: 3, Z: -c.OrbitDistance}
		cam.LookAt(math.Vec3{})
	} else {
		cam = camera.NewOrbitCamera(proj, math.Vec3{}, c.OrbitDistance)
	}
	cam.MinDistance = c.MinDistance
	cam.MaxDistance = c.MaxDistance
	cam.DragSensitivity = c.DragSensitivity
	cam.ZoomSensitivity = c.ZoomSensitivity
	return cam
}

// buildDemoScene fills the scene with a ground grid, a spinning cube
// hierarchy and a couple of lights.
func (v *Viewer) buildDemoScene() {
	s := v.scene

	grid := s.Meshes.Add(mesh.GridVertices(16, 1))
	cube := s.Meshes.Add(mesh.CubeVertices(1))

	s.NewNode().At(math.Vec3{Y: -0.5}).WithStaticMesh(grid).Handle()

	// Parent cube with two orbiting children, to exercise the hierarchy.
	v.spinner = s.NewNode().At(math.Vec3{Y: 0.5}).WithStaticMesh(cube).Handle()
	s.NewNode().
		Under(v.spinner).
		At(math.Vec3{X: 2}).
		Scaled(math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}).
		WithStaticMesh(cube)
	s.NewNode().
		Under(v.spinner).
		At(math.Vec3{Z: 2}).
		Scaled(math.Vec3{X: 0.25, Y: 0.25, Z: 0.25}).
		WithStaticMesh(cube)

	// Sun plus a warm point light near the cubes.
	s.NewNode().WithLight(lighting.Light{
		Kind:      lighting.Directional,
		Direction: lighting.SunDirection(45, 60).Negate(),
		Color:     [3]float32{1, 1, 0.95},
		Intensity: 0.8,
	})
	s.NewNode().At(math.Vec3{X: 3, Y: 2}).WithLight(lighting.Light{
		Kind:      lighting.Point,
		Color:     [3]float32{1, 0.6, 0.3},
		Range:     8,
		Intensity: 1,
	})
}

// Run starts the main loop.
func (v *Viewer) Run() error {
	v.running = true
	lastTime := time.Now()

	logger.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if v.input.Update() {
			break
		}
		for _, ev := range v.input.Events() {
			v.handleEvent(ev)
		}

		v.update(dt)
		v.renderer.RenderScene(v.scene)
		v.window.SwapBuffers()
	}

	return nil
}

func (v *Viewer) handleEvent(ev input.Event) {
	cam := v.scene.Camera

	switch ev.Type {
	case input.EventWindowResize:
		v.renderer.Resize(ev.Width, ev.Height)
		cam.Projection.Aspect = float32(ev.Width) / float32(ev.Height)

	case input.EventKeyDown:
		switch ev.Key {
		case sdl.SCANCODE_ESCAPE:
			v.running = false
		case sdl.SCANCODE_TAB:
			v.toggleCameraMode()
		}

	case input.EventMouseMove:
		if !v.input.IsButtonHeld(sdl.BUTTON_LEFT) {
			return
		}
		if cam.Mode() == camera.ModeOrbit {
			cam.HandleDrag(float32(ev.RelX), float32(ev.RelY))
		} else {
			cam.Rotate(
				float32(ev.RelX)*cam.DragSensitivity,
				float32(ev.RelY)*cam.DragSensitivity,
			)
		}

	case input.EventMouseWheel:
		cam.HandleZoom(float32(ev.WheelY))

	case input.EventMouseDown:
		if ev.Button == sdl.BUTTON_RIGHT {
			v.pick(ev.MouseX, ev.MouseY)
		}
	}
}

func (v *Viewer) toggleCameraMode() {
	cam := v.scene.Camera
	if cam.Mode() == camera.ModeOrbit {
		cam.SwitchToFree()
		logger.Info("camera mode", zap.String("mode", "free"))
	} else {
		cam.SwitchToOrbit(math.Vec3{}, 0)
		logger.Info("camera mode", zap.String("mode", "orbit"))
	}
}

func (v *Viewer) pick(mouseX, mouseY int) {
	w, h := v.window.GetSize()
	ray := picking.ScreenToRay(
		float32(mouseX), float32(mouseY),
		float32(w), float32(h),
		v.scene.ViewProjection().Inverse(),
	)

	if hit, dist, ok := picking.NearestMeshNode(v.scene, ray); ok {
		v.selected = hit
		logger.Debug("picked node",
			zap.Uint32("index", hit.Index),
			zap.Float32("distance", dist),
		)
	} else {
		v.selected = scenegraph.Nil
	}
}

func (v *Viewer) update(dt float32) {
	// Spin the parent cube; the children follow through the hierarchy.
	if n := v.scene.Node(v.spinner); n != nil {
		spin := math.QuatFromAxisAngle(math.Up(), dt*0.8)
		n.Transform.Rotation = spin.Mul(n.Transform.Rotation).Normalize()
	}

	// Free camera movement
	cam := v.scene.Camera
	if cam.Mode() == camera.ModeFree {
		step := freeMoveSpeed * dt
		var x, z float32
		if v.input.IsKeyHeld(sdl.SCANCODE_W) {
			z += step
		}
		if v.input.IsKeyHeld(sdl.SCANCODE_S) {
			z -= step
		}
		if v.input.IsKeyHeld(sdl.SCANCODE_D) {
			x += step
		}
		if v.input.IsKeyHeld(sdl.SCANCODE_A) {
			x -= step
		}
		if x != 0 || z != 0 {
			cam.Move(x, 0, z)
		}
	}

	v.scene.Update(dt * 1000)
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.scene != nil {
		v.scene.Destroy()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
