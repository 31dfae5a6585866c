// Package renderer draws a scene's visible meshes with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/vantage/internal/engine/lighting"
	"github.com/Faultbox/vantage/internal/engine/renderer/shaders"
	"github.com/Faultbox/vantage/internal/engine/scene"
	"github.com/Faultbox/vantage/internal/engine/shader"
	"github.com/Faultbox/vantage/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int

	ClearColor [3]float32
	BaseColor  [3]float32
}

// DefaultConfig returns renderer defaults matching a 720p window.
func DefaultConfig() Config {
	return Config{
		Width:      1280,
		Height:     720,
		ClearColor: [3]float32{0.1, 0.1, 0.15},
		BaseColor:  [3]float32{0.8, 0.8, 0.8},
	}
}

// Renderer owns the mesh shader program and issues the draw calls for
// one scene per frame.
type Renderer struct {
	config  Config
	program uint32

	// Uniform locations
	locViewProj  int32
	locModel     int32
	locBaseColor int32
	locAmbient   int32

	locSunDir       int32
	locSunColor     int32
	locSunIntensity int32

	locPointLightCount       int32
	locPointLightPositions   int32
	locPointLightColors      int32
	locPointLightRanges      int32
	locPointLightIntensities int32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	// Setup default OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], 1.0)

	program, err := shader.CompileProgram(shaders.MeshVertexShader, shaders.MeshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create mesh shader: %w", err)
	}
	r.program = program

	// Get uniform locations
	r.locViewProj = shader.GetUniform(program, "uViewProj")
	r.locModel = shader.GetUniform(program, "uModel")
	r.locBaseColor = shader.GetUniform(program, "uBaseColor")
	r.locAmbient = shader.GetUniform(program, "uAmbient")
	r.locSunDir = shader.GetUniform(program, "uSunDir")
	r.locSunColor = shader.GetUniform(program, "uSunColor")
	r.locSunIntensity = shader.GetUniform(program, "uSunIntensity")
	r.locPointLightCount = shader.GetUniform(program, "uPointLightCount")
	r.locPointLightPositions = shader.GetUniform(program, "uPointLightPositions")
	r.locPointLightColors = shader.GetUniform(program, "uPointLightColors")
	r.locPointLightRanges = shader.GetUniform(program, "uPointLightRanges")
	r.locPointLightIntensities = shader.GetUniform(program, "uPointLightIntensities")

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// RenderScene clears the frame and draws every mesh node that survives
// frustum culling, lit by the scene's light nodes.
func (r *Renderer) RenderScene(s *scene.Scene) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)

	viewProj := s.ViewProjection()
	gl.UniformMatrix4fv(r.locViewProj, 1, false, viewProj.Ptr())
	gl.Uniform3f(r.locBaseColor, r.config.BaseColor[0], r.config.BaseColor[1], r.config.BaseColor[2])
	gl.Uniform3f(r.locAmbient, s.AmbientColor[0], s.AmbientColor[1], s.AmbientColor[2])

	r.uploadLights(s.ActiveLights())

	for _, vm := range s.VisibleMeshes() {
		m := s.Meshes.Get(vm.Mesh)
		if m == nil {
			continue
		}
		world := vm.World
		gl.UniformMatrix4fv(r.locModel, 1, false, world.Ptr())
		m.Bind()
		gl.DrawElements(gl.TRIANGLES, m.IndexCount(), gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

// uploadLights splits the scene lights into the single sun uniform and
// the point light arrays. The first directional light wins; point
// lights beyond the shader's array size are dropped.
func (r *Renderer) uploadLights(lights []scene.LightState) {
	var (
		positions   [lighting.MaxPointLights * 3]float32
		colors      [lighting.MaxPointLights * 3]float32
		ranges      [lighting.MaxPointLights]float32
		intensities [lighting.MaxPointLights]float32
		count       int32
		haveSun     bool
	)

	for _, l := range lights {
		switch l.Kind {
		case lighting.Directional:
			if haveSun {
				continue
			}
			haveSun = true
			gl.Uniform3f(r.locSunDir, l.Direction.X, l.Direction.Y, l.Direction.Z)
			gl.Uniform3f(r.locSunColor, l.Color[0], l.Color[1], l.Color[2])
			gl.Uniform1f(r.locSunIntensity, l.Intensity)

		case lighting.Point:
			if count >= lighting.MaxPointLights {
				continue
			}
			positions[count*3+0] = l.WorldPosition.X
			positions[count*3+1] = l.WorldPosition.Y
			positions[count*3+2] = l.WorldPosition.Z
			colors[count*3+0] = l.Color[0]
			colors[count*3+1] = l.Color[1]
			colors[count*3+2] = l.Color[2]
			ranges[count] = l.Range
			intensities[count] = l.Intensity
			count++
		}
	}

	if !haveSun {
		gl.Uniform1f(r.locSunIntensity, 0)
	}

	gl.Uniform1i(r.locPointLightCount, count)
	if count > 0 {
		gl.Uniform3fv(r.locPointLightPositions, count, &positions[0])
		gl.Uniform3fv(r.locPointLightColors, count, &colors[0])
		gl.Uniform1fv(r.locPointLightRanges, count, &ranges[0])
		gl.Uniform1fv(r.locPointLightIntensities, count, &intensities[0])
	}
}
