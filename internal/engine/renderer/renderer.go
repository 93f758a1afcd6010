// Package renderer provides OpenGL rendering of the sphere.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/supersphere/internal/engine/shader"
	"github.com/Faultbox/supersphere/internal/engine/shaders"
	"github.com/Faultbox/supersphere/internal/geometry"
	"github.com/Faultbox/supersphere/internal/logger"
	"github.com/Faultbox/supersphere/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [4]float32
}

// Material is the program and uniform table drawn with.
type Material interface {
	Program() *shaders.Program
	Each(fn func(name string, v shaders.Value))
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	programs map[string]*shader.Program
	failed   map[string]bool

	mesh *meshBuffers

	quadVAO uint32
	quadVBO uint32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		log:      logger.Named("renderer"),
		programs: make(map[string]*shader.Program),
		failed:   make(map[string]bool),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	r.createQuad()
	return r, nil
}

// Prepare compiles every program up front so a broken variant is reported
// at startup instead of on first selection.
func (r *Renderer) Prepare(programs ...*shaders.Program) error {
	for _, p := range programs {
		if _, err := r.compile(p); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) compile(p *shaders.Program) (*shader.Program, error) {
	if sp, ok := r.programs[p.Name]; ok {
		return sp, nil
	}
	sp, err := shader.Compile(p)
	if err != nil {
		return nil, err
	}
	r.programs[p.Name] = sp
	r.log.Info("program compiled",
		zap.String("variant", p.Name),
		zap.Stringer("space", p.Space),
		zap.Uint32("id", sp.ID),
	)
	return sp, nil
}

// Close releases all GPU resources owned by the renderer.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.releaseMesh()
	for name, sp := range r.programs {
		sp.Delete()
		delete(r.programs, name)
	}
	if r.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &r.quadVAO)
		r.quadVAO = 0
	}
	if r.quadVBO != 0 {
		gl.DeleteBuffers(1, &r.quadVBO)
		r.quadVBO = 0
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Render uploads mesh if it changed and draws it with mat.
func (r *Renderer) Render(mesh *geometry.Mesh, mat Material, model, view, projection math.Mat4) {
	r.UploadMesh(mesh)
	r.Draw(mat, model, view, projection)
}

// Draw draws the current mesh with mat, or a fullscreen quad for
// screen-space programs.
func (r *Renderer) Draw(mat Material, model, view, projection math.Mat4) {
	p := mat.Program()
	if p == nil || r.failed[p.Name] {
		return
	}
	sp, err := r.compile(p)
	if err != nil {
		r.failed[p.Name] = true
		r.log.Error("program unusable", zap.String("variant", p.Name), zap.Error(err))
		return
	}

	sp.Use()
	mat.Each(sp.SetValue)

	if p.Space == shaders.ScreenSpace {
		gl.Disable(gl.DEPTH_TEST)
		gl.BindVertexArray(r.quadVAO)
		gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
		gl.BindVertexArray(0)
		gl.Enable(gl.DEPTH_TEST)
		return
	}

	if r.mesh == nil {
		return
	}
	sp.SetMat4(shaders.UniformModel, model)
	sp.SetMat4(shaders.UniformView, view)
	sp.SetMat4(shaders.UniformProjection, projection)

	gl.BindVertexArray(r.mesh.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.mesh.count)
	gl.BindVertexArray(0)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.UseProgram(0)
}

// createQuad creates the fullscreen quad for screen-space programs.
func (r *Renderer) createQuad() {
	vertices := []float32{
		-1, -1,
		1, -1,
		-1, 1,
		1, 1,
	}

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.BindVertexArray(r.quadVAO)

	gl.GenBuffers(1, &r.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(shaders.AttribPosition, 2, gl.FLOAT, false, 2*4, nil)
	gl.EnableVertexAttribArray(shaders.AttribPosition)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}
