// Package renderer draws scene frames with OpenGL.
package renderer

import (
	"fmt"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/movingcar/internal/engine/shader"
	"github.com/Faultbox/movingcar/internal/logger"
	"github.com/Faultbox/movingcar/internal/scene"
)

// Vertex format: pos(2) + color(4) = 6 floats, 24 bytes.
const floatsPerVertex = 6

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	Style  scene.Style
}

// Renderer batches the shapes of a frame into one draw call.
type Renderer struct {
	config Config

	program    uint32
	uProj      int32
	vao        uint32
	vbo        uint32
	projection mgl32.Mat4

	vertices []float32
}

// New creates a renderer. Must be called after the OpenGL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		vertices: make([]float32, 0, 64*floatsPerVertex),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Render.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	var err error
	r.program, err = shader.CompileProgram(shader.FlatVertex, shader.FlatFragment)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.uProj, err = shader.Uniform(r.program, "uProjection")
	if err != nil {
		gl.DeleteProgram(r.program)
		return nil, err
	}

	r.createBuffers()
	r.Resize(cfg.Width, cfg.Height)

	bg := cfg.Style.Background
	gl.ClearColor(channel(bg.R), channel(bg.G), channel(bg.B), channel(bg.A))
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return r, nil
}

func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Close releases GL resources.
func (r *Renderer) Close() {
	logger.Render.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize updates the projection for a viewport of width x height scene
// units. Y grows downwards. The GL viewport keeps the same size unless
// SetDrawable says otherwise.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	r.projection = mgl32.Ortho2D(0, float32(width), float32(height), 0)
	r.SetDrawable(width, height)
	logger.Render.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// SetDrawable sets the framebuffer size in pixels.
func (r *Renderer) SetDrawable(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// DrawFrame clears the screen and draws f.
func (r *Renderer) DrawFrame(f scene.Frame) {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.vertices = r.vertices[:0]
	for _, s := range f.Shapes(r.config.Style) {
		r.vertices = appendFan(r.vertices, s)
	}
	if len(r.vertices) == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uProj, 1, false, &r.projection[0])

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.vertices)*4, gl.Ptr(r.vertices), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.vertices)/floatsPerVertex))
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// appendFan triangulates a convex shape around its first point.
func appendFan(buf []float32, s scene.Shape) []float32 {
	cr, cg, cb, ca := rgba(s.Color)
	for i := 1; i+1 < len(s.Points); i++ {
		for _, p := range [3]int{0, i, i + 1} {
			v := s.Points[p]
			buf = append(buf, float32(v.X), float32(v.Y), cr, cg, cb, ca)
		}
	}
	return buf
}

func rgba(c color.NRGBA) (r, g, b, a float32) {
	return channel(c.R), channel(c.G), channel(c.B), channel(c.A)
}

func channel(v uint8) float32 {
	return float32(v) / 255
}
