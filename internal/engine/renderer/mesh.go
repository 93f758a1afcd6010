package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/supersphere/internal/engine/shaders"
	"github.com/Faultbox/supersphere/internal/geometry"
)

// meshBuffers is the GPU copy of one geometry.Mesh.
type meshBuffers struct {
	source *geometry.Mesh
	vao    uint32
	vbo    uint32
	count  int32
}

// UploadMesh makes m the drawn mesh. The new buffers are filled before the
// old ones are released, so a frame never draws a half-built mesh.
func (r *Renderer) UploadMesh(m *geometry.Mesh) {
	if m == nil || (r.mesh != nil && r.mesh.source == m) {
		return
	}

	next := uploadMesh(m)
	old := r.mesh
	r.mesh = next
	if old != nil {
		old.release()
	}

	r.log.Debug("mesh uploaded",
		zap.Int("detail", m.Detail),
		zap.Int("vertices", m.VertexCount()),
		zap.Uint32("vao", next.vao),
	)
}

func uploadMesh(m *geometry.Mesh) *meshBuffers {
	data := m.Interleaved()
	b := &meshBuffers{source: m, count: int32(m.VertexCount())}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}

	stride := int32(geometry.FloatsPerVertex * 4)
	gl.VertexAttribPointer(shaders.AttribPosition, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(shaders.AttribPosition)
	gl.VertexAttribPointer(shaders.AttribNormal, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(shaders.AttribNormal)
	gl.VertexAttribPointer(shaders.AttribCorner, 3, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
	gl.EnableVertexAttribArray(shaders.AttribCorner)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return b
}

func (b *meshBuffers) release() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
}

func (r *Renderer) releaseMesh() {
	if r.mesh != nil {
		r.mesh.release()
		r.mesh = nil
	}
}
