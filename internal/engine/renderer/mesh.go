package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/voidharvest/internal/engine/geometry"
)

// floatsPerVertex is position(3) + normal(3) + uv(2).
const floatsPerVertex = 8

// glMesh is an uploaded mesh: one VAO with interleaved attributes and an
// index buffer.
type glMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// lookup returns the GPU buffers for a mesh, uploading on first use.
func (r *Renderer) lookup(m *geometry.Mesh) *glMesh {
	if gm, ok := r.cache[m]; ok {
		return gm
	}
	gm := upload(m)
	r.cache[m] = gm
	return gm
}

// Release drops the GPU buffers of a mesh. Called from batch teardown so
// a cleared field leaves nothing on the GPU.
func (r *Renderer) Release(m *geometry.Mesh) {
	if gm, ok := r.cache[m]; ok {
		gm.delete()
		delete(r.cache, m)
	}
}

func upload(m *geometry.Mesh) *glMesh {
	data := make([]float32, 0, len(m.Positions)*floatsPerVertex)
	for i, p := range m.Positions {
		n := m.Normals[i]
		uv := m.UVs[i]
		data = append(data, p.X, p.Y, p.Z, n.X, n.Y, n.Z, uv.X, uv.Y)
	}

	gm := &glMesh{indexCount: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &gm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return gm
}

func (gm *glMesh) draw() {
	gl.BindVertexArray(gm.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, gm.indexCount, gl.UNSIGNED_INT, 0)
}

func (gm *glMesh) delete() {
	if gm.vao != 0 {
		gl.DeleteVertexArrays(1, &gm.vao)
	}
	if gm.vbo != 0 {
		gl.DeleteBuffers(1, &gm.vbo)
	}
	if gm.ebo != 0 {
		gl.DeleteBuffers(1, &gm.ebo)
	}
}
