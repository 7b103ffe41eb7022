package gpu

import (
	"errors"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/objview/internal/logger"
)

// ErrEmptyUpload is returned when there is no vertex data to upload.
var ErrEmptyUpload = errors.New("no vertex data to upload")

// GLDevice implements Device with OpenGL vertex array objects.
// It must be used on the thread that owns the GL context.
type GLDevice struct{}

// NewGLDevice returns a device bound to the current GL context.
func NewGLDevice() *GLDevice {
	return &GLDevice{}
}

// Upload creates a VAO/VBO pair holding data.
func (d *GLDevice) Upload(data []float32, layout Layout) (Buffer, error) {
	if len(data) == 0 {
		return Buffer{}, ErrEmptyUpload
	}

	var b Buffer
	gl.GenVertexArrays(1, &b.VAO)
	gl.GenBuffers(1, &b.VBO)

	gl.BindVertexArray(b.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	for _, a := range layout.Attributes {
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, gl.FLOAT, false, int32(layout.Stride), uintptr(a.Offset))
		gl.EnableVertexAttribArray(a.Location)
	}

	// Unbind so later code cannot modify this VAO by accident.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	logger.Debug("vertex array uploaded",
		zap.Uint32("vao", b.VAO),
		zap.Uint32("vbo", b.VBO),
		zap.Int("floats", len(data)),
		zap.Int("stride", layout.Stride),
	)
	return b, nil
}

// DrawTriangles draws count vertices from b.
func (d *GLDevice) DrawTriangles(b Buffer, count int32) {
	gl.BindVertexArray(b.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, count)
	gl.BindVertexArray(0)
}

// Release deletes the VAO and VBO.
func (d *GLDevice) Release(b Buffer) {
	if b.VAO != 0 {
		gl.DeleteVertexArrays(1, &b.VAO)
	}
	if b.VBO != 0 {
		gl.DeleteBuffers(1, &b.VBO)
	}
}
