// Package gpu is the boundary between mesh data and the graphics API.
//
// Meshes hand a packed float block and its layout to a Device and get back a
// Buffer they own. GLDevice is the OpenGL implementation; tests substitute
// their own Device.
package gpu

// Attribute is one vertex attribute inside an interleaved block.
type Attribute struct {
	Location uint32 // shader attribute location
	Size     int32  // float components
	Offset   int    // byte offset within a vertex
}

// Layout describes an interleaved float32 vertex format.
type Layout struct {
	Stride     int // bytes per vertex
	Attributes []Attribute
}

// Floats returns the number of float32 values per vertex.
func (l Layout) Floats() int {
	return l.Stride / 4
}

// Buffer identifies uploaded vertex data. The zero value means "nothing".
type Buffer struct {
	VAO uint32
	VBO uint32
}

// Valid reports whether b refers to uploaded data.
func (b Buffer) Valid() bool {
	return b.VAO != 0
}

// Device uploads, draws and releases vertex data.
type Device interface {
	// Upload copies data into a new vertex array configured with layout.
	Upload(data []float32, layout Layout) (Buffer, error)
	// DrawTriangles draws count vertices as a triangle list, restoring the
	// previous vertex array binding afterwards.
	DrawTriangles(b Buffer, count int32)
	// Release frees the vertex array and its buffer.
	Release(b Buffer)
}
