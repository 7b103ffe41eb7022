package mesh

import (
	"github.com/Faultbox/objview/internal/engine/gpu"
	"github.com/Faultbox/objview/pkg/formats"
)

// Vertex is one assembled triangle corner. Its memory layout matches
// FullLayout byte for byte.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Shader attribute locations.
const (
	LocPosition = 0
	LocNormal   = 1
	LocTexCoord = 2
)

// FullLayout is position(3f) normal(3f) texcoord(2f), used by the default
// loader.
var FullLayout = gpu.Layout{
	Stride: 32,
	Attributes: []gpu.Attribute{
		{Location: LocPosition, Size: 3, Offset: 0},
		{Location: LocNormal, Size: 3, Offset: 12},
		{Location: LocTexCoord, Size: 2, Offset: 24},
	},
}

// TexturedLayout is position(3f) texcoord(2f), used by the strict loader
// whose meshes carry no normals.
var TexturedLayout = gpu.Layout{
	Stride: 20,
	Attributes: []gpu.Attribute{
		{Location: LocPosition, Size: 3, Offset: 0},
		{Location: LocTexCoord, Size: 2, Offset: 12},
	},
}

// Expand turns pooled OBJ data into one vertex per face corner, in file
// order. Absent texcoord or normal references leave the attribute zero.
// The OBJ must have passed Validate; ParseOBJ guarantees that.
func Expand(obj *formats.OBJ) []Vertex {
	vertices := make([]Vertex, 0, len(obj.Corners))
	for _, c := range obj.Corners {
		var v Vertex
		v.Position = obj.Positions[c.Position-1]
		if c.Normal != 0 {
			v.Normal = obj.Normals[c.Normal-1]
		}
		if c.TexCoord != 0 {
			v.TexCoord = obj.TexCoords[c.TexCoord-1]
		}
		vertices = append(vertices, v)
	}
	return vertices
}

// Pack flattens vertices into the contiguous block layout describes.
func Pack(vertices []Vertex, layout gpu.Layout) []float32 {
	n := layout.Floats()
	out := make([]float32, len(vertices)*n)
	for i, v := range vertices {
		dst := out[i*n : (i+1)*n]
		for _, a := range layout.Attributes {
			off := a.Offset / 4
			switch a.Location {
			case LocPosition:
				copy(dst[off:], v.Position[:])
			case LocNormal:
				copy(dst[off:], v.Normal[:])
			case LocTexCoord:
				copy(dst[off:], v.TexCoord[:])
			}
		}
	}
	return out
}

// Bounds returns the axis-aligned box around the vertices.
func Bounds(vertices []Vertex) (min, max [3]float32) {
	if len(vertices) == 0 {
		return min, max
	}
	min, max = vertices[0].Position, vertices[0].Position
	for _, v := range vertices[1:] {
		for i := 0; i < 3; i++ {
			if v.Position[i] < min[i] {
				min[i] = v.Position[i]
			}
			if v.Position[i] > max[i] {
				max[i] = v.Position[i]
			}
		}
	}
	return min, max
}
