package viewer

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/objview/internal/assets"
	"github.com/Faultbox/objview/internal/config"
	"github.com/Faultbox/objview/internal/engine/gpu"
	"github.com/Faultbox/objview/internal/engine/mesh"
	"github.com/Faultbox/objview/internal/engine/texture"
	"github.com/Faultbox/objview/pkg/math"
)

// Object is one textured mesh placed in the world.
type Object struct {
	Name     string
	Mesh     *mesh.Mesh
	Texture  *texture.Texture2D // nil means the shared white texture
	Position mgl32.Vec3
	Scale    mgl32.Vec3
	Lit      bool // mesh carries normals
}

// ModelMatrix returns translate(Position) · scale(Scale).
func (o *Object) ModelMatrix() math.Mat4 {
	m := mgl32.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z()).
		Mul4(mgl32.Scale3D(o.Scale.X(), o.Scale.Y(), o.Scale.Z()))
	return math.Mat4(m)
}

// NormalMatrix returns the inverse transpose of the model matrix's upper
// 3x3, which keeps normals perpendicular under non-uniform scale.
func (o *Object) NormalMatrix() [9]float32 {
	m := mgl32.Mat4(o.ModelMatrix()).Mat3()
	return [9]float32(m.Inv().Transpose())
}

// Destroy releases the mesh and texture.
func (o *Object) Destroy() {
	if o.Mesh != nil {
		o.Mesh.Destroy()
	}
	if o.Texture != nil {
		o.Texture.Destroy()
	}
}

// newObject loads the mesh of cfg through the asset manager. The texture is
// loaded separately because it needs a GL context.
func newObject(am *assets.Manager, dev gpu.Device, cfg config.ObjectConfig) (*Object, error) {
	data, err := am.Load(cfg.Model)
	if err != nil {
		return nil, err
	}
	m := mesh.New(dev, mesh.Options{Strict: cfg.Strict})
	if err := m.LoadBytes(cfg.Model, data); err != nil {
		return nil, err
	}
	return &Object{
		Name:     cfg.Model,
		Mesh:     m,
		Position: mgl32.Vec3(cfg.Position),
		Scale:    scaleOrOne(cfg.Scale),
		Lit:      !cfg.Strict,
	}, nil
}

// scaleOrOne treats an all-zero scale as unset.
func scaleOrOne(s [3]float32) mgl32.Vec3 {
	if s == ([3]float32{}) {
		return mgl32.Vec3{1, 1, 1}
	}
	return mgl32.Vec3(s)
}

// loadTexture resolves an image asset and uploads it.
func loadTexture(am *assets.Manager, name string, mipmaps bool) (*texture.Texture2D, error) {
	path, err := am.Resolve(name)
	if err != nil {
		return nil, err
	}
	tex := &texture.Texture2D{}
	if err := tex.Load(path, mipmaps); err != nil {
		return nil, err
	}
	return tex, nil
}

// whiteTexture is bound for objects without a texture of their own.
func whiteTexture() (*texture.Texture2D, error) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	tex := &texture.Texture2D{}
	if err := tex.Upload(img, false); err != nil {
		return nil, err
	}
	return tex, nil
}
