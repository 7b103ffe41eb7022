// Package mesh loads OBJ files into GPU vertex arrays and draws them.
package mesh

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/objview/internal/engine/gpu"
	"github.com/Faultbox/objview/internal/logger"
	"github.com/Faultbox/objview/pkg/formats"
)

// ErrUnsupportedExtension is returned for paths that are not .obj files.
var ErrUnsupportedExtension = errors.New("not an OBJ file")

// Options selects the loader variant.
type Options struct {
	// Strict parses only p/t/n triangles and uploads TexturedLayout.
	Strict bool
}

// Mesh is a non-indexed triangle list owned by one GPU vertex array.
// The zero value is not usable; call New.
type Mesh struct {
	device   gpu.Device
	opts     Options
	vertices []Vertex
	warnings []formats.OBJWarning
	buffer   gpu.Buffer
	loaded   bool
}

// New returns an empty, unloaded mesh that will upload to device.
func New(device gpu.Device, opts Options) *Mesh {
	return &Mesh{device: device, opts: opts}
}

// Load reads an OBJ file from disk.
func (m *Mesh) Load(path string) error {
	if err := checkExtension(path); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return m.LoadFrom(path, f)
}

// LoadBytes parses an OBJ held in memory; name is used for the extension
// check and log output.
func (m *Mesh) LoadBytes(name string, data []byte) error {
	return m.LoadFrom(name, bytes.NewReader(data))
}

// LoadFrom parses an OBJ from r and uploads it. On any error the mesh keeps
// its previous state and no GPU resources are created.
func (m *Mesh) LoadFrom(name string, r io.Reader) error {
	if err := checkExtension(name); err != nil {
		return err
	}

	log := logger.Named("mesh")
	log.Info("loading OBJ", zap.String("file", name), zap.Bool("strict", m.opts.Strict))

	obj, err := formats.ParseOBJ(r, formats.OBJOptions{Strict: m.opts.Strict})
	if err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	for _, w := range obj.Warnings {
		log.Warn("skipped face", zap.String("file", name), zap.Int("line", w.Line), zap.String("reason", w.Reason))
	}

	vertices := Expand(obj)
	layout := m.layout()
	buf, err := m.device.Upload(Pack(vertices, layout), layout)
	if err != nil {
		return fmt.Errorf("uploading %s: %w", name, err)
	}

	// Replace any previous upload only once the new one exists.
	m.release()
	m.vertices = vertices
	m.warnings = obj.Warnings
	m.buffer = buf
	m.loaded = true

	log.Info("OBJ loaded",
		zap.String("file", name),
		zap.Int("vertices", len(vertices)),
		zap.Int("faces", obj.FaceCount()),
		zap.Int("skipped", len(obj.Warnings)),
	)
	return nil
}

// Loaded reports whether a load has succeeded.
func (m *Mesh) Loaded() bool {
	return m.loaded
}

// Vertices returns the assembled vertices in draw order.
func (m *Mesh) Vertices() []Vertex {
	return m.vertices
}

// Warnings returns the face lines the strict loader skipped.
func (m *Mesh) Warnings() []formats.OBJWarning {
	return m.warnings
}

// Draw issues one triangle-list draw of all vertices. It does nothing until
// the mesh is loaded.
func (m *Mesh) Draw() {
	if !m.loaded {
		return
	}
	m.device.DrawTriangles(m.buffer, int32(len(m.vertices)))
}

// Destroy releases the GPU resources. Later calls do nothing.
func (m *Mesh) Destroy() {
	m.release()
	m.vertices = nil
	m.warnings = nil
}

func (m *Mesh) release() {
	if m.buffer.Valid() {
		m.device.Release(m.buffer)
	}
	m.buffer = gpu.Buffer{}
	m.loaded = false
}

func (m *Mesh) layout() gpu.Layout {
	if m.opts.Strict {
		return TexturedLayout
	}
	return FullLayout
}

func checkExtension(name string) error {
	if !strings.EqualFold(filepath.Ext(name), ".obj") {
		return fmt.Errorf("%w: %s", ErrUnsupportedExtension, name)
	}
	return nil
}
