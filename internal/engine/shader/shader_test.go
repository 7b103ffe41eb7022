package shader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/objview/internal/engine/shader/shaders"
)

func TestBasicShadersDeclareInterface(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{"vertex", shaders.BasicVertexShader, []string{
			"#version 410 core",
			"layout (location = 0) in vec3 aPosition",
			"layout (location = 1) in vec3 aNormal",
			"layout (location = 2) in vec2 aTexCoord",
			"uniform mat4 model",
			"uniform mat4 view",
			"uniform mat4 projection",
			"uniform mat3 normalMatrix",
		}},
		{"fragment", shaders.BasicFragmentShader, []string{
			"#version 410 core",
			"uniform Material material",
			"uniform Light light",
			"uniform vec3 viewPos",
			"sampler2D diffuseMap",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, w := range tt.want {
				if !strings.Contains(tt.source, w) {
					t.Errorf("missing %q", w)
				}
			}
		})
	}
}

func TestLoadMissingFiles(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "a.vert")
	if err := os.WriteFile(vert, []byte(shaders.BasicVertexShader), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(filepath.Join(dir, "missing.vert"), vert); err == nil ||
		!strings.Contains(err.Error(), "vertex") {
		t.Errorf("missing vertex err = %v", err)
	}
	if _, err := Load(vert, filepath.Join(dir, "missing.frag")); err == nil ||
		!strings.Contains(err.Error(), "fragment") {
		t.Errorf("missing fragment err = %v", err)
	}
}
