package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("expected 1024x768, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Camera.Mode != CameraFirstPerson {
		t.Errorf("expected first person camera, got %s", cfg.Camera.Mode)
	}
	if cfg.Camera.FOV != 45 {
		t.Errorf("expected fov 45, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.MoveSpeed != 3 {
		t.Errorf("expected move speed 3, got %f", cfg.Camera.MoveSpeed)
	}
	if cfg.Camera.MouseSensitivity != 0.1 {
		t.Errorf("expected mouse sensitivity 0.1, got %f", cfg.Camera.MouseSensitivity)
	}
	if cfg.Camera.ZoomSensitivity != -3 {
		t.Errorf("expected zoom sensitivity -3, got %f", cfg.Camera.ZoomSensitivity)
	}

	if len(cfg.Scene.Objects) != 2 {
		t.Fatalf("expected 2 default objects, got %d", len(cfg.Scene.Objects))
	}
	if cfg.Scene.Objects[1].Scale != [3]float32{10, 1, 10} {
		t.Errorf("expected floor scale (10, 1, 10), got %v", cfg.Scene.Objects[1].Scale)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

camera:
  mode: orbit
  fov: 60
  orbit_radius: 25
  target: [1, 2, 3]

scene:
  asset_roots: ["assets", "/usr/share/objview"]
  objects:
    - model: models/teapot.obj
      texture: textures/teapot.png
      strict: true
      position: [0, 0, -5]
      scale: [2, 2, 2]

logging:
  level: "debug"
  log_file: "objview.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Camera.Mode != CameraOrbit {
		t.Errorf("expected orbit camera, got %s", cfg.Camera.Mode)
	}
	if cfg.Camera.Target != [3]float32{1, 2, 3} {
		t.Errorf("expected target (1, 2, 3), got %v", cfg.Camera.Target)
	}
	// Unset keys keep their defaults.
	if cfg.Camera.MoveSpeed != 3 {
		t.Errorf("expected default move speed to survive, got %f", cfg.Camera.MoveSpeed)
	}

	if len(cfg.Scene.AssetRoots) != 2 {
		t.Errorf("expected 2 asset roots, got %v", cfg.Scene.AssetRoots)
	}
	if len(cfg.Scene.Objects) != 1 {
		t.Fatalf("expected objects list to be replaced, got %d", len(cfg.Scene.Objects))
	}
	obj := cfg.Scene.Objects[0]
	if obj.Model != "models/teapot.obj" || !obj.Strict || obj.Scale != [3]float32{2, 2, 2} {
		t.Errorf("unexpected object %+v", obj)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "objview.log" {
		t.Errorf("expected log file 'objview.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/objview.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"unknown mode", func(c *Config) { c.Camera.Mode = "free" }},
		{"bad clip planes", func(c *Config) { c.Camera.Far = c.Camera.Near }},
		{"object without model", func(c *Config) { c.Scene.Objects[0].Model = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Errorf("expected to find %s in current directory", FileName)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "orbit flag",
			setup: func() { *flagOrbit = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Camera.Mode != CameraOrbit {
					t.Errorf("expected orbit mode, got %s", cfg.Camera.Mode)
				}
			},
			teardown: func() { *flagOrbit = false },
		},
		{
			name: "model flag",
			setup: func() {
				*flagModel = "suzanne.obj"
				*flagTexture = "suzanne.png"
			},
			verify: func(t *testing.T, cfg *Config) {
				if len(cfg.Scene.Objects) != 1 {
					t.Fatalf("expected a single object, got %d", len(cfg.Scene.Objects))
				}
				obj := cfg.Scene.Objects[0]
				if obj.Model != "suzanne.obj" || obj.Texture != "suzanne.png" {
					t.Errorf("unexpected object %+v", obj)
				}
			},
			teardown: func() {
				*flagModel = ""
				*flagTexture = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)

	yamlContent := `
window:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Camera.Mode = CameraOrbit
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Camera.Mode != CameraOrbit {
		t.Errorf("expected orbit mode after reload, got %s", loaded.Camera.Mode)
	}
	if len(loaded.Scene.Objects) != len(cfg.Scene.Objects) {
		t.Errorf("objects lost in round trip")
	}
}
