// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`

	ScreenshotDir string `yaml:"screenshot_dir"` // F12 captures
}

// Camera modes.
const (
	CameraFirstPerson = "first_person"
	CameraOrbit       = "orbit"
)

// CameraConfig holds camera and control settings.
type CameraConfig struct {
	Mode             string     `yaml:"mode"` // first_person or orbit
	Position         [3]float32 `yaml:"position"`
	Target           [3]float32 `yaml:"target"` // orbit only
	FOV              float32    `yaml:"fov"`    // degrees
	OrbitRadius      float32    `yaml:"orbit_radius"`
	MoveSpeed        float32    `yaml:"move_speed"`        // units per second
	MouseSensitivity float32    `yaml:"mouse_sensitivity"` // degrees per pixel
	ZoomSensitivity  float32    `yaml:"zoom_sensitivity"`  // degrees (or units) per scroll step
	Near             float32    `yaml:"near"`
	Far              float32    `yaml:"far"`
}

// SceneConfig describes what gets drawn.
type SceneConfig struct {
	AssetRoots     []string       `yaml:"asset_roots"`
	VertexShader   string         `yaml:"vertex_shader"`   // empty = built-in
	FragmentShader string         `yaml:"fragment_shader"` // empty = built-in
	ClearColor     [3]float32     `yaml:"clear_color"`
	Light          LightConfig    `yaml:"light"`
	Material       MaterialConfig `yaml:"material"`
	Objects        []ObjectConfig `yaml:"objects"`
}

// LightConfig describes the single Phong light.
type LightConfig struct {
	Position [3]float32 `yaml:"position"`
	Ambient  [3]float32 `yaml:"ambient"`
	Diffuse  [3]float32 `yaml:"diffuse"`
	Specular [3]float32 `yaml:"specular"`
}

// MaterialConfig describes the surface response shared by all objects.
type MaterialConfig struct {
	Ambient   [3]float32 `yaml:"ambient"`
	Specular  [3]float32 `yaml:"specular"`
	Shininess float32    `yaml:"shininess"`
}

// ObjectConfig places one textured mesh in the scene.
type ObjectConfig struct {
	Model    string     `yaml:"model"`
	Texture  string     `yaml:"texture"`
	Strict   bool       `yaml:"strict"` // strict p/t/n face parsing
	Position [3]float32 `yaml:"position"`
	Scale    [3]float32 `yaml:"scale"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "objview",
			Width:  1024,
			Height: 768,
			VSync:  true,

			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
			Mode:             CameraFirstPerson,
			Position:         [3]float32{0, 3, 10},
			FOV:              45,
			OrbitRadius:      10,
			MoveSpeed:        3,
			MouseSensitivity: 0.1,
			ZoomSensitivity:  -3,
			Near:             0.1,
			Far:              200,
		},
		Scene: SceneConfig{
			AssetRoots: []string{"."},
			ClearColor: [3]float32{0.23, 0.38, 0.47},
			Light: LightConfig{
				Position: [3]float32{0, 5, 5},
				Ambient:  [3]float32{0.2, 0.2, 0.2},
				Diffuse:  [3]float32{1, 1, 1},
				Specular: [3]float32{1, 1, 1},
			},
			Material: MaterialConfig{
				Ambient:   [3]float32{1, 1, 1},
				Specular:  [3]float32{0.5, 0.5, 0.5},
				Shininess: 32,
			},
			Objects: []ObjectConfig{
				{
					Model:    "models/cube.obj",
					Texture:  "textures/cube.jpg",
					Position: [3]float32{0, 1, 0},
					Scale:    [3]float32{1, 1, 1},
				},
				{
					Model:    "models/floor.obj",
					Texture:  "textures/tile_floor.jpg",
					Position: [3]float32{0, 0, 0},
					Scale:    [3]float32{10, 1, 10},
				},
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
