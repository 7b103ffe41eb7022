package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagOrbit      = flag.Bool("orbit", false, "Start with the orbit camera")
	flagModel      = flag.String("model", "", "Show only this OBJ model")
	flagTexture    = flag.String("texture", "", "Texture for -model")
	flagDump       = flag.String("write-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// DumpPath returns the -write-config target, if any.
func DumpPath() string {
	return *flagDump
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagOrbit {
		cfg.Camera.Mode = CameraOrbit
	}
	if *flagModel != "" {
		cfg.Scene.Objects = []ObjectConfig{{
			Model:   *flagModel,
			Texture: *flagTexture,
			Scale:   [3]float32{1, 1, 1},
		}}
	}
}
