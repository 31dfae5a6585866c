// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`

	// Projection settings
	FovDegrees float32 `yaml:"fov_degrees"`
	NearClip   float32 `yaml:"near_clip"`
	FarClip    float32 `yaml:"far_clip"`
}

// CameraConfig holds camera interaction settings.
type CameraConfig struct {
	// "free" or "orbit"
	Mode string `yaml:"mode"`

	OrbitDistance   float32 `yaml:"orbit_distance"`
	MinDistance     float32 `yaml:"min_distance"`
	MaxDistance     float32 `yaml:"max_distance"`
	DragSensitivity float32 `yaml:"drag_sensitivity"`
	ZoomSensitivity float32 `yaml:"zoom_sensitivity"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FovDegrees: 60,
			NearClip:   0.1,
			FarClip:    1000,
		},
		Camera: CameraConfig{
			Mode:            "orbit",
			OrbitDistance:   5,
			MinDistance:     1,
			MaxDistance:     100,
			DragSensitivity: 0.005,
			ZoomSensitivity: 0.1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
