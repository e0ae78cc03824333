// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Scene    SceneConfig    `yaml:"scene"`
	Data     DataConfig     `yaml:"data"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DataConfig holds the directories searched for asset files.
type DataConfig struct {
	Paths []string `yaml:"paths"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Fullscreen    bool   `yaml:"fullscreen"`
	VSync         bool   `yaml:"vsync"`
	FPSLimit      int    `yaml:"fps_limit"`
	RelativeMouse bool   `yaml:"relative_mouse"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// CameraConfig holds the initial fly camera state. Angles are in degrees.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
}

// TerrainConfig names the height map and textures. Texture files are
// optional; missing ones are generated.
type TerrainConfig struct {
	Heightmap string  `yaml:"heightmap"`
	MaxHeight float32 `yaml:"max_height"`
	Texture   string  `yaml:"texture"`
	WaveMap0  string  `yaml:"wave_map_0"`
	WaveMap1  string  `yaml:"wave_map_1"`
	WaveSeed  int64   `yaml:"wave_seed"`
}

// SceneConfig holds the live rendering options. It is re-read while the
// demo runs.
type SceneConfig struct {
	WaterHeight float32 `yaml:"water_height"`

	Wireframe  bool `yaml:"wireframe"`
	Lighting   bool `yaml:"lighting"`
	Water      bool `yaml:"water"`
	Skybox     bool `yaml:"skybox"`
	Refraction bool `yaml:"refraction"`
	Reflection bool `yaml:"reflection"`
	Fresnel    bool `yaml:"fresnel"`
	Specular   bool `yaml:"specular"`
	Waves      bool `yaml:"waves"`
	ShowInfo   bool `yaml:"show_info"`

	AmbientIntensity float32    `yaml:"ambient_intensity"`
	SunIntensity     float32    `yaml:"sun_intensity"`
	SunDirection     [3]float32 `yaml:"sun_direction"`
	WaterColor       [4]float32 `yaml:"water_color"`
	WaveSpeed        float32    `yaml:"wave_speed"`
	WaveTextureScale float32    `yaml:"wave_texture_scale"`
	Merge            float32    `yaml:"merge"`
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
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			FPSLimit:      0,
			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 60, 0},
			Yaw:         45,
			Pitch:       17,
			Speed:       100,
			Sensitivity: 0.5,
		},
		Terrain: TerrainConfig{
			Heightmap: "heightmap.raw",
			MaxHeight: 50,
			Texture:   "terrain",
			WaveMap0:  "wave0",
			WaveMap1:  "wave1",
			WaveSeed:  1,
		},
		Scene: SceneConfig{
			// 64 on the byte scale of a 50-unit height map.
			WaterHeight: 50 * 64.0 / 255.0,

			Lighting:   true,
			Water:      true,
			Skybox:     true,
			Refraction: true,
			Reflection: true,
			Fresnel:    true,
			Specular:   true,
			Waves:      true,
			ShowInfo:   true,

			AmbientIntensity: 0.3,
			SunIntensity:     1.0,
			SunDirection:     [3]float32{0.5, 0.7071, -0.5},
			WaterColor:       [4]float32{0.1, 0.3, 0.4, 0.2},
			WaveSpeed:        0.03,
			WaveTextureScale: 4,
			Merge:            0.5,
		},
		Data: DataConfig{
			Paths: []string{"data"},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
