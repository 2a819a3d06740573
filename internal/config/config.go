// Package config handles game configuration loading and management.
package config

import "time"

// Config holds all game settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Audio      AudioConfig      `yaml:"audio"`
	Game       GameConfig       `yaml:"game"`
	Generation GenerationConfig `yaml:"generation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	MasterVolume float32 `yaml:"master_volume"`
	SFXVolume    float32 `yaml:"sfx_volume"`
	Muted        bool    `yaml:"muted"`
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	TimeLimit        time.Duration `yaml:"time_limit"`
	StartEnergy      float32       `yaml:"start_energy"`
	StartHealth      float32       `yaml:"start_health"`
	EnergyDrain      float32       `yaml:"energy_drain"`  // per second while thrusting
	ImpactDamage     float32       `yaml:"impact_damage"` // per asteroid hit
	ShowFPS          bool          `yaml:"show_fps"`
	InvertPitch      bool          `yaml:"invert_pitch"`
	MouseSensitivity float32       `yaml:"mouse_sensitivity"`
}

// GenerationConfig holds procedural generation parameters.
type GenerationConfig struct {
	Seed      int64           `yaml:"seed"`
	Asteroids AsteroidsConfig `yaml:"asteroids"`
	FuelCells FuelCellsConfig `yaml:"fuel_cells"`
}

// AsteroidsConfig tunes the asteroid field.
type AsteroidsConfig struct {
	Count          int     `yaml:"count"`
	AreaSize       float32 `yaml:"area_size"`
	MinSeparation  float32 `yaml:"min_separation"`
	RadiusMin      float32 `yaml:"radius_min"`
	RadiusMax      float32 `yaml:"radius_max"`
	Subdivisions   int     `yaml:"subdivisions"`
	Irregularity   float32 `yaml:"irregularity"`
	DeformStrength float32 `yaml:"deform_strength"`
	NoiseScale     float32 `yaml:"noise_scale"`
	Octaves        int     `yaml:"octaves"`
	Persistence    float64 `yaml:"persistence"`
	Lacunarity     float64 `yaml:"lacunarity"`
	RandomGray     bool    `yaml:"random_gray"`
}

// FuelCellsConfig tunes the collectible batch.
type FuelCellsConfig struct {
	Count         int     `yaml:"count"`
	MinSeparation float32 `yaml:"min_separation"`
	MinHeight     float32 `yaml:"min_height"`
	Radius        float32 `yaml:"radius"`
	Height        float32 `yaml:"height"`
	Segments      int     `yaml:"segments"`
	Score         int     `yaml:"score"`
	Energy        float32 `yaml:"energy"`
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
			FPSLimit:   0,
		},
		Audio: AudioConfig{
			MasterVolume: 0.8,
			SFXVolume:    0.8,
			Muted:        false,
		},
		Game: GameConfig{
			TimeLimit:        3 * time.Minute,
			StartEnergy:      100,
			StartHealth:      100,
			EnergyDrain:      2.5,
			ImpactDamage:     15,
			ShowFPS:          false,
			InvertPitch:      false,
			MouseSensitivity: 1.0,
		},
		Generation: GenerationConfig{
			Seed: 0, // 0 = random seed at startup
			Asteroids: AsteroidsConfig{
				Count:          60,
				AreaSize:       120,
				MinSeparation:  8,
				RadiusMin:      1.2,
				RadiusMax:      3.5,
				Subdivisions:   2,
				Irregularity:   0.6,
				DeformStrength: 0.35,
				NoiseScale:     0.8,
				Octaves:        4,
				Persistence:    0.5,
				Lacunarity:     2.0,
				RandomGray:     true,
			},
			FuelCells: FuelCellsConfig{
				Count:         12,
				MinSeparation: 10,
				MinHeight:     -50,
				Radius:        0.35,
				Height:        0.9,
				Segments:      12,
				Score:         100,
				Energy:        25,
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
