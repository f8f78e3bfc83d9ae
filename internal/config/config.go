package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/casi-opea/ringed-laser-visualizer/internal/optics"
)

const (
	DefaultCanvasWidth  = 800
	DefaultCanvasHeight = 400

	// DefaultBaseScale converts meters at the screen plane to pixels. Purely
	// artistic: real diffraction radii are sub-millimeter and this constant
	// exists only to make them visible. It is not a unit conversion.
	DefaultBaseScale = 4000.0

	DefaultStrokeWidth = 3.0
	DefaultSpotRadius  = 5.0

	DefaultZoomMin  = 0.1
	DefaultZoomMax  = 5.0
	DefaultZoomStep = 0.1
)

type Config struct {
	Render RenderConfig `yaml:"render"`
	Params ParamsConfig `yaml:"params"`
}

type RenderConfig struct {
	CanvasWidth  int     `yaml:"canvas_width"`
	CanvasHeight int     `yaml:"canvas_height"`
	BaseScale    float64 `yaml:"base_scale"`
	StrokeWidth  float64 `yaml:"stroke_width"`
	SpotRadius   float64 `yaml:"spot_radius"`
}

type ParamsConfig struct {
	WavelengthNm   float64 `yaml:"wavelength_nm"`
	DistanceCm     float64 `yaml:"distance_cm"`
	ParticleSizeUm float64 `yaml:"particle_size_um"`
	Material       string  `yaml:"material"`
	Zoom           float64 `yaml:"zoom"`
}

func DefaultConfig() *Config {
	defaults := optics.DefaultParameters()
	return &Config{
		Render: RenderConfig{
			CanvasWidth:  DefaultCanvasWidth,
			CanvasHeight: DefaultCanvasHeight,
			BaseScale:    DefaultBaseScale,
			StrokeWidth:  DefaultStrokeWidth,
			SpotRadius:   DefaultSpotRadius,
		},
		Params: ParamsConfig{
			WavelengthNm: defaults.WavelengthNm,
			DistanceCm:   defaults.DistanceCm,
			// Stored size is the custom-mode value; preset materials
			// re-derive theirs on load.
			ParticleSizeUm: 10,
			Material:       defaults.Material.String(),
			Zoom:           defaults.Zoom,
		},
	}
}

// Load reads a yaml config, filling anything left out with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Parameters converts the yaml parameter block into the optics type,
// re-deriving the particle size through the material preset table.
func (c *Config) Parameters() (optics.Parameters, error) {
	material, err := optics.ParseMaterial(c.Params.Material)
	if err != nil {
		return optics.Parameters{}, fmt.Errorf("invalid config: %w", err)
	}
	p := optics.Parameters{
		WavelengthNm:   c.Params.WavelengthNm,
		DistanceCm:     c.Params.DistanceCm,
		ParticleSizeUm: c.Params.ParticleSizeUm,
		Zoom:           c.Params.Zoom,
	}
	p.SetMaterial(material)
	return p, nil
}
