package complexplanet

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable constants of the planet. It is an explicit value
// passed into the graph builder rather than process-wide state, so several
// planets with different settings can be generated concurrently.
//
// Elevation values are measured in planetary elevation units: -1.0 for the
// deepest trenches, +1.0 for the highest peaks.
type Config struct {
	// ContinentFrequency controls the size and number of continents, in
	// radians. Higher values produce smaller, more numerous continents.
	ContinentFrequency float64 `yaml:"continent_frequency"`

	// Per-terrain lacunarities. Best results come from values close to 2.0.
	ContinentLacunarity float64 `yaml:"continent_lacunarity"`
	MountainLacunarity  float64 `yaml:"mountain_lacunarity"`
	HillsLacunarity     float64 `yaml:"hills_lacunarity"`
	PlainsLacunarity    float64 `yaml:"plains_lacunarity"`
	BadlandsLacunarity  float64 `yaml:"badlands_lacunarity"`

	// Twistiness of the mountain, hill and badland warping.
	MountainsTwist float64 `yaml:"mountains_twist"`
	HillsTwist     float64 `yaml:"hills_twist"`
	BadlandsTwist  float64 `yaml:"badlands_twist"`

	// SeaLevel and ShelfLevel position the oceans, in planetary elevation
	// units. ShelfLevel must be below SeaLevel.
	SeaLevel   float64 `yaml:"sea_level"`
	ShelfLevel float64 `yaml:"shelf_level"`

	// Fractions of the land covered in each rough terrain type, from 0 to 1.
	// The types overlap: hills cover at least the terrain the mountains
	// are stamped onto, so HillsAmount must not be below MountainsAmount.
	MountainsAmount float64 `yaml:"mountains_amount"`
	HillsAmount     float64 `yaml:"hills_amount"`
	BadlandsAmount  float64 `yaml:"badlands_amount"`

	// TerrainOffset shifts where rough terrain appears. Low values (< 1.0)
	// confine it to high elevations, high values (> 2.0) let it appear
	// anywhere. The total fraction of rough terrain does not change.
	TerrainOffset float64 `yaml:"terrain_offset"`

	// MountainGlaciation smooths mountain slopes towards the peaks. It
	// should be close to, and greater than, 1.0.
	MountainGlaciation float64 `yaml:"mountain_glaciation"`

	// RiverDepth is the maximum depth carved by rivers, in planetary
	// elevation units.
	RiverDepth float64 `yaml:"river_depth"`
}

// DefaultConfig returns the reference planet settings.
func DefaultConfig() Config {
	return Config{
		ContinentFrequency:  1.0,
		ContinentLacunarity: 2.208984375,
		MountainLacunarity:  2.142578125,
		HillsLacunarity:     2.162109375,
		PlainsLacunarity:    2.314453125,
		BadlandsLacunarity:  2.212890625,
		MountainsTwist:      1.0,
		HillsTwist:          1.0,
		BadlandsTwist:       1.0,
		SeaLevel:            0.0,
		ShelfLevel:          -0.375,
		MountainsAmount:     0.5,
		HillsAmount:         (1.0 + 0.5) / 2.0,
		BadlandsAmount:      0.03125,
		TerrainOffset:       1.0,
		MountainGlaciation:  1.375,
		RiverDepth:          0.0234375,
	}
}

// ContinentHeightScale is the scaling applied to base continent elevations,
// derived from the sea level.
func (c *Config) ContinentHeightScale() float64 {
	return (1.0 - c.SeaLevel) / 4.0
}

// Validate reports the first violated constraint, or nil. Call it before
// building a graph; a bad configuration fails fast instead of producing a
// broken planet.
func (c *Config) Validate() error {
	if c.ContinentFrequency <= 0 {
		return fmt.Errorf("continent frequency must be positive, got %v", c.ContinentFrequency)
	}
	if c.SeaLevel < -1 || c.SeaLevel > 1 {
		return fmt.Errorf("sea level must be in [-1,1], got %v", c.SeaLevel)
	}
	if c.ShelfLevel >= c.SeaLevel {
		return fmt.Errorf("shelf level (%v) must be below sea level (%v)", c.ShelfLevel, c.SeaLevel)
	}
	if c.ShelfLevel < -1 {
		return fmt.Errorf("shelf level must be in [-1,1], got %v", c.ShelfLevel)
	}
	if c.MountainsAmount <= 0 || c.MountainsAmount > 1 {
		return fmt.Errorf("mountains amount must be in (0,1], got %v", c.MountainsAmount)
	}
	if c.BadlandsAmount < 0 || c.BadlandsAmount > 1 {
		return fmt.Errorf("badlands amount must be in [0,1], got %v", c.BadlandsAmount)
	}
	// Hills must cover at least as much terrain as the mountains stamped on
	// top of them, or bare plains show through between the two layers.
	if c.HillsAmount < c.MountainsAmount || c.HillsAmount > 1 {
		return fmt.Errorf("hills amount (%v) must be in [mountains amount (%v), 1]", c.HillsAmount, c.MountainsAmount)
	}
	if c.MountainGlaciation <= 1 {
		return fmt.Errorf("mountain glaciation must be greater than 1, got %v", c.MountainGlaciation)
	}
	if c.RiverDepth < 0 {
		return fmt.Errorf("river depth must not be negative, got %v", c.RiverDepth)
	}
	return nil
}

// LoadConfig reads YAML overrides of the default settings from path.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
