package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"islandgen/internal/domain/world"
	"islandgen/internal/domain/worldgen"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Server   ServerConfig        `yaml:"server"`
	Database DatabaseConfig      `yaml:"database"`
	World    WorldConfig         `yaml:"world"`
	Biomes   []world.BiomePreset `yaml:"biomes"`
}

type ServerConfig struct {
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"log_level"`
	// AllowOrigins feeds the CORS policy; "*" or an empty list allows any
	// origin.
	AllowOrigins []string `yaml:"allow_origins"`
}

// DatabaseConfig is optional. An empty DSN keeps everything in memory.
type DatabaseConfig struct {
	DSN           string `yaml:"dsn"`
	Migrate       bool   `yaml:"migrate"`
	MaxOpenConns  int    `yaml:"max_open_conns"`
	SlowThreshold string `yaml:"slow_threshold"`
	ExportChunks  bool   `yaml:"export_chunks"`
}

type WorldConfig struct {
	Seed              int64   `yaml:"seed"`
	HeightSeed        int64   `yaml:"height_seed"`
	PrecipitationSeed int64   `yaml:"precipitation_seed"`
	Width             int     `yaml:"width"`
	Height            int     `yaml:"height"`
	Scale             float64 `yaml:"scale"`

	HeightOctaves   int     `yaml:"height_octaves"`
	HeightFrequency float64 `yaml:"height_frequency"`
	HeightExponent  float64 `yaml:"height_exponent"`

	PrecipitationOctaves     int     `yaml:"precipitation_octaves"`
	PrecipitationPersistence float64 `yaml:"precipitation_persistence"`
	PrecipitationLacunarity  float64 `yaml:"precipitation_lacunarity"`

	TemperatureMultiplier float64 `yaml:"temperature_multiplier"`
	TemperatureLoss       float64 `yaml:"temperature_loss"`

	TreeScale      float64 `yaml:"tree_scale"`
	RenderDistance int     `yaml:"render_distance"`
	UnloadMargin   float64 `yaml:"unload_margin"`
}

// Load reads a YAML file over Default, so a file only needs the keys it
// changes. Env overrides are applied before validation.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) ApplyEnv() {
	c.Database.DSN = stringEnv("ISLANDGEN_DB_DSN", c.Database.DSN)
	c.Server.Addr = stringEnv("ISLANDGEN_ADDR", c.Server.Addr)
	c.Server.LogLevel = stringEnv("ISLANDGEN_LOG_LEVEL", c.Server.LogLevel)
	if v := strings.TrimSpace(os.Getenv("ISLANDGEN_ALLOW_ORIGINS")); v != "" {
		c.Server.AllowOrigins = strings.Split(v, ",")
	}
	c.World.Seed = int64(intEnv("WORLD_SEED", int(c.World.Seed)))
	c.World.HeightSeed = int64(intEnv("WORLD_HEIGHT_SEED", int(c.World.HeightSeed)))
	c.World.PrecipitationSeed = int64(intEnv("WORLD_PRECIPITATION_SEED", int(c.World.PrecipitationSeed)))
	c.World.Width = intEnv("WORLD_WIDTH", c.World.Width)
	c.World.Height = intEnv("WORLD_HEIGHT", c.World.Height)
	c.World.RenderDistance = intEnv("WORLD_RENDER_DISTANCE", c.World.RenderDistance)
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("%w: server.addr must be set", ErrInvalidConfig)
	}
	if _, ok := parseLevel(c.Server.LogLevel); !ok {
		return fmt.Errorf("%w: server.log_level %q is unknown", ErrInvalidConfig, c.Server.LogLevel)
	}
	if c.Database.MaxOpenConns < 0 {
		return fmt.Errorf("%w: database.max_open_conns cannot be negative", ErrInvalidConfig)
	}
	if _, err := c.Database.SlowQuery(); err != nil {
		return fmt.Errorf("%w: database.slow_threshold: %v", ErrInvalidConfig, err)
	}
	if c.World.UnloadMargin <= 0 {
		return fmt.Errorf("%w: world.unload_margin must be positive", ErrInvalidConfig)
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: world: %v", ErrInvalidConfig, err)
	}
	if _, err := c.BiomeSet(); err != nil {
		return fmt.Errorf("%w: biomes: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) Params() worldgen.Params {
	w := c.World
	return worldgen.Params{
		WorldSeed:                w.Seed,
		HeightSeed:               w.HeightSeed,
		PrecipitationSeed:        w.PrecipitationSeed,
		Width:                    w.Width,
		Height:                   w.Height,
		Scale:                    w.Scale,
		HeightOctaves:            w.HeightOctaves,
		HeightFrequency:          w.HeightFrequency,
		HeightExponent:           w.HeightExponent,
		PrecipitationOctaves:     w.PrecipitationOctaves,
		PrecipitationPersistence: w.PrecipitationPersistence,
		PrecipitationLacunarity:  w.PrecipitationLacunarity,
		TemperatureMultiplier:    w.TemperatureMultiplier,
		TemperatureLoss:          w.TemperatureLoss,
		TreeScale:                w.TreeScale,
		RenderDistance:           w.RenderDistance,
	}
}

func (c Config) BiomeSet() (*world.BiomeSet, error) {
	return world.NewBiomeSet(c.Biomes)
}

// SlowQuery is zero when no threshold is configured.
func (d DatabaseConfig) SlowQuery() (time.Duration, error) {
	if strings.TrimSpace(d.SlowThreshold) == "" {
		return 0, nil
	}
	return time.ParseDuration(d.SlowThreshold)
}

func (s ServerConfig) HlogLevel() hlog.Level {
	lvl, _ := parseLevel(s.LogLevel)
	return lvl
}

func parseLevel(raw string) (hlog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return hlog.LevelTrace, true
	case "debug":
		return hlog.LevelDebug, true
	case "", "info":
		return hlog.LevelInfo, true
	case "notice":
		return hlog.LevelNotice, true
	case "warn", "warning":
		return hlog.LevelWarn, true
	case "error":
		return hlog.LevelError, true
	case "fatal":
		return hlog.LevelFatal, true
	}
	return hlog.LevelInfo, false
}

func stringEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
