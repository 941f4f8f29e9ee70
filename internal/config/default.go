package config

import "islandgen/internal/domain/world"

// Default returns a configuration that generates a 256x256 island and serves
// it from memory.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:     ":8080",
			LogLevel: "info",

			AllowOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Migrate:      true,
			MaxOpenConns: 10,
		},
		World: WorldConfig{
			Seed:                     271828,
			HeightSeed:               314159,
			PrecipitationSeed:        161803,
			Width:                    256,
			Height:                   256,
			Scale:                    1,
			HeightOctaves:            4,
			HeightFrequency:          1,
			HeightExponent:           1.4,
			PrecipitationOctaves:     3,
			PrecipitationPersistence: 0.5,
			PrecipitationLacunarity:  2,
			TemperatureMultiplier:    1,
			TemperatureLoss:          0.5,
			TreeScale:                16,
			RenderDistance:           64,
			UnloadMargin:             15,
		},
		Biomes: world.DefaultBiomes(),
	}
}
