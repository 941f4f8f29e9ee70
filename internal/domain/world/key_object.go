package world

type KeyObjectRecord struct {
	Position  Point  `json:"position"`
	Biome     string `json:"biome"`
	Completed bool   `json:"completed"`
}
