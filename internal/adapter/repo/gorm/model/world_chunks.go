package model

import "time"

const TableNameWorldChunk = "world_chunks"

// WorldChunk mapped from table <world_chunks>
type WorldChunk struct {
	WorldSeed         int64     `gorm:"column:world_seed;primaryKey" json:"world_seed"`
	ChunkX            int32     `gorm:"column:chunk_x;primaryKey" json:"chunk_x"`
	ChunkY            int32     `gorm:"column:chunk_y;primaryKey" json:"chunk_y"`
	ContainsKeyObject bool      `gorm:"column:contains_key_object;not null" json:"contains_key_object"`
	Snapshot          []byte    `gorm:"column:snapshot;type:jsonb;not null" json:"snapshot"`
	UpdatedAt         time.Time `gorm:"column:updated_at;not null;default:now()" json:"updated_at"`
}

// TableName WorldChunk's table name
func (*WorldChunk) TableName() string {
	return TableNameWorldChunk
}
