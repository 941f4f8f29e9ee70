package model

import "time"

const TableNameKeyObject = "key_objects"

// KeyObject mapped from table <key_objects>
type KeyObject struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:true" json:"id"`
	WorldSeed int64     `gorm:"column:world_seed;not null" json:"world_seed"`
	Biome     string    `gorm:"column:biome;not null" json:"biome"`
	X         int32     `gorm:"column:x;not null" json:"x"`
	Y         int32     `gorm:"column:y;not null" json:"y"`
	Completed bool      `gorm:"column:completed;not null" json:"completed"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()" json:"updated_at"`
}

// TableName KeyObject's table name
func (*KeyObject) TableName() string {
	return TableNameKeyObject
}
