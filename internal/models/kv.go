package models

import "time"

// KVEntry is one stored key of the planner's key-value persistence.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;size:255" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName pins the table name.
func (KVEntry) TableName() string {
	return "kv_entries"
}
