package models

import "time"

// BaseModel is shared by every persisted entity. Rows are hard-deleted,
// so there is no soft-delete column here.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
