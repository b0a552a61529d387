package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel mirrors the 'favorites' table. The composite unique index on
// (user_id, event_id) enforces one favorite per event per user.
type FavoriteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_event"`
	EventID   string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_favorites_user_event"`
	Title     string    `gorm:"type:varchar(255);not null"`
	EventDate string    `gorm:"type:varchar(10)"`
	Price     string    `gorm:"type:varchar(50)"`
	VenueName string    `gorm:"type:varchar(255)"`
	Address   string    `gorm:"type:varchar(512)"`
	ImageURL  string    `gorm:"type:varchar(512)"`
	URL       string    `gorm:"type:varchar(512)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
