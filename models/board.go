package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Board 画板，删除用户时级联删除
type Board struct {
	BoardID        string    `gorm:"column:board_id;type:varchar(36);primaryKey" json:"board_id"`
	UserID         uint64    `gorm:"column:user_id;not null;index:idx_user_title,priority:1" json:"user_id"`
	Title          string    `gorm:"column:title;type:varchar(200);not null;index:idx_user_title,priority:2" json:"title"`
	Description    *string   `gorm:"column:description;type:text" json:"description"`
	Category       string    `gorm:"column:category;type:varchar(50);not null" json:"category"`
	Subcategory    string    `gorm:"column:subcategory;type:varchar(100);not null;default:''" json:"subcategory"`
	IsPrivate      bool      `gorm:"column:is_private;not null;default:false" json:"is_private"`
	PinsCount      int       `gorm:"column:pins_count;not null;default:0" json:"pins_count"`
	FollowersCount int       `gorm:"column:followers_count;not null;default:0" json:"followers_count"`
	CreatedAt      time.Time `gorm:"column:created_at;index:idx_board_created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`

	Pins []Pin `gorm:"foreignKey:BoardID;references:BoardID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Board) TableName() string {
	return "boards"
}

func (b *Board) BeforeCreate(tx *gorm.DB) error {
	if b.BoardID == "" {
		b.BoardID = uuid.NewString()
	}
	return nil
}
