package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserInteraction 用户对 pin 的互动
// 唯一键: user_id + pin_id + interaction_type
type UserInteraction struct {
	InteractionID   string    `gorm:"column:interaction_id;type:varchar(36);primaryKey" json:"interaction_id"`
	UserID          uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_pin_type,priority:1;index:idx_user_type,priority:1" json:"user_id"`
	PinID           string    `gorm:"column:pin_id;type:varchar(36);not null;uniqueIndex:uk_user_pin_type,priority:2;index:idx_pin_type,priority:1" json:"pin_id"`
	InteractionType string    `gorm:"column:interaction_type;type:varchar(20);not null;uniqueIndex:uk_user_pin_type,priority:3;index:idx_user_type,priority:2;index:idx_pin_type,priority:2" json:"interaction_type"`
	Timestamp       time.Time `gorm:"column:timestamp;index:idx_interaction_ts" json:"timestamp"`
	SessionID       *string   `gorm:"column:session_id;type:varchar(36)" json:"session_id"`
	DeviceType      string    `gorm:"column:device_type;type:varchar(20);not null" json:"device_type"`
	Referrer        string    `gorm:"column:referrer;type:varchar(30);not null" json:"referrer"`
}

func (UserInteraction) TableName() string {
	return "user_interactions"
}

func (i *UserInteraction) BeforeCreate(tx *gorm.DB) error {
	if i.InteractionID == "" {
		i.InteractionID = uuid.NewString()
	}
	if i.Timestamp.IsZero() {
		i.Timestamp = time.Now()
	}
	return nil
}
