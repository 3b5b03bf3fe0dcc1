package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserProfile 推荐用的用户画像，由互动数据计算得出
type UserProfile struct {
	ID                  uint64                                 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID              uint64                                 `gorm:"column:user_id;not null;uniqueIndex:uk_profile_user" json:"user_id"`
	CategoryPreferences datatypes.JSONType[map[string]float64] `gorm:"column:category_preferences" json:"category_preferences"`
	AvgSessionDuration  float64                                `gorm:"column:avg_session_duration;not null;default:0" json:"avg_session_duration"`
	InteractionFreq     float64                                `gorm:"column:interaction_frequency;not null;default:0" json:"interaction_frequency"`
	PreferredPinTypes   datatypes.JSONSlice[string]            `gorm:"column:preferred_pin_types" json:"preferred_pin_types"`
	ActiveHours         datatypes.JSONSlice[int]               `gorm:"column:active_hours" json:"active_hours"`
	ActiveDays          datatypes.JSONSlice[int]               `gorm:"column:active_days" json:"active_days"`
	LastUpdated         time.Time                              `gorm:"column:last_updated;autoUpdateTime" json:"last_updated"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
