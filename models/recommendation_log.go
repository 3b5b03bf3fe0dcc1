package models

import "time"

// RecommendationLog 推荐曝光日志
type RecommendationLog struct {
	ID                 uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID             uint64    `gorm:"column:user_id;not null;index:idx_rec_user_shown,priority:1" json:"user_id"`
	PinID              string    `gorm:"column:pin_id;type:varchar(36);not null" json:"pin_id"`
	RecommendationType string    `gorm:"column:recommendation_type;type:varchar(30);not null;index:idx_rec_type" json:"recommendation_type"`
	ConfidenceScore    float64   `gorm:"column:confidence_score;not null" json:"confidence_score"`
	Position           int       `gorm:"column:position;not null" json:"position"`
	ShownAt            time.Time `gorm:"column:shown_at;autoCreateTime;index:idx_rec_user_shown,priority:2" json:"shown_at"`
	Clicked            bool      `gorm:"column:clicked;not null;default:false" json:"clicked"`
	Saved              bool      `gorm:"column:saved;not null;default:false" json:"saved"`
}

func (RecommendationLog) TableName() string {
	return "recommendation_logs"
}
