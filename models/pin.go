package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Pin 图钉。UserID 必须等于所属画板的 UserID，由导入逻辑保证，数据库不约束
type Pin struct {
	PinID            string                      `gorm:"column:pin_id;type:varchar(36);primaryKey" json:"pin_id"`
	BoardID          string                      `gorm:"column:board_id;type:varchar(36);not null;index:idx_pin_board" json:"board_id"`
	UserID           uint64                      `gorm:"column:user_id;not null;index:idx_pin_user_title,priority:1" json:"user_id"`
	Title            string                      `gorm:"column:title;type:varchar(500);not null;index:idx_pin_user_title,priority:2" json:"title"`
	Description      *string                     `gorm:"column:description;type:text" json:"description"`
	ImageURL         string                      `gorm:"column:image_url;type:varchar(500);not null" json:"image_url"`
	SourceURL        *string                     `gorm:"column:source_url;type:varchar(500)" json:"source_url"`
	Category         string                      `gorm:"column:category;type:varchar(50);not null;index:idx_pin_category" json:"category"`
	Subcategory      string                      `gorm:"column:subcategory;type:varchar(100);not null;default:''" json:"subcategory"`
	Width            int                         `gorm:"column:width;not null" json:"width"`
	Height           int                         `gorm:"column:height;not null" json:"height"`
	ColorPalette     datatypes.JSONSlice[string] `gorm:"column:color_palette" json:"color_palette"`
	SavesCount       int                         `gorm:"column:saves_count;not null;default:0;index:idx_pin_saves" json:"saves_count"`
	LikesCount       int                         `gorm:"column:likes_count;not null;default:0" json:"likes_count"`
	CommentsCount    int                         `gorm:"column:comments_count;not null;default:0" json:"comments_count"`
	SharesCount      int                         `gorm:"column:shares_count;not null;default:0" json:"shares_count"`
	ClicksCount      int                         `gorm:"column:clicks_count;not null;default:0" json:"clicks_count"`
	ImpressionsCount int                         `gorm:"column:impressions_count;not null;default:0" json:"impressions_count"`
	TrendingScore    float64                     `gorm:"column:trending_score;not null;default:0;index:idx_pin_trending" json:"trending_score"`
	IsPromoted       bool                        `gorm:"column:is_promoted;not null;default:false" json:"is_promoted"`
	Tags             datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags"`
	CreatedAt        time.Time                   `gorm:"column:created_at;index:idx_pin_created_at" json:"created_at"`
	UpdatedAt        time.Time                   `gorm:"column:updated_at" json:"updated_at"`

	Interactions       []UserInteraction   `gorm:"foreignKey:PinID;references:PinID;constraint:OnDelete:CASCADE" json:"-"`
	RecommendationLogs []RecommendationLog `gorm:"foreignKey:PinID;references:PinID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Pin) TableName() string {
	return "pins"
}

func (p *Pin) BeforeCreate(tx *gorm.DB) error {
	if p.PinID == "" {
		p.PinID = uuid.NewString()
	}
	if p.ColorPalette == nil {
		p.ColorPalette = datatypes.JSONSlice[string]{}
	}
	if p.Tags == nil {
		p.Tags = datatypes.JSONSlice[string]{}
	}
	return nil
}

// EngagementRate 互动率(%)，读取时计算，不落库
func (p *Pin) EngagementRate() float64 {
	return EngagementRate(p.SavesCount, p.LikesCount, p.ClicksCount, p.ImpressionsCount)
}

// EngagementRate impressions 为 0 时返回 0
func EngagementRate(saves, likes, clicks, impressions int) float64 {
	if impressions == 0 {
		return 0
	}
	return 100 * float64(saves+likes+clicks) / float64(impressions)
}
