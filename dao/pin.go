package dao

import (
	"Pinseed/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type PinDAO struct {
	Repo[models.Pin]
}

func NewPinDAO(db *gorm.DB) *PinDAO {
	return &PinDAO{Repo: NewRepo[models.Pin](db)}
}

// FindByUserTitle 判重键为 (title, user_id)
func (p *PinDAO) FindByUserTitle(ctx context.Context, userID uint64, title string) (*models.Pin, error) {
	pin, err := p.Repo.FindOne(ctx, "user_id = ? AND title = ?", userID, title)
	if err != nil {
		return nil, fmt.Errorf("dao.Pin.FindByUserTitle error: %w", err)
	}
	return pin, nil
}

func (p *PinDAO) CreateIfAbsent(ctx context.Context, pin *models.Pin) (*models.Pin, bool, error) {
	item, created, err := p.Repo.FindOrCreate(ctx, pin, "user_id = ? AND title = ?", pin.UserID, pin.Title)
	if err != nil {
		return nil, false, fmt.Errorf("dao.Pin.CreateIfAbsent error: %w", err)
	}
	return item, created, nil
}

// AvgEngagementRate 全部 pin 互动率的平均值，无曝光的 pin 计为 0
func (p *PinDAO) AvgEngagementRate(ctx context.Context) (float64, error) {
	var row struct{ Avg float64 }
	err := p.Model(ctx).Select(
		"COALESCE(AVG(CASE WHEN impressions_count = 0 THEN 0 ELSE 100.0 * (saves_count + likes_count + clicks_count) / impressions_count END), 0) AS avg",
	).Scan(&row).Error
	if err != nil {
		return 0, fmt.Errorf("dao.Pin.AvgEngagementRate error: %w", err)
	}
	return row.Avg, nil
}
