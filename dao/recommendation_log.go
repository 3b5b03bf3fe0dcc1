package dao

import (
	"Pinseed/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type RecommendationLogDAO struct {
	Repo[models.RecommendationLog]
}

func NewRecommendationLogDAO(db *gorm.DB) *RecommendationLogDAO {
	return &RecommendationLogDAO{Repo: NewRepo[models.RecommendationLog](db)}
}

// Record 记录一次推荐曝光
func (d *RecommendationLogDAO) Record(ctx context.Context, item *models.RecommendationLog) error {
	if err := d.Repo.Create(ctx, item); err != nil {
		return fmt.Errorf("dao.RecommendationLog.Record error: %w", err)
	}
	return nil
}

// ClickRate 曝光中被点击的比例 [0, 1]，recType 为空时统计全部类型
func (d *RecommendationLogDAO) ClickRate(ctx context.Context, recType string) (float64, error) {
	var row struct {
		Shown   int64
		Clicked int64
	}
	q := d.Model(ctx).Select("COUNT(*) AS shown, COALESCE(SUM(CASE WHEN clicked THEN 1 ELSE 0 END), 0) AS clicked")
	if recType != "" {
		q = q.Where("recommendation_type = ?", recType)
	}
	if err := q.Scan(&row).Error; err != nil {
		return 0, fmt.Errorf("dao.RecommendationLog.ClickRate error: %w", err)
	}
	if row.Shown == 0 {
		return 0, nil
	}
	return float64(row.Clicked) / float64(row.Shown), nil
}
