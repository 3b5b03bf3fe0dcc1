package dao

import (
	"Pinseed/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type SearchQueryDAO struct {
	Repo[models.SearchQuery]
}

func NewSearchQueryDAO(db *gorm.DB) *SearchQueryDAO {
	return &SearchQueryDAO{Repo: NewRepo[models.SearchQuery](db)}
}

// CreateIfAbsent 以 (user_id, query_text) 为自然键，同一用户的重复搜索只保留第一条
func (d *SearchQueryDAO) CreateIfAbsent(ctx context.Context, item *models.SearchQuery) (*models.SearchQuery, bool, error) {
	found, created, err := d.Repo.FindOrCreate(ctx, item, "user_id = ? AND query_text = ?", item.UserID, item.QueryText)
	if err != nil {
		return nil, false, fmt.Errorf("dao.SearchQuery.CreateIfAbsent error: %w", err)
	}
	return found, created, nil
}

// AvgClickThroughRate 全部搜索点击率的平均值
func (d *SearchQueryDAO) AvgClickThroughRate(ctx context.Context) (float64, error) {
	var row struct{ Avg float64 }
	err := d.Model(ctx).Select(
		"COALESCE(AVG(CASE WHEN results_count = 0 THEN 0 ELSE 100.0 * clicked_results / results_count END), 0) AS avg",
	).Scan(&row).Error
	if err != nil {
		return 0, fmt.Errorf("dao.SearchQuery.AvgClickThroughRate error: %w", err)
	}
	return row.Avg, nil
}
