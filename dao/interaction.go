package dao

import (
	"Pinseed/models"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type InteractionDAO struct {
	Repo[models.UserInteraction]
}

func NewInteractionDAO(db *gorm.DB) *InteractionDAO {
	return &InteractionDAO{Repo: NewRepo[models.UserInteraction](db)}
}

// CreateIfAbsent 以 (user_id, pin_id, interaction_type) 为自然键
func (d *InteractionDAO) CreateIfAbsent(ctx context.Context, item *models.UserInteraction) (*models.UserInteraction, bool, error) {
	found, created, err := d.Repo.FindOrCreate(ctx, item,
		"user_id = ? AND pin_id = ? AND interaction_type = ?", item.UserID, item.PinID, item.InteractionType)
	if err != nil {
		return nil, false, fmt.Errorf("dao.Interaction.CreateIfAbsent error: %w", err)
	}
	return found, created, nil
}

// CategorizedInteraction 互动连同 pin 的分类
type CategorizedInteraction struct {
	InteractionType string
	Category        string
	Timestamp       time.Time
	SessionID       *string
}

// ListByUser 用户的全部互动，按时间排序
func (d *InteractionDAO) ListByUser(ctx context.Context, userID uint64) ([]CategorizedInteraction, error) {
	var items []CategorizedInteraction
	err := d.Model(ctx).
		Select("user_interactions.interaction_type, pins.category, user_interactions.timestamp, user_interactions.session_id").
		Joins("JOIN pins ON pins.pin_id = user_interactions.pin_id").
		Where("user_interactions.user_id = ?", userID).
		Order("user_interactions.timestamp").
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("dao.Interaction.ListByUser error: %w", err)
	}
	return items, nil
}
