package dao

import (
	"Pinseed/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type UserProfileDAO struct {
	Repo[models.UserProfile]
}

func NewUserProfileDAO(db *gorm.DB) *UserProfileDAO {
	return &UserProfileDAO{Repo: NewRepo[models.UserProfile](db)}
}

// Save 不存在则创建，存在则覆盖画像字段
func (d *UserProfileDAO) Save(ctx context.Context, profile *models.UserProfile) (bool, error) {
	var created bool
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.UserProfile
		res := tx.Where("user_id = ?", profile.UserID).Limit(1).Find(&item)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			created = true
			return tx.Create(profile).Error
		}
		profile.ID = item.ID
		return tx.Model(&item).Select(
			"category_preferences", "avg_session_duration", "interaction_frequency",
			"preferred_pin_types", "active_hours", "active_days", "last_updated",
		).Updates(profile).Error
	})
	if err != nil {
		return false, fmt.Errorf("dao.UserProfile.Save error: %w", err)
	}
	return created, nil
}

func (d *UserProfileDAO) FindByUser(ctx context.Context, userID uint64) (*models.UserProfile, error) {
	profile, err := d.Repo.FindOne(ctx, "user_id = ?", userID)
	if err != nil {
		return nil, fmt.Errorf("dao.UserProfile.FindByUser error: %w", err)
	}
	return profile, nil
}
