package dao

import (
	"Pinseed/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type UserDAO struct {
	Repo[models.User]
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{Repo: NewRepo[models.User](db)}
}

// FindByEmail 邮箱查询，不存在返回 nil
func (u *UserDAO) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := u.Repo.FindOne(ctx, "email = ?", email)
	if err != nil {
		return nil, fmt.Errorf("dao.User.FindByEmail error: %w", err)
	}
	return user, nil
}

// CreateIfAbsent 以邮箱为自然键，已存在时返回库内记录
func (u *UserDAO) CreateIfAbsent(ctx context.Context, user *models.User) (*models.User, bool, error) {
	item, created, err := u.Repo.FindOrCreate(ctx, user, "email = ?", user.Email)
	if err != nil {
		return nil, false, fmt.Errorf("dao.User.CreateIfAbsent error: %w", err)
	}
	return item, created, nil
}

// EachBatch 按主键顺序分批遍历全部用户
func (u *UserDAO) EachBatch(ctx context.Context, size int, fn func(users []models.User) error) error {
	var batch []models.User
	err := u.Db.WithContext(ctx).FindInBatches(&batch, size, func(tx *gorm.DB, _ int) error {
		return fn(batch)
	}).Error
	if err != nil {
		return fmt.Errorf("dao.User.EachBatch error: %w", err)
	}
	return nil
}
