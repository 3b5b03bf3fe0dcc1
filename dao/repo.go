package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repo 单表通用操作，由各 DAO 内嵌
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// Model 带上下文的表句柄
func (r *Repo[T]) Model(ctx context.Context) *gorm.DB {
	return r.Db.WithContext(ctx).Model(new(T))
}

// FindById 主键查询
func (r *Repo[T]) FindById(ctx context.Context, id any) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).Where(clause.Eq{Column: clause.PrimaryColumn, Value: id}).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByWhere 条件查询第一条，未找到返回 gorm.ErrRecordNotFound
func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindOne 条件查询第一条，未找到返回 nil, nil
func (r *Repo[T]) FindOne(ctx context.Context, where string, args ...any) (*T, error) {
	item, err := r.FindByWhere(ctx, where, args...)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return item, err
}

// Count 全表计数
func (r *Repo[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Model(ctx).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repo[T]) Create(ctx context.Context, item *T) error {
	return r.Db.WithContext(ctx).Create(item).Error
}

// FindOrCreate 在一个事务内先按条件查找，不存在才插入 item
// 返回库内记录以及是否为新建
func (r *Repo[T]) FindOrCreate(ctx context.Context, item *T, where string, args ...any) (*T, bool, error) {
	var (
		found   T
		created bool
	)
	err := r.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where(where, args...).Limit(1).Find(&found)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if created {
		return item, true, nil
	}
	return &found, false, nil
}
