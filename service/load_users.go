package service

import (
	"Pinseed/internal/dataset"
	"Pinseed/internal/idmap"
	"Pinseed/models"
	"context"
	"errors"
	"fmt"
	"strconv"
)

// loadUser 邮箱已存在时只记录映射，不再解析其余字段
func (r *loadRun) loadUser(ctx context.Context, row dataset.Row) (string, error) {
	email := row.String("email")
	username := row.String("username")
	if email == "" || username == "" {
		return "", errors.New("username and email are required")
	}
	existing, err := r.UserDAO.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return resultOf(false), r.putUser(ctx, row, existing.ID)
	}

	user := &models.User{
		Username:            username,
		Email:               email,
		Password:            r.password,
		FirstName:           row.String("first_name"),
		LastName:            row.String("last_name"),
		Bio:                 row.Optional("bio"),
		Location:            row.String("location"),
		AccountType:         row.String("account_type"),
		IsActive:            true,
		PreferredCategories: row.List("preferred_categories"),
	}
	if user.AccountType == "" {
		user.AccountType = models.AccountPersonal
	}

	if user.FollowersCount, err = row.Int("followers_count"); err != nil {
		return "", err
	}
	if user.FollowingCount, err = row.Int("following_count"); err != nil {
		return "", err
	}
	if user.BoardsCount, err = row.Int("boards_count"); err != nil {
		return "", err
	}
	if user.PinsCount, err = row.Int("pins_count"); err != nil {
		return "", err
	}
	if user.IsVerified, err = row.Bool("is_verified"); err != nil {
		return "", err
	}
	if user.CreatedAt, err = row.Time("created_at"); err != nil {
		return "", err
	}
	if user.LastActive, err = row.Time("last_active"); err != nil {
		return "", err
	}

	stored, created, err := r.UserDAO.CreateIfAbsent(ctx, user)
	if err != nil {
		return "", err
	}
	if err := r.putUser(ctx, row, stored.ID); err != nil {
		return "", err
	}
	return resultOf(created), nil
}

func (r *loadRun) putUser(ctx context.Context, row dataset.Row, id uint64) error {
	return r.ids.Put(ctx, idmap.KindUser, row.String("user_id"), strconv.FormatUint(id, 10))
}

// resolveUser 生成器 user_id 到库内主键
func (r *loadRun) resolveUser(ctx context.Context, sourceID string) (uint64, error) {
	v, ok, err := r.ids.Get(ctx, idmap.KindUser, sourceID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: user %s", errUnresolved, sourceID)
	}
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid mapped user id %q: %w", v, err)
	}
	return id, nil
}
