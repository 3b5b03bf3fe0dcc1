package dao

import (
	"Pinseed/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type BoardDAO struct {
	Repo[models.Board]
}

func NewBoardDAO(db *gorm.DB) *BoardDAO {
	return &BoardDAO{Repo: NewRepo[models.Board](db)}
}

// FindByUserTitle 同一用户下标题唯一
func (b *BoardDAO) FindByUserTitle(ctx context.Context, userID uint64, title string) (*models.Board, error) {
	board, err := b.Repo.FindOne(ctx, "user_id = ? AND title = ?", userID, title)
	if err != nil {
		return nil, fmt.Errorf("dao.Board.FindByUserTitle error: %w", err)
	}
	return board, nil
}

// CreateIfAbsent 以 (user_id, title) 为自然键
func (b *BoardDAO) CreateIfAbsent(ctx context.Context, board *models.Board) (*models.Board, bool, error) {
	item, created, err := b.Repo.FindOrCreate(ctx, board, "user_id = ? AND title = ?", board.UserID, board.Title)
	if err != nil {
		return nil, false, fmt.Errorf("dao.Board.CreateIfAbsent error: %w", err)
	}
	return item, created, nil
}
