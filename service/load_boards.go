package service

import (
	"Pinseed/internal/dataset"
	"Pinseed/internal/idmap"
	"Pinseed/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// loadBoard 同一用户下标题相同视为同一画板，已存在时只记录映射
func (r *loadRun) loadBoard(ctx context.Context, row dataset.Row) (string, error) {
	userID, err := r.resolveUser(ctx, row.String("user_id"))
	if err != nil {
		return "", err
	}
	title := row.String("title")
	if title == "" {
		return "", errors.New("title is required")
	}
	existing, err := r.BoardDAO.FindByUserTitle(ctx, userID, title)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return resultOf(false), r.putBoard(ctx, row, existing)
	}

	category := row.String("category")
	if !models.IsCategory(category) {
		return "", fmt.Errorf("column category: unknown category %q", category)
	}

	board := &models.Board{
		UserID:      userID,
		Title:       title,
		Description: row.Optional("description"),
		Category:    category,
		Subcategory: row.String("subcategory"),
	}
	if board.IsPrivate, err = row.Bool("is_private"); err != nil {
		return "", err
	}
	if board.PinsCount, err = row.Int("pins_count"); err != nil {
		return "", err
	}
	if board.FollowersCount, err = row.Int("followers_count"); err != nil {
		return "", err
	}
	if board.CreatedAt, err = row.Time("created_at"); err != nil {
		return "", err
	}
	if board.UpdatedAt, err = row.Time("updated_at"); err != nil {
		return "", err
	}

	stored, created, err := r.BoardDAO.CreateIfAbsent(ctx, board)
	if err != nil {
		return "", err
	}
	if err := r.putBoard(ctx, row, stored); err != nil {
		return "", err
	}
	return resultOf(created), nil
}

func (r *loadRun) putBoard(ctx context.Context, row dataset.Row, board *models.Board) error {
	r.boardOwners[board.BoardID] = board.UserID
	return r.ids.Put(ctx, idmap.KindBoard, row.String("board_id"), board.BoardID)
}

// resolveBoard 返回库内画板 id 与其所属用户
func (r *loadRun) resolveBoard(ctx context.Context, sourceID string) (string, uint64, error) {
	boardID, ok, err := r.ids.Get(ctx, idmap.KindBoard, sourceID)
	if err != nil {
		return "", 0, err
	}
	if !ok {
		return "", 0, fmt.Errorf("%w: board %s", errUnresolved, sourceID)
	}
	if owner, ok := r.boardOwners[boardID]; ok {
		return boardID, owner, nil
	}

	board, err := r.BoardDAO.FindById(ctx, boardID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", 0, fmt.Errorf("%w: board %s", errUnresolved, sourceID)
	}
	if err != nil {
		return "", 0, err
	}
	r.boardOwners[boardID] = board.UserID
	return boardID, board.UserID, nil
}
