package service

import (
	"Pinseed/internal/dataset"
	"Pinseed/internal/idmap"
	"Pinseed/models"
	"context"
	"errors"
	"fmt"
)

// loadPin user 一律取画板的所属用户，忽略行里的 user_id
func (r *loadRun) loadPin(ctx context.Context, row dataset.Row) (string, error) {
	boardID, owner, err := r.resolveBoard(ctx, row.String("board_id"))
	if err != nil {
		return "", err
	}
	title := row.String("title")
	if title == "" {
		return "", errors.New("title is required")
	}
	existing, err := r.PinDAO.FindByUserTitle(ctx, owner, title)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return resultOf(false), r.putPin(ctx, row, existing.PinID)
	}

	category := row.String("category")
	if !models.IsCategory(category) {
		return "", fmt.Errorf("column category: unknown category %q", category)
	}

	pin := &models.Pin{
		BoardID:      boardID,
		UserID:       owner,
		Title:        title,
		Description:  row.Optional("description"),
		ImageURL:     row.String("image_url"),
		SourceURL:    row.Optional("source_url"),
		Category:     category,
		Subcategory:  row.String("subcategory"),
		ColorPalette: row.List("color_palette"),
		Tags:         row.List("tags"),
	}
	if pin.Width, err = row.Int("width"); err != nil {
		return "", err
	}
	if pin.Height, err = row.Int("height"); err != nil {
		return "", err
	}
	if pin.Width <= 0 || pin.Height <= 0 {
		return "", fmt.Errorf("invalid dimensions %dx%d", pin.Width, pin.Height)
	}

	counters := []struct {
		col string
		dst *int
	}{
		{"saves_count", &pin.SavesCount},
		{"likes_count", &pin.LikesCount},
		{"comments_count", &pin.CommentsCount},
		{"shares_count", &pin.SharesCount},
		{"clicks_count", &pin.ClicksCount},
		{"impressions_count", &pin.ImpressionsCount},
	}
	for _, c := range counters {
		if *c.dst, err = row.Int(c.col); err != nil {
			return "", err
		}
		if *c.dst < 0 {
			return "", fmt.Errorf("column %s: negative counter %d", c.col, *c.dst)
		}
	}
	if pin.TrendingScore, err = row.Float("trending_score"); err != nil {
		return "", err
	}
	if pin.IsPromoted, err = row.Bool("is_promoted"); err != nil {
		return "", err
	}
	if pin.CreatedAt, err = row.Time("created_at"); err != nil {
		return "", err
	}
	if pin.UpdatedAt, err = row.Time("updated_at"); err != nil {
		return "", err
	}

	stored, created, err := r.PinDAO.CreateIfAbsent(ctx, pin)
	if err != nil {
		return "", err
	}
	if err := r.putPin(ctx, row, stored.PinID); err != nil {
		return "", err
	}
	return resultOf(created), nil
}

func (r *loadRun) putPin(ctx context.Context, row dataset.Row, pinID string) error {
	return r.ids.Put(ctx, idmap.KindPin, row.String("pin_id"), pinID)
}

func (r *loadRun) resolvePin(ctx context.Context, sourceID string) (string, error) {
	pinID, ok, err := r.ids.Get(ctx, idmap.KindPin, sourceID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: pin %s", errUnresolved, sourceID)
	}
	return pinID, nil
}
