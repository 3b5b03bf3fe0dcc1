package service

import (
	"Pinseed/internal/dataset"
	"Pinseed/models"
	"context"
	"errors"
)

// loadSearch 同一用户的相同搜索词合并为一条
func (r *loadRun) loadSearch(ctx context.Context, row dataset.Row) (string, error) {
	userID, err := r.resolveUser(ctx, row.String("user_id"))
	if err != nil {
		return "", err
	}
	query := &models.SearchQuery{
		UserID:    userID,
		QueryText: row.String("query_text"),
		SessionID: row.Optional("session_id"),
	}
	if query.QueryText == "" {
		return "", errors.New("query_text is required")
	}
	if query.ResultsCount, err = row.Int("results_count"); err != nil {
		return "", err
	}
	if query.ClickedResults, err = row.Int("clicked_results"); err != nil {
		return "", err
	}
	if query.Timestamp, err = row.Time("timestamp"); err != nil {
		return "", err
	}

	_, created, err := r.SearchQueryDAO.CreateIfAbsent(ctx, query)
	if err != nil {
		return "", err
	}
	return resultOf(created), nil
}
