package service

import (
	"Pinseed/dao"
	"Pinseed/internal/dataset"
	"context"
)

var _ IStatsService = (*StatsService)(nil)

type IStatsService interface {
	// Totals 各表行数以及平均互动率、平均点击率
	Totals(ctx context.Context) (*Totals, error)
}

type StatsService struct {
	UserDAO              *dao.UserDAO
	BoardDAO             *dao.BoardDAO
	PinDAO               *dao.PinDAO
	InteractionDAO       *dao.InteractionDAO
	SearchQueryDAO       *dao.SearchQueryDAO
	UserProfileDAO       *dao.UserProfileDAO
	RecommendationLogDAO *dao.RecommendationLogDAO
}

type Totals struct {
	Users               int64   `json:"users"`
	Boards              int64   `json:"boards"`
	Pins                int64   `json:"pins"`
	Interactions        int64   `json:"interactions"`
	Searches            int64   `json:"searches"`
	Profiles            int64   `json:"profiles"`
	RecommendationLogs  int64   `json:"recommendation_logs"`
	AvgEngagementRate   float64 `json:"avg_engagement_rate"`
	AvgClickThroughRate float64 `json:"avg_click_through_rate"`
}

// Counts 五类导入实体的行数
func (t *Totals) Counts() map[string]int64 {
	return map[string]int64{
		dataset.EntityUsers:        t.Users,
		dataset.EntityBoards:       t.Boards,
		dataset.EntityPins:         t.Pins,
		dataset.EntityInteractions: t.Interactions,
		dataset.EntitySearches:     t.Searches,
	}
}

func (s *StatsService) Totals(ctx context.Context) (*Totals, error) {
	var (
		t   Totals
		err error
	)
	counters := []struct {
		dst   *int64
		count func(context.Context) (int64, error)
	}{
		{&t.Users, s.UserDAO.Count},
		{&t.Boards, s.BoardDAO.Count},
		{&t.Pins, s.PinDAO.Count},
		{&t.Interactions, s.InteractionDAO.Count},
		{&t.Searches, s.SearchQueryDAO.Count},
		{&t.Profiles, s.UserProfileDAO.Count},
		{&t.RecommendationLogs, s.RecommendationLogDAO.Count},
	}
	for _, c := range counters {
		if *c.dst, err = c.count(ctx); err != nil {
			return nil, err
		}
	}
	if t.AvgEngagementRate, err = s.PinDAO.AvgEngagementRate(ctx); err != nil {
		return nil, err
	}
	if t.AvgClickThroughRate, err = s.SearchQueryDAO.AvgClickThroughRate(ctx); err != nil {
		return nil, err
	}
	return &t, nil
}
