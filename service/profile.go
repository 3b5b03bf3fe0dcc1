package service

import (
	"Pinseed/dao"
	"Pinseed/models"
	"Pinseed/pkg/log"
	"context"
	"math"
	"slices"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

var _ IProfileService = (*ProfileService)(nil)

type IProfileService interface {
	// Rebuild 按已导入的互动重算用户画像，返回写入的画像数
	Rebuild(ctx context.Context) (int, error)
}

type ProfileService struct {
	UserDAO        *dao.UserDAO
	InteractionDAO *dao.InteractionDAO
	UserProfileDAO *dao.UserProfileDAO
}

const profileBatchSize = 200

func (s *ProfileService) Rebuild(ctx context.Context) (int, error) {
	var written, skipped int
	err := s.UserDAO.EachBatch(ctx, profileBatchSize, func(users []models.User) error {
		for _, u := range users {
			items, err := s.InteractionDAO.ListByUser(ctx, u.ID)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				skipped++
				continue
			}
			if _, err := s.UserProfileDAO.Save(ctx, BuildProfile(u.ID, items)); err != nil {
				return err
			}
			written++
		}
		return nil
	})
	if err != nil {
		return written, err
	}
	log.L.Info("profiles rebuilt", zap.Int("written", written), zap.Int("skipped", skipped))
	return written, nil
}

// BuildProfile 由一个用户的互动计算画像，items 不能为空
//   - category_preferences: 各分类互动占比，保留 4 位小数
//   - interaction_frequency: 每个活跃日(UTC)的互动数
//   - preferred_pin_types: 互动类型按次数降序
//   - active_hours / active_days: 出现过的小时与星期(0 为周日)，升序
//   - avg_session_duration: 有 session 的互动按 session 分组，首末间隔的平均分钟数
func BuildProfile(userID uint64, items []dao.CategorizedInteraction) *models.UserProfile {
	total := float64(len(items))
	categories := map[string]int{}
	types := map[string]int{}
	days := map[string]struct{}{}
	hours := map[int]struct{}{}
	weekdays := map[int]struct{}{}
	sessions := map[string][2]time.Time{}

	for _, it := range items {
		categories[it.Category]++
		types[it.InteractionType]++
		ts := it.Timestamp.UTC()
		days[ts.Format(time.DateOnly)] = struct{}{}
		hours[ts.Hour()] = struct{}{}
		weekdays[int(ts.Weekday())] = struct{}{}

		if it.SessionID != nil && *it.SessionID != "" {
			span, ok := sessions[*it.SessionID]
			if !ok {
				span = [2]time.Time{ts, ts}
			}
			if ts.Before(span[0]) {
				span[0] = ts
			}
			if ts.After(span[1]) {
				span[1] = ts
			}
			sessions[*it.SessionID] = span
		}
	}

	prefs := make(map[string]float64, len(categories))
	for c, n := range categories {
		prefs[c] = math.Round(float64(n)/total*10000) / 10000
	}

	pinTypes := make([]string, 0, len(types))
	for _, t := range models.InteractionTypes {
		if types[t] > 0 {
			pinTypes = append(pinTypes, t)
		}
	}
	// 稳定排序，次数相同时保持类型的固定顺序
	slices.SortStableFunc(pinTypes, func(a, b string) int { return types[b] - types[a] })

	var sessionMinutes float64
	for _, span := range sessions {
		sessionMinutes += span[1].Sub(span[0]).Minutes()
	}
	var avgSession float64
	if len(sessions) > 0 {
		avgSession = math.Round(sessionMinutes/float64(len(sessions))*100) / 100
	}

	return &models.UserProfile{
		UserID:              userID,
		CategoryPreferences: datatypes.NewJSONType(prefs),
		AvgSessionDuration:  avgSession,
		InteractionFreq:     math.Round(total/float64(len(days))*100) / 100,
		PreferredPinTypes:   pinTypes,
		ActiveHours:         sortedKeys(hours),
		ActiveDays:          sortedKeys(weekdays),
	}
}

func sortedKeys(m map[int]struct{}) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
