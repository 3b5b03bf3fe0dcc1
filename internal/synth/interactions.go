package synth

import (
	"Pinseed/internal/dataset"
	"Pinseed/models"
	"slices"
)

// GenerateInteractions 做 trials 次独立试验，每次随机取用户和 pin，
// 以 0.15 的概率保留，pin 分类在用户偏好内时概率乘 3。
// trials 只是上限，实际行数随 seed 变化
func GenerateInteractions(src *Source, users []dataset.UserRecord, pins []dataset.PinRecord, trials int) []dataset.InteractionRecord {
	out := []dataset.InteractionRecord{}
	if len(users) == 0 || len(pins) == 0 {
		return out
	}
	now := src.Now()
	types := src.Categorical(interactionWeights)
	devices := src.Categorical(deviceWeights)
	referrers := src.Categorical(referrerWeights)

	for i := 0; i < trials; i++ {
		src.progress(dataset.EntityInteractions, i)

		user := users[src.Index(len(users))]
		pin := pins[src.Index(len(pins))]
		interactionType := models.InteractionTypes[src.Weighted(types)]

		if !src.Chance(AcceptProbability(user.PreferredCategories, pin.Category)) {
			continue
		}

		var sessionID string
		if src.Chance(0.3) {
			sessionID = src.UUID()
		}
		out = append(out, dataset.InteractionRecord{
			InteractionID:   src.UUID(),
			UserID:          user.UserID,
			PinID:           pin.PinID,
			InteractionType: interactionType,
			Timestamp:       dataset.NewTimestamp(src.Between(now.AddDate(0, 0, -90), now)),
			SessionID:       sessionID,
			DeviceType:      models.DeviceTypes[src.Weighted(devices)],
			Referrer:        models.Referrers[src.Weighted(referrers)],
		})
	}
	return out
}

// AcceptProbability 偏好命中时为 0.45，否则 0.15
func AcceptProbability(preferred []string, category string) float64 {
	boost := 1.0
	if slices.Contains(preferred, category) {
		boost = categoryBoost
	}
	return baseInteractionRate * boost
}
