package synth

import (
	"Pinseed/internal/dataset"
	"Pinseed/models"
)

// GenerateBoards 每个用户 max(1, Poisson(avg)) 个画板，创建时间不早于用户
func GenerateBoards(src *Source, users []dataset.UserRecord, avg float64) []dataset.BoardRecord {
	boards := make([]dataset.BoardRecord, 0, capacity(len(users), avg))
	now := src.Now()

	for i, user := range users {
		src.progress(dataset.EntityBoards, i)

		n := max(1, src.Poisson(avg))
		for j := 0; j < n; j++ {
			category := src.Pick(models.Categories)
			subcategory := src.Pick(models.Subcategories[category])

			var description string
			if src.Chance(0.6) {
				description = src.Text(200)
			}
			createdAt := src.Between(user.CreatedAt.Time, now)

			boards = append(boards, dataset.BoardRecord{
				BoardID:        src.UUID(),
				UserID:         user.UserID,
				Title:          src.CatchPhrase() + " - " + subcategory,
				Description:    description,
				Category:       category,
				Subcategory:    subcategory,
				IsPrivate:      src.Chance(0.15),
				PinsCount:      src.Exp(20),
				FollowersCount: src.Exp(10),
				CreatedAt:      dataset.NewTimestamp(createdAt),
				UpdatedAt:      dataset.NewTimestamp(src.Between(createdAt, now)),
			})
		}
	}
	return boards
}

// capacity 预估 n 个父记录下的子记录数，每个父记录至少一条
func capacity(n int, avg float64) int {
	if !(avg > 1) {
		return n
	}
	return int(float64(n) * avg)
}
