package synth

import (
	"Pinseed/internal/dataset"
	"Pinseed/models"
	"fmt"
	"strings"
)

// GenerateUsers 生成 n 个用户，用户名与邮箱在本批次内唯一
func GenerateUsers(src *Source, n int) []dataset.UserRecord {
	n = max(n, 0)
	users := make([]dataset.UserRecord, 0, n)
	now := src.Now()
	accounts := src.Categorical(accountWeights)
	accountTypes := []string{models.AccountPersonal, models.AccountBusiness}
	usernames := make(map[string]struct{}, n)
	emails := make(map[string]struct{}, n)
	f := src.Faker()

	for i := 0; i < n; i++ {
		src.progress(dataset.EntityUsers, i)

		var bio string
		if src.Chance(0.7) {
			bio = src.Text(150)
		}
		createdAt := src.Between(now.AddDate(-3, 0, 0), now)
		// last_active 不早于 created_at
		lastActive := src.Between(later(createdAt, now.AddDate(0, 0, -30)), now)

		user := dataset.UserRecord{
			UserID:              src.UUID(),
			Username:            unique(usernames, f.Username(), i, ""),
			Email:               unique(emails, strings.ToLower(f.Email()), i, "@"),
			FirstName:           f.FirstName(),
			LastName:            f.LastName(),
			Bio:                 bio,
			Location:            f.City() + ", " + f.StateAbr(),
			FollowersCount:      src.Exp(100),
			FollowingCount:      src.Exp(150),
			BoardsCount:         src.IntRange(1, 25),
			PinsCount:           src.Exp(50),
			AccountType:         accountTypes[src.Weighted(accounts)],
			CreatedAt:           dataset.NewTimestamp(createdAt),
			LastActive:          dataset.NewTimestamp(lastActive),
			IsVerified:          src.Chance(0.05),
			PreferredCategories: src.Sample(models.Categories, src.IntRange(2, 5)),
		}
		users = append(users, user)
	}
	return users
}

// unique 冲突时在 sep 之前追加序号，直到不再冲突
func unique(seen map[string]struct{}, v string, i int, sep string) string {
	candidate := v
	for n := i; ; n++ {
		if _, ok := seen[candidate]; !ok {
			break
		}
		if idx := strings.Index(v, sep); sep != "" && idx > 0 {
			candidate = fmt.Sprintf("%s%d%s", v[:idx], n, v[idx:])
		} else {
			candidate = fmt.Sprintf("%s%d", v, n)
		}
	}
	seen[candidate] = struct{}{}
	return candidate
}
