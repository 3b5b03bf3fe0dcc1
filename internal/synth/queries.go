package synth

import "Pinseed/internal/dataset"

// GenerateSearchQueries 生成 n 条搜索记录
// clicked_results 与 results_count 独立采样，不保证前者不超过后者
func GenerateSearchQueries(src *Source, users []dataset.UserRecord, n int) []dataset.SearchQueryRecord {
	out := make([]dataset.SearchQueryRecord, 0, max(n, 0))
	if len(users) == 0 {
		return out
	}
	now := src.Now()
	f := src.Faker()

	for i := 0; i < n; i++ {
		src.progress(dataset.EntitySearches, i)

		user := users[src.Index(len(users))]
		text := src.Pick(searchTerms)
		if src.Chance(0.5) {
			text += " " + f.Word()
		}
		out = append(out, dataset.SearchQueryRecord{
			QueryID:        src.UUID(),
			UserID:         user.UserID,
			QueryText:      text,
			Timestamp:      dataset.NewTimestamp(src.Between(now.AddDate(0, 0, -90), now)),
			ResultsCount:   src.IntRange(10, 1000),
			ClickedResults: src.IntRange(0, 5),
			SessionID:      src.UUID(),
		})
	}
	return out
}
