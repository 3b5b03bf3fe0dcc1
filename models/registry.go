package models

// All 需要迁移的全部表，按外键依赖排列
func All() []any {
	return []any{
		&User{},
		&Board{},
		&Pin{},
		&UserInteraction{},
		&SearchQuery{},
		&UserProfile{},
		&RecommendationLog{},
	}
}
