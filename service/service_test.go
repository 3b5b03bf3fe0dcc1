package service

import (
	"Pinseed/config"
	"Pinseed/dao"
	"Pinseed/internal/dataset"
	"Pinseed/internal/synth"
	"Pinseed/models"
	"Pinseed/pkg/database/dbtest"
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var refNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	db      *gorm.DB
	load    *LoadService
	stats   *StatsService
	profile *ProfileService
}

func newTestEnv(t *testing.T, rds *redis.Client, idmapKind string) *testEnv {
	t.Helper()
	db := dbtest.New(t)
	stats := &StatsService{
		UserDAO:              dao.NewUserDAO(db),
		BoardDAO:             dao.NewBoardDAO(db),
		PinDAO:               dao.NewPinDAO(db),
		InteractionDAO:       dao.NewInteractionDAO(db),
		SearchQueryDAO:       dao.NewSearchQueryDAO(db),
		UserProfileDAO:       dao.NewUserProfileDAO(db),
		RecommendationLogDAO: dao.NewRecommendationLogDAO(db),
	}
	return &testEnv{
		db: db,
		load: &LoadService{
			Config:         &config.LoaderConfig{IDMap: idmapKind, IDMapTTL: 3600, ProgressEvery: 5, DefaultPassword: "secret"},
			Redis:          rds,
			UserDAO:        stats.UserDAO,
			BoardDAO:       stats.BoardDAO,
			PinDAO:         stats.PinDAO,
			InteractionDAO: stats.InteractionDAO,
			SearchQueryDAO: stats.SearchQueryDAO,
			StatsService:   stats,
		},
		stats: stats,
		profile: &ProfileService{
			UserDAO:        stats.UserDAO,
			InteractionDAO: stats.InteractionDAO,
			UserProfileDAO: stats.UserProfileDAO,
		},
	}
}

func ts(offset time.Duration) dataset.Timestamp {
	return dataset.NewTimestamp(refNow.Add(-offset))
}

// fixture 两个用户、两个画板、三个 pin，外加互动与搜索
func fixture() *dataset.Dataset {
	day := 24 * time.Hour
	return &dataset.Dataset{
		Users: []dataset.UserRecord{
			{UserID: "u-1", Username: "alice", Email: "alice@example.com", FirstName: "Alice", Location: "Austin, TX",
				FollowersCount: 3, BoardsCount: 1, AccountType: models.AccountPersonal,
				CreatedAt: ts(100 * day), LastActive: ts(day), PreferredCategories: dataset.List{"Art", "Food"}},
			{UserID: "u-2", Username: "bob", Email: "bob@example.com", Bio: "hi", AccountType: models.AccountBusiness,
				CreatedAt: ts(50 * day), LastActive: ts(2 * day), IsVerified: true, PreferredCategories: dataset.List{"Travel"}},
		},
		Boards: []dataset.BoardRecord{
			{BoardID: "b-1", UserID: "u-1", Title: "Sketches - Painting", Category: "Art", Subcategory: "Painting",
				CreatedAt: ts(90 * day), UpdatedAt: ts(80 * day)},
			{BoardID: "b-2", UserID: "u-2", Title: "Trips - Hotels", Category: "Travel", Subcategory: "Hotels",
				IsPrivate: true, CreatedAt: ts(40 * day), UpdatedAt: ts(30 * day)},
		},
		Pins: []dataset.PinRecord{
			{PinID: "p-1", BoardID: "b-1", UserID: "u-1", Title: "Blue hour", ImageURL: "https://dummyimage.com/600x900",
				Category: "Art", Subcategory: "Painting", Width: 600, Height: 900, ColorPalette: dataset.List{"#aabbcc", "#112233"},
				SavesCount: 10, LikesCount: 5, ClicksCount: 5, ImpressionsCount: 100, TrendingScore: 55.5,
				Tags: dataset.List{"blue"}, CreatedAt: ts(70 * day), UpdatedAt: ts(60 * day)},
			{PinID: "p-2", BoardID: "b-1", UserID: "u-2", Title: "Charcoal", ImageURL: "https://dummyimage.com/474x711",
				Category: "Art", Subcategory: "Painting", Width: 474, Height: 711, ColorPalette: dataset.List{"#000000"},
				Tags: dataset.List{"dark", "sketch"}, CreatedAt: ts(65 * day), UpdatedAt: ts(65 * day)},
			{PinID: "p-3", BoardID: "b-2", UserID: "u-2", Title: "Lisbon", ImageURL: "https://dummyimage.com/736x1104",
				Category: "Travel", Subcategory: "Hotels", Width: 736, Height: 1104, ColorPalette: dataset.List{"#ffeedd"},
				SourceURL: "https://example.com/lisbon", CreatedAt: ts(20 * day), UpdatedAt: ts(10 * day)},
		},
		Interactions: []dataset.InteractionRecord{
			{InteractionID: "i-1", UserID: "u-1", PinID: "p-1", InteractionType: models.InteractionSave, Timestamp: ts(3 * day),
				SessionID: "s-1", DeviceType: models.DeviceMobile, Referrer: models.ReferrerHomeFeed},
			{InteractionID: "i-2", UserID: "u-1", PinID: "p-3", InteractionType: models.InteractionLike, Timestamp: ts(3*day - 30*time.Minute),
				SessionID: "s-1", DeviceType: models.DeviceMobile, Referrer: models.ReferrerSearch},
			{InteractionID: "i-3", UserID: "u-1", PinID: "p-2", InteractionType: models.InteractionSave, Timestamp: ts(day),
				DeviceType: models.DeviceDesktop, Referrer: models.ReferrerCategoryBrowse},
			{InteractionID: "i-4", UserID: "u-2", PinID: "p-1", InteractionType: models.InteractionClick, Timestamp: ts(2 * day),
				DeviceType: models.DeviceTablet, Referrer: models.ReferrerRelatedPins},
		},
		Searches: []dataset.SearchQueryRecord{
			{QueryID: "q-1", UserID: "u-1", QueryText: "home decor", Timestamp: ts(day), ResultsCount: 50, ClickedResults: 5, SessionID: "s-9"},
			{QueryID: "q-2", UserID: "u-2", QueryText: "nail art", Timestamp: ts(day), ResultsCount: 0, ClickedResults: 1, SessionID: "s-8"},
		},
	}
}

func writeFixture(t *testing.T, ds *dataset.Dataset) string {
	t.Helper()
	dir := t.TempDir()
	_, err := dataset.WriteAll(dir, ds, &dataset.Metadata{RunID: "run-fixture", TotalUsers: len(ds.Users)})
	require.NoError(t, err)
	return dir
}

func generated(t *testing.T, users int) string {
	t.Helper()
	ds, meta := synth.Generate(synth.Options{
		Seed: 99, Users: users, Interactions: 200, Queries: 40,
		AvgBoards: 2, AvgPins: 3, Mode: "test", RunID: "run-gen", Now: refNow,
	})
	dir := t.TempDir()
	_, err := dataset.WriteAll(dir, ds, meta)
	require.NoError(t, err)
	return dir
}

func ctx() context.Context {
	return context.Background()
}

func mustParse(t *testing.T, v string) uint64 {
	t.Helper()
	n, err := strconv.ParseUint(v, 10, 64)
	require.NoError(t, err)
	return n
}
