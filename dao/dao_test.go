package dao

import (
	"Pinseed/models"
	"Pinseed/pkg/database/dbtest"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user, created, err := NewUserDAO(db).CreateIfAbsent(context.Background(), &models.User{
		Username:            email,
		Email:               email,
		PreferredCategories: []string{"Art"},
	})
	require.NoError(t, err)
	require.True(t, created)
	return user
}

func seedPin(t *testing.T, db *gorm.DB, user *models.User, title string, category string) *models.Pin {
	t.Helper()
	ctx := context.Background()
	board, _, err := NewBoardDAO(db).CreateIfAbsent(ctx, &models.Board{UserID: user.ID, Title: "board " + category, Category: category})
	require.NoError(t, err)
	pin, _, err := NewPinDAO(db).CreateIfAbsent(ctx, &models.Pin{
		BoardID: board.BoardID, UserID: user.ID, Title: title, Category: category,
		ImageURL: "https://dummyimage.com/600x900", Width: 600, Height: 900,
	})
	require.NoError(t, err)
	return pin
}

func TestUserCreateIfAbsent(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	users := NewUserDAO(db)

	first := seedUser(t, db, "a@example.com")
	assert.NotZero(t, first.ID)
	assert.Len(t, first.UserID, 36)

	again, created, err := users.CreateIfAbsent(ctx, &models.User{Username: "other", Email: "a@example.com"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, "a@example.com", again.Username)

	found, err := users.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, []string{"Art"}, []string(found.PreferredCategories))

	missing, err := users.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	count, err := users.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUserDuplicateUsernameFails(t *testing.T) {
	db := dbtest.New(t)
	seedUser(t, db, "a@example.com")

	_, _, err := NewUserDAO(db).CreateIfAbsent(context.Background(), &models.User{Username: "a@example.com", Email: "b@example.com"})
	assert.Error(t, err)
}

func TestCreatedAtIsPreserved(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	created := time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)
	active := time.Date(2024, 4, 1, 8, 30, 0, 0, time.UTC)

	user, _, err := NewUserDAO(db).CreateIfAbsent(ctx, &models.User{
		Username: "u", Email: "u@example.com", CreatedAt: created, LastActive: active,
	})
	require.NoError(t, err)

	got, err := NewUserDAO(db).FindById(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, got.CreatedAt.Equal(created))
	assert.True(t, got.LastActive.Equal(active))
}

func TestBoardAndPinNaturalKeys(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	boards := NewBoardDAO(db)

	b1, created, err := boards.CreateIfAbsent(ctx, &models.Board{UserID: alice.ID, Title: "Cozy", Category: "Art"})
	require.NoError(t, err)
	assert.True(t, created)

	b2, created, err := boards.CreateIfAbsent(ctx, &models.Board{UserID: alice.ID, Title: "Cozy", Category: "Food"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, b1.BoardID, b2.BoardID)
	assert.Equal(t, "Art", b2.Category)

	// 标题只在同一用户下判重
	_, created, err = boards.CreateIfAbsent(ctx, &models.Board{UserID: bob.ID, Title: "Cozy", Category: "Art"})
	require.NoError(t, err)
	assert.True(t, created)

	found, err := boards.FindByUserTitle(ctx, bob.ID, "Cozy")
	require.NoError(t, err)
	require.NotNil(t, found)
	none, err := boards.FindByUserTitle(ctx, bob.ID, "Nope")
	require.NoError(t, err)
	assert.Nil(t, none)

	pins := NewPinDAO(db)
	pin := &models.Pin{BoardID: b1.BoardID, UserID: alice.ID, Title: "Sunset", Category: "Art", Width: 1, Height: 1}
	_, created, err = pins.CreateIfAbsent(ctx, pin)
	require.NoError(t, err)
	assert.True(t, created)
	_, created, err = pins.CreateIfAbsent(ctx, &models.Pin{BoardID: b1.BoardID, UserID: alice.ID, Title: "Sunset", Category: "Art"})
	require.NoError(t, err)
	assert.False(t, created)

	got, err := pins.FindByUserTitle(ctx, alice.ID, "Sunset")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{}, []string(got.ColorPalette))
	assert.Equal(t, []string{}, []string(got.Tags))
}

func TestForeignKeysEnforced(t *testing.T) {
	db := dbtest.New(t)
	_, _, err := NewBoardDAO(db).CreateIfAbsent(context.Background(), &models.Board{UserID: 999, Title: "orphan", Category: "Art"})
	assert.Error(t, err)
}

func TestInteractionCreateIfAbsent(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	user := seedUser(t, db, "a@example.com")
	pin := seedPin(t, db, user, "p1", "Travel")
	interactions := NewInteractionDAO(db)

	ts := time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)
	_, created, err := interactions.CreateIfAbsent(ctx, &models.UserInteraction{
		UserID: user.ID, PinID: pin.PinID, InteractionType: models.InteractionSave,
		Timestamp: ts, DeviceType: models.DeviceMobile, Referrer: models.ReferrerHomeFeed,
	})
	require.NoError(t, err)
	assert.True(t, created)

	_, created, err = interactions.CreateIfAbsent(ctx, &models.UserInteraction{
		UserID: user.ID, PinID: pin.PinID, InteractionType: models.InteractionSave,
		DeviceType: models.DeviceDesktop, Referrer: models.ReferrerSearch,
	})
	require.NoError(t, err)
	assert.False(t, created)

	_, created, err = interactions.CreateIfAbsent(ctx, &models.UserInteraction{
		UserID: user.ID, PinID: pin.PinID, InteractionType: models.InteractionLike,
		Timestamp: ts.Add(time.Hour), DeviceType: models.DeviceMobile, Referrer: models.ReferrerSearch,
	})
	require.NoError(t, err)
	assert.True(t, created)

	items, err := interactions.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, models.InteractionSave, items[0].InteractionType)
	assert.Equal(t, "Travel", items[0].Category)
	assert.Equal(t, 15, items[0].Timestamp.UTC().Hour())
}

func TestSearchQueryCollapse(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	user := seedUser(t, db, "a@example.com")
	queries := NewSearchQueryDAO(db)

	_, created, err := queries.CreateIfAbsent(ctx, &models.SearchQuery{UserID: user.ID, QueryText: "home decor", ResultsCount: 50, ClickedResults: 5})
	require.NoError(t, err)
	assert.True(t, created)
	_, created, err = queries.CreateIfAbsent(ctx, &models.SearchQuery{UserID: user.ID, QueryText: "home decor", ResultsCount: 10})
	require.NoError(t, err)
	assert.False(t, created)
	_, _, err = queries.CreateIfAbsent(ctx, &models.SearchQuery{UserID: user.ID, QueryText: "nail art", ResultsCount: 0, ClickedResults: 2})
	require.NoError(t, err)

	n, err := queries.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	// (10 + 0) / 2
	avg, err := queries.AvgClickThroughRate(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, avg, 1e-9)
}

func TestAvgEngagementRate(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	pins := NewPinDAO(db)

	avg, err := pins.AvgEngagementRate(ctx)
	require.NoError(t, err)
	assert.Zero(t, avg)

	user := seedUser(t, db, "a@example.com")
	p1 := seedPin(t, db, user, "p1", "Art")
	p2 := seedPin(t, db, user, "p2", "Art")
	require.NoError(t, db.Model(p1).Updates(map[string]any{
		"saves_count": 10, "likes_count": 5, "clicks_count": 5, "impressions_count": 100,
	}).Error)
	require.NoError(t, db.Model(p2).Update("saves_count", 3).Error)

	// p1 为 20.0，p2 无曝光计 0
	avg, err = pins.AvgEngagementRate(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, avg, 1e-9)
}

func TestUserProfileSave(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	user := seedUser(t, db, "a@example.com")
	profiles := NewUserProfileDAO(db)

	created, err := profiles.Save(ctx, &models.UserProfile{
		UserID:              user.ID,
		CategoryPreferences: datatypes.NewJSONType(map[string]float64{"Art": 1.0}),
		InteractionFreq:     2,
		PreferredPinTypes:   []string{"save"},
		ActiveHours:         []int{9},
		ActiveDays:          []int{1},
	})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = profiles.Save(ctx, &models.UserProfile{
		UserID:              user.ID,
		CategoryPreferences: datatypes.NewJSONType(map[string]float64{"Food": 0.5, "Art": 0.5}),
		InteractionFreq:     4,
		PreferredPinTypes:   []string{"like", "save"},
		ActiveHours:         []int{9, 21},
		ActiveDays:          []int{1, 5},
	})
	require.NoError(t, err)
	assert.False(t, created)

	n, err := profiles.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := profiles.FindByUser(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 4.0, got.InteractionFreq)
	assert.Equal(t, []string{"like", "save"}, []string(got.PreferredPinTypes))
	assert.Equal(t, []int{9, 21}, []int(got.ActiveHours))
	assert.Equal(t, map[string]float64{"Food": 0.5, "Art": 0.5}, got.CategoryPreferences.Data())
}

func TestRecommendationLogClickRate(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	user := seedUser(t, db, "a@example.com")
	pin := seedPin(t, db, user, "p1", "Art")
	logs := NewRecommendationLogDAO(db)

	rate, err := logs.ClickRate(ctx, "")
	require.NoError(t, err)
	assert.Zero(t, rate)

	for i, clicked := range []bool{true, false, false, true} {
		recType := models.RecommendTrending
		if i == 3 {
			recType = models.RecommendHybrid
		}
		require.NoError(t, logs.Record(ctx, &models.RecommendationLog{
			UserID: user.ID, PinID: pin.PinID, RecommendationType: recType,
			ConfidenceScore: 0.8, Position: i + 1, Clicked: clicked,
		}))
	}

	rate, err = logs.ClickRate(ctx, "")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, rate, 1e-9)

	rate, err = logs.ClickRate(ctx, models.RecommendTrending)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, rate, 1e-9)

	rate, err = logs.ClickRate(ctx, models.RecommendCollaborative)
	require.NoError(t, err)
	assert.Zero(t, rate)
}

func TestEachBatch(t *testing.T) {
	db := dbtest.New(t)
	for _, e := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		seedUser(t, db, e)
	}
	var seen []string
	require.NoError(t, NewUserDAO(db).EachBatch(context.Background(), 2, func(users []models.User) error {
		for _, u := range users {
			seen = append(seen, u.Email)
		}
		return nil
	}))
	assert.Equal(t, []string{"a@x.com", "b@x.com", "c@x.com"}, seen)
}
