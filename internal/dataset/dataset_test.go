package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() *Dataset {
	created := NewTimestamp(time.Date(2024, 3, 1, 10, 30, 0, 123000, time.UTC))
	return &Dataset{
		Users: []UserRecord{{
			UserID:              "u-1",
			Username:            "alice",
			Email:               "alice@example.com",
			FirstName:           "Alice",
			LastName:            "Liddell",
			Location:            "Portland, OR",
			FollowersCount:      12,
			BoardsCount:         3,
			AccountType:         "personal",
			CreatedAt:           created,
			LastActive:          created,
			IsVerified:          true,
			PreferredCategories: List{"Food", "Art"},
		}},
		Boards: []BoardRecord{{
			BoardID:     "b-1",
			UserID:      "u-1",
			Title:       "Seamless systems - Baking",
			Category:    "Food",
			Subcategory: "Baking",
			CreatedAt:   created,
			UpdatedAt:   created,
		}},
		Pins: []PinRecord{{
			PinID:            "p-1",
			BoardID:          "b-1",
			UserID:           "u-1",
			Title:            "Sourdough, but easier",
			ImageURL:         "https://dummyimage.com/736x1104",
			Category:         "Food",
			Subcategory:      "Baking",
			Width:            736,
			Height:           1104,
			ColorPalette:     List{"#aabbcc", "#000000"},
			ImpressionsCount: 100,
			TrendingScore:    12.5,
			Tags:             List{"bread", "it's"},
			CreatedAt:        created,
			UpdatedAt:        created,
		}},
	}
}

func TestWriteAllAndReadBack(t *testing.T) {
	dir := t.TempDir()
	ds := sampleDataset()
	meta := &Metadata{RunID: "1", TotalUsers: 1, TotalBoards: 1, TotalPins: 1, Categories: []string{"Food"}, Optimization: "test"}

	paths, err := WriteAll(dir, ds, meta)
	require.NoError(t, err)
	assert.Len(t, paths, 6)
	require.NoError(t, CheckFiles(dir))

	users, err := ReadRows(Path(dir, EntityUsers))
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, ds.Users[0].Email, users[0].String("email"))
	assert.Equal(t, []string{"Food", "Art"}, users[0].List("preferred_categories"))
	createdAt, err := users[0].Time("created_at")
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(ds.Users[0].CreatedAt.Time))

	rows, err := ReadRows(Path(dir, EntityPins))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"bread", "it's"}, rows[0].List("tags"))
	assert.Equal(t, "", rows[0]["description"])
	assert.Nil(t, rows[0].Optional("description"))

	// 空表只有表头
	rows, err = ReadRows(Path(dir, EntityInteractions))
	require.NoError(t, err)
	assert.Empty(t, rows)
	head, err := os.ReadFile(Path(dir, EntitySearches))
	require.NoError(t, err)
	assert.Equal(t, "query_id,user_id,query_text,timestamp,results_count,clicked_results,session_id\n", string(head))

	counts, err := ExpectedCounts(dir)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[EntityUsers])
	assert.Equal(t, int64(0), counts[EntityInteractions])

	runID, err := RunID(dir)
	require.NoError(t, err)
	assert.Equal(t, meta.RunID, runID)
}

func TestUserHeader(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteAll(dir, &Dataset{}, nil)
	require.NoError(t, err)
	head, err := os.ReadFile(Path(dir, EntityUsers))
	require.NoError(t, err)
	assert.Equal(t, "user_id,username,email,first_name,last_name,bio,location,followers_count,following_count,"+
		"boards_count,pins_count,account_type,created_at,last_active,is_verified,preferred_categories\n", string(head))
}

func TestCheckFilesMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteAll(dir, &Dataset{}, nil)
	require.NoError(t, err)
	require.NoError(t, os.Remove(Path(dir, EntityPins)))

	err = CheckFiles(dir)
	require.ErrorIs(t, err, ErrMissingFile)
	assert.Contains(t, err.Error(), PinsFile)
}

func TestExpectedCountsWithoutMetadata(t *testing.T) {
	counts, err := ExpectedCounts(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, counts)

	runID, err := RunID(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, runID)
}

func TestRowAccessors(t *testing.T) {
	r := Row{
		"n":     "42",
		"f":     "12.0",
		"bad":   "abc",
		"frac":  "1.5",
		"score": "3.25",
		"yes":   "True",
		"no":    "false",
		"ts":    "2024-03-01 10:30:00.000000",
		"iso":   "2024-03-01T10:30:00Z",
		"nan":   "nan",
		"list":  "['a', 'b']",
		"junk":  "not a list",
	}

	n, err := r.Int("n")
	require.NoError(t, err)
	assert.Equal(t, 42, n)
	n, err = r.Int("f")
	require.NoError(t, err)
	assert.Equal(t, 12, n)
	_, err = r.Int("bad")
	assert.ErrorContains(t, err, "column bad")
	_, err = r.Int("frac")
	assert.Error(t, err)
	_, err = r.Int("missing")
	assert.Error(t, err)

	f, err := r.Float("score")
	require.NoError(t, err)
	assert.Equal(t, 3.25, f)

	b, err := r.Bool("yes")
	require.NoError(t, err)
	assert.True(t, b)
	b, err = r.Bool("no")
	require.NoError(t, err)
	assert.False(t, b)
	_, err = r.Bool("bad")
	assert.Error(t, err)

	ts, err := r.Time("ts")
	require.NoError(t, err)
	iso, err := r.Time("iso")
	require.NoError(t, err)
	assert.True(t, ts.Equal(iso))
	zero, err := r.Time("nan")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
	_, err = r.Time("bad")
	assert.Error(t, err)

	assert.Nil(t, r.Optional("nan"))
	assert.Equal(t, "abc", *r.Optional("bad"))
	assert.Equal(t, []string{"a", "b"}, r.List("list"))
	assert.Equal(t, []string{}, r.List("junk"))
	assert.Equal(t, []string{}, r.List("missing"))
}

func TestPathLayout(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "raw", "pinterest_searches.csv"), Path(filepath.Join("data", "raw"), EntitySearches))
}
