package synth

import (
	"Pinseed/config"
	"Pinseed/internal/dataset"
	"Pinseed/models"
	"Pinseed/pkg/log"
	"time"

	"go.uber.org/zap"
)

// Options 一次生成任务的参数
type Options struct {
	Seed          uint64
	Users         int
	Interactions  int
	Queries       int
	AvgBoards     float64
	AvgPins       float64
	Mode          string
	RunID         string
	Now           time.Time
	ProgressEvery int
}

// OptionsFromConfig now 为零值时使用当前时间
func OptionsFromConfig(cfg *config.GeneratorConfig, runID string, now time.Time) Options {
	if now.IsZero() {
		now = time.Now()
	}
	return Options{
		Seed:          cfg.Seed,
		Users:         cfg.Users,
		Interactions:  cfg.Interactions,
		Queries:       cfg.Queries,
		AvgBoards:     cfg.AvgBoards,
		AvgPins:       cfg.AvgPins,
		Mode:          cfg.Mode,
		RunID:         runID,
		Now:           now,
		ProgressEvery: cfg.ProgressEvery,
	}
}

// Generate 依次生成用户、画板、pin、互动、搜索
func Generate(opts Options) (*dataset.Dataset, *dataset.Metadata) {
	src := NewSource(opts.Seed, opts.Now)
	src.progressEvery = opts.ProgressEvery

	ds := &dataset.Dataset{}
	ds.Users = GenerateUsers(src, opts.Users)
	ds.Boards = GenerateBoards(src, ds.Users, opts.AvgBoards)
	ds.Pins = GeneratePins(src, ds.Boards, opts.AvgPins)
	ds.Interactions = GenerateInteractions(src, ds.Users, ds.Pins, opts.Interactions)
	ds.Searches = GenerateSearchQueries(src, ds.Users, opts.Queries)

	stats := Summarize(ds)
	if opts.Interactions > 0 {
		stats.InteractionAcceptance = float64(len(ds.Interactions)) / float64(opts.Interactions)
	}
	meta := &dataset.Metadata{
		GenerationDate:    src.Now(),
		RunID:             opts.RunID,
		Seed:              opts.Seed,
		TotalUsers:        len(ds.Users),
		TotalBoards:       len(ds.Boards),
		TotalPins:         len(ds.Pins),
		TotalInteractions: len(ds.Interactions),
		TotalSearches:     len(ds.Searches),
		Categories:        append([]string(nil), models.Categories...),
		Optimization:      opts.Mode,
		SampleStats:       stats,
	}

	log.L.Info("dataset generated",
		zap.Int("users", meta.TotalUsers),
		zap.Int("boards", meta.TotalBoards),
		zap.Int("pins", meta.TotalPins),
		zap.Int("interactions", meta.TotalInteractions),
		zap.Int("searches", meta.TotalSearches),
	)
	return ds, meta
}

// Summarize 抽样统计: 人均 pin、平均收藏、最热分类、平均热度
func Summarize(ds *dataset.Dataset) dataset.SampleStats {
	var stats dataset.SampleStats
	if len(ds.Pins) == 0 {
		return stats
	}

	owners := make(map[string]struct{})
	perCategory := make(map[string]int)
	var saves int
	var trending float64
	for _, p := range ds.Pins {
		owners[p.UserID] = struct{}{}
		perCategory[p.Category]++
		saves += p.SavesCount
		trending += p.TrendingScore
	}

	n := float64(len(ds.Pins))
	stats.AvgPinsPerUser = n / float64(len(owners))
	stats.AvgSavesPerPin = float64(saves) / n
	stats.AvgTrendingScore = trending / n

	best := 0
	// 按固定分类顺序遍历，票数相同取靠前的
	for _, c := range models.Categories {
		if perCategory[c] > best {
			best = perCategory[c]
			stats.MostPopularCategory = c
		}
	}
	return stats
}
