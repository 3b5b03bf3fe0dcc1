package service

import (
	"Pinseed/config"
	"Pinseed/dao"
	"Pinseed/internal/dataset"
	"Pinseed/internal/idmap"
	"Pinseed/pkg/log"
	"Pinseed/pkg/metrics"
	"Pinseed/pkg/snowflake"
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ ILoadService = (*LoadService)(nil)

type ILoadService interface {
	// Run 导入 dir 下的五个 CSV，缺文件时直接返回 dataset.ErrMissingFile
	Run(ctx context.Context, dir string) (*LoadSummary, error)
}

type LoadService struct {
	Config         *config.LoaderConfig
	Redis          *redis.Client
	UserDAO        *dao.UserDAO
	BoardDAO       *dao.BoardDAO
	PinDAO         *dao.PinDAO
	InteractionDAO *dao.InteractionDAO
	SearchQueryDAO *dao.SearchQueryDAO
	StatsService   IStatsService
}

// StageStats 单个阶段的逐行结果
type StageStats struct {
	Rows       int `json:"rows"`
	Created    int `json:"created"`
	Existing   int `json:"existing"`
	Unresolved int `json:"unresolved"`
	Failed     int `json:"failed"`
}

func (s *StageStats) add(result string) {
	switch result {
	case metrics.ResultCreated:
		s.Created++
	case metrics.ResultExisting:
		s.Existing++
	case metrics.ResultUnresolved:
		s.Unresolved++
	default:
		s.Failed++
	}
}

// LoadSummary 一次导入的结果，Totals 为导入后的库内总量
type LoadSummary struct {
	RunID    string                 `json:"run_id"`
	Expected map[string]int64       `json:"expected,omitempty"`
	Stages   map[string]*StageStats `json:"stages"`
	// Mapped 本次映射里记录的源 id 数量，按 user/board/pin 区分
	Mapped   map[idmap.Kind]int     `json:"mapped"`
	Totals   *Totals                `json:"totals"`
}

// errUnresolved 行引用的用户/画板/pin 不在映射里
var errUnresolved = errors.New("unresolved reference")

// loadStage 一个实体的导入步骤，key 为日志里标识一行的列
type loadStage struct {
	entity string
	key    string
	load   func(ctx context.Context, row dataset.Row) (string, error)
}

func (s *LoadService) Run(ctx context.Context, dir string) (*LoadSummary, error) {
	if err := dataset.CheckFiles(dir); err != nil {
		log.L.Error("dataset files missing", zap.String("dir", dir), zap.Error(err))
		return nil, err
	}

	runID, err := dataset.RunID(dir)
	if err != nil {
		log.L.Warn("read metadata failed", zap.Error(err))
	}
	if runID == "" {
		runID = snowflake.GenRunID()
	}
	expected, err := dataset.ExpectedCounts(dir)
	if err != nil {
		log.L.Warn("read expected counts failed", zap.Error(err))
	}
	log.L.Info("load start", zap.String("dir", dir), zap.String("run_id", runID), zap.Any("expected", expected))

	ids, err := idmap.New(s.Config, s.Redis, runID)
	if err != nil {
		return nil, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(s.Config.DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash default password: %w", err)
	}

	run := &loadRun{
		LoadService: s,
		ids:         ids,
		password:    string(hashed),
		boardOwners: make(map[string]uint64),
	}
	summary := &LoadSummary{
		RunID:    runID,
		Expected: expected,
		Stages:   make(map[string]*StageStats, len(dataset.Entities)),
	}

	for _, stage := range run.stages() {
		rows, err := dataset.ReadRows(dataset.Path(dir, stage.entity))
		if err != nil {
			return summary, fmt.Errorf("read %s: %w", stage.entity, err)
		}
		stats, err := run.runStage(ctx, stage, rows)
		summary.Stages[stage.entity] = stats
		if err != nil {
			return summary, err
		}
	}

	summary.Mapped = make(map[idmap.Kind]int, len(idmap.Kinds))
	for _, kind := range idmap.Kinds {
		n, err := ids.Len(ctx, kind)
		if err != nil {
			return summary, err
		}
		summary.Mapped[kind] = n
	}

	totals, err := s.StatsService.Totals(ctx)
	if err != nil {
		return summary, err
	}
	summary.Totals = totals
	log.L.Info("load finished", zap.String("run_id", runID), zap.Any("totals", totals.Counts()))
	return summary, nil
}

// loadRun 一次导入的状态
type loadRun struct {
	*LoadService
	ids      idmap.Store
	password string
	// 画板 id -> 所属用户，pin 阶段据此确定 user
	boardOwners map[string]uint64
}

func (r *loadRun) stages() []loadStage {
	return []loadStage{
		{entity: dataset.EntityUsers, key: "username", load: r.loadUser},
		{entity: dataset.EntityBoards, key: "title", load: r.loadBoard},
		{entity: dataset.EntityPins, key: "title", load: r.loadPin},
		{entity: dataset.EntityInteractions, key: "interaction_id", load: r.loadInteraction},
		{entity: dataset.EntitySearches, key: "query_text", load: r.loadSearch},
	}
}

// runStage 每行独立提交，某一行失败只跳过该行
func (r *loadRun) runStage(ctx context.Context, stage loadStage, rows []dataset.Row) (*StageStats, error) {
	stats := &StageStats{Rows: len(rows)}
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		result, err := stage.load(ctx, row)
		switch {
		case errors.Is(err, errUnresolved):
			result = metrics.ResultUnresolved
			log.L.Warn("skip row", zap.String("entity", stage.entity), zap.String(stage.key, row.String(stage.key)), zap.Error(err))
		case err != nil:
			result = metrics.ResultFailed
			log.L.Warn("load row failed", zap.String("entity", stage.entity), zap.String(stage.key, row.String(stage.key)), zap.Error(err))
		}
		stats.add(result)
		metrics.Loaded(stage.entity, result)

		if result == metrics.ResultCreated && r.Config.ProgressEvery > 0 && stats.Created%r.Config.ProgressEvery == 0 {
			log.L.Info("loading", zap.String("entity", stage.entity), zap.Int("created", stats.Created))
		}
	}
	log.L.Info("stage finished",
		zap.String("entity", stage.entity),
		zap.Int("rows", stats.Rows),
		zap.Int("created", stats.Created),
		zap.Int("existing", stats.Existing),
		zap.Int("unresolved", stats.Unresolved),
		zap.Int("failed", stats.Failed),
	)
	return stats, nil
}

func resultOf(created bool) string {
	if created {
		return metrics.ResultCreated
	}
	return metrics.ResultExisting
}
