package dataset

import (
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// Metadata generation_metadata.json
type Metadata struct {
	GenerationDate    time.Time   `json:"generation_date"`
	RunID             string      `json:"run_id"`
	Seed              uint64      `json:"seed"`
	TotalUsers        int         `json:"total_users"`
	TotalBoards       int         `json:"total_boards"`
	TotalPins         int         `json:"total_pins"`
	TotalInteractions int         `json:"total_interactions"`
	TotalSearches     int         `json:"total_searches"`
	Categories        []string    `json:"categories"`
	Optimization      string      `json:"optimization"`
	SampleStats       SampleStats `json:"sample_stats"`
}

// SampleStats 生成结果的抽样统计
type SampleStats struct {
	AvgPinsPerUser        float64 `json:"avg_pins_per_user"`
	AvgSavesPerPin        float64 `json:"avg_saves_per_pin"`
	MostPopularCategory   string  `json:"most_popular_category"`
	AvgTrendingScore      float64 `json:"avg_trending_score"`
	InteractionAcceptance float64 `json:"interaction_acceptance"`
}

// WriteMetadata 写入 dir/generation_metadata.json
func WriteMetadata(dir string, meta *Metadata) (string, error) {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, MetadataFile)
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return "", err
	}
	return p, nil
}

// ExpectedCounts 从元数据读取各实体行数；文件不存在时返回 nil, nil
func ExpectedCounts(dir string) (map[string]int64, error) {
	data, err := os.ReadFile(filepath.Join(dir, MetadataFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	res := gjson.GetManyBytes(data, "total_users", "total_boards", "total_pins", "total_interactions", "total_searches")
	counts := make(map[string]int64, len(Entities))
	for i, entity := range Entities {
		if res[i].Exists() {
			counts[entity] = res[i].Int()
		}
	}
	return counts, nil
}

// RunID 元数据中的 run_id，没有元数据时返回空串
func RunID(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, MetadataFile))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return gjson.GetBytes(data, "run_id").String(), nil
}
