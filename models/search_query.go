package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchQuery 搜索记录，clicked_results 不强制 <= results_count
type SearchQuery struct {
	QueryID        string    `gorm:"column:query_id;type:varchar(36);primaryKey" json:"query_id"`
	UserID         uint64    `gorm:"column:user_id;not null;index:idx_query_user_ts,priority:1" json:"user_id"`
	QueryText      string    `gorm:"column:query_text;type:varchar(200);not null;index:idx_query_text" json:"query_text"`
	Timestamp      time.Time `gorm:"column:timestamp;index:idx_query_user_ts,priority:2" json:"timestamp"`
	ResultsCount   int       `gorm:"column:results_count;not null;default:0" json:"results_count"`
	ClickedResults int       `gorm:"column:clicked_results;not null;default:0" json:"clicked_results"`
	SessionID      *string   `gorm:"column:session_id;type:varchar(36)" json:"session_id"`
}

func (SearchQuery) TableName() string {
	return "search_queries"
}

func (q *SearchQuery) BeforeCreate(tx *gorm.DB) error {
	if q.QueryID == "" {
		q.QueryID = uuid.NewString()
	}
	if q.Timestamp.IsZero() {
		q.Timestamp = time.Now()
	}
	return nil
}

// ClickThroughRate 点击率(%)
func (q *SearchQuery) ClickThroughRate() float64 {
	return ClickThroughRate(q.ClickedResults, q.ResultsCount)
}

// ClickThroughRate results 为 0 时返回 0
func ClickThroughRate(clicked, results int) float64 {
	if results == 0 {
		return 0
	}
	return 100 * float64(clicked) / float64(results)
}
