package synth

import (
	"Pinseed/internal/dataset"
	"fmt"
	"math"
	"strings"
	"time"
)

// GeneratePins 每个画板 max(1, Poisson(avg)) 个 pin，分类、子分类、用户都继承自画板
func GeneratePins(src *Source, boards []dataset.BoardRecord, avg float64) []dataset.PinRecord {
	pins := make([]dataset.PinRecord, 0, capacity(len(boards), avg))
	now := src.Now()
	f := src.Faker()

	for i, board := range boards {
		src.progress(dataset.EntityPins, i)

		n := max(1, src.Poisson(avg))
		for j := 0; j < n; j++ {
			dim := imageDimensions[src.Index(len(imageDimensions))]
			width, height := dim[0], dim[1]

			// 热度按另一个独立采样的时间计算，与 created_at 不是同一个值
			scoredAt := src.Between(board.CreatedAt.Time, now)
			trending := TrendingScore(now.Sub(scoredAt), src.Uniform(0.1, 2.0))

			var description, sourceURL string
			if src.Chance(0.7) {
				description = src.Text(300)
			}
			if src.Chance(0.6) {
				sourceURL = f.URL()
			}

			palette := make(dataset.List, src.IntRange(3, 6))
			for k := range palette {
				palette[k] = strings.ToLower(f.HexColor())
			}
			tags := make(dataset.List, src.IntRange(2, 8))
			for k := range tags {
				tags[k] = f.Word()
			}

			createdAt := src.Between(board.CreatedAt.Time, now)
			pins = append(pins, dataset.PinRecord{
				PinID:            src.UUID(),
				BoardID:          board.BoardID,
				UserID:           board.UserID,
				Title:            strings.TrimSuffix(src.Sentence(src.IntRange(3, 8)), "."),
				Description:      description,
				ImageURL:         fmt.Sprintf("https://dummyimage.com/%dx%d", width, height),
				SourceURL:        sourceURL,
				Category:         board.Category,
				Subcategory:      board.Subcategory,
				Width:            width,
				Height:           height,
				ColorPalette:     palette,
				SavesCount:       src.Exp(50),
				LikesCount:       src.Exp(30),
				CommentsCount:    src.Exp(5),
				SharesCount:      src.Exp(8),
				ClicksCount:      src.Exp(100),
				ImpressionsCount: src.Exp(1000),
				TrendingScore:    trending,
				IsPromoted:       src.Chance(0.1),
				Tags:             tags,
				CreatedAt:        dataset.NewTimestamp(createdAt),
				UpdatedAt:        dataset.NewTimestamp(src.Between(createdAt, now)),
			})
		}
	}
	return pins
}

// TrendingScore max(0, 100 - 0.5*天数) * factor，保留两位小数
func TrendingScore(age time.Duration, factor float64) float64 {
	days := math.Floor(age.Hours() / 24)
	base := math.Max(0, 100-days*0.5)
	return math.Round(base*factor*100) / 100
}
