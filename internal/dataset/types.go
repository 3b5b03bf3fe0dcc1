package dataset

import (
	"Pinseed/pkg/utils"
	"time"
)

// TimeLayout CSV 中的时间格式，统一为 UTC
const TimeLayout = "2006-01-02 15:04:05.000000"

var timeLayouts = []string{
	TimeLayout,
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02",
}

// Timestamp 以 TimeLayout 读写的时间
// 不内嵌 time.Time，避免 TextMarshaler 抢在 MarshalCSV 之前被使用
type Timestamp struct {
	Time time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

func (t Timestamp) MarshalCSV() (string, error) {
	if t.Time.IsZero() {
		return "", nil
	}
	return t.Time.UTC().Format(TimeLayout), nil
}

func (t *Timestamp) UnmarshalCSV(s string) error {
	v, err := ParseTime(s)
	if err != nil {
		return err
	}
	t.Time = v
	return nil
}

// ParseTime 空串返回零值
func ParseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	var lastErr error
	for _, layout := range timeLayouts {
		v, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return v.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// List 列表字段，写成 ['a', 'b'] 字面量
type List []string

func (l List) MarshalCSV() (string, error) {
	return utils.FormatListField(l), nil
}

func (l *List) UnmarshalCSV(s string) error {
	*l = utils.ParseListField(s)
	return nil
}
