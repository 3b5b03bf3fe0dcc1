package dataset

import (
	"Pinseed/pkg/utils"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Row 按表头取值的一行原始数据
// 类型转换失败时返回带列名的错误，由调用方决定跳过整行
type Row map[string]string

// String 原样取值
func (r Row) String(col string) string {
	return strings.TrimSpace(r[col])
}

// Optional 空值(含 pandas 写出的 nan/None)返回 nil
func (r Row) Optional(col string) *string {
	v := r.String(col)
	if isNull(v) {
		return nil
	}
	return &v
}

func (r Row) Int(col string) (int, error) {
	v := r.String(col)
	if n, err := strconv.Atoi(v); err == nil {
		return n, nil
	}
	// pandas 对含空值的整数列会写成 12.0
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("column %s: invalid integer %q", col, v)
	}
	return int(f), nil
}

func (r Row) Float(col string) (float64, error) {
	v := r.String(col)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: invalid float %q", col, v)
	}
	return f, nil
}

func (r Row) Bool(col string) (bool, error) {
	v := r.String(col)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("column %s: invalid bool %q", col, v)
	}
	return b, nil
}

// Time 空值返回零值
func (r Row) Time(col string) (time.Time, error) {
	v := r.String(col)
	if isNull(v) {
		return time.Time{}, nil
	}
	t, err := ParseTime(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("column %s: invalid time %q", col, v)
	}
	return t, nil
}

// List 列表字段解析失败时退化为空列表
func (r Row) List(col string) []string {
	return utils.ParseListField(r[col])
}

func isNull(v string) bool {
	switch v {
	case "", "nan", "NaN", "None", "null", "NULL":
		return true
	}
	return false
}
