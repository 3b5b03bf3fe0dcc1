package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultCreated    = "created"
	ResultExisting   = "existing"
	ResultUnresolved = "unresolved"
	ResultFailed     = "failed"
)

var (
	// Registry 批处理进程自己的注册表，不带 go/process 默认指标
	Registry = prometheus.NewRegistry()

	generatedRows = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pinseed_generated_rows_total",
			Help: "Rows produced by the generator",
		},
		[]string{"entity"},
	)

	loadRows = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pinseed_load_rows_total",
			Help: "Rows processed by the loader",
		},
		[]string{"entity", "result"},
	)
)

func init() {
	Registry.MustRegister(generatedRows)
	Registry.MustRegister(loadRows)
}

// Generated 记录生成的行数
func Generated(entity string, n int) {
	generatedRows.WithLabelValues(entity).Add(float64(n))
}

// Loaded 记录一行导入结果
func Loaded(entity, result string) {
	loadRows.WithLabelValues(entity, result).Inc()
}

// WriteTextfile path 为空时不写
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, Registry)
}
