package dataset

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// ReadRows 读取整个 CSV 为按表头索引的行
func ReadRows(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	maps, err := gocsv.CSVToMaps(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	rows := make([]Row, len(maps))
	for i, m := range maps {
		rows[i] = m
	}
	return rows, nil
}
