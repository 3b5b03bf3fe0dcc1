package dataset

import (
	"bufio"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"golang.org/x/sync/errgroup"
)

// WriteAll 并发写出五个 CSV，再写元数据；返回全部文件路径
func WriteAll(dir string, ds *Dataset, meta *Metadata) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	tables := map[string]any{
		EntityUsers:        ds.Users,
		EntityBoards:       ds.Boards,
		EntityPins:         ds.Pins,
		EntityInteractions: ds.Interactions,
		EntitySearches:     ds.Searches,
	}

	var g errgroup.Group
	for _, entity := range Entities {
		path := Path(dir, entity)
		records := tables[entity]
		g.Go(func() error {
			return writeCSV(path, records)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(Entities)+1)
	for _, entity := range Entities {
		paths = append(paths, Path(dir, entity))
	}
	if meta != nil {
		p, err := WriteMetadata(dir, meta)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func writeCSV(path string, records any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := gocsv.Marshal(records, w); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
