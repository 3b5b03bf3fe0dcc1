package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	EntityUsers        = "users"
	EntityBoards       = "boards"
	EntityPins         = "pins"
	EntityInteractions = "interactions"
	EntitySearches     = "searches"
)

// Entities 按外键依赖排列，也是入库顺序
var Entities = []string{EntityUsers, EntityBoards, EntityPins, EntityInteractions, EntitySearches}

const (
	UsersFile        = "pinterest_users.csv"
	BoardsFile       = "pinterest_boards.csv"
	PinsFile         = "pinterest_pins.csv"
	InteractionsFile = "pinterest_interactions.csv"
	SearchesFile     = "pinterest_searches.csv"
	MetadataFile     = "generation_metadata.json"
)

var fileNames = map[string]string{
	EntityUsers:        UsersFile,
	EntityBoards:       BoardsFile,
	EntityPins:         PinsFile,
	EntityInteractions: InteractionsFile,
	EntitySearches:     SearchesFile,
}

var ErrMissingFile = errors.New("dataset file not found")

// FileName 实体对应的 CSV 文件名
func FileName(entity string) string {
	return fileNames[entity]
}

// Path 实体在 dir 下的文件路径
func Path(dir, entity string) string {
	return filepath.Join(dir, FileName(entity))
}

// CheckFiles 五个 CSV 必须全部存在，否则整个导入不开始
func CheckFiles(dir string) error {
	for _, entity := range Entities {
		p := Path(dir, entity)
		info, err := os.Stat(p)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%w: %s", ErrMissingFile, p)
			}
			return err
		}
		if info.IsDir() {
			return fmt.Errorf("%w: %s is a directory", ErrMissingFile, p)
		}
	}
	return nil
}
