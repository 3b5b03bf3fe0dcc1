package service

import (
	"Pinseed/internal/dataset"
	"Pinseed/internal/synth"
	"Pinseed/pkg/log"
	"Pinseed/pkg/metrics"
	"context"
	"fmt"

	"go.uber.org/zap"
)

var _ IGenerateService = (*GenerateService)(nil)

type IGenerateService interface {
	// Run 生成数据集并写入 outDir，publish 为 true 时上传到 OSS
	Run(ctx context.Context, opts synth.Options, outDir string, publish bool) (*GenerateResult, error)
}

type GenerateService struct {
	PublishService IPublishService
}

type GenerateResult struct {
	Metadata  *dataset.Metadata `json:"metadata"`
	Files     []string          `json:"files"`
	Published []string          `json:"published,omitempty"`
}

func (s *GenerateService) Run(ctx context.Context, opts synth.Options, outDir string, publish bool) (*GenerateResult, error) {
	log.L.Info("generate start",
		zap.Uint64("seed", opts.Seed),
		zap.Int("users", opts.Users),
		zap.Int("interactions", opts.Interactions),
		zap.Int("queries", opts.Queries),
		zap.String("run_id", opts.RunID),
	)

	ds, meta := synth.Generate(opts)
	files, err := dataset.WriteAll(outDir, ds, meta)
	if err != nil {
		return nil, fmt.Errorf("write dataset: %w", err)
	}
	for entity, n := range ds.Counts() {
		metrics.Generated(entity, n)
	}
	log.L.Info("dataset written", zap.String("dir", outDir), zap.Strings("files", files))

	result := &GenerateResult{Metadata: meta, Files: files}
	if publish {
		if result.Published, err = s.PublishService.Publish(ctx, meta.RunID, files); err != nil {
			return result, err
		}
	}
	return result, nil
}
