package service

import (
	"Pinseed/config"
	"Pinseed/pkg/log"
	"Pinseed/pkg/oss"
	"context"
	"errors"
	"path"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var _ IPublishService = (*PublishService)(nil)

var ErrPublishDisabled = errors.New("oss publishing is disabled")

type IPublishService interface {
	// Publish 上传到 <prefix>/<runID>/<文件名>，返回对象 key
	Publish(ctx context.Context, runID string, files []string) ([]string, error)
}

type PublishService struct {
	Config   *config.OssConfig
	Uploader oss.Uploader
}

const publishConcurrency = 4

func (s *PublishService) Publish(ctx context.Context, runID string, files []string) ([]string, error) {
	if !s.Config.Enabled {
		return nil, ErrPublishDisabled
	}

	keys := make([]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(publishConcurrency)
	for i, file := range files {
		keys[i] = path.Join(s.Config.Prefix, runID, filepath.Base(file))
		g.Go(func() error {
			return s.Uploader.Upload(ctx, file, keys[i])
		})
	}
	if err := g.Wait(); err != nil {
		log.L.Error("publish dataset failed", zap.String("run_id", runID), zap.Error(err))
		return nil, err
	}
	log.L.Info("dataset published", zap.String("bucket", s.Config.Bucket), zap.Strings("keys", keys))
	return keys, nil
}
