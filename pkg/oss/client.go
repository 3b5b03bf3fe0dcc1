package oss

import (
	"Pinseed/config"
	"context"
	"fmt"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

// Uploader 把本地文件上传为对象
type Uploader interface {
	Upload(ctx context.Context, localPath, objectKey string) error
}

type Bucket struct {
	Client *oss.Client
	Name   string
}

// NewBucket 配置里没有 ak/sk 时从环境变量 OSS_ACCESS_KEY_ID / OSS_ACCESS_KEY_SECRET 读取
func NewBucket(conf *config.OssConfig) *Bucket {
	var provider credentials.CredentialsProvider = credentials.NewEnvironmentVariableCredentialsProvider()
	if conf.AccessKeyID != "" {
		provider = credentials.NewStaticCredentialsProvider(conf.AccessKeyID, conf.AccessKeySecret)
	}
	cfg := oss.LoadDefaultConfig().
		WithCredentialsProvider(provider).
		WithEndpoint(conf.Endpoint).
		WithRegion(conf.Region)
	return &Bucket{Client: oss.NewClient(cfg), Name: conf.Bucket}
}

// Upload 上传本地文件
func (b *Bucket) Upload(ctx context.Context, localPath, objectKey string) error {
	_, err := b.Client.PutObjectFromFile(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(b.Name),
		Key:    oss.Ptr(objectKey),
	}, localPath)
	if err != nil {
		return fmt.Errorf("oss upload %s: %w", objectKey, err)
	}
	return nil
}
