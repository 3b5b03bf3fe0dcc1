package service

import (
	"Pinseed/config"
	"Pinseed/internal/dataset"
	"Pinseed/internal/synth"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	mu   sync.Mutex
	keys map[string]string
	err  error
}

func (f *fakeUploader) Upload(_ context.Context, localPath, objectKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.keys == nil {
		f.keys = map[string]string{}
	}
	f.keys[objectKey] = localPath
	return nil
}

func TestPublish(t *testing.T) {
	up := &fakeUploader{}
	svc := &PublishService{Config: &config.OssConfig{Enabled: true, Bucket: "b", Prefix: "datasets/pinterest"}, Uploader: up}

	keys, err := svc.Publish(context.Background(), "42", []string{"/tmp/x/pinterest_users.csv", "/tmp/x/generation_metadata.json"})
	require.NoError(t, err)
	assert.Equal(t, []string{"datasets/pinterest/42/pinterest_users.csv", "datasets/pinterest/42/generation_metadata.json"}, keys)
	assert.Equal(t, "/tmp/x/pinterest_users.csv", up.keys["datasets/pinterest/42/pinterest_users.csv"])

	up.err = errors.New("denied")
	_, err = svc.Publish(context.Background(), "42", []string{"/tmp/x/a.csv"})
	assert.Error(t, err)

	svc.Config.Enabled = false
	_, err = svc.Publish(context.Background(), "42", nil)
	assert.ErrorIs(t, err, ErrPublishDisabled)
}

func TestGenerateRun(t *testing.T) {
	up := &fakeUploader{}
	svc := &GenerateService{PublishService: &PublishService{
		Config:   &config.OssConfig{Enabled: true, Prefix: "p"},
		Uploader: up,
	}}
	out := filepath.Join(t.TempDir(), "raw")
	opts := synth.Options{Seed: 1, Users: 5, Interactions: 50, Queries: 10, AvgBoards: 2, AvgPins: 2, RunID: "r1", Now: refNow}

	res, err := svc.Run(context.Background(), opts, out, true)
	require.NoError(t, err)
	assert.Len(t, res.Files, 6)
	assert.Len(t, res.Published, 6)
	assert.Equal(t, 5, res.Metadata.TotalUsers)
	require.NoError(t, dataset.CheckFiles(out))
	_, err = os.Stat(filepath.Join(out, dataset.MetadataFile))
	require.NoError(t, err)

	published := make([]string, 0, len(up.keys))
	for k := range up.keys {
		published = append(published, k)
	}
	sort.Strings(published)
	assert.Equal(t, "p/r1/generation_metadata.json", published[0])

	// 不发布时不调用上传
	up.keys = nil
	res, err = svc.Run(context.Background(), opts, out, false)
	require.NoError(t, err)
	assert.Empty(t, res.Published)
	assert.Nil(t, up.keys)
}
