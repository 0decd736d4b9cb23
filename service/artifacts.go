package service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/config"
)

// ArtifactService pulls model artifacts from an object store into the
// local model directory before the registry loads them. It is optional:
// when disabled the app serves whatever artifacts ship on disk.
type ArtifactService struct {
	client *minio.Client
	bucket string
	config *config.ArtifactsConfig
}

func NewArtifactService(cfg *config.ArtifactsConfig) (*ArtifactService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &ArtifactService{
		client: client,
		bucket: cfg.Bucket,
		config: cfg,
	}, nil
}

// Download fetches one artifact object into destPath.
func (s *ArtifactService) Download(ctx context.Context, objectName, destPath string) error {
	err := s.client.FGetObject(ctx, s.bucket, objectName, destPath, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to download artifact %s: %w", objectName, err)
	}
	return nil
}

// SyncModels downloads the named artifact files into dir, overwriting
// whatever is there. The first failure aborts the sync; callers log it
// and fall back to the local copies.
func (s *ArtifactService) SyncModels(ctx context.Context, dir string, files []string) error {
	for _, file := range files {
		dest := filepath.Join(dir, file)
		if err := s.Download(ctx, file, dest); err != nil {
			return err
		}
		slog.Info("model artifact synced", "object", file, "path", dest)
	}
	return nil
}
