package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/config"
	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/model"
)

// minioStorage implements the Storage interface against an S3-compatible
// backend (MinIO, AWS S3, etc.). It is safe for concurrent use by multiple
// goroutines. The object key doubles as the asset's provider handle.
type minioStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
	timeout   time.Duration
}

// NewMinIO creates a new S3-compatible storage client backed by MinIO.
// It validates connectivity and ensures the bucket exists (creates it if missing).
// timeout bounds each Upload/Delete call; zero means the 120s default.
func NewMinIO(cfg config.MinIOConfig, timeout time.Duration) (Storage, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	publicURL := strings.TrimRight(cfg.PublicBaseURL, "/")
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + cfg.Endpoint
	}

	ms := &minioStorage{client: cli, bucket: cfg.Bucket, publicURL: publicURL, timeout: timeout}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Ensure bucket exists.
	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return ms, nil
}

// Upload streams the decoded bytes under folder with a generated object name
// and returns the stored asset. The returned AssetID is the object key.
func (m *minioStorage) Upload(ctx context.Context, data []byte, format, folder string) (model.StoredAsset, error) {
	key := strings.Trim(folder, "/") + "/" + uuid.NewString() + "." + strings.ToLower(format)

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	info, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentTypeFor(format),
	})
	if err != nil {
		return model.StoredAsset{}, classify("put", key, err)
	}
	return model.StoredAsset{
		URL:     m.publicURL + "/" + m.bucket + "/" + key,
		AssetID: key,
		Size:    info.Size,
	}, nil
}

// Delete removes an object by its asset handle. A not-found response is not an
// error; the asset may already be gone.
func (m *minioStorage) Delete(ctx context.Context, assetID string) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.client.RemoveObject(ctx, m.bucket, assetID, minio.RemoveObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.StatusCode == 404 {
			return nil
		}
		return classify("remove", assetID, err)
	}
	return nil
}

// classify maps a provider error onto the storage failure taxonomy.
func classify(op, key string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s %s: %v", ErrTimeout, op, key, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return fmt.Errorf("%w: %s %s: %v", ErrTimeout, op, key, err)
		}
		return fmt.Errorf("%w: %s %s: %v", ErrNetwork, op, key, err)
	}
	resp := minio.ToErrorResponse(err)
	switch {
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s %s: %v", ErrRemoteServer, op, key, err)
	case resp.StatusCode >= 400:
		return fmt.Errorf("%w: %s %s: %v", ErrRemoteClient, op, key, err)
	default:
		return fmt.Errorf("%w: %s %s: %v", ErrNetwork, op, key, err)
	}
}

func contentTypeFor(format string) string {
	switch strings.ToLower(format) {
	case "jpeg", "jpg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	case "svg":
		return "image/svg+xml"
	case "pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
