package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/model"
)

var sleep = time.Sleep

// RetryPolicy bounds the upload retry loop. Zero values fall back to the
// defaults (3 attempts, 500ms base backoff).
type RetryPolicy struct {
	MaxAttempts int
	BaseBackoff time.Duration
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 3
	}
	if p.BaseBackoff <= 0 {
		p.BaseBackoff = 500 * time.Millisecond
	}
	return p
}

// RetryUploader decorates a Storage with bounded exponential backoff on
// transient upload failures. Terminal errors fail fast on the first attempt;
// Delete passes through untouched.
type RetryUploader struct {
	store   Storage
	policy  RetryPolicy
	logger  *log.Logger
	metrics *Metrics
}

// NewRetryUploader wraps store. logger and metrics may be nil.
func NewRetryUploader(store Storage, policy RetryPolicy, logger *log.Logger, metrics *Metrics) *RetryUploader {
	if logger == nil {
		logger = log.Default()
	}
	return &RetryUploader{store: store, policy: policy.withDefaults(), logger: logger, metrics: metrics}
}

var _ Storage = (*RetryUploader)(nil)

// Upload attempts the underlying upload up to MaxAttempts times, waiting
// BaseBackoff*2^(attempt-1) between retryable failures. Every failure path
// surfaces as ErrUploadFailed wrapping the last cause.
func (r *RetryUploader) Upload(ctx context.Context, data []byte, format, folder string) (model.StoredAsset, error) {
	var lastErr error
	for attempt := 1; attempt <= r.policy.MaxAttempts; attempt++ {
		asset, err := r.store.Upload(ctx, data, format, folder)
		if err == nil {
			if r.metrics != nil {
				r.metrics.Uploads.WithLabelValues("success").Inc()
			}
			return asset, nil
		}
		lastErr = err
		if !Retryable(err) {
			if r.metrics != nil {
				r.metrics.Uploads.WithLabelValues("terminal").Inc()
			}
			return model.StoredAsset{}, fmt.Errorf("%w: attempt %d: %w", ErrUploadFailed, attempt, err)
		}
		if attempt < r.policy.MaxAttempts {
			backoff := r.policy.BaseBackoff << (attempt - 1)
			r.logger.Printf("asset upload retry: attempt=%d backoff=%s cause=%v", attempt, backoff, err)
			if r.metrics != nil {
				r.metrics.Retries.Inc()
			}
			sleep(backoff)
		}
	}
	if r.metrics != nil {
		r.metrics.Uploads.WithLabelValues("exhausted").Inc()
	}
	return model.StoredAsset{}, fmt.Errorf("%w: %d attempts: %w", ErrUploadFailed, r.policy.MaxAttempts, lastErr)
}

// Delete is not retried; reconciliation already treats deletes as best-effort.
func (r *RetryUploader) Delete(ctx context.Context, assetID string) error {
	return r.store.Delete(ctx, assetID)
}
