package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/model"
)

// stubStorage counts attempts and fails according to a script of errors.
type stubStorage struct {
	attempts int
	script   []error
	asset    model.StoredAsset
}

func (s *stubStorage) Upload(ctx context.Context, data []byte, format, folder string) (model.StoredAsset, error) {
	s.attempts++
	if s.attempts <= len(s.script) {
		if err := s.script[s.attempts-1]; err != nil {
			return model.StoredAsset{}, err
		}
	}
	return s.asset, nil
}

func (s *stubStorage) Delete(ctx context.Context, assetID string) error { return nil }

func withFakeSleep(t *testing.T) *[]time.Duration {
	t.Helper()
	var slept []time.Duration
	orig := sleep
	sleep = func(d time.Duration) { slept = append(slept, d) }
	t.Cleanup(func() { sleep = orig })
	return &slept
}

func TestRetryUploader_Upload(t *testing.T) {
	ctx := context.Background()
	policy := RetryPolicy{MaxAttempts: 3, BaseBackoff: 500 * time.Millisecond}

	t.Run("first attempt succeeds", func(t *testing.T) {
		slept := withFakeSleep(t)
		stub := &stubStorage{asset: model.StoredAsset{URL: "https://cdn/x.png", AssetID: "x.png"}}

		asset, err := NewRetryUploader(stub, policy, nil, nil).Upload(ctx, []byte("img"), "png", "vds/projects/p")

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn/x.png", asset.URL)
		assert.Equal(t, 1, stub.attempts)
		assert.Empty(t, *slept)
	})

	t.Run("transient twice then success", func(t *testing.T) {
		slept := withFakeSleep(t)
		stub := &stubStorage{
			script: []error{ErrTimeout, ErrRemoteServer, nil},
			asset:  model.StoredAsset{URL: "https://cdn/y.png", AssetID: "y.png"},
		}

		asset, err := NewRetryUploader(stub, policy, nil, nil).Upload(ctx, []byte("img"), "png", "vds/projects/p")

		assert.NoError(t, err)
		assert.Equal(t, "y.png", asset.AssetID)
		assert.Equal(t, 3, stub.attempts)
		assert.Equal(t, []time.Duration{500 * time.Millisecond, 1 * time.Second}, *slept)
	})

	t.Run("always transient exhausts attempts", func(t *testing.T) {
		withFakeSleep(t)
		stub := &stubStorage{script: []error{ErrRemoteServer, ErrRemoteServer, ErrRemoteServer}}

		_, err := NewRetryUploader(stub, policy, nil, nil).Upload(ctx, []byte("img"), "png", "vds/projects/p")

		assert.ErrorIs(t, err, ErrUploadFailed)
		// The classified cause stays reachable through the wrapper.
		assert.ErrorIs(t, err, ErrRemoteServer)
		assert.Equal(t, 3, stub.attempts)
	})

	t.Run("terminal error fails fast", func(t *testing.T) {
		slept := withFakeSleep(t)
		stub := &stubStorage{script: []error{ErrRemoteClient}}

		_, err := NewRetryUploader(stub, policy, nil, nil).Upload(ctx, []byte("img"), "png", "vds/projects/p")

		assert.ErrorIs(t, err, ErrUploadFailed)
		assert.ErrorIs(t, err, ErrRemoteClient)
		assert.Equal(t, 1, stub.attempts)
		assert.Empty(t, *slept)
	})

	t.Run("network error is terminal", func(t *testing.T) {
		withFakeSleep(t)
		stub := &stubStorage{script: []error{ErrNetwork}}

		_, err := NewRetryUploader(stub, policy, nil, nil).Upload(ctx, []byte("img"), "png", "vds/projects/p")

		assert.ErrorIs(t, err, ErrUploadFailed)
		assert.Equal(t, 1, stub.attempts)
	})

	t.Run("zero policy uses defaults", func(t *testing.T) {
		slept := withFakeSleep(t)
		stub := &stubStorage{script: []error{ErrTimeout, nil}}

		_, err := NewRetryUploader(stub, RetryPolicy{}, nil, nil).Upload(ctx, []byte("img"), "png", "vds/projects/p")

		assert.NoError(t, err)
		assert.Equal(t, 2, stub.attempts)
		assert.Equal(t, []time.Duration{500 * time.Millisecond}, *slept)
	})
}

func TestRetryUploader_Delete(t *testing.T) {
	// Delete passes through without retry.
	stub := &stubStorage{}
	err := NewRetryUploader(stub, RetryPolicy{}, nil, nil).Delete(context.Background(), "vds/projects/p/x.png")
	assert.NoError(t, err)
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(ErrTimeout))
	assert.True(t, Retryable(ErrRemoteServer))
	assert.False(t, Retryable(ErrRemoteClient))
	assert.False(t, Retryable(ErrNetwork))
	assert.False(t, Retryable(errors.New("other")))
}
