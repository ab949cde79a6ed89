// Package storage wraps the remote object-storage provider behind a narrow
// interface. Implementations must stream to the provider only; no local disk.
package storage

import (
	"context"
	"errors"

	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/model"
)

// Failure taxonomy surfaced to callers. Timeout and ErrRemoteServer are
// transient; ErrRemoteClient and ErrNetwork classification drives the retry
// wrapper's retryable/terminal decision. ErrUploadFailed wraps the final
// cause after retry exhaustion or an immediate terminal failure.
var (
	ErrTimeout      = errors.New("storage: request timed out")
	ErrRemoteServer = errors.New("storage: remote server error")
	ErrRemoteClient = errors.New("storage: remote client error")
	ErrNetwork      = errors.New("storage: network error")
	ErrUploadFailed = errors.New("storage: upload failed")
)

// Retryable reports whether err is worth another attempt. Only timeouts and
// server-side failures qualify; everything else is terminal.
func Retryable(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrRemoteServer)
}

// Storage is the asset store client. Upload places the decoded bytes under a
// caller-supplied logical folder and returns the durable asset; Delete removes
// a previously stored asset by its provider handle and treats not-found as
// success.
type Storage interface {
	Upload(ctx context.Context, data []byte, format, folder string) (model.StoredAsset, error)
	Delete(ctx context.Context, assetID string) error
}
