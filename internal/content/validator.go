// Package content implements the asset ingestion pipeline: screening inline
// image payloads, converting them to stored assets, and reconciling asset
// references after record mutations.
package content

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrPayloadTooLarge   = errors.New("content: payload too large")
	ErrUnsupportedFormat = errors.New("content: unsupported format")
	ErrMalformedPayload  = errors.New("content: malformed inline payload")
)

// Policy is the screening policy for one upload path: a decoded-size ceiling
// and a format allow-list.
type Policy struct {
	MaxBytes int64
	Formats  []string
}

// ImagePolicy is the policy for general content images.
func ImagePolicy(maxBytes int64) Policy {
	return Policy{
		MaxBytes: maxBytes,
		Formats:  []string{"jpeg", "jpg", "png", "gif", "webp", "svg"},
	}
}

// ResumePolicy is the policy for the careers résumé upload path.
func ResumePolicy(maxBytes int64) Policy {
	return Policy{MaxBytes: maxBytes, Formats: []string{"pdf"}}
}

// Validator screens candidate field values against a Policy. Pure, no I/O.
type Validator struct {
	policy Policy
}

func NewValidator(policy Policy) *Validator {
	return &Validator{policy: policy}
}

// Inline is a validated inline payload prior to decoding. Size is computed
// from the encoded length without materializing the bytes.
type Inline struct {
	Format string
	Size   int64
	data   string
}

// Decode materializes the payload bytes.
func (in Inline) Decode() ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(in.data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return b, nil
}

const dataURIPrefix = "data:"

// Validate inspects a candidate field value. A value carrying the data-URI
// marker is screened and returned as an Inline with ok=true; anything else is
// treated as an already-external reference (ok=false, no error).
func (v *Validator) Validate(value string) (Inline, bool, error) {
	if !strings.HasPrefix(value, dataURIPrefix) {
		return Inline{}, false, nil
	}
	meta, data, found := strings.Cut(value[len(dataURIPrefix):], ",")
	if !found || data == "" {
		return Inline{}, true, fmt.Errorf("%w: missing payload", ErrMalformedPayload)
	}
	mediatype, enc, _ := strings.Cut(meta, ";")
	if enc != "base64" {
		return Inline{}, true, fmt.Errorf("%w: not base64-encoded", ErrMalformedPayload)
	}

	format := normalizeFormat(mediatype)
	if !v.allowed(format) {
		return Inline{}, true, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	size := decodedLen(data)
	if size > v.policy.MaxBytes {
		return Inline{}, true, fmt.Errorf("%w: %d bytes exceeds %d byte limit", ErrPayloadTooLarge, size, v.policy.MaxBytes)
	}

	return Inline{Format: format, Size: size, data: data}, true, nil
}

func (v *Validator) allowed(format string) bool {
	for _, f := range v.policy.Formats {
		if f == format {
			return true
		}
	}
	return false
}

// normalizeFormat reduces a data-URI mediatype to a bare format tag:
// "image/svg+xml" -> "svg", "application/pdf" -> "pdf".
func normalizeFormat(mediatype string) string {
	format := mediatype
	if _, sub, found := strings.Cut(mediatype, "/"); found {
		format = sub
	}
	format, _, _ = strings.Cut(format, "+")
	return strings.ToLower(format)
}

// decodedLen computes the decoded byte count of a standard base64 string from
// its encoded length and padding, without decoding it.
func decodedLen(data string) int64 {
	n := int64(len(data))
	padding := int64(0)
	if strings.HasSuffix(data, "==") {
		padding = 2
	} else if strings.HasSuffix(data, "=") {
		padding = 1
	}
	return n/4*3 - padding
}
