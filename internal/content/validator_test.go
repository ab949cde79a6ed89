package content

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataURI(mediatype string, payload []byte) string {
	return "data:" + mediatype + ";base64," + base64.StdEncoding.EncodeToString(payload)
}

func TestValidator_Validate(t *testing.T) {
	v := NewValidator(ImagePolicy(64))

	tests := []struct {
		name    string
		value   string
		wantOK  bool
		wantErr error
		format  string
	}{
		{
			name:   "inline png accepted",
			value:  dataURI("image/png", []byte("tiny png bytes")),
			wantOK: true,
			format: "png",
		},
		{
			name:   "inline jpeg accepted",
			value:  dataURI("image/jpeg", []byte("jpeg")),
			wantOK: true,
			format: "jpeg",
		},
		{
			name:   "svg+xml normalized to svg",
			value:  dataURI("image/svg+xml", []byte("<svg/>")),
			wantOK: true,
			format: "svg",
		},
		{
			name:   "external url passes through",
			value:  "https://cdn.example.com/vds/projects/p/hero.png",
			wantOK: false,
		},
		{
			name:   "empty value passes through",
			value:  "",
			wantOK: false,
		},
		{
			name:    "unsupported format",
			value:   dataURI("image/tiff", []byte("tiff")),
			wantOK:  true,
			wantErr: ErrUnsupportedFormat,
		},
		{
			name:    "oversize payload",
			value:   dataURI("image/png", []byte(strings.Repeat("x", 65))),
			wantOK:  true,
			wantErr: ErrPayloadTooLarge,
		},
		{
			name:    "missing payload",
			value:   "data:image/png;base64,",
			wantOK:  true,
			wantErr: ErrMalformedPayload,
		},
		{
			name:    "not base64 encoded",
			value:   "data:image/png,rawbytes",
			wantOK:  true,
			wantErr: ErrMalformedPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inline, ok, err := v.Validate(tt.value)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			if ok {
				assert.Equal(t, tt.format, inline.Format)
			}
		})
	}
}

func TestValidator_SizeWithoutDecoding(t *testing.T) {
	payload := []byte(strings.Repeat("a", 33))
	v := NewValidator(ImagePolicy(64))

	inline, ok, err := v.Validate(dataURI("image/png", payload))
	require.NoError(t, err)
	require.True(t, ok)

	// Size comes from the encoded length, and the decode must agree with it.
	assert.Equal(t, int64(len(payload)), inline.Size)
	decoded, err := inline.Decode()
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestValidator_ResumePolicy(t *testing.T) {
	v := NewValidator(ResumePolicy(32))

	t.Run("pdf accepted", func(t *testing.T) {
		inline, ok, err := v.Validate(dataURI("application/pdf", []byte("%PDF-1.4")))
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "pdf", inline.Format)
	})

	t.Run("image rejected on resume path", func(t *testing.T) {
		_, ok, err := v.Validate(dataURI("image/png", []byte("png")))
		assert.True(t, ok)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("oversize pdf rejected", func(t *testing.T) {
		_, ok, err := v.Validate(dataURI("application/pdf", []byte(strings.Repeat("p", 40))))
		assert.True(t, ok)
		assert.ErrorIs(t, err, ErrPayloadTooLarge)
	})
}

func TestDecodedLen(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 30, 31, 32, 33} {
		payload := strings.Repeat("z", n)
		encoded := base64.StdEncoding.EncodeToString([]byte(payload))
		assert.Equal(t, int64(n), decodedLen(encoded), "payload length %d", n)
	}
}
