package protocol_test

import (
	"errors"
	"testing"

	"github.com/0xRadioAc7iv/go-kyototycoon/internal/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEncoding(t *testing.T) {
	tests := []struct {
		contentType string
		want        protocol.Encoding
	}{
		{"text/tab-separated-values", protocol.NotEncoded},
		{"text/tab-separated-values; colenc=B", protocol.Base64Encoded},
		{"text/tab-separated-values; colenc=U", protocol.URLEncoded},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			got, err := protocol.ResolveEncoding(tt.contentType)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.contentType, got.ContentType())
		})
	}
}

func TestResolveEncoding_Unsupported(t *testing.T) {
	for _, ct := range []string{"text/plain", "", "text/tab-separated-values; colenc=Q", "TEXT/TAB-SEPARATED-VALUES"} {
		t.Run(ct, func(t *testing.T) {
			_, err := protocol.ResolveEncoding(ct)
			require.Error(t, err)
			assert.True(t, errors.Is(err, protocol.ErrUnsupportedContentType))

			var uerr *protocol.UnsupportedContentTypeError
			require.True(t, errors.As(err, &uerr))
			assert.Equal(t, ct, uerr.ContentType)
			assert.Contains(t, err.Error(), ct)
		})
	}
}

func TestParseEncoding(t *testing.T) {
	tests := map[string]protocol.Encoding{
		"plain":  protocol.NotEncoded,
		"base64": protocol.Base64Encoded,
		"B":      protocol.Base64Encoded,
		"url":    protocol.URLEncoded,
		"U":      protocol.URLEncoded,
	}

	for name, want := range tests {
		got, err := protocol.ParseEncoding(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := protocol.ParseEncoding("rot13")
	assert.Error(t, err)
}
