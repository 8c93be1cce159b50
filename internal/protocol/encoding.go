package protocol

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
)

// Encoding identifies how each TSV column is encoded on the wire.
type Encoding int

const (
	NotEncoded Encoding = iota
	Base64Encoded
	URLEncoded
)

// Content-Type header values understood by Kyoto Tycoon.
const (
	ContentTypePlain  = "text/tab-separated-values"
	ContentTypeBase64 = "text/tab-separated-values; colenc=B"
	ContentTypeURL    = "text/tab-separated-values; colenc=U"
)

var ErrUnsupportedContentType = errors.New("unsupported content type")

// UnsupportedContentTypeError is returned when a Content-Type header does not
// name one of the three TSV column encodings.
type UnsupportedContentTypeError struct {
	ContentType string
}

func (e *UnsupportedContentTypeError) Error() string {
	return fmt.Sprintf("unsupported content type %q", e.ContentType)
}

func (e *UnsupportedContentTypeError) Is(target error) bool {
	return target == ErrUnsupportedContentType
}

// ResolveEncoding maps a Content-Type header value to its column encoding.
// Matching is exact; there is no fallback.
func ResolveEncoding(contentType string) (Encoding, error) {
	switch contentType {
	case ContentTypePlain:
		return NotEncoded, nil
	case ContentTypeBase64:
		return Base64Encoded, nil
	case ContentTypeURL:
		return URLEncoded, nil
	default:
		return NotEncoded, &UnsupportedContentTypeError{ContentType: contentType}
	}
}

// ParseEncoding accepts the short names used on command lines and in env vars.
func ParseEncoding(name string) (Encoding, error) {
	switch name {
	case "plain", "none", "":
		return NotEncoded, nil
	case "base64", "B", "b":
		return Base64Encoded, nil
	case "url", "U", "u":
		return URLEncoded, nil
	default:
		return NotEncoded, fmt.Errorf("unknown encoding %q", name)
	}
}

// ContentType returns the header value announcing this encoding.
func (e Encoding) ContentType() string {
	switch e {
	case Base64Encoded:
		return ContentTypeBase64
	case URLEncoded:
		return ContentTypeURL
	default:
		return ContentTypePlain
	}
}

func (e Encoding) String() string {
	switch e {
	case Base64Encoded:
		return "base64"
	case URLEncoded:
		return "url"
	default:
		return "plain"
	}
}

func (e Encoding) encodeColumn(s string) string {
	switch e {
	case Base64Encoded:
		return base64.StdEncoding.EncodeToString([]byte(s))
	case URLEncoded:
		return url.QueryEscape(s)
	default:
		return s
	}
}

func (e Encoding) decodeColumn(s string) (string, error) {
	switch e {
	case Base64Encoded:
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			// Some server builds drop the padding.
			b, err = base64.RawStdEncoding.DecodeString(s)
			if err != nil {
				return "", err
			}
		}
		return string(b), nil
	case URLEncoded:
		return url.QueryUnescape(s)
	default:
		return s, nil
	}
}
