package http

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// Encodings selects which compressed response encodings are accepted.
type Encodings struct {
	Gzip    bool
	Deflate bool
	Brotli  bool
}

// AcceptEncoding renders the Accept-Encoding header value, or "" when
// nothing is enabled.
func (e Encodings) AcceptEncoding() string {
	var parts []string
	if e.Gzip {
		parts = append(parts, "gzip")
	}
	if e.Deflate {
		parts = append(parts, "deflate")
	}
	if e.Brotli {
		parts = append(parts, "br")
	}
	return strings.Join(parts, ", ")
}

// decodeBody wraps body according to a Content-Encoding header value.
// Unknown and identity encodings are passed through untouched.
func decodeBody(contentEncoding string, body io.Reader) (io.ReadCloser, error) {
	switch strings.ToLower(strings.TrimSpace(contentEncoding)) {
	case "gzip", "x-gzip":
		r, err := gzip.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("decoding gzip response: %w", err)
		}
		return r, nil
	case "deflate":
		r, err := zlib.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("decoding deflate response: %w", err)
		}
		return r, nil
	case "br":
		return io.NopCloser(brotli.NewReader(body)), nil
	default:
		return io.NopCloser(body), nil
	}
}
