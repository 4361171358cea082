package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/abdul-hamid-achik/quest/packages/core/quest"
)

// ErrInvalidURL is wrapped by every URL validation failure.
var ErrInvalidURL = errors.New("invalid URL")

// BuildURL adds params to the query string of rawURL. Params replace any
// query value of the same name already present in the URL.
func BuildURL(rawURL string, params map[string]string) (string, error) {
	if len(params) == 0 {
		return rawURL, nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	q := u.Query()
	for _, k := range sortedKeys(params) {
		q.Set(k, params[k])
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// NewHTTPRequest turns a resolved quest into a *http.Request.
// Header names are applied in sorted order so that names differing only in
// case collapse deterministically to the last one.
func NewHTTPRequest(ctx context.Context, req *quest.Request, enc Encodings) (*http.Request, error) {
	if err := ValidateURL(req.URL); err != nil {
		return nil, err
	}
	target, err := BuildURL(req.URL, req.Params)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if req.HasBody() {
		body = strings.NewReader(*req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method.String(), target, body)
	if err != nil {
		return nil, err
	}

	for _, k := range sortedKeys(req.Headers) {
		httpReq.Header.Set(k, req.Headers[k])
	}

	if req.JSON && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if accept := enc.AcceptEncoding(); accept != "" && httpReq.Header.Get("Accept-Encoding") == "" {
		httpReq.Header.Set("Accept-Encoding", accept)
	}

	return httpReq, nil
}

// ValidateURL checks that a URL is well-formed and uses an allowed scheme
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q (only http and https are allowed)", ErrInvalidURL, u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("%w: URL must have a host", ErrInvalidURL)
	}

	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
