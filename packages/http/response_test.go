package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResponse_StatusClasses(t *testing.T) {
	tests := []struct {
		code        int
		success     bool
		clientError bool
		serverError bool
	}{
		{code: 200, success: true},
		{code: 299, success: true},
		{code: 302},
		{code: 400, clientError: true},
		{code: 499, clientError: true},
		{code: 500, serverError: true},
		{code: 503, serverError: true},
	}

	for _, tt := range tests {
		resp := &Response{StatusCode: tt.code}
		assert.Equal(t, tt.success, resp.IsSuccess(), "IsSuccess(%d)", tt.code)
		assert.Equal(t, tt.clientError, resp.IsClientError(), "IsClientError(%d)", tt.code)
		assert.Equal(t, tt.serverError, resp.IsServerError(), "IsServerError(%d)", tt.code)
	}
}

func TestResponse_Accessors(t *testing.T) {
	resp := &Response{
		Headers: map[string]string{
			"Content-Type": "application/json",
			"X-Request-Id": "abc",
		},
		Body:     []byte("ok"),
		Duration: 1500 * time.Microsecond,
	}

	assert.Equal(t, "application/json", resp.ContentType())
	assert.Equal(t, "abc", resp.Header("x-request-id"))
	assert.Equal(t, []string{"Content-Type", "X-Request-Id"}, resp.HeaderNames())
	assert.Equal(t, "ok", resp.BodyString())
	assert.Equal(t, int64(1), resp.DurationMs())
}
