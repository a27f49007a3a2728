package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestExtractAuthor(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{
			name: "forwarded user wins",
			headers: map[string]string{
				"X-Forwarded-User":  "alice",
				"X-Forwarded-Email": "alice@example.com",
				"X-Remote-User":     "bob",
			},
			expected: "alice",
		},
		{
			name: "forwarded email beats remote user",
			headers: map[string]string{
				"X-Forwarded-Email": "alice@example.com",
				"X-Remote-User":     "bob",
			},
			expected: "alice@example.com",
		},
		{
			name:     "remote user last",
			headers:  map[string]string{"X-Remote-User": "bob"},
			expected: "bob",
		},
		{
			name:     "no headers falls back to api-client",
			expected: "api-client",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, extractAuthor(c))
		})
	}
}
